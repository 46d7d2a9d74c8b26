package bookings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"letgonow/entity"
	"letgonow/pubsub/bus"
	"letgonow/pubsub/outbox"
)

type PostgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	if db == nil {
		panic("db is nil")
	}
	return &PostgresRepository{db: db}
}

// Store persists the booking record and publishes BookingConfirmed_v1
// through the transactional outbox, so the record and the event are either
// both committed or neither.
func (r *PostgresRepository) Store(ctx context.Context, booking entity.BookingRecord) (err error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			rollbackErr := tx.Rollback()
			err = errors.Join(err, rollbackErr)
			return
		}
		err = tx.Commit()
	}()

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO bookings (
			booking_id, booking_code, service_type, booking_date, number_of_guests,
			total_price, flight_number, flight_from, flight_to, departure_date,
			airline, yacht_id, customer_name, customer_email, customer_phone,
			special_requests, status, payment_status
		) VALUES (
			:booking_id, :booking_code, :service_type, :booking_date, :number_of_guests,
			:total_price, :flight_number, :flight_from, :flight_to, :departure_date,
			:airline, :yacht_id, :customer_name, :customer_email, :customer_phone,
			:special_requests, :status, :payment_status
		)
		`, booking)
	if err != nil {
		return fmt.Errorf("could not add booking: %w", err)
	}

	outboxPublisher, err := outbox.NewPublisherForDb(ctx, tx)
	if err != nil {
		return fmt.Errorf("could not create outbox publisher: %w", err)
	}

	eventBus, err := bus.NewEventBus(outboxPublisher)
	if err != nil {
		return err
	}

	err = eventBus.Publish(ctx, entity.BookingConfirmed_v1{
		Header:         entity.NewEventHeaderWithIdempotencyKey(booking.BookingID),
		BookingID:      booking.BookingID,
		BookingCode:    booking.BookingCode,
		ServiceType:    booking.ServiceType,
		CustomerEmail:  booking.CustomerEmail,
		NumberOfGuests: booking.NumberOfGuests,
		TotalPrice:     booking.TotalPrice,
		BookedAt:       booking.BookingDate,
	})
	if err != nil {
		return fmt.Errorf("could not publish event: %w", err)
	}

	return nil
}

// Cancel marks a booking canceled and publishes BookingCanceled_v1 through
// the outbox in the same transaction.
func (r *PostgresRepository) Cancel(ctx context.Context, bookingID string) (err error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			rollbackErr := tx.Rollback()
			err = errors.Join(err, rollbackErr)
			return
		}
		err = tx.Commit()
	}()

	res, err := tx.ExecContext(ctx, `
		UPDATE bookings
		SET status = $1
		WHERE booking_id = $2
	`, entity.BookingStatusCanceled, bookingID)
	if err != nil {
		return fmt.Errorf("could not cancel booking: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return entity.ErrNotFound
	}

	outboxPublisher, err := outbox.NewPublisherForDb(ctx, tx)
	if err != nil {
		return fmt.Errorf("could not create outbox publisher: %w", err)
	}

	eventBus, err := bus.NewEventBus(outboxPublisher)
	if err != nil {
		return err
	}

	err = eventBus.Publish(ctx, entity.BookingCanceled_v1{
		Header:    entity.NewEventHeaderWithIdempotencyKey("cancel-" + bookingID),
		BookingID: bookingID,
	})
	if err != nil {
		return fmt.Errorf("could not publish event: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, bookingID string) (entity.BookingRecord, error) {
	var booking entity.BookingRecord
	err := r.db.GetContext(ctx, &booking, `
		SELECT
			booking_id, booking_code, service_type, booking_date, number_of_guests,
			total_price, flight_number, flight_from, flight_to, departure_date,
			airline, yacht_id, customer_name, customer_email, customer_phone,
			special_requests, status, payment_status
		FROM bookings
		WHERE booking_id = $1
	`, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.BookingRecord{}, entity.ErrNotFound
	}

	return booking, err
}
