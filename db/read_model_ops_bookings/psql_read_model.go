package read_model_ops_bookings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"letgonow/entity"
)

// OpsBookingReadModel keeps the admin dashboard's booking projections up to
// date from events, so the dashboard list never refetches the write side.
type OpsBookingReadModel struct {
	db *sqlx.DB
}

func NewOpsBookingReadModel(db *sqlx.DB) OpsBookingReadModel {
	if db == nil {
		panic("db is nil")
	}
	return OpsBookingReadModel{db: db}
}

func (r OpsBookingReadModel) OnBookingConfirmed(ctx context.Context, event *entity.BookingConfirmed_v1) error {
	return r.createReadModel(ctx, entity.OpsBooking{
		BookingID:      event.BookingID,
		BookingCode:    event.BookingCode,
		ServiceType:    event.ServiceType,
		CustomerEmail:  event.CustomerEmail,
		NumberOfGuests: event.NumberOfGuests,
		TotalPrice:     event.TotalPrice,
		BookedAt:       event.BookedAt,
		LastUpdate:     time.Now().UTC(),
	})
}

func (r OpsBookingReadModel) OnBookingCanceled(ctx context.Context, event *entity.BookingCanceled_v1) error {
	return r.updateReadModel(ctx, event.BookingID, func(rm entity.OpsBooking) (entity.OpsBooking, error) {
		canceledAt := event.Header.PublishedAt
		rm.CanceledAt = &canceledAt
		return rm, nil
	})
}

// AllBookings lists the projections, optionally narrowed to one booking
// date (YYYY-MM-DD).
func (r OpsBookingReadModel) AllBookings(bookingDateFilter string) ([]entity.OpsBooking, error) {
	query := "SELECT payload FROM read_model_ops_bookings"
	var queryArgs []any

	if bookingDateFilter != "" {
		query += ` WHERE DATE((payload->>'booked_at')::timestamptz) = $1`
		queryArgs = append(queryArgs, bookingDateFilter)
	}

	rows, err := r.db.Query(query, queryArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []entity.OpsBooking
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}

		var booking entity.OpsBooking
		if err := json.Unmarshal(payload, &booking); err != nil {
			return nil, err
		}

		result = append(result, booking)
	}

	return result, rows.Err()
}

func (r OpsBookingReadModel) BookingReadModel(ctx context.Context, bookingID string) (entity.OpsBooking, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT payload FROM read_model_ops_bookings WHERE booking_id = $1
	`, bookingID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.OpsBooking{}, entity.ErrNotFound
	}
	if err != nil {
		return entity.OpsBooking{}, err
	}

	var booking entity.OpsBooking
	if err := json.Unmarshal(payload, &booking); err != nil {
		return entity.OpsBooking{}, err
	}

	return booking, nil
}

func (r OpsBookingReadModel) createReadModel(ctx context.Context, booking entity.OpsBooking) error {
	payload, err := json.Marshal(booking)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO read_model_ops_bookings (booking_id, payload)
		VALUES ($1, $2)
		ON CONFLICT (booking_id) DO NOTHING -- events are redelivered at least once
	`, booking.BookingID, payload)
	if err != nil {
		return fmt.Errorf("could not create read model: %w", err)
	}

	return nil
}

func (r OpsBookingReadModel) updateReadModel(
	ctx context.Context,
	bookingID string,
	update func(rm entity.OpsBooking) (entity.OpsBooking, error),
) (err error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
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

	var payload []byte
	err = tx.QueryRowContext(ctx, `
		SELECT payload FROM read_model_ops_bookings WHERE booking_id = $1 FOR UPDATE
	`, bookingID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		// the confirming event hasn't arrived yet; redelivery will retry
		return fmt.Errorf("read model for booking %s not found yet: %w", bookingID, entity.ErrNotFound)
	}
	if err != nil {
		return err
	}

	var booking entity.OpsBooking
	if err := json.Unmarshal(payload, &booking); err != nil {
		return err
	}

	booking, err = update(booking)
	if err != nil {
		return err
	}
	booking.LastUpdate = time.Now().UTC()

	updated, err := json.Marshal(booking)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE read_model_ops_bookings SET payload = $2 WHERE booking_id = $1
	`, bookingID, updated)
	return err
}
