package yachts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"letgonow/entity"
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

func (r *PostgresRepository) Store(ctx context.Context, yacht entity.Yacht) (err error) {
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
		INSERT INTO yachts (yacht_id, name, description, location)
		VALUES (:yacht_id, :name, :description, :location)
		ON CONFLICT DO NOTHING -- ignore if already exists
	`, yacht)
	if err != nil {
		return fmt.Errorf("could not add yacht: %w", err)
	}

	for _, room := range yacht.Rooms {
		room.YachtID = yacht.YachtID
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO yacht_rooms (room_id, yacht_id, name, area, max_guests, price)
			VALUES (:room_id, :yacht_id, :name, :area, :max_guests, :price)
			ON CONFLICT DO NOTHING
		`, room)
		if err != nil {
			return fmt.Errorf("could not add yacht room: %w", err)
		}
	}

	return nil
}

// FindAll lists yachts, optionally narrowed by a free-text query against
// name and description.
func (r *PostgresRepository) FindAll(ctx context.Context, query string) ([]entity.Yacht, error) {
	var yachts []entity.Yacht
	var err error

	if query == "" {
		err = r.db.SelectContext(ctx, &yachts, `
			SELECT yacht_id, name, description, location FROM yachts ORDER BY name
		`)
	} else {
		err = r.db.SelectContext(ctx, &yachts, `
			SELECT yacht_id, name, description, location
			FROM yachts
			WHERE name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
			ORDER BY name
		`, query)
	}
	if err != nil {
		return nil, fmt.Errorf("could not find yachts: %w", err)
	}

	for i := range yachts {
		rooms, err := r.rooms(ctx, yachts[i].YachtID)
		if err != nil {
			return nil, err
		}
		yachts[i].Rooms = rooms
	}

	return yachts, nil
}

func (r *PostgresRepository) Get(ctx context.Context, yachtID string) (entity.Yacht, error) {
	var yacht entity.Yacht
	err := r.db.GetContext(ctx, &yacht, `
		SELECT yacht_id, name, description, location
		FROM yachts
		WHERE yacht_id = $1
	`, yachtID)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Yacht{}, entity.ErrNotFound
	}
	if err != nil {
		return entity.Yacht{}, fmt.Errorf("could not get yacht: %w", err)
	}

	yacht.Rooms, err = r.rooms(ctx, yachtID)
	if err != nil {
		return entity.Yacht{}, err
	}

	return yacht, nil
}

func (r *PostgresRepository) rooms(ctx context.Context, yachtID string) ([]entity.Room, error) {
	var rooms []entity.Room
	err := r.db.SelectContext(ctx, &rooms, `
		SELECT room_id, yacht_id, name, area, max_guests, price
		FROM yacht_rooms
		WHERE yacht_id = $1
		ORDER BY name
	`, yachtID)
	if err != nil {
		return nil, fmt.Errorf("could not get yacht rooms: %w", err)
	}
	return rooms, nil
}
