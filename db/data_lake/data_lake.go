package data_lake

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"letgonow/entity"
)

// DataLake archives every published event as-is for later inspection.
type DataLake struct {
	db *sqlx.DB
}

func NewDataLake(db *sqlx.DB) DataLake {
	if db == nil {
		panic("db is nil")
	}
	return DataLake{db: db}
}

func (l DataLake) StoreEvent(ctx context.Context, event entity.DataLakeEvent) error {
	_, err := l.db.ExecContext(
		ctx,
		`INSERT INTO events (event_id, published_at, event_name, event_payload)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_id) DO NOTHING;
		`,
		event.ID,
		event.PublishedAt,
		event.Name,
		event.Payload,
	)
	if err != nil {
		return fmt.Errorf("could not store %s event in data lake: %w", event.ID, err)
	}

	return nil
}
