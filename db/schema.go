package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

func InitializeDatabaseSchema(db *sqlx.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS bookings (
			booking_id UUID PRIMARY KEY,
			booking_code VARCHAR(16) NOT NULL,
			service_type VARCHAR(16) NOT NULL,
			booking_date TIMESTAMP NOT NULL,
			number_of_guests INT NOT NULL,
			total_price BIGINT NOT NULL,
			flight_number VARCHAR(16) NOT NULL DEFAULT '',
			flight_from VARCHAR(8) NOT NULL DEFAULT '',
			flight_to VARCHAR(8) NOT NULL DEFAULT '',
			departure_date TIMESTAMP,
			airline TEXT NOT NULL DEFAULT '',
			yacht_id TEXT NOT NULL DEFAULT '',
			customer_name TEXT NOT NULL,
			customer_email TEXT NOT NULL,
			customer_phone TEXT NOT NULL,
			special_requests TEXT NOT NULL DEFAULT '',
			status VARCHAR(16) NOT NULL,
			payment_status VARCHAR(16) NOT NULL
		);

		CREATE TABLE IF NOT EXISTS yachts (
			yacht_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS yacht_rooms (
			room_id TEXT PRIMARY KEY,
			yacht_id TEXT NOT NULL REFERENCES yachts (yacht_id),
			name TEXT NOT NULL,
			area INT NOT NULL DEFAULT 0,
			max_guests INT NOT NULL DEFAULT 0,
			price BIGINT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS read_model_ops_bookings (
			booking_id UUID PRIMARY KEY,
			payload JSONB NOT NULL
		);

		CREATE TABLE IF NOT EXISTS events (
			event_id UUID PRIMARY KEY,
			published_at TIMESTAMP NOT NULL,
			event_name VARCHAR(255) NOT NULL,
			event_payload JSONB NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("could not initialize database schema: %w", err)
	}

	return nil
}
