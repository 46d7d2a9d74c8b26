package entity

import (
	"time"

	"github.com/google/uuid"
)

type EventHeader struct {
	ID             string    `json:"id"`
	PublishedAt    time.Time `json:"published_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

func NewEventHeader() EventHeader {
	return EventHeader{
		ID:          uuid.NewString(),
		PublishedAt: time.Now().UTC(),
	}
}

func NewEventHeaderWithIdempotencyKey(idempotencyKey string) EventHeader {
	return EventHeader{
		ID:             uuid.NewString(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: idempotencyKey,
	}
}

type BookingConfirmed_v1 struct {
	Header         EventHeader `json:"header"`
	BookingID      string      `json:"booking_id"`
	BookingCode    string      `json:"booking_code"`
	ServiceType    ServiceType `json:"service_type"`
	CustomerEmail  string      `json:"customer_email"`
	NumberOfGuests int         `json:"number_of_guests"`
	TotalPrice     int64       `json:"total_price"`
	BookedAt       time.Time   `json:"booked_at"`
}

type BookingCanceled_v1 struct {
	Header    EventHeader `json:"header"`
	BookingID string      `json:"booking_id"`
}
