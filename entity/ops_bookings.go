package entity

import (
	"time"
)

// OpsBooking is the admin dashboard projection of a booking. It is kept up to
// date by event handlers, so the dashboard never has to refetch the bookings
// table on change notifications.
type OpsBooking struct {
	BookingID      string      `json:"booking_id"`
	BookingCode    string      `json:"booking_code"`
	ServiceType    ServiceType `json:"service_type"`
	CustomerEmail  string      `json:"customer_email"`
	NumberOfGuests int         `json:"number_of_guests"`
	TotalPrice     int64       `json:"total_price"`
	BookedAt       time.Time   `json:"booked_at"`
	CanceledAt     *time.Time  `json:"canceled_at,omitempty"`

	LastUpdate time.Time `json:"last_update"`
}
