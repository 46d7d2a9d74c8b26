package entity

import "time"

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCanceled  = "canceled"

	PaymentStatusCompleted = "completed"
)

// BookingRecord is the denormalized, backend-facing projection of a
// BookingDraft. It is created once at submission time and never mutated.
type BookingRecord struct {
	BookingID      string      `json:"booking_id" db:"booking_id"`
	BookingCode    string      `json:"booking_code" db:"booking_code"`
	ServiceType    ServiceType `json:"service_type" db:"service_type"`
	BookingDate    time.Time   `json:"booking_date" db:"booking_date"`
	NumberOfGuests int         `json:"number_of_guests" db:"number_of_guests"`
	TotalPrice     int64       `json:"total_price" db:"total_price"`

	FlightNumber  string     `json:"flight_number,omitempty" db:"flight_number"`
	FlightFrom    string     `json:"flight_from,omitempty" db:"flight_from"`
	FlightTo      string     `json:"flight_to,omitempty" db:"flight_to"`
	DepartureDate *time.Time `json:"departure_date,omitempty" db:"departure_date"`
	Airline       string     `json:"airline,omitempty" db:"airline"`

	YachtID string `json:"yacht_id,omitempty" db:"yacht_id"`

	CustomerName    string `json:"customer_name" db:"customer_name"`
	CustomerEmail   string `json:"customer_email" db:"customer_email"`
	CustomerPhone   string `json:"customer_phone" db:"customer_phone"`
	SpecialRequests string `json:"special_requests" db:"special_requests"`

	Status        string `json:"status" db:"status"`
	PaymentStatus string `json:"payment_status" db:"payment_status"`
}
