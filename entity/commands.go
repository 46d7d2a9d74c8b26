package entity

type CancelBooking struct {
	Header    EventHeader `json:"header"`
	BookingID string      `json:"booking_id"`
}
