package event

import (
	"context"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"letgonow/entity"
	"letgonow/metrics"
)

type Handler struct{}

func NewHandler() Handler {
	return Handler{}
}

// CountBookingConfirmedHandler feeds the bookings_confirmed_total metric.
func (h Handler) CountBookingConfirmedHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"CountBookingConfirmedHandler",
		func(ctx context.Context, event *entity.BookingConfirmed_v1) error {
			log.FromContext(ctx).
				WithField("booking_id", event.BookingID).
				WithField("booking_code", event.BookingCode).
				Info("Booking confirmed")

			metrics.BookingsConfirmedTotal.WithLabelValues(string(event.ServiceType)).Inc()
			return nil
		},
	)
}
