package command

import (
	"context"
	"errors"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"letgonow/entity"
)

func (h Handler) CancelBookingHandler() cqrs.CommandHandler {
	return cqrs.NewCommandHandler(
		"CancelBookingHandler",
		func(ctx context.Context, command *entity.CancelBooking) error {
			log.FromContext(ctx).Infof("CancelBookingHandler: %s", command.BookingID)

			err := h.bookingsRepo.Cancel(ctx, command.BookingID)
			if errors.Is(err, entity.ErrNotFound) {
				// already gone, nothing to cancel
				return nil
			}

			return err
		},
	)
}
