package command

import (
	"context"
)

type BookingsRepository interface {
	Cancel(ctx context.Context, bookingID string) error
}

type Handler struct {
	bookingsRepo BookingsRepository
}

func NewHandler(bookingsRepo BookingsRepository) Handler {
	if bookingsRepo == nil {
		panic("missing bookingsRepo")
	}

	return Handler{
		bookingsRepo: bookingsRepo,
	}
}
