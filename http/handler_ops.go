package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"letgonow/entity"
)

func (s Server) GetOpsBookings(c echo.Context) error {
	bookings, err := s.opsBookingReadModel.AllBookings(c.QueryParam("booking_date"))
	if err != nil {
		return err
	}

	if bookings == nil {
		bookings = []entity.OpsBooking{}
	}

	return c.JSON(http.StatusOK, bookings)
}

func (s Server) GetOpsBooking(c echo.Context) error {
	booking, err := s.opsBookingReadModel.BookingReadModel(c.Request().Context(), c.Param("id"))
	if errors.Is(err, entity.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "booking not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, booking)
}

func (s Server) DeleteOpsBooking(c echo.Context) error {
	err := s.commandBus.Send(c.Request().Context(), &entity.CancelBooking{
		Header:    entity.NewEventHeader(),
		BookingID: c.Param("id"),
	})
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusAccepted)
}
