package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"letgonow/entity"
)

type postFlightDraftRequest struct {
	Flight entity.Flight           `json:"flight"`
	Party  entity.PartyComposition `json:"party"`
}

type postYachtDraftRequest struct {
	YachtID        string         `json:"yacht_id"`
	RoomQuantities map[string]int `json:"room_quantities"`
	WholeVessel    bool           `json:"whole_vessel"`
	CharterDate    string         `json:"charter_date"`
}

type putPassengersRequest struct {
	Passengers []entity.Passenger `json:"passengers"`
	Contact    entity.Contact     `json:"contact"`
}

type putAncillariesRequest struct {
	Seats   []string `json:"selected_seats"`
	Baggage string   `json:"selected_baggage"`
	Meal    string   `json:"selected_meal"`
}

type putRoomsRequest struct {
	RoomQuantities map[string]int `json:"room_quantities"`
	WholeVessel    bool           `json:"whole_vessel"`
}

type putContactRequest struct {
	Contact         entity.Contact          `json:"contact"`
	Party           entity.PartyComposition `json:"party"`
	SpecialRequests string                  `json:"special_requests"`
}

type putPartyRequest struct {
	Party entity.PartyComposition `json:"party"`
}

func (s Server) PostDraft(c echo.Context) error {
	serviceType, err := serviceTypeParam(c)
	if err != nil {
		return err
	}
	session, err := sessionID(c)
	if err != nil {
		return err
	}

	var draft entity.BookingDraft

	if serviceType == entity.ServiceTypeFlight {
		var request postFlightDraftRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		if request.Flight.FlightNumber == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "flight offer is required")
		}

		draft, err = s.flow.StartFlight(c.Request().Context(), session, request.Flight, request.Party)
	} else {
		var request postYachtDraftRequest
		if err := c.Bind(&request); err != nil {
			return err
		}

		yacht, getErr := s.yachtsRepo.Get(c.Request().Context(), request.YachtID)
		if errors.Is(getErr, entity.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "yacht not found")
		}
		if getErr != nil {
			return getErr
		}

		draft, err = s.flow.StartYacht(
			c.Request().Context(),
			session,
			yacht,
			request.RoomQuantities,
			request.WholeVessel,
			request.CharterDate,
		)
	}
	if err != nil {
		return draftError(c, serviceType, err)
	}

	return c.JSON(http.StatusCreated, draft)
}

func (s Server) GetDraft(c echo.Context) error {
	serviceType, err := serviceTypeParam(c)
	if err != nil {
		return err
	}
	session, err := sessionID(c)
	if err != nil {
		return err
	}

	draft, err := s.flow.Load(c.Request().Context(), serviceType, session)
	if err != nil {
		return draftError(c, serviceType, err)
	}

	return c.JSON(http.StatusOK, draft)
}

func (s Server) PutPassengers(c echo.Context) error {
	session, err := sessionID(c)
	if err != nil {
		return err
	}

	var request putPassengersRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	draft, err := s.flow.SetPassengers(c.Request().Context(), session, request.Passengers, request.Contact)
	if err != nil {
		return draftError(c, entity.ServiceTypeFlight, err)
	}

	return c.JSON(http.StatusOK, draft)
}

func (s Server) PutSeatToggle(c echo.Context) error {
	session, err := sessionID(c)
	if err != nil {
		return err
	}

	draft, err := s.flow.ToggleSeatSelection(c.Request().Context(), session, c.Param("seat_id"))
	if err != nil {
		return draftError(c, entity.ServiceTypeFlight, err)
	}

	return c.JSON(http.StatusOK, draft)
}

func (s Server) PutAncillaries(c echo.Context) error {
	session, err := sessionID(c)
	if err != nil {
		return err
	}

	var request putAncillariesRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	draft, err := s.flow.SetAncillaries(c.Request().Context(), session, request.Seats, request.Baggage, request.Meal)
	if err != nil {
		return draftError(c, entity.ServiceTypeFlight, err)
	}

	return c.JSON(http.StatusOK, draft)
}

func (s Server) PutRooms(c echo.Context) error {
	session, err := sessionID(c)
	if err != nil {
		return err
	}

	var request putRoomsRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	draft, err := s.flow.SetRooms(c.Request().Context(), session, request.RoomQuantities, request.WholeVessel)
	if err != nil {
		return draftError(c, entity.ServiceTypeYacht, err)
	}

	return c.JSON(http.StatusOK, draft)
}

func (s Server) PutContact(c echo.Context) error {
	session, err := sessionID(c)
	if err != nil {
		return err
	}

	var request putContactRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	draft, err := s.flow.SetContact(c.Request().Context(), session, request.Contact, request.Party, request.SpecialRequests)
	if err != nil {
		return draftError(c, entity.ServiceTypeYacht, err)
	}

	return c.JSON(http.StatusOK, draft)
}

func (s Server) PutParty(c echo.Context) error {
	serviceType, err := serviceTypeParam(c)
	if err != nil {
		return err
	}
	session, err := sessionID(c)
	if err != nil {
		return err
	}

	var request putPartyRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	draft, err := s.flow.UpdateParty(c.Request().Context(), serviceType, session, request.Party)
	if err != nil {
		return draftError(c, serviceType, err)
	}

	return c.JSON(http.StatusOK, draft)
}

func (s Server) PostBack(c echo.Context) error {
	serviceType, err := serviceTypeParam(c)
	if err != nil {
		return err
	}
	session, err := sessionID(c)
	if err != nil {
		return err
	}

	draft, err := s.flow.Back(c.Request().Context(), serviceType, session)
	if err != nil {
		return draftError(c, serviceType, err)
	}

	return c.JSON(http.StatusOK, draft)
}
