package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"letgonow/search"
)

const searchDateLayout = "2006-01-02"

type flightsSearchRequest struct {
	Departure     string   `json:"departure"`
	Destination   string   `json:"destination"`
	DepartureDate string   `json:"departure_date"`
	ReturnDate    string   `json:"return_date"`
	Adults        int      `json:"adults"`
	Children      int      `json:"children"`
	Infants       int      `json:"infants"`
	Airlines      []string `json:"airlines"`
	Page          int      `json:"page"`
}

func (s Server) PostFlightsSearch(c echo.Context) error {
	var request flightsSearchRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	if request.Departure == "" || request.Destination == "" || request.DepartureDate == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "departure, destination and departure_date are required")
	}
	if _, err := time.Parse(searchDateLayout, request.DepartureDate); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "departure_date must be a YYYY-MM-DD calendar date")
	}
	if request.ReturnDate != "" {
		if _, err := time.Parse(searchDateLayout, request.ReturnDate); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "return_date must be a YYYY-MM-DD calendar date")
		}
	}

	results := s.flightsSearch.Search(c.Request().Context(), search.Criteria{
		Departure:     request.Departure,
		Destination:   request.Destination,
		DepartureDate: request.DepartureDate,
		ReturnDate:    request.ReturnDate,
		Airlines:      request.Airlines,
		Page:          request.Page,
	})

	return c.JSON(http.StatusOK, results)
}
