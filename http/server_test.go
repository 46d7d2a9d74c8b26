package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"letgonow/booking"
	"letgonow/draftstore"
	"letgonow/entity"
	"letgonow/gateway"
	"letgonow/search"
)

type stubBookingsRepo struct{}

func (stubBookingsRepo) Store(context.Context, entity.BookingRecord) error { return nil }

func newTestServer() (*Server, booking.Flow) {
	store := draftstore.NewMemoryStore()
	flow := booking.NewFlow(store)

	return NewServer(
		":0",
		nil,
		search.NewService(&gateway.AviationStackMock{}, nil),
		nil,
		flow,
		booking.NewSubmitter(store, stubBookingsRepo{}),
		nil,
	), flow
}

func jsonRequest(method, path, session, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if session != "" {
		req.Header.Set("X-Session-ID", session)
	}
	return req
}

func TestPostFlightsSearch_rejectsInvalidDates(t *testing.T) {
	server, _ := newTestServer()
	e := echo.New()

	tests := []struct {
		name string
		body string
	}{
		{"bad departure date", `{"departure":"HAN","destination":"SGN","departure_date":"not-a-date"}`},
		{"impossible calendar date", `{"departure":"HAN","destination":"SGN","departure_date":"2026-02-30"}`},
		{"bad return date", `{"departure":"HAN","destination":"SGN","departure_date":"2026-09-15","return_date":"soon"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(jsonRequest(http.MethodPost, "/flights/search", "", tt.body), rec)

			err := server.PostFlightsSearch(c)

			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		})
	}

	t.Run("valid dates pass", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := `{"departure":"HAN","destination":"SGN","departure_date":"2026-09-15","return_date":"2026-09-20"}`
		c := e.NewContext(jsonRequest(http.MethodPost, "/flights/search", "", body), rec)

		require.NoError(t, server.PostFlightsSearch(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPostBack_atFirstStepIsBadRequest(t *testing.T) {
	server, flow := newTestServer()
	e := echo.New()
	session := "session-1"

	_, err := flow.StartFlight(context.Background(), session, entity.Flight{FlightNumber: "VN123"}, entity.PartyComposition{Adults: 1})
	require.NoError(t, err)

	back := func() (*httptest.ResponseRecorder, error) {
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/bookings/flight/draft/back", session, ""), rec)
		c.SetParamNames("flow")
		c.SetParamValues("flight")
		return rec, server.PostBack(c)
	}

	rec, err := back()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	// now on the first step; going back again is the user's mistake, not ours
	_, err = back()
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
