package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/lithammer/shortuuid/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"letgonow/booking"
	"letgonow/db/bookings"
	"letgonow/db/read_model_ops_bookings"
	"letgonow/entity"
	"letgonow/gateway"
	"letgonow/service"
)

var (
	httpAddress = ":8080"
	baseURL     = "http://localhost:8080"
)

func TestComponent(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("github.com/testcontainers/testcontainers-go.(*Reaper).Connect.func1"))
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	dbconn, err := sqlx.Open("postgres", postgresURL)
	if err != nil {
		panic(err)
	}
	defer dbconn.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: redisURL})
	defer redisClient.Close()

	flightsProvider := &gateway.AviationStackMock{
		FlightsResponse: []entity.Flight{
			{
				FlightNumber: "VN123",
				Airline:      entity.Airline{IATA: "HVN"},
				Departure:    entity.FlightPoint{IATA: "HAN", Scheduled: time.Now().Add(48 * time.Hour).UTC()},
				Arrival:      entity.FlightPoint{IATA: "SGN", Scheduled: time.Now().Add(50 * time.Hour).UTC()},
				Status:       "scheduled",
				Price:        2_000_000,
				SeatsLeft:    12,
			},
		},
	}

	done := make(chan struct{})
	go func() {
		<-done
		e := syscall.Kill(syscall.Getpid(), syscall.SIGTERM)
		require.NoError(t, e)
	}()

	finished := make(chan struct{})
	go func() {
		svc := service.New(
			httpAddress,
			dbconn,
			redisClient,
			flightsProvider,
		)
		assert.NoError(t, svc.Run(ctx))
		close(finished)
	}()

	defer func() {
		close(done)
		<-finished
	}()

	waitForHttpServer(t)

	session := shortuuid.New()

	flight := searchFlights(t, session)
	require.Equal(t, "Vietnam Airlines", flight.Airline.Name)

	draft := startFlightDraft(t, session, flight)
	require.Equal(t, entity.StepPassengerInfo, draft.Step)

	draft = putPassengers(t, session)
	require.Equal(t, entity.StepSeatAndAncillary, draft.Step)

	draft = putAncillaries(t, session)
	require.Equal(t, entity.StepPayment, draft.Step)
	require.Equal(t, int64(2_650_000), draft.TotalPrice)

	confirmation := submitBooking(t, session)
	require.Regexp(t, `^FL[0-9A-Z]{6}$`, confirmation.BookingCode)
	require.Equal(t, confirmation.BookingCode, confirmation.Booking.BookingCode)

	assertDraftGone(t, session)
	assertBookingStored(t, dbconn, confirmation.Booking.BookingID)
	assertOpsReadModelUpdated(t, dbconn, confirmation.Booking.BookingID)

	cancelBooking(t, confirmation.Booking.BookingID)
	assertBookingCanceled(t, dbconn, confirmation.Booking.BookingID)
}

func assertBookingStored(t *testing.T, db *sqlx.DB, bookingID string) {
	repo := bookings.NewPostgresRepository(db)

	booking, err := repo.Get(context.Background(), bookingID)
	require.NoError(t, err)
	assert.Equal(t, entity.ServiceTypeFlight, booking.ServiceType)
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, int64(2_650_000), booking.TotalPrice)
}

func assertOpsReadModelUpdated(t *testing.T, db *sqlx.DB, bookingID string) {
	readModel := read_model_ops_bookings.NewOpsBookingReadModel(db)

	assert.EventuallyWithT(
		t,
		func(t *assert.CollectT) {
			rm, err := readModel.BookingReadModel(context.Background(), bookingID)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, bookingID, rm.BookingID)
			assert.Nil(t, rm.CanceledAt)
		},
		10*time.Second,
		100*time.Millisecond,
	)
}

func assertBookingCanceled(t *testing.T, db *sqlx.DB, bookingID string) {
	repo := bookings.NewPostgresRepository(db)
	readModel := read_model_ops_bookings.NewOpsBookingReadModel(db)

	assert.EventuallyWithT(
		t,
		func(t *assert.CollectT) {
			booking, err := repo.Get(context.Background(), bookingID)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, entity.BookingStatusCanceled, booking.Status)

			rm, err := readModel.BookingReadModel(context.Background(), bookingID)
			if !assert.NoError(t, err) {
				return
			}
			assert.NotNil(t, rm.CanceledAt)
		},
		10*time.Second,
		100*time.Millisecond,
	)
}

func searchFlights(t *testing.T, session string) entity.Flight {
	t.Helper()

	var results struct {
		Flights []entity.Flight `json:"flights"`
	}
	doJSON(t, http.MethodPost, "/flights/search", session, map[string]any{
		"departure":      "HAN",
		"destination":    "SGN",
		"departure_date": "2026-09-15",
		"adults":         2,
	}, http.StatusOK, &results)

	require.NotEmpty(t, results.Flights)
	return results.Flights[0]
}

func startFlightDraft(t *testing.T, session string, flight entity.Flight) entity.BookingDraft {
	t.Helper()

	var draft entity.BookingDraft
	doJSON(t, http.MethodPost, "/bookings/flight/draft", session, map[string]any{
		"flight": flight,
		"party":  map[string]int{"adults": 2, "infants": 1},
	}, http.StatusCreated, &draft)
	return draft
}

func putPassengers(t *testing.T, session string) entity.BookingDraft {
	t.Helper()

	passenger := map[string]string{
		"type":        "male",
		"family_name": "Nguyen",
		"given_name":  "An",
		"dob":         "1990-04-01",
		"national_id": "012345678901",
		"id_expiry":   "2030-04-01",
	}

	var draft entity.BookingDraft
	doJSON(t, http.MethodPut, "/bookings/flight/draft/passengers", session, map[string]any{
		"passengers": []map[string]string{passenger, passenger, passenger},
		"contact": map[string]string{
			"name":  "Nguyen An",
			"phone": "0901234567",
			"email": "an@example.com",
		},
	}, http.StatusOK, &draft)
	return draft
}

func putAncillaries(t *testing.T, session string) entity.BookingDraft {
	t.Helper()

	var draft entity.BookingDraft
	doJSON(t, http.MethodPut, "/bookings/flight/draft/ancillaries", session, map[string]any{
		"selected_seats":   []string{"A1", "B2", "C1"},
		"selected_baggage": "20kg",
		"selected_meal":    "chicken",
	}, http.StatusOK, &draft)
	return draft
}

func submitBooking(t *testing.T, session string) booking.Confirmation {
	t.Helper()

	var confirmation booking.Confirmation
	doJSON(t, http.MethodPost, "/bookings/flight/submit", session, nil, http.StatusCreated, &confirmation)
	return confirmation
}

func cancelBooking(t *testing.T, bookingID string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, baseURL+"/ops/bookings/"+bookingID, nil)
	require.NoError(t, err)
	req.Header.Set("Correlation-ID", shortuuid.New())

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
}

func assertDraftGone(t *testing.T, session string) {
	t.Helper()

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	req, err := http.NewRequest(http.MethodGet, baseURL+"/bookings/flight/draft", nil)
	require.NoError(t, err)
	req.Header.Set("X-Session-ID", session)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/flights", resp.Header.Get("Location"))
}

func doJSON(t *testing.T, method, path, session string, body any, wantStatus int, out any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, baseURL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Correlation-ID", shortuuid.New())
	req.Header.Set("X-Session-ID", session)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, wantStatus, resp.StatusCode, "%s %s", method, path)

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
}

func waitForHttpServer(t *testing.T) {
	t.Helper()

	require.EventuallyWithT(
		t,
		func(t *assert.CollectT) {
			resp, err := http.Get(baseURL + "/health")
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()

			if assert.Less(t, resp.StatusCode, 300, "API not ready, http status: %d", resp.StatusCode) {
				return
			}
		},
		time.Second*10,
		time.Millisecond*50,
	)
}
