package http

import (
	"context"
	"errors"
	"net/http"

	echoHTTP "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"letgonow/booking"
	"letgonow/entity"
	"letgonow/search"
)

type YachtsRepository interface {
	FindAll(ctx context.Context, query string) ([]entity.Yacht, error)
	Get(ctx context.Context, yachtID string) (entity.Yacht, error)
}

type OpsBookingReadModel interface {
	AllBookings(bookingDateFilter string) ([]entity.OpsBooking, error)
	BookingReadModel(ctx context.Context, bookingID string) (entity.OpsBooking, error)
}

type Server struct {
	addr                string
	e                   *echo.Echo
	commandBus          *cqrs.CommandBus
	flightsSearch       search.Service
	yachtsRepo          YachtsRepository
	flow                booking.Flow
	submitter           *booking.Submitter
	opsBookingReadModel OpsBookingReadModel
}

func NewServer(
	addr string,
	commandBus *cqrs.CommandBus,
	flightsSearch search.Service,
	yachtsRepo YachtsRepository,
	flow booking.Flow,
	submitter *booking.Submitter,
	opsBookingReadModel OpsBookingReadModel,
) *Server {
	e := echoHTTP.NewEcho()
	e.Use(otelecho.Middleware("letgonow"))

	server := &Server{
		addr:                addr,
		e:                   e,
		commandBus:          commandBus,
		flightsSearch:       flightsSearch,
		yachtsRepo:          yachtsRepo,
		flow:                flow,
		submitter:           submitter,
		opsBookingReadModel: opsBookingReadModel,
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/flights/search", server.PostFlightsSearch)
	e.GET("/yachts", server.GetYachts)
	e.GET("/yachts/:id", server.GetYacht)

	e.POST("/bookings/:flow/draft", server.PostDraft)
	e.GET("/bookings/:flow/draft", server.GetDraft)
	e.PUT("/bookings/:flow/draft/party", server.PutParty)
	e.POST("/bookings/:flow/draft/back", server.PostBack)
	e.PUT("/bookings/flight/draft/passengers", server.PutPassengers)
	e.PUT("/bookings/flight/draft/seats/:seat_id", server.PutSeatToggle)
	e.PUT("/bookings/flight/draft/ancillaries", server.PutAncillaries)
	e.PUT("/bookings/yacht/draft/rooms", server.PutRooms)
	e.PUT("/bookings/yacht/draft/contact", server.PutContact)
	e.POST("/bookings/:flow/submit", server.PostSubmit)

	e.GET("/ops/bookings", server.GetOpsBookings)
	e.GET("/ops/bookings/:id", server.GetOpsBooking)
	e.DELETE("/ops/bookings/:id", server.DeleteOpsBooking)

	return server
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		err := s.e.Shutdown(ctx)
		if err != nil {
			log.FromContext(ctx).WithError(err).Error("failed to shutdown HTTP server")
		}
	}()
	log.FromContext(ctx).WithField("addr", s.addr).Info("[HTTP] server listening")
	if err := s.e.Start(s.addr); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// sessionID reads the per-session identity every draft is keyed by.
func sessionID(c echo.Context) (string, error) {
	id := c.Request().Header.Get("X-Session-ID")
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "X-Session-ID header is required")
	}
	return id, nil
}

func serviceTypeParam(c echo.Context) (entity.ServiceType, error) {
	switch c.Param("flow") {
	case "flight":
		return entity.ServiceTypeFlight, nil
	case "yacht":
		return entity.ServiceTypeYacht, nil
	default:
		return "", echo.NewHTTPError(http.StatusNotFound, "unknown booking flow")
	}
}

// draftError maps domain errors onto HTTP semantics. A missing draft is not
// an API error: the caller is redirected to the flow's entry page, the same
// way the original pages bounce users whose stored state expired.
func draftError(c echo.Context, serviceType entity.ServiceType, err error) error {
	switch {
	case errors.Is(err, entity.ErrDraftNotFound):
		return c.Redirect(http.StatusSeeOther, booking.EntryPath(serviceType))
	case errors.Is(err, entity.ErrIncompleteTravelers),
		errors.Is(err, entity.ErrSeatCountMismatch),
		errors.Is(err, entity.ErrIncompleteContact),
		errors.Is(err, entity.ErrNoPreviousStep):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrSubmissionInFlight):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return err
	}
}
