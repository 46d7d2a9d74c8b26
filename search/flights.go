package search

import (
	"context"
	"math/rand"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/samber/lo"

	"letgonow/entity"
	"letgonow/metrics"
)

// FlightsProvider is the upstream flight-data collaborator. Implementations
// may return flights without a price; the service's pricing policy fills it.
type FlightsProvider interface {
	Flights(ctx context.Context, depIATA, arrIATA, flightDate string) ([]entity.Flight, error)
}

// PricingPolicy fills in prices and seat counts the upstream doesn't supply.
// The default is a placeholder, not real fare data; a real fare source can
// replace it without touching the rest of the search stage.
type PricingPolicy interface {
	Price(airlineIATA string) int64
	SeatsLeft() int
}

// Only domestic carriers are offered; upstream results outside this set are
// dropped and display names are normalized.
var airlineNames = map[string]string{
	"HVN": "Vietnam Airlines",
	"VJ":  "Vietjet Air",
	"QH":  "Bamboo Airways",
}

type Criteria struct {
	Departure     string   `json:"departure"`
	Destination   string   `json:"destination"`
	DepartureDate string   `json:"departure_date"`
	ReturnDate    string   `json:"return_date,omitempty"`
	Airlines      []string `json:"airlines,omitempty"`
	Page          int      `json:"page,omitempty"`
}

type Results struct {
	Flights    []entity.Flight `json:"flights"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	Total      int             `json:"total"`
	TotalPages int             `json:"total_pages"`
	Window     []PageItem      `json:"window"`
}

type Service struct {
	provider FlightsProvider
	pricing  PricingPolicy
}

func NewService(provider FlightsProvider, pricing PricingPolicy) Service {
	if provider == nil {
		panic("missing flights provider")
	}
	if pricing == nil {
		pricing = NewCarrierBandPolicy()
	}
	return Service{provider: provider, pricing: pricing}
}

// Search produces the filtered, priced, paginated result page for the given
// criteria. Upstream failure is non-fatal: the fixed fallback dataset is
// returned instead, so the caller always gets some result view.
func (s Service) Search(ctx context.Context, criteria Criteria) Results {
	flights, err := s.provider.Flights(ctx, criteria.Departure, criteria.Destination, criteria.DepartureDate)
	if err == nil && criteria.ReturnDate != "" {
		var returnFlights []entity.Flight
		returnFlights, err = s.provider.Flights(ctx, criteria.Destination, criteria.Departure, criteria.ReturnDate)
		flights = append(flights, returnFlights...)
	}
	if err != nil {
		log.FromContext(ctx).WithError(err).Warn("flight provider unavailable, falling back to fixture data")
		flights = FallbackFlights()
		metrics.FlightSearchesTotal.WithLabelValues("fallback").Inc()
	} else {
		metrics.FlightSearchesTotal.WithLabelValues("provider").Inc()
	}

	flights = lo.Filter(flights, func(f entity.Flight, _ int) bool {
		_, ok := airlineNames[f.Airline.IATA]
		return ok
	})
	flights = lo.Map(flights, func(f entity.Flight, _ int) entity.Flight {
		f.Airline.Name = airlineNames[f.Airline.IATA]
		if f.Price == 0 {
			f.Price = s.pricing.Price(f.Airline.IATA)
		}
		if f.SeatsLeft == 0 {
			f.SeatsLeft = s.pricing.SeatsLeft()
		}
		return f
	})

	if len(criteria.Airlines) > 0 {
		flights = lo.Filter(flights, func(f entity.Flight, _ int) bool {
			return lo.Contains(criteria.Airlines, f.Airline.Name)
		})
	}

	return paginate(flights, criteria.Page)
}

// CarrierBandPolicy prices unpriced flights with a pseudo-random value in a
// fixed per-carrier band.
type CarrierBandPolicy struct {
	rand *rand.Rand
}

func NewCarrierBandPolicy() *CarrierBandPolicy {
	return &CarrierBandPolicy{rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (p *CarrierBandPolicy) Price(airlineIATA string) int64 {
	switch airlineIATA {
	case "HVN":
		return p.between(1_200_000, 2_500_000)
	case "QH":
		return p.between(900_000, 1_800_000)
	case "VJ":
		return p.between(800_000, 1_600_000)
	default:
		return p.between(1_000_000, 2_000_000)
	}
}

func (p *CarrierBandPolicy) SeatsLeft() int {
	return int(p.between(5, 30))
}

func (p *CarrierBandPolicy) between(min, max int64) int64 {
	return min + p.rand.Int63n(max-min+1)
}

// FallbackFlights is the fixed dataset rendered when the upstream provider
// is unavailable.
func FallbackFlights() []entity.Flight {
	return []entity.Flight{
		{
			FlightNumber: "VN123",
			Airline:      entity.Airline{IATA: "HVN", Name: "Vietnam Airlines"},
			Departure: entity.FlightPoint{
				Airport:   "Noi Bai International Airport",
				IATA:      "HAN",
				Scheduled: fallbackTime(8),
			},
			Arrival: entity.FlightPoint{
				Airport:   "Tan Son Nhat International Airport",
				IATA:      "SGN",
				Scheduled: fallbackTime(10),
			},
			Status:    "scheduled",
			Price:     2_500_000,
			SeatsLeft: 12,
		},
		{
			FlightNumber: "VJ456",
			Airline:      entity.Airline{IATA: "VJ", Name: "Vietjet Air"},
			Departure: entity.FlightPoint{
				Airport:   "Noi Bai International Airport",
				IATA:      "HAN",
				Scheduled: fallbackTime(12),
			},
			Arrival: entity.FlightPoint{
				Airport:   "Tan Son Nhat International Airport",
				IATA:      "SGN",
				Scheduled: fallbackTime(14),
			},
			Status:    "scheduled",
			Price:     2_000_000,
			SeatsLeft: 20,
		},
	}
}

func fallbackTime(hour int) time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.UTC)
}
