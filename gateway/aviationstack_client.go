package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"letgonow/entity"
)

const defaultAviationStackBaseURL = "http://api.aviationstack.com/v1"

// AviationStackClient fetches scheduled flights from the AviationStack API.
// Upstream records carry no fare data; prices are left zero for the search
// stage's pricing policy to fill.
type AviationStackClient struct {
	httpClient *http.Client
	baseURL    string
	accessKey  string
}

func NewAviationStackClient(accessKey string) *AviationStackClient {
	return &AviationStackClient{
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   10 * time.Second,
		},
		baseURL:   defaultAviationStackBaseURL,
		accessKey: accessKey,
	}
}

type aviationStackResponse struct {
	Data []struct {
		FlightDate   string `json:"flight_date"`
		FlightStatus string `json:"flight_status"`
		Departure    struct {
			Airport   string    `json:"airport"`
			IATA      string    `json:"iata"`
			Scheduled time.Time `json:"scheduled"`
			Terminal  string    `json:"terminal"`
			Gate      string    `json:"gate"`
		} `json:"departure"`
		Arrival struct {
			Airport   string    `json:"airport"`
			IATA      string    `json:"iata"`
			Scheduled time.Time `json:"scheduled"`
			Terminal  string    `json:"terminal"`
			Gate      string    `json:"gate"`
		} `json:"arrival"`
		Airline struct {
			Name string `json:"name"`
			IATA string `json:"iata"`
		} `json:"airline"`
		Flight struct {
			IATA string `json:"iata"`
		} `json:"flight"`
	} `json:"data"`
}

func (c *AviationStackClient) Flights(ctx context.Context, depIATA, arrIATA, flightDate string) ([]entity.Flight, error) {
	if c.accessKey == "" {
		return nil, fmt.Errorf("aviationstack access key is not configured")
	}

	query := url.Values{}
	query.Set("access_key", c.accessKey)
	if depIATA != "" {
		query.Set("dep_iata", depIATA)
	}
	if arrIATA != "" {
		query.Set("arr_iata", arrIATA)
	}
	if flightDate != "" {
		query.Set("flight_date", flightDate)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/flights?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not build flights request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not fetch flights: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code from aviationstack: %d", resp.StatusCode)
	}

	var payload aviationStackResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("could not decode flights response: %w", err)
	}

	flights := make([]entity.Flight, 0, len(payload.Data))
	for _, f := range payload.Data {
		flights = append(flights, entity.Flight{
			FlightNumber: f.Flight.IATA,
			Airline: entity.Airline{
				IATA: f.Airline.IATA,
				Name: f.Airline.Name,
			},
			Departure: entity.FlightPoint{
				Airport:   f.Departure.Airport,
				IATA:      f.Departure.IATA,
				Scheduled: f.Departure.Scheduled,
				Terminal:  f.Departure.Terminal,
				Gate:      f.Departure.Gate,
			},
			Arrival: entity.FlightPoint{
				Airport:   f.Arrival.Airport,
				IATA:      f.Arrival.IATA,
				Scheduled: f.Arrival.Scheduled,
				Terminal:  f.Arrival.Terminal,
				Gate:      f.Arrival.Gate,
			},
			Status: f.FlightStatus,
		})
	}

	return flights, nil
}
