package entity

import "time"

type Airline struct {
	IATA string `json:"iata"`
	Name string `json:"name"`
}

type FlightPoint struct {
	Airport   string    `json:"airport"`
	IATA      string    `json:"iata"`
	Scheduled time.Time `json:"scheduled"`
	Terminal  string    `json:"terminal,omitempty"`
	Gate      string    `json:"gate,omitempty"`
}

// Flight is a single priceable flight offer. Price is in VND; a zero price
// means the upstream provider didn't supply one and a pricing policy fills it.
type Flight struct {
	FlightNumber string      `json:"flight_number"`
	Airline      Airline     `json:"airline"`
	Departure    FlightPoint `json:"departure"`
	Arrival      FlightPoint `json:"arrival"`
	Status       string      `json:"status"`
	Price        int64       `json:"price"`
	SeatsLeft    int         `json:"seats_left"`
}
