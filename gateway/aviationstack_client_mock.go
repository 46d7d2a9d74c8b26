package gateway

import (
	"context"
	"sync"

	"letgonow/entity"
)

type AviationStackMock struct {
	mock sync.Mutex

	FlightsResponse []entity.Flight
	Err             error

	Requests [][3]string
}

func (c *AviationStackMock) Flights(_ context.Context, depIATA, arrIATA, flightDate string) ([]entity.Flight, error) {
	c.mock.Lock()
	defer c.mock.Unlock()

	c.Requests = append(c.Requests, [3]string{depIATA, arrIATA, flightDate})

	if c.Err != nil {
		return nil, c.Err
	}
	return c.FlightsResponse, nil
}
