package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"letgonow/entity"
)

func manyFlights(n int) []entity.Flight {
	flights := make([]entity.Flight, n)
	for i := range flights {
		flights[i] = entity.Flight{FlightNumber: fmt.Sprintf("VN%03d", i)}
	}
	return flights
}

func TestPaginate(t *testing.T) {
	results := paginate(manyFlights(12), 2)

	assert.Equal(t, 2, results.Page)
	assert.Equal(t, 12, results.Total)
	assert.Equal(t, 3, results.TotalPages)
	require.Len(t, results.Flights, PageSize)
	assert.Equal(t, "VN005", results.Flights[0].FlightNumber)

	last := paginate(manyFlights(12), 3)
	assert.Len(t, last.Flights, 2)
}

func TestPaginate_clampsOutOfRangePages(t *testing.T) {
	results := paginate(manyFlights(12), 99)
	assert.Equal(t, 3, results.Page)

	results = paginate(manyFlights(12), -1)
	assert.Equal(t, 1, results.Page)
}

func TestPaginate_empty(t *testing.T) {
	results := paginate(nil, 1)
	assert.Empty(t, results.Flights)
	assert.Equal(t, 0, results.TotalPages)
	assert.Empty(t, results.Window)
}

func pages(items []PageItem) []int {
	var out []int
	for _, item := range items {
		if item.Ellipsis {
			out = append(out, 0)
			continue
		}
		out = append(out, item.Page)
	}
	return out
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		totalPages int
		want       []int // 0 marks an ellipsis
	}{
		{"few pages show all", 2, 5, []int{1, 2, 3, 4, 5}},
		{"boundary shows all", 4, 7, []int{1, 2, 3, 4, 5, 6, 7}},
		{"middle collapses both sides", 5, 10, []int{1, 0, 4, 5, 6, 0, 10}},
		{"near start collapses right only", 2, 10, []int{1, 2, 3, 0, 10}},
		{"near end collapses left only", 9, 10, []int{1, 0, 8, 9, 10}},
		{"single page", 1, 1, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pages(PageWindow(tt.current, tt.totalPages)))
		})
	}
}

func TestPageWindow_boundedSize(t *testing.T) {
	for current := 1; current <= 500; current += 13 {
		window := PageWindow(current, 500)
		assert.LessOrEqual(t, len(window), 7, "current=%d", current)
	}
}
