package booking

import "letgonow/entity"

type Seat struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// SeatInventory is the fixed cabin map offered on every flight.
var SeatInventory = []Seat{
	{ID: "A1", Type: "window"},
	{ID: "A2", Type: "aisle"},
	{ID: "A3", Type: "middle"},
	{ID: "B1", Type: "window"},
	{ID: "B2", Type: "aisle"},
	{ID: "B3", Type: "middle"},
	{ID: "C1", Type: "window"},
	{ID: "C2", Type: "aisle"},
	{ID: "C3", Type: "middle"},
}

type AncillaryOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

var BaggageOptions = []AncillaryOption{
	{ID: "none", Name: "No baggage", Price: 0},
	{ID: "7kg", Name: "7kg carry-on", Price: 0},
	{ID: "20kg", Name: "20kg checked", Price: 500_000},
	{ID: "30kg", Name: "30kg checked", Price: 800_000},
}

var MealOptions = []AncillaryOption{
	{ID: "none", Name: "No meal", Price: 0},
	{ID: "chicken", Name: "Chicken rice", Price: 150_000},
	{ID: "beef", Name: "Beef rice", Price: 150_000},
	{ID: "vegetarian", Name: "Vegetarian rice", Price: 150_000},
}

func optionPrice(options []AncillaryOption, id string) int64 {
	for _, o := range options {
		if o.ID == id {
			return o.Price
		}
	}
	// unknown tiers price as zero, same as an unselected one
	return 0
}

func seatExists(seatID string) bool {
	for _, s := range SeatInventory {
		if s.ID == seatID {
			return true
		}
	}
	return false
}

// ComputeTotal derives the draft's total price from the selected offer and
// the current selections. It is pure: calling it any number of times without
// changing the draft yields the same value, and it never mutates the draft.
func ComputeTotal(draft entity.BookingDraft) int64 {
	switch draft.ServiceType {
	case entity.ServiceTypeYacht:
		if draft.Yacht == nil {
			return 0
		}
		var total int64
		for _, room := range draft.Yacht.Rooms {
			if draft.WholeVessel {
				total += room.Price
				continue
			}
			total += room.Price * int64(draft.RoomQuantities[room.RoomID])
		}
		return total
	default:
		if draft.Flight == nil {
			return 0
		}
		total := draft.Flight.Price
		total += optionPrice(BaggageOptions, draft.Ancillary.Baggage)
		total += optionPrice(MealOptions, draft.Ancillary.Meal)
		return total
	}
}
