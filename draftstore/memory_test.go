package draftstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"letgonow/entity"
)

func TestMemoryStore_roundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	draft := entity.BookingDraft{
		ServiceType: entity.ServiceTypeFlight,
		Step:        entity.StepPassengerInfo,
		Party:       entity.PartyComposition{Adults: 2, Infants: 1},
		Ancillary:   entity.AncillarySelections{Seats: []string{"A1", "B2"}},
		RoomQuantities: map[string]int{
			"suite": 1,
		},
	}

	require.NoError(t, store.Save(ctx, "flightBookingData:s1", draft))

	loaded, err := store.Load(ctx, "flightBookingData:s1")
	require.NoError(t, err)
	assert.Equal(t, draft.Party, loaded.Party)
	assert.Equal(t, draft.Ancillary.Seats, loaded.Ancillary.Seats)
	assert.Equal(t, draft.RoomQuantities, loaded.RoomQuantities)
}

func TestMemoryStore_missingKey(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Load(context.Background(), "flightBookingData:unknown")
	assert.ErrorIs(t, err, entity.ErrDraftNotFound)
}

func TestMemoryStore_clear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Save(ctx, "yachtBookingData:s1", entity.BookingDraft{ServiceType: entity.ServiceTypeYacht}))
	require.NoError(t, store.Clear(ctx, "yachtBookingData:s1"))

	_, err := store.Load(ctx, "yachtBookingData:s1")
	assert.ErrorIs(t, err, entity.ErrDraftNotFound)

	// clearing a missing key is not an error
	assert.NoError(t, store.Clear(ctx, "yachtBookingData:s1"))
}
