package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"letgonow/draftstore"
	"letgonow/entity"
)

func TestFlow_flightHappyPath(t *testing.T) {
	ctx := context.Background()
	flow := NewFlow(draftstore.NewMemoryStore())
	session := "session-1"

	draft, err := flow.StartFlight(ctx, session, *testFlight(2_000_000), entity.PartyComposition{Adults: 2})
	require.NoError(t, err)
	assert.Equal(t, entity.StepPassengerInfo, draft.Step)
	assert.Equal(t, int64(2_000_000), draft.TotalPrice)

	contact := entity.Contact{Name: "Tran Binh", Phone: "0901234567", Email: "binh@example.com"}

	draft, err = flow.SetPassengers(ctx, session, []entity.Passenger{completePassenger(), completePassenger()}, contact)
	require.NoError(t, err)
	assert.Equal(t, entity.StepSeatAndAncillary, draft.Step)

	draft, err = flow.SetAncillaries(ctx, session, []string{"A1", "B2"}, "20kg", "chicken")
	require.NoError(t, err)
	assert.Equal(t, entity.StepPayment, draft.Step)
	assert.Equal(t, int64(2_650_000), draft.TotalPrice)

	// the saved draft survives a reload
	loaded, err := flow.Load(ctx, entity.ServiceTypeFlight, session)
	require.NoError(t, err)
	assert.Equal(t, draft, loaded)
}

func TestFlow_gateRefusesAdvance(t *testing.T) {
	ctx := context.Background()
	flow := NewFlow(draftstore.NewMemoryStore())
	session := "session-1"

	_, err := flow.StartFlight(ctx, session, *testFlight(2_000_000), entity.PartyComposition{Adults: 2})
	require.NoError(t, err)

	contact := entity.Contact{Name: "Tran Binh", Phone: "0901234567", Email: "binh@example.com"}

	_, err = flow.SetPassengers(ctx, session, []entity.Passenger{completePassenger()}, contact)
	assert.ErrorIs(t, err, entity.ErrIncompleteTravelers)

	// the draft is still on the passenger step with nothing applied
	draft, err := flow.Load(ctx, entity.ServiceTypeFlight, session)
	require.NoError(t, err)
	assert.Equal(t, entity.StepPassengerInfo, draft.Step)
	assert.Empty(t, draft.Passengers)
}

func TestFlow_partyChangeResetsDependentState(t *testing.T) {
	ctx := context.Background()
	flow := NewFlow(draftstore.NewMemoryStore())
	session := "session-1"

	_, err := flow.StartFlight(ctx, session, *testFlight(2_000_000), entity.PartyComposition{Adults: 2})
	require.NoError(t, err)

	contact := entity.Contact{Name: "Tran Binh", Phone: "0901234567", Email: "binh@example.com"}
	_, err = flow.SetPassengers(ctx, session, []entity.Passenger{completePassenger(), completePassenger()}, contact)
	require.NoError(t, err)
	_, err = flow.SetAncillaries(ctx, session, []string{"A1", "B2"}, "none", "none")
	require.NoError(t, err)

	draft, err := flow.UpdateParty(ctx, entity.ServiceTypeFlight, session, entity.PartyComposition{Adults: 3})
	require.NoError(t, err)

	assert.Equal(t, entity.StepPassengerInfo, draft.Step)
	assert.Empty(t, draft.Passengers, "passenger records depend on party size")
	assert.Empty(t, draft.Ancillary.Seats, "seat selections depend on party size")
	assert.Equal(t, "Tran Binh", draft.Contact.Name, "contact survives a party change")
}

func TestFlow_toggleSeatSelection(t *testing.T) {
	ctx := context.Background()
	flow := NewFlow(draftstore.NewMemoryStore())
	session := "session-1"

	_, err := flow.StartFlight(ctx, session, *testFlight(2_000_000), entity.PartyComposition{Adults: 2})
	require.NoError(t, err)

	draft, err := flow.ToggleSeatSelection(ctx, session, "A1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, draft.Ancillary.Seats)

	draft, err = flow.ToggleSeatSelection(ctx, session, "B2")
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B2"}, draft.Ancillary.Seats)

	// at capacity the toggle is a silent no-op
	draft, err = flow.ToggleSeatSelection(ctx, session, "C3")
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B2"}, draft.Ancillary.Seats)

	draft, err = flow.ToggleSeatSelection(ctx, session, "A1")
	require.NoError(t, err)
	assert.Equal(t, []string{"B2"}, draft.Ancillary.Seats)
}

func TestFlow_back(t *testing.T) {
	ctx := context.Background()
	flow := NewFlow(draftstore.NewMemoryStore())
	session := "session-1"

	_, err := flow.StartFlight(ctx, session, *testFlight(2_000_000), entity.PartyComposition{Adults: 1})
	require.NoError(t, err)

	contact := entity.Contact{Name: "Tran Binh", Phone: "0901234567", Email: "binh@example.com"}
	_, err = flow.SetPassengers(ctx, session, []entity.Passenger{completePassenger()}, contact)
	require.NoError(t, err)

	draft, err := flow.Back(ctx, entity.ServiceTypeFlight, session)
	require.NoError(t, err)
	assert.Equal(t, entity.StepPassengerInfo, draft.Step)
	assert.Len(t, draft.Passengers, 1, "back keeps accumulated state")

	// no step before offer selection
	_, err = flow.Back(ctx, entity.ServiceTypeFlight, session)
	require.NoError(t, err)
	_, err = flow.Back(ctx, entity.ServiceTypeFlight, session)
	assert.ErrorIs(t, err, entity.ErrNoPreviousStep)
}

func TestFlow_missingDraft(t *testing.T) {
	ctx := context.Background()
	flow := NewFlow(draftstore.NewMemoryStore())

	_, err := flow.Load(ctx, entity.ServiceTypeFlight, "nobody")
	assert.ErrorIs(t, err, entity.ErrDraftNotFound)

	_, err = flow.SetAncillaries(ctx, "nobody", []string{"A1"}, "none", "none")
	assert.ErrorIs(t, err, entity.ErrDraftNotFound)
}

func TestFlow_yachtFlow(t *testing.T) {
	ctx := context.Background()
	flow := NewFlow(draftstore.NewMemoryStore())
	session := "session-1"

	draft, err := flow.StartYacht(ctx, session, *testYacht(), map[string]int{"suite": 1, "deluxe": 2}, false, "2026-09-20")
	require.NoError(t, err)
	assert.Equal(t, entity.StepContactAndParty, draft.Step)
	assert.Equal(t, int64(6_000_000), draft.TotalPrice)

	draft, err = flow.SetRooms(ctx, session, nil, true)
	require.NoError(t, err)
	assert.Equal(t, int64(4_500_000), draft.TotalPrice)

	contact := entity.Contact{Name: "Tran Binh", Phone: "0901234567", Email: "binh@example.com"}
	draft, err = flow.SetContact(ctx, session, contact, entity.PartyComposition{Adults: 4}, "late checkout please")
	require.NoError(t, err)
	assert.Equal(t, entity.StepPayment, draft.Step)
	assert.Equal(t, "late checkout please", draft.SpecialRequests)
}

func TestFlow_flowsAreIndependent(t *testing.T) {
	ctx := context.Background()
	flow := NewFlow(draftstore.NewMemoryStore())
	session := "session-1"

	_, err := flow.StartFlight(ctx, session, *testFlight(2_000_000), entity.PartyComposition{Adults: 1})
	require.NoError(t, err)
	_, err = flow.StartYacht(ctx, session, *testYacht(), map[string]int{"suite": 1}, false, "2026-09-20")
	require.NoError(t, err)

	flightDraft, err := flow.Load(ctx, entity.ServiceTypeFlight, session)
	require.NoError(t, err)
	yachtDraft, err := flow.Load(ctx, entity.ServiceTypeYacht, session)
	require.NoError(t, err)

	assert.Equal(t, entity.ServiceTypeFlight, flightDraft.ServiceType)
	assert.Equal(t, entity.ServiceTypeYacht, yachtDraft.ServiceType)
}
