package booking

import (
	"context"
	"fmt"
	"time"

	"letgonow/entity"
)

// DraftStore carries a BookingDraft between independently handled steps.
// Load returns entity.ErrDraftNotFound when the key doesn't resolve.
type DraftStore interface {
	Load(ctx context.Context, key string) (entity.BookingDraft, error)
	Save(ctx context.Context, key string, draft entity.BookingDraft) error
	Clear(ctx context.Context, key string) error
}

// DraftKey is the flow-specific storage key a session's draft lives under.
func DraftKey(serviceType entity.ServiceType, sessionID string) string {
	if serviceType == entity.ServiceTypeYacht {
		return "yachtBookingData:" + sessionID
	}
	return "flightBookingData:" + sessionID
}

// Flow is the selection-and-accumulation state machine. Every mutator loads
// the draft, applies the step's input behind its gate, recomputes the total
// and saves the draft back, so the store always holds a consistent draft.
type Flow struct {
	store DraftStore
}

func NewFlow(store DraftStore) Flow {
	if store == nil {
		panic("missing draft store")
	}
	return Flow{store: store}
}

// StartFlight creates a flight draft from a selected offer. The draft starts
// on the passenger-info step with the offer's base price as the total.
func (f Flow) StartFlight(ctx context.Context, sessionID string, flight entity.Flight, party entity.PartyComposition) (entity.BookingDraft, error) {
	if party.Adults < 1 {
		return entity.BookingDraft{}, entity.ErrIncompleteContact
	}

	draft := entity.BookingDraft{
		ServiceType: entity.ServiceTypeFlight,
		Step:        entity.StepPassengerInfo,
		Flight:      &flight,
		Party:       party,
		CreatedAt:   time.Now().UTC(),
	}
	draft.TotalPrice = ComputeTotal(draft)

	return draft, f.save(ctx, sessionID, draft)
}

// StartYacht creates a yacht draft from a room selection (or the whole
// vessel) on a given charter date.
func (f Flow) StartYacht(ctx context.Context, sessionID string, yacht entity.Yacht, roomQuantities map[string]int, wholeVessel bool, charterDate string) (entity.BookingDraft, error) {
	draft := entity.BookingDraft{
		ServiceType:    entity.ServiceTypeYacht,
		Step:           entity.StepContactAndParty,
		Yacht:          &yacht,
		Party:          entity.PartyComposition{Adults: 1},
		RoomQuantities: roomQuantities,
		WholeVessel:    wholeVessel,
		CharterDate:    charterDate,
		CreatedAt:      time.Now().UTC(),
	}
	draft.TotalPrice = ComputeTotal(draft)

	return draft, f.save(ctx, sessionID, draft)
}

// Load rehydrates the session's draft for a step entry.
func (f Flow) Load(ctx context.Context, serviceType entity.ServiceType, sessionID string) (entity.BookingDraft, error) {
	return f.store.Load(ctx, DraftKey(serviceType, sessionID))
}

// SetPassengers applies the passenger-info step: traveler records plus the
// single contact. Advances to seat selection when the gate passes.
func (f Flow) SetPassengers(ctx context.Context, sessionID string, passengers []entity.Passenger, contact entity.Contact) (entity.BookingDraft, error) {
	draft, err := f.Load(ctx, entity.ServiceTypeFlight, sessionID)
	if err != nil {
		return entity.BookingDraft{}, err
	}

	if err := ValidatePassengers(draft.Party, passengers); err != nil {
		return entity.BookingDraft{}, err
	}
	if contact.Name == "" || contact.Phone == "" || contact.Email == "" {
		return entity.BookingDraft{}, entity.ErrIncompleteContact
	}

	draft.Passengers = passengers
	draft.Contact = contact
	draft.Step = entity.StepSeatAndAncillary
	draft.TotalPrice = ComputeTotal(draft)

	return draft, f.save(ctx, sessionID, draft)
}

// SetAncillaries applies the seat-and-ancillary step. Advances to payment
// when exactly one seat per traveler is selected.
func (f Flow) SetAncillaries(ctx context.Context, sessionID string, seats []string, baggage, meal string) (entity.BookingDraft, error) {
	draft, err := f.Load(ctx, entity.ServiceTypeFlight, sessionID)
	if err != nil {
		return entity.BookingDraft{}, err
	}

	if err := ValidateSeats(draft.Party, seats); err != nil {
		return entity.BookingDraft{}, err
	}

	draft.Ancillary = entity.AncillarySelections{Seats: seats, Baggage: baggage, Meal: meal}
	draft.Step = entity.StepPayment
	draft.TotalPrice = ComputeTotal(draft)

	return draft, f.save(ctx, sessionID, draft)
}

// ToggleSeatSelection flips one seat on the seat map without advancing the
// step. Toggling on past one seat per traveler is a no-op.
func (f Flow) ToggleSeatSelection(ctx context.Context, sessionID, seatID string) (entity.BookingDraft, error) {
	draft, err := f.Load(ctx, entity.ServiceTypeFlight, sessionID)
	if err != nil {
		return entity.BookingDraft{}, err
	}

	seats, changed := ToggleSeat(draft.Party, draft.Ancillary.Seats, seatID)
	if !changed {
		return draft, nil
	}

	draft.Ancillary.Seats = seats
	return draft, f.save(ctx, sessionID, draft)
}

// SetRooms changes the yacht room selection from the contact step.
func (f Flow) SetRooms(ctx context.Context, sessionID string, roomQuantities map[string]int, wholeVessel bool) (entity.BookingDraft, error) {
	draft, err := f.Load(ctx, entity.ServiceTypeYacht, sessionID)
	if err != nil {
		return entity.BookingDraft{}, err
	}

	draft.RoomQuantities = roomQuantities
	draft.WholeVessel = wholeVessel
	draft.TotalPrice = ComputeTotal(draft)

	return draft, f.save(ctx, sessionID, draft)
}

// SetContact applies the yacht flow's contact-and-party step and advances to
// payment.
func (f Flow) SetContact(ctx context.Context, sessionID string, contact entity.Contact, party entity.PartyComposition, specialRequests string) (entity.BookingDraft, error) {
	draft, err := f.Load(ctx, entity.ServiceTypeYacht, sessionID)
	if err != nil {
		return entity.BookingDraft{}, err
	}

	if err := ValidateContact(party, contact); err != nil {
		return entity.BookingDraft{}, err
	}

	draft.Contact = contact
	draft.Party = party
	draft.SpecialRequests = specialRequests
	draft.Step = entity.StepPayment
	draft.TotalPrice = ComputeTotal(draft)

	return draft, f.save(ctx, sessionID, draft)
}

// UpdateParty changes the party composition of an existing draft. Passenger
// records and seat selections depend on the party size, so both are reset
// and the draft drops back to the passenger-info step; stale dependent state
// never survives a party change.
func (f Flow) UpdateParty(ctx context.Context, serviceType entity.ServiceType, sessionID string, party entity.PartyComposition) (entity.BookingDraft, error) {
	if party.Adults < 1 {
		return entity.BookingDraft{}, entity.ErrIncompleteContact
	}

	draft, err := f.Load(ctx, serviceType, sessionID)
	if err != nil {
		return entity.BookingDraft{}, err
	}

	draft.Party = party
	if serviceType == entity.ServiceTypeFlight {
		draft.Passengers = nil
		draft.Ancillary.Seats = nil
		draft.Step = entity.StepPassengerInfo
	}
	draft.TotalPrice = ComputeTotal(draft)

	return draft, f.save(ctx, sessionID, draft)
}

// Back moves the draft one step backwards, keeping all accumulated state.
func (f Flow) Back(ctx context.Context, serviceType entity.ServiceType, sessionID string) (entity.BookingDraft, error) {
	draft, err := f.Load(ctx, serviceType, sessionID)
	if err != nil {
		return entity.BookingDraft{}, err
	}

	prev, err := PrevStep(serviceType, draft.Step)
	if err != nil {
		return entity.BookingDraft{}, err
	}

	draft.Step = prev
	return draft, f.save(ctx, sessionID, draft)
}

func (f Flow) save(ctx context.Context, sessionID string, draft entity.BookingDraft) error {
	key := DraftKey(draft.ServiceType, sessionID)
	if err := f.store.Save(ctx, key, draft); err != nil {
		return fmt.Errorf("could not save booking draft: %w", err)
	}
	return nil
}
