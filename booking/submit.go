package booking

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"letgonow/entity"
)

// RedirectSeconds is how long the confirmation view counts down before
// sending the user back to the flow's entry page.
const RedirectSeconds = 5

type BookingsRepository interface {
	Store(ctx context.Context, booking entity.BookingRecord) error
}

// Confirmation is what the confirmation view renders after a successful
// submission. Its BookingCode is the same one stored on the record.
type Confirmation struct {
	BookingCode     string               `json:"booking_code"`
	Booking         entity.BookingRecord `json:"booking"`
	RedirectSeconds int                  `json:"redirect_seconds"`
	RedirectTo      string               `json:"redirect_to"`
}

// Submitter turns an accumulated draft into a stored BookingRecord, exactly
// once per user-confirmed payment action.
type Submitter struct {
	store    DraftStore
	bookings BookingsRepository

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewSubmitter(store DraftStore, bookings BookingsRepository) *Submitter {
	if store == nil {
		panic("missing draft store")
	}
	if bookings == nil {
		panic("missing bookings repository")
	}

	return &Submitter{
		store:    store,
		bookings: bookings,
		inFlight: map[string]struct{}{},
	}
}

// Submit validates the draft's final gates, normalizes it into a
// BookingRecord, stores the record and clears the draft. On a store failure
// the draft is preserved so the user can retry. A second submission for the
// same draft while one is outstanding is refused.
func (s *Submitter) Submit(ctx context.Context, serviceType entity.ServiceType, sessionID string) (Confirmation, error) {
	key := DraftKey(serviceType, sessionID)

	if !s.begin(key) {
		return Confirmation{}, entity.ErrSubmissionInFlight
	}
	defer s.end(key)

	draft, err := s.store.Load(ctx, key)
	if err != nil {
		return Confirmation{}, err
	}

	if err := validateForSubmission(draft); err != nil {
		return Confirmation{}, err
	}

	record := NormalizeDraft(draft, time.Now().UTC(), NewBookingCode(serviceType))

	if err := s.bookings.Store(ctx, record); err != nil {
		return Confirmation{}, fmt.Errorf("could not store booking: %w", err)
	}

	if err := s.store.Clear(ctx, key); err != nil {
		return Confirmation{}, fmt.Errorf("booking stored but draft not cleared: %w", err)
	}

	return Confirmation{
		BookingCode:     record.BookingCode,
		Booking:         record,
		RedirectSeconds: RedirectSeconds,
		RedirectTo:      EntryPath(serviceType),
	}, nil
}

func (s *Submitter) begin(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inFlight[key]; ok {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *Submitter) end(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}

func validateForSubmission(draft entity.BookingDraft) error {
	switch draft.ServiceType {
	case entity.ServiceTypeYacht:
		return ValidateContact(draft.Party, draft.Contact)
	default:
		if err := ValidatePassengers(draft.Party, draft.Passengers); err != nil {
			return err
		}
		return ValidateSeats(draft.Party, draft.Ancillary.Seats)
	}
}

// NormalizeDraft projects a draft into the denormalized record the bookings
// store expects. It never mutates the draft.
func NormalizeDraft(draft entity.BookingDraft, bookedAt time.Time, bookingCode string) entity.BookingRecord {
	if bookedAt.IsZero() {
		bookedAt = time.Now().UTC()
	}

	record := entity.BookingRecord{
		BookingID:       uuid.NewString(),
		BookingCode:     bookingCode,
		ServiceType:     draft.ServiceType,
		BookingDate:     bookedAt,
		NumberOfGuests:  draft.Party.Total(),
		TotalPrice:      ComputeTotal(draft),
		CustomerName:    draft.Contact.Name,
		CustomerEmail:   draft.Contact.Email,
		CustomerPhone:   draft.Contact.Phone,
		SpecialRequests: draft.SpecialRequests,
		Status:          entity.BookingStatusConfirmed,
		PaymentStatus:   entity.PaymentStatusCompleted,
	}

	switch draft.ServiceType {
	case entity.ServiceTypeYacht:
		if draft.Yacht != nil {
			record.YachtID = draft.Yacht.YachtID
		}
	default:
		if draft.Flight != nil {
			departure := draft.Flight.Departure.Scheduled
			record.FlightNumber = draft.Flight.FlightNumber
			record.FlightFrom = draft.Flight.Departure.IATA
			record.FlightTo = draft.Flight.Arrival.IATA
			record.DepartureDate = &departure
			record.Airline = draft.Flight.Airline.Name
		}
	}

	return record
}

const bookingCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
const bookingCodeLength = 6

// NewBookingCode generates the customer-facing booking code: a flow-specific
// prefix followed by six random alphanumerics. It is generated once at
// submission and carried through to both the stored record and the
// confirmation view.
func NewBookingCode(serviceType entity.ServiceType) string {
	prefix := "FL"
	if serviceType == entity.ServiceTypeYacht {
		prefix = "YACHT"
	}

	code := make([]byte, bookingCodeLength)
	for i := range code {
		code[i] = bookingCodeAlphabet[rand.Intn(len(bookingCodeAlphabet))]
	}

	return prefix + string(code)
}
