package booking

import "letgonow/entity"

// ValidatePassengers is the gate between the passenger-info step and seat
// selection: one complete record per traveler, infants included. It reports a
// single aggregate error rather than per-field ones.
func ValidatePassengers(party entity.PartyComposition, passengers []entity.Passenger) error {
	if len(passengers) != party.Total() {
		return entity.ErrIncompleteTravelers
	}

	for _, p := range passengers {
		if p.Type != entity.GenderMale && p.Type != entity.GenderFemale {
			return entity.ErrIncompleteTravelers
		}
		if p.FamilyName == "" || p.GivenName == "" || p.DateOfBirth == "" ||
			p.NationalID == "" || p.IDExpiry == "" {
			return entity.ErrIncompleteTravelers
		}
	}

	return nil
}

// ValidateSeats is the gate between seat selection and payment: exactly one
// seat per traveler, all from the fixed inventory.
func ValidateSeats(party entity.PartyComposition, seats []string) error {
	if len(seats) != party.Total() {
		return entity.ErrSeatCountMismatch
	}
	for _, id := range seats {
		if !seatExists(id) {
			return entity.ErrSeatCountMismatch
		}
	}
	return nil
}

// ValidateContact is the yacht flow's gate between contact entry and payment.
func ValidateContact(party entity.PartyComposition, contact entity.Contact) error {
	if contact.Name == "" || contact.Phone == "" || contact.Email == "" {
		return entity.ErrIncompleteContact
	}
	if party.Adults < 1 {
		return entity.ErrIncompleteContact
	}
	return nil
}

// ToggleSeat flips a seat selection. Toggling off always works; toggling on
// is a no-op once one seat per traveler is already picked. It returns the new
// selection and whether anything changed.
func ToggleSeat(party entity.PartyComposition, seats []string, seatID string) ([]string, bool) {
	if !seatExists(seatID) {
		return seats, false
	}

	for i, id := range seats {
		if id == seatID {
			return append(seats[:i:i], seats[i+1:]...), true
		}
	}

	if len(seats) >= party.Total() {
		return seats, false
	}
	return append(seats, seatID), true
}
