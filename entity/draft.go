package entity

import "time"

type ServiceType string

const (
	ServiceTypeFlight ServiceType = "flight"
	ServiceTypeYacht  ServiceType = "yacht"
)

// Step is the wizard screen the draft is currently on.
type Step string

const (
	StepOfferSelected    Step = "offer_selected"
	StepPassengerInfo    Step = "passenger_info"
	StepSeatAndAncillary Step = "seat_and_ancillary"
	StepContactAndParty  Step = "contact_and_party"
	StepPayment          Step = "payment"
	StepConfirmation     Step = "confirmation"
)

type PartyComposition struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// Total counts every traveler, infants included. Passenger records and seat
// selections are both sized by it.
func (p PartyComposition) Total() int {
	return p.Adults + p.Children + p.Infants
}

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

type Passenger struct {
	Type        string `json:"type"`
	FamilyName  string `json:"family_name"`
	GivenName   string `json:"given_name"`
	DateOfBirth string `json:"dob"`
	NationalID  string `json:"national_id"`
	IDExpiry    string `json:"id_expiry"`
}

type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type AncillarySelections struct {
	Seats   []string `json:"selected_seats"`
	Baggage string   `json:"selected_baggage"`
	Meal    string   `json:"selected_meal"`
}

// BookingDraft accumulates a user's in-progress booking across wizard steps.
// It exists only between offer selection and a successful submission; the
// draft store is the single place it lives between steps.
type BookingDraft struct {
	ServiceType ServiceType `json:"service_type"`
	Step        Step        `json:"step"`

	Flight *Flight `json:"flight,omitempty"`
	Yacht  *Yacht  `json:"yacht,omitempty"`

	Party      PartyComposition    `json:"party"`
	Passengers []Passenger         `json:"passengers,omitempty"`
	Contact    Contact             `json:"contact"`
	Ancillary  AncillarySelections `json:"ancillary"`

	RoomQuantities  map[string]int `json:"room_quantities,omitempty"`
	WholeVessel     bool           `json:"whole_vessel,omitempty"`
	CharterDate     string         `json:"charter_date,omitempty"`
	SpecialRequests string         `json:"special_requests,omitempty"`

	// TotalPrice is derived from the offer and the selections above.
	// It is recomputed on every change and never set directly.
	TotalPrice int64 `json:"total_price"`

	CreatedAt time.Time `json:"created_at"`
}
