package entity

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrDraftNotFound = errors.New("booking draft not found")

	ErrSubmissionInFlight = errors.New("a submission for this booking is already in progress")

	// Step gate violations. Each gate reports one aggregate message,
	// not per-field errors.
	ErrIncompleteTravelers = errors.New("please complete all traveler fields")
	ErrSeatCountMismatch   = errors.New("selected seats must match the number of travelers")
	ErrIncompleteContact   = errors.New("please provide full contact details and at least one adult")

	ErrNoPreviousStep = errors.New("there is no earlier step to go back to")
)
