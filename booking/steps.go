package booking

import (
	"fmt"

	"letgonow/entity"
)

// Step order per flow. Transitions are strictly forward or one step back;
// there is no jumping ahead.
var flightSteps = []entity.Step{
	entity.StepOfferSelected,
	entity.StepPassengerInfo,
	entity.StepSeatAndAncillary,
	entity.StepPayment,
	entity.StepConfirmation,
}

var yachtSteps = []entity.Step{
	entity.StepOfferSelected,
	entity.StepContactAndParty,
	entity.StepPayment,
	entity.StepConfirmation,
}

func stepsFor(serviceType entity.ServiceType) []entity.Step {
	if serviceType == entity.ServiceTypeYacht {
		return yachtSteps
	}
	return flightSteps
}

func stepIndex(serviceType entity.ServiceType, step entity.Step) int {
	for i, s := range stepsFor(serviceType) {
		if s == step {
			return i
		}
	}
	return -1
}

// NextStep returns the step after the given one within the flow.
func NextStep(serviceType entity.ServiceType, step entity.Step) (entity.Step, error) {
	steps := stepsFor(serviceType)
	i := stepIndex(serviceType, step)
	if i < 0 || i+1 >= len(steps) {
		return "", fmt.Errorf("no step after %q in %s flow", step, serviceType)
	}
	return steps[i+1], nil
}

// PrevStep returns the step before the given one within the flow.
func PrevStep(serviceType entity.ServiceType, step entity.Step) (entity.Step, error) {
	steps := stepsFor(serviceType)
	i := stepIndex(serviceType, step)
	if i <= 0 {
		return "", fmt.Errorf("%w: %q is the first step of the %s flow", entity.ErrNoPreviousStep, step, serviceType)
	}
	return steps[i-1], nil
}

// EntryPath is where a user with no draft is sent back to.
func EntryPath(serviceType entity.ServiceType) string {
	if serviceType == entity.ServiceTypeYacht {
		return "/yachts"
	}
	return "/flights"
}
