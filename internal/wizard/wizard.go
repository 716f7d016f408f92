// Package wizard names the booking steps and decides which step a session
// may enter.
package wizard

import (
	"github.com/google/uuid"

	"github.com/dharmasatrya/flightbooking/internal/models"
	"github.com/dharmasatrya/flightbooking/internal/session"
)

type Step string

const (
	StepSearch        Step = "search"
	StepResults       Step = "results"
	StepFlightDetails Step = "flight_details"
	StepPassengerInfo Step = "passenger_info"
	StepPayment       Step = "payment"
	StepConfirmation  Step = "confirmation"
)

var order = []Step{StepSearch, StepResults, StepFlightDetails, StepPassengerInfo, StepPayment, StepConfirmation}

// Next returns the step that follows s, or s itself for the last step.
func Next(s Step) Step {
	for i, step := range order {
		if step == s && i+1 < len(order) {
			return order[i+1]
		}
	}
	return s
}

// Route is the API path a client should call to render a step.
func Route(s Step) string {
	switch s {
	case StepResults:
		return "/api/v1/flights/results"
	case StepPassengerInfo:
		return "/api/v1/booking/passengers"
	case StepPayment:
		return "/api/v1/booking/quote"
	case StepConfirmation:
		return "/api/v1/booking/confirmation"
	default:
		return "/api/v1/flights/search"
	}
}

// Guard reports whether state holds what step needs. When it does not, the
// returned step is where the flow should resume.
func Guard(state *session.State, step Step) (Step, bool) {
	switch step {
	case StepResults:
		if state.SearchCriteria() == nil {
			return StepSearch, false
		}
	case StepPassengerInfo:
		if state.SelectedFlight() == nil {
			return StepSearch, false
		}
	case StepPayment:
		if state.SelectedFlight() == nil || len(state.Passengers()) == 0 {
			return StepSearch, false
		}
	case StepConfirmation:
		if state.BookingRecord() == nil {
			return StepSearch, false
		}
	}
	return step, true
}

// NewPassengers returns n blank passengers with fresh IDs. When there is more
// than one, the last is a child and the rest are adults.
func NewPassengers(n int) []models.Passenger {
	if n < 1 {
		n = 1
	}
	out := make([]models.Passenger, n)
	for i := range out {
		typ := models.PassengerAdult
		if n > 1 && i == n-1 {
			typ = models.PassengerChild
		}
		out[i] = models.Passenger{
			ID:              uuid.NewString(),
			Type:            typ,
			SpecialRequests: []string{},
		}
	}
	return out
}
