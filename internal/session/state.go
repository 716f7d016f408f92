// Package session holds the working data of one booking flow. A State is
// loaded from a Store at the start of a request, carried on the request
// context, and saved back when the step completes.
package session

import (
	"encoding/json"
	"slices"

	"github.com/google/uuid"

	"github.com/dharmasatrya/flightbooking/internal/models"
)

// State is the booking flow's working data. Setters replace values
// wholesale; there is no merge and no history.
type State struct {
	id         string
	criteria   *models.SearchCriteria
	filters    models.ResultFilters
	selected   *models.FlightOffer
	ret        *models.FlightOffer
	passengers []models.Passenger
	contact    models.ContactInfo
	booking    *models.BookingRecord
}

func New() *State {
	return &State{id: uuid.NewString()}
}

func (s *State) ID() string {
	return s.id
}

func (s *State) SearchCriteria() *models.SearchCriteria {
	return s.criteria
}

// SetSearchCriteria does not clear a previously selected flight or
// passengers. Steps guard against stale state themselves.
func (s *State) SetSearchCriteria(c models.SearchCriteria) {
	s.criteria = &c
}

func (s *State) Filters() models.ResultFilters {
	return s.filters
}

func (s *State) SetFilters(f models.ResultFilters) {
	s.filters = f
}

func (s *State) SelectedFlight() *models.FlightOffer {
	return s.selected
}

// SetSelectedFlight with nil means no flight is chosen.
func (s *State) SetSelectedFlight(o *models.FlightOffer) {
	s.selected = o
}

func (s *State) ReturnFlight() *models.FlightOffer {
	return s.ret
}

func (s *State) SetReturnFlight(o *models.FlightOffer) {
	s.ret = o
}

func (s *State) Passengers() []models.Passenger {
	return slices.Clone(s.passengers)
}

func (s *State) SetPassengers(ps []models.Passenger) {
	s.passengers = slices.Clone(ps)
}

func (s *State) Contact() models.ContactInfo {
	return s.contact
}

func (s *State) SetContact(c models.ContactInfo) {
	s.contact = c
}

func (s *State) BookingRecord() *models.BookingRecord {
	return s.booking
}

func (s *State) SetBookingRecord(r *models.BookingRecord) {
	s.booking = r
}

// Reset discards everything but the session ID.
func (s *State) Reset() {
	*s = State{id: s.id}
}

type snapshot struct {
	ID             string                 `json:"id"`
	SearchCriteria *models.SearchCriteria `json:"search_criteria,omitempty"`
	Filters        models.ResultFilters   `json:"filters"`
	SelectedFlight *models.FlightOffer    `json:"selected_flight,omitempty"`
	ReturnFlight   *models.FlightOffer    `json:"return_flight,omitempty"`
	Passengers     []models.Passenger     `json:"passengers,omitempty"`
	Contact        models.ContactInfo     `json:"contact"`
	BookingRecord  *models.BookingRecord  `json:"booking,omitempty"`
}

func (s *State) MarshalJSON() ([]byte, error) {
	return json.Marshal(snapshot{
		ID:             s.id,
		SearchCriteria: s.criteria,
		Filters:        s.filters,
		SelectedFlight: s.selected,
		ReturnFlight:   s.ret,
		Passengers:     s.passengers,
		Contact:        s.contact,
		BookingRecord:  s.booking,
	})
}

func (s *State) UnmarshalJSON(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	*s = State{
		id:         snap.ID,
		criteria:   snap.SearchCriteria,
		filters:    snap.Filters,
		selected:   snap.SelectedFlight,
		ret:        snap.ReturnFlight,
		passengers: snap.Passengers,
		contact:    snap.Contact,
		booking:    snap.BookingRecord,
	}
	return nil
}
