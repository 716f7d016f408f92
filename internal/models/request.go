package models

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type SearchCriteria struct {
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureDate string    `json:"departure_date"`
	ReturnDate    *string   `json:"return_date,omitempty"`
	Passengers    int       `json:"passengers"`
	FareClass     FareClass `json:"fare_class"`
}

func (c *SearchCriteria) Validate() error {
	c.Origin = strings.ToUpper(strings.TrimSpace(c.Origin))
	c.Destination = strings.ToUpper(strings.TrimSpace(c.Destination))

	if c.Origin == "" {
		return ErrMissingOrigin
	}
	if c.Destination == "" {
		return ErrMissingDestination
	}
	if c.DepartureDate == "" {
		return ErrMissingDepartureDate
	}
	depart, err := time.Parse(DateLayout, c.DepartureDate)
	if err != nil {
		return ErrInvalidDate
	}
	if c.ReturnDate != nil && *c.ReturnDate == "" {
		c.ReturnDate = nil
	}
	if c.ReturnDate != nil {
		ret, err := time.Parse(DateLayout, *c.ReturnDate)
		if err != nil {
			return ErrInvalidDate
		}
		if ret.Before(depart) {
			return ErrReturnBeforeDeparture
		}
	}
	if c.Passengers <= 0 {
		c.Passengers = 1
	}
	if c.FareClass == "" {
		c.FareClass = FareEconomy
	}
	if !c.FareClass.Valid() {
		return ErrInvalidFareClass
	}
	return nil
}

func (c SearchCriteria) IsRoundTrip() bool {
	return c.ReturnDate != nil && *c.ReturnDate != ""
}

// ReturnLeg swaps the route and departs on the return date.
func (c SearchCriteria) ReturnLeg() SearchCriteria {
	leg := c
	leg.Origin = c.Destination
	leg.Destination = c.Origin
	if c.ReturnDate != nil {
		leg.DepartureDate = *c.ReturnDate
	}
	leg.ReturnDate = nil
	return leg
}

type StopPreference string

const (
	StopsAny     StopPreference = "any"
	StopsDirect  StopPreference = "direct"
	StopsOneStop StopPreference = "one_stop"
)

type SortKey string

const (
	SortByPrice     SortKey = "price"
	SortByDuration  SortKey = "duration"
	SortByDeparture SortKey = "departure"
	SortByBestValue SortKey = "best_value"
)

// ResultFilters are the user-chosen constraints applied to a result list.
// The zero value admits every offer and sorts by ascending price.
type ResultFilters struct {
	PriceMin         *float64       `json:"price_min,omitempty"`
	PriceMax         *float64       `json:"price_max,omitempty"`
	Carriers         []string       `json:"carriers,omitempty"`
	Stops            StopPreference `json:"stops,omitempty"`
	DepartureTimeMin *string        `json:"departure_time_min,omitempty"`
	DepartureTimeMax *string        `json:"departure_time_max,omitempty"`
	MaxDuration      *int           `json:"max_duration,omitempty"`
	SortBy           SortKey        `json:"sort_by,omitempty"`
	SortOrder        string         `json:"sort_order,omitempty"`
}

func (f *ResultFilters) Validate() error {
	if f.Stops == "" {
		f.Stops = StopsAny
	}
	switch f.Stops {
	case StopsAny, StopsDirect, StopsOneStop:
	default:
		return ErrInvalidStopPreference
	}
	if f.SortBy == "" {
		f.SortBy = SortByPrice
	}
	switch f.SortBy {
	case SortByPrice, SortByDuration, SortByDeparture, SortByBestValue:
	default:
		return ErrInvalidSortKey
	}
	if f.SortOrder == "" {
		f.SortOrder = "asc"
	}
	if f.SortOrder != "asc" && f.SortOrder != "desc" {
		return ErrInvalidSortOrder
	}
	if f.PriceMin != nil && f.PriceMax != nil && *f.PriceMin > *f.PriceMax {
		return ErrInvalidPriceRange
	}
	return nil
}

type SearchRequest struct {
	SearchCriteria
	Filters *ResultFilters `json:"filters,omitempty"`
}

type SelectFlightRequest struct {
	OfferID       string `json:"offer_id"`
	ReturnOfferID string `json:"return_offer_id,omitempty"`
}

type PassengersRequest struct {
	Contact    ContactInfo `json:"contact"`
	Passengers []Passenger `json:"passengers"`
}

type SeatAssignmentRequest struct {
	// Assignments maps passenger ID to seat label, e.g. "12A".
	Assignments map[string]string `json:"assignments"`
}

type BookingLookupRequest struct {
	Reference string `query:"reference"`
	LastName  string `query:"last_name"`
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingOrigin         ValidationError = "origin is required"
	ErrMissingDestination    ValidationError = "destination is required"
	ErrMissingDepartureDate  ValidationError = "departure_date is required"
	ErrInvalidDate           ValidationError = "dates must use YYYY-MM-DD"
	ErrReturnBeforeDeparture ValidationError = "return_date must not be earlier than departure_date"
	ErrInvalidFareClass      ValidationError = "fare_class must be one of economy, premium_economy, business, first"
	ErrInvalidStopPreference ValidationError = "stops must be one of any, direct, one_stop"
	ErrInvalidSortKey        ValidationError = "sort_by must be one of price, duration, departure, best_value"
	ErrInvalidSortOrder      ValidationError = "sort_order must be asc or desc"
	ErrInvalidPriceRange     ValidationError = "price_min must not exceed price_max"
)
