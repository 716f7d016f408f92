package models

import (
	"errors"
	"fmt"
	"time"
)

type FareClass string

const (
	FareEconomy        FareClass = "economy"
	FarePremiumEconomy FareClass = "premium_economy"
	FareBusiness       FareClass = "business"
	FareFirst          FareClass = "first"
)

func (f FareClass) Valid() bool {
	switch f {
	case FareEconomy, FarePremiumEconomy, FareBusiness, FareFirst:
		return true
	}
	return false
}

type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type Airline struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

type Duration struct {
	Hours        int `json:"hours"`
	Minutes      int `json:"minutes"`
	TotalMinutes int `json:"total_minutes"`
}

func NewDuration(totalMinutes int) Duration {
	return Duration{
		Hours:        totalMinutes / 60,
		Minutes:      totalMinutes % 60,
		TotalMinutes: totalMinutes,
	}
}

type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type Baggage struct {
	Cabin   string `json:"cabin"`
	Checked string `json:"checked"`
}

// Segment is one physical flight leg.
type Segment struct {
	DepartureAirport Airport   `json:"departure_airport"`
	ArrivalAirport   Airport   `json:"arrival_airport"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	Duration         Duration  `json:"duration"`
	Airline          Airline   `json:"airline"`
	FlightNumber     string    `json:"flight_number"`
	Aircraft         string    `json:"aircraft"`
}

// FlightOffer is a priced itinerary of one or more segments. Offers are
// immutable once loaded from the catalog.
type FlightOffer struct {
	ID             string    `json:"id"`
	Segments       []Segment `json:"segments"`
	Price          Price     `json:"price"`
	SeatsAvailable int       `json:"seats_available"`
	FareClass      FareClass `json:"fare_class"`
	Refundable     bool      `json:"refundable"`
	Baggage        Baggage   `json:"baggage"`
	BestValueScore float64   `json:"best_value_score,omitempty"`
}

var (
	ErrNoSegments        = errors.New("offer has no segments")
	ErrSegmentsUnordered = errors.New("segments are not in chronological order")
)

// Validate checks the segment rules: at least one segment, and each
// segment departs no earlier than the previous one arrives.
func (o FlightOffer) Validate() error {
	if len(o.Segments) == 0 {
		return fmt.Errorf("offer %s: %w", o.ID, ErrNoSegments)
	}
	for i := 1; i < len(o.Segments); i++ {
		if o.Segments[i].DepartureTime.Before(o.Segments[i-1].ArrivalTime) {
			return fmt.Errorf("offer %s segment %d: %w", o.ID, i, ErrSegmentsUnordered)
		}
	}
	return nil
}

func (o FlightOffer) FirstSegment() Segment {
	return o.Segments[0]
}

func (o FlightOffer) LastSegment() Segment {
	return o.Segments[len(o.Segments)-1]
}

func (o FlightOffer) Stops() int {
	return len(o.Segments) - 1
}

func (o FlightOffer) Carrier() string {
	return o.Segments[0].Airline.Code
}

// TotalDuration spans first departure to last arrival, layovers included.
func (o FlightOffer) TotalDuration() Duration {
	if len(o.Segments) == 1 {
		return o.Segments[0].Duration
	}
	minutes := int(o.LastSegment().ArrivalTime.Sub(o.FirstSegment().DepartureTime).Minutes())
	return NewDuration(minutes)
}
