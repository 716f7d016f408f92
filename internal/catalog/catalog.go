// Package catalog is the read-only flight data source. Offers are loaded
// once from an embedded fixture and handed out as copies.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dharmasatrya/flightbooking/internal/catalog/data"
	"github.com/dharmasatrya/flightbooking/internal/models"
	"github.com/dharmasatrya/flightbooking/internal/task"
	"github.com/dharmasatrya/flightbooking/internal/timefmt"
)

var ErrOfferNotFound = errors.New("flight offer not found")

type Config struct {
	// SearchLatency and DetailsLatency simulate a remote backend.
	SearchLatency  time.Duration
	DetailsLatency time.Duration
}

func DefaultConfig() Config {
	return Config{
		SearchLatency:  1500 * time.Millisecond,
		DetailsLatency: 800 * time.Millisecond,
	}
}

type catalogFile struct {
	Offers []rawOffer `json:"offers"`
}

type rawOffer struct {
	ID             string         `json:"id"`
	Segments       []rawSegment   `json:"segments"`
	Price          models.Price   `json:"price"`
	SeatsAvailable int            `json:"seats_available"`
	FareClass      string         `json:"fare_class"`
	Refundable     bool           `json:"refundable"`
	Baggage        models.Baggage `json:"baggage"`
}

type rawSegment struct {
	DepartureAirport models.Airport `json:"departure_airport"`
	ArrivalAirport   models.Airport `json:"arrival_airport"`
	DepartureTime    string         `json:"departure_time"`
	ArrivalTime      string         `json:"arrival_time"`
	Duration         string         `json:"duration"`
	Airline          models.Airline `json:"airline"`
	FlightNumber     string         `json:"flight_number"`
	Aircraft         string         `json:"aircraft"`
}

type Catalog struct {
	offers []models.FlightOffer
	byID   map[string]int
	config Config
}

func New(cfg Config) (*Catalog, error) {
	return NewFromJSON(data.Flights, cfg)
}

func NewFromJSON(raw []byte, cfg Config) (*Catalog, error) {
	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{
		offers: make([]models.FlightOffer, 0, len(file.Offers)),
		byID:   make(map[string]int, len(file.Offers)),
		config: cfg,
	}
	for _, ro := range file.Offers {
		offer, err := normalize(ro)
		if err != nil {
			return nil, err
		}
		if _, dup := c.byID[offer.ID]; dup {
			return nil, fmt.Errorf("duplicate offer id %q", offer.ID)
		}
		c.byID[offer.ID] = len(c.offers)
		c.offers = append(c.offers, offer)
	}
	return c, nil
}

func normalize(ro rawOffer) (models.FlightOffer, error) {
	segments := make([]models.Segment, len(ro.Segments))
	for i, rs := range ro.Segments {
		dep, err := timefmt.ParseTimestamp(rs.DepartureTime)
		if err != nil {
			return models.FlightOffer{}, fmt.Errorf("offer %s segment %d departure: %w", ro.ID, i, err)
		}
		arr, err := timefmt.ParseTimestamp(rs.ArrivalTime)
		if err != nil {
			return models.FlightOffer{}, fmt.Errorf("offer %s segment %d arrival: %w", ro.ID, i, err)
		}
		minutes, err := timefmt.ParseDuration(rs.Duration)
		if err != nil {
			return models.FlightOffer{}, fmt.Errorf("offer %s segment %d: %w", ro.ID, i, err)
		}

		segments[i] = models.Segment{
			DepartureAirport: rs.DepartureAirport,
			ArrivalAirport:   rs.ArrivalAirport,
			DepartureTime:    dep,
			ArrivalTime:      arr,
			Duration:         models.NewDuration(minutes),
			Airline:          rs.Airline,
			FlightNumber:     rs.FlightNumber,
			Aircraft:         rs.Aircraft,
		}
	}

	fare := models.FareClass(strings.ToLower(ro.FareClass))
	if !fare.Valid() {
		return models.FlightOffer{}, fmt.Errorf("offer %s: unknown fare class %q", ro.ID, ro.FareClass)
	}

	offer := models.FlightOffer{
		ID:             ro.ID,
		Segments:       segments,
		Price:          ro.Price,
		SeatsAvailable: ro.SeatsAvailable,
		FareClass:      fare,
		Refundable:     ro.Refundable,
		Baggage:        ro.Baggage,
	}
	if err := offer.Validate(); err != nil {
		return models.FlightOffer{}, err
	}
	return offer, nil
}

func (c *Catalog) Name() string {
	return "catalog"
}

// All returns every offer in fixture order.
func (c *Catalog) All() []models.FlightOffer {
	out := make([]models.FlightOffer, len(c.offers))
	for i, o := range c.offers {
		out[i] = clone(o)
	}
	return out
}

// Lookup returns the offer without simulated latency.
func (c *Catalog) Lookup(id string) (models.FlightOffer, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return models.FlightOffer{}, false
	}
	return clone(c.offers[idx]), true
}

// Get loads a single offer for the details view.
func (c *Catalog) Get(ctx context.Context, id string) (models.FlightOffer, error) {
	return task.Run(ctx, c.config.DetailsLatency, func(ctx context.Context) (models.FlightOffer, error) {
		offer, ok := c.Lookup(id)
		if !ok {
			return models.FlightOffer{}, fmt.Errorf("%w: %s", ErrOfferNotFound, id)
		}
		return offer, nil
	})
}

// Search returns offers whose route, fare class and departure date match
// the criteria, in fixture order.
func (c *Catalog) Search(ctx context.Context, criteria models.SearchCriteria) ([]models.FlightOffer, error) {
	return task.Run(ctx, c.config.SearchLatency, func(ctx context.Context) ([]models.FlightOffer, error) {
		results := make([]models.FlightOffer, 0)
		for _, o := range c.offers {
			if matches(o, criteria) {
				results = append(results, clone(o))
			}
		}
		return results, nil
	})
}

func matches(o models.FlightOffer, criteria models.SearchCriteria) bool {
	if !strings.EqualFold(o.FirstSegment().DepartureAirport.Code, criteria.Origin) ||
		!strings.EqualFold(o.LastSegment().ArrivalAirport.Code, criteria.Destination) {
		return false
	}

	if criteria.FareClass != "" && o.FareClass != criteria.FareClass {
		return false
	}

	if criteria.DepartureDate != "" && !timefmt.SameDay(o.FirstSegment().DepartureTime, criteria.DepartureDate) {
		return false
	}

	return true
}

func clone(o models.FlightOffer) models.FlightOffer {
	o.Segments = append([]models.Segment(nil), o.Segments...)
	return o
}
