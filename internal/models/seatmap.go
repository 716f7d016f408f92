package models

import "strconv"

type SeatStatus string

const (
	SeatAvailable   SeatStatus = "available"
	SeatUnavailable SeatStatus = "unavailable"
)

type SeatCategory string

const (
	SeatStandard     SeatCategory = "standard"
	SeatExtraLegroom SeatCategory = "extra_legroom"
	SeatPremium      SeatCategory = "premium"
)

type Seat struct {
	Row       int          `json:"row"`
	Column    string       `json:"column"`
	Status    SeatStatus   `json:"status"`
	Category  SeatCategory `json:"category"`
	Surcharge *float64     `json:"surcharge,omitempty"`
}

// Label renders the seat as row number followed by column letter, e.g. "12A".
func (s Seat) Label() string {
	return strconv.Itoa(s.Row) + s.Column
}

type SeatMap struct {
	OfferID string `json:"offer_id"`
	Rows    int    `json:"rows"`
	Cols    int    `json:"cols"`
	Seats   []Seat `json:"seats"`
}

func (m SeatMap) Find(label string) (Seat, bool) {
	for _, s := range m.Seats {
		if s.Label() == label {
			return s, true
		}
	}
	return Seat{}, false
}
