// Package seatmap generates cabin layouts for flight offers and checks seat
// assignments against them.
package seatmap

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strings"

	"github.com/dharmasatrya/flightbooking/internal/models"
)

const (
	Rows = 30

	unavailableShare = 0.2
)

var Columns = []string{"A", "B", "C", "D", "E", "F"}

var (
	premiumSurcharge      = 45.0
	extraLegroomSurcharge = 25.0
)

var (
	ErrUnknownPassenger = errors.New("unknown passenger")
	ErrUnknownSeat      = errors.New("seat does not exist")
	ErrSeatUnavailable  = errors.New("seat is not available")
	ErrSeatTaken        = errors.New("seat already assigned to another passenger")
)

// Generate builds the seat map for an offer. The same offer ID always yields
// the same map.
func Generate(offerID string) models.SeatMap {
	h := fnv.New64a()
	h.Write([]byte(offerID))
	seed := h.Sum64()
	rng := rand.New(rand.NewPCG(seed, seed>>32))

	m := models.SeatMap{
		OfferID: offerID,
		Rows:    Rows,
		Cols:    len(Columns),
		Seats:   make([]models.Seat, 0, Rows*len(Columns)),
	}

	for row := 1; row <= Rows; row++ {
		category, surcharge := categoryForRow(row)
		for _, col := range Columns {
			status := models.SeatAvailable
			if rng.Float64() < unavailableShare {
				status = models.SeatUnavailable
			}
			m.Seats = append(m.Seats, models.Seat{
				Row:       row,
				Column:    col,
				Status:    status,
				Category:  category,
				Surcharge: surcharge,
			})
		}
	}
	return m
}

func categoryForRow(row int) (models.SeatCategory, *float64) {
	switch {
	case row <= 3:
		s := premiumSurcharge
		return models.SeatPremium, &s
	case row >= 10 && row <= 12:
		s := extraLegroomSurcharge
		return models.SeatExtraLegroom, &s
	default:
		return models.SeatStandard, nil
	}
}

// Assign applies assignments (passenger ID to seat label) and returns the
// updated passengers. An empty label clears the passenger's seat. Seats kept
// from earlier assignments count as taken.
func Assign(m models.SeatMap, passengers []models.Passenger, assignments map[string]string) ([]models.Passenger, error) {
	out := make([]models.Passenger, len(passengers))
	copy(out, passengers)

	index := make(map[string]int, len(out))
	for i, p := range out {
		index[p.ID] = i
	}
	for id := range assignments {
		if _, ok := index[id]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPassenger, id)
		}
	}

	for i := range out {
		label, ok := assignments[out[i].ID]
		if !ok {
			continue
		}
		label = strings.ToUpper(strings.TrimSpace(label))
		if label == "" {
			out[i].Seat = ""
			continue
		}

		seat, found := m.Find(label)
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSeat, label)
		}
		if seat.Status != models.SeatAvailable {
			return nil, fmt.Errorf("%w: %s", ErrSeatUnavailable, label)
		}
		out[i].Seat = label
	}

	taken := make(map[string]string, len(out))
	for _, p := range out {
		if p.Seat == "" {
			continue
		}
		if other, dup := taken[p.Seat]; dup {
			return nil, fmt.Errorf("%w: %s (%s, %s)", ErrSeatTaken, p.Seat, other, p.ID)
		}
		taken[p.Seat] = p.ID
	}
	return out, nil
}
