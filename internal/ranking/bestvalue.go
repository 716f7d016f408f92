// Package ranking scores offers for the best_value sort key.
package ranking

import (
	"math"

	"github.com/dharmasatrya/flightbooking/internal/models"
)

// Weights of each component in the best-value score. They sum to 1.
const (
	PriceWeight       = 0.45
	DurationWeight    = 0.30
	StopsWeight       = 0.15
	FlexibilityWeight = 0.10
)

const (
	stopPenalty          = 15.0
	nonRefundablePenalty = 50.0
)

// bounds holds the largest price and total duration in a result set; price
// and duration are scored relative to them.
type bounds struct {
	price   float64
	minutes float64
}

func boundsOf(offers []models.FlightOffer) bounds {
	var b bounds
	for _, o := range offers {
		b.price = math.Max(b.price, o.Price.Amount)
		b.minutes = math.Max(b.minutes, float64(o.TotalDuration().TotalMinutes))
	}
	return b
}

// CalculateScores returns copies of offers with BestValueScore set.
func CalculateScores(offers []models.FlightOffer) []models.FlightOffer {
	if len(offers) == 0 {
		return offers
	}

	b := boundsOf(offers)
	result := make([]models.FlightOffer, len(offers))
	for i, o := range offers {
		result[i] = o
		result[i].BestValueScore = CalculateBestValue(o, b.price, b.minutes)
	}
	return result
}

// CalculateBestValue scores one offer against the given maxima. Lower is
// better: cheap, short, direct and refundable offers score lowest.
func CalculateBestValue(offer models.FlightOffer, maxPrice, maxDuration float64) float64 {
	score := StopsWeight * stopPenalty * float64(offer.Stops())
	score += PriceWeight * relative(offer.Price.Amount, maxPrice)
	score += DurationWeight * relative(float64(offer.TotalDuration().TotalMinutes), maxDuration)
	if !offer.Refundable {
		score += FlexibilityWeight * nonRefundablePenalty
	}
	return math.Round(score*100) / 100
}

// relative is v as a percentage of limit, or 0 when limit is not positive.
func relative(v, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return v / limit * 100
}
