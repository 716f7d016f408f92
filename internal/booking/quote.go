package booking

import (
	"github.com/shopspring/decimal"

	"github.com/dharmasatrya/flightbooking/internal/models"
)

// TaxRate is applied to the subtotal as a flat percentage.
var TaxRate = decimal.RequireFromString("0.12")

// Quote prices an itinerary for the given passenger count. A return offer
// adds its fare to the per-passenger price.
func Quote(outbound models.FlightOffer, ret *models.FlightOffer, passengers int) models.PriceBreakdown {
	perPassenger := decimal.NewFromFloat(outbound.Price.Amount)
	if ret != nil {
		perPassenger = perPassenger.Add(decimal.NewFromFloat(ret.Price.Amount))
	}

	subtotal := perPassenger.Mul(decimal.NewFromInt(int64(passengers)))
	taxes := subtotal.Mul(TaxRate).Round(2)

	return models.PriceBreakdown{
		Subtotal: subtotal,
		Taxes:    taxes,
		Total:    subtotal.Add(taxes),
		Currency: outbound.Price.Currency,
	}
}
