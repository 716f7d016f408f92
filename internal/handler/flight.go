package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/flightbooking/internal/catalog"
	"github.com/dharmasatrya/flightbooking/internal/models"
	"github.com/dharmasatrya/flightbooking/internal/seatmap"
)

// OfferSource is the part of the catalog the flight and booking handlers
// read from.
type OfferSource interface {
	Get(ctx context.Context, id string) (models.FlightOffer, error)
	Lookup(id string) (models.FlightOffer, bool)
}

type FlightHandler struct {
	offers OfferSource
}

func NewFlightHandler(offers OfferSource) *FlightHandler {
	return &FlightHandler{offers: offers}
}

func (h *FlightHandler) Details(c echo.Context) error {
	offer, err := h.offers.Get(c.Request().Context(), c.Param("id"))
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, offer)
	case errors.Is(err, catalog.ErrOfferNotFound):
		return errorJSON(c, http.StatusNotFound, "not_found", "Flight not found")
	case errors.Is(err, context.DeadlineExceeded):
		return errorJSON(c, http.StatusGatewayTimeout, "timeout", "Loading flight details timed out")
	default:
		return errorJSON(c, http.StatusInternalServerError, "details_error", "Failed to load flight: "+err.Error())
	}
}

func (h *FlightHandler) Seats(c echo.Context) error {
	offer, ok := h.offers.Lookup(c.Param("id"))
	if !ok {
		return errorJSON(c, http.StatusNotFound, "not_found", "Flight not found")
	}
	return c.JSON(http.StatusOK, seatmap.Generate(offer.ID))
}
