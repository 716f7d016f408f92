package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/flightbooking/internal/booking"
	"github.com/dharmasatrya/flightbooking/internal/models"
)

type LookupHandler struct {
	bookings *booking.Service
}

func NewLookupHandler(bookings *booking.Service) *LookupHandler {
	return &LookupHandler{bookings: bookings}
}

func (h *LookupHandler) Find(c echo.Context) error {
	var req models.BookingLookupRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", err.Error())
	}

	records, err := h.bookings.Lookup(c.Request().Context(), booking.Query{
		Reference: req.Reference,
		LastName:  req.LastName,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "lookup_error", "Failed to look up bookings")
	}

	return c.JSON(http.StatusOK, models.BookingLookupResponse{
		Bookings: records,
		Total:    len(records),
	})
}
