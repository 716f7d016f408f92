package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dharmasatrya/flightbooking/internal/booking"
	"github.com/dharmasatrya/flightbooking/internal/metrics"
	"github.com/dharmasatrya/flightbooking/internal/models"
	"github.com/dharmasatrya/flightbooking/internal/seatmap"
	"github.com/dharmasatrya/flightbooking/internal/session"
	"github.com/dharmasatrya/flightbooking/internal/timefmt"
	"github.com/dharmasatrya/flightbooking/internal/validation"
	"github.com/dharmasatrya/flightbooking/internal/wizard"
	"github.com/dharmasatrya/flightbooking/pkg/currency"
)

type BookingHandler struct {
	offers   OfferSource
	bookings *booking.Service
	metrics  *metrics.Recorder
	logger   *zap.Logger
}

func NewBookingHandler(offers OfferSource, bookings *booking.Service, m *metrics.Recorder, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		offers:   offers,
		bookings: bookings,
		metrics:  m,
		logger:   logger,
	}
}

func draftOf(state *session.State) booking.Draft {
	d := booking.Draft{
		Outbound:   state.SelectedFlight(),
		Return:     state.ReturnFlight(),
		Passengers: state.Passengers(),
		Contact:    state.Contact(),
	}
	if c := state.SearchCriteria(); c != nil {
		d.Criteria = *c
	}
	return d
}

// SelectFlight records the chosen offer. An empty offer ID clears the
// selection.
func (h *BookingHandler) SelectFlight(c echo.Context) error {
	var req models.SelectFlightRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "Failed to parse request body: "+err.Error())
	}

	state := stateOf(c)
	if req.OfferID == "" {
		state.SetSelectedFlight(nil)
		state.SetReturnFlight(nil)
		return c.JSON(http.StatusOK, models.StepResponse{Next: string(wizard.StepSearch)})
	}

	outbound, ok := h.offers.Lookup(req.OfferID)
	if !ok {
		return errorJSON(c, http.StatusNotFound, "not_found", "Flight not found")
	}
	var ret *models.FlightOffer
	if req.ReturnOfferID != "" {
		o, ok := h.offers.Lookup(req.ReturnOfferID)
		if !ok {
			return errorJSON(c, http.StatusNotFound, "not_found", "Return flight not found")
		}
		ret = &o
	}

	state.SetSelectedFlight(&outbound)
	state.SetReturnFlight(ret)

	// Blank forms are only handed out; passengers reach the session when
	// the passenger step validates.
	count := 1
	if criteria := state.SearchCriteria(); criteria != nil && criteria.Passengers > 0 {
		count = criteria.Passengers
	}
	passengers := state.Passengers()
	if len(passengers) != count {
		passengers = wizard.NewPassengers(count)
	}

	return c.JSON(http.StatusOK, models.SelectFlightResponse{
		Outbound:   &outbound,
		Return:     ret,
		Passengers: passengers,
		Next:       string(wizard.StepPassengerInfo),
	})
}

func (h *BookingHandler) Passengers(c echo.Context) error {
	if done, err := guard(c, h.metrics, wizard.StepPassengerInfo); done {
		return err
	}

	var req models.PassengersRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "Failed to parse request body: "+err.Error())
	}

	state := stateOf(c)
	passengers := validation.NormalizePassengers(req.Passengers)
	if result := validation.PassengersFor(state.SearchCriteria(), req.Contact, passengers); !result.OK() {
		return invalidForm(c, h.metrics, "passengers", result)
	}

	seen := make(map[string]bool, len(passengers))
	assignments := make(map[string]string, len(passengers))
	for i := range passengers {
		if passengers[i].ID == "" || seen[passengers[i].ID] {
			passengers[i].ID = uuid.NewString()
		}
		seen[passengers[i].ID] = true
		if passengers[i].Seat != "" {
			assignments[passengers[i].ID] = passengers[i].Seat
		}
		passengers[i].Seat = ""
	}
	passengers, err := seatmap.Assign(seatmap.Generate(state.SelectedFlight().ID), passengers, assignments)
	if err != nil {
		return seatError(c, err)
	}

	state.SetContact(req.Contact)
	state.SetPassengers(passengers)

	return c.JSON(http.StatusOK, models.StepResponse{Next: string(wizard.StepPayment)})
}

func (h *BookingHandler) Seats(c echo.Context) error {
	if done, err := guard(c, h.metrics, wizard.StepPayment); done {
		return err
	}

	var req models.SeatAssignmentRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "Failed to parse request body: "+err.Error())
	}

	state := stateOf(c)
	m := seatmap.Generate(state.SelectedFlight().ID)
	passengers, err := seatmap.Assign(m, state.Passengers(), req.Assignments)
	if err != nil {
		return seatError(c, err)
	}

	state.SetPassengers(passengers)
	return c.JSON(http.StatusOK, passengers)
}

func seatError(c echo.Context, err error) error {
	if errors.Is(err, seatmap.ErrSeatUnavailable) || errors.Is(err, seatmap.ErrSeatTaken) {
		return errorJSON(c, http.StatusConflict, "seat_unavailable", err.Error())
	}
	return errorJSON(c, http.StatusBadRequest, "invalid_seat", err.Error())
}

func (h *BookingHandler) Quote(c echo.Context) error {
	if done, err := guard(c, h.metrics, wizard.StepPayment); done {
		return err
	}

	d := draftOf(stateOf(c))
	price, err := h.bookings.Quote(d)
	if err != nil {
		return redirect(c, h.metrics, wizard.StepSearch)
	}

	return c.JSON(http.StatusOK, models.QuoteResponse{
		Price:          price,
		PassengerCount: d.PassengerCount(),
		Formatted:      formatPrice(price),
	})
}

func (h *BookingHandler) Pay(c echo.Context) error {
	if done, err := guard(c, h.metrics, wizard.StepPayment); done {
		return err
	}

	var details models.PaymentDetails
	if err := c.Bind(&details); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "Failed to parse request body: "+err.Error())
	}

	state := stateOf(c)
	rec, err := h.bookings.Finalize(c.Request().Context(), draftOf(state), details)

	var failed *validation.FailedError
	switch {
	case err == nil:
	case errors.As(err, &failed):
		return invalidForm(c, h.metrics, "payment", failed.Result)
	case errors.Is(err, booking.ErrNoFlightSelected), errors.Is(err, booking.ErrNoPassengers):
		return redirect(c, h.metrics, wizard.StepSearch)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errorJSON(c, http.StatusServiceUnavailable, "payment_abandoned", "Payment was not completed")
	default:
		h.logger.Error("booking failed", zap.String("session_id", state.ID()), zap.Error(err))
		return errorJSON(c, http.StatusInternalServerError, "booking_error", "Failed to complete booking")
	}

	state.SetBookingRecord(&rec)
	method := details.Method
	if method == "" {
		method = models.PaymentCreditCard
	}
	h.metrics.BookingCreated(string(method))

	return c.JSON(http.StatusCreated, confirmation(rec))
}

func (h *BookingHandler) Confirmation(c echo.Context) error {
	if done, err := guard(c, h.metrics, wizard.StepConfirmation); done {
		return err
	}
	return c.JSON(http.StatusOK, confirmation(*stateOf(c).BookingRecord()))
}

func (h *BookingHandler) Reset(c echo.Context) error {
	stateOf(c).Reset()
	return c.JSON(http.StatusOK, models.StepResponse{Next: string(wizard.StepSearch)})
}

func formatPrice(p models.PriceBreakdown) models.FormattedPrice {
	return models.FormattedPrice{
		Subtotal: currency.Format(p.Subtotal, p.Currency),
		Taxes:    currency.Format(p.Taxes, p.Currency),
		Total:    currency.Format(p.Total, p.Currency),
	}
}

func confirmation(rec models.BookingRecord) models.ConfirmationResponse {
	first := rec.Outbound.FirstSegment()
	last := rec.Outbound.LastSegment()
	return models.ConfirmationResponse{
		Booking:       rec,
		Formatted:     formatPrice(rec.Price),
		DepartureDate: timefmt.FormatDate(first.DepartureTime),
		DepartureTime: timefmt.FormatTime(first.DepartureTime),
		ArrivalTime:   timefmt.FormatTime(last.ArrivalTime),
		Duration:      timefmt.FormatDuration(rec.Outbound.TotalDuration().TotalMinutes),
	}
}
