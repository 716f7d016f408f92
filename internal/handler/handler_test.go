package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dharmasatrya/flightbooking/internal/booking"
	"github.com/dharmasatrya/flightbooking/internal/catalog"
	"github.com/dharmasatrya/flightbooking/internal/metrics"
	"github.com/dharmasatrya/flightbooking/internal/models"
	"github.com/dharmasatrya/flightbooking/internal/ratelimit"
	"github.com/dharmasatrya/flightbooking/internal/search"
	"github.com/dharmasatrya/flightbooking/internal/session"
)

type testServer struct {
	e         *echo.Echo
	sessionID string
}

func newTestServer(t *testing.T) *testServer {
	return newTestServerWith(t, session.NewMemoryStore(0), nil)
}

func newTestServerWith(t *testing.T, store session.Store, limiter *ratelimit.KeyedLimiter) *testServer {
	t.Helper()
	logger := zap.NewNop()

	c, err := catalog.New(catalog.Config{})
	require.NoError(t, err)
	repo, err := booking.NewSeededRepository(c)
	require.NoError(t, err)

	e := echo.New()
	Register(e, Deps{
		Searcher: search.NewSearcher([]search.Source{c}, nil, search.DefaultConfig(), logger),
		Offers:   c,
		Bookings: booking.NewService(repo, 0, logger),
		Sessions: store,
		Limiter:  limiter,
		Metrics:  metrics.NewRecorder(prometheus.NewRegistry()),
		Logger:   logger,
	})
	return &testServer{e: e}
}

// do sends a request inside the server's current session and adopts the
// session ID the server returns.
func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if s.sessionID != "" {
		req.Header.Set(HeaderSessionID, s.sessionID)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	s.sessionID = rec.Header().Get(HeaderSessionID)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func offerIDs(offers []models.FlightOffer) []string {
	out := make([]string, len(offers))
	for i, o := range offers {
		out[i] = o.ID
	}
	return out
}

var searchBody = map[string]any{
	"origin":         "JFK",
	"destination":    "LHR",
	"departure_date": "2025-06-15",
	"passengers":     2,
	"fare_class":     "economy",
	"filters": map[string]any{
		"price_min": 0,
		"price_max": 2000,
		"stops":     "direct",
		"sort_by":   "price",
	},
}

func validPassengers() map[string]any {
	passenger := func(first string) map[string]any {
		return map[string]any{
			"title":           "Mr",
			"first_name":      first,
			"last_name":       "Doe",
			"date_of_birth":   "1985-05-15",
			"nationality":     "US",
			"passport_number": "P123456789",
			"passport_expiry": "2030-01-01",
		}
	}
	return map[string]any{
		"contact":    map[string]any{"email": "john.doe@example.com", "phone": "+1 555 123 4567"},
		"passengers": []any{passenger("John"), passenger("Jane")},
	}
}

var validCard = map[string]any{
	"method":          "credit_card",
	"card_number":     "4111 1111 1111 1111",
	"cardholder_name": "John Doe",
	"expiry":          "12/27",
	"cvv":             "123",
}

func TestSearch_DirectByPrice(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/flights/search", searchBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, s.sessionID)

	resp := decode[models.SearchResponse](t, rec)
	assert.Equal(t, []string{"fl-001", "fl-004", "fl-005", "fl-002"}, offerIDs(resp.Flights))
	assert.Equal(t, 4, resp.Metadata.TotalResults)
	assert.Equal(t, 6, resp.Metadata.TotalOffers)
	assert.Equal(t, []string{"BA", "VS", "KL", "AA", "DL", "EI"}, resp.Metadata.Carriers)
	assert.Equal(t, "JFK", resp.SearchCriteria.Origin)
}

func TestSearch_InvalidCriteria(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/flights/search", map[string]any{"origin": "JFK"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(models.ErrMissingDestination), decode[models.ErrorResponse](t, rec).Message)

	body := map[string]any{"origin": "JFK", "destination": "LHR", "departure_date": "2025-06-15", "filters": map[string]any{"stops": "two"}}
	rec = s.do(t, http.MethodPost, "/api/v1/flights/search", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearch_RoundTrip(t *testing.T) {
	s := newTestServer(t)

	body := map[string]any{"origin": "JFK", "destination": "LHR", "departure_date": "2025-06-15", "return_date": "2025-06-22"}
	rec := s.do(t, http.MethodPost, "/api/v1/flights/search", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[models.RoundTripResponse](t, rec)
	assert.Len(t, resp.OutboundFlights, 6)
	assert.NotNil(t, resp.ReturnFlights)
	assert.Empty(t, resp.ReturnFlights)
}

func TestResults_RequiresCriteria(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/flights/results", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/api/v1/flights/search", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, "search", decode[models.RedirectResponse](t, rec).Redirect)
}

func TestResults_QueryOverridesStoredFilters(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/v1/flights/search", searchBody).Code)

	rec := s.do(t, http.MethodGet, "/api/v1/flights/results?stops=one_stop", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[models.SearchResponse](t, rec)
	assert.Equal(t, []string{"fl-006", "fl-003"}, offerIDs(resp.Flights))
	assert.Equal(t, models.SortByPrice, resp.Filters.SortBy)

	rec = s.do(t, http.MethodGet, "/api/v1/flights/results?carriers=ba,DL&stops=any&sort_order=desc", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"fl-005", "fl-001"}, offerIDs(decode[models.SearchResponse](t, rec).Flights))

	rec = s.do(t, http.MethodGet, "/api/v1/flights/results?price_min=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/flights/results?departure_time_min=25:00", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFlightDetailsAndSeats(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/flights/fl-003", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	offer := decode[models.FlightOffer](t, rec)
	assert.Len(t, offer.Segments, 2)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/v1/flights/fl-404", nil).Code)

	rec = s.do(t, http.MethodGet, "/api/v1/flights/fl-003/seats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	m := decode[models.SeatMap](t, rec)
	assert.Equal(t, 30, m.Rows)
	assert.Len(t, m.Seats, 180)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/v1/flights/fl-404/seats", nil).Code)
}

func TestBookingFlow(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/v1/flights/search", searchBody).Code)

	rec := s.do(t, http.MethodPost, "/api/v1/booking/passengers", validPassengers())
	require.Equal(t, http.StatusSeeOther, rec.Code, "passengers before a flight is chosen")

	rec = s.do(t, http.MethodPost, "/api/v1/booking/flight", map[string]any{"offer_id": "fl-001"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	selected := decode[models.SelectFlightResponse](t, rec)
	assert.Equal(t, "fl-001", selected.Outbound.ID)
	assert.Len(t, selected.Passengers, 2)
	assert.Equal(t, "passenger_info", selected.Next)

	assert.Equal(t, http.StatusSeeOther, s.do(t, http.MethodGet, "/api/v1/booking/quote", nil).Code)

	bad := validPassengers()
	bad["contact"] = map[string]any{"email": "nope", "phone": ""}
	rec = s.do(t, http.MethodPost, "/api/v1/booking/passengers", bad)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	invalid := decode[ValidationErrorResponse](t, rec)
	require.Len(t, invalid.Fields, 2)
	assert.Equal(t, "contact.email", invalid.Fields[0].Field)
	assert.Equal(t, []string{"Please enter a valid email address"}, invalid.Fields[0].Messages)
	assert.Equal(t, "contact.phone", invalid.Fields[1].Field)

	rec = s.do(t, http.MethodPost, "/api/v1/booking/passengers", validPassengers())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "payment", decode[models.StepResponse](t, rec).Next)

	rec = s.do(t, http.MethodGet, "/api/v1/booking/quote", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	quote := decode[models.QuoteResponse](t, rec)
	assert.Equal(t, "1378", quote.Price.Subtotal.String())
	assert.Equal(t, "165.36", quote.Price.Taxes.String())
	assert.Equal(t, "$1,543.36", quote.Formatted.Total)
	assert.Equal(t, 2, quote.PassengerCount)

	assert.Equal(t, http.StatusSeeOther, s.do(t, http.MethodGet, "/api/v1/booking/confirmation", nil).Code)

	badCard := map[string]any{"method": "credit_card", "card_number": "411111111111", "cardholder_name": "John Doe", "expiry": "13/27", "cvv": "12"}
	rec = s.do(t, http.MethodPost, "/api/v1/booking/payment", badCard)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Len(t, decode[ValidationErrorResponse](t, rec).Fields, 3)

	rec = s.do(t, http.MethodPost, "/api/v1/booking/payment", validCard)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	confirmed := decode[models.ConfirmationResponse](t, rec)
	assert.Regexp(t, `^[A-Z]{2}[0-9]{4}$`, confirmed.Booking.Reference)
	assert.Equal(t, models.BookingConfirmed, confirmed.Booking.Status)
	assert.Equal(t, "Card ending in 1111", confirmed.Booking.PaymentMethod)
	assert.Equal(t, "$1,543.36", confirmed.Formatted.Total)
	assert.Equal(t, "Sun, Jun 15, 2025", confirmed.DepartureDate)
	assert.Equal(t, "08:30 AM", confirmed.DepartureTime)
	assert.Equal(t, "7h 15m", confirmed.Duration)

	rec = s.do(t, http.MethodGet, "/api/v1/booking/confirmation", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, confirmed.Booking.Reference, decode[models.ConfirmationResponse](t, rec).Booking.Reference)

	rec = s.do(t, http.MethodGet, "/api/v1/bookings?reference="+confirmed.Booking.Reference, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	found := decode[models.BookingLookupResponse](t, rec)
	require.GreaterOrEqual(t, found.Total, 1)
	assert.Contains(t, offerRefs(found.Bookings), confirmed.Booking.Reference)

	rec = s.do(t, http.MethodPost, "/api/v1/booking/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.StatusSeeOther, s.do(t, http.MethodGet, "/api/v1/booking/confirmation", nil).Code)
}

func offerRefs(recs []models.BookingRecord) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Reference
	}
	return out
}

func TestSelectFlight_ClearAndUnknown(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPost, "/api/v1/booking/flight", map[string]any{"offer_id": "fl-404"}).Code)

	rec := s.do(t, http.MethodPost, "/api/v1/booking/flight", map[string]any{"offer_id": "fl-002"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[models.SelectFlightResponse](t, rec).Passengers, 1)

	rec = s.do(t, http.MethodPost, "/api/v1/booking/flight", map[string]any{"offer_id": ""})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "search", decode[models.StepResponse](t, rec).Next)

	assert.Equal(t, http.StatusSeeOther, s.do(t, http.MethodPost, "/api/v1/booking/passengers", validPassengers()).Code)
}

func TestSeatAssignment(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/v1/flights/search", searchBody).Code)
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/v1/booking/flight", map[string]any{"offer_id": "fl-001"}).Code)

	assert.Equal(t, http.StatusSeeOther, s.do(t, http.MethodPost, "/api/v1/booking/seats", map[string]any{}).Code)

	rec := s.do(t, http.MethodPost, "/api/v1/booking/passengers", validPassengers())
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/flights/fl-001/seats", nil)
	m := decode[models.SeatMap](t, rec)
	var free, blocked string
	for _, seat := range m.Seats {
		if seat.Status == models.SeatAvailable && free == "" {
			free = seat.Label()
		}
		if seat.Status == models.SeatUnavailable && blocked == "" {
			blocked = seat.Label()
		}
	}

	// Passenger IDs were assigned on the passenger step; fetch them from
	// a no-op seat request.
	rec = s.do(t, http.MethodPost, "/api/v1/booking/seats", map[string]any{"assignments": map[string]string{}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	passengers := decode[[]models.Passenger](t, rec)
	require.Len(t, passengers, 2)

	rec = s.do(t, http.MethodPost, "/api/v1/booking/seats", map[string]any{"assignments": map[string]string{passengers[0].ID: free}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, free, decode[[]models.Passenger](t, rec)[0].Seat)

	rec = s.do(t, http.MethodPost, "/api/v1/booking/seats", map[string]any{"assignments": map[string]string{passengers[1].ID: free}})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/booking/seats", map[string]any{"assignments": map[string]string{passengers[1].ID: blocked}})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/booking/seats", map[string]any{"assignments": map[string]string{passengers[1].ID: "99Z"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func seatLabels(m models.SeatMap, status models.SeatStatus) []string {
	var out []string
	for _, seat := range m.Seats {
		if seat.Status == status {
			out = append(out, seat.Label())
		}
	}
	return out
}

func TestPassengerStep_SeatsGoThroughSeatMap(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/v1/flights/search", searchBody).Code)
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/v1/booking/flight", map[string]any{"offer_id": "fl-001"}).Code)

	m := decode[models.SeatMap](t, s.do(t, http.MethodGet, "/api/v1/flights/fl-001/seats", nil))
	free := seatLabels(m, models.SeatAvailable)
	blocked := seatLabels(m, models.SeatUnavailable)
	require.GreaterOrEqual(t, len(free), 2)
	require.NotEmpty(t, blocked)

	withSeats := func(first, second string) map[string]any {
		body := validPassengers()
		ps := body["passengers"].([]any)
		ps[0].(map[string]any)["seat"] = first
		ps[1].(map[string]any)["seat"] = second
		return body
	}

	rec := s.do(t, http.MethodPost, "/api/v1/booking/passengers", withSeats(blocked[0], ""))
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/api/v1/booking/passengers", withSeats(free[0], free[0]))
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/api/v1/booking/passengers", withSeats("99Z", ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	// Rejected submissions store nothing.
	assert.Equal(t, http.StatusSeeOther, s.do(t, http.MethodGet, "/api/v1/booking/quote", nil).Code)

	rec = s.do(t, http.MethodPost, "/api/v1/booking/passengers", withSeats(strings.ToLower(free[0]), free[1]))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/api/v1/booking/payment", validCard)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	booked := decode[models.ConfirmationResponse](t, rec).Booking.Passengers
	require.Len(t, booked, 2)
	assert.Equal(t, free[0], booked[0].Seat)
	assert.Equal(t, free[1], booked[1].Seat)
}

func TestPassengerStep_CountMustMatchSearch(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/v1/flights/search", searchBody).Code)
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/v1/booking/flight", map[string]any{"offer_id": "fl-001"}).Code)

	body := validPassengers()
	ps := body["passengers"].([]any)
	third := map[string]any{}
	for k, v := range ps[0].(map[string]any) {
		third[k] = v
	}
	third["first_name"] = "Jim"
	body["passengers"] = append(ps, third)

	rec := s.do(t, http.MethodPost, "/api/v1/booking/passengers", body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	invalid := decode[ValidationErrorResponse](t, rec)
	require.Len(t, invalid.Fields, 1)
	assert.Equal(t, "passengers", invalid.Fields[0].Field)
	assert.Equal(t, []string{"Expected 2 passengers, got 3"}, invalid.Fields[0].Messages)

	body["passengers"] = ps[:1]
	assert.Equal(t, http.StatusUnprocessableEntity, s.do(t, http.MethodPost, "/api/v1/booking/passengers", body).Code)

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/v1/booking/passengers", validPassengers()).Code)
}

func TestPassengerStep_AcceptsEverySpecialRequest(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/v1/flights/search", searchBody).Code)
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/v1/booking/flight", map[string]any{"offer_id": "fl-001"}).Code)

	body := validPassengers()
	ps := body["passengers"].([]any)
	ps[0].(map[string]any)["special_requests"] = []string{"medical", "extra_legroom"}
	ps[1].(map[string]any)["special_requests"] = models.KnownSpecialRequests

	rec := s.do(t, http.MethodPost, "/api/v1/booking/passengers", body)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestLookup_SeededBookings(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/bookings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, decode[models.BookingLookupResponse](t, rec).Total)

	rec = s.do(t, http.MethodGet, "/api/v1/bookings?reference=ab&last_name=DOE", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[models.BookingLookupResponse](t, rec)
	assert.Equal(t, []string{"AB1234"}, offerRefs(resp.Bookings))
	assert.Equal(t, "1543.36", resp.Bookings[0].Price.Total.String())

	rec = s.do(t, http.MethodGet, "/api/v1/bookings?last_name=nobody", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[models.BookingLookupResponse](t, rec).Bookings)
}

func TestSession_UnknownIDStartsFresh(t *testing.T) {
	s := newTestServer(t)
	s.sessionID = "does-not-exist"

	rec := s.do(t, http.MethodGet, "/api/v1/flights/results", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.NotEqual(t, "does-not-exist", s.sessionID)
	assert.NotEmpty(t, s.sessionID)
}

func TestSession_IsolatedPerClient(t *testing.T) {
	a := newTestServer(t)
	require.Equal(t, http.StatusOK, a.do(t, http.MethodPost, "/api/v1/flights/search", searchBody).Code)

	b := &testServer{e: a.e}
	assert.Equal(t, http.StatusSeeOther, b.do(t, http.MethodGet, "/api/v1/flights/results", nil).Code)
	assert.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/api/v1/flights/results", nil).Code)
}

type brokenStore struct{}

func (brokenStore) Load(context.Context, string) (*session.State, error) {
	return nil, errors.New("redis: connection refused")
}
func (brokenStore) Save(context.Context, *session.State) error { return nil }
func (brokenStore) Delete(context.Context, string) error       { return nil }

func TestSession_StoreFailure(t *testing.T) {
	s := newTestServerWith(t, brokenStore{}, nil)
	s.sessionID = "abc"

	rec := s.do(t, http.MethodGet, "/api/v1/flights/results", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSearch_RateLimited(t *testing.T) {
	limiter := ratelimit.NewKeyedLimiter(ratelimit.RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1})
	s := newTestServerWith(t, session.NewMemoryStore(0), limiter)

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/v1/flights/search", searchBody).Code)
	assert.Equal(t, http.StatusTooManyRequests, s.do(t, http.MethodPost, "/api/v1/flights/search", searchBody).Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/flights/fl-001", nil).Code)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
