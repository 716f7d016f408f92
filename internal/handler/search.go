package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dharmasatrya/flightbooking/internal/filter"
	"github.com/dharmasatrya/flightbooking/internal/metrics"
	"github.com/dharmasatrya/flightbooking/internal/models"
	"github.com/dharmasatrya/flightbooking/internal/search"
	"github.com/dharmasatrya/flightbooking/internal/timefmt"
	"github.com/dharmasatrya/flightbooking/internal/wizard"
)

type SearchHandler struct {
	searcher *search.Searcher
	metrics  *metrics.Recorder
	logger   *zap.Logger
}

func NewSearchHandler(searcher *search.Searcher, m *metrics.Recorder, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searcher: searcher,
		metrics:  m,
		logger:   logger,
	}
}

// Search stores new criteria on the session and returns the first page of
// results.
func (h *SearchHandler) Search(c echo.Context) error {
	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "Failed to parse request body: "+err.Error())
	}

	criteria := req.SearchCriteria
	if err := criteria.Validate(); err != nil {
		return errorJSON(c, http.StatusBadRequest, "validation_error", err.Error())
	}

	var filters models.ResultFilters
	if req.Filters != nil {
		filters = *req.Filters
	}
	if err := filters.Validate(); err != nil {
		return errorJSON(c, http.StatusBadRequest, "validation_error", err.Error())
	}

	state := stateOf(c)
	state.SetSearchCriteria(criteria)
	state.SetFilters(filters)

	return h.respond(c, criteria, filters)
}

// Results re-runs the pipeline for the session's criteria. Query parameters
// override the stored filters.
func (h *SearchHandler) Results(c echo.Context) error {
	if done, err := guard(c, h.metrics, wizard.StepResults); done {
		return err
	}

	state := stateOf(c)
	filters, err := parseFilters(c, state.Filters())
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "validation_error", err.Error())
	}
	state.SetFilters(filters)

	return h.respond(c, *state.SearchCriteria(), filters)
}

func (h *SearchHandler) respond(c echo.Context, criteria models.SearchCriteria, filters models.ResultFilters) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	outbound, inbound, err := h.searcher.SearchRoundTrip(ctx, criteria)
	h.metrics.ObserveSearch(criteria.IsRoundTrip(), outbound != nil && outbound.CacheHit, err, time.Since(startTime))
	if err != nil {
		h.logger.Error("flight search failed",
			zap.String("origin", criteria.Origin),
			zap.String("destination", criteria.Destination),
			zap.Error(err),
		)
		return errorJSON(c, http.StatusInternalServerError, "search_error", "Failed to search flights: "+err.Error())
	}

	outboundFiltered := filter.Apply(outbound.Offers, filters)
	h.metrics.ObserveResults(len(outboundFiltered))

	if !criteria.IsRoundTrip() {
		return c.JSON(http.StatusOK, models.SearchResponse{
			SearchCriteria: criteria,
			Filters:        filters,
			Metadata: models.SearchMetadata{
				TotalResults: len(outboundFiltered),
				TotalOffers:  len(outbound.Offers),
				Carriers:     filter.Carriers(outbound.Offers),
				SearchTimeMs: time.Since(startTime).Milliseconds(),
				CacheHit:     outbound.CacheHit,
			},
			Flights: outboundFiltered,
		})
	}

	returnFiltered := make([]models.FlightOffer, 0)
	totalOffers := len(outbound.Offers)
	carriers := filter.Carriers(outbound.Offers)
	cacheHit := outbound.CacheHit
	if inbound != nil {
		returnFiltered = filter.Apply(inbound.Offers, filters)
		totalOffers += len(inbound.Offers)
		carriers = uniqueStrings(append(carriers, filter.Carriers(inbound.Offers)...))
		cacheHit = cacheHit && inbound.CacheHit
	}

	return c.JSON(http.StatusOK, models.RoundTripResponse{
		SearchCriteria: criteria,
		Filters:        filters,
		Metadata: models.SearchMetadata{
			TotalResults: len(outboundFiltered) + len(returnFiltered),
			TotalOffers:  totalOffers,
			Carriers:     carriers,
			SearchTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:     cacheHit,
		},
		OutboundFlights: outboundFiltered,
		ReturnFlights:   returnFiltered,
	})
}

// parseFilters reads result filters from the query string on top of base.
// carriers may be repeated or comma separated.
func parseFilters(c echo.Context, base models.ResultFilters) (models.ResultFilters, error) {
	f := base
	q := c.QueryParams()

	parseFloat := func(key string) (*float64, error) {
		v, err := strconv.ParseFloat(q.Get(key), 64)
		if err != nil {
			return nil, models.ValidationError(key + " must be a number")
		}
		return &v, nil
	}

	if q.Has("price_min") {
		v, err := parseFloat("price_min")
		if err != nil {
			return f, err
		}
		f.PriceMin = v
	}
	if q.Has("price_max") {
		v, err := parseFloat("price_max")
		if err != nil {
			return f, err
		}
		f.PriceMax = v
	}
	if q.Has("carriers") {
		f.Carriers = nil
		for _, raw := range q["carriers"] {
			for _, code := range strings.Split(raw, ",") {
				if code = strings.TrimSpace(code); code != "" {
					f.Carriers = append(f.Carriers, strings.ToUpper(code))
				}
			}
		}
	}
	if q.Has("stops") {
		f.Stops = models.StopPreference(q.Get("stops"))
	}
	for _, key := range []string{"departure_time_min", "departure_time_max"} {
		if !q.Has(key) {
			continue
		}
		v := q.Get(key)
		if _, err := timefmt.MinuteOfDay(v); err != nil {
			return f, models.ValidationError(key + " must use HH:MM")
		}
		if key == "departure_time_min" {
			f.DepartureTimeMin = &v
		} else {
			f.DepartureTimeMax = &v
		}
	}
	if q.Has("max_duration") {
		v, err := strconv.Atoi(q.Get("max_duration"))
		if err != nil || v <= 0 {
			return f, models.ValidationError("max_duration must be a positive number of minutes")
		}
		f.MaxDuration = &v
	}
	if q.Has("sort_by") {
		f.SortBy = models.SortKey(q.Get("sort_by"))
	}
	if q.Has("sort_order") {
		f.SortOrder = q.Get("sort_order")
	}

	if err := f.Validate(); err != nil {
		return f, err
	}
	return f, nil
}

func uniqueStrings(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
