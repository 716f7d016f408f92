package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Recorder struct {
	searches           *prometheus.CounterVec
	searchDuration     *prometheus.HistogramVec
	resultCount        prometheus.Histogram
	validationFailures *prometheus.CounterVec
	bookings           *prometheus.CounterVec
	redirects          *prometheus.CounterVec
}

// NewRecorder registers the booking flow metrics on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		searches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flight_searches_total",
				Help: "Flight searches by trip type, cache outcome and status",
			},
			[]string{"trip", "cache", "status"},
		),
		searchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flight_search_duration_seconds",
				Help:    "Time spent answering a flight search",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 8),
			},
			[]string{"trip"},
		),
		resultCount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "flight_search_results",
				Help:    "Offers left after filtering",
				Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
			},
		),
		validationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "form_validation_failures_total",
				Help: "Rejected form fields by form",
			},
			[]string{"form", "field"},
		),
		bookings: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookings_total",
				Help: "Bookings created by payment method",
			},
			[]string{"method"},
		),
		redirects: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wizard_redirects_total",
				Help: "Requests sent back to an earlier step",
			},
			[]string{"step"},
		),
	}
}

func (r *Recorder) ObserveSearch(roundTrip, cacheHit bool, err error, elapsed time.Duration) {
	trip := "one_way"
	if roundTrip {
		trip = "round_trip"
	}
	cache := "miss"
	if cacheHit {
		cache = "hit"
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.searches.WithLabelValues(trip, cache, status).Inc()
	r.searchDuration.WithLabelValues(trip).Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveResults(n int) {
	r.resultCount.Observe(float64(n))
}

// ValidationFailed counts each rejected field once.
func (r *Recorder) ValidationFailed(form string, fields []string) {
	for _, f := range fields {
		r.validationFailures.WithLabelValues(form, f).Inc()
	}
}

func (r *Recorder) BookingCreated(method string) {
	r.bookings.WithLabelValues(method).Inc()
}

func (r *Recorder) Redirected(step string) {
	r.redirects.WithLabelValues(step).Inc()
}
