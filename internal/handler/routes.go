package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dharmasatrya/flightbooking/internal/booking"
	"github.com/dharmasatrya/flightbooking/internal/metrics"
	"github.com/dharmasatrya/flightbooking/internal/ratelimit"
	"github.com/dharmasatrya/flightbooking/internal/search"
	"github.com/dharmasatrya/flightbooking/internal/session"
)

type Deps struct {
	Searcher *search.Searcher
	Offers   OfferSource
	Bookings *booking.Service
	Sessions session.Store
	Limiter  *ratelimit.KeyedLimiter
	Metrics  *metrics.Recorder
	Logger   *zap.Logger
}

// Register mounts the booking API on e. Every /api/v1 route runs inside a
// booking session.
func Register(e *echo.Echo, d Deps) {
	searchHandler := NewSearchHandler(d.Searcher, d.Metrics, d.Logger)
	flightHandler := NewFlightHandler(d.Offers)
	bookingHandler := NewBookingHandler(d.Offers, d.Bookings, d.Metrics, d.Logger)
	lookupHandler := NewLookupHandler(d.Bookings)

	api := e.Group("/api/v1", SessionMiddleware(d.Sessions, d.Logger))

	var limited []echo.MiddlewareFunc
	if d.Limiter != nil {
		limited = append(limited, ratelimit.Middleware(d.Limiter))
	}
	api.POST("/flights/search", searchHandler.Search, limited...)
	api.GET("/flights/results", searchHandler.Results, limited...)
	api.GET("/flights/:id", flightHandler.Details)
	api.GET("/flights/:id/seats", flightHandler.Seats)

	api.POST("/booking/flight", bookingHandler.SelectFlight)
	api.POST("/booking/passengers", bookingHandler.Passengers)
	api.POST("/booking/seats", bookingHandler.Seats)
	api.GET("/booking/quote", bookingHandler.Quote)
	api.POST("/booking/payment", bookingHandler.Pay)
	api.GET("/booking/confirmation", bookingHandler.Confirmation)
	api.POST("/booking/reset", bookingHandler.Reset)

	api.GET("/bookings", lookupHandler.Find)

	e.GET("/health", HealthHandler)
}
