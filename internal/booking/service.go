// Package booking prices itineraries, turns a completed payment step into a
// booking record, and stores records for later lookup.
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dharmasatrya/flightbooking/internal/models"
	"github.com/dharmasatrya/flightbooking/internal/task"
	"github.com/dharmasatrya/flightbooking/internal/validation"
)

var (
	ErrNoFlightSelected = errors.New("no flight selected")
	ErrNoPassengers     = errors.New("no passengers entered")
)

// Draft is the in-progress booking as collected by the earlier steps.
type Draft struct {
	Criteria   models.SearchCriteria
	Outbound   *models.FlightOffer
	Return     *models.FlightOffer
	Passengers []models.Passenger
	Contact    models.ContactInfo
}

// PassengerCount is the count used for pricing: the entered passengers, or
// the searched count before any are entered.
func (d Draft) PassengerCount() int {
	if len(d.Passengers) > 0 {
		return len(d.Passengers)
	}
	return d.Criteria.Passengers
}

// Ready reports the first missing precondition for the payment step.
func (d Draft) Ready() error {
	if d.Outbound == nil {
		return ErrNoFlightSelected
	}
	if len(d.Passengers) == 0 {
		return ErrNoPassengers
	}
	return nil
}

type Service struct {
	repo           Repository
	paymentLatency time.Duration
	logger         *zap.Logger

	now          func() time.Time
	newReference func() (string, error)
}

func NewService(repo Repository, paymentLatency time.Duration, logger *zap.Logger) *Service {
	return &Service{
		repo:           repo,
		paymentLatency: paymentLatency,
		logger:         logger,
		now:            time.Now,
		newReference:   NewReference,
	}
}

func (s *Service) Quote(d Draft) (models.PriceBreakdown, error) {
	if err := d.Ready(); err != nil {
		return models.PriceBreakdown{}, err
	}
	return Quote(*d.Outbound, d.Return, d.PassengerCount()), nil
}

// Finalize validates the payment details, waits out payment processing and
// stores a confirmed booking. If ctx ends during processing nothing is
// stored.
func (s *Service) Finalize(ctx context.Context, d Draft, payment models.PaymentDetails) (models.BookingRecord, error) {
	if err := d.Ready(); err != nil {
		return models.BookingRecord{}, err
	}

	if result := validation.Payment(payment); !result.OK() {
		return models.BookingRecord{}, &validation.FailedError{Result: result}
	}

	rec, err := task.Run(ctx, s.paymentLatency, func(ctx context.Context) (models.BookingRecord, error) {
		ref, err := s.newReference()
		if err != nil {
			return models.BookingRecord{}, fmt.Errorf("generate reference: %w", err)
		}

		rec := models.BookingRecord{
			Reference:     ref,
			CreatedAt:     s.now().UTC(),
			Outbound:      *d.Outbound,
			Passengers:    append([]models.Passenger(nil), d.Passengers...),
			Contact:       d.Contact,
			Price:         Quote(*d.Outbound, d.Return, d.PassengerCount()),
			PaymentMethod: validation.PaymentDescriptor(payment),
			Status:        models.BookingConfirmed,
		}
		if d.Return != nil {
			ret := *d.Return
			rec.Return = &ret
		}
		return rec, nil
	})
	if err != nil {
		return models.BookingRecord{}, err
	}

	if err := s.repo.Save(ctx, rec); err != nil {
		return models.BookingRecord{}, fmt.Errorf("save booking %s: %w", rec.Reference, err)
	}

	s.logger.Info("booking confirmed",
		zap.String("reference", rec.Reference),
		zap.String("offer_id", rec.Outbound.ID),
		zap.Int("passengers", len(rec.Passengers)),
		zap.String("total", rec.Price.Total.StringFixed(2)),
	)
	return rec, nil
}

func (s *Service) Lookup(ctx context.Context, q Query) ([]models.BookingRecord, error) {
	return s.repo.Find(ctx, q)
}
