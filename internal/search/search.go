// Package search queries the flight sources for a set of criteria, with a
// result cache in front and a timeout around the whole query.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dharmasatrya/flightbooking/internal/cache"
	"github.com/dharmasatrya/flightbooking/internal/models"
	"github.com/dharmasatrya/flightbooking/internal/ratelimit"
)

var ErrAllSourcesFailed = errors.New("all flight sources failed")

// Source is a flight data backend. The catalog is the only one wired today.
type Source interface {
	Name() string
	Search(ctx context.Context, criteria models.SearchCriteria) ([]models.FlightOffer, error)
}

type Config struct {
	Timeout     time.Duration
	MaxRetries  int
	RetryDelays []time.Duration
	RateLimiter *ratelimit.KeyedLimiter
}

func DefaultConfig() Config {
	return Config{
		Timeout:    5 * time.Second,
		MaxRetries: 2,
		RetryDelays: []time.Duration{
			100 * time.Millisecond,
			200 * time.Millisecond,
		},
	}
}

type Searcher struct {
	sources []Source
	cache   cache.Cache
	config  Config
	logger  *zap.Logger
}

type Result struct {
	Offers           []models.FlightOffer
	SourcesQueried   int
	SourcesSucceeded int
	FailedSources    []string
	CacheHit         bool
}

func NewSearcher(sources []Source, c cache.Cache, config Config, logger *zap.Logger) *Searcher {
	if c == nil {
		c = cache.NewNoOpCache()
	}
	return &Searcher{
		sources: sources,
		cache:   c,
		config:  config,
		logger:  logger,
	}
}

// Search returns the unfiltered offers for criteria. Offers keep source
// order, then the order each source returned them in.
func (s *Searcher) Search(ctx context.Context, criteria models.SearchCriteria) (*Result, error) {
	if offers, ok := s.cache.Get(ctx, criteria); ok {
		return &Result{Offers: offers, CacheHit: true}, nil
	}

	searchCtx := ctx
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	type sourceResult struct {
		offers []models.FlightOffer
		err    error
	}
	results := make([]sourceResult, len(s.sources))

	g, gctx := errgroup.WithContext(searchCtx)
	for i, src := range s.sources {
		g.Go(func() error {
			if s.config.RateLimiter != nil {
				if err := s.config.RateLimiter.Wait(gctx, src.Name()); err != nil {
					results[i] = sourceResult{err: err}
					return nil
				}
			}
			offers, err := s.searchWithRetry(gctx, src, criteria)
			results[i] = sourceResult{offers: offers, err: err}
			return nil
		})
	}
	_ = g.Wait()

	result := &Result{
		Offers:         make([]models.FlightOffer, 0),
		SourcesQueried: len(s.sources),
	}
	var lastErr error
	for i, r := range results {
		if r.err != nil {
			s.logger.Warn("flight source failed",
				zap.String("source", s.sources[i].Name()),
				zap.Error(r.err),
			)
			result.FailedSources = append(result.FailedSources, s.sources[i].Name())
			lastErr = r.err
			continue
		}
		result.SourcesSucceeded++
		result.Offers = append(result.Offers, r.offers...)
	}

	if result.SourcesQueried > 0 && result.SourcesSucceeded == 0 {
		return nil, fmt.Errorf("%w: %w", ErrAllSourcesFailed, lastErr)
	}

	if err := s.cache.Set(ctx, criteria, result.Offers); err != nil {
		s.logger.Warn("cache write failed", zap.Error(err))
	}
	return result, nil
}

func (s *Searcher) searchWithRetry(ctx context.Context, src Source, criteria models.SearchCriteria) ([]models.FlightOffer, error) {
	var lastErr error

	for attempt := 0; attempt <= s.config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if attempt > 0 && len(s.config.RetryDelays) > 0 {
			delayIdx := min(attempt-1, len(s.config.RetryDelays)-1)
			timer := time.NewTimer(s.config.RetryDelays[delayIdx])
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			}
		}

		offers, err := src.Search(ctx, criteria)
		if err == nil {
			return offers, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		lastErr = err
		s.logger.Debug("flight source attempt failed",
			zap.String("source", src.Name()),
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
	}

	return nil, lastErr
}

// SearchRoundTrip searches the outbound and return legs concurrently. A
// failed return leg is logged and reported as a nil return result.
func (s *Searcher) SearchRoundTrip(ctx context.Context, criteria models.SearchCriteria) (*Result, *Result, error) {
	if !criteria.IsRoundTrip() {
		outbound, err := s.Search(ctx, criteria)
		return outbound, nil, err
	}

	var outbound, inbound *Result
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		outbound, err = s.Search(gctx, criteria)
		return err
	})

	g.Go(func() error {
		res, err := s.Search(gctx, criteria.ReturnLeg())
		if err != nil {
			s.logger.Warn("return leg search failed", zap.Error(err))
			return nil
		}
		inbound = res
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return outbound, inbound, nil
}
