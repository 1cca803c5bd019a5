// Package benchmark serves reference index returns (CDI, IBOVESPA) to the portfolio
// service. Provider responses are cached until the end of the calendar day and
// concurrent fetches of the same index are collapsed into one call.
package benchmark

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/simaogato/carteira-backend/internal/domain"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrUnknownBenchmark is returned for an index name with no registered provider
	ErrUnknownBenchmark = errors.New("unknown benchmark")

	// ErrNoData is returned when a provider answers without any month in range
	ErrNoData = errors.New("benchmark returned no data")
)

// DefaultTimeout bounds a single provider call
const DefaultTimeout = 10 * time.Second

// cachedRange is the span fetched for one index and the returns it produced
type cachedRange struct {
	start   domain.Month
	end     domain.Month
	returns map[domain.Month]decimal.Decimal
}

func (c *cachedRange) covers(start, end domain.Month) bool {
	return !start.Before(c.start) && !end.After(c.end)
}

// joins reports whether the two ranges overlap or are adjacent
func (c *cachedRange) joins(o *cachedRange) bool {
	return !c.end.AddMonths(1).Before(o.start) && !o.end.AddMonths(1).Before(c.start)
}

// Service resolves index names to providers and caches their answers
type Service struct {
	providers map[string]domain.BenchmarkProvider
	names     []string
	cache     *cache.Cache
	mu        sync.Mutex // serializes read-merge-write of cache entries
	group     singleflight.Group
	timeout   time.Duration
	now       func() time.Time
	log       zerolog.Logger
}

// Option configures the Service
type Option func(*Service)

// WithTimeout sets the per-call provider timeout
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithClock overrides the clock used to expire cache entries at midnight
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a benchmark service over the given providers.
// Provider names are matched case-insensitively.
func NewService(providers []domain.BenchmarkProvider, log zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		providers: make(map[string]domain.BenchmarkProvider, len(providers)),
		cache:     cache.New(24*time.Hour, time.Hour),
		timeout:   DefaultTimeout,
		now:       time.Now,
		log:       log.With().Str("service", "benchmark").Logger(),
	}
	for _, p := range providers {
		key := normalize(p.Name())
		if _, dup := s.providers[key]; dup {
			continue
		}
		s.providers[key] = p
		s.names = append(s.names, p.Name())
	}
	sort.Strings(s.names)

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Names lists the registered indices
func (s *Service) Names() []string {
	return append([]string(nil), s.names...)
}

// MonthlyReturns returns the index's monthly percentage returns within [start, end].
//
// Logic:
// 1. A cached range covering the request is sliced without calling the provider
// 2. Otherwise fetch the union of the cached and requested ranges, once per key in flight
// 3. Successful answers are cached until the end of the current day
//
// The shared fetch ignores the first caller's cancellation and is bounded by the
// service timeout instead, so callers joining the flight are not failed by it.
//
// Provider failures, timeouts and empty answers are returned as errors; callers treat
// them as "benchmark unavailable".
func (s *Service) MonthlyReturns(ctx context.Context, name string, start, end domain.Month) (map[domain.Month]decimal.Decimal, error) {
	key := normalize(name)
	provider, ok := s.providers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBenchmark, name)
	}
	if end.Before(start) {
		return nil, domain.NewValidationError("end", "end month %s is before start month %s", end, start)
	}

	fetchStart, fetchEnd := start, end
	if cached, ok := s.cached(key); ok {
		if cached.covers(start, end) {
			return slice(cached.returns, start, end), nil
		}
		if cached.start.Before(fetchStart) {
			fetchStart = cached.start
		}
		fetchEnd = domain.MaxMonth(fetchEnd, cached.end)
	}

	flightKey := key + ":" + fetchStart.String() + ":" + fetchEnd.String()
	v, err, shared := s.group.Do(flightKey, func() (interface{}, error) {
		return s.fetch(context.WithoutCancel(ctx), key, provider, fetchStart, fetchEnd)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.log.Debug().Str("index", name).Msg("benchmark fetch shared with a concurrent caller")
	}

	return slice(v.(*cachedRange).returns, start, end), nil
}

func (s *Service) fetch(ctx context.Context, key string, provider domain.BenchmarkProvider, start, end domain.Month) (*cachedRange, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	began := time.Now()
	returns, err := provider.GetMonthlyReturns(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s returns: %w", provider.Name(), err)
	}
	if len(returns) == 0 {
		return nil, fmt.Errorf("%s %s..%s: %w", provider.Name(), start, end, ErrNoData)
	}

	entry := s.store(key, &cachedRange{start: start, end: end, returns: returns})

	s.log.Info().
		Str("index", provider.Name()).
		Str("start", start.String()).
		Str("end", end.String()).
		Int("months", len(returns)).
		Dur("took", time.Since(began)).
		Msg("benchmark fetched")

	return entry, nil
}

// store caches a fetched range, folding in the cached range it overlaps or touches.
// Fresh returns win for months present in both.
func (s *Service) store(key string, fresh *cachedRange) *cachedRange {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := fresh
	if old, ok := s.cached(key); ok && old.joins(fresh) {
		entry = &cachedRange{
			start:   old.start,
			end:     domain.MaxMonth(old.end, fresh.end),
			returns: make(map[domain.Month]decimal.Decimal, len(old.returns)+len(fresh.returns)),
		}
		if fresh.start.Before(entry.start) {
			entry.start = fresh.start
		}
		for m, r := range old.returns {
			entry.returns[m] = r
		}
		for m, r := range fresh.returns {
			entry.returns[m] = r
		}
	}
	s.cache.Set(key, entry, s.untilEndOfDay())
	return entry
}

func (s *Service) cached(key string) (*cachedRange, bool) {
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	entry, ok := v.(*cachedRange)
	return entry, ok
}

// Invalidate drops every cached index
func (s *Service) Invalidate() {
	s.cache.Flush()
}

// Warm fetches every registered index for the given range, bypassing the cache.
// Cached months outside the range are kept. It returns the joined errors of the indices that could not be fetched.
func (s *Service) Warm(ctx context.Context, start, end domain.Month) error {
	var errs []error
	for _, name := range s.names {
		key := normalize(name)
		if _, err := s.fetch(ctx, key, s.providers[key], start, end); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// untilEndOfDay returns the time left before the next local midnight
func (s *Service) untilEndOfDay() time.Duration {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	if d := midnight.Sub(now); d > 0 {
		return d
	}
	return time.Second
}

func slice(returns map[domain.Month]decimal.Decimal, start, end domain.Month) map[domain.Month]decimal.Decimal {
	out := make(map[domain.Month]decimal.Decimal)
	for m, r := range returns {
		if !m.Before(start) && !m.After(end) {
			out[m] = r
		}
	}
	return out
}

func normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
