package benchmark

import (
	"context"
	"time"

	"github.com/simaogato/carteira-backend/internal/domain"
)

// WarmJob refreshes the benchmark cache on a schedule so that the first comparison of
// the day does not wait on the providers
type WarmJob struct {
	service  *Service
	lookback int // Months before the current one to fetch
	timeout  time.Duration
	now      func() time.Time
}

// NewWarmJob creates a cache warm-up job covering the last lookback months
func NewWarmJob(service *Service, lookback int) *WarmJob {
	if lookback <= 0 {
		lookback = 36
	}
	return &WarmJob{
		service:  service,
		lookback: lookback,
		timeout:  time.Minute,
		now:      time.Now,
	}
}

// Name returns the job name
func (j *WarmJob) Name() string {
	return "benchmark_cache_warmup"
}

// Run fetches every index for the lookback window
func (j *WarmJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	end := domain.MonthOf(j.now())
	return j.service.Warm(ctx, end.AddMonths(-j.lookback), end)
}
