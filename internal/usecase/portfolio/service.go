package portfolio

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/simaogato/carteira-backend/internal/domain"
	"github.com/simaogato/carteira-backend/internal/usecase/valuation"
	"golang.org/x/sync/errgroup"
)

// SeriesSource returns the cached monthly series of an asset
type SeriesSource interface {
	Series(ctx context.Context, asset *domain.Asset) (domain.MonthlySeries, error)
}

// BenchmarkSource returns reference index returns.
// Implementations degrade on their own: an error only means the index is unavailable.
type BenchmarkSource interface {
	Names() []string
	MonthlyReturns(ctx context.Context, name string, start, end domain.Month) (map[domain.Month]decimal.Decimal, error)
}

// maxConcurrentBenchmarks bounds parallel index fetches per comparison
const maxConcurrentBenchmarks = 4

// PortfolioService answers read queries over an owner's assets
type PortfolioService struct {
	AssetRepo     domain.AssetRepository
	OperationRepo domain.OperationRepository
	Series        SeriesSource
	Benchmarks    BenchmarkSource
	Now           func() time.Time
	log           zerolog.Logger
}

// NewPortfolioService creates a new PortfolioService instance
func NewPortfolioService(
	assetRepo domain.AssetRepository,
	operationRepo domain.OperationRepository,
	seriesSource SeriesSource,
	benchmarks BenchmarkSource,
	log zerolog.Logger,
) *PortfolioService {
	return &PortfolioService{
		AssetRepo:     assetRepo,
		OperationRepo: operationRepo,
		Series:        seriesSource,
		Benchmarks:    benchmarks,
		Now:           time.Now,
		log:           log.With().Str("service", "portfolio").Logger(),
	}
}

// currentMonth resolves a zero asOf to the current calendar month
func (s *PortfolioService) currentMonth(asOf domain.Month) domain.Month {
	if asOf.IsZero() {
		return domain.MonthOf(s.Now())
	}
	return asOf
}

// GetMonthlySeries returns an asset's monthly values from inception.
// The series runs through the later of its last operation month and `through`.
func (s *PortfolioService) GetMonthlySeries(ctx context.Context, ownerID, assetID uuid.UUID, through domain.Month) (domain.MonthlySeries, error) {
	asset, err := s.asset(ctx, ownerID, assetID)
	if err != nil {
		return domain.MonthlySeries{}, err
	}

	series, err := s.Series.Series(ctx, asset)
	if err != nil {
		return domain.MonthlySeries{}, err
	}
	return valuation.Extend(series, through), nil
}

// GetReturn computes an asset's return at the evaluation month over the window
// (0 = since inception). A zero evaluation month means the current month.
func (s *PortfolioService) GetReturn(ctx context.Context, ownerID, assetID uuid.UUID, evaluation domain.Month, window domain.Window) (domain.ReturnFigure, error) {
	if err := window.Validate(); err != nil {
		return domain.ReturnFigure{}, err
	}

	asset, err := s.asset(ctx, ownerID, assetID)
	if err != nil {
		return domain.ReturnFigure{}, err
	}

	series, err := s.Series.Series(ctx, asset)
	if err != nil {
		return domain.ReturnFigure{}, err
	}

	return valuation.CalculateReturn(series, s.currentMonth(evaluation), window)
}

// GetPortfolioSummary aggregates the owner's assets as of a month.
// Logic:
//  1. Load the assets matching the filter; those created after asOf are left out
//  2. Truncate each series at asOf so later operations do not leak into the figures
//  3. Per asset: current value, last activity and the 1M / 1Y / since-inception figures
//  4. Portfolio figures are the sums of the per-asset figures
//
// An owner without assets gets an all-zero summary.
func (s *PortfolioService) GetPortfolioSummary(ctx context.Context, ownerID uuid.UUID, asOf domain.Month, filter domain.AssetFilter) (*domain.PortfolioSummary, error) {
	asOf = s.currentMonth(asOf)

	assets, all, err := s.seriesAsOf(ctx, ownerID, asOf, filter)
	if err != nil {
		return nil, err
	}

	lastActivity, err := s.lastActivity(ctx, ownerID, asOf)
	if err != nil {
		return nil, err
	}

	summary := &domain.PortfolioSummary{
		AsOf:       asOf,
		TotalValue: valuation.TotalValue(all, asOf),
		Monthly:    valuation.AggregateMonthly(all, asOf),
		Assets:     make([]domain.AssetSummary, 0, len(assets)),
	}

	var oneMonth, oneYear, total []domain.ReturnFigure
	for i, asset := range assets {
		row := domain.AssetSummary{
			Asset:        asset,
			CurrentValue: all[i].ValueAt(asOf),
			LastActivity: asset.InceptionDate,
		}
		if t, ok := lastActivity[asset.ID]; ok && t.After(row.LastActivity) {
			row.LastActivity = t
		}

		// Constant windows never fail validation
		row.Return1M, _ = valuation.CalculateReturn(all[i], asOf, domain.WindowOneMonth)
		row.Return1Y, _ = valuation.CalculateReturn(all[i], asOf, domain.WindowOneYear)
		row.ReturnTotal, _ = valuation.CalculateReturn(all[i], asOf, domain.WindowSinceInception)

		oneMonth = append(oneMonth, row.Return1M)
		oneYear = append(oneYear, row.Return1Y)
		total = append(total, row.ReturnTotal)
		summary.Assets = append(summary.Assets, row)
	}

	summary.Return1M = valuation.AggregateReturns(oneMonth)
	summary.Return1Y = valuation.AggregateReturns(oneYear)
	summary.ReturnTotal = valuation.AggregateReturns(total)

	return summary, nil
}

// GetCompositionBreakdown returns each group's share of the portfolio value as of a month
func (s *PortfolioService) GetCompositionBreakdown(ctx context.Context, ownerID uuid.UUID, asOf domain.Month, groupBy domain.GroupKey) ([]domain.CompositionSlice, error) {
	if _, ok := (&domain.Asset{}).KeyOf(groupBy); !ok {
		return nil, domain.NewValidationError("group_by", "unknown group key %q", groupBy)
	}
	asOf = s.currentMonth(asOf)

	assets, all, err := s.seriesAsOf(ctx, ownerID, asOf, domain.AssetFilter{})
	if err != nil {
		return nil, err
	}

	items := make([]valuation.KeyedValue, 0, len(assets))
	for i, asset := range assets {
		key, _ := asset.KeyOf(groupBy)
		items = append(items, valuation.KeyedValue{Key: key, Value: all[i].ValueAt(asOf)})
	}
	return valuation.Composition(items), nil
}

// GetBenchmarkComparison lines up the portfolio's accumulated return with reference indices.
// Empty indexNames compares against every registered index. An index that cannot be
// fetched is listed as unavailable instead of failing the comparison.
func (s *PortfolioService) GetBenchmarkComparison(ctx context.Context, ownerID uuid.UUID, asOf domain.Month, indexNames []string) (*domain.BenchmarkComparison, error) {
	asOf = s.currentMonth(asOf)

	_, all, err := s.seriesAsOf(ctx, ownerID, asOf, domain.AssetFilter{})
	if err != nil {
		return nil, err
	}
	monthly := valuation.AggregateMonthly(all, asOf)

	if len(indexNames) == 0 && s.Benchmarks != nil {
		indexNames = s.Benchmarks.Names()
	}

	indices := make(map[string]map[domain.Month]decimal.Decimal, len(indexNames))
	var unavailable []string
	if len(monthly) > 0 {
		indices, unavailable = s.fetchBenchmarks(ctx, indexNames, monthly[0].Month, monthly[len(monthly)-1].Month)
	} else {
		unavailable = append(unavailable, indexNames...)
	}

	comparison := valuation.Compare(monthly, indices, unavailable)
	return &comparison, nil
}

// fetchBenchmarks queries every index in parallel. Failures are logged and reported as unavailable.
func (s *PortfolioService) fetchBenchmarks(ctx context.Context, names []string, start, end domain.Month) (map[string]map[domain.Month]decimal.Decimal, []string) {
	var (
		mu          sync.Mutex
		indices     = make(map[string]map[domain.Month]decimal.Decimal, len(names))
		unavailable []string
	)

	g := new(errgroup.Group)
	g.SetLimit(maxConcurrentBenchmarks)
	for _, name := range names {
		g.Go(func() error {
			var (
				returns map[domain.Month]decimal.Decimal
				err     error
			)
			if s.Benchmarks == nil {
				err = fmt.Errorf("no benchmark source configured")
			} else {
				returns, err = s.Benchmarks.MonthlyReturns(ctx, name, start, end)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.log.Warn().Err(err).Str("index", name).Msg("benchmark unavailable")
				unavailable = append(unavailable, name)
				return nil
			}
			indices[name] = returns
			return nil
		})
	}
	_ = g.Wait()

	sort.Strings(unavailable)
	return indices, unavailable
}

// seriesAsOf loads the owner's assets and their series truncated at asOf.
// Assets whose inception is after asOf are skipped.
func (s *PortfolioService) seriesAsOf(ctx context.Context, ownerID uuid.UUID, asOf domain.Month, filter domain.AssetFilter) ([]*domain.Asset, []domain.MonthlySeries, error) {
	if ownerID == uuid.Nil {
		return nil, nil, fmt.Errorf("portfolio without owner: %w", domain.ErrInvalidArgument)
	}

	listed, err := s.AssetRepo.List(ctx, ownerID, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list assets: %w", err)
	}

	assets := make([]*domain.Asset, 0, len(listed))
	all := make([]domain.MonthlySeries, 0, len(listed))
	for _, asset := range listed {
		if asset.InceptionMonth().After(asOf) {
			continue
		}
		series, err := s.Series.Series(ctx, asset)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load series of asset %s: %w", asset.ID, err)
		}
		assets = append(assets, asset)
		all = append(all, valuation.Truncate(series, asOf))
	}
	return assets, all, nil
}

// lastActivity returns the latest operation date per asset up to the end of asOf
func (s *PortfolioService) lastActivity(ctx context.Context, ownerID uuid.UUID, asOf domain.Month) (map[uuid.UUID]time.Time, error) {
	ops, err := s.OperationRepo.List(ctx, ownerID, domain.OperationFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}

	latest := make(map[uuid.UUID]time.Time)
	for _, op := range ops {
		if op.Month().After(asOf) {
			continue
		}
		if op.Date.After(latest[op.AssetID]) {
			latest[op.AssetID] = op.Date
		}
	}
	return latest, nil
}

func (s *PortfolioService) asset(ctx context.Context, ownerID, assetID uuid.UUID) (*domain.Asset, error) {
	if ownerID == uuid.Nil || assetID == uuid.Nil {
		return nil, fmt.Errorf("asset lookup: %w", domain.ErrInvalidArgument)
	}
	return s.AssetRepo.GetByID(ctx, ownerID, assetID)
}
