package portfolio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/carteira-backend/internal/domain"
	"github.com/simaogato/carteira-backend/internal/logger"
	"github.com/simaogato/carteira-backend/internal/usecase/valuation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAssetRepository is a mock implementation of AssetRepository for testing
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Asset, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	return m.Called(ctx, asset).Error(0)
}

func (m *MockAssetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	return m.Called(ctx, asset).Error(0)
}

func (m *MockAssetRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

func (m *MockAssetRepository) List(ctx context.Context, ownerID uuid.UUID, filter domain.AssetFilter) ([]*domain.Asset, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Asset), args.Error(1)
}

// MockOperationRepository is a mock implementation of OperationRepository for testing
type MockOperationRepository struct {
	mock.Mock
}

func (m *MockOperationRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Operation, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

func (m *MockOperationRepository) Create(ctx context.Context, op *domain.Operation) error {
	return m.Called(ctx, op).Error(0)
}

func (m *MockOperationRepository) Update(ctx context.Context, op *domain.Operation) error {
	return m.Called(ctx, op).Error(0)
}

func (m *MockOperationRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

func (m *MockOperationRepository) ListByAsset(ctx context.Context, ownerID, assetID uuid.UUID) ([]*domain.Operation, error) {
	args := m.Called(ctx, ownerID, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Operation), args.Error(1)
}

func (m *MockOperationRepository) List(ctx context.Context, ownerID uuid.UUID, filter domain.OperationFilter) ([]*domain.Operation, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Operation), args.Error(1)
}

// MockBenchmarkSource is a mock implementation of BenchmarkSource for testing
type MockBenchmarkSource struct {
	mock.Mock
}

func (m *MockBenchmarkSource) Names() []string {
	return m.Called().Get(0).([]string)
}

func (m *MockBenchmarkSource) MonthlyReturns(ctx context.Context, name string, start, end domain.Month) (map[domain.Month]decimal.Decimal, error) {
	args := m.Called(ctx, name, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.Month]decimal.Decimal), args.Error(1)
}

// ledgerSeries rebuilds series straight from an in-memory ledger
type ledgerSeries struct {
	ops map[uuid.UUID][]*domain.Operation
}

func (l *ledgerSeries) Series(_ context.Context, asset *domain.Asset) (domain.MonthlySeries, error) {
	return valuation.Reconstruct(asset.InceptionValue, asset.InceptionDate, l.ops[asset.ID], domain.Month{}), nil
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func operation(assetID uuid.UUID, kind domain.OperationKind, amount int64, date time.Time) *domain.Operation {
	return &domain.Operation{ID: uuid.New(), AssetID: assetID, Kind: kind, Amount: decimal.NewFromInt(amount), Date: date}
}

type fixture struct {
	ownerID    uuid.UUID
	cdb        *domain.Asset // inception 2023-01 at 1000; buy 200, revaluation 1300, sell 100
	stock      *domain.Asset // inception 2023-03 at 500; revaluation 550 in April
	ledger     *ledgerSeries
	assets     *MockAssetRepository
	operations *MockOperationRepository
	benchmarks *MockBenchmarkSource
	service    *PortfolioService
}

func newFixture() *fixture {
	ownerID := uuid.New()
	cdb := &domain.Asset{
		ID: uuid.New(), OwnerID: ownerID, Name: "CDB Inter",
		Class: domain.AssetClassFixedIncome, Subclass: domain.AssetSubclassCDB, Custodian: "Inter",
		InceptionValue: decimal.NewFromInt(1000), InceptionDate: day(2023, time.January, 1),
	}
	stock := &domain.Asset{
		ID: uuid.New(), OwnerID: ownerID, Name: "ITSA4",
		Class: domain.AssetClassVariableIncome, Subclass: domain.AssetSubclassStock, Custodian: "XP",
		InceptionValue: decimal.NewFromInt(500), InceptionDate: day(2023, time.March, 15),
	}

	ledger := &ledgerSeries{ops: map[uuid.UUID][]*domain.Operation{
		cdb.ID: {
			operation(cdb.ID, domain.OperationKindBuy, 200, day(2023, time.February, 10)),
			operation(cdb.ID, domain.OperationKindRevaluation, 1300, day(2023, time.March, 5)),
			operation(cdb.ID, domain.OperationKindSell, 100, day(2023, time.April, 20)),
		},
		stock.ID: {
			operation(stock.ID, domain.OperationKindRevaluation, 550, day(2023, time.April, 30)),
		},
	}}

	f := &fixture{
		ownerID:    ownerID,
		cdb:        cdb,
		stock:      stock,
		ledger:     ledger,
		assets:     new(MockAssetRepository),
		operations: new(MockOperationRepository),
		benchmarks: new(MockBenchmarkSource),
	}
	f.service = NewPortfolioService(f.assets, f.operations, ledger, f.benchmarks, logger.Nop())
	f.service.Now = func() time.Time { return day(2023, time.April, 15) }
	return f
}

func (f *fixture) allOperations() []*domain.Operation {
	var out []*domain.Operation
	for _, ops := range f.ledger.ops {
		out = append(out, ops...)
	}
	return out
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	if !decimal.RequireFromString(expected).Equal(actual) {
		assert.Fail(t, "expected "+expected+", got "+actual.String(), msgAndArgs...)
	}
}

func TestGetPortfolioSummary(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.assets.On("List", ctx, f.ownerID, domain.AssetFilter{}).Return([]*domain.Asset{f.cdb, f.stock}, nil)
	f.operations.On("List", ctx, f.ownerID, domain.OperationFilter{}).Return(f.allOperations(), nil)

	summary, err := f.service.GetPortfolioSummary(ctx, f.ownerID, domain.Month{}, domain.AssetFilter{})
	require.NoError(t, err)

	assert.Equal(t, "2023-04", summary.AsOf.String(), "zero asOf resolves to the current month")
	assertDecimal(t, "1750", summary.TotalValue)

	assertDecimal(t, "1700", summary.Return1M.Baseline)
	assertDecimal(t, "50", summary.Return1M.Absolute)
	assertDecimal(t, "1600", summary.ReturnTotal.Baseline)
	assertDecimal(t, "150", summary.ReturnTotal.Absolute)
	assertDecimal(t, "9.38", summary.ReturnTotal.Percentage.Round(2))

	require.Len(t, summary.Monthly, 4)
	assertDecimal(t, "1750", summary.Monthly[3].Value)

	require.Len(t, summary.Assets, 2)
	assert.Equal(t, day(2023, time.April, 20), summary.Assets[0].LastActivity)
	assertDecimal(t, "1200", summary.Assets[0].CurrentValue)
	assertDecimal(t, "9.09", summary.Assets[0].ReturnTotal.Percentage.Round(2))
	assert.Equal(t, day(2023, time.April, 30), summary.Assets[1].LastActivity)
}

func TestGetPortfolioSummary_PastAsOf(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.assets.On("List", ctx, f.ownerID, domain.AssetFilter{}).Return([]*domain.Asset{f.cdb, f.stock}, nil)
	f.operations.On("List", ctx, f.ownerID, domain.OperationFilter{}).Return(f.allOperations(), nil)

	summary, err := f.service.GetPortfolioSummary(ctx, f.ownerID, domain.NewMonth(2023, time.February), domain.AssetFilter{})
	require.NoError(t, err)

	require.Len(t, summary.Assets, 1, "assets created after asOf are left out")
	assertDecimal(t, "1200", summary.TotalValue)
	require.Len(t, summary.Monthly, 2)
	assert.Equal(t, day(2023, time.February, 10), summary.Assets[0].LastActivity)
}

func TestGetPortfolioSummary_Empty(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	filter := domain.AssetFilter{Custodian: "nubank"}
	f.assets.On("List", ctx, f.ownerID, filter).Return([]*domain.Asset{}, nil)
	f.operations.On("List", ctx, f.ownerID, domain.OperationFilter{}).Return([]*domain.Operation{}, nil)

	summary, err := f.service.GetPortfolioSummary(ctx, f.ownerID, domain.Month{}, filter)
	require.NoError(t, err)

	assert.True(t, summary.TotalValue.IsZero())
	assert.True(t, summary.ReturnTotal.Percentage.IsZero())
	assert.Empty(t, summary.Monthly)
	assert.Empty(t, summary.Assets)
}

func TestGetPortfolioSummary_RepositoryError(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.assets.On("List", ctx, f.ownerID, domain.AssetFilter{}).Return(nil, errors.New("connection refused"))

	_, err := f.service.GetPortfolioSummary(ctx, f.ownerID, domain.Month{}, domain.AssetFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list assets")
}

func TestAggregationConsistency(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.assets.On("List", ctx, f.ownerID, domain.AssetFilter{}).Return([]*domain.Asset{f.cdb, f.stock}, nil)
	f.operations.On("List", ctx, f.ownerID, domain.OperationFilter{}).Return(f.allOperations(), nil)
	f.assets.On("GetByID", ctx, f.ownerID, f.cdb.ID).Return(f.cdb, nil)
	f.assets.On("GetByID", ctx, f.ownerID, f.stock.ID).Return(f.stock, nil)

	summary, err := f.service.GetPortfolioSummary(ctx, f.ownerID, domain.Month{}, domain.AssetFilter{})
	require.NoError(t, err)

	sum := decimal.Zero
	for _, a := range []*domain.Asset{f.cdb, f.stock} {
		s, err := f.service.GetMonthlySeries(ctx, f.ownerID, a.ID, domain.Month{})
		require.NoError(t, err)
		last, ok := s.Last()
		require.True(t, ok)
		sum = sum.Add(last.Value)
	}
	assert.True(t, summary.TotalValue.Equal(sum))
}

func TestGetMonthlySeries_Through(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.assets.On("GetByID", ctx, f.ownerID, f.cdb.ID).Return(f.cdb, nil)

	s, err := f.service.GetMonthlySeries(ctx, f.ownerID, f.cdb.ID, domain.NewMonth(2023, time.June))
	require.NoError(t, err)
	require.Equal(t, 6, s.Len())
	assertDecimal(t, "1200", s.Points[5].Value)

	s, err = f.service.GetMonthlySeries(ctx, f.ownerID, f.cdb.ID, domain.NewMonth(2023, time.February))
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len(), "through never cuts the series short")
}

func TestGetReturn(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.assets.On("GetByID", ctx, f.ownerID, f.cdb.ID).Return(f.cdb, nil)
	missing := uuid.New()
	f.assets.On("GetByID", ctx, f.ownerID, missing).Return(nil, domain.ErrNotFound)

	figure, err := f.service.GetReturn(ctx, f.ownerID, f.cdb.ID, domain.NewMonth(2023, time.April), domain.WindowSinceInception)
	require.NoError(t, err)
	assertDecimal(t, "100", figure.Absolute)

	figure, err = f.service.GetReturn(ctx, f.ownerID, f.cdb.ID, domain.Month{}, domain.WindowOneMonth)
	require.NoError(t, err)
	assertDecimal(t, "0", figure.Percentage)

	_, err = f.service.GetReturn(ctx, f.ownerID, f.cdb.ID, domain.Month{}, domain.Window(-12))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = f.service.GetReturn(ctx, uuid.Nil, f.cdb.ID, domain.Month{}, domain.WindowOneMonth)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = f.service.GetReturn(ctx, f.ownerID, missing, domain.Month{}, domain.WindowOneMonth)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetCompositionBreakdown(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.assets.On("List", ctx, f.ownerID, domain.AssetFilter{}).Return([]*domain.Asset{f.cdb, f.stock}, nil)

	slices, err := f.service.GetCompositionBreakdown(ctx, f.ownerID, domain.Month{}, domain.GroupByClass)
	require.NoError(t, err)
	require.Len(t, slices, 2)
	assert.Equal(t, "FIXED_INCOME", slices[0].Key)
	assertDecimal(t, "68.57", slices[0].Share.Round(2))
	assertDecimal(t, "31.43", slices[1].Share.Round(2))

	custodians, err := f.service.GetCompositionBreakdown(ctx, f.ownerID, domain.Month{}, domain.GroupByCustodian)
	require.NoError(t, err)
	assert.Equal(t, "Inter", custodians[0].Key)

	_, err = f.service.GetCompositionBreakdown(ctx, f.ownerID, domain.Month{}, "SECTOR")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestGetBenchmarkComparison(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	jan, apr := domain.NewMonth(2023, time.January), domain.NewMonth(2023, time.April)
	f.assets.On("List", ctx, f.ownerID, domain.AssetFilter{}).Return([]*domain.Asset{f.cdb, f.stock}, nil)
	f.benchmarks.On("Names").Return([]string{"CDI", "IBOVESPA"})
	f.benchmarks.On("MonthlyReturns", ctx, "CDI", jan, apr).Return(map[domain.Month]decimal.Decimal{
		domain.NewMonth(2023, time.February): decimal.NewFromInt(1),
		domain.NewMonth(2023, time.March):    decimal.NewFromInt(1),
	}, nil)
	f.benchmarks.On("MonthlyReturns", ctx, "IBOVESPA", jan, apr).Return(nil, errors.New("timeout"))

	comparison, err := f.service.GetBenchmarkComparison(ctx, f.ownerID, domain.Month{}, nil)
	require.NoError(t, err)

	require.Len(t, comparison.Months, 4)
	require.Contains(t, comparison.Indices, "CDI")
	assertDecimal(t, "2.01", comparison.Indices["CDI"][3].Percentage)
	assert.NotContains(t, comparison.Indices, "IBOVESPA")
	assert.Equal(t, []string{"IBOVESPA"}, comparison.Unavailable)
	require.Len(t, comparison.Portfolio, 4)
	f.benchmarks.AssertExpectations(t)
}

func TestGetBenchmarkComparison_EmptyPortfolio(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.assets.On("List", ctx, f.ownerID, domain.AssetFilter{}).Return([]*domain.Asset{}, nil)

	comparison, err := f.service.GetBenchmarkComparison(ctx, f.ownerID, domain.Month{}, []string{"CDI"})
	require.NoError(t, err)

	assert.Empty(t, comparison.Months)
	assert.Empty(t, comparison.Indices)
	assert.Equal(t, []string{"CDI"}, comparison.Unavailable)
	f.benchmarks.AssertNotCalled(t, "MonthlyReturns", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
