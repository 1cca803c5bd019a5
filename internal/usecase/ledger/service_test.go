package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/carteira-backend/internal/domain"
	"github.com/simaogato/carteira-backend/internal/logger"
	"github.com/simaogato/carteira-backend/internal/usecase/series"
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

// memoryCache is an in-memory MonthlyValueRepository that counts writes
type memoryCache struct {
	mu          sync.Mutex
	entries     map[domain.SeriesKey]domain.MonthlySeries
	replaces    int
	invalidates int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[domain.SeriesKey]domain.MonthlySeries)}
}

func (c *memoryCache) Get(_ context.Context, key domain.SeriesKey) (domain.MonthlySeries, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.entries[key]
	return s, ok, nil
}

func (c *memoryCache) Replace(_ context.Context, key domain.SeriesKey, s domain.MonthlySeries) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = s
	c.replaces++
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context, key domain.SeriesKey) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	c.invalidates++
	return nil
}

var fixedNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func newTestService(assets *MockAssetRepository, operations *MockOperationRepository, cache *memoryCache) *LedgerService {
	store := series.NewStore(assets, operations, cache, logger.Nop())
	svc := NewLedgerService(assets, operations, store, logger.Nop())
	svc.Now = func() time.Time { return fixedNow }
	return svc
}

func storedAsset() *domain.Asset {
	return &domain.Asset{
		ID:             uuid.New(),
		OwnerID:        uuid.New(),
		Name:           "PETR4",
		Class:          domain.AssetClassVariableIncome,
		Subclass:       domain.AssetSubclassStock,
		Custodian:      "XP",
		InceptionValue: decimal.NewFromInt(2000),
		InceptionDate:  time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateAsset_Success(t *testing.T) {
	ctx := context.Background()
	assets := new(MockAssetRepository)
	operations := new(MockOperationRepository)
	cache := newMemoryCache()
	service := newTestService(assets, operations, cache)

	asset := storedAsset()
	asset.ID = uuid.Nil

	assets.On("Create", ctx, asset).Return(nil)
	assets.On("GetByID", ctx, asset.OwnerID, mock.AnythingOfType("uuid.UUID")).Return(asset, nil)
	operations.On("ListByAsset", ctx, asset.OwnerID, mock.AnythingOfType("uuid.UUID")).Return([]*domain.Operation{}, nil)

	created, err := service.CreateAsset(ctx, asset)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, fixedNow, created.CreatedAt)

	cached, ok := cache.entries[domain.SeriesKey{OwnerID: asset.OwnerID, AssetID: created.ID}]
	require.True(t, ok, "initial series is cached")
	require.Equal(t, 1, cached.Len())
	assert.True(t, decimal.NewFromInt(2000).Equal(cached.Points[0].Value))

	assets.AssertExpectations(t)
	operations.AssertExpectations(t)
}

func TestCreateAsset_InvalidAsset(t *testing.T) {
	ctx := context.Background()
	assets := new(MockAssetRepository)
	service := newTestService(assets, new(MockOperationRepository), newMemoryCache())

	asset := storedAsset()
	asset.Subclass = domain.AssetSubclassCDB // belongs to fixed income

	_, err := service.CreateAsset(ctx, asset)

	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "subclass", vErr.Field)
	assets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecordOperation_Success(t *testing.T) {
	ctx := context.Background()
	assets := new(MockAssetRepository)
	operations := new(MockOperationRepository)
	cache := newMemoryCache()
	service := newTestService(assets, operations, cache)

	asset := storedAsset()
	op := &domain.Operation{
		AssetID: asset.ID,
		Kind:    domain.OperationKindBuy,
		Amount:  decimal.NewFromInt(500),
		Date:    time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
	}

	assets.On("GetByID", ctx, asset.OwnerID, asset.ID).Return(asset, nil)
	operations.On("Create", ctx, op).Return(nil)
	operations.On("ListByAsset", ctx, asset.OwnerID, asset.ID).Return([]*domain.Operation{op}, nil)

	recorded, err := service.RecordOperation(ctx, asset.OwnerID, op)

	require.NoError(t, err)
	assert.Equal(t, asset.OwnerID, recorded.OwnerID)
	assert.NotEqual(t, uuid.Nil, recorded.ID)

	cached := cache.entries[domain.SeriesKey{OwnerID: asset.OwnerID, AssetID: asset.ID}]
	require.Equal(t, 3, cached.Len())
	assert.True(t, decimal.NewFromInt(2500).Equal(cached.Points[2].Value))

	assets.AssertExpectations(t)
	operations.AssertExpectations(t)
}

func TestRecordOperation_BeforeInception(t *testing.T) {
	ctx := context.Background()
	assets := new(MockAssetRepository)
	operations := new(MockOperationRepository)
	cache := newMemoryCache()
	service := newTestService(assets, operations, cache)

	asset := storedAsset()
	key := domain.SeriesKey{OwnerID: asset.OwnerID, AssetID: asset.ID}
	cache.entries[key] = domain.MonthlySeries{}

	op := &domain.Operation{
		AssetID: asset.ID,
		Kind:    domain.OperationKindRevaluation,
		Amount:  decimal.NewFromInt(1900),
		Date:    time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	assets.On("GetByID", ctx, asset.OwnerID, asset.ID).Return(asset, nil)

	_, err := service.RecordOperation(ctx, asset.OwnerID, op)

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "before asset inception")
	operations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Equal(t, 0, cache.invalidates)
}

func TestRecordOperation_UnknownAsset(t *testing.T) {
	ctx := context.Background()
	assets := new(MockAssetRepository)
	service := newTestService(assets, new(MockOperationRepository), newMemoryCache())

	ownerID, assetID := uuid.New(), uuid.New()
	assets.On("GetByID", ctx, ownerID, assetID).Return(nil, domain.ErrNotFound)

	_, err := service.RecordOperation(ctx, ownerID, &domain.Operation{
		AssetID: assetID,
		Kind:    domain.OperationKindBuy,
		Amount:  decimal.NewFromInt(1),
		Date:    fixedNow,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateAsset_InceptionAfterExistingOperation(t *testing.T) {
	ctx := context.Background()
	assets := new(MockAssetRepository)
	operations := new(MockOperationRepository)
	service := newTestService(assets, operations, newMemoryCache())

	asset := storedAsset()
	existing := &domain.Operation{
		AssetID: asset.ID,
		Kind:    domain.OperationKindBuy,
		Amount:  decimal.NewFromInt(100),
		Date:    time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
	}
	assets.On("GetByID", ctx, asset.OwnerID, asset.ID).Return(asset, nil)
	operations.On("ListByAsset", ctx, asset.OwnerID, asset.ID).Return([]*domain.Operation{existing}, nil)

	newInception := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	_, err := service.UpdateAsset(ctx, asset.OwnerID, asset.ID, AssetUpdate{InceptionDate: &newInception})

	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "inception_date", vErr.Field)
	assets.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateAsset_InceptionValueRecomputes(t *testing.T) {
	ctx := context.Background()
	assets := new(MockAssetRepository)
	operations := new(MockOperationRepository)
	cache := newMemoryCache()
	service := newTestService(assets, operations, cache)

	asset := storedAsset()
	assets.On("GetByID", ctx, asset.OwnerID, asset.ID).Return(asset, nil)
	assets.On("Update", ctx, asset).Return(nil)
	operations.On("ListByAsset", ctx, asset.OwnerID, asset.ID).Return([]*domain.Operation{}, nil)

	value := decimal.NewFromInt(2100)
	name := "PETR4 (Petrobras)"
	updated, err := service.UpdateAsset(ctx, asset.OwnerID, asset.ID, AssetUpdate{InceptionValue: &value, Name: &name})

	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	cached := cache.entries[domain.SeriesKey{OwnerID: asset.OwnerID, AssetID: asset.ID}]
	require.Equal(t, 1, cached.Len())
	assert.True(t, value.Equal(cached.Points[0].Value))
}

func TestUpdateOperation_ChangesAmount(t *testing.T) {
	ctx := context.Background()
	assets := new(MockAssetRepository)
	operations := new(MockOperationRepository)
	cache := newMemoryCache()
	service := newTestService(assets, operations, cache)

	asset := storedAsset()
	op := &domain.Operation{
		ID:      uuid.New(),
		OwnerID: asset.OwnerID,
		AssetID: asset.ID,
		Kind:    domain.OperationKindRevaluation,
		Amount:  decimal.NewFromInt(2200),
		Date:    time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
	}
	operations.On("GetByID", ctx, asset.OwnerID, op.ID).Return(op, nil)
	assets.On("GetByID", ctx, asset.OwnerID, asset.ID).Return(asset, nil)
	operations.On("Update", ctx, op).Return(nil)
	operations.On("ListByAsset", ctx, asset.OwnerID, asset.ID).Return([]*domain.Operation{op}, nil)

	amount := decimal.NewFromInt(2300)
	updated, err := service.UpdateOperation(ctx, asset.OwnerID, op.ID, OperationUpdate{Amount: &amount})

	require.NoError(t, err)
	assert.True(t, amount.Equal(updated.Amount))
	cached := cache.entries[domain.SeriesKey{OwnerID: asset.OwnerID, AssetID: asset.ID}]
	assert.True(t, amount.Equal(cached.Points[1].Value))
}

func TestUpdateOperation_RejectsNegativeBuy(t *testing.T) {
	ctx := context.Background()
	assets := new(MockAssetRepository)
	operations := new(MockOperationRepository)
	service := newTestService(assets, operations, newMemoryCache())

	asset := storedAsset()
	op := &domain.Operation{
		ID:      uuid.New(),
		AssetID: asset.ID,
		Kind:    domain.OperationKindRevaluation,
		Amount:  decimal.NewFromInt(2200),
		Date:    time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
	}
	operations.On("GetByID", ctx, asset.OwnerID, op.ID).Return(op, nil)
	assets.On("GetByID", ctx, asset.OwnerID, asset.ID).Return(asset, nil)

	kind := domain.OperationKindBuy
	amount := decimal.NewFromInt(-10)
	_, err := service.UpdateOperation(ctx, asset.OwnerID, op.ID, OperationUpdate{Kind: &kind, Amount: &amount})

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	operations.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteOperation(t *testing.T) {
	ctx := context.Background()
	assets := new(MockAssetRepository)
	operations := new(MockOperationRepository)
	cache := newMemoryCache()
	service := newTestService(assets, operations, cache)

	asset := storedAsset()
	op := &domain.Operation{ID: uuid.New(), AssetID: asset.ID}
	operations.On("GetByID", ctx, asset.OwnerID, op.ID).Return(op, nil)
	operations.On("Delete", ctx, asset.OwnerID, op.ID).Return(nil)
	assets.On("GetByID", ctx, asset.OwnerID, asset.ID).Return(asset, nil)
	operations.On("ListByAsset", ctx, asset.OwnerID, asset.ID).Return([]*domain.Operation{}, nil)

	require.NoError(t, service.DeleteOperation(ctx, asset.OwnerID, op.ID))
	assert.Equal(t, 1, cache.invalidates)
	assert.Equal(t, 1, cache.replaces)
	operations.AssertExpectations(t)
}

func TestDeleteAsset(t *testing.T) {
	ctx := context.Background()
	assets := new(MockAssetRepository)
	operations := new(MockOperationRepository)
	cache := newMemoryCache()
	service := newTestService(assets, operations, cache)

	asset := storedAsset()
	key := domain.SeriesKey{OwnerID: asset.OwnerID, AssetID: asset.ID}
	cache.entries[key] = domain.MonthlySeries{}

	assets.On("GetByID", ctx, asset.OwnerID, asset.ID).Return(asset, nil).Once()
	assets.On("Delete", ctx, asset.OwnerID, asset.ID).Return(nil)
	assets.On("GetByID", ctx, asset.OwnerID, asset.ID).Return(nil, domain.ErrNotFound)

	require.NoError(t, service.DeleteAsset(ctx, asset.OwnerID, asset.ID))

	_, cached := cache.entries[key]
	assert.False(t, cached)
	assert.Equal(t, 0, cache.replaces)
	operations.AssertNotCalled(t, "ListByAsset", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteAsset_NotFound(t *testing.T) {
	ctx := context.Background()
	assets := new(MockAssetRepository)
	service := newTestService(assets, new(MockOperationRepository), newMemoryCache())

	ownerID, assetID := uuid.New(), uuid.New()
	assets.On("GetByID", ctx, ownerID, assetID).Return(nil, domain.ErrNotFound)

	err := service.DeleteAsset(ctx, ownerID, assetID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assets.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestListing_RequiresOwner(t *testing.T) {
	ctx := context.Background()
	service := newTestService(new(MockAssetRepository), new(MockOperationRepository), newMemoryCache())

	_, err := service.ListAssets(ctx, uuid.Nil, domain.AssetFilter{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = service.ListOperations(ctx, uuid.Nil, domain.OperationFilter{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestListOperations_PassesFilter(t *testing.T) {
	ctx := context.Background()
	operations := new(MockOperationRepository)
	service := newTestService(new(MockAssetRepository), operations, newMemoryCache())

	ownerID, assetID := uuid.New(), uuid.New()
	filter := domain.OperationFilter{AssetID: &assetID, Kind: domain.OperationKindSell}
	expected := []*domain.Operation{{ID: uuid.New(), AssetID: assetID, Kind: domain.OperationKindSell}}
	operations.On("List", ctx, ownerID, filter).Return(expected, nil)

	got, err := service.ListOperations(ctx, ownerID, filter)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}
