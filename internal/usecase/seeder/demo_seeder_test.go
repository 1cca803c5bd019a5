package seeder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/carteira-backend/internal/domain"
	"github.com/simaogato/carteira-backend/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLedger is a mock implementation of Ledger for testing
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) ListAssets(ctx context.Context, ownerID uuid.UUID, filter domain.AssetFilter) ([]*domain.Asset, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Asset), args.Error(1)
}

func (m *MockLedger) CreateAsset(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	args := m.Called(ctx, asset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockLedger) RecordOperation(ctx context.Context, ownerID uuid.UUID, op *domain.Operation) (*domain.Operation, error) {
	args := m.Called(ctx, ownerID, op)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

// recordingLedger validates and keeps everything it is given
type recordingLedger struct {
	assets []*domain.Asset
	ops    []*domain.Operation
}

func (l *recordingLedger) ListAssets(context.Context, uuid.UUID, domain.AssetFilter) ([]*domain.Asset, error) {
	return l.assets, nil
}

func (l *recordingLedger) CreateAsset(_ context.Context, asset *domain.Asset) (*domain.Asset, error) {
	asset.ID = uuid.New()
	if err := asset.Validate(); err != nil {
		return nil, err
	}
	l.assets = append(l.assets, asset)
	return asset, nil
}

func (l *recordingLedger) RecordOperation(_ context.Context, ownerID uuid.UUID, op *domain.Operation) (*domain.Operation, error) {
	op.OwnerID = ownerID
	for _, a := range l.assets {
		if a.ID == op.AssetID {
			if err := op.ValidateAgainst(a); err != nil {
				return nil, err
			}
		}
	}
	l.ops = append(l.ops, op)
	return op, nil
}

func TestDemoSeeder_Seed(t *testing.T) {
	ctx := context.Background()
	ledger := &recordingLedger{}
	seeder := NewDemoSeeder(ledger, uuid.Nil, logger.Nop())

	created, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(DemoAssets), created)
	require.Len(t, ledger.assets, 10)

	revaluations := map[uuid.UUID]int{}
	for _, op := range ledger.ops {
		assert.Equal(t, DemoOwner, op.OwnerID)
		assert.True(t, op.Amount.IsPositive(), "%s amount %s", op.Kind, op.Amount)
		assert.False(t, op.Date.After(time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)))
		if op.Kind == domain.OperationKindRevaluation {
			revaluations[op.AssetID]++
		}
	}
	for _, asset := range ledger.assets {
		assert.Equal(t, domain.NewMonth(2023, time.January), asset.InceptionMonth())
		assert.Equal(t, 26, revaluations[asset.ID], "one revaluation per month for %s", asset.Name)
	}

	again, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, again, "an owner with assets is left alone")
	assert.Len(t, ledger.assets, 10)
}

func TestDemoSeeder_Deterministic(t *testing.T) {
	first, second := &recordingLedger{}, &recordingLedger{}
	_, err := NewDemoSeeder(first, uuid.Nil, logger.Nop()).Seed(context.Background())
	require.NoError(t, err)
	_, err = NewDemoSeeder(second, uuid.Nil, logger.Nop()).Seed(context.Background())
	require.NoError(t, err)

	require.Equal(t, len(first.ops), len(second.ops))
	for i := range first.ops {
		assert.Equal(t, first.ops[i].Kind, second.ops[i].Kind)
		assert.True(t, first.ops[i].Amount.Equal(second.ops[i].Amount))
		assert.Equal(t, first.ops[i].Date, second.ops[i].Date)
	}
}

func TestDemoSeeder_PropagatesErrors(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("List failure", func(t *testing.T) {
		ledger := new(MockLedger)
		ledger.On("ListAssets", ctx, owner, domain.AssetFilter{}).Return(nil, errors.New("connection refused"))

		_, err := NewDemoSeeder(ledger, owner, logger.Nop()).Seed(ctx)
		assert.ErrorContains(t, err, "failed to list existing assets")
	})

	t.Run("Create failure", func(t *testing.T) {
		ledger := new(MockLedger)
		ledger.On("ListAssets", ctx, owner, domain.AssetFilter{}).Return([]*domain.Asset{}, nil)
		ledger.On("CreateAsset", ctx, mock.AnythingOfType("*domain.Asset")).Return(nil, errors.New("disk full")).Once()

		_, err := NewDemoSeeder(ledger, owner, logger.Nop()).Seed(ctx)
		assert.ErrorContains(t, err, "failed to seed asset Tesouro IPCA+")
		ledger.AssertNotCalled(t, "RecordOperation", mock.Anything, mock.Anything, mock.Anything)
	})
}
