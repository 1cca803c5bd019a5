package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetRepository defines the interface for asset persistence operations.
// Every lookup is scoped to an owner; a foreign asset is reported as ErrNotFound.
type AssetRepository interface {
	// GetByID retrieves an asset by its ID
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*Asset, error)

	// Create creates a new asset
	Create(ctx context.Context, asset *Asset) error

	// Update persists changes to an existing asset
	Update(ctx context.Context, asset *Asset) error

	// Delete removes an asset and its operations
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// List retrieves the owner's assets ordered by name
	// An empty filter returns every asset
	List(ctx context.Context, ownerID uuid.UUID, filter AssetFilter) ([]*Asset, error)
}

// OperationRepository defines the interface for operation persistence operations
type OperationRepository interface {
	// GetByID retrieves an operation by its ID
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*Operation, error)

	// Create creates a new operation
	Create(ctx context.Context, op *Operation) error

	// Update persists changes to an existing operation
	Update(ctx context.Context, op *Operation) error

	// Delete removes an operation
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// ListByAsset retrieves every operation of an asset ordered by date, then insertion order
	ListByAsset(ctx context.Context, ownerID, assetID uuid.UUID) ([]*Operation, error)

	// List retrieves the owner's operations, newest first, optionally filtered
	List(ctx context.Context, ownerID uuid.UUID, filter OperationFilter) ([]*Operation, error)
}

// MonthlyValueRepository is the persistent cache of reconstructed series.
// Entries are keyed by (owner, asset, month) and always describe a full series.
type MonthlyValueRepository interface {
	// Get returns the cached series, or found=false when nothing is cached
	Get(ctx context.Context, key SeriesKey) (series MonthlySeries, found bool, err error)

	// Replace atomically swaps the cached series for the given one
	Replace(ctx context.Context, key SeriesKey, series MonthlySeries) error

	// Invalidate drops every cached month of the asset
	Invalidate(ctx context.Context, key SeriesKey) error
}

// BenchmarkProvider supplies monthly percentage returns of a reference index.
// Results may be partial or empty; missing months are treated as 0%.
type BenchmarkProvider interface {
	// Name returns the index name (e.g. CDI, IBOVESPA)
	Name() string

	// GetMonthlyReturns returns the index return per month in [start, end]
	GetMonthlyReturns(ctx context.Context, start, end Month) (map[Month]decimal.Decimal, error)
}
