// Package series owns the cached monthly series of every asset.
// It is the only writer of the monthly value cache: ledger mutations go through
// Mutate, which serializes writers of the same asset around a full recomputation.
package series

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/simaogato/carteira-backend/internal/domain"
	"github.com/simaogato/carteira-backend/internal/usecase/valuation"
)

// Store serves reconstructed series backed by a persistent cache
type Store struct {
	assetRepo     domain.AssetRepository
	operationRepo domain.OperationRepository
	cache         domain.MonthlyValueRepository
	locks         *keyedMutex
	log           zerolog.Logger
}

// NewStore creates a new series store
func NewStore(
	assetRepo domain.AssetRepository,
	operationRepo domain.OperationRepository,
	cache domain.MonthlyValueRepository,
	log zerolog.Logger,
) *Store {
	return &Store{
		assetRepo:     assetRepo,
		operationRepo: operationRepo,
		cache:         cache,
		locks:         newKeyedMutex(),
		log:           log.With().Str("component", "series_store").Logger(),
	}
}

// Series returns the asset's monthly series from its inception through its last operation.
//
// Logic:
// 1. A cache hit is returned without locking
// 2. On a miss, take the asset lock and check the cache again
// 3. Still missing: rebuild from the full operation list and persist it
func (s *Store) Series(ctx context.Context, asset *domain.Asset) (domain.MonthlySeries, error) {
	if asset == nil {
		return domain.MonthlySeries{}, fmt.Errorf("series for nil asset: %w", domain.ErrInvalidArgument)
	}
	key := domain.SeriesKey{OwnerID: asset.OwnerID, AssetID: asset.ID}

	cached, found, err := s.cache.Get(ctx, key)
	if err != nil {
		return domain.MonthlySeries{}, fmt.Errorf("failed to read cached series: %w", err)
	}
	if found {
		cached.InceptionValue = asset.InceptionValue
		return cached, nil
	}

	unlock := s.locks.Lock(key)
	defer unlock()

	cached, found, err = s.cache.Get(ctx, key)
	if err != nil {
		return domain.MonthlySeries{}, fmt.Errorf("failed to read cached series: %w", err)
	}
	if found {
		cached.InceptionValue = asset.InceptionValue
		return cached, nil
	}

	return s.recompute(ctx, asset)
}

// Mutate runs a ledger mutation for the asset while holding its lock, then drops the
// cached series and rebuilds it from the full operation list.
// If the mutation removed the asset, only the invalidation happens.
func (s *Store) Mutate(ctx context.Context, key domain.SeriesKey, mutation func(ctx context.Context) error) error {
	if key.AssetID == uuid.Nil {
		return fmt.Errorf("mutate with nil asset id: %w", domain.ErrInvalidArgument)
	}

	unlock := s.locks.Lock(key)
	defer unlock()

	if err := mutation(ctx); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, key); err != nil {
		return fmt.Errorf("failed to invalidate series cache: %w", err)
	}

	asset, err := s.assetRepo.GetByID(ctx, key.OwnerID, key.AssetID)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.Debug().Str("asset_id", key.AssetID.String()).Msg("asset removed, series invalidated")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to reload asset: %w", err)
	}

	if _, err := s.recompute(ctx, asset); err != nil {
		return err
	}
	return nil
}

// Recompute rebuilds and persists the asset's series unconditionally
func (s *Store) Recompute(ctx context.Context, asset *domain.Asset) (domain.MonthlySeries, error) {
	if asset == nil {
		return domain.MonthlySeries{}, fmt.Errorf("recompute nil asset: %w", domain.ErrInvalidArgument)
	}
	unlock := s.locks.Lock(domain.SeriesKey{OwnerID: asset.OwnerID, AssetID: asset.ID})
	defer unlock()

	return s.recompute(ctx, asset)
}

// recompute must be called with the asset lock held
func (s *Store) recompute(ctx context.Context, asset *domain.Asset) (domain.MonthlySeries, error) {
	key := domain.SeriesKey{OwnerID: asset.OwnerID, AssetID: asset.ID}

	ops, err := s.operationRepo.ListByAsset(ctx, asset.OwnerID, asset.ID)
	if err != nil {
		return domain.MonthlySeries{}, fmt.Errorf("failed to list operations: %w", err)
	}

	result := valuation.Reconstruct(asset.InceptionValue, asset.InceptionDate, ops, domain.Month{})

	if err := s.cache.Replace(ctx, key, result); err != nil {
		return domain.MonthlySeries{}, fmt.Errorf("failed to store series: %w", err)
	}

	s.log.Debug().
		Str("asset_id", asset.ID.String()).
		Int("operations", len(ops)).
		Int("months", result.Len()).
		Msg("series recomputed")

	return result, nil
}
