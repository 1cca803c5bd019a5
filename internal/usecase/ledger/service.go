package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/simaogato/carteira-backend/internal/domain"
	"github.com/simaogato/carteira-backend/internal/usecase/series"
)

// AssetUpdate carries the editable fields of an asset. Nil fields are left unchanged.
type AssetUpdate struct {
	Name           *string
	Class          *domain.AssetClass
	Subclass       *domain.AssetSubclass
	Custodian      *string
	InceptionValue *decimal.Decimal
	InceptionDate  *time.Time
	Notes          *string
}

// OperationUpdate carries the editable fields of an operation. Nil fields are left unchanged.
type OperationUpdate struct {
	Kind   *domain.OperationKind
	Amount *decimal.Decimal
	Date   *time.Time
}

// LedgerService manages assets and operations.
// Every mutation runs under the series store's per-asset lock and is followed by a
// full recomputation of the affected asset's monthly series.
type LedgerService struct {
	AssetRepo     domain.AssetRepository
	OperationRepo domain.OperationRepository
	Series        *series.Store
	Now           func() time.Time
	log           zerolog.Logger
}

// NewLedgerService creates a new LedgerService instance
func NewLedgerService(
	assetRepo domain.AssetRepository,
	operationRepo domain.OperationRepository,
	store *series.Store,
	log zerolog.Logger,
) *LedgerService {
	return &LedgerService{
		AssetRepo:     assetRepo,
		OperationRepo: operationRepo,
		Series:        store,
		Now:           time.Now,
		log:           log.With().Str("service", "ledger").Logger(),
	}
}

// CreateAsset registers a new asset for its owner and builds its initial series
func (s *LedgerService) CreateAsset(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	if asset == nil {
		return nil, fmt.Errorf("create nil asset: %w", domain.ErrInvalidArgument)
	}

	asset.ID = uuid.New()
	asset.CreatedAt = s.Now().UTC()
	if err := asset.Validate(); err != nil {
		return nil, err
	}

	key := domain.SeriesKey{OwnerID: asset.OwnerID, AssetID: asset.ID}
	err := s.Series.Mutate(ctx, key, func(ctx context.Context) error {
		if err := s.AssetRepo.Create(ctx, asset); err != nil {
			return fmt.Errorf("failed to create asset: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("asset_id", asset.ID.String()).
		Str("name", asset.Name).
		Msg("asset created")

	return asset, nil
}

// UpdateAsset applies changes to an asset.
// Logic:
//  1. Apply the update on the stored asset and validate it
//  2. A moved inception date must not leave any existing operation before it
//  3. Persist and recompute the series
func (s *LedgerService) UpdateAsset(ctx context.Context, ownerID, assetID uuid.UUID, update AssetUpdate) (*domain.Asset, error) {
	if ownerID == uuid.Nil || assetID == uuid.Nil {
		return nil, fmt.Errorf("update asset: %w", domain.ErrInvalidArgument)
	}

	var updated *domain.Asset
	key := domain.SeriesKey{OwnerID: ownerID, AssetID: assetID}
	err := s.Series.Mutate(ctx, key, func(ctx context.Context) error {
		asset, err := s.AssetRepo.GetByID(ctx, ownerID, assetID)
		if err != nil {
			return err
		}

		applyAssetUpdate(asset, update)
		if err := asset.Validate(); err != nil {
			return err
		}

		if update.InceptionDate != nil {
			ops, err := s.OperationRepo.ListByAsset(ctx, ownerID, assetID)
			if err != nil {
				return fmt.Errorf("failed to list operations: %w", err)
			}
			for _, op := range ops {
				if err := op.ValidateAgainst(asset); err != nil {
					return domain.NewValidationError("inception_date",
						"operation on %s would predate the new inception date", op.Date.Format(domain.DateFormat))
				}
			}
		}

		if err := s.AssetRepo.Update(ctx, asset); err != nil {
			return fmt.Errorf("failed to update asset: %w", err)
		}
		updated = asset
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func applyAssetUpdate(asset *domain.Asset, update AssetUpdate) {
	if update.Name != nil {
		asset.Name = *update.Name
	}
	if update.Class != nil {
		asset.Class = *update.Class
	}
	if update.Subclass != nil {
		asset.Subclass = *update.Subclass
	}
	if update.Custodian != nil {
		asset.Custodian = *update.Custodian
	}
	if update.InceptionValue != nil {
		asset.InceptionValue = *update.InceptionValue
	}
	if update.InceptionDate != nil {
		asset.InceptionDate = *update.InceptionDate
	}
	if update.Notes != nil {
		asset.Notes = *update.Notes
	}
}

// DeleteAsset removes an asset, its operations and its cached series
func (s *LedgerService) DeleteAsset(ctx context.Context, ownerID, assetID uuid.UUID) error {
	if ownerID == uuid.Nil || assetID == uuid.Nil {
		return fmt.Errorf("delete asset: %w", domain.ErrInvalidArgument)
	}

	key := domain.SeriesKey{OwnerID: ownerID, AssetID: assetID}
	err := s.Series.Mutate(ctx, key, func(ctx context.Context) error {
		// Verify the asset exists for this owner before deleting
		if _, err := s.AssetRepo.GetByID(ctx, ownerID, assetID); err != nil {
			return err
		}
		return s.AssetRepo.Delete(ctx, ownerID, assetID)
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("asset_id", assetID.String()).Msg("asset deleted")
	return nil
}

// GetAsset retrieves one asset of the owner
func (s *LedgerService) GetAsset(ctx context.Context, ownerID, assetID uuid.UUID) (*domain.Asset, error) {
	if ownerID == uuid.Nil || assetID == uuid.Nil {
		return nil, fmt.Errorf("get asset: %w", domain.ErrInvalidArgument)
	}
	return s.AssetRepo.GetByID(ctx, ownerID, assetID)
}

// ListAssets retrieves the owner's assets matching the filter
func (s *LedgerService) ListAssets(ctx context.Context, ownerID uuid.UUID, filter domain.AssetFilter) ([]*domain.Asset, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("list assets: %w", domain.ErrInvalidArgument)
	}

	assets, err := s.AssetRepo.List(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

// RecordOperation adds an operation to an asset's ledger
// Logic:
//  1. The asset must exist for the owner
//  2. The operation is validated against the asset (amount sign, date not before inception)
//  3. Persist and recompute the asset's series
func (s *LedgerService) RecordOperation(ctx context.Context, ownerID uuid.UUID, op *domain.Operation) (*domain.Operation, error) {
	if ownerID == uuid.Nil || op == nil {
		return nil, fmt.Errorf("record operation: %w", domain.ErrInvalidArgument)
	}

	op.ID = uuid.New()
	op.OwnerID = ownerID
	op.CreatedAt = s.Now().UTC()

	key := domain.SeriesKey{OwnerID: ownerID, AssetID: op.AssetID}
	err := s.Series.Mutate(ctx, key, func(ctx context.Context) error {
		asset, err := s.AssetRepo.GetByID(ctx, ownerID, op.AssetID)
		if err != nil {
			return err
		}
		if err := op.ValidateAgainst(asset); err != nil {
			return err
		}
		if err := s.OperationRepo.Create(ctx, op); err != nil {
			return fmt.Errorf("failed to create operation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("asset_id", op.AssetID.String()).
		Str("kind", string(op.Kind)).
		Str("amount", op.Amount.String()).
		Str("date", op.Date.Format(domain.DateFormat)).
		Msg("operation recorded")

	return op, nil
}

// UpdateOperation edits the kind, amount or date of an operation
func (s *LedgerService) UpdateOperation(ctx context.Context, ownerID, operationID uuid.UUID, update OperationUpdate) (*domain.Operation, error) {
	if ownerID == uuid.Nil || operationID == uuid.Nil {
		return nil, fmt.Errorf("update operation: %w", domain.ErrInvalidArgument)
	}

	existing, err := s.OperationRepo.GetByID(ctx, ownerID, operationID)
	if err != nil {
		return nil, err
	}

	var updated *domain.Operation
	key := domain.SeriesKey{OwnerID: ownerID, AssetID: existing.AssetID}
	err = s.Series.Mutate(ctx, key, func(ctx context.Context) error {
		op, err := s.OperationRepo.GetByID(ctx, ownerID, operationID)
		if err != nil {
			return err
		}
		if update.Kind != nil {
			op.Kind = *update.Kind
		}
		if update.Amount != nil {
			op.Amount = *update.Amount
		}
		if update.Date != nil {
			op.Date = *update.Date
		}

		asset, err := s.AssetRepo.GetByID(ctx, ownerID, op.AssetID)
		if err != nil {
			return err
		}
		if err := op.ValidateAgainst(asset); err != nil {
			return err
		}
		if err := s.OperationRepo.Update(ctx, op); err != nil {
			return fmt.Errorf("failed to update operation: %w", err)
		}
		updated = op
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteOperation removes an operation and recomputes its asset's series
func (s *LedgerService) DeleteOperation(ctx context.Context, ownerID, operationID uuid.UUID) error {
	if ownerID == uuid.Nil || operationID == uuid.Nil {
		return fmt.Errorf("delete operation: %w", domain.ErrInvalidArgument)
	}

	op, err := s.OperationRepo.GetByID(ctx, ownerID, operationID)
	if err != nil {
		return err
	}

	key := domain.SeriesKey{OwnerID: ownerID, AssetID: op.AssetID}
	return s.Series.Mutate(ctx, key, func(ctx context.Context) error {
		return s.OperationRepo.Delete(ctx, ownerID, operationID)
	})
}

// ListOperations retrieves the owner's operations matching the filter
func (s *LedgerService) ListOperations(ctx context.Context, ownerID uuid.UUID, filter domain.OperationFilter) ([]*domain.Operation, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("list operations: %w", domain.ErrInvalidArgument)
	}

	ops, err := s.OperationRepo.List(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	return ops, nil
}
