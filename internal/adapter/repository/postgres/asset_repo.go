package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/carteira-backend/internal/domain"
)

// assetRepository implements domain.AssetRepository
type assetRepository struct {
	db *DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *DB) domain.AssetRepository {
	return &assetRepository{db: db}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

const assetColumns = `id, owner_id, name, class, subclass, custodian, inception_value, inception_date, notes, created_at`

func scanAsset(row rowScanner) (*domain.Asset, error) {
	var asset domain.Asset
	var class, subclass, inceptionValue string

	err := row.Scan(
		&asset.ID,
		&asset.OwnerID,
		&asset.Name,
		&class,
		&subclass,
		&asset.Custodian,
		&inceptionValue,
		&asset.InceptionDate,
		&asset.Notes,
		&asset.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	asset.InceptionDate = dateOnly(asset.InceptionDate)
	asset.Class = domain.AssetClass(class)
	asset.Subclass = domain.AssetSubclass(subclass)
	asset.InceptionValue, err = decimal.NewFromString(inceptionValue)
	if err != nil {
		return nil, fmt.Errorf("failed to parse inception value: %w", err)
	}

	return &asset, nil
}

// GetByID retrieves an asset by its ID
func (r *assetRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1 AND owner_id = $2`

	asset, err := scanAsset(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("asset %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return asset, nil
}

// Create creates a new asset
func (r *assetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	query := `
		INSERT INTO assets (id, owner_id, name, class, subclass, custodian, inception_value, inception_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	asset.CreatedAt = creationTime(asset.CreatedAt)
	_, err := r.db.ExecContext(ctx, query,
		asset.ID,
		asset.OwnerID,
		asset.Name,
		string(asset.Class),
		string(asset.Subclass),
		asset.Custodian,
		asset.InceptionValue.String(),
		asset.InceptionDate,
		asset.Notes,
		asset.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return nil
}

// Update persists changes to an existing asset
func (r *assetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	query := `
		UPDATE assets
		SET name = $3, class = $4, subclass = $5, custodian = $6,
		    inception_value = $7, inception_date = $8, notes = $9
		WHERE id = $1 AND owner_id = $2
	`

	result, err := r.db.ExecContext(ctx, query,
		asset.ID,
		asset.OwnerID,
		asset.Name,
		string(asset.Class),
		string(asset.Subclass),
		asset.Custodian,
		asset.InceptionValue.String(),
		asset.InceptionDate,
		asset.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}

	return expectOneRow(result, "asset", asset.ID)
}

// Delete removes an asset; its operations and cached months cascade
func (r *assetRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM assets WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	return expectOneRow(result, "asset", id)
}

// List retrieves the owner's assets ordered by name
func (r *assetRepository) List(ctx context.Context, ownerID uuid.UUID, filter domain.AssetFilter) ([]*domain.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE owner_id = $1
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%')
		  AND ($3 = '' OR class ILIKE '%' || $3 || '%')
		  AND ($4 = '' OR subclass ILIKE '%' || $4 || '%')
		  AND ($5 = '' OR custodian ILIKE '%' || $5 || '%')
		ORDER BY name, created_at
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID, filter.Name, filter.Class, filter.Subclass, filter.Custodian)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []*domain.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, asset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assets: %w", err)
	}

	return assets, nil
}

// expectOneRow maps a write that touched nothing to domain.ErrNotFound
func expectOneRow(result sql.Result, entity string, id uuid.UUID) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}
