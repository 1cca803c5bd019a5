package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

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

type rowScanner interface {
	Scan(dest ...any) error
}

const assetColumns = `id, owner_id, name, class, subclass, custodian, inception_value, inception_date, notes, created_at`

func scanAsset(row rowScanner) (*domain.Asset, error) {
	var asset domain.Asset
	var class, subclass, inceptionValue, inceptionDate, createdAt string

	err := row.Scan(
		&asset.ID,
		&asset.OwnerID,
		&asset.Name,
		&class,
		&subclass,
		&asset.Custodian,
		&inceptionValue,
		&inceptionDate,
		&asset.Notes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	asset.Class = domain.AssetClass(class)
	asset.Subclass = domain.AssetSubclass(subclass)

	if asset.InceptionValue, err = decimal.NewFromString(inceptionValue); err != nil {
		return nil, fmt.Errorf("failed to parse inception value: %w", err)
	}
	if asset.InceptionDate, err = parseDate(inceptionDate); err != nil {
		return nil, fmt.Errorf("failed to parse inception date: %w", err)
	}
	if asset.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &asset, nil
}

// GetByID retrieves an asset by its ID
func (r *assetRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = ? AND owner_id = ?`

	asset, err := scanAsset(r.db.QueryRowContext(ctx, query, id.String(), ownerID.String()))
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
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	asset.CreatedAt = creationTime(asset.CreatedAt)
	_, err := r.db.ExecContext(ctx, query,
		asset.ID.String(),
		asset.OwnerID.String(),
		asset.Name,
		string(asset.Class),
		string(asset.Subclass),
		asset.Custodian,
		asset.InceptionValue.String(),
		formatDate(asset.InceptionDate),
		asset.Notes,
		asset.CreatedAt.Format(timestampLayout),
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
		SET name = ?, class = ?, subclass = ?, custodian = ?, inception_value = ?, inception_date = ?, notes = ?
		WHERE id = ? AND owner_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		asset.Name,
		string(asset.Class),
		string(asset.Subclass),
		asset.Custodian,
		asset.InceptionValue.String(),
		formatDate(asset.InceptionDate),
		asset.Notes,
		asset.ID.String(),
		asset.OwnerID.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}

	return expectOneRow(result, "asset", asset.ID)
}

// Delete removes an asset; its operations and cached months cascade
func (r *assetRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM assets WHERE id = ? AND owner_id = ?`, id.String(), ownerID.String())
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	return expectOneRow(result, "asset", id)
}

// List retrieves the owner's assets ordered by name
func (r *assetRepository) List(ctx context.Context, ownerID uuid.UUID, filter domain.AssetFilter) ([]*domain.Asset, error) {
	where := []string{"owner_id = ?"}
	args := []any{ownerID.String()}

	for _, f := range []struct {
		column string
		value  string
	}{
		{"name", filter.Name},
		{"class", filter.Class},
		{"subclass", filter.Subclass},
		{"custodian", filter.Custodian},
	} {
		if f.value == "" {
			continue
		}
		where = append(where, "instr(lower("+f.column+"), lower(?)) > 0")
		args = append(args, f.value)
	}

	query := `SELECT ` + assetColumns + ` FROM assets WHERE ` + strings.Join(where, " AND ") + ` ORDER BY name, rowid`

	rows, err := r.db.QueryContext(ctx, query, args...)
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
