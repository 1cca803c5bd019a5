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

// operationRepository implements domain.OperationRepository
type operationRepository struct {
	db *DB
}

// NewOperationRepository creates a new operation repository
func NewOperationRepository(db *DB) domain.OperationRepository {
	return &operationRepository{db: db}
}

const operationColumns = `id, owner_id, asset_id, kind, amount, date, created_at`

func scanOperation(row rowScanner) (*domain.Operation, error) {
	var op domain.Operation
	var kind, amount string

	if err := row.Scan(&op.ID, &op.OwnerID, &op.AssetID, &kind, &amount, &op.Date, &op.CreatedAt); err != nil {
		return nil, err
	}

	var err error
	op.Date = dateOnly(op.Date)
	op.Kind = domain.OperationKind(kind)
	op.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}

	return &op, nil
}

// GetByID retrieves an operation by its ID
func (r *operationRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operations WHERE id = $1 AND owner_id = $2`

	op, err := scanOperation(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("operation %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get operation: %w", err)
	}

	return op, nil
}

// Create creates a new operation
func (r *operationRepository) Create(ctx context.Context, op *domain.Operation) error {
	query := `
		INSERT INTO operations (id, owner_id, asset_id, kind, amount, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	op.CreatedAt = creationTime(op.CreatedAt)
	_, err := r.db.ExecContext(ctx, query,
		op.ID,
		op.OwnerID,
		op.AssetID,
		string(op.Kind),
		op.Amount.String(),
		op.Date,
		op.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create operation: %w", err)
	}

	return nil
}

// Update persists changes to an existing operation.
// The insertion sequence is kept so same-day ordering does not change.
func (r *operationRepository) Update(ctx context.Context, op *domain.Operation) error {
	query := `
		UPDATE operations
		SET kind = $3, amount = $4, date = $5
		WHERE id = $1 AND owner_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, op.ID, op.OwnerID, string(op.Kind), op.Amount.String(), op.Date)
	if err != nil {
		return fmt.Errorf("failed to update operation: %w", err)
	}

	return expectOneRow(result, "operation", op.ID)
}

// Delete removes an operation
func (r *operationRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM operations WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete operation: %w", err)
	}

	return expectOneRow(result, "operation", id)
}

// ListByAsset retrieves every operation of an asset ordered by date, then insertion order
func (r *operationRepository) ListByAsset(ctx context.Context, ownerID, assetID uuid.UUID) ([]*domain.Operation, error) {
	query := `
		SELECT ` + operationColumns + `
		FROM operations
		WHERE owner_id = $1 AND asset_id = $2
		ORDER BY date ASC, seq ASC
	`

	return r.query(ctx, query, ownerID, assetID)
}

// List retrieves the owner's operations, newest first
func (r *operationRepository) List(ctx context.Context, ownerID uuid.UUID, filter domain.OperationFilter) ([]*domain.Operation, error) {
	query := `
		SELECT ` + operationColumns + `
		FROM operations
		WHERE owner_id = $1
		  AND ($2::uuid IS NULL OR asset_id = $2)
		  AND ($3 = '' OR kind = $3)
		ORDER BY date DESC, seq DESC
	`

	var assetID any
	if filter.AssetID != nil {
		assetID = *filter.AssetID
	}

	return r.query(ctx, query, ownerID, assetID, string(filter.Kind))
}

func (r *operationRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Operation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query operations: %w", err)
	}
	defer rows.Close()

	var ops []*domain.Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}
		ops = append(ops, op)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating operations: %w", err)
	}

	return ops, nil
}
