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
	var kind, amount, date, createdAt string

	if err := row.Scan(&op.ID, &op.OwnerID, &op.AssetID, &kind, &amount, &date, &createdAt); err != nil {
		return nil, err
	}

	var err error
	op.Kind = domain.OperationKind(kind)
	if op.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}
	if op.Date, err = parseDate(date); err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}
	if op.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &op, nil
}

// GetByID retrieves an operation by its ID
func (r *operationRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operations WHERE id = ? AND owner_id = ?`

	op, err := scanOperation(r.db.QueryRowContext(ctx, query, id.String(), ownerID.String()))
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
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	op.CreatedAt = creationTime(op.CreatedAt)
	_, err := r.db.ExecContext(ctx, query,
		op.ID.String(),
		op.OwnerID.String(),
		op.AssetID.String(),
		string(op.Kind),
		op.Amount.String(),
		formatDate(op.Date),
		op.CreatedAt.Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create operation: %w", err)
	}

	return nil
}

// Update persists changes to an existing operation; the rowid keeps its same-day position
func (r *operationRepository) Update(ctx context.Context, op *domain.Operation) error {
	query := `UPDATE operations SET kind = ?, amount = ?, date = ? WHERE id = ? AND owner_id = ?`

	result, err := r.db.ExecContext(ctx, query,
		string(op.Kind),
		op.Amount.String(),
		formatDate(op.Date),
		op.ID.String(),
		op.OwnerID.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update operation: %w", err)
	}

	return expectOneRow(result, "operation", op.ID)
}

// Delete removes an operation
func (r *operationRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM operations WHERE id = ? AND owner_id = ?`, id.String(), ownerID.String())
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
		WHERE owner_id = ? AND asset_id = ?
		ORDER BY date ASC, rowid ASC
	`

	return r.query(ctx, query, ownerID.String(), assetID.String())
}

// List retrieves the owner's operations, newest first
func (r *operationRepository) List(ctx context.Context, ownerID uuid.UUID, filter domain.OperationFilter) ([]*domain.Operation, error) {
	where := []string{"owner_id = ?"}
	args := []any{ownerID.String()}

	if filter.AssetID != nil {
		where = append(where, "asset_id = ?")
		args = append(args, filter.AssetID.String())
	}
	if filter.Kind != "" {
		where = append(where, "kind = ?")
		args = append(args, string(filter.Kind))
	}

	query := `SELECT ` + operationColumns + ` FROM operations WHERE ` + strings.Join(where, " AND ") + ` ORDER BY date DESC, rowid DESC`

	return r.query(ctx, query, args...)
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
