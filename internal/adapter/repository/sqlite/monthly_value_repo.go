package sqlite

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/carteira-backend/internal/domain"
)

// monthlyValueRepository implements domain.MonthlyValueRepository
type monthlyValueRepository struct {
	db *DB
}

// NewMonthlyValueRepository creates a new monthly value cache repository
func NewMonthlyValueRepository(db *DB) domain.MonthlyValueRepository {
	return &monthlyValueRepository{db: db}
}

// Get returns the cached series ordered by month
func (r *monthlyValueRepository) Get(ctx context.Context, key domain.SeriesKey) (domain.MonthlySeries, bool, error) {
	query := `
		SELECT month, value, buys, sells
		FROM monthly_values
		WHERE owner_id = ? AND asset_id = ?
		ORDER BY month ASC
	`

	rows, err := r.db.QueryContext(ctx, query, key.OwnerID.String(), key.AssetID.String())
	if err != nil {
		return domain.MonthlySeries{}, false, fmt.Errorf("failed to query monthly values: %w", err)
	}
	defer rows.Close()

	var series domain.MonthlySeries
	for rows.Next() {
		var month, value, buys, sells string
		if err := rows.Scan(&month, &value, &buys, &sells); err != nil {
			return domain.MonthlySeries{}, false, fmt.Errorf("failed to scan monthly value: %w", err)
		}

		point, err := parsePoint(month, value, buys, sells)
		if err != nil {
			return domain.MonthlySeries{}, false, err
		}
		series.Points = append(series.Points, point)
	}

	if err := rows.Err(); err != nil {
		return domain.MonthlySeries{}, false, fmt.Errorf("error iterating monthly values: %w", err)
	}

	return series, !series.IsEmpty(), nil
}

// Replace swaps the cached months of the asset inside one transaction
func (r *monthlyValueRepository) Replace(ctx context.Context, key domain.SeriesKey, series domain.MonthlySeries) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM monthly_values WHERE owner_id = ? AND asset_id = ?`, key.OwnerID.String(), key.AssetID.String()); err != nil {
		return fmt.Errorf("failed to clear monthly values: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO monthly_values (owner_id, asset_id, month, value, buys, sells) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare monthly value insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range series.Points {
		_, err := stmt.ExecContext(ctx,
			key.OwnerID.String(),
			key.AssetID.String(),
			p.Month.String(),
			p.Value.String(),
			p.Buys.String(),
			p.Sells.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert monthly value for %s: %w", p.Month, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit monthly values: %w", err)
	}

	return nil
}

// Invalidate drops every cached month of the asset
func (r *monthlyValueRepository) Invalidate(ctx context.Context, key domain.SeriesKey) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM monthly_values WHERE owner_id = ? AND asset_id = ?`, key.OwnerID.String(), key.AssetID.String())
	if err != nil {
		return fmt.Errorf("failed to invalidate monthly values: %w", err)
	}
	return nil
}

func parsePoint(month, value, buys, sells string) (domain.MonthlyPoint, error) {
	m, err := domain.ParseMonth(month)
	if err != nil {
		return domain.MonthlyPoint{}, fmt.Errorf("failed to parse cached month: %w", err)
	}

	point := domain.MonthlyPoint{Month: m}
	for _, field := range []struct {
		raw  string
		dest *decimal.Decimal
	}{
		{value, &point.Value},
		{buys, &point.Buys},
		{sells, &point.Sells},
	} {
		d, err := decimal.NewFromString(field.raw)
		if err != nil {
			return domain.MonthlyPoint{}, fmt.Errorf("failed to parse cached amount for %s: %w", month, err)
		}
		*field.dest = d
	}

	return point, nil
}
