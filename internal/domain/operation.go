package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OperationKind represents the type of a ledger operation
type OperationKind string

const (
	OperationKindRevaluation OperationKind = "REVALUATION" // Overwrites the known value as of its date
	OperationKindBuy         OperationKind = "BUY"         // Adds to the value
	OperationKindSell        OperationKind = "SELL"        // Subtracts from the value
)

// Operation is a dated financial event recorded against exactly one asset.
// Operations are never mutated by the valuation engine; any change to the ledger
// triggers a full recomputation of the asset's series.
type Operation struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	AssetID   uuid.UUID
	Kind      OperationKind
	Amount    decimal.Decimal
	Date      time.Time
	CreatedAt time.Time
}

// Month returns the month the operation belongs to
func (o *Operation) Month() Month {
	return MonthOf(o.Date)
}

// Validate ensures the operation adheres to domain rules on its own
// Returns a *ValidationError if validation fails
func (o *Operation) Validate() error {
	if o.AssetID == uuid.Nil {
		return NewValidationError("asset_id", "operation must reference an asset")
	}

	if o.Date.IsZero() {
		return NewValidationError("date", "operation date is required")
	}

	switch o.Kind {
	case OperationKindBuy, OperationKindSell:
		if o.Amount.LessThanOrEqual(decimal.Zero) {
			return NewValidationError("amount", "%s amount must be positive", o.Kind)
		}
	case OperationKindRevaluation:
		if o.Amount.IsNegative() {
			return NewValidationError("amount", "revaluation amount cannot be negative")
		}
	default:
		return NewValidationError("kind", "operation kind must be REVALUATION, BUY, or SELL")
	}

	return nil
}

// ValidateAgainst checks the operation against the asset it belongs to.
// No operation may predate the asset's inception date.
func (o *Operation) ValidateAgainst(asset *Asset) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if o.AssetID != asset.ID {
		return NewValidationError("asset_id", "operation does not belong to asset %s", asset.ID)
	}

	if truncateDay(o.Date).Before(truncateDay(asset.InceptionDate)) {
		return NewValidationError("date", "operation date %s is before asset inception %s",
			o.Date.Format(DateFormat), asset.InceptionDate.Format(DateFormat))
	}

	return nil
}

// OperationFilter restricts operation listings. Zero fields do not filter.
type OperationFilter struct {
	AssetID *uuid.UUID
	Kind    OperationKind
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
