package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Window is a return lookback expressed in months.
// WindowSinceInception (0) measures from the asset's inception.
type Window int

const (
	WindowSinceInception Window = 0
	WindowOneMonth       Window = 1
	WindowOneYear        Window = 12
)

// Validate rejects negative windows
func (w Window) Validate() error {
	if w < 0 {
		return NewValidationError("window", "window must be zero (since inception) or a positive number of months, got %d", int(w))
	}
	return nil
}

// Hundred is used to express ratios as percentages
var Hundred = decimal.NewFromInt(100)

// ReturnFigure is the result of a return computation.
// Percentage is Absolute / Baseline * 100 and is zero when Baseline is zero.
type ReturnFigure struct {
	Baseline   decimal.Decimal
	Absolute   decimal.Decimal
	Percentage decimal.Decimal
}

// NewReturnFigure builds a figure from a baseline and an absolute return,
// applying the zero-baseline policy
func NewReturnFigure(baseline, absolute decimal.Decimal) ReturnFigure {
	return ReturnFigure{
		Baseline:   baseline,
		Absolute:   absolute,
		Percentage: Percent(absolute, baseline),
	}
}

// Add sums two figures and recomputes the percentage
func (f ReturnFigure) Add(other ReturnFigure) ReturnFigure {
	return NewReturnFigure(f.Baseline.Add(other.Baseline), f.Absolute.Add(other.Absolute))
}

// Percent returns part / whole * 100, or zero when whole is zero
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(Hundred)
}

// MonthlyReturn is one month's contribution to the return of an asset or portfolio
type MonthlyReturn struct {
	Month Month
	Value decimal.Decimal
	ReturnFigure
}

// AssetSummary is one row of the portfolio summary
type AssetSummary struct {
	Asset        *Asset
	CurrentValue decimal.Decimal
	LastActivity time.Time // Latest operation date, or inception date when there are none
	Return1M     ReturnFigure
	Return1Y     ReturnFigure
	ReturnTotal  ReturnFigure
}

// PortfolioSummary aggregates every asset of an owner as of a month
type PortfolioSummary struct {
	AsOf        Month
	TotalValue  decimal.Decimal
	Return1M    ReturnFigure
	Return1Y    ReturnFigure
	ReturnTotal ReturnFigure
	Monthly     []MonthlyReturn
	Assets      []AssetSummary
}

// CompositionSlice is the share of the portfolio held under one group value
type CompositionSlice struct {
	Key   string
	Value decimal.Decimal
	Share decimal.Decimal // Percentage of the total
}

// AccumulatedPoint is the compounded return up to and including Month
type AccumulatedPoint struct {
	Month      Month
	Percentage decimal.Decimal
}

// BenchmarkComparison lines up the portfolio's accumulated return with reference indices
type BenchmarkComparison struct {
	Months      []Month
	Portfolio   []AccumulatedPoint
	Indices     map[string][]AccumulatedPoint
	Unavailable []string // Indices that could not be fetched
}

// SeriesKey identifies one asset's cached series
type SeriesKey struct {
	OwnerID uuid.UUID
	AssetID uuid.UUID
}
