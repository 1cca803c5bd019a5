package valuation

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/simaogato/carteira-backend/internal/domain"
)

// TotalValue sums each series' value as of the given month.
// Series that start after asOf contribute nothing.
func TotalValue(series []domain.MonthlySeries, asOf domain.Month) decimal.Decimal {
	total := decimal.Zero
	for _, s := range series {
		total = total.Add(s.ValueAt(asOf))
	}
	return total
}

// AggregateMonthly merges per-asset series into the portfolio's monthly returns.
//
// Logic:
// - Months run from the earliest series start through `through`
//   (the latest series end when through is zero)
// - An asset contributes nothing before its inception and carries its last value after its end
// - Value, baseline and absolute return are summed across assets;
//   the percentage is recomputed from the summed figures
func AggregateMonthly(series []domain.MonthlySeries, through domain.Month) []domain.MonthlyReturn {
	var start, end domain.Month
	for _, s := range series {
		if s.IsEmpty() {
			continue
		}
		if start.IsZero() || s.Start().Before(start) {
			start = s.Start()
		}
		end = domain.MaxMonth(end, s.End())
	}
	if start.IsZero() {
		return []domain.MonthlyReturn{}
	}
	if !through.IsZero() {
		end = through
	}
	if end.Before(start) {
		return []domain.MonthlyReturn{}
	}

	n := domain.MonthsBetween(start, end) + 1
	values := make([]decimal.Decimal, n)
	baselines := make([]decimal.Decimal, n)
	absolutes := make([]decimal.Decimal, n)
	for i := range values {
		values[i], baselines[i], absolutes[i] = decimal.Zero, decimal.Zero, decimal.Zero
	}

	for _, s := range series {
		if s.IsEmpty() || s.Start().After(end) {
			continue
		}
		for _, r := range MonthlyReturns(Extend(Truncate(s, end), end)) {
			i := domain.MonthsBetween(start, r.Month)
			values[i] = values[i].Add(r.Value)
			baselines[i] = baselines[i].Add(r.Baseline)
			absolutes[i] = absolutes[i].Add(r.Absolute)
		}
	}

	out := make([]domain.MonthlyReturn, n)
	for i := range out {
		out[i] = domain.MonthlyReturn{
			Month:        start.AddMonths(i),
			Value:        values[i],
			ReturnFigure: domain.NewReturnFigure(baselines[i], absolutes[i]),
		}
	}
	return out
}

// AggregateReturns sums baselines and absolute returns and recomputes the percentage
func AggregateReturns(figures []domain.ReturnFigure) domain.ReturnFigure {
	total := domain.NewReturnFigure(decimal.Zero, decimal.Zero)
	for _, f := range figures {
		total = total.Add(f)
	}
	return total
}

// KeyedValue is one asset's current value tagged with its classification
type KeyedValue struct {
	Key   string
	Value decimal.Decimal
}

// Composition groups values by key and returns each group's share of the total.
// Slices are ordered by value (largest first), then key. Shares are zero when the total is zero.
func Composition(items []KeyedValue) []domain.CompositionSlice {
	sums := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, item := range items {
		current, ok := sums[item.Key]
		if !ok {
			current = decimal.Zero
		}
		sums[item.Key] = current.Add(item.Value)
		total = total.Add(item.Value)
	}

	out := make([]domain.CompositionSlice, 0, len(sums))
	for key, value := range sums {
		out = append(out, domain.CompositionSlice{
			Key:   key,
			Value: value,
			Share: domain.Percent(value, total),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Value.Equal(out[j].Value) {
			return out[i].Value.GreaterThan(out[j].Value)
		}
		return out[i].Key < out[j].Key
	})
	return out
}
