// Package valuation holds the pure computation pipeline:
// operations and inception data are reduced to a monthly value series, which in turn
// yields return figures, portfolio aggregates and benchmark comparisons.
// Nothing in this package performs I/O or keeps state between calls.
package valuation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/carteira-backend/internal/domain"
)

// monthActivity accumulates the operations that fall in one month
type monthActivity struct {
	revaluation *decimal.Decimal // Last revaluation of the month wins
	buys        decimal.Decimal
	sells       decimal.Decimal
}

// Reconstruct rebuilds the monthly value series of an asset from its inception data
// and its complete operation list.
//
// Logic:
// 1. Operations are sorted by date; ties keep their input order.
// 2. Within a month the last revaluation overwrites the value, buys and sells accumulate.
// 3. The inception month starts from inceptionValue unless a revaluation in that month replaces it.
// 4. Each month: value = revaluation (if any) + buys - sells, on top of the carried value.
// 5. Months without operations repeat the previous value.
//
// The series ends at the later of the last operation month and asOf (a zero asOf is ignored).
// Operations dated before inception are folded into the inception month; callers are
// expected to reject them at ingestion.
func Reconstruct(inceptionValue decimal.Decimal, inceptionDate time.Time, ops []*domain.Operation, asOf domain.Month) domain.MonthlySeries {
	start := domain.MonthOf(inceptionDate)

	sorted := make([]*domain.Operation, len(ops))
	copy(sorted, ops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	activity := make(map[domain.Month]*monthActivity)
	end := start
	for _, op := range sorted {
		m := op.Month()
		if m.Before(start) {
			m = start
		}

		a, ok := activity[m]
		if !ok {
			a = &monthActivity{buys: decimal.Zero, sells: decimal.Zero}
			activity[m] = a
		}

		switch op.Kind {
		case domain.OperationKindRevaluation:
			v := op.Amount
			a.revaluation = &v
		case domain.OperationKindBuy:
			a.buys = a.buys.Add(op.Amount)
		case domain.OperationKindSell:
			a.sells = a.sells.Add(op.Amount)
		}

		end = domain.MaxMonth(end, m)
	}
	end = domain.MaxMonth(end, asOf)

	points := make([]domain.MonthlyPoint, 0, domain.MonthsBetween(start, end)+1)
	current := inceptionValue
	for m := start; !m.After(end); m = m.AddMonths(1) {
		point := domain.MonthlyPoint{Month: m, Buys: decimal.Zero, Sells: decimal.Zero}

		if a, ok := activity[m]; ok {
			if a.revaluation != nil {
				current = *a.revaluation
			}
			current = current.Add(a.buys).Sub(a.sells)
			point.Buys = a.buys
			point.Sells = a.sells
		}

		point.Value = current
		points = append(points, point)
	}

	return domain.MonthlySeries{
		InceptionValue: inceptionValue,
		Points:         points,
	}
}

// Extend returns a copy of series carried forward through the given month.
// Added months repeat the last value and carry no flows. A through month at or before
// the series end returns the series unchanged.
func Extend(series domain.MonthlySeries, through domain.Month) domain.MonthlySeries {
	last, ok := series.Last()
	if !ok || through.IsZero() || !through.After(last.Month) {
		return series
	}

	points := make([]domain.MonthlyPoint, len(series.Points), len(series.Points)+domain.MonthsBetween(last.Month, through))
	copy(points, series.Points)
	for m := last.Month.AddMonths(1); !m.After(through); m = m.AddMonths(1) {
		points = append(points, domain.MonthlyPoint{
			Month: m,
			Value: last.Value,
			Buys:  decimal.Zero,
			Sells: decimal.Zero,
		})
	}

	return domain.MonthlySeries{
		InceptionValue: series.InceptionValue,
		Points:         points,
	}
}

// Truncate returns the prefix of series ending at through.
// It is used to answer "as of" queries on a cached series that runs further.
func Truncate(series domain.MonthlySeries, through domain.Month) domain.MonthlySeries {
	if through.IsZero() || series.IsEmpty() || !through.Before(series.End()) {
		return series
	}
	if through.Before(series.Start()) {
		return domain.MonthlySeries{InceptionValue: series.InceptionValue}
	}
	return domain.MonthlySeries{
		InceptionValue: series.InceptionValue,
		Points:         series.Points[:series.Index(through)+1],
	}
}
