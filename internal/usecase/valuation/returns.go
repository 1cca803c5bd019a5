package valuation

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/carteira-backend/internal/domain"
)

// CalculateReturn computes the return of a series at the evaluation month over a window.
//
// Logic:
// - end = value at the evaluation month (carried forward past the series end)
// - Windowed: start = evaluation - window, clamped to the series start;
//   baseline = value(start) + buys(start, evaluation] - sells(start, evaluation]
// - Since inception: baseline = inception value + every buy and sell up to the evaluation month
// - absolute = end - baseline; percentage = absolute / baseline * 100 (0 when baseline is 0)
//
// An evaluation month before the series start yields a zero figure.
// Only a negative window is an error.
func CalculateReturn(series domain.MonthlySeries, evaluation domain.Month, window domain.Window) (domain.ReturnFigure, error) {
	if err := window.Validate(); err != nil {
		return domain.ReturnFigure{}, err
	}

	zero := domain.NewReturnFigure(decimal.Zero, decimal.Zero)
	if series.IsEmpty() || evaluation.Before(series.Start()) {
		return zero, nil
	}

	end := series.ValueAt(evaluation)

	var baseline decimal.Decimal
	if window == domain.WindowSinceInception {
		buys, sells := series.FlowsBetween(domain.Month{}, evaluation)
		baseline = series.InceptionValue.Add(buys).Sub(sells)
	} else {
		start := evaluation.AddMonths(-int(window))
		if start.Before(series.Start()) {
			start = series.Start()
		}
		buys, sells := series.FlowsBetween(start, evaluation)
		baseline = series.ValueAt(start).Add(buys).Sub(sells)
	}

	return domain.NewReturnFigure(baseline, end.Sub(baseline)), nil
}

// MonthlyReturns returns each month's return contribution.
// The baseline of a month is the previous month's value (the inception value for the
// first month) adjusted by that month's buys and sells.
func MonthlyReturns(series domain.MonthlySeries) []domain.MonthlyReturn {
	out := make([]domain.MonthlyReturn, 0, series.Len())
	previous := series.InceptionValue
	for _, p := range series.Points {
		baseline := previous.Add(p.Buys).Sub(p.Sells)
		out = append(out, domain.MonthlyReturn{
			Month:        p.Month,
			Value:        p.Value,
			ReturnFigure: domain.NewReturnFigure(baseline, p.Value.Sub(baseline)),
		})
		previous = p.Value
	}
	return out
}
