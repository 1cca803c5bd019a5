package valuation

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/carteira-backend/internal/domain"
)

var one = decimal.NewFromInt(1)

// Accumulate compounds monthly percentage returns over the given months.
// The first month is the starting point (0%); each following month multiplies the
// accumulator by (1 + r/100). Months missing from monthly count as 0%.
// The result is expressed as a percentage: (acc - 1) * 100.
func Accumulate(months []domain.Month, monthly map[domain.Month]decimal.Decimal) []domain.AccumulatedPoint {
	out := make([]domain.AccumulatedPoint, 0, len(months))
	acc := one
	for i, m := range months {
		if i > 0 {
			if r, ok := monthly[m]; ok {
				acc = acc.Mul(one.Add(r.Div(domain.Hundred)))
			}
		}
		out = append(out, domain.AccumulatedPoint{
			Month:      m,
			Percentage: acc.Sub(one).Mul(domain.Hundred),
		})
	}
	return out
}

// Compare lines up the portfolio's accumulated return with each available index.
// indices maps an index name to its monthly returns; names listed in unavailable
// are reported as such and omitted from the result.
func Compare(portfolio []domain.MonthlyReturn, indices map[string]map[domain.Month]decimal.Decimal, unavailable []string) domain.BenchmarkComparison {
	months := make([]domain.Month, len(portfolio))
	own := make(map[domain.Month]decimal.Decimal, len(portfolio))
	for i, r := range portfolio {
		months[i] = r.Month
		own[r.Month] = r.Percentage
	}

	comparison := domain.BenchmarkComparison{
		Months:      months,
		Portfolio:   Accumulate(months, own),
		Indices:     make(map[string][]domain.AccumulatedPoint, len(indices)),
		Unavailable: append([]string{}, unavailable...),
	}
	for name, monthly := range indices {
		comparison.Indices[name] = Accumulate(months, monthly)
	}
	return comparison
}
