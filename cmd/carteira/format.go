package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	carteirav1 "github.com/simaogato/carteira-backend/internal/adapter/grpc/carteira/v1"
	"github.com/simaogato/carteira-backend/internal/domain"
)

// brl renders a decimal amount as Brazilian reais, e.g. R$1.234,56.
// Unparseable input is returned as is.
func brl(amount string) string {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return amount
	}
	cur := money.GetCurrency(money.BRL)
	return cur.Formatter().Format(d.Shift(int32(cur.Fraction)).Round(0).IntPart())
}

// percent renders a wire percentage with two decimals and a sign
func percent(p string) string {
	d, err := decimal.NewFromString(p)
	if err != nil {
		return p
	}
	if d.IsPositive() {
		return "+" + d.StringFixed(2) + "%"
	}
	return d.StringFixed(2) + "%"
}

// figure renders a return as "absolute (percentage)"
func figure(f *carteirav1.ReturnFigure) string {
	if f == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", brl(f.Absolute), percent(f.Percentage))
}

// assetRow is one tab-separated line of the assets table
func assetRow(a *carteirav1.Asset) string {
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s %s",
		a.Id, a.Name, a.Class, a.Subclass, a.Custodian, a.InceptionDate, brl(a.InceptionValue))
}

func operationRow(op *carteirav1.Operation) string {
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s", op.Date, op.Kind, brl(op.Amount), op.AssetId, op.Id)
}

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func stdoutTable() *tabwriter.Writer { return table(os.Stdout) }

// comparisonToDomain parses the wire comparison so it can be charted
func comparisonToDomain(c *carteirav1.BenchmarkComparison) (domain.BenchmarkComparison, error) {
	out := domain.BenchmarkComparison{
		Indices:     make(map[string][]domain.AccumulatedPoint, len(c.Indices)),
		Unavailable: c.Unavailable,
	}
	for _, s := range c.Months {
		m, err := domain.ParseMonth(s)
		if err != nil {
			return out, err
		}
		out.Months = append(out.Months, m)
	}

	var err error
	if out.Portfolio, err = accumulatedToDomain(c.Portfolio); err != nil {
		return out, err
	}
	for _, idx := range c.Indices {
		points, err := accumulatedToDomain(idx.Points)
		if err != nil {
			return out, fmt.Errorf("index %s: %w", idx.Name, err)
		}
		out.Indices[idx.Name] = points
	}
	return out, nil
}

func accumulatedToDomain(points []*carteirav1.AccumulatedPoint) ([]domain.AccumulatedPoint, error) {
	out := make([]domain.AccumulatedPoint, 0, len(points))
	for _, p := range points {
		m, err := domain.ParseMonth(p.Month)
		if err != nil {
			return nil, err
		}
		pct, err := decimal.NewFromString(p.Percentage)
		if err != nil {
			return nil, fmt.Errorf("invalid percentage %q: %w", p.Percentage, err)
		}
		out = append(out, domain.AccumulatedPoint{Month: m, Percentage: pct})
	}
	return out, nil
}
