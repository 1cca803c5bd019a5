package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/simaogato/carteira-backend/internal/adapter/chart"
	carteirav1 "github.com/simaogato/carteira-backend/internal/adapter/grpc/carteira/v1"
)

// seriesCmd prints an asset's monthly value series
type seriesCmd struct {
	asset   string
	through string
}

func (*seriesCmd) Name() string     { return "series" }
func (*seriesCmd) Synopsis() string { return "display the monthly value series of an asset" }
func (*seriesCmd) Usage() string {
	return `series -asset <id> [-through <yyyy-mm>]

  Displays the end-of-month value of an asset with the buys and sells of each month.
`
}

func (c *seriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "asset id")
	f.StringVar(&c.through, "through", "", "last month of the series, defaults to the current month")
}

func (c *seriesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" {
		return fail("-asset is required")
	}

	s, err := dial(ctx)
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.close()

	resp, err := s.client.GetMonthlySeries(s.ctx, &carteirav1.GetMonthlySeriesRequest{
		OwnerId: *ownerID,
		AssetId: c.asset,
		Through: c.through,
	})
	if err != nil {
		return fail("Error fetching series: %v", err)
	}

	w := stdoutTable()
	fmt.Fprintln(w, "Month\tValue\tBuys\tSells")
	for _, p := range resp.Points {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Month, brl(p.Value), brl(p.Buys), brl(p.Sells))
	}
	w.Flush()
	return subcommands.ExitSuccess
}

// returnCmd prints the return of an asset over a window
type returnCmd struct {
	asset      string
	evaluation string
	window     int
}

func (*returnCmd) Name() string     { return "return" }
func (*returnCmd) Synopsis() string { return "display the return of an asset" }
func (*returnCmd) Usage() string {
	return `return -asset <id> [-window <months>] [-m <yyyy-mm>]

  Displays the flow-adjusted return of an asset. A zero window measures since inception.
`
}

func (c *returnCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "asset id")
	f.StringVar(&c.evaluation, "m", "", "evaluation month, defaults to the current month")
	f.IntVar(&c.window, "window", 0, "lookback in months, 0 for since inception")
}

func (c *returnCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" {
		return fail("-asset is required")
	}
	if c.window < 0 {
		fmt.Fprintln(os.Stderr, "-window cannot be negative")
		return subcommands.ExitUsageError
	}

	s, err := dial(ctx)
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.close()

	fig, err := s.client.GetReturn(s.ctx, &carteirav1.GetReturnRequest{
		OwnerId:      *ownerID,
		AssetId:      c.asset,
		Evaluation:   c.evaluation,
		WindowMonths: int32(c.window),
	})
	if err != nil {
		return fail("Error computing return: %v", err)
	}

	fmt.Printf("Baseline:\t%s\n", brl(fig.Baseline))
	fmt.Printf("Return:\t\t%s\n", figure(fig))
	return subcommands.ExitSuccess
}

// summaryCmd prints the portfolio summary
type summaryCmd struct {
	asOf    string
	monthly bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a portfolio performance summary" }
func (*summaryCmd) Usage() string {
	return `summary [-m <yyyy-mm>] [-monthly]

  Displays the total value and the 1 month, 12 month and since inception returns
  of the portfolio and of each asset.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asOf, "m", "", "month of the summary, defaults to the current month")
	f.BoolVar(&c.monthly, "monthly", false, "also print the return of every month")
}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := dial(ctx)
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.close()

	sum, err := s.client.GetPortfolioSummary(s.ctx, &carteirav1.GetPortfolioSummaryRequest{
		OwnerId: *ownerID,
		AsOf:    c.asOf,
	})
	if err != nil {
		return fail("Error fetching summary: %v", err)
	}

	fmt.Printf("Portfolio as of %s: %s\n\n", sum.AsOf, brl(sum.TotalValue))

	w := stdoutTable()
	fmt.Fprintln(w, "Asset\tValue\t1M\t12M\tTotal\tLast activity")
	for _, a := range sum.Assets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", a.Asset.Name, brl(a.CurrentValue),
			percentOf(a.Return1M), percentOf(a.Return1Y), percentOf(a.ReturnTotal), a.LastActivity)
	}
	fmt.Fprintf(w, "Total\t%s\t%s\t%s\t%s\t\n", brl(sum.TotalValue),
		percentOf(sum.Return1M), percentOf(sum.Return1Y), percentOf(sum.ReturnTotal))
	w.Flush()

	if c.monthly {
		fmt.Println()
		w = stdoutTable()
		fmt.Fprintln(w, "Month\tValue\tReturn")
		for _, m := range sum.Monthly {
			fmt.Fprintf(w, "%s\t%s\t%s\n", m.Month, brl(m.Value), figure(m.Return))
		}
		w.Flush()
	}
	return subcommands.ExitSuccess
}

func percentOf(f *carteirav1.ReturnFigure) string {
	if f == nil {
		return "-"
	}
	return percent(f.Percentage)
}

// compositionCmd prints how the portfolio splits by class, subclass or custodian
type compositionCmd struct {
	asOf    string
	groupBy string
}

func (*compositionCmd) Name() string     { return "composition" }
func (*compositionCmd) Synopsis() string { return "display the portfolio composition" }
func (*compositionCmd) Usage() string {
	return `composition [-by <class|subclass|custodian>] [-m <yyyy-mm>]

  Displays the share of the portfolio held under each group.
`
}

func (c *compositionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asOf, "m", "", "month of the breakdown, defaults to the current month")
	f.StringVar(&c.groupBy, "by", "class", "grouping: class, subclass or custodian")
}

func (c *compositionCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := dial(ctx)
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.close()

	resp, err := s.client.GetCompositionBreakdown(s.ctx, &carteirav1.GetCompositionBreakdownRequest{
		OwnerId: *ownerID,
		AsOf:    c.asOf,
		GroupBy: strings.ToUpper(c.groupBy),
	})
	if err != nil {
		return fail("Error fetching composition: %v", err)
	}

	w := stdoutTable()
	fmt.Fprintln(w, "Group\tValue\tShare")
	for _, slice := range resp.Slices {
		fmt.Fprintf(w, "%s\t%s\t%s%%\n", slice.Key, brl(slice.Value), slice.Share)
	}
	w.Flush()
	return subcommands.ExitSuccess
}

func pointAt(points []*carteirav1.AccumulatedPoint, i int) string {
	if i >= len(points) {
		return "-"
	}
	return percent(points[i].Percentage)
}

// benchmarkCmd compares the portfolio against reference indices
type benchmarkCmd struct {
	asOf    string
	indices string
	chart   string
}

func (*benchmarkCmd) Name() string     { return "benchmark" }
func (*benchmarkCmd) Synopsis() string { return "compare the portfolio against reference indices" }
func (*benchmarkCmd) Usage() string {
	return `benchmark [-i CDI,IBOVESPA] [-m <yyyy-mm>] [-chart <file.png>]

  Displays the accumulated return of the portfolio next to each index.
  With -chart, also renders the comparison as a PNG line chart.
`
}

func (c *benchmarkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asOf, "m", "", "last month of the comparison, defaults to the current month")
	f.StringVar(&c.indices, "i", "", "comma separated index names, defaults to every configured index")
	f.StringVar(&c.chart, "chart", "", "write a PNG chart to this file")
}

func (c *benchmarkCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := dial(ctx)
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.close()

	var indices []string
	if c.indices != "" {
		for _, name := range strings.Split(c.indices, ",") {
			indices = append(indices, strings.TrimSpace(name))
		}
	}

	cmp, err := s.client.GetBenchmarkComparison(s.ctx, &carteirav1.GetBenchmarkComparisonRequest{
		OwnerId: *ownerID,
		AsOf:    c.asOf,
		Indices: indices,
	})
	if err != nil {
		return fail("Error fetching comparison: %v", err)
	}

	w := stdoutTable()
	header := []string{"Month", "Portfolio"}
	for _, idx := range cmp.Indices {
		header = append(header, idx.Name)
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for i, month := range cmp.Months {
		row := []string{month, pointAt(cmp.Portfolio, i)}
		for _, idx := range cmp.Indices {
			row = append(row, pointAt(idx.Points, i))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()

	if len(cmp.Unavailable) > 0 {
		fmt.Fprintf(os.Stderr, "warning, unavailable indices: %s\n", strings.Join(cmp.Unavailable, ", "))
	}

	if c.chart == "" {
		return subcommands.ExitSuccess
	}

	comparison, err := comparisonToDomain(cmp)
	if err != nil {
		return fail("Error decoding comparison: %v", err)
	}
	png, err := chart.RenderComparison(comparison)
	if err != nil {
		return fail("Error rendering chart: %v", err)
	}
	if err := os.WriteFile(c.chart, png, 0644); err != nil {
		return fail("Error writing chart %q: %v", c.chart, err)
	}
	fmt.Printf("chart written to %s\n", c.chart)
	return subcommands.ExitSuccess
}
