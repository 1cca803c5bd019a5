// Package chart renders accumulated-return comparisons as PNG line charts
package chart

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/simaogato/carteira-backend/internal/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// palette colours the index lines in name order; the portfolio is always blue
var palette = []drawing.Color{
	drawing.ColorFromHex("f59e0b"), // amber-500
	drawing.ColorFromHex("10b981"), // emerald-500
	drawing.ColorFromHex("ef4444"), // red-500
	drawing.ColorFromHex("8b5cf6"), // violet-500
}

// RenderComparison renders the portfolio's accumulated return against each index.
// Returns raw PNG bytes.
func RenderComparison(comparison domain.BenchmarkComparison) ([]byte, error) {
	if len(comparison.Months) < 2 {
		return nil, fmt.Errorf("need at least 2 months, got %d", len(comparison.Months))
	}

	series := []chart.Series{
		lineSeries("Portfolio", comparison.Portfolio, chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
			StrokeWidth: 2.5,
		}),
	}

	names := make([]string, 0, len(comparison.Indices))
	for name := range comparison.Indices {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		series = append(series, lineSeries(name, comparison.Indices[name], chart.Style{
			StrokeColor:     palette[i%len(palette)],
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		}))
	}

	graph := chart.Chart{
		Title:  "Accumulated Return",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.1f%%", f)
				}
				return ""
			},
		},
		Series: series,
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

func lineSeries(name string, points []domain.AccumulatedPoint, style chart.Style) chart.TimeSeries {
	xValues := make([]time.Time, len(points))
	yValues := make([]float64, len(points))
	for i, p := range points {
		xValues[i] = p.Month.Time()
		yValues[i] = p.Percentage.InexactFloat64()
	}
	return chart.TimeSeries{
		Name:    name,
		Style:   style,
		XValues: xValues,
		YValues: yValues,
	}
}
