package chart

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/carteira-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comparison(months int) domain.BenchmarkComparison {
	start := domain.NewMonth(2023, time.January)
	c := domain.BenchmarkComparison{Indices: map[string][]domain.AccumulatedPoint{}}
	for i := 0; i < months; i++ {
		m := start.AddMonths(i)
		c.Months = append(c.Months, m)
		c.Portfolio = append(c.Portfolio, domain.AccumulatedPoint{Month: m, Percentage: decimal.NewFromInt(int64(i * 2))})
		c.Indices["CDI"] = append(c.Indices["CDI"], domain.AccumulatedPoint{Month: m, Percentage: decimal.NewFromInt(int64(i))})
	}
	return c
}

func TestRenderComparison_PNG(t *testing.T) {
	png, err := RenderComparison(comparison(6))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), "output is a PNG")
}

func TestRenderComparison_NeedsTwoMonths(t *testing.T) {
	_, err := RenderComparison(comparison(1))
	assert.Error(t, err)
}
