package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	carteirav1 "github.com/simaogato/carteira-backend/internal/adapter/grpc/carteira/v1"
	"github.com/simaogato/carteira-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBRL(t *testing.T) {
	assert.Equal(t, "R$1.234,56", brl("1234.56"))
	assert.Equal(t, "R$0,10", brl("0.1"))
	assert.Equal(t, "R$1.200,00", brl("1200"))
	assert.Equal(t, "abc", brl("abc"), "unparseable input is kept")
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "+9.09%", percent("9.0909"))
	assert.Equal(t, "-1.50%", percent("-1.5"))
	assert.Equal(t, "0.00%", percent("0.0000"))
	assert.Equal(t, "-", figure(nil))
	assert.Equal(t, "R$100,00 (+9.09%)", figure(&carteirav1.ReturnFigure{Absolute: "100", Percentage: "9.0909"}))
}

func TestComparisonToDomain(t *testing.T) {
	cmp, err := comparisonToDomain(&carteirav1.BenchmarkComparison{
		Months:    []string{"2023-01", "2023-02"},
		Portfolio: []*carteirav1.AccumulatedPoint{{Month: "2023-01", Percentage: "0"}, {Month: "2023-02", Percentage: "1.5"}},
		Indices: []*carteirav1.IndexSeries{{
			Name:   "CDI",
			Points: []*carteirav1.AccumulatedPoint{{Month: "2023-01", Percentage: "0"}, {Month: "2023-02", Percentage: "1.0"}},
		}},
		Unavailable: []string{"IFIX"},
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.Month{domain.NewMonth(2023, 1), domain.NewMonth(2023, 2)}, cmp.Months)
	require.Len(t, cmp.Portfolio, 2)
	assert.Equal(t, "1.5", cmp.Portfolio[1].Percentage.String())
	require.Contains(t, cmp.Indices, "CDI")
	assert.Equal(t, "1", cmp.Indices["CDI"][1].Percentage.String())
	assert.Equal(t, []string{"IFIX"}, cmp.Unavailable)

	_, err = comparisonToDomain(&carteirav1.BenchmarkComparison{
		Months:  []string{"2023-01"},
		Indices: []*carteirav1.IndexSeries{{Name: "CDI", Points: []*carteirav1.AccumulatedPoint{{Month: "2023-01", Percentage: "x"}}}},
	})
	assert.ErrorContains(t, err, "index CDI")
}

func TestTableRows(t *testing.T) {
	var buf bytes.Buffer
	w := table(&buf)
	fmt.Fprintln(w, assetRow(&carteirav1.Asset{
		Id:             "a1",
		Name:           "CDB Banco Inter",
		Class:          "FIXED_INCOME",
		Subclass:       "CDB",
		Custodian:      "Inter",
		InceptionValue: "1000",
		InceptionDate:  "2023-01-01",
	}))
	fmt.Fprintln(w, operationRow(&carteirav1.Operation{
		Id:      "o1",
		AssetId: "a1",
		Kind:    "BUY",
		Amount:  "200",
		Date:    "2023-02-10",
	}))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"a1", "CDB", "Banco", "Inter", "FIXED_INCOME", "CDB", "Inter", "2023-01-01", "R$1.000,00"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"2023-02-10", "BUY", "R$200,00", "a1", "o1"}, strings.Fields(lines[1]))
}
