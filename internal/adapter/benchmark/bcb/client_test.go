package bcb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/carteira-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMonthlyReturns_CompoundsDailyRates(t *testing.T) {
	var capturedPath, capturedStart, capturedEnd string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedStart = r.URL.Query().Get("dataInicial")
		capturedEnd = r.URL.Query().Get("dataFinal")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]observation{
			{Date: "02/01/2023", Value: "1"},
			{Date: "03/01/2023", Value: "1"},
			{Date: "01/02/2023", Value: "0.5"},
		})
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	jan := domain.NewMonth(2023, time.January)

	got, err := client.GetMonthlyReturns(context.Background(), jan, jan.AddMonths(1))
	require.NoError(t, err)

	assert.Equal(t, "/dados/serie/bcdata.sgs.12/dados", capturedPath)
	assert.Equal(t, "01/01/2023", capturedStart)
	assert.Equal(t, "28/02/2023", capturedEnd)

	require.Len(t, got, 2)
	assert.True(t, decimal.RequireFromString("2.01").Equal(got[jan]), "1%% twice compounds to 2.01%%, got %s", got[jan])
	assert.True(t, decimal.RequireFromString("0.5").Equal(got[jan.AddMonths(1)]))
	assert.Equal(t, "CDI", client.Name())
}

func TestGetMonthlyReturns_SplitsLongRanges(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL), WithRateLimit(100))
	start := domain.NewMonth(2010, time.January)

	got, err := client.GetMonthlyReturns(context.Background(), start, start.AddMonths(2*maxMonthsPerRequest))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetMonthlyReturns_NotFoundIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	m := domain.NewMonth(2024, time.June)

	got, err := client.GetMonthlyReturns(context.Background(), m, m)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetMonthlyReturns_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	m := domain.NewMonth(2024, time.June)

	_, err := client.GetMonthlyReturns(context.Background(), m, m)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "service unavailable", apiErr.Message)
}

func TestGetMonthlyReturns_InvertedRange(t *testing.T) {
	client := NewClient()
	m := domain.NewMonth(2024, time.June)

	_, err := client.GetMonthlyReturns(context.Background(), m, m.AddMonths(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
