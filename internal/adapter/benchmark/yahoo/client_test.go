package yahoo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/carteira-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monthly bars are stamped at local midnight, 03:00 UTC for Sao Paulo
func barStamp(m domain.Month) int64 {
	return m.Time().Add(3 * time.Hour).Unix()
}

func TestGetMonthlyReturns_MonthOverMonth(t *testing.T) {
	dec := domain.NewMonth(2022, time.December)
	jan, feb, mar := dec.AddMonths(1), dec.AddMonths(2), dec.AddMonths(3)

	var capturedPath, capturedAgent, capturedInterval string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedAgent = r.Header.Get("User-Agent")
		capturedInterval = r.URL.Query().Get("interval")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"chart":{"result":[{"meta":{"gmtoffset":-10800},
			"timestamp":[%d,%d,%d,%d],
			"indicators":{"quote":[{"close":[100000,110000,null,99000]}]}}],"error":null}}`,
			barStamp(dec), barStamp(jan), barStamp(feb), barStamp(mar))
	}))
	defer srv.Close()

	client, err := NewClient(WithBaseURL(srv.URL))
	require.NoError(t, err)

	got, err := client.GetMonthlyReturns(context.Background(), jan, mar)
	require.NoError(t, err)

	assert.Equal(t, "/v8/finance/chart/^BVSP", capturedPath)
	assert.Contains(t, capturedAgent, "Mozilla")
	assert.Equal(t, "1mo", capturedInterval)

	require.Len(t, got, 2, "february has no close and is skipped")
	assert.True(t, decimal.NewFromInt(10).Equal(got[jan]), "got %s", got[jan])
	assert.True(t, decimal.NewFromInt(-10).Equal(got[mar]), "march compares with the last known close, got %s", got[mar])
	_, hasDec := got[dec]
	assert.False(t, hasDec, "the lookback month is not part of the answer")
}

func TestGetMonthlyReturns_ChartError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	}))
	defer srv.Close()

	client, err := NewClient(WithBaseURL(srv.URL), WithSymbol("SP500", "^GSPC"))
	require.NoError(t, err)
	assert.Equal(t, "SP500", client.Name())

	m := domain.NewMonth(2024, time.January)
	_, err = client.GetMonthlyReturns(context.Background(), m, m)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Contains(t, apiErr.Message, "delisted")
}

func TestGetMonthlyReturns_TooManyRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := NewClient(WithBaseURL(srv.URL))
	require.NoError(t, err)

	m := domain.NewMonth(2024, time.January)
	_, err = client.GetMonthlyReturns(context.Background(), m, m)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
}

func TestGetMonthlyReturns_ContextCancelled(t *testing.T) {
	client, err := NewClient(WithBaseURL("http://127.0.0.1:0"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := domain.NewMonth(2024, time.January)
	_, err = client.GetMonthlyReturns(ctx, m, m)
	assert.Error(t, err)
}
