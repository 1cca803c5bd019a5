// Package yahoo fetches IBOVESPA monthly closes from the Yahoo Finance chart API
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/simaogato/carteira-backend/internal/domain"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://query1.finance.yahoo.com"
	DefaultTimeout   = 20 * time.Second
	DefaultRateLimit = 1 // requests per second

	// IbovespaSymbol is the Yahoo ticker of the B3 index
	IbovespaSymbol = "^BVSP"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36"
)

// Client implements domain.BenchmarkProvider for a Yahoo-listed index
type Client struct {
	baseURL    string
	name       string
	symbol     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithSymbol tracks another index under the given name
func WithSymbol(name, symbol string) ClientOption {
	return func(c *Client) {
		c.name = name
		c.symbol = symbol
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger.With().Str("client", "yahoo").Logger()
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		if requestsPerSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
		}
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient creates a chart API client tracking the IBOVESPA by default
func NewClient(opts ...ClientOption) (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		name:    "IBOVESPA",
		symbol:  IbovespaSymbol,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// APIError represents a non-OK answer from the chart API
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Yahoo Finance API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				GMTOffset int `json:"gmtoffset"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Name returns the index name
func (c *Client) Name() string {
	return c.name
}

// GetMonthlyReturns returns the month-over-month change of the first close of each month.
// The month before start is fetched too so that start itself has a return.
func (c *Client) GetMonthlyReturns(ctx context.Context, start, end domain.Month) (map[domain.Month]decimal.Decimal, error) {
	if end.Before(start) {
		return nil, domain.NewValidationError("range", "end month %s is before start month %s", end, start)
	}

	closes, err := c.monthlyCloses(ctx, start.AddMonths(-1), end)
	if err != nil {
		return nil, err
	}

	months := make([]domain.Month, 0, len(closes))
	for m := range closes {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	returns := make(map[domain.Month]decimal.Decimal)
	for i := 1; i < len(months); i++ {
		current, previous := months[i], months[i-1]
		if current.Before(start) || current.After(end) {
			continue
		}
		prev := closes[previous]
		if !prev.IsPositive() {
			continue
		}
		returns[current] = closes[current].Div(prev).Sub(decimal.NewFromInt(1)).Mul(domain.Hundred)
	}

	c.logger.Debug().
		Str("symbol", c.symbol).
		Str("start", start.String()).
		Str("end", end.String()).
		Int("months", len(returns)).
		Msg("Fetched index monthly returns")

	return returns, nil
}

// monthlyCloses keeps the first non-null close of every month in [from, to]
func (c *Client) monthlyCloses(ctx context.Context, from, to domain.Month) (map[domain.Month]decimal.Decimal, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	path := "/v8/finance/chart/" + url.PathEscape(c.symbol)
	params := url.Values{}
	params.Set("period1", fmt.Sprintf("%d", from.Time().Unix()))
	params.Set("period2", fmt.Sprintf("%d", to.AddMonths(1).Time().Unix()))
	params.Set("interval", "1mo")
	params.Set("includePrePost", "false")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// A browser User-Agent is required, the API rejects default Go clients
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.logger.Error().Err(err).Str("symbol", c.symbol).Dur("elapsed", elapsed).Msg("Chart request failed")
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Warn().Str("symbol", c.symbol).Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("Chart non-OK response")
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
			Endpoint:   path,
		}
	}

	var chart chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&chart); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if chart.Chart.Error != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: chart.Chart.Error.Description, Endpoint: path}
	}

	closes := make(map[domain.Month]decimal.Decimal)
	for _, result := range chart.Chart.Result {
		if len(result.Indicators.Quote) == 0 {
			continue
		}
		values := result.Indicators.Quote[0].Close
		offset := time.Duration(result.Meta.GMTOffset) * time.Second

		for i, ts := range result.Timestamp {
			if i >= len(values) || values[i] == nil {
				continue
			}
			m := domain.MonthOf(time.Unix(ts, 0).UTC().Add(offset))
			if m.Before(from) || m.After(to) {
				continue
			}
			if _, seen := closes[m]; !seen {
				closes[m] = decimal.NewFromFloat(*values[i])
			}
		}
	}

	return closes, nil
}

// Ensure Client implements BenchmarkProvider
var _ domain.BenchmarkProvider = (*Client)(nil)
