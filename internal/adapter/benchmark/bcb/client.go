// Package bcb fetches the CDI rate from the Banco Central do Brasil SGS API
package bcb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/simaogato/carteira-backend/internal/domain"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://api.bcb.gov.br"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 2 // requests per second

	// CDISeries is the SGS code of the daily CDI rate
	CDISeries = 12

	// SGS rejects daily series queries spanning more than ten years
	maxMonthsPerRequest = 120

	sgsDateLayout = "02/01/2006"
)

// Client implements domain.BenchmarkProvider for the CDI
type Client struct {
	baseURL    string
	series     int
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

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger.With().Str("client", "bcb").Logger()
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

// NewClient creates a new SGS client for the CDI series
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		series:  CDISeries,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents a non-OK answer from the SGS API
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("BCB API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// observation is one daily entry of an SGS series
type observation struct {
	Date  string `json:"data"`
	Value string `json:"valor"`
}

// Name returns the index name
func (c *Client) Name() string {
	return "CDI"
}

// GetMonthlyReturns compounds the daily CDI rates of each month in [start, end]
func (c *Client) GetMonthlyReturns(ctx context.Context, start, end domain.Month) (map[domain.Month]decimal.Decimal, error) {
	if end.Before(start) {
		return nil, domain.NewValidationError("range", "end month %s is before start month %s", end, start)
	}

	daily := make(map[domain.Month][]decimal.Decimal)
	for from := start; !from.After(end); from = from.AddMonths(maxMonthsPerRequest) {
		to := from.AddMonths(maxMonthsPerRequest - 1)
		if to.After(end) {
			to = end
		}

		observations, err := c.fetch(ctx, from.Time(), to.LastDay())
		if err != nil {
			return nil, err
		}

		for _, o := range observations {
			date, err := time.Parse(sgsDateLayout, o.Date)
			if err != nil {
				return nil, fmt.Errorf("failed to parse SGS date %q: %w", o.Date, err)
			}
			pct, err := decimal.NewFromString(strings.TrimSpace(o.Value))
			if err != nil {
				return nil, fmt.Errorf("failed to parse SGS value %q: %w", o.Value, err)
			}
			m := domain.MonthOf(date)
			daily[m] = append(daily[m], pct)
		}
	}

	monthly := make(map[domain.Month]decimal.Decimal, len(daily))
	for m, rates := range daily {
		monthly[m] = compound(rates)
	}

	c.logger.Debug().
		Str("start", start.String()).
		Str("end", end.String()).
		Int("months", len(monthly)).
		Msg("Fetched CDI monthly returns")

	return monthly, nil
}

// compound turns daily percentage rates into the month's percentage return
func compound(rates []decimal.Decimal) decimal.Decimal {
	acc := decimal.NewFromInt(1)
	for _, r := range rates {
		acc = acc.Mul(decimal.NewFromInt(1).Add(r.Div(domain.Hundred)))
	}
	return acc.Sub(decimal.NewFromInt(1)).Mul(domain.Hundred)
}

func (c *Client) fetch(ctx context.Context, from, to time.Time) ([]observation, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	path := fmt.Sprintf("/dados/serie/bcdata.sgs.%d/dados", c.series)
	params := url.Values{}
	params.Set("formato", "json")
	params.Set("dataInicial", from.Format(sgsDateLayout))
	params.Set("dataFinal", to.Format(sgsDateLayout))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.logger.Error().Err(err).Dur("elapsed", elapsed).Msg("SGS request failed")
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	// SGS answers 404 when the range holds no business day
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Warn().Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("SGS non-OK response")
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
			Endpoint:   path,
		}
	}

	var observations []observation
	if err := json.NewDecoder(resp.Body).Decode(&observations); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return observations, nil
}

// Ensure Client implements BenchmarkProvider
var _ domain.BenchmarkProvider = (*Client)(nil)
