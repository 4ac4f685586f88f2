// Package rates looks up currency conversion rates from the ExchangeRate
// API. It is a presentation-layer collaborator: the bill engine never
// imports it, and consumers receive it as an injected interface rather than
// a shared singleton.
package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// Common errors
var (
	ErrUnsupportedCurrency = errors.New("unsupported currency code")
	ErrUpstream            = errors.New("exchange rate service unavailable")
)

// Client fetches the latest conversion rates for a base currency.
type Client interface {
	Latest(ctx context.Context, base string) (*Rates, error)
}

// Rates maps currency codes to the multiplier converting one unit of the
// base currency into that currency.
type Rates struct {
	Base            string                     `json:"base"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

// Convert multiplies an amount in the base currency by the target code's
// multiplier.
func (r *Rates) Convert(amount decimal.Decimal, to string) (decimal.Decimal, error) {
	mult, ok := r.ConversionRates[normalize(to)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, to)
	}
	return amount.Mul(mult), nil
}

// HTTPClient calls the ExchangeRate API v6 latest-rates endpoint.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
}

// NewHTTPClient creates a rates client. The http.Client is injected so
// callers control timeouts; upstream calls are rate limited to stay inside
// the API quota.
func NewHTTPClient(baseURL, apiKey string, client *http.Client) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(1), 5),
	}
}

// latestResponse is the upstream payload shape.
type latestResponse struct {
	Result          string                     `json:"result"`
	ErrorType       string                     `json:"error-type"`
	BaseCode        string                     `json:"base_code"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

// Latest fetches the conversion table for the given base currency.
// Upstream failures are propagated as ErrUpstream; they are transient and
// unrelated to bill-splitting correctness.
func (c *HTTPClient) Latest(ctx context.Context, base string) (*Rates, error) {
	code := normalize(base)
	if !Supported(code) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, base)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var payload latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if payload.Result != "success" {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, payload.ErrorType)
	}

	return &Rates{
		Base:            payload.BaseCode,
		ConversionRates: payload.ConversionRates,
	}, nil
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
