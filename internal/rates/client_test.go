package rates

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Latest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-key/latest/USD", r.URL.Path)
		fmt.Fprint(w, `{
			"result": "success",
			"base_code": "USD",
			"conversion_rates": {"USD": 1, "AUD": 1.4817, "EUR": 0.9013}
		}`)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "test-key", srv.Client())

	rates, err := c.Latest(context.Background(), "usd")
	require.NoError(t, err)
	assert.Equal(t, "USD", rates.Base)
	assert.True(t, rates.ConversionRates["AUD"].Equal(decimal.RequireFromString("1.4817")))
}

func TestHTTPClient_Latest_UnsupportedCurrency(t *testing.T) {
	c := NewHTTPClient("http://example.invalid", "test-key", http.DefaultClient)

	_, err := c.Latest(context.Background(), "ZZZ")
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)
}

func TestHTTPClient_Latest_UpstreamError(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		c := NewHTTPClient(srv.URL, "test-key", srv.Client())
		_, err := c.Latest(context.Background(), "USD")
		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("api-level failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"result": "error", "error-type": "invalid-key"}`)
		}))
		defer srv.Close()

		c := NewHTTPClient(srv.URL, "test-key", srv.Client())
		_, err := c.Latest(context.Background(), "USD")
		assert.ErrorIs(t, err, ErrUpstream)
		assert.Contains(t, err.Error(), "invalid-key")
	})
}

func TestRates_Convert(t *testing.T) {
	rates := &Rates{
		Base: "USD",
		ConversionRates: map[string]decimal.Decimal{
			"AUD": decimal.RequireFromString("1.5"),
		},
	}

	got, err := rates.Convert(decimal.RequireFromString("10.00"), "aud")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("15.00")))

	_, err = rates.Convert(decimal.NewFromInt(1), "EUR")
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("AUD"))
	assert.True(t, Supported("usd"))
	assert.False(t, Supported("ZZZ"))
	assert.False(t, Supported(""))
}
