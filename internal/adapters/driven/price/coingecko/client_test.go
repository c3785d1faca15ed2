package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
)

func TestClient_Price(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "monero", r.URL.Query().Get("ids"))
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"monero":{"usd":165.43}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	price, err := client.Price(context.Background(), domain.CurrencyXMR, domain.CurrencyUSD)
	require.NoError(t, err)
	assert.Equal(t, 165.43, price)
}

func TestClient_PriceCryptoPair(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bitcoin", r.URL.Query().Get("ids"))
		assert.Equal(t, "xmr", r.URL.Query().Get("vs_currencies"))
		w.Write([]byte(`{"bitcoin":{"xmr":651.2}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	price, err := client.Price(context.Background(), domain.CurrencyBTC, domain.CurrencyXMR)
	require.NoError(t, err)
	assert.Equal(t, 651.2, price)
}

func TestClient_PriceUnsupportedPair(t *testing.T) {
	client := NewClient()

	// Fiat currencies have no coin id.
	_, err := client.Price(context.Background(), domain.CurrencyUSD, domain.CurrencyXMR)
	assert.ErrorIs(t, err, domain.ErrUnsupportedCurrency)

	_, err = client.Price(context.Background(), domain.CurrencyXMR, domain.Currency("ZZZ"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedCurrency)
}

func TestClient_PriceServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.Price(context.Background(), domain.CurrencyXMR, domain.CurrencyUSD)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClient_PriceMissingQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.Price(context.Background(), domain.CurrencyXMR, domain.CurrencyUSD)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no quote")
}
