package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
	"github.com/vendra-labs/vendra-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.PriceSource = (*Client)(nil)

// DefaultBaseURL is the public CoinGecko API endpoint.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// defaultTimeout bounds one price request.
const defaultTimeout = 10 * time.Second

// coinIDs maps crypto currencies to CoinGecko coin ids.
var coinIDs = map[domain.Currency]string{
	domain.CurrencyBTC: "bitcoin",
	domain.CurrencyETH: "ethereum",
	domain.CurrencyLTC: "litecoin",
	domain.CurrencyXMR: "monero",
	domain.CurrencyWOW: "wownero",
}

// vsCurrencies holds the quote codes CoinGecko accepts.
var vsCurrencies = map[domain.Currency]string{
	domain.CurrencyBTC: "btc",
	domain.CurrencyETH: "eth",
	domain.CurrencyLTC: "ltc",
	domain.CurrencyXMR: "xmr",
	domain.CurrencyUSD: "usd",
	domain.CurrencyEUR: "eur",
	domain.CurrencyGBP: "gbp",
	domain.CurrencyJPY: "jpy",
	domain.CurrencyCAD: "cad",
	domain.CurrencyAUD: "aud",
}

// Client queries the CoinGecko simple-price API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a CoinGecko price client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Price returns how much one unit of from is worth in to.
func (c *Client) Price(ctx context.Context, from, to domain.Currency) (float64, error) {
	coinID, ok := coinIDs[from]
	if !ok {
		return 0, fmt.Errorf("%w: no price feed for %s", domain.ErrUnsupportedCurrency, from)
	}
	vs, ok := vsCurrencies[to]
	if !ok {
		return 0, fmt.Errorf("%w: cannot quote in %s", domain.ErrUnsupportedCurrency, to)
	}

	endpoint := fmt.Sprintf("%s/simple/price?%s", c.baseURL, url.Values{
		"ids":           {coinID},
		"vs_currencies": {vs},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("building price request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetching price: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("price API returned status %d", resp.StatusCode)
	}

	// {"monero":{"usd":165.43}}
	var body map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decoding price response: %w", err)
	}

	quote, ok := body[coinID][vs]
	if !ok {
		return 0, fmt.Errorf("price API returned no quote for %s/%s", coinID, vs)
	}
	return quote, nil
}
