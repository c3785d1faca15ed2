package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vendra-labs/vendra-cli/internal/adapters/driven/storage/memory"
	"github.com/vendra-labs/vendra-cli/internal/core/domain"
	"github.com/vendra-labs/vendra-cli/internal/core/services"
	"github.com/vendra-labs/vendra-cli/internal/piecehasher"
)

// stubPriceSource returns a fixed quote for every supported pair.
type stubPriceSource struct {
	quote float64
	err   error
}

func (s *stubPriceSource) Price(_ context.Context, from, _ domain.Currency) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if _, ok := map[domain.Currency]bool{domain.CurrencyXMR: true, domain.CurrencyBTC: true}[from]; !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnsupportedCurrency, from)
	}
	return s.quote, nil
}

// setupTestServices wires the commands against memory adapters seeded
// with a small catalog. Returns a cleanup restoring the globals.
func setupTestServices(t *testing.T) func() {
	t.Helper()
	ctx := context.Background()

	index := memory.NewIndexStore()
	remote := memory.NewRemoteStore()
	remote.SetPruner(index)

	seedListing := func(key, id, name, category string, price float64, date string) {
		doc := map[string]any{
			"metadata":  "listing",
			"id":        id,
			"seller_id": "seller-1",
			"quantity":  4,
			"price":     price,
			"currency":  "USD",
			"condition": "new",
			"date":      date,
			"product": map[string]any{
				"name":        name,
				"description": "fixture",
				"category":    category,
			},
		}
		raw, err := json.Marshal(doc)
		require.NoError(t, err)
		require.NoError(t, remote.Put(ctx, key, string(raw)))
		require.NoError(t, index.Put(ctx, name, key, "listing"))
		require.NoError(t, index.Put(ctx, category, key, "listing"))
		require.NoError(t, index.Put(ctx, "seller-1", key, "listing"))
		require.NoError(t, index.Put(ctx, id, key, "listing"))
	}
	seedListing("key-1", "prod-1", "walnut desk", "Home & Garden", 120, "2025-02-01T00:00:00Z")
	seedListing("key-2", "prod-2", "walnut shelf", "Home & Garden", 60, "2025-03-01T00:00:00Z")
	seedListing("key-3", "prod-3", "keyboard", "Computers & Electronics", 80, "2025-01-01T00:00:00Z")

	userDoc := map[string]any{
		"metadata":       "user",
		"monero_address": "seller-1",
		"created_at":     "2024-12-01T00:00:00Z",
		"display_name":   "walnut_works",
		"public_key":     "pub",
		"signature":      "sig",
	}
	raw, err := json.Marshal(userDoc)
	require.NoError(t, err)
	require.NoError(t, remote.Put(ctx, "user-key", string(raw)))
	require.NoError(t, index.Put(ctx, "seller-1", "user-key", "user"))
	require.NoError(t, index.Put(ctx, "walnut_works", "user-key", "user"))

	for i, score := range []int{domain.ScoreGood, domain.ScoreGood, domain.ScoreBad} {
		ratingDoc := map[string]any{
			"metadata":  "seller_rating",
			"rater_id":  fmt.Sprintf("rater-%d", i),
			"comments":  "fixture",
			"signature": "sig",
			"score":     score,
		}
		raw, err := json.Marshal(ratingDoc)
		require.NoError(t, err)
		key := fmt.Sprintf("rating-key-%d", i)
		require.NoError(t, remote.Put(ctx, key, string(raw)))
		require.NoError(t, index.Put(ctx, "seller-1", key, "seller_rating"))
	}

	catalogService = services.NewResolver(index, remote,
		services.NewAssembler(domain.DefaultRestrictedCategory))
	objectHasher = piecehasher.New()
	priceSource = &stubPriceSource{quote: 165.43}
	configStore = memory.NewConfigStore()

	return func() {
		catalogService = nil
		objectHasher = nil
		priceSource = nil
		configStore = nil
	}
}

// execute runs the root command with args, capturing output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
