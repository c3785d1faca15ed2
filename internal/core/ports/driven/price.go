package driven

import (
	"context"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
)

// PriceSource quotes spot prices between currencies.
// Backed by the CoinGecko simple-price API.
type PriceSource interface {
	// Price returns how much one unit of from is worth in to.
	// Unmapped pairs return domain.ErrUnsupportedCurrency.
	Price(ctx context.Context, from, to domain.Currency) (float64, error)
}
