package driving

import (
	"context"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
)

// CatalogService resolves index entries into validated typed views
// and assembles presentable catalogs from them.
type CatalogService interface {
	// ListingsBySearchTerm resolves listings matching term (exact or
	// prefix), bounded by the configured result cap.
	ListingsBySearchTerm(ctx context.Context, term string) ([]domain.Listing, error)

	// ListingsByCategory resolves listings indexed under the named
	// category.
	ListingsByCategory(ctx context.Context, categoryID int) ([]domain.Listing, error)

	// Listings resolves every indexed listing.
	Listings(ctx context.Context) ([]domain.Listing, error)

	// ListingsByMostRecent resolves all listings, newest first,
	// capped at limit.
	ListingsByMostRecent(ctx context.Context, limit int) ([]domain.Listing, error)

	// Inventory resolves the listings published by a seller.
	Inventory(ctx context.Context, userID string) ([]domain.Listing, error)

	// User resolves a single account document.
	User(ctx context.Context, userID string) (*domain.User, error)

	// ProductRatings resolves the ratings left on a product.
	ProductRatings(ctx context.Context, productID string) ([]domain.ProductRating, error)

	// SellerRatings resolves the ratings left on a seller.
	SellerRatings(ctx context.Context, userID string) ([]domain.SellerRating, error)

	// StockAvailable reports the quantity of a resolved listing,
	// 0 when the listing cannot be resolved.
	StockAvailable(ctx context.Context, productID string) (int, error)

	// DisplayName resolves a user id to its display name, falling
	// back to the id itself.
	DisplayName(ctx context.Context, userID string) (string, error)

	// CategoryProductCount counts the index entries under a category.
	CategoryProductCount(ctx context.Context, categoryID int) (int, error)
}

// ObjectHasher splits binary payloads into content-addressed pieces.
type ObjectHasher interface {
	// HashFile chunks and hashes the file at path, returning the
	// ordered pieces and the embedded descriptor.
	HashFile(path string) ([]domain.ObjectPiece, *domain.ObjectDescriptor, error)
}
