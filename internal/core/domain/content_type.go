package domain

import "fmt"

// ContentType identifies the logical type of a remote document.
// The string value doubles as the index's content column and the
// document's metadata discriminator, so the two always compare directly.
type ContentType string

// Supported content types.
const (
	ContentListing       ContentType = "listing"
	ContentUser          ContentType = "user"
	ContentProductRating ContentType = "product_rating"
	ContentSellerRating  ContentType = "seller_rating"
)

// ParseContentType converts a string into a ContentType.
func ParseContentType(s string) (ContentType, error) {
	switch ContentType(s) {
	case ContentListing, ContentUser, ContentProductRating, ContentSellerRating:
		return ContentType(s), nil
	default:
		return "", fmt.Errorf("%w: content type %q", ErrInvalidInput, s)
	}
}

// String returns the string representation.
func (t ContentType) String() string {
	return string(t)
}

// Valid reports whether the content type is one of the supported values.
func (t ContentType) Valid() bool {
	switch t {
	case ContentListing, ContentUser, ContentProductRating, ContentSellerRating:
		return true
	}
	return false
}
