package domain

// ImageRef points at a product image stored as a chunked object.
// Only the name and ordinal id travel inside a listing document;
// the bytes live in the remote store under the object's piece hashes.
type ImageRef struct {
	// Name is the content-derived file name (hash + extension).
	Name string

	// ID is the ordinal position of the image within the listing.
	ID int
}

// Listing is the typed view of a listing document fetched from the
// remote store. Required fields are always set after projection;
// optional fields keep their zero value unless the source document
// declared them (see the Has* companions where zero is ambiguous).
type Listing struct {
	// Key is the remote store key the document was fetched from.
	Key string

	// ID is the listing UUID assigned at publish time.
	ID string

	// SellerID identifies the selling account.
	SellerID string

	// Quantity is the stock available across all orders.
	Quantity int

	// Price is the numeric price in Currency units.
	Price float64

	// Currency is the pricing currency code.
	Currency string

	// Condition describes the product state (new, used, ...).
	Condition string

	// Location is the optional seller-declared location.
	Location string

	// Date is the publish timestamp, ISO 8601.
	Date string

	// ExpirationDate is the optional ISO 8601 expiry.
	ExpirationDate string

	// QuantityPerOrder caps units per order. Zero means undeclared.
	QuantityPerOrder int

	// PaymentCoins lists accepted cryptocurrencies.
	PaymentCoins []string

	// PaymentOptions lists accepted payment flows (escrow, ...).
	PaymentOptions []string

	// DeliveryOptions lists delivery methods.
	DeliveryOptions []string

	// ShippingOptions lists shipping tiers.
	ShippingOptions []string

	// ProductName is the display name of the product.
	ProductName string

	// ProductDescription is the long-form description.
	ProductDescription string

	// Categories holds the primary category followed by any
	// subcategories, flattened into one tag set. The content-policy
	// filter evaluates the whole set, not just the head.
	Categories []string

	// Weight is the optional product weight in kg. Zero means undeclared.
	Weight float64

	// Images references the product image objects.
	Images []ImageRef

	// Thumbnail is the optional thumbnail file name.
	Thumbnail string
}

// Category returns the primary category, or "" for an empty tag set.
func (l Listing) Category() string {
	if len(l.Categories) == 0 {
		return ""
	}
	return l.Categories[0]
}

// HasCategory reports whether any of the listing's category or
// subcategory tags equals name.
func (l Listing) HasCategory(name string) bool {
	for _, c := range l.Categories {
		if c == name {
			return true
		}
	}
	return false
}
