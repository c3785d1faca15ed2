package services

import (
	"encoding/json"
	"fmt"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
)

// The projector maps raw remote documents into typed views. It is
// pure: same document in, same view out, no I/O. A document missing a
// required field is rejected (wrapped domain.ErrMalformedDocument), a
// document whose metadata tag does not match the expected content
// type is rejected (wrapped domain.ErrMetadataMismatch); neither is
// ever coerced silently.

// objectDescriptorDoc is the embedded chunked-attachment record.
type objectDescriptorDoc struct {
	Name      *string  `json:"name"`
	Size      *uint64  `json:"size"`
	PieceSize *uint32  `json:"piece_size"`
	Pieces    []string `json:"pieces"`
	Source    string   `json:"source"`
	ID        string   `json:"id"`
}

func (d *objectDescriptorDoc) view() (*domain.ObjectDescriptor, error) {
	switch {
	case d.Name == nil:
		return nil, fmt.Errorf("%w: descriptor missing name", domain.ErrMalformedDocument)
	case d.Size == nil:
		return nil, fmt.Errorf("%w: descriptor missing size", domain.ErrMalformedDocument)
	case d.PieceSize == nil:
		return nil, fmt.Errorf("%w: descriptor missing piece_size", domain.ErrMalformedDocument)
	}
	return &domain.ObjectDescriptor{
		Name:       *d.Name,
		Size:       *d.Size,
		PieceSize:  *d.PieceSize,
		Pieces:     d.Pieces,
		SourcePath: d.Source,
		ID:         d.ID,
	}, nil
}

// listingDoc mirrors the wire shape of a listing document. Pointer
// fields mark values the schema requires; their absence rejects the
// document instead of defaulting.
type listingDoc struct {
	Metadata         string   `json:"metadata"`
	ID               *string  `json:"id"`
	SellerID         *string  `json:"seller_id"`
	Quantity         *int     `json:"quantity"`
	Price            *float64 `json:"price"`
	Currency         *string  `json:"currency"`
	Condition        *string  `json:"condition"`
	Location         string   `json:"location"`
	Date             *string  `json:"date"`
	ExpirationDate   string   `json:"expiration_date"`
	QuantityPerOrder int      `json:"quantity_per_order"`
	PaymentCoins     []string `json:"payment_coins"`
	PaymentOptions   []string `json:"payment_options"`
	DeliveryOptions  []string `json:"delivery_options"`
	ShippingOptions  []string `json:"shipping_options"`
	Product          *struct {
		Name          *string  `json:"name"`
		Description   *string  `json:"description"`
		Category      *string  `json:"category"`
		Subcategories []string `json:"subcategories"`
		Attributes    []struct {
			Weight *float64 `json:"weight"`
		} `json:"attributes"`
		Images []struct {
			Name *string `json:"name"`
			ID   *int    `json:"id"`
		} `json:"images"`
		Thumbnail string `json:"thumbnail"`
	} `json:"product"`
}

// userDoc mirrors the wire shape of an account document.
type userDoc struct {
	Metadata      string               `json:"metadata"`
	MoneroAddress *string              `json:"monero_address"`
	CreatedAt     *string              `json:"created_at"`
	DisplayName   string               `json:"display_name"`
	PublicKey     *string              `json:"public_key"`
	Signature     *string              `json:"signature"`
	Avatar        *objectDescriptorDoc `json:"avatar"`
}

// productRatingDoc mirrors the wire shape of a product rating.
type productRatingDoc struct {
	Metadata       string  `json:"metadata"`
	RaterID        *string `json:"rater_id"`
	Comments       *string `json:"comments"`
	Signature      *string `json:"signature"`
	Stars          *int    `json:"stars"`
	ExpirationDate string  `json:"expiration_date"`
}

// sellerRatingDoc mirrors the wire shape of a seller rating.
type sellerRatingDoc struct {
	Metadata  string  `json:"metadata"`
	RaterID   *string `json:"rater_id"`
	Comments  *string `json:"comments"`
	Signature *string `json:"signature"`
	Score     *int    `json:"score"`
}

// checkMetadata validates the document discriminator against the
// content type the index entry implied.
func checkMetadata(got string, want domain.ContentType) error {
	if got != want.String() {
		return fmt.Errorf("%w: expected %q, got %q", domain.ErrMetadataMismatch, want, got)
	}
	return nil
}

// required rejects the document when a required field is absent.
func required[T any](field *T, name string) (T, error) {
	var zero T
	if field == nil {
		return zero, fmt.Errorf("%w: missing required field %q", domain.ErrMalformedDocument, name)
	}
	return *field, nil
}

// ProjectListing projects a raw listing document fetched under key.
func ProjectListing(key, raw string) (domain.Listing, error) {
	var doc listingDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return domain.Listing{}, fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
	}
	if err := checkMetadata(doc.Metadata, domain.ContentListing); err != nil {
		return domain.Listing{}, err
	}

	l := domain.Listing{
		Key:              key,
		Location:         doc.Location,
		ExpirationDate:   doc.ExpirationDate,
		QuantityPerOrder: doc.QuantityPerOrder,
		PaymentCoins:     doc.PaymentCoins,
		PaymentOptions:   doc.PaymentOptions,
		DeliveryOptions:  doc.DeliveryOptions,
		ShippingOptions:  doc.ShippingOptions,
	}

	var err error
	if l.ID, err = required(doc.ID, "id"); err != nil {
		return domain.Listing{}, err
	}
	if l.SellerID, err = required(doc.SellerID, "seller_id"); err != nil {
		return domain.Listing{}, err
	}
	if l.Quantity, err = required(doc.Quantity, "quantity"); err != nil {
		return domain.Listing{}, err
	}
	if l.Price, err = required(doc.Price, "price"); err != nil {
		return domain.Listing{}, err
	}
	if l.Currency, err = required(doc.Currency, "currency"); err != nil {
		return domain.Listing{}, err
	}
	if l.Condition, err = required(doc.Condition, "condition"); err != nil {
		return domain.Listing{}, err
	}
	if l.Date, err = required(doc.Date, "date"); err != nil {
		return domain.Listing{}, err
	}

	if doc.Product == nil {
		return domain.Listing{}, fmt.Errorf("%w: missing required field %q", domain.ErrMalformedDocument, "product")
	}
	product := doc.Product
	if l.ProductName, err = required(product.Name, "product.name"); err != nil {
		return domain.Listing{}, err
	}
	if l.ProductDescription, err = required(product.Description, "product.description"); err != nil {
		return domain.Listing{}, err
	}

	category, err := required(product.Category, "product.category")
	if err != nil {
		return domain.Listing{}, err
	}
	l.Categories = append([]string{category}, product.Subcategories...)

	for _, attr := range product.Attributes {
		if attr.Weight != nil {
			l.Weight = *attr.Weight
		}
	}
	for _, img := range product.Images {
		if img.Name != nil && img.ID != nil {
			l.Images = append(l.Images, domain.ImageRef{Name: *img.Name, ID: *img.ID})
		}
	}
	l.Thumbnail = product.Thumbnail

	return l, nil
}

// ProjectUser projects a raw account document fetched under key.
func ProjectUser(key, raw string) (domain.User, error) {
	var doc userDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
	}
	if err := checkMetadata(doc.Metadata, domain.ContentUser); err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		Key:         key,
		DisplayName: doc.DisplayName,
	}

	var err error
	if u.ID, err = required(doc.MoneroAddress, "monero_address"); err != nil {
		return domain.User{}, err
	}
	if u.CreatedAt, err = required(doc.CreatedAt, "created_at"); err != nil {
		return domain.User{}, err
	}
	if u.PublicKey, err = required(doc.PublicKey, "public_key"); err != nil {
		return domain.User{}, err
	}
	if u.Signature, err = required(doc.Signature, "signature"); err != nil {
		return domain.User{}, err
	}

	if doc.Avatar != nil {
		avatar, err := doc.Avatar.view()
		if err != nil {
			return domain.User{}, err
		}
		u.Avatar = avatar
	}

	return u, nil
}

// ProjectProductRating projects a raw product rating document.
func ProjectProductRating(key, raw string) (domain.ProductRating, error) {
	var doc productRatingDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return domain.ProductRating{}, fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
	}
	if err := checkMetadata(doc.Metadata, domain.ContentProductRating); err != nil {
		return domain.ProductRating{}, err
	}

	r := domain.ProductRating{
		Key:            key,
		ExpirationDate: doc.ExpirationDate,
	}

	var err error
	if r.RaterID, err = required(doc.RaterID, "rater_id"); err != nil {
		return domain.ProductRating{}, err
	}
	if r.Comments, err = required(doc.Comments, "comments"); err != nil {
		return domain.ProductRating{}, err
	}
	if r.Signature, err = required(doc.Signature, "signature"); err != nil {
		return domain.ProductRating{}, err
	}
	if r.Stars, err = required(doc.Stars, "stars"); err != nil {
		return domain.ProductRating{}, err
	}

	return r, nil
}

// ProjectSellerRating projects a raw seller rating document.
func ProjectSellerRating(key, raw string) (domain.SellerRating, error) {
	var doc sellerRatingDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return domain.SellerRating{}, fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
	}
	if err := checkMetadata(doc.Metadata, domain.ContentSellerRating); err != nil {
		return domain.SellerRating{}, err
	}

	r := domain.SellerRating{Key: key}

	var err error
	if r.RaterID, err = required(doc.RaterID, "rater_id"); err != nil {
		return domain.SellerRating{}, err
	}
	if r.Comments, err = required(doc.Comments, "comments"); err != nil {
		return domain.SellerRating{}, err
	}
	if r.Signature, err = required(doc.Signature, "signature"); err != nil {
		return domain.SellerRating{}, err
	}
	if r.Score, err = required(doc.Score, "score"); err != nil {
		return domain.SellerRating{}, err
	}

	return r, nil
}
