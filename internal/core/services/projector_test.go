package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
)

const fullListingDoc = `{
	"metadata": "listing",
	"id": "listing-1",
	"seller_id": "seller-1",
	"quantity": 12,
	"price": 49.99,
	"currency": "EUR",
	"condition": "used",
	"location": "Worldwide",
	"date": "2025-05-01T09:30:00Z",
	"expiration_date": "2026-05-01T09:30:00Z",
	"quantity_per_order": 2,
	"payment_coins": ["monero"],
	"payment_options": ["escrow"],
	"delivery_options": ["shipping"],
	"shipping_options": ["standard"],
	"product": {
		"name": "Mechanical Keyboard",
		"description": "Tenkeyless, brown switches",
		"category": "Computers & Electronics",
		"subcategories": ["Peripherals"],
		"attributes": [{"weight": 0.85}],
		"images": [
			{"name": "front.jpg", "id": 0},
			{"name": "back.jpg", "id": 1}
		],
		"thumbnail": "front.jpg"
	}
}`

func TestProjectListing(t *testing.T) {
	l, err := ProjectListing("key-1", fullListingDoc)
	require.NoError(t, err)

	assert.Equal(t, "key-1", l.Key)
	assert.Equal(t, "listing-1", l.ID)
	assert.Equal(t, "seller-1", l.SellerID)
	assert.Equal(t, 12, l.Quantity)
	assert.Equal(t, 49.99, l.Price)
	assert.Equal(t, "EUR", l.Currency)
	assert.Equal(t, "used", l.Condition)
	assert.Equal(t, "Mechanical Keyboard", l.ProductName)
	assert.Equal(t, []string{"Computers & Electronics", "Peripherals"}, l.Categories)
	assert.Equal(t, "Computers & Electronics", l.Category())
	assert.Equal(t, 0.85, l.Weight)
	assert.Equal(t, []domain.ImageRef{{Name: "front.jpg", ID: 0}, {Name: "back.jpg", ID: 1}}, l.Images)
	assert.Equal(t, "front.jpg", l.Thumbnail)
	assert.Equal(t, 2, l.QuantityPerOrder)
}

func TestProjectListing_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no id", `{"metadata":"listing","seller_id":"s","quantity":1,"price":1,"currency":"USD","condition":"new","date":"d","product":{"name":"n","description":"d","category":"c"}}`},
		{"no price", `{"metadata":"listing","id":"i","seller_id":"s","quantity":1,"currency":"USD","condition":"new","date":"d","product":{"name":"n","description":"d","category":"c"}}`},
		{"no product", `{"metadata":"listing","id":"i","seller_id":"s","quantity":1,"price":1,"currency":"USD","condition":"new","date":"d"}`},
		{"no product name", `{"metadata":"listing","id":"i","seller_id":"s","quantity":1,"price":1,"currency":"USD","condition":"new","date":"d","product":{"description":"d","category":"c"}}`},
		{"no category", `{"metadata":"listing","id":"i","seller_id":"s","quantity":1,"price":1,"currency":"USD","condition":"new","date":"d","product":{"name":"n","description":"d"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProjectListing("k", tt.doc)
			assert.ErrorIs(t, err, domain.ErrMalformedDocument)
		})
	}
}

func TestProjectListing_ZeroValuesAreValid(t *testing.T) {
	// Present-but-zero is not the same as absent: a free listing with
	// zero stock still projects.
	doc := `{"metadata":"listing","id":"i","seller_id":"s","quantity":0,"price":0,"currency":"USD","condition":"new","date":"d","product":{"name":"n","description":"d","category":"c"}}`

	l, err := ProjectListing("k", doc)
	require.NoError(t, err)
	assert.Zero(t, l.Quantity)
	assert.Zero(t, l.Price)
}

func TestProjectListing_MetadataMismatch(t *testing.T) {
	doc := `{"metadata":"user","id":"i"}`
	_, err := ProjectListing("k", doc)
	assert.ErrorIs(t, err, domain.ErrMetadataMismatch)
}

func TestProjectListing_InvalidJSON(t *testing.T) {
	_, err := ProjectListing("k", "{not json")
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestProjectUser(t *testing.T) {
	doc := `{
		"metadata": "user",
		"monero_address": "4Addr",
		"created_at": "2025-01-15T10:00:00Z",
		"display_name": "alice",
		"public_key": "pub",
		"signature": "sig",
		"avatar": {"name": "avatar.png", "size": 2048, "piece_size": 16384, "pieces": ["h1"], "id": "obj-1"}
	}`

	u, err := ProjectUser("key-u", doc)
	require.NoError(t, err)
	assert.Equal(t, "key-u", u.Key)
	assert.Equal(t, "4Addr", u.ID)
	assert.Equal(t, "alice", u.DisplayName)
	require.NotNil(t, u.Avatar)
	assert.Equal(t, "avatar.png", u.Avatar.Name)
	assert.Equal(t, uint64(2048), u.Avatar.Size)
	assert.Equal(t, uint32(16384), u.Avatar.PieceSize)
}

func TestProjectUser_OptionalFields(t *testing.T) {
	doc := `{"metadata":"user","monero_address":"4Addr","created_at":"2025-01-15T10:00:00Z","public_key":"pub","signature":"sig"}`

	u, err := ProjectUser("k", doc)
	require.NoError(t, err)
	assert.Empty(t, u.DisplayName)
	assert.Nil(t, u.Avatar)
}

func TestProjectUser_MissingAddress(t *testing.T) {
	doc := `{"metadata":"user","created_at":"2025-01-15T10:00:00Z","public_key":"pub","signature":"sig"}`
	_, err := ProjectUser("k", doc)
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestProjectUser_MalformedAvatarRejectsDocument(t *testing.T) {
	doc := `{"metadata":"user","monero_address":"4Addr","created_at":"c","public_key":"pub","signature":"sig","avatar":{"name":"a.png"}}`
	_, err := ProjectUser("k", doc)
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestProjectProductRating(t *testing.T) {
	doc := `{"metadata":"product_rating","rater_id":"r1","comments":"great","signature":"sig","stars":4}`

	r, err := ProjectProductRating("key-r", doc)
	require.NoError(t, err)
	assert.Equal(t, "key-r", r.Key)
	assert.Equal(t, "r1", r.RaterID)
	assert.Equal(t, 4, r.Stars)
}

func TestProjectProductRating_MissingStars(t *testing.T) {
	doc := `{"metadata":"product_rating","rater_id":"r1","comments":"great","signature":"sig"}`
	_, err := ProjectProductRating("k", doc)
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestProjectSellerRating(t *testing.T) {
	doc := `{"metadata":"seller_rating","rater_id":"r1","comments":"fast shipping","signature":"sig","score":1}`

	r, err := ProjectSellerRating("key-r", doc)
	require.NoError(t, err)
	assert.Equal(t, domain.ScoreGood, r.Score)
}

func TestProjectSellerRating_ZeroScoreIsValid(t *testing.T) {
	doc := `{"metadata":"seller_rating","rater_id":"r1","comments":"never arrived","signature":"sig","score":0}`

	r, err := ProjectSellerRating("k", doc)
	require.NoError(t, err)
	assert.Equal(t, domain.ScoreBad, r.Score)
}

func TestProjectSellerRating_MetadataMismatch(t *testing.T) {
	doc := `{"metadata":"product_rating","rater_id":"r1","comments":"c","signature":"sig","score":1}`
	_, err := ProjectSellerRating("k", doc)
	assert.ErrorIs(t, err, domain.ErrMetadataMismatch)
}
