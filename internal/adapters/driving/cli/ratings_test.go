package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingsSellerCmd(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "ratings", "seller", "seller-1")
	require.NoError(t, err)
	assert.Contains(t, out, "2 good, 1 bad")
}

func TestRatingsProductCmd_Empty(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "ratings", "product", "prod-1")
	require.NoError(t, err)
	assert.Contains(t, out, "No ratings found.")
}

func TestReputationCmd(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	// 2 of 3 good ratings truncates to 66%.
	out, err := execute(t, "reputation", "seller-1")
	require.NoError(t, err)
	assert.Contains(t, out, "walnut_works: 66% (3 ratings)")
}

func TestUserCmd(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "user", "seller-1")
	require.NoError(t, err)
	assert.Contains(t, out, "walnut_works")
	assert.Contains(t, out, "seller-1")
}

func TestUserCmd_NotFound(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute(t, "user", "nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no account found")
}

func TestInventoryCmd(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "inventory", "seller-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Listings (3)")
}
