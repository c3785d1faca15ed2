package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetListingsFlags() {
	listingsSort = "none"
	listingsLimit = 0
	listingsCategory = -1
	listingsJSON = false
}

func TestListingsCmd_All(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer resetListingsFlags()

	out, err := execute(t, "listings")
	require.NoError(t, err)
	assert.Contains(t, out, "Listings (3)")
}

func TestListingsCmd_SortedByPrice(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer resetListingsFlags()

	out, err := execute(t, "listings", "--sort", "price-lowest")
	require.NoError(t, err)

	shelf := strings.Index(out, "walnut shelf")
	keyboard := strings.Index(out, "keyboard")
	desk := strings.Index(out, "walnut desk")
	require.NotEqual(t, -1, shelf)
	assert.Less(t, shelf, keyboard)
	assert.Less(t, keyboard, desk)
}

func TestListingsCmd_MostRecentWithLimit(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer resetListingsFlags()

	out, err := execute(t, "listings", "--sort", "most-recent", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "walnut shelf")
	assert.NotContains(t, out, "walnut desk")
}

func TestListingsCmd_ByCategory(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer resetListingsFlags()

	// Computers & Electronics is category id 3.
	out, err := execute(t, "listings", "--category", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "keyboard")
	assert.NotContains(t, out, "walnut desk")
}

func TestListingsCmd_UnknownSortOrder(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer resetListingsFlags()

	_, err := execute(t, "listings", "--sort", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sort order")
}
