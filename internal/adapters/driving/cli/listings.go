package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
	"github.com/vendra-labs/vendra-cli/internal/core/services"
)

var (
	listingsSort     string
	listingsLimit    int
	listingsCategory int
	listingsJSON     bool
)

var listingsCmd = &cobra.Command{
	Use:   "listings",
	Short: "Browse the catalog",
	Long: `Resolves listings from the catalog index.

By default every indexed listing is shown. Use --category to browse a
single category (see "vendra categories" for ids) and --sort to order
the results.`,
	Args: cobra.NoArgs,
	RunE: runListings,
}

func init() {
	listingsCmd.Flags().StringVar(&listingsSort, "sort", "none",
		"sort order: none, most-recent, oldest, alphabetical, price-lowest, price-highest")
	listingsCmd.Flags().IntVarP(&listingsLimit, "limit", "n", 0, "maximum number of results (0 = all)")
	listingsCmd.Flags().IntVar(&listingsCategory, "category", -1, "restrict to a category id")
	listingsCmd.Flags().BoolVar(&listingsJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(listingsCmd)
}

func runListings(cmd *cobra.Command, _ []string) error {
	order, ok := domain.ParseSortOrder(listingsSort)
	if !ok {
		return fmt.Errorf("unknown sort order %q", listingsSort)
	}

	ctx := cmd.Context()
	var (
		listings []domain.Listing
		err      error
	)
	if listingsCategory >= 0 {
		listings, err = catalogService.ListingsByCategory(ctx, listingsCategory)
	} else {
		listings, err = catalogService.Listings(ctx)
	}
	if err != nil {
		return fmt.Errorf("resolving listings: %w", err)
	}

	listings = services.NewAssembler("").SortBy(listings, order)
	listings = services.Limit(listings, listingsLimit)

	if listingsJSON {
		return outputJSON(cmd, listings)
	}
	outputListingTable(cmd, listings)
	return nil
}
