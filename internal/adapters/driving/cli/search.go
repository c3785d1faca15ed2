package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search listings by term",
	Long: `Searches the catalog for listings whose indexed terms match the
given term exactly or by prefix. Matched entries are fetched from the
remote store, validated and filtered before display.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	listings, err := catalogService.ListingsBySearchTerm(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputJSON(cmd, listings)
	}
	outputListingTable(cmd, listings)
	return nil
}

// outputJSON prints any value as indented JSON.
func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// outputListingTable prints listings in the shared catalog layout.
func outputListingTable(cmd *cobra.Command, listings []domain.Listing) {
	if len(listings) == 0 {
		cmd.Println("No listings found.")
		return
	}

	cmd.Printf("Listings (%d):\n\n", len(listings))
	for i, l := range listings {
		currency, _ := domain.ParseCurrency(l.Currency)
		cmd.Printf("  [%d] %s\n", i+1, l.ProductName)
		cmd.Printf("      Price: %s%.*f %s\n", currency.Sign(), currency.Decimals(), l.Price, l.Currency)
		cmd.Printf("      Seller: %s  Stock: %d  Condition: %s\n", l.SellerID, l.Quantity, l.Condition)
		if l.Category() != "" {
			cmd.Printf("      Category: %s\n", l.Category())
		}
		cmd.Println()
	}
}
