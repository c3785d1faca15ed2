package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var inventoryJSON bool

var inventoryCmd = &cobra.Command{
	Use:   "inventory [seller-id]",
	Short: "List a seller's published listings",
	Args:  cobra.ExactArgs(1),
	RunE:  runInventory,
}

func init() {
	inventoryCmd.Flags().BoolVar(&inventoryJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(inventoryCmd)
}

func runInventory(cmd *cobra.Command, args []string) error {
	listings, err := catalogService.Inventory(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("resolving inventory: %w", err)
	}

	if inventoryJSON {
		return outputJSON(cmd, listings)
	}
	outputListingTable(cmd, listings)
	return nil
}
