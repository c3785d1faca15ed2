package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
)

var (
	categoriesAlpha bool
	categoriesCount bool
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	categoriesCmd.Flags().BoolVar(&categoriesAlpha, "alphabetical", false, "sort alphabetically instead of by id")
	categoriesCmd.Flags().BoolVar(&categoriesCount, "count", false, "include the number of indexed products per category")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	for _, c := range domain.CategoryList(categoriesAlpha) {
		line := fmt.Sprintf("  [%2d] %s", c.ID, c.Name)
		if categoriesCount {
			count, err := catalogService.CategoryProductCount(cmd.Context(), c.ID)
			if err != nil {
				return fmt.Errorf("counting products in %q: %w", c.Name, err)
			}
			line += fmt.Sprintf(" (%d)", count)
		}
		cmd.Println(line)
		for _, sub := range domain.SubcategoriesByCategoryID(c.ID) {
			cmd.Printf("        - %s\n", sub.Name)
		}
	}
	return nil
}
