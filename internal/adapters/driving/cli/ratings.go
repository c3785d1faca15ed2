package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
)

var ratingsJSON bool

var ratingsCmd = &cobra.Command{
	Use:   "ratings",
	Short: "Show product or seller ratings",
}

var ratingsProductCmd = &cobra.Command{
	Use:   "product [product-id]",
	Short: "Show the star ratings left on a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductRatings,
}

var ratingsSellerCmd = &cobra.Command{
	Use:   "seller [seller-id]",
	Short: "Show the good/bad ratings left on a seller",
	Args:  cobra.ExactArgs(1),
	RunE:  runSellerRatings,
}

var reputationCmd = &cobra.Command{
	Use:   "reputation [seller-id]",
	Short: "Show a seller's reputation percentage",
	Args:  cobra.ExactArgs(1),
	RunE:  runReputation,
}

func init() {
	ratingsCmd.PersistentFlags().BoolVar(&ratingsJSON, "json", false, "output as JSON")
	ratingsCmd.AddCommand(ratingsProductCmd)
	ratingsCmd.AddCommand(ratingsSellerCmd)
	rootCmd.AddCommand(ratingsCmd)
	rootCmd.AddCommand(reputationCmd)
}

func runProductRatings(cmd *cobra.Command, args []string) error {
	ratings, err := catalogService.ProductRatings(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("resolving product ratings: %w", err)
	}

	if ratingsJSON {
		return outputJSON(cmd, ratings)
	}

	if len(ratings) == 0 {
		cmd.Println("No ratings found.")
		return nil
	}

	cmd.Printf("Ratings (%d), average %.1f stars:\n\n", len(ratings), domain.AverageStars(ratings))
	hist := domain.StarHistogram(ratings)
	for stars := domain.MaxStars; stars >= domain.MinStars; stars-- {
		cmd.Printf("  %d star: %d\n", stars, hist[stars])
	}
	cmd.Println()
	for _, r := range ratings {
		cmd.Printf("  [%d stars] %s: %s\n", r.Stars, r.RaterID, r.Comments)
	}
	return nil
}

func runSellerRatings(cmd *cobra.Command, args []string) error {
	ratings, err := catalogService.SellerRatings(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("resolving seller ratings: %w", err)
	}

	if ratingsJSON {
		return outputJSON(cmd, ratings)
	}

	if len(ratings) == 0 {
		cmd.Println("No ratings found.")
		return nil
	}

	cmd.Printf("Ratings (%d): %d good, %d bad\n\n",
		len(ratings), domain.GoodRatings(ratings), domain.BadRatings(ratings))
	for _, r := range ratings {
		verdict := "good"
		if r.Score == domain.ScoreBad {
			verdict = "bad"
		}
		cmd.Printf("  [%s] %s: %s\n", verdict, r.RaterID, r.Comments)
	}
	return nil
}

func runReputation(cmd *cobra.Command, args []string) error {
	ratings, err := catalogService.SellerRatings(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("resolving seller ratings: %w", err)
	}

	name, err := catalogService.DisplayName(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("resolving display name: %w", err)
	}

	cmd.Printf("%s: %d%% (%d ratings)\n", name, domain.Reputation(ratings), len(ratings))
	return nil
}
