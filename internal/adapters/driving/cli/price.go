package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
)

var priceCmd = &cobra.Command{
	Use:   "price [from] [to]",
	Short: "Quote a spot price between currencies",
	Long: `Quotes how much one unit of the first currency is worth in the
second, e.g. "vendra price xmr usd".`,
	Args: cobra.ExactArgs(2),
	RunE: runPrice,
}

func init() {
	rootCmd.AddCommand(priceCmd)
}

func runPrice(cmd *cobra.Command, args []string) error {
	from, ok := domain.ParseCurrency(args[0])
	if !ok {
		return fmt.Errorf("unknown currency %q", args[0])
	}
	to, ok := domain.ParseCurrency(args[1])
	if !ok {
		return fmt.Errorf("unknown currency %q", args[1])
	}

	quote, err := priceSource.Price(cmd.Context(), from, to)
	if err != nil {
		return fmt.Errorf("fetching price: %w", err)
	}

	cmd.Printf("1 %s = %s%.*f %s\n", from, to.Sign(), to.Decimals(), quote, to)
	return nil
}
