package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var hashShowPieces bool

var hashCmd = &cobra.Command{
	Use:   "hash [file]",
	Short: "Chunk and hash a file for publishing",
	Long: `Splits a file into content-addressed pieces using the tiered
piece-size policy and prints the resulting object descriptor as JSON.
The descriptor is what a published document embeds for the file.`,
	Args: cobra.ExactArgs(1),
	RunE: runHash,
}

func init() {
	hashCmd.Flags().BoolVar(&hashShowPieces, "pieces", false, "also print per-piece hashes")
	rootCmd.AddCommand(hashCmd)
}

func runHash(cmd *cobra.Command, args []string) error {
	pieces, descriptor, err := objectHasher.HashFile(args[0])
	if err != nil {
		return fmt.Errorf("hashing %s: %w", args[0], err)
	}

	if err := outputJSON(cmd, descriptor); err != nil {
		return err
	}

	if hashShowPieces {
		cmd.Println()
		for _, p := range pieces {
			cmd.Printf("piece %d  offset=%d  length=%d  %s\n", p.Index, p.Offset, p.Length, p.Hash)
		}
	}
	return nil
}
