package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
)

var userJSON bool

var userCmd = &cobra.Command{
	Use:   "user [user-id]",
	Short: "Show a marketplace account",
	Args:  cobra.ExactArgs(1),
	RunE:  runUser,
}

func init() {
	userCmd.Flags().BoolVar(&userJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(userCmd)
}

func runUser(cmd *cobra.Command, args []string) error {
	user, err := catalogService.User(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no account found for %q", args[0])
	}
	if err != nil {
		return fmt.Errorf("resolving account: %w", err)
	}

	if userJSON {
		return outputJSON(cmd, user)
	}

	name := user.DisplayName
	if name == "" {
		name = user.ID
	}
	cmd.Printf("Account: %s\n", name)
	cmd.Printf("  ID: %s\n", user.ID)
	cmd.Printf("  Created: %s\n", user.CreatedAt)
	if user.Avatar != nil {
		cmd.Printf("  Avatar: %s (%d bytes, %d pieces)\n",
			user.Avatar.Name, user.Avatar.Size, len(user.Avatar.Pieces))
	}
	return nil
}
