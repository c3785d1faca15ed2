package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vendra-labs/vendra-cli/internal/core/ports/driven"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage client configuration",
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Sets a configuration value and persists it to config.toml.

Integer-looking and boolean-looking values are stored typed, everything
else as a string.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

// shownKeys are the settings surfaced by "config show", in display
// order.
var shownKeys = []string{
	driven.ConfigDaemonAddress,
	driven.ConfigDataDir,
	driven.ConfigMaxObjectSize,
	driven.ConfigMaxSearchResults,
	driven.ConfigRequestTimeoutMS,
	driven.ConfigRestrictedCategory,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	for _, key := range shownKeys {
		value, ok := configStore.Get(key)
		if !ok {
			value = "(unset)"
		}
		cmd.Printf("  %-20s %v\n", key, value)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]

	var value any = raw
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		value = n
	} else if b, err := strconv.ParseBool(raw); err == nil {
		value = b
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	cmd.Printf("%s = %v\n", key, value)
	return nil
}
