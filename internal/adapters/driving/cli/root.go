// Package cli implements the vendra command line interface. Commands
// talk to the core through the driving ports; adapters are wired once
// per invocation from config.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vendra-labs/vendra-cli/internal/adapters/driven/config/file"
	"github.com/vendra-labs/vendra-cli/internal/adapters/driven/price/coingecko"
	"github.com/vendra-labs/vendra-cli/internal/adapters/driven/remote/dht"
	"github.com/vendra-labs/vendra-cli/internal/adapters/driven/storage/memory"
	"github.com/vendra-labs/vendra-cli/internal/adapters/driven/storage/sqlite"
	"github.com/vendra-labs/vendra-cli/internal/core/ports/driven"
	"github.com/vendra-labs/vendra-cli/internal/core/ports/driving"
	"github.com/vendra-labs/vendra-cli/internal/core/services"
	"github.com/vendra-labs/vendra-cli/internal/logger"
	"github.com/vendra-labs/vendra-cli/internal/piecehasher"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose   bool
	flagOffline   bool
	flagConfigDir string
)

// Services the commands run against. Wired by initServices, replaced
// directly in tests.
var (
	catalogService driving.CatalogService
	objectHasher   driving.ObjectHasher
	priceSource    driven.PriceSource
	configStore    driven.ConfigStore
)

// closeStore tears down the index store after the command runs.
var closeStore func() error

var rootCmd = &cobra.Command{
	Use:   "vendra",
	Short: "Marketplace catalog client",
	Long: `vendra browses a decentralized marketplace catalog.

Listings, accounts and ratings live in a distributed key-value store;
a local SQLite index maps search terms to store keys. Commands resolve
index entries into validated views, healing dangling pointers as they
are found.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		return initServices()
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		if closeStore != nil {
			err := closeStore()
			closeStore = nil
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "use in-memory stores instead of the daemon")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.vendra)")
}

// initServices wires the adapters per config. A test that has already
// injected services keeps them.
func initServices() error {
	if catalogService != nil {
		return nil
	}

	cfg, err := file.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configStore = cfg

	assembler := services.NewAssembler(cfg.GetString(driven.ConfigRestrictedCategory))

	var (
		index  driven.IndexStore
		remote driven.RemoteStore
	)
	if flagOffline {
		memIndex := memory.NewIndexStore()
		memRemote := memory.NewRemoteStore()
		memRemote.SetPruner(memIndex)
		index, remote = memIndex, memRemote
	} else {
		store, err := sqlite.NewStore(cfg.GetString(driven.ConfigDataDir))
		if err != nil {
			return fmt.Errorf("opening index: %w", err)
		}
		closeStore = store.Close
		index = store.Index()
		remote = dht.NewClient(
			cfg.GetString(driven.ConfigDaemonAddress),
			dht.WithTimeout(time.Duration(cfg.GetInt(driven.ConfigRequestTimeoutMS))*time.Millisecond),
			dht.WithPruner(store),
		)
	}

	catalogService = services.NewResolver(index, remote, assembler,
		services.WithMaxSearchResults(cfg.GetInt(driven.ConfigMaxSearchResults)))
	objectHasher = piecehasher.New(
		piecehasher.WithMaxObjectSize(int64(cfg.GetInt(driven.ConfigMaxObjectSize))))
	priceSource = coingecko.NewClient()

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
