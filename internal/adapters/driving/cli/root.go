// Package cli implements the alexandria command-line interface using
// cobra. Commands talk to the core through the driving.Publisher port;
// the default wiring uses the SQLite event archive and the TOML config
// store under ~/.alexandria.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/adapters/driven/config/file"
	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/adapters/driven/storage/sqlite"
	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/ports/driven"
	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/ports/driving"
	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/services"
	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services used by the commands. Execute wires the defaults; tests
// inject their own.
var (
	publishService driving.Publisher
	configStore    driven.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "alexandria",
	Short: "Compile outline documents into addressable publication events",
	Long: `Alexandria compiles outline-markup documents (= title, == section,
:key: value attributes) into trees of addressable publication events:
30040 index events referencing their children by coordinate, and 30041
content events carrying the section text.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute wires the default adapters and runs the root command. The
// context cancels long-running commands like watch and mcp serve.
func Execute(ctx context.Context) error {
	if err := initServices(); err != nil {
		return err
	}
	return rootCmd.ExecuteContext(ctx)
}

// initServices builds the default service graph. Already-injected
// services are left alone so tests can run commands against mocks.
func initServices() error {
	if publishService != nil {
		return nil
	}

	config, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening event archive: %w", err)
	}

	configStore = config
	publishService = services.NewPublishService(store, config)
	return nil
}
