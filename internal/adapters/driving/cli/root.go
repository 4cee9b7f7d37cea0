// Package cli implements the specxtract command line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/specxtract/internal/adapters/driven/config/file"
	"github.com/custodia-labs/specxtract/internal/core/ports/driving"
	"github.com/custodia-labs/specxtract/internal/core/services"
	"github.com/custodia-labs/specxtract/internal/logger"
)

// version is set at build time with -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string

	// settingsService is created from --config-dir on first use unless
	// injected with SetSettingsService.
	settingsService driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "specxtract",
	Short: "Extract feature tuples from loosely formatted documents",
	Long: `specxtract reads Word documents (and optionally plain text), splits them
into records at runs of blank lines and reports labelled features such as
brand, price, dates, contacts and emphasised words.

Output goes to CSV (default), a SQLite database or a terminal table.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress and debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.specxtract)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx available to subcommands.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetSettingsService injects the settings service, bypassing the config file.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// settings returns the injected settings service or opens the config file.
func settings() (driving.SettingsService, error) {
	if settingsService != nil {
		return settingsService, nil
	}
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, err
	}
	settingsService = services.NewSettingsService(store)
	return settingsService, nil
}
