package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/specxtract/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write configuration",
	Long: `Read and write keys in config.toml.

Keys:
  extract.isolate      fresh engine per document (true/false)
  extract.workers      parallel documents when isolated
  extract.strict       abort on unreadable documents (true/false)
  extract.plaintext    also read .txt files (true/false)
  output.format        csv, sqlite or table
  output.path          output file or database directory
  patterns.<Name>.expr    extra detector rule (RE2)
  patterns.<Name>.column  display column (default <Name>)
  patterns.<Name>.kind    generic, contact or bareword
  patterns.<Name>.scope   start or anywhere`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	svc, err := settings()
	if err != nil {
		return err
	}
	val, ok := svc.Value(args[0])
	if !ok {
		return fmt.Errorf("config key %q: %w", args[0], domain.ErrNotFound)
	}
	cmd.Println(val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	svc, err := settings()
	if err != nil {
		return err
	}
	if err := svc.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("%s = %s\n", args[0], args[1])
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	svc, err := settings()
	if err != nil {
		return err
	}
	cmd.Println(svc.Path())
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	svc, err := settings()
	if err != nil {
		return err
	}
	cfg, err := svc.Get()
	if err != nil {
		return err
	}

	cmd.Printf("extract.isolate   = %t\n", cfg.Extract.Isolate)
	cmd.Printf("extract.workers   = %d\n", cfg.Extract.Workers)
	cmd.Printf("extract.strict    = %t\n", cfg.Extract.Strict)
	cmd.Printf("extract.plaintext = %t\n", cfg.Extract.Plaintext)
	cmd.Printf("output.format     = %s\n", cfg.Output.Format)
	cmd.Printf("output.path       = %s\n", cfg.Output.Path)
	for _, p := range cfg.Patterns {
		cmd.Printf("patterns.%s       = %s (%s, %s)\n", p.Name, p.Expr, p.Kind, p.Scope)
	}
	return nil
}
