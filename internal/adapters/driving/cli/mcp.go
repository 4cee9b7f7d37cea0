package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/specxtract/internal/adapters/driving/mcp"
	"github.com/custodia-labs/specxtract/internal/core/services"
	"github.com/custodia-labs/specxtract/internal/normalisers"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Serve the extraction engine over the Model Context Protocol.

Tools:
  extract_text   extract features from text
  list_patterns  list the detectors in priority order

By default the server speaks JSON-RPC over stdio. Use --http to serve
streamable HTTP instead.

Examples:
  specxtract mcp
  specxtract mcp --http :8080`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "HTTP listen address (empty = use stdio)")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	svc, err := settings()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	cfg, err := svc.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	registry, err := services.BuildRegistry(cfg.Patterns)
	if err != nil {
		return err
	}

	extraction := services.NewExtractionService(registry, normalisers.Defaults(cfg.Extract.Plaintext), cfg.Extract)
	server, err := mcp.NewServer(&mcp.Ports{Extraction: extraction, Patterns: registry})
	if err != nil {
		return err
	}

	if mcpHTTPAddr != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on %s\n", mcpHTTPAddr)
		return server.RunHTTP(cmd.Context(), mcpHTTPAddr)
	}
	return server.Run(cmd.Context())
}
