package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/specxtract/internal/adapters/driven/sink"
	"github.com/custodia-labs/specxtract/internal/adapters/driven/sink/sqlite"
	"github.com/custodia-labs/specxtract/internal/connectors/filesystem"
	"github.com/custodia-labs/specxtract/internal/core/domain"
	"github.com/custodia-labs/specxtract/internal/core/ports/driven"
	"github.com/custodia-labs/specxtract/internal/core/ports/driving"
	"github.com/custodia-labs/specxtract/internal/core/services"
	"github.com/custodia-labs/specxtract/internal/logger"
	"github.com/custodia-labs/specxtract/internal/normalisers"
	"github.com/custodia-labs/specxtract/internal/styles"
)

var (
	extractOutput    string
	extractFormat    string
	extractIsolate   bool
	extractWorkers   int
	extractStrict    bool
	extractPlaintext bool
	extractWatch     bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <path>",
	Short: "Extract features from a document or a directory of documents",
	Long: `Extract feature tuples from a .docx file, or from every .docx file in a
directory (not recursive). Header, body and footer parts are read in
archive order.

Flags override the extract.* and output.* configuration keys.

Examples:
  specxtract extract catalogue.docx
  specxtract extract ./docs -o features.csv
  specxtract extract ./docs --format sqlite -o ./db
  specxtract extract ./docs --format table --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	f := extractCmd.Flags()
	f.StringVarP(&extractOutput, "output", "o", "", "output file (csv) or database directory (sqlite)")
	f.StringVar(&extractFormat, "format", "", "output format: csv, sqlite or table")
	f.BoolVar(&extractIsolate, "isolate", false, "use a fresh engine per document and run documents in parallel")
	f.IntVar(&extractWorkers, "workers", 0, "parallel documents when isolated")
	f.BoolVar(&extractStrict, "strict", false, "abort on the first unreadable document")
	f.BoolVar(&extractPlaintext, "plaintext", false, "also read .txt files")
	f.BoolVarP(&extractWatch, "watch", "w", false, "re-extract whenever documents change")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	svc, err := settings()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	cfg, err := svc.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	if err := applyExtractFlags(cmd, cfg); err != nil {
		return err
	}

	registry, err := services.BuildRegistry(cfg.Patterns)
	if err != nil {
		return err
	}

	connector := filesystem.New(args[0], filesystem.Options{Plaintext: cfg.Extract.Plaintext})
	defer connector.Close()

	service := services.NewExtractionService(registry, normalisers.Defaults(cfg.Extract.Plaintext), cfg.Extract)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := extractOnce(ctx, cmd, service, connector, cfg.Output); err != nil {
		return err
	}
	if !extractWatch {
		return nil
	}

	changes, err := connector.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watching %s: %w", args[0], err)
	}
	logger.Info("watching %s for changes", connector.Path())
	for range changes {
		if err := extractOnce(ctx, cmd, service, connector, cfg.Output); err != nil {
			logger.Error("%v", err)
		}
	}
	return nil
}

// applyExtractFlags overrides settings with the flags given on the command line.
func applyExtractFlags(cmd *cobra.Command, cfg *domain.AppSettings) error {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output.Path = extractOutput
	}
	if flags.Changed("format") {
		format := domain.OutputFormat(extractFormat)
		if !format.IsValid() {
			return fmt.Errorf("output format %q: %w", extractFormat, domain.ErrUnknownSink)
		}
		cfg.Output.Format = format
	}
	if flags.Changed("isolate") {
		cfg.Extract.Isolate = extractIsolate
	}
	if flags.Changed("workers") {
		if extractWorkers < 1 {
			return fmt.Errorf("--workers must be at least 1: %w", domain.ErrInvalidInput)
		}
		cfg.Extract.Workers = extractWorkers
	}
	if flags.Changed("strict") {
		cfg.Extract.Strict = extractStrict
	}
	if flags.Changed("plaintext") {
		cfg.Extract.Plaintext = extractPlaintext
	}
	return nil
}

func extractOnce(
	ctx context.Context,
	cmd *cobra.Command,
	service driving.ExtractionService,
	connector *filesystem.Connector,
	output domain.OutputSettings,
) error {
	out, err := sink.New(output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer out.Close()

	summary, err := service.Run(ctx, connector, out)
	if err != nil {
		return err
	}

	printSummary(cmd.ErrOrStderr(), summary, out)
	return nil
}

// printSummary writes a short report to w, which is stderr so that csv
// output on stdout stays clean.
func printSummary(w io.Writer, summary *driving.ExtractionSummary, out driven.FeatureSink) {
	st := styles.ForWriter(w)

	fmt.Fprintf(w, "%s %d document(s), %d part(s), %d feature(s)\n",
		st.Success.Render("extracted"), summary.Documents, summary.Parts, len(summary.Tuples))
	for _, id := range summary.Skipped {
		fmt.Fprintf(w, "%s %s\n", st.Warning.Render("skipped"), id)
	}

	switch s := out.(type) {
	case *sqlite.Store:
		fmt.Fprintf(w, "%s %s (run %s)\n", st.Label.Render("database"), s.Path(), s.LastRunID())
	case interface{ Path() string }:
		if p := s.Path(); p != "" {
			fmt.Fprintf(w, "%s %s\n", st.Label.Render("written"), p)
		}
	}
}
