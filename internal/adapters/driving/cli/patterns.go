package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/specxtract/internal/extractor"
	"github.com/custodia-labs/specxtract/internal/styles"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List detectors in priority order",
	Long: `List the effective detectors: the built-ins followed by any patterns.<Name>
entries from the configuration, ordered by name.`,
	Args: cobra.NoArgs,
	RunE: runPatterns,
}

var patternsMatchCmd = &cobra.Command{
	Use:   "match <text>",
	Short: "Show which detectors recognise a piece of text",
	Args:  cobra.ExactArgs(1),
	RunE:  runPatternsMatch,
}

func init() {
	patternsCmd.AddCommand(patternsMatchCmd)
	rootCmd.AddCommand(patternsCmd)
}

func effectiveRegistry() (*extractor.Registry, error) {
	svc, err := settings()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return svc.Registry()
}

func runPatterns(cmd *cobra.Command, _ []string) error {
	registry, err := effectiveRegistry()
	if err != nil {
		return err
	}

	st := styles.ForWriter(cmd.OutOrStdout())
	rows := make([][]string, 0, registry.Len())
	for i, d := range registry.Detectors() {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), d.Name(), d.Column(), d.Kind().String(), d.Scope().String(), d.Expr(),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.Border).
		Headers("#", "Name", "Column", "Kind", "Scope", "Rule").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.Header
			}
			return st.Cell
		})

	cmd.Println(t.String())
	return nil
}

func runPatternsMatch(cmd *cobra.Command, args []string) error {
	registry, err := effectiveRegistry()
	if err != nil {
		return err
	}

	var matched int
	for _, name := range registry.Names() {
		if registry.Recognizes(name, args[0]) {
			cmd.Println(name)
			matched++
		}
	}
	if matched == 0 {
		cmd.Println("No detector recognises this text.")
	}
	return nil
}
