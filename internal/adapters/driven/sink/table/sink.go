// Package table renders feature tuples as a terminal table.
package table

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/custodia-labs/specxtract/internal/core/domain"
	"github.com/custodia-labs/specxtract/internal/core/ports/driven"
	"github.com/custodia-labs/specxtract/internal/styles"
)

// Verify interface compliance.
var _ driven.FeatureSink = (*Sink)(nil)

// Sink writes a bordered table per Write call.
type Sink struct {
	w      io.Writer
	styles *styles.Styles
}

// New creates a table sink. A nil styles picks colour based on whether w
// is a terminal.
func New(w io.Writer, s *styles.Styles) *Sink {
	if s == nil {
		s = styles.ForWriter(w)
	}
	return &Sink{w: w, styles: s}
}

// Name returns "table".
func (s *Sink) Name() string {
	return string(domain.OutputTable)
}

// Write renders tuples sorted by document id then record id.
// An empty set renders a single muted line.
func (s *Sink) Write(ctx context.Context, tuples []domain.FeatureTuple) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(tuples) == 0 {
		_, err := fmt.Fprintln(s.w, s.styles.Muted.Render("no features found"))
		return err
	}
	_, err := fmt.Fprintln(s.w, Render(tuples, s.styles))
	return err
}

// Close is a no-op; the writer belongs to the caller.
func (s *Sink) Close() error {
	return nil
}

// Render returns the tuples as a table string.
func Render(tuples []domain.FeatureTuple, st *styles.Styles) string {
	rows := make([][]string, 0, len(tuples))
	for _, t := range domain.SortForExport(tuples) {
		rows = append(rows, t.Row())
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.Border).
		Headers(domain.ExportHeader...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.Header
			}
			return st.Cell
		}).
		String()
}
