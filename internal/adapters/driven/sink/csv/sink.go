// Package csv writes feature tuples as CSV with the export header.
package csv

import (
	"context"
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/custodia-labs/specxtract/internal/core/domain"
	"github.com/custodia-labs/specxtract/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.FeatureSink = (*Sink)(nil)

// Sink writes one CSV table per Write call.
type Sink struct {
	w      io.Writer
	closer io.Closer
	path   string
}

// New creates a sink that writes to w. Close does not close w.
func New(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Create creates (or truncates) the file at path, making parent
// directories as needed.
func Create(path string) (*Sink, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return &Sink{w: f, closer: f, path: path}, nil
}

// Name returns "csv".
func (s *Sink) Name() string {
	return string(domain.OutputCSV)
}

// Path returns the output file, or "" when writing to a stream.
func (s *Sink) Path() string {
	return s.path
}

// Write writes the header followed by one row per tuple, sorted by
// document id then record id.
func (s *Sink) Write(ctx context.Context, tuples []domain.FeatureTuple) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w := stdcsv.NewWriter(s.w)
	if err := w.Write(domain.ExportHeader); err != nil {
		return err
	}
	for _, t := range domain.SortForExport(tuples) {
		if err := w.Write(t.Row()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Close closes the output file if the sink created it.
func (s *Sink) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}
