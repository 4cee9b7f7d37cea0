// Package sink selects a feature sink for an output format.
package sink

import (
	"fmt"
	"io"

	"github.com/custodia-labs/specxtract/internal/adapters/driven/sink/csv"
	"github.com/custodia-labs/specxtract/internal/adapters/driven/sink/sqlite"
	"github.com/custodia-labs/specxtract/internal/adapters/driven/sink/table"
	"github.com/custodia-labs/specxtract/internal/core/domain"
	"github.com/custodia-labs/specxtract/internal/core/ports/driven"
)

// New creates the sink for settings. csv writes to settings.Path, or to
// stdout when the path is empty. sqlite treats the path as its data
// directory. table always renders to stdout.
func New(settings domain.OutputSettings, stdout io.Writer) (driven.FeatureSink, error) {
	switch settings.Format {
	case domain.OutputCSV, "":
		if settings.Path == "" {
			return csv.New(stdout), nil
		}
		s, err := csv.Create(settings.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case domain.OutputSQLite:
		s, err := sqlite.NewStore(settings.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case domain.OutputTable:
		return table.New(stdout, nil), nil
	default:
		return nil, fmt.Errorf("output format %q: %w", settings.Format, domain.ErrUnknownSink)
	}
}
