package driven

import (
	"context"

	"github.com/custodia-labs/specxtract/internal/core/domain"
)

// FeatureSink persists feature tuples.
// Implementations order rows with domain.SortForExport.
type FeatureSink interface {
	// Name returns the output format name (e.g. "csv").
	Name() string

	// Write persists tuples. It may be called once per extraction run.
	Write(ctx context.Context, tuples []domain.FeatureTuple) error

	// Close releases resources held by the sink.
	Close() error
}
