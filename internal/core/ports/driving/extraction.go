package driving

import (
	"context"

	"github.com/custodia-labs/specxtract/internal/core/domain"
	"github.com/custodia-labs/specxtract/internal/core/ports/driven"
)

// ExtractionService runs feature extraction over document sources.
type ExtractionService interface {
	// Run extracts features from every document the connector lists
	// and writes them to the sink, if one is given.
	Run(ctx context.Context, connector driven.Connector, sink driven.FeatureSink) (*ExtractionSummary, error)

	// ExtractText extracts features from already linearised text
	// with a fresh engine.
	ExtractText(ctx context.Context, documentID, text string) ([]domain.FeatureTuple, error)
}

// ExtractionSummary reports the outcome of one Run.
type ExtractionSummary struct {
	// Documents is the number of documents listed by the connector.
	Documents int

	// Parts is the number of text parts extracted.
	Parts int

	// Skipped lists documents that could not be read.
	Skipped []string

	// Tuples holds every extracted tuple, in document order.
	Tuples []domain.FeatureTuple
}
