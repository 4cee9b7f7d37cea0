package driven

import (
	"context"

	"github.com/custodia-labs/specxtract/internal/core/domain"
)

// Connector lists the documents available at a location.
type Connector interface {
	// Type returns the connector type identifier (e.g. "filesystem").
	Type() string

	// Documents returns every document at the connector's root, in a
	// stable order. A root that cannot be read returns an error wrapping
	// domain.ErrSourceUnavailable.
	Documents(ctx context.Context) ([]domain.RawDocument, error)
}
