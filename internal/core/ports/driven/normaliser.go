package driven

import (
	"context"

	"github.com/custodia-labs/specxtract/internal/core/domain"
)

// Normaliser linearises a raw document into text parts.
// Each normaliser handles specific MIME types (e.g. DOCX, plain text).
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific normalisers should return 50-89.
	// Fallback normalisers should return 1-9.
	Priority() int

	// Normalise returns the document's text parts in reading order.
	// An undecodable document returns an error wrapping
	// domain.ErrSourceUnavailable; a document without text returns no parts.
	Normalise(ctx context.Context, raw *domain.RawDocument) ([]domain.TextPart, error)
}

// NormaliserRegistry selects the appropriate normaliser for a document.
// It maintains a priority-ordered list of normalisers and dispatches
// based on MIME type.
type NormaliserRegistry interface {
	// Normalise transforms a raw document using the best matching normaliser.
	Normalise(ctx context.Context, raw *domain.RawDocument) ([]domain.TextPart, error)

	// Register adds a normaliser to the registry.
	Register(normaliser Normaliser)

	// SupportedMIMETypes returns all MIME types that can be normalised.
	SupportedMIMETypes() []string
}
