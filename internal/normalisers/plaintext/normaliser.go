package plaintext

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/specxtract/internal/core/domain"
	"github.com/custodia-labs/specxtract/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// MIMEType is the content type of plain text documents.
const MIMEType = "text/plain"

// Normaliser handles plain text documents.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{
		MIMEType,
		"text/markdown",
		"text/csv",
	}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 5 // Fallback normaliser
}

// Normalise returns the whole file as a single part with line endings
// converted to "\n".
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) ([]domain.TextPart, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if !utf8.Valid(raw.Content) {
		return nil, fmt.Errorf("%s is not UTF-8 text: %w", raw.URI, domain.ErrSourceUnavailable)
	}

	text := strings.ReplaceAll(string(raw.Content), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	return []domain.TextPart{{DocumentID: raw.ID, Text: text}}, nil
}
