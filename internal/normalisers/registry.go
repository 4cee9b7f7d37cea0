package normalisers

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/specxtract/internal/core/domain"
	"github.com/custodia-labs/specxtract/internal/core/ports/driven"
	"github.com/custodia-labs/specxtract/internal/normalisers/docx"
	"github.com/custodia-labs/specxtract/internal/normalisers/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry dispatches documents to the highest-priority normaliser that
// supports their MIME type. Normalisers of equal priority are tried in
// registration order.
type Registry struct {
	mu          sync.RWMutex
	normalisers []driven.Normaliser
}

// NewRegistry creates a registry holding the given normalisers.
func NewRegistry(normalisers ...driven.Normaliser) *Registry {
	r := &Registry{}
	for _, n := range normalisers {
		r.Register(n)
	}
	return r
}

// Defaults returns a registry with the DOCX normaliser and, when
// withPlaintext is set, the plain text normaliser.
func Defaults(withPlaintext bool) *Registry {
	r := NewRegistry(docx.New())
	if withPlaintext {
		r.Register(plaintext.New())
	}
	return r
}

// Register adds a normaliser to the registry.
func (r *Registry) Register(normaliser driven.Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.normalisers = append(r.normalisers, normaliser)
	sort.SliceStable(r.normalisers, func(i, j int) bool {
		return r.normalisers[i].Priority() > r.normalisers[j].Priority()
	})
}

// Normalise transforms a raw document using the best matching normaliser.
func (r *Registry) Normalise(ctx context.Context, raw *domain.RawDocument) ([]domain.TextPart, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	n := r.lookup(raw.MIMEType)
	if n == nil {
		return nil, fmt.Errorf("%s (%s): %w", raw.URI, raw.MIMEType, domain.ErrUnsupportedType)
	}
	return n.Normalise(ctx, raw)
}

func (r *Registry) lookup(mimeType string) driven.Normaliser {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range r.normalisers {
		for _, mt := range n.SupportedMIMETypes() {
			if mt == mimeType {
				return n
			}
		}
	}
	return nil
}

// SupportedMIMETypes returns all MIME types that can be normalised, sorted.
func (r *Registry) SupportedMIMETypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var types []string
	for _, n := range r.normalisers {
		for _, mt := range n.SupportedMIMETypes() {
			if !seen[mt] {
				seen[mt] = true
				types = append(types, mt)
			}
		}
	}
	sort.Strings(types)
	return types
}
