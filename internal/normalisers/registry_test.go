package normalisers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/specxtract/internal/core/domain"
	"github.com/custodia-labs/specxtract/internal/normalisers/docx"
	"github.com/custodia-labs/specxtract/internal/normalisers/plaintext"
)

// stubNormaliser returns a fixed part tagged with its name.
type stubNormaliser struct {
	name     string
	types    []string
	priority int
}

func (s *stubNormaliser) SupportedMIMETypes() []string { return s.types }
func (s *stubNormaliser) Priority() int                { return s.priority }
func (s *stubNormaliser) Normalise(_ context.Context, raw *domain.RawDocument) ([]domain.TextPart, error) {
	return []domain.TextPart{{DocumentID: raw.ID, Part: s.name}}, nil
}

func TestRegistry_SelectsHighestPriority(t *testing.T) {
	low := &stubNormaliser{name: "low", types: []string{"text/plain"}, priority: 5}
	high := &stubNormaliser{name: "high", types: []string{"text/plain"}, priority: 60}
	r := NewRegistry(low, high)

	parts, err := r.Normalise(context.Background(), &domain.RawDocument{ID: "a", MIMEType: "text/plain"})
	require.NoError(t, err)
	assert.Equal(t, "high", parts[0].Part)
}

func TestRegistry_EqualPriorityKeepsRegistrationOrder(t *testing.T) {
	first := &stubNormaliser{name: "first", types: []string{"x/y"}, priority: 10}
	second := &stubNormaliser{name: "second", types: []string{"x/y"}, priority: 10}
	r := NewRegistry(first, second)

	parts, err := r.Normalise(context.Background(), &domain.RawDocument{MIMEType: "x/y"})
	require.NoError(t, err)
	assert.Equal(t, "first", parts[0].Part)
}

func TestRegistry_Unsupported(t *testing.T) {
	r := NewRegistry()

	_, err := r.Normalise(context.Background(), &domain.RawDocument{URI: "a.pdf", MIMEType: "application/pdf"})
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)

	_, err = r.Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDefaults(t *testing.T) {
	t.Run("docx only", func(t *testing.T) {
		assert.Equal(t, []string{docx.MIMEType}, Defaults(false).SupportedMIMETypes())
	})

	t.Run("with plaintext", func(t *testing.T) {
		types := Defaults(true).SupportedMIMETypes()
		assert.Contains(t, types, docx.MIMEType)
		assert.Contains(t, types, plaintext.MIMEType)
	})
}
