package mcp

import (
	"context"

	"github.com/custodia-labs/specxtract/internal/core/domain"
	"github.com/custodia-labs/specxtract/internal/core/ports/driven"
	"github.com/custodia-labs/specxtract/internal/core/ports/driving"
)

// mockExtractionService is a mock implementation of driving.ExtractionService.
type mockExtractionService struct {
	tuples []domain.FeatureTuple
	err    error

	gotDocumentID string
	gotText       string
}

func (m *mockExtractionService) Run(
	_ context.Context,
	_ driven.Connector,
	_ driven.FeatureSink,
) (*driving.ExtractionSummary, error) {
	return &driving.ExtractionSummary{Tuples: m.tuples}, m.err
}

func (m *mockExtractionService) ExtractText(_ context.Context, documentID, text string) ([]domain.FeatureTuple, error) {
	m.gotDocumentID = documentID
	m.gotText = text
	return m.tuples, m.err
}
