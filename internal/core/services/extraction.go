package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/specxtract/internal/core/domain"
	"github.com/custodia-labs/specxtract/internal/core/ports/driven"
	"github.com/custodia-labs/specxtract/internal/core/ports/driving"
	"github.com/custodia-labs/specxtract/internal/extractor"
	"github.com/custodia-labs/specxtract/internal/logger"
)

// Ensure ExtractionService implements the interface.
var _ driving.ExtractionService = (*ExtractionService)(nil)

// ExtractionService runs connector documents through normalisers and the
// feature engine, then hands the tuples to a sink.
type ExtractionService struct {
	registry    *extractor.Registry
	normalisers driven.NormaliserRegistry
	opts        domain.ExtractSettings

	// runMu serialises runs that share one engine.
	runMu  sync.Mutex
	shared *extractor.Engine
}

// NewExtractionService creates an extraction service.
// A nil registry uses the built-in detectors.
func NewExtractionService(
	registry *extractor.Registry,
	normalisers driven.NormaliserRegistry,
	opts domain.ExtractSettings,
) *ExtractionService {
	if registry == nil {
		registry = extractor.DefaultRegistry()
	}
	if opts.Workers < 1 {
		opts.Workers = domain.DefaultAppSettings().Extract.Workers
	}
	return &ExtractionService{
		registry:    registry,
		normalisers: normalisers,
		opts:        opts,
		shared:      extractor.NewEngine(registry),
	}
}

// documentResult is the outcome of one document.
type documentResult struct {
	tuples  []domain.FeatureTuple
	parts   int
	skipped bool
}

// Run extracts every document the connector lists. Without isolation all
// documents share one engine, in order, so label frequencies accumulate
// across the run. With isolation each document gets its own engine and
// documents run in parallel; results keep the connector's order.
func (s *ExtractionService) Run(
	ctx context.Context,
	connector driven.Connector,
	sink driven.FeatureSink,
) (*driving.ExtractionSummary, error) {
	docs, err := connector.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	logger.Section("Extract")
	logger.Info("%d document(s) from %s connector", len(docs), connector.Type())

	results := make([]documentResult, len(docs))
	if s.opts.Isolate {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.opts.Workers)
		for i := range docs {
			g.Go(func() error {
				res, err := s.extractDocument(gctx, extractor.NewEngine(s.registry), &docs[i])
				results[i] = res
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		s.runMu.Lock()
		defer s.runMu.Unlock()

		s.shared.Reset()
		for i := range docs {
			res, err := s.extractDocument(ctx, s.shared, &docs[i])
			if err != nil {
				return nil, err
			}
			results[i] = res
		}
	}

	summary := &driving.ExtractionSummary{Documents: len(docs)}
	for i, res := range results {
		if res.skipped {
			summary.Skipped = append(summary.Skipped, docs[i].ID)
			continue
		}
		summary.Parts += res.parts
		summary.Tuples = append(summary.Tuples, res.tuples...)
	}

	logger.Info("%d tuple(s) from %d part(s), %d skipped", len(summary.Tuples), summary.Parts, len(summary.Skipped))

	if sink != nil {
		if err := sink.Write(ctx, summary.Tuples); err != nil {
			return nil, fmt.Errorf("write %s: %w", sink.Name(), err)
		}
	}
	return summary, nil
}

// extractDocument normalises one document and extracts each text part.
// Unavailable documents are skipped unless the service is strict.
func (s *ExtractionService) extractDocument(
	ctx context.Context,
	engine *extractor.Engine,
	doc *domain.RawDocument,
) (documentResult, error) {
	if err := ctx.Err(); err != nil {
		return documentResult{}, err
	}

	if doc.Err != nil {
		return s.unavailable(doc, doc.Err, "read")
	}

	parts, err := s.normalisers.Normalise(ctx, doc)
	if err != nil {
		return s.unavailable(doc, err, "normalise")
	}

	var res documentResult
	for _, part := range parts {
		tuples := engine.ExtractFeatures(part.Text, doc.ID)
		logger.Debug("%s %s: %d tuple(s)", doc.ID, part.Part, len(tuples))
		res.tuples = append(res.tuples, tuples...)
		res.parts++
	}
	return res, nil
}

// unavailable skips doc when err is ErrSourceUnavailable and the service is
// not strict. Any other error aborts the run.
func (s *ExtractionService) unavailable(doc *domain.RawDocument, err error, op string) (documentResult, error) {
	if errors.Is(err, domain.ErrSourceUnavailable) && !s.opts.Strict {
		logger.Warn("skipping %s: %v", doc.URI, err)
		return documentResult{skipped: true}, nil
	}
	return documentResult{}, fmt.Errorf("%s %s: %w", op, doc.ID, err)
}

// ExtractText extracts features from text with a fresh engine.
func (s *ExtractionService) ExtractText(
	ctx context.Context,
	documentID, text string,
) ([]domain.FeatureTuple, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if documentID == "" {
		return nil, fmt.Errorf("document id: %w", domain.ErrInvalidInput)
	}
	return extractor.NewEngine(s.registry).ExtractFeatures(text, documentID), nil
}

// Registry returns the detectors used by the service.
func (s *ExtractionService) Registry() *extractor.Registry {
	return s.registry
}
