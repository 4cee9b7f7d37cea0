package mcp

import (
	"github.com/custodia-labs/specxtract/internal/core/ports/driving"
	"github.com/custodia-labs/specxtract/internal/extractor"
)

// Ports aggregates what the MCP server needs from the core.
type Ports struct {
	// Extraction runs the engine over submitted text.
	Extraction driving.ExtractionService

	// Patterns is the registry reported by list_patterns and the pattern
	// resources. Defaults to the built-in registry.
	Patterns *extractor.Registry
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Extraction == nil {
		return ErrMissingExtractionService
	}
	return nil
}

func (p *Ports) registry() *extractor.Registry {
	if p.Patterns == nil {
		return extractor.DefaultRegistry()
	}
	return p.Patterns
}
