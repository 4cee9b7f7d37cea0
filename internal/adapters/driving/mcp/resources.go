package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const uriScheme = "specxtract://"

func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "patterns",
		Name:        "patterns",
		Description: "Detectors in priority order",
		MIMEType:    "application/json",
	}, s.handlePatternsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "patterns/{name}",
		Name:        "pattern",
		Description: "A single detector by name",
		MIMEType:    "application/json",
	}, s.handlePatternResource)
}

func (s *Server) handlePatternsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.patterns())
}

func (s *Server) handlePatternResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractPatternName(req.Params.URI)
	d, ok := s.ports.registry().Lookup(name)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return jsonResource(req.Params.URI, PatternOutput{
		Name:   d.Name(),
		Column: d.Column(),
		Kind:   d.Kind().String(),
		Scope:  d.Scope().String(),
		Rule:   d.Expr(),
	})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractPatternName extracts the name from specxtract://patterns/{name}.
func extractPatternName(uri string) string {
	name, ok := strings.CutPrefix(uri, uriScheme+"patterns/")
	if !ok || strings.Contains(name, "/") {
		return ""
	}
	return name
}
