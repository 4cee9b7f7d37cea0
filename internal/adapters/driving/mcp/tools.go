package mcp

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ExtractTextInput is the input schema for the extract_text tool.
type ExtractTextInput struct {
	Text       string `json:"text" jsonschema:"loosely formatted text; records are separated by two or more blank lines"`
	DocumentID string `json:"document_id,omitempty" jsonschema:"identifier copied into every feature (default: a generated UUID)"`
}

// ExtractTextOutput is the output schema for the extract_text tool.
type ExtractTextOutput struct {
	DocumentID string          `json:"document_id"`
	Features   []FeatureOutput `json:"features"`
	Count      int             `json:"count"`
}

// FeatureOutput is one extracted feature tuple.
type FeatureOutput struct {
	RecordID int    `json:"record_id"`
	Pattern  string `json:"pattern"`
	Content  string `json:"content"`
	Value    string `json:"value,omitempty"`
}

// ListPatternsInput is the (empty) input schema for the list_patterns tool.
type ListPatternsInput struct{}

// ListPatternsOutput is the output schema for the list_patterns tool.
type ListPatternsOutput struct {
	Patterns []PatternOutput `json:"patterns"`
}

// PatternOutput describes one detector.
type PatternOutput struct {
	Name   string `json:"name"`
	Column string `json:"column"`
	Kind   string `json:"kind"`
	Scope  string `json:"scope"`
	Rule   string `json:"rule"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_text",
		Description: "Extract feature tuples (pattern, matched content, value) from loosely formatted text",
	}, s.handleExtractText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_patterns",
		Description: "List the detectors in priority order",
	}, s.handleListPatterns)
}

func (s *Server) handleExtractText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractTextInput,
) (*mcp.CallToolResult, ExtractTextOutput, error) {
	docID := input.DocumentID
	if docID == "" {
		docID = uuid.NewString()
	}

	tuples, err := s.ports.Extraction.ExtractText(ctx, docID, input.Text)
	if err != nil {
		return nil, ExtractTextOutput{}, err
	}

	output := ExtractTextOutput{
		DocumentID: docID,
		Features:   make([]FeatureOutput, len(tuples)),
		Count:      len(tuples),
	}
	for i, t := range tuples {
		output.Features[i] = FeatureOutput{
			RecordID: t.RecordID,
			Pattern:  t.Pattern,
			Content:  t.Content,
			Value:    t.Value,
		}
	}
	return nil, output, nil
}

func (s *Server) handleListPatterns(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListPatternsInput,
) (*mcp.CallToolResult, ListPatternsOutput, error) {
	return nil, ListPatternsOutput{Patterns: s.patterns()}, nil
}

func (s *Server) patterns() []PatternOutput {
	detectors := s.ports.registry().Detectors()
	out := make([]PatternOutput, len(detectors))
	for i, d := range detectors {
		out[i] = PatternOutput{
			Name:   d.Name(),
			Column: d.Column(),
			Kind:   d.Kind().String(),
			Scope:  d.Scope().String(),
			Rule:   d.Expr(),
		}
	}
	return out
}
