// Package mcp serves the feature extraction engine over the Model Context
// Protocol so assistants can extract features from text they hold.
package mcp

import "errors"

// ErrMissingExtractionService is returned when the extraction service is not provided.
var ErrMissingExtractionService = errors.New("mcp: extraction service is required")
