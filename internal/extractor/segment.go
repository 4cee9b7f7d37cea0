package extractor

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/specxtract/internal/core/domain"
)

// recordDelimiter is two or more blank lines.
var recordDelimiter = regexp.MustCompile(`\n{3,}`)

// Segment splits text into records. Chunks keep their order and content;
// empty chunks are records too. Empty text is a single empty record.
func Segment(text string) []domain.Record {
	chunks := recordDelimiter.Split(text, -1)
	records := make([]domain.Record, len(chunks))
	for i, chunk := range chunks {
		records[i] = domain.Record{ID: i + 1, Text: chunk}
	}
	return records
}

// splitLines splits a record into its lines.
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
