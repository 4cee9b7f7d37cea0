package domain

import (
	"sort"
	"strconv"
)

// FeatureTuple is one detected feature: the atomic unit of output.
// It is a value object and is never mutated once produced.
type FeatureTuple struct {
	// DocumentID identifies the source document.
	DocumentID string

	// RecordID is the 1-based position of the record within the text.
	RecordID int

	// Pattern is the name of the detector that produced the tuple.
	Pattern string

	// Content is the captured label for generic detectors, or the full
	// matched text for contact and bare-word detectors.
	Content string

	// Value is the text after the line's first colon for generic
	// detectors. Always empty for contact and bare-word detectors.
	Value string
}

// ExportHeader is the column header of tabular exports.
var ExportHeader = []string{"Document ID", "Record ID", "Pattern", "Matched Content", "Value"}

// Row returns the tuple as a tabular row matching ExportHeader.
func (f FeatureTuple) Row() []string {
	return []string{f.DocumentID, strconv.Itoa(f.RecordID), f.Pattern, f.Content, f.Value}
}

// Record is a maximal run of lines delimited by two or more blank lines.
type Record struct {
	// ID is the 1-based position of the record in document order.
	ID int

	// Text is the record's content, unnormalised.
	Text string
}

// SortForExport returns a copy of tuples ordered ascending by
// (DocumentID, RecordID). The sort is stable, so the engine's
// frequency-based order within a record is preserved.
func SortForExport(tuples []FeatureTuple) []FeatureTuple {
	sorted := make([]FeatureTuple, len(tuples))
	copy(sorted, tuples)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DocumentID != sorted[j].DocumentID {
			return sorted[i].DocumentID < sorted[j].DocumentID
		}
		return sorted[i].RecordID < sorted[j].RecordID
	})
	return sorted
}
