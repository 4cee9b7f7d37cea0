// Package extractor turns linearised document text into feature tuples.
//
// The pipeline for one text is:
//
//  1. Segment splits the text into records on runs of blank lines.
//  2. The Classifier applies every detector of a Registry to each line.
//  3. The Engine resolves precedence per record (colon-separated matches
//     yield to the dedicated detectors) and orders the document's tuples
//     by record and label frequency.
//
// An Engine owns a FrequencyTable that accumulates across every call to
// ExtractFeatures. Use a fresh Engine, or Reset, for per-document counts.
package extractor
