package domain

// RawDocument represents opaque bytes fetched by a connector.
// It is the connector's output before normalisation.
type RawDocument struct {
	// ID is the document identifier carried into every FeatureTuple.
	// The filesystem connector uses the file's base name.
	ID string

	// URI is the original location (file path, URL, etc).
	URI string

	// MIMEType is the content type used to select a normaliser.
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Err is set when the connector listed the document but could not
	// read it. Content is nil in that case.
	Err error
}

// TextPart is one linearised text unit of a document.
// Line breaks separate paragraphs and lines; no markup remains.
type TextPart struct {
	// DocumentID identifies the owning document.
	DocumentID string

	// Part names the container part the text came from
	// (e.g. "word/header1.xml"). Empty for single-part sources.
	Part string

	// Text is the linearised content.
	Text string
}
