// Package normalisers provides implementations of the Normaliser interface
// for the document formats specxtract reads. Each normaliser knows how to
// linearise one MIME type into text parts.
//
// Normalisers are registered with a Registry at startup; the registry
// dispatches each document to the highest-priority normaliser that
// supports its MIME type.
package normalisers
