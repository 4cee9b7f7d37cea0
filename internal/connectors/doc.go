// Package connectors provides implementations of the Connector interface.
// A connector lists the raw documents at a location; the filesystem
// connector is the only source type.
package connectors
