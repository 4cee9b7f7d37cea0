// Package sqlite persists extraction runs to a SQLite database.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. Every Write records a run (identified by a UUID) and its
// feature tuples in export order.
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. Applied versions are tracked in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.specxtract/data/features.db
package sqlite
