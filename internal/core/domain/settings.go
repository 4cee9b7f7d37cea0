package domain

// OutputFormat selects the feature sink.
type OutputFormat string

// Available output formats.
const (
	// OutputCSV writes a CSV file with ExportHeader.
	OutputCSV OutputFormat = "csv"

	// OutputSQLite writes runs and features to a SQLite database.
	OutputSQLite OutputFormat = "sqlite"

	// OutputTable renders a table on the terminal.
	OutputTable OutputFormat = "table"
)

// IsValid returns true if the format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputCSV, OutputSQLite, OutputTable:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// AllOutputFormats returns all output formats.
func AllOutputFormats() []OutputFormat {
	return []OutputFormat{OutputCSV, OutputSQLite, OutputTable}
}

// ExtractSettings controls how documents are run through the engine.
type ExtractSettings struct {
	// Isolate gives every document a fresh engine and frequency table.
	Isolate bool

	// Workers bounds parallelism when Isolate is set.
	Workers int

	// Strict aborts the run on the first unavailable document.
	Strict bool

	// Plaintext also reads *.txt documents.
	Plaintext bool
}

// OutputSettings selects where tuples are written.
type OutputSettings struct {
	Format OutputFormat

	// Path is the output file (csv) or database directory (sqlite).
	// Empty writes csv and table output to stdout.
	Path string
}

// PatternSetting is a user-defined detector from configuration.
type PatternSetting struct {
	Name   string
	Expr   string
	Column string
	Kind   DetectorKind
	Scope  MatchScope
}

// AppSettings is the complete application configuration.
type AppSettings struct {
	Extract ExtractSettings
	Output  OutputSettings

	// Patterns are appended after the built-in detectors, ordered by name.
	Patterns []PatternSetting
}

// DefaultAppSettings returns settings with defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Extract: ExtractSettings{
			Workers: 4,
		},
		Output: OutputSettings{
			Format: OutputCSV,
		},
	}
}
