package driving

import (
	"github.com/custodia-labs/specxtract/internal/core/domain"
	"github.com/custodia-labs/specxtract/internal/extractor"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, applying defaults for
	// unset keys. Malformed pattern settings return domain.ErrInvalidPattern.
	Get() (*domain.AppSettings, error)

	// Set parses and stores a single configuration value.
	// Unknown keys and invalid values return domain.ErrInvalidInput.
	Set(key, value string) error

	// Value returns the raw stored value for a key.
	Value(key string) (any, bool)

	// Registry returns the built-in detectors extended with the configured
	// patterns.
	Registry() (*extractor.Registry, error)

	// Path returns where configuration is stored.
	Path() string
}
