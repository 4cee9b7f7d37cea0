package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/specxtract/internal/core/domain"
	"github.com/custodia-labs/specxtract/internal/core/ports/driven"
	"github.com/custodia-labs/specxtract/internal/core/ports/driving"
	"github.com/custodia-labs/specxtract/internal/extractor"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyIsolate      = "extract.isolate"
	KeyWorkers      = "extract.workers"
	KeyStrict       = "extract.strict"
	KeyPlaintext    = "extract.plaintext"
	KeyOutputFormat = "output.format"
	KeyOutputPath   = "output.path"

	patternsPrefix = "patterns."
)

var patternFields = map[string]bool{"expr": true, "column": true, "kind": true, "scope": true}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Extract: domain.ExtractSettings{
			Isolate:   s.getBool(KeyIsolate, defaults.Extract.Isolate),
			Workers:   s.getInt(KeyWorkers, defaults.Extract.Workers),
			Strict:    s.getBool(KeyStrict, defaults.Extract.Strict),
			Plaintext: s.getBool(KeyPlaintext, defaults.Extract.Plaintext),
		},
		Output: domain.OutputSettings{
			Format: s.getFormat(defaults.Output.Format),
			Path:   s.configStore.GetString(KeyOutputPath),
		},
	}

	patterns, err := s.patterns()
	if err != nil {
		return nil, err
	}
	settings.Patterns = patterns
	return settings, nil
}

// patterns collects patterns.<Name>.<field> keys, ordered by name.
func (s *SettingsService) patterns() ([]domain.PatternSetting, error) {
	var (
		names  []string
		byName = make(map[string]*domain.PatternSetting)
	)

	for _, key := range s.configStore.Keys(patternsPrefix) {
		name, field, ok := splitPatternKey(key)
		if !ok {
			return nil, &domain.PatternError{Detector: key, Err: fmt.Errorf("want %s<Name>.<field>", patternsPrefix)}
		}

		p, seen := byName[name]
		if !seen {
			p = &domain.PatternSetting{Name: name}
			byName[name] = p
			names = append(names, name)
		}

		value := s.configStore.GetString(key)
		switch field {
		case "expr":
			p.Expr = value
		case "column":
			p.Column = value
		case "kind":
			kind, err := domain.ParseDetectorKind(value)
			if err != nil {
				return nil, &domain.PatternError{Detector: name, Err: err}
			}
			p.Kind = kind
		case "scope":
			scope, err := domain.ParseMatchScope(value)
			if err != nil {
				return nil, &domain.PatternError{Detector: name, Err: err}
			}
			p.Scope = scope
		}
	}

	sort.Strings(names)
	patterns := make([]domain.PatternSetting, 0, len(names))
	for _, name := range names {
		p := byName[name]
		if p.Expr == "" {
			return nil, &domain.PatternError{Detector: name, Err: fmt.Errorf("%s%s.expr is not set", patternsPrefix, name)}
		}
		patterns = append(patterns, *p)
	}
	return patterns, nil
}

// Registry returns the built-in detectors extended with configured patterns.
func (s *SettingsService) Registry() (*extractor.Registry, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}
	return BuildRegistry(settings.Patterns)
}

// BuildRegistry extends the default registry with user patterns.
// With no patterns the shared default registry is returned.
func BuildRegistry(patterns []domain.PatternSetting) (*extractor.Registry, error) {
	if len(patterns) == 0 {
		return extractor.DefaultRegistry(), nil
	}

	specs := make([]extractor.DetectorSpec, len(patterns))
	for i, p := range patterns {
		specs[i] = extractor.DetectorSpec{
			Name:   p.Name,
			Expr:   p.Expr,
			Column: p.Column,
			Kind:   p.Kind,
			Scope:  p.Scope,
		}
	}
	return extractor.DefaultRegistry().Extend(specs...)
}

// Set parses and stores one configuration value.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case KeyIsolate, KeyStrict, KeyPlaintext:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %q is not a boolean: %w", key, value, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, b)

	case KeyWorkers:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%s: %q is not a positive integer: %w", key, value, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, n)

	case KeyOutputFormat:
		if !domain.OutputFormat(value).IsValid() {
			return fmt.Errorf("%s: unknown format %q: %w", key, value, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, value)

	case KeyOutputPath:
		return s.configStore.Set(key, value)
	}

	name, field, ok := splitPatternKey(key)
	if !ok {
		return fmt.Errorf("unknown config key %q: %w", key, domain.ErrInvalidInput)
	}
	switch field {
	case "kind":
		if _, err := domain.ParseDetectorKind(value); err != nil {
			return err
		}
	case "scope":
		if _, err := domain.ParseMatchScope(value); err != nil {
			return err
		}
	case "expr":
		if _, err := extractor.NewRegistry(extractor.DetectorSpec{Name: name, Expr: value}); err != nil {
			return err
		}
	}
	return s.configStore.Set(key, value)
}

// Value returns the raw stored value for a key.
func (s *SettingsService) Value(key string) (any, bool) {
	return s.configStore.Get(key)
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// splitPatternKey splits "patterns.<Name>.<field>".
func splitPatternKey(key string) (name, field string, ok bool) {
	rest, found := strings.CutPrefix(key, patternsPrefix)
	if !found {
		return "", "", false
	}
	i := strings.LastIndex(rest, ".")
	if i <= 0 {
		return "", "", false
	}
	name, field = rest[:i], rest[i+1:]
	return name, field, patternFields[field]
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val < 1 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	format := domain.OutputFormat(s.configStore.GetString(KeyOutputFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}
