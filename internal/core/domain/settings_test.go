package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputFormat_IsValid(t *testing.T) {
	tests := []struct {
		format OutputFormat
		want   bool
	}{
		{OutputCSV, true},
		{OutputSQLite, true},
		{OutputTable, true},
		{"json", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.IsValid())
		})
	}
}

func TestAllOutputFormats(t *testing.T) {
	formats := AllOutputFormats()

	assert.Len(t, formats, 3)
	for _, f := range formats {
		assert.True(t, f.IsValid(), f.String())
	}
}

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.False(t, settings.Extract.Isolate)
	assert.False(t, settings.Extract.Strict)
	assert.False(t, settings.Extract.Plaintext)
	assert.Equal(t, 4, settings.Extract.Workers)
	assert.Equal(t, OutputCSV, settings.Output.Format)
	assert.Empty(t, settings.Output.Path)
	assert.Empty(t, settings.Patterns)
}
