package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/specxtract/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/specxtract/internal/core/domain"
	"github.com/custodia-labs/specxtract/internal/core/services"
)

func TestPatternsCmd_ListsBuiltins(t *testing.T) {
	stdout, _, err := executeCommand(t, "patterns")

	require.NoError(t, err)
	for _, want := range []string{"Name", "Column", "Rule", "Brand", "Production Date", "Email", "anywhere"} {
		assert.Contains(t, stdout, want)
	}
}

func TestPatternsCmd_IncludesConfiguredPatterns(t *testing.T) {
	withSettings(t, map[string]string{
		"patterns.SKU.expr":   `^SKU-(\d+)`,
		"patterns.SKU.column": "Stock Unit",
	})

	stdout, _, err := executeCommand(t, "patterns")

	require.NoError(t, err)
	assert.Contains(t, stdout, "SKU")
	assert.Contains(t, stdout, "Stock Unit")
}

func TestPatternsCmd_RejectsArgs(t *testing.T) {
	_, _, err := executeCommand(t, "patterns", "extra")
	assert.Error(t, err)
}

func TestPatternsMatchCmd(t *testing.T) {
	t.Run("lists recognising detectors", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "patterns", "match", "Brand: Acme")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Brand")
		assert.Contains(t, stdout, "ColonSeparated")
		assert.NotContains(t, stdout, "Email")
	})

	t.Run("reports no match", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "patterns", "match", "xyz")

		require.NoError(t, err)
		assert.Contains(t, stdout, "No detector recognises this text.")
	})
}

func TestPatternsCmd_InvalidConfiguredPattern(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set("patterns.Bad.expr", "("))
	previous := settingsService
	SetSettingsService(services.NewSettingsService(store))
	t.Cleanup(func() { settingsService = previous })

	_, _, err := executeCommand(t, "patterns")

	assert.ErrorIs(t, err, domain.ErrInvalidPattern)
}
