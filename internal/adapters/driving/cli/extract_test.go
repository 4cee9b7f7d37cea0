package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/specxtract/internal/adapters/driven/sink/sqlite"
	"github.com/custodia-labs/specxtract/internal/core/domain"
)

func TestExtractCmd_Flags(t *testing.T) {
	for _, name := range []string{"output", "format", "isolate", "workers", "strict", "plaintext", "watch"} {
		assert.NotNil(t, extractCmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "o", extractCmd.Flags().Lookup("output").Shorthand)
	assert.Equal(t, "w", extractCmd.Flags().Lookup("watch").Shorthand)
}

func TestExtractCmd_RequiresPath(t *testing.T) {
	_, _, err := executeCommand(t, "extract")
	assert.Error(t, err)
}

func TestExtractCmd_DOCXToStdout(t *testing.T) {
	dir := t.TempDir()
	path := writeDOCX(t, dir, "catalogue.docx", "Brand: Acme", "Price: $19.99")

	stdout, stderr, err := executeCommand(t, "extract", path)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Document ID,Record ID,Pattern,Matched Content,Value")
	assert.Contains(t, stdout, "catalogue.docx,1,Brand")
	assert.Contains(t, stdout, "catalogue.docx,1,Price")
	assert.Contains(t, stderr, "1 document(s)")
}

func TestExtractCmd_DirectoryIgnoresTextByDefault(t *testing.T) {
	dir := t.TempDir()
	writeDOCX(t, dir, "a.docx", "Brand: Acme")
	writeText(t, dir, "b.txt", "Brand: Zeta")

	stdout, _, err := executeCommand(t, "extract", dir)

	require.NoError(t, err)
	assert.Contains(t, stdout, "a.docx,1,Brand")
	assert.NotContains(t, stdout, "b.txt")
}

func TestExtractCmd_PlaintextFlag(t *testing.T) {
	dir := t.TempDir()
	writeText(t, dir, "b.txt", "Brand: Zeta")

	stdout, _, err := executeCommand(t, "extract", dir, "--plaintext")

	require.NoError(t, err)
	assert.Contains(t, stdout, "b.txt,1,Brand,Brand,Zeta")
}

func TestExtractCmd_OutputFile(t *testing.T) {
	dir := t.TempDir()
	writeText(t, dir, "a.txt", "Brand: Acme")
	out := filepath.Join(t.TempDir(), "out", "features.csv")

	stdout, stderr, err := executeCommand(t, "extract", dir, "--plaintext", "-o", out)

	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "a.txt,1,Brand,Brand,Acme")
}

func TestExtractCmd_SQLite(t *testing.T) {
	dir := t.TempDir()
	writeText(t, dir, "a.txt", "Brand: Acme\nPrice: $5.00")
	dbDir := t.TempDir()

	_, stderr, err := executeCommand(t, "extract", dir, "--plaintext", "--format", "sqlite", "-o", dbDir)

	require.NoError(t, err)
	assert.Contains(t, stderr, filepath.Join(dbDir, sqlite.DBName))

	store, err := sqlite.NewStore(dbDir)
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.Runs(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Empty(t, store.LastRunID())
	assert.NotZero(t, runs[0].Tuples)

	features, err := store.Features(context.Background(), runs[0].ID)
	require.NoError(t, err)
	assert.Len(t, features, runs[0].Tuples)
}

func TestExtractCmd_TableFromSettings(t *testing.T) {
	withSettings(t, map[string]string{"output.format": "table", "extract.plaintext": "true"})
	dir := t.TempDir()
	writeText(t, dir, "a.txt", "Brand: Acme")

	stdout, _, err := executeCommand(t, "extract", dir)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Document ID")
	assert.Contains(t, stdout, "Acme")
	assert.NotContains(t, stdout, "Document ID,Record ID")
}

func TestExtractCmd_FlagOverridesSettings(t *testing.T) {
	withSettings(t, map[string]string{"output.format": "table"})
	dir := t.TempDir()
	writeText(t, dir, "a.txt", "Brand: Acme")

	stdout, _, err := executeCommand(t, "extract", dir, "--plaintext", "--format", "csv")

	require.NoError(t, err)
	assert.Contains(t, stdout, "a.txt,1,Brand,Brand,Acme")
}

func TestExtractCmd_CustomPatternFromSettings(t *testing.T) {
	withSettings(t, map[string]string{"patterns.SKU.expr": `^SKU-(\d+)`})
	dir := t.TempDir()
	writeText(t, dir, "a.txt", "SKU-1234")

	stdout, _, err := executeCommand(t, "extract", dir, "--plaintext")

	require.NoError(t, err)
	assert.Contains(t, stdout, "a.txt,1,SKU,1234")
}

func TestExtractCmd_Isolate(t *testing.T) {
	dir := t.TempDir()
	writeText(t, dir, "a.txt", "Brand: Acme")
	writeText(t, dir, "b.txt", "Brand: Zeta")

	stdout, stderr, err := executeCommand(t, "extract", dir, "--plaintext", "--isolate", "--workers", "2")

	require.NoError(t, err)
	assert.Contains(t, stdout, "a.txt,1,Brand,Brand,Acme")
	assert.Contains(t, stdout, "b.txt,1,Brand,Brand,Zeta")
	assert.Contains(t, stderr, "2 document(s)")
}

func TestExtractCmd_InvalidFlags(t *testing.T) {
	dir := t.TempDir()

	_, _, err := executeCommand(t, "extract", dir, "--format", "xml")
	assert.ErrorIs(t, err, domain.ErrUnknownSink)

	_, _, err = executeCommand(t, "extract", dir, "--workers", "0")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtractCmd_MissingPath(t *testing.T) {
	_, _, err := executeCommand(t, "extract", filepath.Join(t.TempDir(), "missing"))

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestExtractCmd_UnsupportedFile(t *testing.T) {
	path := writeText(t, t.TempDir(), "notes.pdf", "x")

	_, _, err := executeCommand(t, "extract", path)

	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}
