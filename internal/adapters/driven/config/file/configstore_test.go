package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/specxtract/internal/core/domain"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DirName, "config.toml"), store.Path())
}

func TestNewConfigStore_NestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestNewConfigStore_CorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[[[ not toml"), 0o600))

	_, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("output.format", "sqlite"))
	require.NoError(t, store.Set("extract.workers", 8))
	require.NoError(t, store.Set("extract.isolate", true))

	assert.Equal(t, "sqlite", store.GetString("output.format"))
	assert.Equal(t, 8, store.GetInt("extract.workers"))
	assert.True(t, store.GetBool("extract.isolate"))

	// Wrong types and missing keys yield zero values.
	assert.Equal(t, "", store.GetString("extract.workers"))
	assert.Equal(t, 0, store.GetInt("output.format"))
	assert.False(t, store.GetBool("output.format"))
	assert.Equal(t, "", store.GetString("missing"))

	val, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("output.format", "table"))
	require.NoError(t, store1.Set("extract.workers", 2))
	require.NoError(t, store1.Set("extract.strict", true))
	require.NoError(t, store1.Set("patterns.SKU.expr", `^SKU-(\d+)`))

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "table", store2.GetString("output.format"))
	assert.Equal(t, 2, store2.GetInt("extract.workers"))
	assert.True(t, store2.GetBool("extract.strict"))
	assert.Equal(t, `^SKU-(\d+)`, store2.GetString("patterns.SKU.expr"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("output.format", "csv"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[output]")
	assert.Contains(t, string(data), "format = ")
	assert.NotContains(t, string(data), "output.format")
}

func TestConfigStore_LoadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[extract]
isolate = true
workers = 3

[patterns.SKU]
expr = '^SKU-(\d+)'
kind = 'generic'
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0o600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.True(t, store.GetBool("extract.isolate"))
	assert.Equal(t, 3, store.GetInt("extract.workers"))
	assert.Equal(t, []string{"patterns.SKU.expr", "patterns.SKU.kind"}, store.Keys("patterns."))
}

func TestConfigStore_Keys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("patterns.b.expr", "b"))
	require.NoError(t, store.Set("patterns.a.expr", "a"))
	require.NoError(t, store.Set("output.format", "csv"))

	assert.Equal(t, []string{"patterns.a.expr", "patterns.b.expr"}, store.Keys("patterns."))
	assert.Len(t, store.Keys(""), 3)
	assert.Empty(t, store.Keys("nothing."))
}

func TestConfigStore_Set_InvalidKey(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", ".a", "a."} {
		err := store.Set(key, "x")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, key)
	}
}

func TestConfigStore_Set_ConflictingKeysRollBack(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("output", "csv"))
	err = store.Set("output.format", "csv")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, ok := store.Get("output.format")
	assert.False(t, ok)
	assert.Equal(t, "csv", store.GetString("output"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("test", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), nil, 0o600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Empty(t, store.Keys(""))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Set("extract.workers", 4)
		}()
		go func() {
			defer wg.Done()
			_ = store.GetInt("extract.workers")
		}()
	}
	wg.Wait()

	assert.Equal(t, 4, store.GetInt("extract.workers"))
}
