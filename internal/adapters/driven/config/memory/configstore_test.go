package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("output.format", "table"))
	require.NoError(t, store.Set("output.format", "csv"))

	val, ok := store.Get("output.format")
	assert.True(t, ok)
	assert.Equal(t, "csv", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("s", "text")
	_ = store.Set("i", 3)
	_ = store.Set("i64", int64(4))
	_ = store.Set("f", 5.0)
	_ = store.Set("b", true)

	assert.Equal(t, "text", store.GetString("s"))
	assert.Equal(t, 3, store.GetInt("i"))
	assert.Equal(t, 4, store.GetInt("i64"))
	assert.Equal(t, 5, store.GetInt("f"))
	assert.True(t, store.GetBool("b"))

	assert.Equal(t, "", store.GetString("i"))
	assert.Equal(t, 0, store.GetInt("s"))
	assert.False(t, store.GetBool("s"))
}

func TestConfigStore_Keys(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("patterns.Zed.expr", "z")
	_ = store.Set("patterns.Alpha.expr", "a")
	_ = store.Set("extract.strict", true)

	assert.Equal(t, []string{"patterns.Alpha.expr", "patterns.Zed.expr"}, store.Keys("patterns."))
	assert.Nil(t, store.Keys("output."))
}

func TestConfigStore_LoadAndPath(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("extract.workers", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.Keys("extract.")
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"extract.workers"}, store.Keys("extract."))
}
