package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
	"github.com/vendra-labs/vendra-cli/internal/core/ports/driven"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("test_key", "test_value"))

	val, ok := store.Get("test_key")
	assert.True(t, ok)
	assert.Equal(t, "test_value", val)
}

func TestConfigStore_Defaults(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultRestrictedCategory, store.GetString(driven.ConfigRestrictedCategory))
	assert.Equal(t, 50, store.GetInt(driven.ConfigMaxSearchResults))
	assert.Equal(t, "127.0.0.1:50881", store.GetString(driven.ConfigDaemonAddress))
	assert.Equal(t, 5000, store.GetInt(driven.ConfigRequestTimeoutMS))
	assert.Equal(t, 2*1024*1024, store.GetInt(driven.ConfigMaxObjectSize))
}

func TestConfigStore_SetOverridesDefault(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(driven.ConfigMaxSearchResults, int64(10)))
	assert.Equal(t, 10, store.GetInt(driven.ConfigMaxSearchResults))
}

func TestConfigStore_PersistsAcrossReopen(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set(driven.ConfigDaemonAddress, "10.0.0.2:50881"))

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2:50881", reopened.GetString(driven.ConfigDaemonAddress))
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("s", "hello"))
	require.NoError(t, store.Set("n", int64(42)))
	require.NoError(t, store.Set("b", true))
	require.NoError(t, store.Set("slice", []string{"a", "b"}))

	assert.Equal(t, "hello", store.GetString("s"))
	assert.Equal(t, 42, store.GetInt("n"))
	assert.True(t, store.GetBool("b"))
	assert.Equal(t, []string{"a", "b"}, store.GetStringSlice("slice"))

	// Wrong types degrade to zero values.
	assert.Empty(t, store.GetString("n"))
	assert.Zero(t, store.GetInt("s"))
	assert.False(t, store.GetBool("s"))
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[daemon]\naddress = \"192.168.1.5:50881\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.5:50881", store.GetString("daemon.address"))
}

func TestConfigStore_MissingKey(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("nope")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("nope"))
	assert.Zero(t, store.GetInt("nope"))
	assert.Nil(t, store.GetStringSlice("nope"))
}
