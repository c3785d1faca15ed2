package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendra-labs/vendra-cli/internal/core/ports/driven"
)

func TestConfigSetCmd(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "config", "set", driven.ConfigMaxSearchResults, "25")
	require.NoError(t, err)
	assert.Contains(t, out, "max_search_results = 25")
	assert.Equal(t, 25, configStore.GetInt(driven.ConfigMaxSearchResults))
}

func TestConfigShowCmd(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	require.NoError(t, configStore.Set(driven.ConfigDaemonAddress, "10.1.1.1:50881"))

	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "daemon_address")
	assert.Contains(t, out, "10.1.1.1:50881")
}
