package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugSuppressedWhenQuiet(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("hidden %d", 1)
	Info("hidden")
	Warn("hidden")

	assert.Empty(t, buf.String())
}

func TestVerboseLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)
	defer SetVerbose(false)

	Section("Resolution")
	Debug("fetch key %s", "abc")
	Info("resolved %d keys", 3)
	Warn("skipping key")

	out := buf.String()
	assert.Contains(t, out, "=== Resolution ===")
	assert.Contains(t, out, "[DEBUG] fetch key abc")
	assert.Contains(t, out, "[INFO] resolved 3 keys")
	assert.Contains(t, out, "[WARN] skipping key")
	assert.True(t, IsVerbose())
}

func TestErrorAlwaysPrints(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Error("remove failed for %s", "key1")

	assert.Contains(t, buf.String(), "[ERROR] remove failed for key1")
}
