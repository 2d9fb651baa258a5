package logger

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, SetupLogger(dir, "info"))

	Info("hello %s", "world")

	_, err := os.Stat(filepath.Join(dir, "server.log"))
	assert.NoError(t, err)
}

func TestLevelsWriteWithPrefix(t *testing.T) {
	var buf bytes.Buffer
	WarningLogger = log.New(&buf, "WARNING: ", 0)
	DebugLogger = log.New(&buf, "DEBUG: ", 0)

	Warning("payments unavailable: %d", 3)
	Debug("noise")

	assert.Contains(t, buf.String(), "WARNING: payments unavailable: 3")
	assert.Contains(t, buf.String(), "DEBUG: noise")
}
