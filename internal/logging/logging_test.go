package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Dallionking/cashout/internal/config"
)

func TestNewJSONWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cashout.log")

	logger, err := New(config.LogConfig{File: path, Level: "info", Format: "json"})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("checkout submitted", zap.String("token", "eth"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1, "debug is below the configured level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "checkout submitted", entry["msg"])
	assert.Equal(t, "eth", entry["token"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cashout.log")

	logger, err := New(config.LogConfig{File: path, Level: "debug", Format: "console"})
	require.NoError(t, err)
	logger.Debug("step changed")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DEBUG")
	assert.Contains(t, string(data), "step changed")
}

func TestNewRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cashout.log")

	_, err := New(config.LogConfig{File: path, Level: "loud", Format: "json"})
	assert.Error(t, err)

	_, err = New(config.LogConfig{File: path, Level: "info", Format: "xml"})
	assert.Error(t, err)
}
