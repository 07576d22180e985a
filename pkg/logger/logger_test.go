package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("booking created id=%d", 42)
	log.Debug("hidden at info level")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "booking created id=42")
	assert.NotContains(t, content, "hidden at info level")
	assert.Equal(t, 1, strings.Count(content, "\n"))
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "loud")
	require.Error(t, err)
}

func TestNew_EmptyLevelDefaultsToInfo(t *testing.T) {
	log, err := New("", "")
	require.NoError(t, err)
	defer log.Close()

	log.Info("ok")
}
