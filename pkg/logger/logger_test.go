package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("booking created id=%s", "b-1")
	log.Debug("must be filtered out")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "booking created id=b-1")
	assert.NotContains(t, string(data), "must be filtered out")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("", "loud")
	require.Error(t, err)
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	log.Warn("nothing %d", 1)
	assert.NoError(t, log.Close())
}
