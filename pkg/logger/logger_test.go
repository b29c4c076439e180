package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, LevelWarn)

	log.Info("booking id=%d created", 1)
	log.Warn("capacity exceeded for %s", "tent")

	out := buf.String()
	assert.NotContains(t, out, "booking id=1 created")
	assert.Contains(t, out, "capacity exceeded for tent")
}

func TestLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, LevelInfo)
	require.NoError(t, err)

	log.Info("hello %s", "camping")
	require.NoError(t, log.Close())
	assert.NoError(t, log.Close())
}
