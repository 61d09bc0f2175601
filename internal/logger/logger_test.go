package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sangkips/pos-terminal/internal/config"
)

func TestNewWithWriterEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("debug", &buf)
	log.Info("sale committed", zap.String("sale_id", "01HX"))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "sale committed", entry["message"])
	assert.Equal(t, "INFO", entry["severity"])
	assert.Equal(t, "01HX", entry["sale_id"])
}

func TestLevelFallback(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("nonsense", &buf)
	log.Debug("hidden")
	assert.Empty(t, buf.String())
	log.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos.log")
	log := New(&config.LogConfig{Level: "info", File: path, MaxSizeMB: 1})
	log.Info("hello")
	_ = log.Sync()
	assert.FileExists(t, path)
}

func TestContext(t *testing.T) {
	fallback := zap.NewNop()
	assert.Same(t, fallback, FromContext(context.Background(), fallback))

	l := NewWithWriter("info", &bytes.Buffer{})
	ctx := WithContext(context.Background(), l)
	assert.Same(t, l, FromContext(ctx, fallback))
	assert.NotNil(t, FromContext(context.Background(), nil))
}
