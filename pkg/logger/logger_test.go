package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
}

func TestLogger_JSONConCampos(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, "info")
	l.Debug().Msg("oculto")
	l.Warn().Str("role", "viewer").Str("permission", "products:create").Msg("permiso denegado")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "viewer", entry["role"])
	assert.Equal(t, "permiso denegado", entry["message"])
	assert.NotContains(t, buf.String(), "oculto")
}

func TestNew_ArchivoRotativo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ims.log")
	l := New(Config{Env: "production", Level: "info", File: FileConfig{Path: path, MaxSizeMB: 1}})
	l.Info().Msg("hola")
	assert.FileExists(t, path)
}
