package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "posters.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("POSTERS_DATA", "")
	t.Setenv("PORT", "")

	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", s.Env)
	assert.Equal(t, 8080, s.Port)
	assert.Equal(t, "data.json", s.DataSource)
	assert.Equal(t, "./static", s.StaticDir)
	assert.True(t, s.ImageProxy)
	assert.Equal(t, ":8080", s.Addr())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("POSTERS_DATA", "")
	t.Setenv("PORT", "")

	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, s.Port)
}

func TestLoadFileWithEnvExpansion(t *testing.T) {
	t.Setenv("POSTERS_DATA", "")
	t.Setenv("PORT", "")
	t.Setenv("POSTER_BUCKET", "https://example.org/posters.json")

	path := writeConfig(t, `
env: prod
log_level: warn
port: 9000
data_source: ${POSTER_BUCKET}
image_proxy: false
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", s.Env)
	assert.Equal(t, "warn", s.LogLevel)
	assert.Equal(t, 9000, s.Port)
	assert.Equal(t, "https://example.org/posters.json", s.DataSource)
	assert.False(t, s.ImageProxy)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("POSTERS_DATA", "/srv/posters.json")
	t.Setenv("PORT", "3000")

	path := writeConfig(t, "port: 9000\ndata_source: local.json\n")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3000, s.Port)
	assert.Equal(t, "/srv/posters.json", s.DataSource)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("POSTERS_DATA", "")
	t.Setenv("PORT", "")

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown env", body: "env: staging\n"},
		{name: "port out of range", body: "port: 70000\n"},
		{name: "unknown log level", body: "log_level: chatty\n"},
		{name: "malformed yaml", body: "port: [1, 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadInvalidPortEnv(t *testing.T) {
	t.Setenv("POSTERS_DATA", "")
	t.Setenv("PORT", "eighty")

	_, err := Load("")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  bool
		debug    bool
	}{
		{name: "local", settings: Settings{Env: "local"}, debug: true},
		{name: "prod", settings: Settings{Env: "prod"}},
		{name: "prod with debug override", settings: Settings{Env: "prod", LogLevel: "debug"}, debug: true},
		{name: "unknown env", settings: Settings{Env: "staging"}, wantErr: true},
		{name: "bad level", settings: Settings{Env: "dev", LogLevel: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := tt.settings.NewLogger()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.debug, l.Core().Enabled(zapcore.DebugLevel))
		})
	}
}
