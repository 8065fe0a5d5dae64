package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	src := `
log_level = "debug"
stockfish = "/usr/local/bin/stockfish"
eval_depth = 24
workers = 3
eco_dir = "data/eco"
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	t.Setenv("STOCKFISH_PATH", "")
	t.Setenv("MOVETREE_STOCKFISH", "")
	t.Setenv("MOVETREE_WORKERS", "")
	t.Setenv("MOVETREE_LOG_LEVEL", "")

	cfg, used, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/usr/local/bin/stockfish", cfg.Stockfish)
	assert.Equal(t, 24, cfg.EvalDepth)
	assert.Equal(t, 256, cfg.EvalHash, "unset keys keep defaults")
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "data/eco", cfg.EcoDir)
	assert.Equal(t, ":8007", cfg.Addr)
}

func TestLoadErrors(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("workers = \"many\""), 0o644))
	_, _, err = Load(bad)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"STOCKFISH_PATH":     "/opt/sf",
		"MOVETREE_STOCKFISH": "/opt/sf17",
		"MOVETREE_WORKERS":   "8",
		"MOVETREE_LOG_LEVEL": "warn",
	}
	cfg := Default()
	require.NoError(t, cfg.applyEnv(func(k string) string { return env[k] }))
	assert.Equal(t, "/opt/sf17", cfg.Stockfish)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "warn", cfg.LogLevel)

	env = map[string]string{"MOVETREE_WORKERS": "-1"}
	assert.Error(t, cfg.applyEnv(func(k string) string { return env[k] }))
}
