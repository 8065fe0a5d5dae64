// Package config loads the command defaults from a TOML file and the
// environment. Command-line flags override both.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// RelPath is the config file location under the XDG config directories.
const RelPath = "movetree/config.toml"

// Config holds the settings shared by the commands.
type Config struct {
	LogLevel string `toml:"log_level"`

	// Engine
	Stockfish   string `toml:"stockfish"`
	EvalDepth   int    `toml:"eval_depth"`
	EvalHash    int    `toml:"eval_hash"`
	EvalThreads int    `toml:"eval_threads"`
	EvalNice    int    `toml:"eval_nice"`

	// Scanning
	Workers   int `toml:"workers"`
	RatingMin int `toml:"rating_min"`

	// Catalogs
	EcoDir string `toml:"eco_dir"`

	// Server
	Addr string `toml:"addr"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:    "info",
		EvalDepth:   20,
		EvalHash:    256,
		EvalThreads: 1,
		Addr:        ":8007",
	}
}

// Load reads path, or the XDG config file when path is empty, over the
// defaults and then applies environment overrides. A missing XDG file is
// not an error. It returns the file actually read, or "".
func Load(path string) (Config, string, error) {
	cfg := Default()
	if path == "" {
		if found, err := xdg.SearchConfigFile(RelPath); err == nil {
			path = found
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, "", fmt.Errorf("config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("STOCKFISH_PATH"); v != "" {
		c.Stockfish = v
	}
	if v := getenv("MOVETREE_STOCKFISH"); v != "" {
		c.Stockfish = v
	}
	if v := getenv("MOVETREE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("MOVETREE_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("MOVETREE_WORKERS: invalid value %q", v)
		}
		c.Workers = n
	}
	return nil
}
