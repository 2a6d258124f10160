package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds one run's resolved settings. The required inputs come from
// flags only; the ambient settings take their defaults from the JPICK_*
// environment and may be overridden per run by flags.
type Config struct {
	// File is the input JSON filename, resolved relative to BaseDir.
	File string `env:"-"`
	// KeyCount is the expected number of keys (-n).
	KeyCount int `env:"-"`
	// Keys is the raw comma-separated key list (-k).
	Keys string `env:"-"`
	// CSV selects CSV output instead of JSON (-c).
	CSV bool `env:"-"`

	// BaseDir is the directory the input filename is resolved against.
	// Empty means the directory holding the running executable.
	BaseDir string `env:"JPICK_DIR"`
	// OutDir is the directory the fixed-name output file is written to.
	OutDir string `env:"JPICK_OUTPUT_DIR" envDefault:"."`

	LogLevel  string `env:"JPICK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"JPICK_LOG_FORMAT" envDefault:"text"`
}

// envConfig returns a Config populated from the environment, for use as flag
// defaults.
func envConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// resolveBaseDir fills an empty BaseDir with the running executable's
// directory, preserving program-relative input resolution.
func (c *Config) resolveBaseDir() error {
	if c.BaseDir != "" {
		return nil
	}
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	c.BaseDir = filepath.Dir(exe)
	return nil
}
