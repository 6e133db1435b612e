package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/maisem/aoc2023"
)

const envPrefix = "AOC_"

// config holds the settings that can come from the environment as well
// as from flags.
type config struct {
	BaseDir  string `koanf:"base_dir"`  // holds input/ and output/; default working directory
	LogLevel string `koanf:"log_level"` // debug, info, warn or error
	Runs     int    `koanf:"runs"`
	NoBanner bool   `koanf:"no_banner"`

	Level log.Level `koanf:"-"` // parsed LogLevel
}

func defaultConfig() config {
	return config{
		LogLevel: "info",
		Runs:     1,
	}
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"dir":       "base_dir",
	"log-level": "log_level",
	"runs":      "runs",
	"no-banner": "no_banner",
}

// loadConfig layers defaults, AOC_* environment variables from environ and
// explicitly set flags, in increasing order of precedence.
func loadConfig(flags *pflag.FlagSet, environ func() []string) (config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return config{}, fmt.Errorf("failed to load defaults: %w", err)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
		},
		EnvironFunc: environ,
	}), nil); err != nil {
		return config{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	var setErr error
	flags.Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && setErr == nil {
			setErr = k.Set(key, f.Value.String())
		}
	})
	if setErr != nil {
		return config{}, fmt.Errorf("failed to apply flags: %w", setErr)
	}

	var cfg config
	if err := k.Unmarshal("", &cfg); err != nil {
		return config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	// afero.BasePathFs needs an absolute base to resolve paths under ".".
	dir, err := filepath.Abs(aoc.Or(cfg.BaseDir, "."))
	if err != nil {
		return config{}, fmt.Errorf("cannot determine working directory: %w", err)
	}
	cfg.BaseDir = dir
	return cfg, nil
}

// validate checks c and sets Level from LogLevel.
func (c *config) validate() error {
	if c.Runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", c.Runs)
	}
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("bad log level %q: %w", c.LogLevel, err)
	}
	c.Level = level
	return nil
}
