// Package config loads scratchcards settings from defaults, an optional YAML
// file, SCRATCHCARDS_* environment variables and command line flags, in
// increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	DefaultFile   = "scratchcards.yaml"
	DefaultOutput = "text"
	envPrefix     = "SCRATCHCARDS_"
)

type Config struct {
	// Input is a path to the cards file, "-" or empty means stdin.
	Input     string `koanf:"input"`
	Example   bool   `koanf:"example"`
	Output    string `koanf:"output"`
	Breakdown bool   `koanf:"breakdown"`
	Verbose   bool   `koanf:"verbose"`

	// FileUsed is the config file that was actually read, if any.
	FileUsed string `koanf:"-"`
}

// Load builds a Config. An explicit cfgFile must exist; otherwise
// scratchcards.yaml in the working directory is read when present.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"input":     "",
		"example":   false,
		"output":    DefaultOutput,
		"breakdown": false,
		"verbose":   false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	fileUsed := cfgFile
	if fileUsed == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			fileUsed = DefaultFile
		}
	}
	if fileUsed != "" {
		if err := k.Load(file.Provider(fileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", fileUsed, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.FileUsed = fileUsed
	return &cfg, nil
}
