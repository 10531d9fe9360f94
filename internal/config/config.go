package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "LIFERPG_"

// Config holds the few tunables the tool has. Everything defaults sensibly;
// a config file is optional.
type Config struct {
	Data struct {
		// Path to the sqlite profile database. Empty means ~/.liferpg.db.
		Path string `koanf:"path"`
	} `koanf:"data"`

	Income struct {
		// Seed values for a fresh profile only; an existing profile keeps
		// whatever it was created with.
		MonthlyGoal int    `koanf:"monthlygoal"`
		TargetMonth string `koanf:"targetmonth"`
	} `koanf:"income"`
}

// DefaultPath returns the default config file location (~/.liferpg.yaml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".liferpg.yaml"), nil
}

// Load reads the optional yaml config file and LIFERPG_* environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	// LIFERPG_DATA_PATH -> data.path
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.TrimPrefix(key, envPrefix)
			key = strings.ReplaceAll(strings.ToLower(key), "_", ".")
			return key, value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("read env config: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
