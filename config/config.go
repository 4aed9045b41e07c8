// Package config loads settings from defaults, an optional config file, and
// the environment, in that order of precedence (last wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultPath is read if it exists. YAML is a superset of JSON, so a
	// plain {"token": "..."} file works.
	DefaultPath = "config.json"

	// PathEnvVar overrides DefaultPath.
	PathEnvVar = "CURATORATOR_CONFIG"

	// EnvPrefix starts every environment override, like CURATORATOR_TOKEN
	// or CURATORATOR_LOG_LEVEL.
	EnvPrefix = "CURATORATOR_"
)

// Config holds every setting the program reads.
type Config struct {
	// Token is sent with every API request. It is not checked here: a
	// missing or bad token shows up as a failed fetch.
	Token string `koanf:"token"`

	APIRoot string `koanf:"api_root" validate:"required,url"`
	Accept  string `koanf:"accept" validate:"required"`

	GenePageSize   int     `koanf:"gene_page_size" validate:"min=1"`
	SimilarCount   int     `koanf:"similar_count" validate:"min=1,max=100"`
	SimilarityType string  `koanf:"similarity_type" validate:"required"`
	MinSimilarity  float64 `koanf:"min_similarity" validate:"gt=0,lte=1"`
	MinThemeCount  int     `koanf:"min_theme_count" validate:"min=1"`

	Log Log `koanf:"log"`
}

// Log configures logging.
type Log struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=console json"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		APIRoot:        "https://api.artsy.net/api",
		Accept:         "application/vnd.artsy-v2+json",
		GenePageSize:   100,
		SimilarCount:   100,
		SimilarityType: "contemporary",
		MinSimilarity:  0.1,
		MinThemeCount:  10,
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// Path returns the config file to read: $CURATORATOR_CONFIG, or DefaultPath.
func Path() string {
	if path := os.Getenv(PathEnvVar); path != "" {
		return path
	}
	return DefaultPath
}

// Load reads the config file at path, if there is one, and then the
// environment, on top of the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("error loading config defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("error loading config file '%s': %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error checking for config file '%s': %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("error loading config from environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// envKey maps CURATORATOR_LOG_LEVEL to log.level and CURATORATOR_API_ROOT to
// api_root: only the log section is nested.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "log_"); ok {
		return "log." + rest
	}
	return key
}
