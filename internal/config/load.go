package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// matches $(VAR_NAME)
var envPattern = regexp.MustCompile(`\$\(([A-Za-z0-9_]+)\)`)

// replaces $(VAR) with os.Getenv(VAR)
func expandEnvVars(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(m string) string {
		key := envPattern.FindStringSubmatch(m)[1]
		return os.Getenv(key)
	})
}

// Load reads the YAML config file, expands $(ENV_VAR) placeholders,
// applies defaults, and loads the include/exclude path lists.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}

	applyDefaults(&cfg)

	// A missing list file is left for Validate to report alongside
	// everything else wrong with the config.
	if cfg.IncludeFrom != "" {
		cfg.Include, err = LoadPathList(cfg.IncludeFrom)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading include list: %w", err)
		}
	}
	if cfg.ExcludeFrom != "" {
		cfg.Exclude, err = LoadPathList(cfg.ExcludeFrom)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading exclude list: %w", err)
		}
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.ArchiveRoot == "" {
		cfg.ArchiveRoot = string(os.PathSeparator)
	}
	if cfg.TarBin == "" {
		cfg.TarBin = "tar"
	}
}
