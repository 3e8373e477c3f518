package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/junseok-oh/cloudquote/pkg/utils"
)

// Config holds runtime settings loaded from an optional YAML file.
// Every field has a default, so a missing file or an empty file is fine.
type Config struct {
	DefaultRegion   string `yaml:"default_region"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	LogLevel        string `yaml:"log_level"`
}

// Default returns the configuration used when no file is provided.
func Default() Config {
	return Config{
		DefaultRegion:   utils.DefaultRegion,
		CacheTTLSeconds: 3600,
		LogLevel:        "info",
	}
}

// Load reads the YAML file at path and merges it over the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if file.DefaultRegion != "" {
		if region, ok := utils.NormalizeRegion(file.DefaultRegion); ok {
			cfg.DefaultRegion = region
		} else {
			return cfg, fmt.Errorf("unknown default_region %q in %s", file.DefaultRegion, path)
		}
	}
	if file.CacheTTLSeconds > 0 {
		cfg.CacheTTLSeconds = file.CacheTTLSeconds
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}

	return cfg, nil
}

// CacheTTL returns the cache lifetime as a duration.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
