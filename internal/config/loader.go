package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configName is the base name searched for in config directories.
const configName = "rekt"

// LoadRekt loads Rekt Runner configuration.
// Search order: customPath -> ~/.rekt/configs/rekt.{yaml,toml} ->
// ./configs/rekt.{yaml,toml} -> embedded default.
// Files only need to set the keys they change; everything else keeps its
// default value.
func LoadRekt(customPath string) (RektConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, dir := range searchDirs() {
		for _, ext := range []string{".yaml", ".yml", ".toml"} {
			path := filepath.Join(dir, configName+ext)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg := DefaultRektConfig()
	if err := yaml.Unmarshal(defaultRektYAML, &cfg); err != nil {
		return DefaultRektConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes a single config file over the defaults.
// The format is chosen by extension: .toml uses TOML, anything else YAML.
func loadFile(path string) (RektConfig, error) {
	cfg := DefaultRektConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// searchDirs lists the config directories in priority order.
func searchDirs() []string {
	dirs := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".rekt", "configs"))
	}
	return append(dirs, "configs")
}
