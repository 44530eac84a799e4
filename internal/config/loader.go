package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "life.yaml"

// Load loads the simulator configuration.
// Search order: customPath -> ~/.life/configs/life.yaml -> ./configs/life.yaml -> embedded default.
// Fields missing from a file keep their default values. The result is normalized.
func Load(customPath string) (LifeConfig, error) {
	return load(customPath, userConfigPath(configFile), filepath.Join("configs", configFile))
}

func load(customPath string, searchPaths ...string) (LifeConfig, error) {
	// Try custom path first; errors here are reported, not skipped
	if customPath != "" {
		cfg, err := parseFile(customPath)
		if err != nil {
			return DefaultLifeConfig(), err
		}
		return cfg, nil
	}

	for _, path := range searchPaths {
		if path == "" {
			continue
		}
		if cfg, err := parseFile(path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultLifeYAML)
	if err != nil {
		return DefaultLifeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseFile(path string) (LifeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LifeConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return LifeConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and normalizes the result.
func Parse(data []byte) (LifeConfig, error) {
	cfg := DefaultLifeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".life", "configs", filename)
}
