package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigDir is searched relative to the working directory.
const LocalConfigDir = "configs"

// LoadFlappy loads Flappy configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// A custom path that cannot be read, parsed or validated is an error; the
// implicit locations are skipped when broken.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := ParseFlappy(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("flappy.yaml"),
		filepath.Join(LocalConfigDir, "flappy.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := ParseFlappy(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseFlappy(GetDefaultYAML("flappy"))
	if err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// ParseFlappy decodes YAML on top of the built-in defaults, so a file only
// needs the keys it changes, and validates the result.
func ParseFlappy(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, fmt.Errorf("cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
