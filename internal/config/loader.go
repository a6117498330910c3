package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the config directories.
const FileName = "textris.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.textris/configs/textris.yaml -> ./configs/textris.yaml -> embedded default
//
// An explicit customPath must exist and be valid. Broken files in the
// implicit locations are skipped.
func Load(customPath string) (TextrisConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TextrisConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return TextrisConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := Parse(defaultTextrisYAML); err == nil {
		return cfg, nil
	}
	return DefaultTextrisConfig(), nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
// Fields missing from data keep their default values; a weights table, when
// present, replaces the default one entirely.
func Parse(data []byte) (TextrisConfig, error) {
	cfg := DefaultTextrisConfig()
	cfg.Letters.Weights = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TextrisConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Letters.Weights == nil {
		cfg.Letters.Weights = DefaultTextrisConfig().Letters.Weights
	}
	if err := cfg.Validate(); err != nil {
		return TextrisConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".textris", "configs", filename)
}
