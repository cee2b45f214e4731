package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSki loads the ski game configuration.
// Search order: customPath -> ~/.ski/configs/ski.yaml -> ./configs/ski.yaml -> embedded default
func LoadSki(customPath string) (SkiConfig, error) {
	var cfg SkiConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("ski.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/ski.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSkiYAML, &cfg); err != nil {
		return DefaultSkiConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ski", "configs", filename)
}

// ApplySkiPreset modifies the config based on a difficulty preset.
// "fixed" freezes the difficulty curve at tier 0; the named presets shift
// the baseline while keeping depth progression enabled.
func ApplySkiPreset(cfg *SkiConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.World.BaseDensity *= 0.75
		cfg.Yeti.SpawnChance *= 0.5
		cfg.Yeti.TopSpeed *= 0.9
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.World.BaseDensity *= 1.3
		cfg.Yeti.SpawnChance *= 2
		cfg.Yeti.BaseSpeed *= 1.1
		cfg.Yeti.TopSpeed *= 1.1
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	}
}
