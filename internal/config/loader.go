package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSpaceJump loads SpaceJump configuration.
// Search order: customPath -> ~/.arcade/configs/spacejump.yaml -> ./configs/spacejump.yaml -> embedded default
func LoadSpaceJump(customPath string) (SpaceJumpConfig, error) {
	return load("spacejump", customPath, DefaultSpaceJumpConfig)
}

// LoadSpaceRace loads SpaceRace configuration.
// Search order: customPath -> ~/.arcade/configs/spacerace.yaml -> ./configs/spacerace.yaml -> embedded default
func LoadSpaceRace(customPath string) (SpaceRaceConfig, error) {
	cfg, err := load("spacerace", customPath, DefaultSpaceRaceConfig)
	if err != nil {
		return cfg, err
	}
	if cfg.Track.Right-cfg.Track.Left < cfg.Racer.Size {
		return cfg, fmt.Errorf("config: spacerace track is narrower than a racer (%v < %v)",
			cfg.Track.Right-cfg.Track.Left, cfg.Racer.Size)
	}
	return cfg, nil
}

// load decodes a game's YAML on top of its hard-coded defaults, so a file
// only needs the keys it overrides. An explicit path must exist and parse;
// the implicit locations are skipped when missing or broken.
func load[T any](gameID, customPath string, defaults func() T) (T, error) {
	cfg := defaults()
	filename := gameID + ".yaml"

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		parsed := defaults()
		if err := yaml.Unmarshal(data, &parsed); err == nil {
			return parsed, nil
		}
	}

	if embedded := GetDefaultYAML(gameID); embedded != nil {
		if err := yaml.Unmarshal(embedded, &cfg); err != nil {
			return defaults(), nil
		}
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
