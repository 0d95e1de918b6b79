package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltIn(t *testing.T) {
	var jump SpaceJumpConfig
	if err := yaml.Unmarshal(GetDefaultYAML("spacejump"), &jump); err != nil {
		t.Fatalf("spacejump.yaml: %v", err)
	}
	if !reflect.DeepEqual(jump, DefaultSpaceJumpConfig()) {
		t.Errorf("embedded spacejump.yaml = %+v\nexpected %+v", jump, DefaultSpaceJumpConfig())
	}

	var race SpaceRaceConfig
	if err := yaml.Unmarshal(GetDefaultYAML("spacerace"), &race); err != nil {
		t.Fatalf("spacerace.yaml: %v", err)
	}
	if !reflect.DeepEqual(race, DefaultSpaceRaceConfig()) {
		t.Errorf("embedded spacerace.yaml = %+v\nexpected %+v", race, DefaultSpaceRaceConfig())
	}
}

func TestDefaultScoring(t *testing.T) {
	cfg := DefaultSpaceJumpConfig()
	if cfg.Scoring.Kill <= cfg.Scoring.Star {
		t.Errorf("kill score %d should exceed star score %d", cfg.Scoring.Kill, cfg.Scoring.Star)
	}
	if DefaultSpaceRaceConfig().HitboxScale != 0.7 {
		t.Error("race hitbox scale should default to 0.7")
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jump.yaml")
	data := []byte("scoring:\n  star: 5\nplayer:\n  speed: 9\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSpaceJump(path)
	if err != nil {
		t.Fatalf("LoadSpaceJump() error = %v", err)
	}
	if cfg.Scoring.Star != 5 || cfg.Player.Speed != 9 {
		t.Errorf("overrides not applied: star=%d speed=%v", cfg.Scoring.Star, cfg.Player.Speed)
	}
	if cfg.Scoring.Kill != 50 || cfg.Enemies.Health != 3 {
		t.Error("keys missing from the file should keep their defaults")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadSpaceJump(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSpaceRace(path); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestLoadSpaceRaceRejectsNarrowTrack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "race.yaml")
	data := []byte("track:\n  left: 100\n  right: 120\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSpaceRace(path); err == nil {
		t.Error("a track narrower than a racer should be rejected")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"hard", DifficultyHard, true},
		{"fixed", DifficultyFixed, true},
		{"insane", "", false},
	}
	for _, tc := range tests {
		got, ok := ParsePreset(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParsePreset(%q) = %q, %v; expected %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ARCADE_TEST_VALUE", "set")
	if got := GetEnv("ARCADE_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv() = %q, expected set", got)
	}
	t.Setenv("ARCADE_TEST_VALUE", "")
	if got := GetEnv("ARCADE_TEST_VALUE", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, expected fallback for empty value", got)
	}
}
