package config

import (
	_ "embed"
)

//go:embed defaults/spacejump.yaml
var defaultSpaceJumpYAML []byte

//go:embed defaults/spacerace.yaml
var defaultSpaceRaceYAML []byte

// DefaultSpaceJumpConfig returns the built-in SpaceJump configuration.
func DefaultSpaceJumpConfig() SpaceJumpConfig {
	return SpaceJumpConfig{
		World: WorldConfig{Width: 800, Height: 600},
		Player: JumpPlayer{
			Size:           50,
			Speed:          6,
			BottomMargin:   20,
			FireIntervalMs: 350,
			BulletSpeed:    10,
			BulletSize:     8,
		},
		Enemies: JumpEnemies{
			Size:            40,
			Speed:           1.5,
			Health:          3,
			SpawnIntervalMs: 2000,
			FireIntervalMs:  1500,
			BulletSpeed:     5,
			BulletSize:      8,
		},
		Blocks:      FallingConfig{Size: 50, Speed: 3, SpawnIntervalMs: 1000},
		Stars:       FallingConfig{Size: 20, Speed: 2, SpawnIntervalMs: 1500},
		Scoring:     JumpScoring{Star: 10, Kill: 50},
		HitboxScale: 1.0,
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}

// DefaultSpaceRaceConfig returns the built-in SpaceRace configuration.
func DefaultSpaceRaceConfig() SpaceRaceConfig {
	return SpaceRaceConfig{
		World: WorldConfig{Width: 800, Height: 600},
		Track: RaceTrack{
			Length:          6000,
			Left:            120,
			Right:           680,
			StartClearance:  400,
			FinishClearance: 150,
			Obstacles:       36,
			ObstacleSize:    50,
			ObstacleGap:     30,
		},
		Racer: RaceRacer{
			Size:            40,
			CruiseSpeed:     4,
			MinSpeed:        2,
			MaxSpeed:        6,
			Acceleration:    0.15,
			SteerSpeed:      5,
			BoostMultiplier: 1.6,
			BoostMs:         1500,
			BoostCooldownMs: 4000,
		},
		Player: RaceEntrant{Name: "You", Glyph: "A", Color: "bright_green"},
		AI: []RaceEntrant{
			{Name: "Nova", Glyph: "N", Color: "cyan", Skill: 1.05, Lookahead: 220},
			{Name: "Orion", Glyph: "O", Color: "magenta", Skill: 1.0, Lookahead: 160},
			{Name: "Vega", Glyph: "V", Color: "orange", Skill: 0.95, Lookahead: 260},
		},
		Countdown:   3,
		HitboxScale: 0.7,
		ScoreBands:  []int{100, 75, 50, 25},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: "none"},
			Scaling:      ScalingConfig{SpeedMultiplier: 0.4},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "spacejump":
		return defaultSpaceJumpYAML
	case "spacerace":
		return defaultSpaceRaceYAML
	default:
		return nil
	}
}
