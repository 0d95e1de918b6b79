// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import "time"

// WorldConfig sets the logical play field size in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpaceJumpConfig contains all configuration for the SpaceJump shooter.
type SpaceJumpConfig struct {
	World       WorldConfig      `yaml:"world"`
	Player      JumpPlayer       `yaml:"player"`
	Enemies     JumpEnemies      `yaml:"enemies"`
	Blocks      FallingConfig    `yaml:"blocks"`
	Stars       FallingConfig    `yaml:"stars"`
	Scoring     JumpScoring      `yaml:"scoring"`
	HitboxScale float64          `yaml:"hitbox_scale"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// JumpPlayer defines the player ship and its auto-fire.
type JumpPlayer struct {
	Size           float64 `yaml:"size"`
	Speed          float64 `yaml:"speed"`
	BottomMargin   float64 `yaml:"bottom_margin"`
	FireIntervalMs int     `yaml:"fire_interval_ms"`
	BulletSpeed    float64 `yaml:"bullet_speed"`
	BulletSize     float64 `yaml:"bullet_size"`
}

// JumpEnemies defines enemy ships and their return fire.
type JumpEnemies struct {
	Size            float64 `yaml:"size"`
	Speed           float64 `yaml:"speed"`
	Health          int     `yaml:"health"`
	SpawnIntervalMs int     `yaml:"spawn_interval_ms"`
	FireIntervalMs  int     `yaml:"fire_interval_ms"`
	BulletSpeed     float64 `yaml:"bullet_speed"`
	BulletSize      float64 `yaml:"bullet_size"`
}

// FallingConfig defines a category of objects falling from the top edge.
type FallingConfig struct {
	Size            float64 `yaml:"size"`
	Speed           float64 `yaml:"speed"`
	SpawnIntervalMs int     `yaml:"spawn_interval_ms"`
}

// JumpScoring defines points per event.
type JumpScoring struct {
	Star int `yaml:"star"`
	Kill int `yaml:"kill"`
}

// SpaceRaceConfig contains all configuration for the SpaceRace game.
type SpaceRaceConfig struct {
	World       WorldConfig      `yaml:"world"`
	Track       RaceTrack        `yaml:"track"`
	Racer       RaceRacer        `yaml:"racer"`
	Player      RaceEntrant      `yaml:"player"`
	AI          []RaceEntrant    `yaml:"ai"`
	Countdown   int              `yaml:"countdown"`
	HitboxScale float64          `yaml:"hitbox_scale"`
	ScoreBands  []int            `yaml:"score_bands"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// RaceTrack defines the track layout. Racers start at Length and race
// toward the finish line at 0.
type RaceTrack struct {
	Length          float64 `yaml:"length"`
	Left            float64 `yaml:"left"`
	Right           float64 `yaml:"right"`
	StartClearance  float64 `yaml:"start_clearance"`
	FinishClearance float64 `yaml:"finish_clearance"`
	Obstacles       int     `yaml:"obstacles"`
	ObstacleSize    float64 `yaml:"obstacle_size"`
	ObstacleGap     float64 `yaml:"obstacle_gap"`
}

// RaceRacer defines the handling shared by every racer.
type RaceRacer struct {
	Size            float64 `yaml:"size"`
	CruiseSpeed     float64 `yaml:"cruise_speed"`
	MinSpeed        float64 `yaml:"min_speed"`
	MaxSpeed        float64 `yaml:"max_speed"`
	Acceleration    float64 `yaml:"acceleration"`
	SteerSpeed      float64 `yaml:"steer_speed"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
	BoostMs         int     `yaml:"boost_ms"`
	BoostCooldownMs int     `yaml:"boost_cooldown_ms"`
}

// RaceEntrant identifies one racer. Skill scales an AI racer's cruise
// speed; Lookahead is how far ahead it watches for obstacles.
type RaceEntrant struct {
	Name      string  `yaml:"name"`
	Glyph     string  `yaml:"glyph"`
	Color     string  `yaml:"color"`
	Skill     float64 `yaml:"skill"`
	Lookahead float64 `yaml:"lookahead"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/frames at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string selects normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset adjusts a difficulty block for a preset.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Enabled = false
		return
	}
	cfg.Enabled = true
	cfg.InitialLevel = InitialLevelForPreset(preset)
}

// Millis converts a millisecond config value to a duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
