// Package config provides YAML-based game configuration loading,
// environment overrides and difficulty management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// GameConfig contains all configuration for the game.
// Distances are in play-field pixels, durations in ticks.
type GameConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Character  CharacterConfig  `yaml:"character"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the play field.
type FieldConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	FloorHeight int `yaml:"floor_height"`
}

// CharacterConfig defines the egg's hitbox and kinematics.
type CharacterConfig struct {
	X      int `yaml:"x"` // Fixed horizontal position
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	AscentTicks   int `yaml:"ascent_ticks"`   // Flight budget granted by a flap
	ClimbStep     int `yaml:"climb_step"`     // Pixels climbed per ascending tick
	CeilingMargin int `yaml:"ceiling_margin"` // No climbing at or above this Y

	FlapAngle    float64 `yaml:"flap_angle"`    // Nose-up rotation while ascending
	RotationStep float64 `yaml:"rotation_step"` // Nose-down degrees added per falling tick
	MaxNoseDown  float64 `yaml:"max_nose_down"`

	FallStart        float64 `yaml:"fall_start"`        // Budget set at the apex, must be negative
	FallAcceleration float64 `yaml:"fall_acceleration"` // Multiplier applied to the budget while falling
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`    // Terminal budget magnitude

	AnimationFrames int `yaml:"animation_frames"`
	TicksPerFrame   int `yaml:"ticks_per_frame"`
}

// ObstacleConfig defines the pipes.
type ObstacleConfig struct {
	Segments      int `yaml:"segments"`       // Vertical segments per pipe, one of them is the gap
	SegmentWidth  int `yaml:"segment_width"`  // Hitbox width of a solid segment
	SegmentHeight int `yaml:"segment_height"` // Hitbox height of a solid segment
	GapHeight     int `yaml:"gap_height"`     // Height of the passable gap
	MinGapSlot    int `yaml:"min_gap_slot"`
	MaxGapSlot    int `yaml:"max_gap_slot"`
	Speed         int `yaml:"speed"`         // Pixels per tick
	SpawnDivisor  int `yaml:"spawn_divisor"` // Spawn interval is field width / divisor
}

// SpawnInterval returns the number of ticks between two spawns for a field width.
func (o ObstacleConfig) SpawnInterval(fieldWidth int) int {
	if o.SpawnDivisor <= 0 {
		return fieldWidth
	}
	return fieldWidth / o.SpawnDivisor
}

// GroundLine returns the lowest Y the character can occupy before touching the floor.
func (c GameConfig) GroundLine() int {
	return c.Field.Height - c.Field.FloorHeight - c.Character.Height
}

// Validate checks the configuration for values the simulation cannot run with.
// All problems are reported at once.
func (c GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	f, ch, ob := c.Field, c.Character, c.Obstacles

	check(f.Width > 0, "field.width must be positive, got %d", f.Width)
	check(f.Height > 0, "field.height must be positive, got %d", f.Height)
	check(f.FloorHeight >= 0 && f.FloorHeight < f.Height, "field.floor_height must be in [0, %d), got %d", f.Height, f.FloorHeight)

	check(ch.X >= 0 && ch.X < f.Width, "character.x must be inside the field, got %d", ch.X)
	check(ch.Width > 0 && ch.Height > 0, "character hitbox must be positive, got %dx%d", ch.Width, ch.Height)
	check(c.GroundLine() > 0, "character does not fit above the floor")
	check(ch.AscentTicks > 0, "character.ascent_ticks must be positive, got %d", ch.AscentTicks)
	check(ch.ClimbStep >= 0, "character.climb_step must not be negative, got %d", ch.ClimbStep)
	check(ch.FallStart < 0, "character.fall_start must be negative, got %v", ch.FallStart)
	check(ch.FallAcceleration >= 1, "character.fall_acceleration must be at least 1, got %v", ch.FallAcceleration)
	check(ch.MaxFallSpeed > 0, "character.max_fall_speed must be positive, got %v", ch.MaxFallSpeed)
	check(ch.RotationStep >= 0, "character.rotation_step must not be negative, got %v", ch.RotationStep)
	check(ch.AnimationFrames > 0, "character.animation_frames must be positive, got %d", ch.AnimationFrames)
	check(ch.TicksPerFrame > 0, "character.ticks_per_frame must be positive, got %d", ch.TicksPerFrame)

	check(ob.Segments >= 2, "obstacles.segments must be at least 2, got %d", ob.Segments)
	check(ob.SegmentWidth > 0 && ob.SegmentHeight > 0, "obstacle segment must be positive, got %dx%d", ob.SegmentWidth, ob.SegmentHeight)
	check(ob.GapHeight > 0, "obstacles.gap_height must be positive, got %d", ob.GapHeight)
	check(ob.MinGapSlot >= 0 && ob.MinGapSlot <= ob.MaxGapSlot && ob.MaxGapSlot < ob.Segments,
		"obstacle gap slots must satisfy 0 <= min <= max < segments, got [%d, %d] of %d", ob.MinGapSlot, ob.MaxGapSlot, ob.Segments)
	check(ob.Speed > 0, "obstacles.speed must be positive, got %d", ob.Speed)
	check(ob.SpawnDivisor > 0 && ob.SpawnInterval(f.Width) > 0, "obstacles.spawn_divisor must yield a positive interval, got %d", ob.SpawnDivisor)

	check(c.Difficulty.InitialLevel >= 0 && c.Difficulty.InitialLevel <= 1, "difficulty.initial_level must be in [0, 1], got %v", c.Difficulty.InitialLevel)
	switch c.Difficulty.Progression.Type {
	case "", ProgressionNone, ProgressionScore, ProgressionTime:
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of score, time, none", c.Difficulty.Progression.Type))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// Progression types.
const (
	ProgressionScore = "score"
	ProgressionTime  = "time"
	ProgressionNone  = "none"
)

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to pipe speed at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string is accepted and means
// "keep whatever the config file says".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q (want easy, normal, hard or fixed)", name)
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
