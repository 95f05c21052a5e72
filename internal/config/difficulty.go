package config

import "math"

// Lower bounds that keep the game playable at maximum difficulty.
const (
	minSpawnInterval = 20
	maxSpeedFactor   = 4.0
)

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		progress = float64(score) / maxAt
	case ProgressionTime:
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the pipe speed in pixels per tick.
// With progression disabled the base speed is returned unchanged.
func (d *DifficultyManager) Speed(baseSpeed int, score int, ticks int) int {
	if !d.cfg.Enabled {
		return baseSpeed
	}
	level := d.Level(score, ticks)
	factor := clampF(1.0+level*d.cfg.Scaling.SpeedMultiplier, 1.0, maxSpeedFactor)
	return int(math.Round(float64(baseSpeed) * factor))
}

// SpawnInterval returns the number of ticks between pipe spawns.
// With progression disabled the base interval is returned unchanged.
func (d *DifficultyManager) SpawnInterval(baseInterval int, score int, ticks int) int {
	if !d.cfg.Enabled {
		return baseInterval
	}
	level := d.Level(score, ticks)
	reduction := int(level * float64(d.cfg.Scaling.IntervalReduction))
	result := baseInterval - reduction
	if result < minSpawnInterval {
		result = min(minSpawnInterval, baseInterval)
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
