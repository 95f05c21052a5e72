package config

import (
	_ "embed"
)

//go:embed defaults/eggflight.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration.
// It mirrors defaults/eggflight.yaml and is used when the embedded file cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Field: FieldConfig{
			Width:       1600,
			Height:      900,
			FloorHeight: 100,
		},
		Character: CharacterConfig{
			X:                400,
			Width:            60,
			Height:           60,
			AscentTicks:      32,
			ClimbStep:        5,
			CeilingMargin:    5,
			FlapAngle:        -45,
			RotationStep:     3,
			MaxNoseDown:      80,
			FallStart:        -1,
			FallAcceleration: 1.1112,
			MaxFallSpeed:     15,
			AnimationFrames:  4,
			TicksPerFrame:    4,
		},
		Obstacles: ObstacleConfig{
			Segments:      10,
			SegmentWidth:  75,
			SegmentHeight: 100,
			GapHeight:     180,
			MinGapSlot:    1,
			MaxGapSlot:    4,
			Speed:         9,
			SpawnDivisor:  21,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionScore,
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 30,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
