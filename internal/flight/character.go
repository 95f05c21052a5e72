package flight

import (
	"math"

	"github.com/vovakirdan/egg-flight/internal/config"
	"github.com/vovakirdan/egg-flight/internal/core"
)

// Regime is the kinematic mode selected by the sign of the flight budget.
type Regime int

const (
	RegimeDescending Regime = iota - 1
	RegimeApex
	RegimeAscending
)

// String returns a human-readable name for the regime.
func (r Regime) String() string {
	switch r {
	case RegimeDescending:
		return "descending"
	case RegimeApex:
		return "apex"
	case RegimeAscending:
		return "ascending"
	default:
		return "unknown"
	}
}

// Character is the player's egg. It only moves vertically; the pipes scroll.
//
// The flight budget drives everything: a flap sets it to a positive number of
// climbing ticks, reaching zero marks the apex, and below zero its magnitude is
// the falling speed in pixels per tick.
type Character struct {
	Y            int     // Top of the hitbox
	Rotation     float64 // Degrees, negative is nose-up
	FlightBudget float64

	frame   int // Animation tick counter while ascending
	cfg     config.CharacterConfig
	fieldH  int
	groundY int
}

// NewCharacter creates a character for the given play field.
func NewCharacter(cfg config.GameConfig) *Character {
	c := &Character{
		cfg:     cfg.Character,
		fieldH:  cfg.Field.Height,
		groundY: cfg.GroundLine(),
	}
	c.Reset()
	return c
}

// Reset puts the character mid-screen in the middle of a flap.
func (c *Character) Reset() {
	c.Y = (c.fieldH - c.cfg.Height) / 2
	c.frame = 0
	c.Flap()
}

// Flap restarts the climb. It may be called in any regime.
func (c *Character) Flap() {
	c.FlightBudget = float64(c.cfg.AscentTicks)
	c.Rotation = c.cfg.FlapAngle
}

// Regime returns the regime the next Tick will run.
func (c *Character) Regime() Regime {
	switch {
	case c.FlightBudget > 0:
		return RegimeAscending
	case c.FlightBudget < 0:
		return RegimeDescending
	default:
		return RegimeApex
	}
}

// Tick advances the character by one tick. It returns true when the character
// has hit the ground, in which case Y is clamped to the ground line.
func (c *Character) Tick() (grounded bool) {
	switch c.Regime() {
	case RegimeAscending:
		c.Rotation = c.cfg.FlapAngle
		c.FlightBudget--
		c.frame++
		if c.Y > c.cfg.CeilingMargin {
			c.Y -= c.cfg.ClimbStep
		}
		if c.frame/c.cfg.TicksPerFrame >= c.cfg.AnimationFrames {
			c.frame = 0
		}
		return false

	case RegimeApex:
		c.FlightBudget = c.cfg.FallStart
		c.Rotation = 0
		c.frame = 0
		return false
	}

	// Descending
	c.frame = 0
	if -c.FlightBudget < c.cfg.MaxFallSpeed {
		c.FlightBudget = math.Max(c.FlightBudget*c.cfg.FallAcceleration, -c.cfg.MaxFallSpeed)
	}
	c.Rotation = math.Min(c.Rotation+c.cfg.RotationStep, c.cfg.MaxNoseDown)

	speed := -c.FlightBudget
	if float64(c.Y)+speed > float64(c.groundY) {
		c.Y = c.groundY
		return true
	}
	c.Y += int(speed)
	return false
}

// AnimationFrame returns the sprite frame to draw, in [0, AnimationFrames).
func (c *Character) AnimationFrame() int {
	return c.frame / c.cfg.TicksPerFrame
}

// GroundLine returns the Y at which the character touches the floor.
func (c *Character) GroundLine() int {
	return c.groundY
}

// Box returns the character's hitbox at the fixed horizontal position.
func (c *Character) Box() core.Rect {
	return CharacterBox(c.cfg, c.Y)
}
