package flight

import (
	"github.com/vovakirdan/egg-flight/internal/config"
	"github.com/vovakirdan/egg-flight/internal/core"
)

// Overlaps reports whether an obstacle box and the character box collide.
// Touching edges count as a collision.
func Overlaps(obstacle, character core.Rect) bool {
	return obstacle.Touches(character)
}

// CharacterBox returns the hitbox of a character at vertical position y.
func CharacterBox(cfg config.CharacterConfig, y int) core.Rect {
	return core.NewRect(cfg.X, y, cfg.Width, cfg.Height)
}
