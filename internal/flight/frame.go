package flight

import (
	"fmt"

	"github.com/vovakirdan/egg-flight/internal/core"
)

// ImageID names an image the presenter knows how to draw.
type ImageID int

const (
	ImageSun       ImageID = iota // Sky backdrop at the top of the field
	ImageFloor                    // Ground strip along the bottom
	ImagePipe                     // One solid pipe segment
	ImageOverlay                  // Translucent panel behind the game-over text
	ImageCharacter                // Sprite sheet, drawn through a clip
	ImageText                     // Rendered string, see DrawCommand.Text
)

// String returns a human-readable name for the image.
func (id ImageID) String() string {
	switch id {
	case ImageSun:
		return "sun"
	case ImageFloor:
		return "floor"
	case ImagePipe:
		return "pipe"
	case ImageOverlay:
		return "overlay"
	case ImageCharacter:
		return "character"
	case ImageText:
		return "text"
	default:
		return "unknown"
	}
}

// Anchor tells the presenter which point of the image X and Y refer to.
// Text is anchored because only the presenter knows its rendered size.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorCenter
	AnchorTopRight
)

// RGB is an opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ClearColor is the background the presenter fills before drawing.
var ClearColor = RGB{R: 0xFF, G: 0xAE, B: 0xC9}

// TextColor is used for every text command.
var TextColor = RGB{R: 0x00, G: 0x00, B: 0x00}

// overlayAlpha is the opacity of the game-over panel.
const overlayAlpha = 0xA0

// hudMargin is the distance of the score text from the top-right corner.
const hudMargin = 20

// DrawCommand is one draw operation in play-field pixel coordinates.
type DrawCommand struct {
	Image  ImageID
	X, Y   int
	Clip   *core.Rect // Source rectangle within the image, nil for the whole image
	Angle  float64    // Clockwise rotation in degrees
	Flip   bool       // Mirror horizontally
	Alpha  uint8      // Opacity override, 0 leaves the image opaque
	Text   string     // Only for ImageText
	Anchor Anchor
}

// Frame is everything the presenter needs to draw one tick.
type Frame struct {
	Width, Height int // Play field size in pixels
	Clear         RGB
	Commands      []DrawCommand
	Phase         Phase
	Score         int
}

// SpriteClip returns the source rectangle of an animation frame within the
// character sprite sheet, which lays frames out two per row.
func SpriteClip(frame, w, h int) core.Rect {
	return core.NewRect((frame%2)*w, (frame/2)*h, w, h)
}

// Intro and game-over messages.
const introText = "Press Enter to start flying, or Esc to exit. Up or Space flaps."

func gameOverText(score, best int) string {
	return fmt.Sprintf("You reached %d points (best %d). Press Enter to restart, or Esc to exit.", score, best)
}

func hudText(score int) string {
	return fmt.Sprintf("Points: %d", score)
}

// Frame builds the draw list for the current state.
func (g *Game) Frame() Frame {
	s := &g.state
	f := Frame{
		Width:  g.cfg.Field.Width,
		Height: g.cfg.Field.Height,
		Clear:  ClearColor,
		Phase:  s.Phase,
		Score:  s.Score,
	}

	if s.Phase == PhaseIntro {
		f.Commands = append(f.Commands, DrawCommand{
			Image:  ImageText,
			X:      f.Width / 2,
			Y:      f.Height / 2,
			Text:   introText,
			Anchor: AnchorCenter,
		})
		return f
	}

	f.Commands = append(f.Commands, DrawCommand{Image: ImageSun})

	for _, o := range s.Obstacles.Active() {
		for _, seg := range s.Obstacles.Segments(o) {
			f.Commands = append(f.Commands, DrawCommand{Image: ImagePipe, X: seg.X, Y: seg.Y})
		}
	}

	f.Commands = append(f.Commands,
		DrawCommand{
			Image:  ImageText,
			X:      f.Width - hudMargin,
			Y:      hudMargin / 2,
			Text:   hudText(s.Score),
			Anchor: AnchorTopRight,
		},
		DrawCommand{Image: ImageFloor, Y: f.Height - g.cfg.Field.FloorHeight},
	)

	clip := SpriteClip(s.Character.AnimationFrame(), g.cfg.Character.Width, g.cfg.Character.Height)
	f.Commands = append(f.Commands, DrawCommand{
		Image: ImageCharacter,
		X:     g.cfg.Character.X,
		Y:     s.Character.Y,
		Clip:  &clip,
		Angle: s.Character.Rotation,
	})

	if s.Phase == PhaseGameOver {
		f.Commands = append(f.Commands,
			DrawCommand{
				Image:  ImageOverlay,
				X:      f.Width / 2,
				Y:      f.Height / 2,
				Alpha:  overlayAlpha,
				Anchor: AnchorCenter,
			},
			DrawCommand{
				Image:  ImageText,
				X:      f.Width / 2,
				Y:      f.Height / 2,
				Text:   gameOverText(s.Score, g.best),
				Anchor: AnchorCenter,
			},
		)
	}

	return f
}
