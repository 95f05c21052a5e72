package core

// Color is the foreground color of a screen cell. The presenter maps each
// value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault      Color = iota // Terminal foreground
	ColorGreen                     // Pipes
	ColorBrightYellow              // Sun
	ColorBrightWhite               // Egg
	ColorOrange                    // Floor and beak
	ColorBlack                     // Text
)
