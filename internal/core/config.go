package core

// RuntimeConfig holds the process-level settings of a session. The play field
// itself is configured separately; the screen size only decides how it is
// scaled onto the terminal.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Ticks per second, one frame per tick
	Seed     int64 // RNG seed; 0 asks the caller to pick one from the clock
}

// DefaultConfig returns an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
