package core

// RuntimeConfig contains configuration passed to the presenter at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second of the presenter loop
	Seed     int64 // RNG seed, 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// BoardFit returns the board size that fits a screen of the given size,
// leaving reserved rows for the status bar.
func BoardFit(screenW, screenH, reserved int) (cols, rows int) {
	return screenW, screenH - reserved
}
