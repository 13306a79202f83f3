package core

// RuntimeConfig contains the parameters the demo is initialized with.
type RuntimeConfig struct {
	Viewport Viewport // Drawable area in pixels
	PlayerW  int      // Sprite width in pixels
	PlayerH  int      // Sprite height in pixels
	Speed    int      // Pixels moved per tick per held key
}

// DefaultConfig returns a RuntimeConfig for an 800x600 window with a
// 32x32 sprite moving 4 pixels per tick.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Viewport: Viewport{W: 800, H: 600},
		PlayerW:  32,
		PlayerH:  32,
		Speed:    4,
	}
}
