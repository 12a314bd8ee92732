package config

// Layout places the fixed parts of the playfield.
type Layout struct {
	Width  int
	Height int

	PlayerStartX float64
	PlayerStartY float64

	JarX      float64
	JarY      float64
	JarWidth  int
	JarHeight int
}

// DefaultLayout centers the player and puts the jar against the right edge.
func DefaultLayout() Layout {
	return Layout{
		Width:        C.Width,
		Height:       C.Height,
		PlayerStartX: float64(C.Width-Player.FrameWidth) / 2,
		PlayerStartY: float64(C.Height-Player.FrameHeight) / 2,
		JarX:         float64(C.Width - Jar.Width - Jar.RightMargin),
		JarY:         float64(C.Height-Jar.Height) / 2,
		JarWidth:     Jar.Width,
		JarHeight:    Jar.Height,
	}
}
