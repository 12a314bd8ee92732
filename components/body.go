package components

import "github.com/yohamta/donburi"

// BodyData is the render rectangle of an entity. The collision box is derived
// from it: BoxScaleX/BoxScaleY of the render size, centered.
type BodyData struct {
	X, Y        float64
	W, H        int
	BoxScaleX   float64
	BoxScaleY   float64
	FacingRight bool
}

func (b *BodyData) Center() (float64, float64) {
	return b.X + float64(b.W)/2, b.Y + float64(b.H)/2
}

// Box returns the collision rectangle for the current position.
func (b *BodyData) Box() (x, y, w, h float64) {
	sx, sy := b.BoxScaleX, b.BoxScaleY
	if sx <= 0 {
		sx = 1
	}
	if sy <= 0 {
		sy = 1
	}
	w = float64(b.W) * sx
	h = float64(b.H) * sy
	x = b.X + (float64(b.W)-w)/2
	y = b.Y + (float64(b.H)-h)/2
	return x, y, w, h
}

var Body = donburi.NewComponentType[BodyData]()
