// Package gamemath holds the small vector helpers the systems share.
package gamemath

import "math"

// HomingVelocity returns velocity components of length speed pointing from
// (fromX, fromY) toward (toX, toY). It is zero when the points coincide.
func HomingVelocity(fromX, fromY, toX, toY, speed float64) (velX, velY float64) {
	dirX := toX - fromX
	dirY := toY - fromY
	dist := math.Hypot(dirX, dirY)
	if dist > 0 {
		velX = (dirX / dist) * speed
		velY = (dirY / dist) * speed
	}
	return velX, velY
}

// Step moves (x, y) up to speed units toward (toX, toY). It lands exactly
// on the target and reports arrival once the target is within reach.
func Step(x, y, toX, toY, speed float64) (nx, ny float64, arrived bool) {
	if math.Hypot(toX-x, toY-y) <= speed {
		return toX, toY, true
	}
	vx, vy := HomingVelocity(x, y, toX, toY, speed)
	return x + vx, y + vy, false
}

// Heading returns the unit vector at the angle from (fromX, fromY) to
// (toX, toY). Unlike HomingVelocity it points along +X for coincident points.
func Heading(fromX, fromY, toX, toY float64) (dx, dy float64) {
	angle := math.Atan2(toY-fromY, toX-fromX)
	return math.Cos(angle), math.Sin(angle)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
