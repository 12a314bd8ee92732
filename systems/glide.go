package systems

import (
	"github.com/automoto/fishhunt/components"
	cfg "github.com/automoto/fishhunt/config"
	"github.com/automoto/fishhunt/gamemath"
	"github.com/yohamta/donburi"
)

// BeginGlide aims a landed fish at the jar mouth: horizontally centered, a
// quarter of the jar's height below its top.
func BeginGlide(g *components.GlideData, fish, jar *donburi.Entry) {
	jb := components.Body.Get(jar)
	fb := components.Body.Get(fish)
	*g = components.GlideData{
		Fish:    fish.Entity(),
		TargetX: jb.X + float64(jb.W)/2 - float64(fb.W)/2,
		TargetY: jb.Y + float64(jb.H)/4 - float64(fb.H)/2,
		Speed:   cfg.Jar.GlideSpeed,
	}
}

// UpdateGlide moves the fish one step and reports arrival. A fish that no
// longer exists counts as arrived.
func UpdateGlide(w donburi.World, g *components.GlideData) bool {
	fish := entryOf(w, g.Fish)
	if !g.Active() || fish == nil {
		return true
	}
	body := components.Body.Get(fish)
	x, y, arrived := gamemath.Step(body.X, body.Y, g.TargetX, g.TargetY, g.Speed)
	SetPosition(fish, x, y)
	return arrived
}
