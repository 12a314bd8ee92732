package systems

import (
	"time"

	"github.com/automoto/fishhunt/components"
	cfg "github.com/automoto/fishhunt/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// LandCatch credits the jar with a fish and starts the pop tween.
func LandCatch(jar *donburi.Entry, score int) {
	j := components.Jar.Get(jar)
	j.Add(score)
	j.Pop = gween.New(cfg.Jar.PopScale, 1, cfg.Jar.PopDuration, ease.OutQuad)
	j.Scale = cfg.Jar.PopScale
}

func UpdateJar(jar *donburi.Entry, dt time.Duration) {
	j := components.Jar.Get(jar)
	if j.Pop == nil {
		return
	}
	scale, finished := j.Pop.Update(float32(dt.Seconds()))
	j.Scale = scale
	if finished {
		j.Pop = nil
		j.Scale = 1
	}
}
