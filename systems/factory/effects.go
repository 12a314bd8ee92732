package factory

import (
	"github.com/automoto/fishhunt/archetypes"
	"github.com/automoto/fishhunt/assets/animations"
	"github.com/automoto/fishhunt/components"
	cfg "github.com/automoto/fishhunt/config"
	"github.com/yohamta/donburi"
)

// SpawnHitEffect creates a one-shot hit effect centered on (cx, cy).
func SpawnHitEffect(w donburi.World, cx, cy float64) *donburi.Entry {
	fx := archetypes.Effect.Spawn(w)

	width, height := cfg.Effect.HitWidth, cfg.Effect.HitHeight
	components.Body.SetValue(fx, components.BodyData{
		X: cx - float64(width)/2,
		Y: cy - float64(height)/2,
		W: width,
		H: height,
	})
	components.Effect.SetValue(fx, components.EffectData{Kind: components.EffectHit})
	components.Animation.SetValue(fx, components.AnimationData{
		Current: animations.NewOneShot(cfg.Effect.HitFrames, cfg.Effect.HitFrameTicks),
	})

	return fx
}
