package factory

import (
	"github.com/automoto/fishhunt/archetypes"
	"github.com/automoto/fishhunt/assets/animations"
	"github.com/automoto/fishhunt/components"
	cfg "github.com/automoto/fishhunt/config"
	"github.com/automoto/fishhunt/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateFish spawns a fish of the given variant. A positive speedX travels
// left to right.
func CreateFish(w donburi.World, space *resolv.Space, kind cfg.FishKind, x, y, speedX float64) *donburi.Entry {
	t := cfg.Fish.Types[kind]
	fish := archetypes.Fish.Spawn(w)

	components.Body.SetValue(fish, components.BodyData{
		X:           x,
		Y:           y,
		W:           t.FrameWidth,
		H:           t.FrameHeight,
		FacingRight: speedX > 0,
	})
	components.Fish.SetValue(fish, components.FishData{
		Kind:           kind,
		ScoreValue:     t.ScoreValue,
		StruggleFactor: t.StruggleFactor,
	})
	components.Roamer.SetValue(fish, components.RoamerData{SpeedX: speedX})
	components.Animation.SetValue(fish, components.AnimationData{
		Current: animations.NewAnimation(0, t.Frames-1, t.FrameTicks),
	})
	attachObject(fish, space, tags.ResolvFish)

	return fish
}

func CreateGhost(w donburi.World, space *resolv.Space, x, y, speedX float64) *donburi.Entry {
	ghost := archetypes.Ghost.Spawn(w)

	components.Body.SetValue(ghost, components.BodyData{
		X:           x,
		Y:           y,
		W:           cfg.Ghost.FrameWidth,
		H:           cfg.Ghost.FrameHeight,
		BoxScaleX:   cfg.Ghost.BoxScaleX,
		BoxScaleY:   cfg.Ghost.BoxScaleY,
		FacingRight: speedX < 0, // sprite art faces away from travel
	})
	components.Roamer.SetValue(ghost, components.RoamerData{SpeedX: speedX})
	components.Animation.SetValue(ghost, components.AnimationData{
		Current: animations.NewAnimation(0, cfg.Ghost.Frames-1, cfg.Ghost.FrameTicks),
	})
	attachObject(ghost, space, tags.ResolvGhost)

	return ghost
}
