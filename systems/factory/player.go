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

func CreatePlayer(w donburi.World, space *resolv.Space, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Body.SetValue(player, components.BodyData{
		X:           x,
		Y:           y,
		W:           cfg.Player.FrameWidth,
		H:           cfg.Player.FrameHeight,
		BoxScaleX:   cfg.Player.BoxScaleX,
		BoxScaleY:   cfg.Player.BoxScaleY,
		FacingRight: true,
	})
	components.Player.SetValue(player, components.PlayerData{
		Speed:     cfg.Player.Speed,
		Hearts:    cfg.Player.MaxHearts,
		MaxHearts: cfg.Player.MaxHearts,
	})
	components.Animation.SetValue(player, components.AnimationData{
		Current:   animations.NewAnimation(0, cfg.Player.IdleFrames-1, cfg.Player.FrameTicks),
		Alternate: animations.NewAnimation(0, cfg.Player.SwimFrames-1, cfg.Player.FrameTicks),
	})
	attachObject(player, space, tags.ResolvPlayer)

	return player
}
