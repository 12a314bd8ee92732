package factory

import (
	"github.com/automoto/fishhunt/archetypes"
	"github.com/automoto/fishhunt/components"
	cfg "github.com/automoto/fishhunt/config"
	"github.com/automoto/fishhunt/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateHarpoon spawns the player's harpoon in its idle state. Its collision
// object is the fixed-size tip box.
func CreateHarpoon(w donburi.World, space *resolv.Space) *donburi.Entry {
	harpoon := archetypes.Harpoon.Spawn(w)

	components.Harpoon.SetValue(harpoon, components.HarpoonData{
		Speed:     cfg.Harpoon.Speed,
		MaxLength: cfg.Harpoon.MaxLength,
		PullSpeed: cfg.Harpoon.Speed * cfg.Harpoon.PullRatio,
	})

	size := cfg.Harpoon.TipSize
	obj := resolv.NewObject(-size, -size, size, size, tags.ResolvTip)
	obj.Data = harpoon
	components.Object.SetValue(harpoon, components.ObjectData{Object: obj})
	space.Add(obj)

	return harpoon
}
