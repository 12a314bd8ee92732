package factory

import (
	"github.com/automoto/fishhunt/archetypes"
	"github.com/automoto/fishhunt/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// attachObject registers a collision box for e, sized from its body.
func attachObject(e *donburi.Entry, space *resolv.Space, resolvTags ...string) *resolv.Object {
	body := components.Body.Get(e)
	x, y, w, h := body.Box()
	obj := resolv.NewObject(x, y, w, h, resolvTags...)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	space.Add(obj)
	return obj
}
