package factory

import (
	"github.com/automoto/fishhunt/archetypes"
	"github.com/automoto/fishhunt/components"
	"github.com/automoto/fishhunt/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateJar(w donburi.World, space *resolv.Space, x, y float64, width, height int) *donburi.Entry {
	jar := archetypes.Jar.Spawn(w)

	components.Body.SetValue(jar, components.BodyData{
		X: x,
		Y: y,
		W: width,
		H: height,
	})
	components.Jar.SetValue(jar, components.JarData{Scale: 1})
	attachObject(jar, space, tags.ResolvJar)

	return jar
}
