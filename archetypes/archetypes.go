package archetypes

import (
	"github.com/automoto/fishhunt/components"
	"github.com/automoto/fishhunt/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Object,
		components.Animation,
	)
	Fish = newArchetype(
		tags.Fish,
		components.Fish,
		components.Roamer,
		components.Body,
		components.Object,
		components.Animation,
	)
	Ghost = newArchetype(
		tags.Ghost,
		components.Roamer,
		components.Body,
		components.Object,
		components.Animation,
	)
	Harpoon = newArchetype(
		tags.Harpoon,
		components.Harpoon,
		components.Object,
	)
	Jar = newArchetype(
		tags.Jar,
		components.Jar,
		components.Body,
		components.Object,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
		components.Body,
		components.Animation,
	)
	Session = newArchetype(
		tags.Session,
		components.Session,
		components.Struggle,
		components.Glide,
		components.Audio,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(append(a.components, cs...)...))
	return e
}
