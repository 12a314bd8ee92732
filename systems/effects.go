package systems

import (
	"github.com/automoto/fishhunt/components"
	"github.com/yohamta/donburi"
)

// UpdateEffects advances every transient effect and removes the finished ones.
func UpdateEffects(w donburi.World) {
	var done []donburi.Entity
	components.Effect.Each(w, func(e *donburi.Entry) {
		anim := components.Animation.Get(e).Current
		anim.Update()
		if anim.Finished() {
			done = append(done, e.Entity())
		}
	})
	for _, id := range done {
		destroy(w, id)
	}
}

func ClearEffects(w donburi.World) {
	var all []donburi.Entity
	components.Effect.Each(w, func(e *donburi.Entry) {
		all = append(all, e.Entity())
	})
	for _, id := range all {
		destroy(w, id)
	}
}
