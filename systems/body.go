package systems

import (
	"github.com/automoto/fishhunt/components"
	"github.com/yohamta/donburi"
)

// SetPosition moves e's render box and refreshes its collision box in the
// same step, so no reader ever sees a stale box.
func SetPosition(e *donburi.Entry, x, y float64) {
	body := components.Body.Get(e)
	body.X, body.Y = x, y
	syncObject(e)
}

// SetCenter moves e so its render box is centered on (cx, cy).
func SetCenter(e *donburi.Entry, cx, cy float64) {
	body := components.Body.Get(e)
	SetPosition(e, cx-float64(body.W)/2, cy-float64(body.H)/2)
}

func syncObject(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	x, y, w, h := components.Body.Get(e).Box()
	obj.X, obj.Y, obj.W, obj.H = x, y, w, h
	obj.Update()
}

// entryOf resolves id, or returns nil once it has been removed. Entries are
// recycled by the world, so long-lived references hold the entity instead.
func entryOf(w donburi.World, id donburi.Entity) *donburi.Entry {
	if !w.Valid(id) {
		return nil
	}
	return w.Entry(id)
}

// destroy removes id from the collision space and the world.
func destroy(w donburi.World, id donburi.Entity) {
	e := entryOf(w, id)
	if e == nil {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	w.Remove(id)
}
