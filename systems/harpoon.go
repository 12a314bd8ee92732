package systems

import (
	"math"

	"github.com/automoto/fishhunt/components"
	cfg "github.com/automoto/fishhunt/config"
	"github.com/automoto/fishhunt/gamemath"
	"github.com/automoto/fishhunt/tags"
	"github.com/yohamta/donburi"
)

// HarpoonEvent is what a harpoon tick reports back to the orchestrator
type HarpoonEvent int

const (
	HarpoonNoEvent HarpoonEvent = iota
	HarpoonRetracted
	HarpoonReachedPlayer
)

// FireHarpoon launches from the player's center toward (targetX, targetY).
// It is a no-op while an attempt is in flight.
func FireHarpoon(harpoon, player *donburi.Entry, targetX, targetY float64) bool {
	h := components.Harpoon.Get(harpoon)
	cx, cy := components.Body.Get(player).Center()
	if !h.Launch(cx, cy, targetX, targetY) {
		return false
	}
	syncTip(harpoon)
	return true
}

// UpdateHarpoon advances the tip while extending, or tows the hooked fish
// toward the player while hooked.
func UpdateHarpoon(w donburi.World, harpoon, player *donburi.Entry, layout cfg.Layout) HarpoonEvent {
	h := components.Harpoon.Get(harpoon)
	pcx, pcy := components.Body.Get(player).Center()

	switch h.State() {
	case components.HarpoonExtending:
		// aim from where the player is now, not from the tip
		dx, dy := gamemath.Heading(pcx, pcy, h.TargetX, h.TargetY)
		h.TipX += dx * h.Speed
		h.TipY += dy * h.Speed
		h.Length = math.Hypot(h.TipX-pcx, h.TipY-pcy)

		if h.Length >= h.MaxLength || tipOutside(h, layout) {
			h.FinishAttempt()
			syncTip(harpoon)
			return HarpoonRetracted
		}
		syncTip(harpoon)

	case components.HarpoonHooked:
		fish := entryOf(w, h.Hooked())
		if fish == nil {
			h.FinishAttempt()
			syncTip(harpoon)
			return HarpoonRetracted
		}
		fcx, fcy := components.Body.Get(fish).Center()
		nx, ny, _ := gamemath.Step(fcx, fcy, pcx, pcy, h.PullSpeed)
		SetCenter(fish, nx, ny)
		h.TipX, h.TipY = components.Body.Get(fish).Center()
		h.Length = math.Hypot(h.TipX-pcx, h.TipY-pcy)
		syncTip(harpoon)

		if overlaps(components.Object.Get(fish).Object, components.Object.Get(player).Object) {
			return HarpoonReachedPlayer
		}
	}
	return HarpoonNoEvent
}

// TryHook attaches the first fish under the tip. Ghosts share the space but
// are never candidates.
func TryHook(harpoon *donburi.Entry) *donburi.Entry {
	h := components.Harpoon.Get(harpoon)
	if h.State() != components.HarpoonExtending {
		return nil
	}
	tip := components.Object.Get(harpoon).Object
	for _, e := range touching(tip, tags.ResolvFish) {
		if h.Hook(e) {
			return e
		}
	}
	return nil
}

func tipOutside(h *components.HarpoonData, layout cfg.Layout) bool {
	return h.TipX < 0 || h.TipY < 0 ||
		h.TipX > float64(layout.Width) || h.TipY > float64(layout.Height)
}

// syncTip keeps the tip box centered on the tip; an idle harpoon parks it
// off-field so it cannot overlap anything.
func syncTip(harpoon *donburi.Entry) {
	h := components.Harpoon.Get(harpoon)
	obj := components.Object.Get(harpoon)
	if !h.IsFiring() {
		obj.X, obj.Y = -obj.W*4, -obj.H*4
	} else {
		obj.X, obj.Y = h.TipX-obj.W/2, h.TipY-obj.H/2
	}
	obj.Update()
}
