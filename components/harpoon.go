package components

import "github.com/yohamta/donburi"

type HarpoonState int

const (
	HarpoonIdle HarpoonState = iota
	HarpoonExtending
	HarpoonHooked
)

func (s HarpoonState) String() string {
	switch s {
	case HarpoonExtending:
		return "extending"
	case HarpoonHooked:
		return "hooked"
	default:
		return "idle"
	}
}

// HarpoonData is the projectile fired by the player. The hooked entity is only
// reachable while the state is HarpoonHooked, and every transition that leaves
// Hooked drops it.
type HarpoonData struct {
	TipX, TipY       float64
	TargetX, TargetY float64
	Length           float64

	Speed     float64
	MaxLength float64
	PullSpeed float64

	state  HarpoonState
	hooked donburi.Entity
}

func (h *HarpoonData) State() HarpoonState {
	return h.state
}

func (h *HarpoonData) IsFiring() bool {
	return h.state != HarpoonIdle
}

// Hooked returns the towed entity, or donburi.Null when nothing is hooked.
func (h *HarpoonData) Hooked() donburi.Entity {
	if h.state != HarpoonHooked {
		return donburi.Null
	}
	return h.hooked
}

// Launch starts an attempt from (fromX, fromY). It returns false and changes
// nothing while an attempt is already in flight.
func (h *HarpoonData) Launch(fromX, fromY, targetX, targetY float64) bool {
	if h.state != HarpoonIdle {
		return false
	}
	h.TipX, h.TipY = fromX, fromY
	h.TargetX, h.TargetY = targetX, targetY
	h.Length = 0
	h.state = HarpoonExtending
	return true
}

// Hook attaches a fish to an extending harpoon. Entries without FishData
// (ghosts) are refused.
func (h *HarpoonData) Hook(e *donburi.Entry) bool {
	if h.state != HarpoonExtending || e == nil || !e.Valid() || !e.HasComponent(Fish) {
		return false
	}
	h.hooked = e.Entity()
	h.state = HarpoonHooked
	return true
}

// FinishAttempt ends the current attempt whatever its outcome.
func (h *HarpoonData) FinishAttempt() {
	h.state = HarpoonIdle
	h.hooked = donburi.Null
	h.Length = 0
}

var Harpoon = donburi.NewComponentType[HarpoonData]()
