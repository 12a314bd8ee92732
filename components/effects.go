package components

import "github.com/yohamta/donburi"

type EffectKind int

const (
	EffectHit EffectKind = iota
)

// EffectData marks a transient visual. It is removed once its one-shot
// animation reports Finished.
type EffectData struct {
	Kind EffectKind
}

var Effect = donburi.NewComponentType[EffectData]()
