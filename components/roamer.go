package components

import (
	"github.com/automoto/fishhunt/config"
	"github.com/yohamta/donburi"
)

// RoamerData is horizontal travel shared by fish and ghosts.
// The sign of SpeedX is the travel direction.
type RoamerData struct {
	SpeedX float64
}

var Roamer = donburi.NewComponentType[RoamerData]()

// FishData holds per-variant values copied from config.Fish.Types at spawn.
type FishData struct {
	Kind           config.FishKind
	ScoreValue     int
	StruggleFactor float64
}

var Fish = donburi.NewComponentType[FishData]()
