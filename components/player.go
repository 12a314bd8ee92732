package components

import (
	"time"

	cfg "github.com/automoto/fishhunt/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Speed     float64
	Hearts    int
	MaxHearts int

	// Movement intents, set by input and cleared on state transitions
	Up, Down, Left, Right bool

	HurtRemaining time.Duration
	Moving        bool
}

// Immune reports whether the hurt reaction is still playing.
func (p *PlayerData) Immune() bool {
	return p.HurtRemaining > 0
}

func (p *PlayerData) SetIntent(dir cfg.Direction, pressed bool) {
	switch dir {
	case cfg.DirUp:
		p.Up = pressed
	case cfg.DirDown:
		p.Down = pressed
	case cfg.DirLeft:
		p.Left = pressed
	case cfg.DirRight:
		p.Right = pressed
	}
}

func (p *PlayerData) ClearIntents() {
	p.Up, p.Down, p.Left, p.Right = false, false, false, false
	p.Moving = false
}

var Player = donburi.NewComponentType[PlayerData]()
