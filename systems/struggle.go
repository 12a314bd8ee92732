package systems

import (
	"time"

	"github.com/automoto/fishhunt/components"
	cfg "github.com/automoto/fishhunt/config"
	"github.com/yohamta/donburi"
)

type StruggleResult int

const (
	StruggleContinue StruggleResult = iota
	StruggleWon
	StruggleLost
)

// barEpsilon absorbs float error when presses*perPress should equal BarMax.
const barEpsilon = 1e-9

// BeginStruggle starts the mini-game for fish. Each accepted press is worth
// TapAmount divided by the fish's struggle factor.
func BeginStruggle(s *components.StruggleData, fish *donburi.Entry) {
	per := cfg.Struggle.TapAmount
	if f := components.Fish.Get(fish).StruggleFactor; f > 0 {
		per /= f
	}
	*s = components.StruggleData{
		Active:   true,
		Target:   fish.Entity(),
		PerPress: per,
		NextKey:  cfg.StruggleKeyFirst,
	}
}

// PressStruggleKey accepts key only if it is the next one in the alternation.
// Repeating the last key does nothing.
func PressStruggleKey(s *components.StruggleData, key cfg.StruggleKey) StruggleResult {
	if !s.Active || key != s.NextKey {
		return StruggleContinue
	}
	s.Presses++
	s.NextKey = key.Other()
	if s.Bar() >= cfg.Struggle.BarMax-barEpsilon {
		return StruggleWon
	}
	return StruggleContinue
}

func TickStruggle(s *components.StruggleData, dt time.Duration) StruggleResult {
	if !s.Active {
		return StruggleContinue
	}
	s.Elapsed += dt
	if s.Elapsed > cfg.Struggle.TimeLimit {
		return StruggleLost
	}
	return StruggleContinue
}
