package components

import (
	"math"
	"time"

	cfg "github.com/automoto/fishhunt/config"
	"github.com/yohamta/donburi"
)

// StruggleData is the alternating-key mini-game state (singleton component).
type StruggleData struct {
	Active   bool
	Target   donburi.Entity
	Presses  int
	PerPress float64
	NextKey  cfg.StruggleKey
	Elapsed  time.Duration
}

// Bar is the accumulated progress. It is derived from the press count so
// repeated float addition cannot leave it a hair under the target.
func (s *StruggleData) Bar() float64 {
	return float64(s.Presses) * s.PerPress
}

// Progress is the fill ratio of the bar, capped at 1.
func (s *StruggleData) Progress() float64 {
	if cfg.Struggle.BarMax <= 0 {
		return 0
	}
	return math.Min(1, s.Bar()/cfg.Struggle.BarMax)
}

func (s *StruggleData) Remaining() time.Duration {
	left := cfg.Struggle.TimeLimit - s.Elapsed
	if left < 0 {
		return 0
	}
	return left
}

func (s *StruggleData) Clear() {
	*s = StruggleData{}
}

var Struggle = donburi.NewComponentType[StruggleData]()

// GlideData is a landed fish travelling to the jar (singleton component).
type GlideData struct {
	Fish             donburi.Entity
	TargetX, TargetY float64
	Speed            float64
}

func (g *GlideData) Active() bool {
	return g.Fish != donburi.Null
}

var Glide = donburi.NewComponentType[GlideData]()
