package components

import (
	"time"

	cfg "github.com/automoto/fishhunt/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SessionData stores the orchestrator state for the running game.
// This is a singleton component - only one session exists at a time.
type SessionData struct {
	State    cfg.GameState
	Username string

	RemainingSeconds int
	SecondTimer      time.Duration // time accumulated toward the next countdown tick

	Reason      cfg.GameOverReason
	ReturnTimer time.Duration // time left before game over returns to the menu
	Saved       bool

	ConfirmingQuit bool
	Notice         string

	Banner  *gween.Tween
	BannerY float32
}

var Session = donburi.NewComponentType[SessionData]()
