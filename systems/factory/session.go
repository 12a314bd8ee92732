package factory

import (
	"github.com/automoto/fishhunt/archetypes"
	"github.com/automoto/fishhunt/components"
	cfg "github.com/automoto/fishhunt/config"
	"github.com/yohamta/donburi"
)

// CreateSession spawns the singleton holding orchestrator state.
func CreateSession(w donburi.World) *donburi.Entry {
	session := archetypes.Session.Spawn(w)
	components.Session.SetValue(session, components.SessionData{
		State:            cfg.StateMenu,
		RemainingSeconds: cfg.Timer.InitialSeconds,
	})
	return session
}
