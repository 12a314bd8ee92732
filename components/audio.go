package components

import (
	cfg "github.com/automoto/fishhunt/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised by the simulation (singleton component).
// The playback service drains PendingSFX once per frame.
type AudioData struct {
	PendingSFX []cfg.SoundID
	Music      string
}

var Audio = donburi.NewComponentType[AudioData]()
