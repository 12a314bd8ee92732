package scenes

import (
	"context"

	"github.com/automoto/fishhunt/assets"
	"github.com/automoto/fishhunt/leaderboard"
	"github.com/automoto/fishhunt/persistence"
	"github.com/automoto/fishhunt/sound"
	"github.com/automoto/fishhunt/systems"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	RequestQuit()
}

// Board is the read side of the leaderboard the menu shows.
type Board interface {
	All(ctx context.Context) ([]leaderboard.GameData, error)
	Get(ctx context.Context, username string) (leaderboard.GameData, bool, error)
}

const (
	layerWorld ecs.LayerID = iota
	layerHUD
)

// Shared is the state that outlives individual scenes. Board may be nil
// when the leaderboard could not be opened.
type Shared struct {
	Logic    *systems.Logic
	Board    Board
	Sound    *sound.Service
	Images   *assets.ImageLoader
	Profiles *persistence.Store
	Profile  persistence.Profile
	Log      *log.Logger
}

// saveProfile folds the current sound settings into the profile and stores it.
func (s *Shared) saveProfile() {
	settings := s.Sound.Settings()
	s.Profile.MusicVolume = settings.MusicVolume
	s.Profile.SFXVolume = settings.SFXVolume
	s.Profile.Muted = settings.Muted
	if err := s.Profiles.Save(s.Profile); err != nil {
		s.Log.Warn("profile not saved", "err", err)
	}
}
