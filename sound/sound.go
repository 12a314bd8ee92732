// Package sound plays the effects and music the simulation asks for. The
// simulation only queues sound IDs on its session entity; Service drains
// that queue once per frame.
package sound

import (
	"github.com/automoto/fishhunt/assets"
	"github.com/automoto/fishhunt/components"
	cfg "github.com/automoto/fishhunt/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Settings are the player-facing volume controls.
type Settings struct {
	MusicVolume float64
	SFXVolume   float64
	Muted       bool
}

func DefaultSettings() Settings {
	return Settings{
		MusicVolume: cfg.Audio.DefaultMusicVol,
		SFXVolume:   cfg.Audio.DefaultSFXVol,
	}
}

type Service struct {
	context *audio.Context
	loader  *assets.AudioLoader
	log     *log.Logger

	settings Settings
	music    *audio.Player
	musicKey string
	missing  map[string]bool
}

// New creates the process-wide audio context. It must be called once.
func New(settings Settings, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	ctx := audio.NewContext(cfg.Audio.SampleRate)
	return &Service{
		context:  ctx,
		loader:   assets.NewAudioLoader(ctx),
		log:      logger.With("component", "sound"),
		settings: settings,
		missing:  make(map[string]bool),
	}
}

// Preload decodes every effect so the first play does not stall a frame.
func (s *Service) Preload() {
	for _, path := range cfg.Sound.SFXPaths {
		if err := s.loader.PreloadSFX(path); err != nil {
			s.markMissing(path, err)
		}
	}
}

// Update is an ecs system: it plays queued effects and switches music to
// whatever the session asks for.
func (s *Service) Update(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	data := components.Audio.Get(entry)
	for _, id := range data.PendingSFX {
		s.Play(id)
	}
	data.PendingSFX = data.PendingSFX[:0]
	s.PlayMusic(data.Music)
}

func (s *Service) Play(id cfg.SoundID) {
	if s.settings.Muted || s.settings.SFXVolume <= 0 {
		return
	}
	path, ok := cfg.Sound.SFXPaths[id]
	if !ok || s.missing[path] {
		return
	}
	player, err := s.loader.LoadSFX(path)
	if err != nil {
		s.markMissing(path, err)
		return
	}
	volume := s.settings.SFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player.SetVolume(min(volume, 1))
	player.Play()
}

// PlayMusic loops path, replacing the current track. An empty path stops
// the music.
func (s *Service) PlayMusic(path string) {
	if path == s.musicKey {
		return
	}
	s.stopMusic()
	s.musicKey = path
	if path == "" || s.missing[path] {
		return
	}
	player, err := s.loader.LoadMusic(path)
	if err != nil {
		s.markMissing(path, err)
		return
	}
	player.SetVolume(s.musicVolume())
	player.Play()
	s.music = player
}

func (s *Service) Settings() Settings {
	return s.settings
}

func (s *Service) Apply(settings Settings) {
	s.settings = settings
	if s.music != nil {
		s.music.SetVolume(s.musicVolume())
	}
}

// ToggleMute flips the mute flag and returns the new settings.
func (s *Service) ToggleMute() Settings {
	next := s.settings
	next.Muted = !next.Muted
	s.Apply(next)
	return next
}

func (s *Service) Close() {
	s.stopMusic()
}

func (s *Service) musicVolume() float64 {
	if s.settings.Muted {
		return 0
	}
	return s.settings.MusicVolume
}

func (s *Service) stopMusic() {
	if s.music != nil {
		_ = s.music.Close()
		s.music = nil
	}
}

// markMissing silences path for the rest of the run.
func (s *Service) markMissing(path string, err error) {
	if s.missing[path] {
		return
	}
	s.missing[path] = true
	s.log.Debug("sound unavailable", "path", path, "err", err)
}
