// Package persistence keeps the local player profile between runs.
package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const (
	appName    = "fishhunt"
	profileKey = "profile"
)

// Profile is what the menu remembers about the last player.
type Profile struct {
	LastUsername string  `json:"lastUsername"`
	MusicVolume  float64 `json:"musicVolume"`
	SFXVolume    float64 `json:"sfxVolume"`
	Muted        bool    `json:"muted"`
}

// Store reads and writes the profile. A Store that failed to open behaves as
// an empty, write-discarding store.
type Store struct {
	manager *gdata.Manager
	log     *log.Logger
}

func Open(logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{log: logger.With("component", "persistence")}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return s, fmt.Errorf("open profile storage: %w", err)
	}
	s.manager = m
	return s, nil
}

// Load returns the saved profile, or def when there is none.
func (s *Store) Load(def Profile) Profile {
	if s == nil || s.manager == nil {
		return def
	}
	data, err := s.manager.LoadItem(profileKey)
	if err != nil {
		s.log.Warn("could not load profile", "err", err)
		return def
	}
	if len(data) == 0 {
		return def
	}
	p := def
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Warn("could not parse profile", "err", err)
		return def
	}
	return p
}

func (s *Store) Save(p Profile) error {
	if s == nil || s.manager == nil {
		return nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.manager.SaveItem(profileKey, data); err != nil {
		s.log.Warn("could not save profile", "err", err)
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
