package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundThrow
	SoundCatch
	SoundHit
	SoundFail
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	MenuMusic         string
	GameMusic         string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.6,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		MenuMusic: "audio/music/menu.ogg",
		GameMusic: "audio/music/bgm.ogg",
		SFXPaths: map[SoundID]string{
			SoundThrow:      "audio/sfx/throw.wav",
			SoundCatch:      "audio/sfx/catch.wav",
			SoundHit:        "audio/sfx/hit.wav",
			SoundFail:       "audio/sfx/fail.wav",
			SoundMenuSelect: "audio/sfx/menu_select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit: 1.3,
		},
	}
}
