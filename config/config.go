package config

import (
	"image/color"
	"time"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed     float64
	MaxHearts int

	// Dimensions
	FrameWidth  int
	FrameHeight int
	BoxScaleX   float64 // collision box width as a fraction of the sprite
	BoxScaleY   float64

	HurtDuration time.Duration // immunity window after losing a heart

	// Animation (ticks per frame)
	IdleFrames int
	SwimFrames int
	FrameTicks int
	HurtFrames int
	HurtTicks  int
}

// FishTypeConfig describes one fish variant
type FishTypeConfig struct {
	Name           string
	ScoreValue     int
	SpeedMult      float64
	StruggleFactor float64 // divides each struggle press; higher is harder

	FrameWidth  int
	FrameHeight int
	Frames      int
	FrameTicks  int

	TintColor color.RGBA
}

// FishConfig holds the variant table and shared speed jitter
type FishConfig struct {
	Types       map[FishKind]FishTypeConfig
	BaseSpeed   float64
	SpeedJitter float64 // speed = (BaseSpeed + rand*SpeedJitter) * SpeedMult
}

// GhostConfig contains ghost configuration
type GhostConfig struct {
	FrameWidth  int
	FrameHeight int
	BoxScaleX   float64
	BoxScaleY   float64
	BaseSpeed   float64
	SpeedJitter float64
	Frames      int
	FrameTicks  int
	TintColor   color.RGBA
}

// SpawnConfig controls the roaming entity schedule
type SpawnConfig struct {
	MinDelay    time.Duration
	DelayJitter time.Duration
	MaxEntities int

	// Weight table over [0,100): fish, big fish, dart fish, ghost
	FishWeight     int
	BigFishWeight  int
	DartFishWeight int

	OffscreenLeftX  float64 // spawn X when travelling left to right
	OffscreenMargin float64 // extra distance past the right edge, and cull margin
	BandPadding     int     // reserved space at the bottom of the spawn band
}

// HarpoonConfig contains harpoon projectile configuration
type HarpoonConfig struct {
	Speed     float64
	MaxLength float64
	PullRatio float64 // pull speed = Speed * PullRatio
	TipSize   float64
	LineColor color.RGBA
	TipColor  color.RGBA
}

// StruggleConfig contains the struggle mini-game configuration
type StruggleConfig struct {
	BarMax    float64
	TapAmount float64
	TimeLimit time.Duration
}

// JarConfig contains collection jar configuration
type JarConfig struct {
	Width       int
	Height      int
	RightMargin int
	PopScale    float32
	PopDuration float32 // seconds
	GlideSpeed  float64
	Color       color.RGBA
}

// TimerConfig contains countdown configuration
type TimerConfig struct {
	InitialSeconds int
	CatchBonus     int
	WarningSeconds int
}

// EffectConfig contains transient effect configuration
type EffectConfig struct {
	HitWidth      int
	HitHeight     int
	HitFrames     int
	HitFrameTicks int
}

// GameOverConfig contains game over screen configuration
type GameOverConfig struct {
	ReturnDelay    time.Duration
	BannerDuration float32 // seconds for the banner drop tween
	OverlayColor   color.RGBA
	TitleColor     color.RGBA
	TextColor      color.RGBA
}

// UIConfig contains HUD and menu colors and layout values
type UIConfig struct {
	HUDMargin       float64
	HUDLineHeight   float64
	BarWidth        float32
	BarHeight       float32
	BarBackground   color.RGBA
	BarFill         color.RGBA
	HeartColor      color.RGBA
	TextColor       color.RGBA
	WarningColor    color.RGBA
	NoticeColor     color.RGBA
	BackgroundTop   color.RGBA
	MenuPanelColor  color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	ButtonDisabled  color.RGBA
	InputBackground color.RGBA
	LeaderboardRows int
	PlayerColor     color.RGBA
	HurtColor       color.RGBA
	EffectColor     color.RGBA
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	SkipMenu     bool // Skip menu and go directly to game
	ShowHitboxes bool
	HitboxColor  color.RGBA
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Fish FishConfig
var Ghost GhostConfig
var Spawn SpawnConfig
var Harpoon HarpoonConfig
var Struggle StruggleConfig
var Jar JarConfig
var Timer TimerConfig
var Effect EffectConfig
var GameOver GameOverConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red    = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Player = PlayerConfig{
		Speed:        4.5,
		MaxHearts:    3,
		FrameWidth:   80,
		FrameHeight:  80,
		BoxScaleX:    0.4,
		BoxScaleY:    0.6,
		HurtDuration: 500 * time.Millisecond,
		IdleFrames:   6,
		SwimFrames:   7,
		FrameTicks:   7, // ~120ms
		HurtFrames:   5,
		HurtTicks:    6, // 100ms
	}

	Fish = FishConfig{
		BaseSpeed:   1.0,
		SpeedJitter: 0.8,
		Types: map[FishKind]FishTypeConfig{
			FishBasic: {
				Name:           "Fish",
				ScoreValue:     10,
				SpeedMult:      1.5,
				StruggleFactor: 1.0,
				FrameWidth:     32,
				FrameHeight:    32,
				Frames:         4,
				FrameTicks:     9,
				TintColor:      color.RGBA{R: 255, G: 170, B: 60, A: 255},
			},
			FishDart: {
				Name:           "DartFish",
				ScoreValue:     15,
				SpeedMult:      2.8,
				StruggleFactor: 1.2,
				FrameWidth:     39,
				FrameHeight:    20,
				Frames:         4,
				FrameTicks:     6,
				TintColor:      color.RGBA{R: 80, G: 200, B: 255, A: 255},
			},
			FishBig: {
				Name:           "BigFish",
				ScoreValue:     25,
				SpeedMult:      1.2,
				StruggleFactor: 1.5,
				FrameWidth:     54,
				FrameHeight:    49,
				Frames:         4,
				FrameTicks:     11,
				TintColor:      color.RGBA{R: 120, G: 220, B: 100, A: 255},
			},
		},
	}

	Ghost = GhostConfig{
		FrameWidth:  47,
		FrameHeight: 66,
		BoxScaleX:   0.6,
		BoxScaleY:   0.8,
		BaseSpeed:   1.2,
		SpeedJitter: 1.0,
		Frames:      4,
		FrameTicks:  9,
		TintColor:   color.RGBA{R: 200, G: 200, B: 255, A: 200},
	}

	Spawn = SpawnConfig{
		MinDelay:        1200 * time.Millisecond,
		DelayJitter:     2000 * time.Millisecond,
		MaxEntities:     8,
		FishWeight:      35,
		BigFishWeight:   20,
		DartFishWeight:  20,
		OffscreenLeftX:  -60,
		OffscreenMargin: 20,
		BandPadding:     60,
	}

	Harpoon = HarpoonConfig{
		Speed:     12,
		MaxLength: 350,
		PullRatio: 0.8,
		TipSize:   10,
		LineColor: color.RGBA{R: 230, G: 230, B: 230, A: 255},
		TipColor:  color.RGBA{R: 180, G: 180, B: 190, A: 255},
	}

	Struggle = StruggleConfig{
		BarMax:    100,
		TapAmount: 10,
		TimeLimit: 2500 * time.Millisecond,
	}

	Jar = JarConfig{
		Width:       140,
		Height:      168,
		RightMargin: 25,
		PopScale:    1.15,
		PopDuration: 0.25,
		GlideSpeed:  25,
		Color:       color.RGBA{R: 150, G: 210, B: 230, A: 160},
	}

	Timer = TimerConfig{
		InitialSeconds: 90,
		CatchBonus:     4,
		WarningSeconds: 10,
	}

	Effect = EffectConfig{
		HitWidth:      64,
		HitHeight:     64,
		HitFrames:     3,
		HitFrameTicks: 6,
	}

	GameOver = GameOverConfig{
		ReturnDelay:    5 * time.Second,
		BannerDuration: 0.6,
		OverlayColor:   color.RGBA{R: 0, G: 0, B: 0, A: 170},
		TitleColor:     Red,
		TextColor:      White,
	}

	UI = UIConfig{
		HUDMargin:       12,
		HUDLineHeight:   20,
		BarWidth:        200,
		BarHeight:       14,
		BarBackground:   color.RGBA{R: 40, G: 40, B: 60, A: 220},
		BarFill:         color.RGBA{R: 90, G: 220, B: 120, A: 255},
		HeartColor:      Red,
		TextColor:       White,
		WarningColor:    Orange,
		NoticeColor:     Yellow,
		BackgroundTop:   color.RGBA{R: 10, G: 40, B: 80, A: 255},
		MenuPanelColor:  color.RGBA{R: 15, G: 30, B: 55, A: 235},
		ButtonIdle:      color.RGBA{R: 40, G: 90, B: 140, A: 255},
		ButtonHover:     color.RGBA{R: 60, G: 120, B: 180, A: 255},
		ButtonPressed:   color.RGBA{R: 30, G: 70, B: 110, A: 255},
		ButtonDisabled:  color.RGBA{R: 60, G: 60, B: 60, A: 255},
		InputBackground: color.RGBA{R: 25, G: 45, B: 75, A: 255},
		LeaderboardRows: 10,
		PlayerColor:     color.RGBA{R: 250, G: 220, B: 120, A: 255},
		HurtColor:       color.RGBA{R: 255, G: 90, B: 90, A: 255},
		EffectColor:     color.RGBA{R: 255, G: 255, B: 255, A: 200},
	}

	Debug = DebugConfig{
		SkipMenu:     false,
		ShowHitboxes: false,
		HitboxColor:  color.RGBA{R: 255, G: 0, B: 255, A: 255},
	}
}
