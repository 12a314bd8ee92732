package main

import (
	"context"
	"errors"
	"image"
	"math/rand"
	"os"
	"time"

	"github.com/automoto/fishhunt/assets"
	"github.com/automoto/fishhunt/assets/levels"
	"github.com/automoto/fishhunt/config"
	"github.com/automoto/fishhunt/fonts"
	"github.com/automoto/fishhunt/leaderboard"
	"github.com/automoto/fishhunt/persistence"
	"github.com/automoto/fishhunt/scenes"
	"github.com/automoto/fishhunt/sound"
	"github.com/automoto/fishhunt/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) RequestQuit() {
	g.quit = true
}

func NewGame(shared *scenes.Shared, rt config.RuntimeConfig) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu || rt.SkipMenu {
		name := shared.Profile.LastUsername
		if name == "" {
			name = config.SkipMenuUsername
		}
		err := shared.Logic.StartGame(name)
		if err == nil {
			g.scene = scenes.NewGameScene(g, shared)
			return g
		}
		shared.Log.Warn("could not skip the menu", "username", name, "err", err)
	}
	g.scene = scenes.NewMenuScene(g, shared)
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "fishhunt",
	})

	rt, err := config.LoadRuntime(os.Args[1:])
	if err != nil {
		logger.Fatal("invalid arguments", "err", err)
	}
	if lvl, err := log.ParseLevel(rt.LogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level", "level", rt.LogLevel)
	}

	if err := run(logger, rt); err != nil {
		logger.Fatal("game exited", "err", err)
	}
}

func run(logger *log.Logger, rt config.RuntimeConfig) error {
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	arena, err := levels.LoadArena()
	if err != nil {
		logger.Warn("using default arena", "err", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	board, err := leaderboard.Open(ctx, rt.DatabasePath, logger.With("component", "leaderboard"))
	cancel()
	var recorder systems.ResultRecorder
	var reader scenes.Board
	if err != nil {
		// play on without a leaderboard; saves become notices
		logger.Error("leaderboard unavailable", "path", rt.DatabasePath, "err", err)
	} else {
		defer board.Close()
		recorder, reader = board, board
	}

	profiles, err := persistence.Open(logger)
	if err != nil {
		logger.Warn("profile storage unavailable", "err", err)
	}
	defaults := sound.DefaultSettings()
	profile := profiles.Load(persistence.Profile{
		MusicVolume: defaults.MusicVolume,
		SFXVolume:   defaults.SFXVolume,
	})
	profile.LastUsername = rt.PlayerName(profile.LastUsername)

	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	snd := sound.New(sound.Settings{
		MusicVolume: profile.MusicVolume,
		SFXVolume:   profile.SFXVolume,
		Muted:       profile.Muted || rt.Muted,
	}, logger)
	defer snd.Close()
	snd.Preload()

	images := assets.NewImageLoader(logger.With("component", "assets"))
	images.Preload()

	shared := &scenes.Shared{
		Logic: systems.NewLogic(systems.Options{
			Layout:   arena.Layout,
			Rand:     rand.New(rand.NewSource(seed)),
			Recorder: recorder,
			Logger:   logger,
		}),
		Board:    reader,
		Sound:    snd,
		Images:   images,
		Profiles: profiles,
		Profile:  profile,
		Log:      logger,
	}
	logger.Info("starting", "arena", arena.Name, "seed", seed, "db", rt.DatabasePath)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Monster Fish Hunt")
	ebiten.SetTPS(config.C.TPS)

	err = ebiten.RunGame(NewGame(shared, rt))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
