package scenes

import (
	"context"
	"errors"
	"image/color"
	"strings"
	"sync"
	"time"

	cfg "github.com/automoto/fishhunt/config"
	"github.com/automoto/fishhunt/leaderboard"
	"github.com/automoto/fishhunt/systems"
	"github.com/automoto/fishhunt/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

const boardTimeout = 2 * time.Second

// MenuScene shows name entry and the leaderboard
type MenuScene struct {
	ecs          *ecs.ECS
	shared       *Shared
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
	started      bool
}

func NewMenuScene(sc SceneChanger, shared *Shared) *MenuScene {
	return &MenuScene{sceneChanger: sc, shared: shared}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	// audio only; the simulation is idle in the menu
	ms.ecs.Update()
	if ms.menuUI == nil {
		return
	}
	ms.menuUI.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ms.play(ms.menuUI.Username())
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(ms.shared.Logic.World())
	ms.ecs.AddSystem(ms.shared.Sound.Update)

	menuUI, err := ui.NewMenuUI(
		ms.shared.Profile.LastUsername,
		ms.shared.Sound.Settings().Muted,
		ms.play,
		ms.sceneChanger.RequestQuit,
		ms.toggleMute,
	)
	if err != nil {
		ms.shared.Log.Error("menu unavailable", "err", err)
		ms.sceneChanger.RequestQuit()
		return
	}
	ms.menuUI = menuUI
	ms.refreshLeaderboard()

	if notice := ms.shared.Logic.Snapshot().Notice; notice != "" {
		ms.menuUI.SetStatus(notice)
	}
}

func (ms *MenuScene) refreshLeaderboard() {
	if ms.shared.Board == nil {
		ms.menuUI.SetStatus("Leaderboard unavailable")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), boardTimeout)
	defer cancel()

	results, err := ms.shared.Board.All(ctx)
	if err != nil {
		ms.shared.Log.Warn("could not read leaderboard", "err", err)
		ms.menuUI.SetStatus("Leaderboard unavailable")
		return
	}
	if n := cfg.UI.LeaderboardRows; len(results) > n {
		results = results[:n]
	}
	ms.menuUI.SetLeaderboard(results)
	ms.refreshTotals(ctx)
}

// refreshTotals shows the entered player's lifetime totals, which may sit
// below the visible rows.
func (ms *MenuScene) refreshTotals(ctx context.Context) {
	name := strings.TrimSpace(ms.menuUI.Username())
	if name == "" {
		ms.menuUI.SetTotals(leaderboard.GameData{}, false)
		return
	}
	result, found, err := ms.shared.Board.Get(ctx, name)
	if err != nil {
		ms.shared.Log.Warn("could not read totals", "username", name, "err", err)
		return
	}
	ms.menuUI.SetTotals(result, found)
}

func (ms *MenuScene) play(username string) {
	if ms.started {
		return
	}
	err := ms.shared.Logic.StartGame(username)
	switch {
	case errors.Is(err, systems.ErrEmptyUsername):
		ms.menuUI.SetStatus("Enter a name to play")
		return
	case err != nil:
		ms.shared.Log.Warn("could not start", "err", err)
		ms.menuUI.SetStatus("Could not start a game")
		return
	}
	ms.started = true
	ms.shared.Sound.Play(cfg.SoundMenuSelect)
	ms.shared.Profile.LastUsername = strings.TrimSpace(username)
	ms.shared.saveProfile()
	ms.sceneChanger.ChangeScene(NewGameScene(ms.sceneChanger, ms.shared))
}

func (ms *MenuScene) toggleMute() bool {
	settings := ms.shared.Sound.ToggleMute()
	ms.shared.saveProfile()
	return settings.Muted
}
