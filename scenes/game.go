package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/fishhunt/components"
	cfg "github.com/automoto/fishhunt/config"
	"github.com/automoto/fishhunt/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GameScene runs a session until the simulation returns to the menu.
type GameScene struct {
	ecs          *ecs.ECS
	shared       *Shared
	sceneChanger SceneChanger
	once         sync.Once
	clock        *systems.TickClock
	hud          *hud
	world        *worldRenderer
}

func NewGameScene(sc SceneChanger, shared *Shared) *GameScene {
	return &GameScene{sceneChanger: sc, shared: shared}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	if gs.shared.Logic.State() == cfg.StateMenu {
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.shared))
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	gs.clock = systems.NewTickClock(cfg.C.TPS)
	gs.world = newWorldRenderer(gs.shared.Logic, gs.shared.Images)
	gs.hud = newHUD(gs.shared.Logic, gs.shared.Images)

	gs.ecs = ecs.NewECS(gs.shared.Logic.World())

	// Input first, then the simulation tick, then audio for what it queued
	gs.ecs.AddSystem(gs.updateControls)
	gs.ecs.AddSystem(gs.updateSimulation)
	gs.ecs.AddSystem(gs.shared.Sound.Update)

	gs.ecs.AddRenderer(layerWorld, gs.world.Draw)
	gs.ecs.AddRenderer(layerHUD, gs.hud.Draw)
}

// updateControls turns this frame's input into simulation commands.
func (gs *GameScene) updateControls(e *ecs.ECS) {
	in := getOrCreateInput(e.World)
	pollInput(in)
	l := gs.shared.Logic

	for action, dir := range cfg.MoveActions {
		l.MovePlayer(dir, in.Action(action).Pressed)
	}
	if in.Click {
		l.FireAt(in.CursorX, in.CursorY)
	}
	if in.Action(cfg.ActionStruggleFirst).JustPressed {
		l.StruggleKey(cfg.StruggleKeyFirst)
	}
	if in.Action(cfg.ActionStruggleSecond).JustPressed {
		l.StruggleKey(cfg.StruggleKeySecond)
	}

	switch {
	case in.Action(cfg.ActionBack).JustPressed:
		l.Escape()
	case in.Action(cfg.ActionPause).JustPressed:
		l.PauseOrQuit()
	case in.Action(cfg.ActionConfirm).JustPressed:
		l.ConfirmQuit()
	case in.Action(cfg.ActionCancel).JustPressed:
		l.CancelQuit()
	}
}

func (gs *GameScene) updateSimulation(e *ecs.ECS) {
	gs.shared.Logic.Update(gs.clock.Next())
}

// drawInput is read by renderers that need the cursor.
func drawInput(e *ecs.ECS) *components.InputData {
	return getOrCreateInput(e.World)
}
