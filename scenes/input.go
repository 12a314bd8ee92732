package scenes

import (
	"github.com/automoto/fishhunt/components"
	cfg "github.com/automoto/fishhunt/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
)

var keyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveUp:         {ebiten.KeyW, ebiten.KeyArrowUp},
	cfg.ActionMoveDown:       {ebiten.KeyS, ebiten.KeyArrowDown},
	cfg.ActionMoveLeft:       {ebiten.KeyA, ebiten.KeyArrowLeft},
	cfg.ActionMoveRight:      {ebiten.KeyD, ebiten.KeyArrowRight},
	cfg.ActionStruggleFirst:  {ebiten.KeyQ},
	cfg.ActionStruggleSecond: {ebiten.KeyE},
	cfg.ActionPause:          {ebiten.KeySpace},
	cfg.ActionBack:           {ebiten.KeyEscape},
	cfg.ActionConfirm:        {ebiten.KeyY, ebiten.KeyEnter},
	cfg.ActionCancel:         {ebiten.KeyN},
}

var padBindings = map[cfg.ActionID][]ebiten.StandardGamepadButton{
	cfg.ActionMoveUp:         {ebiten.StandardGamepadButtonLeftTop},
	cfg.ActionMoveDown:       {ebiten.StandardGamepadButtonLeftBottom},
	cfg.ActionMoveLeft:       {ebiten.StandardGamepadButtonLeftLeft},
	cfg.ActionMoveRight:      {ebiten.StandardGamepadButtonLeftRight},
	cfg.ActionStruggleFirst:  {ebiten.StandardGamepadButtonFrontTopLeft},
	cfg.ActionStruggleSecond: {ebiten.StandardGamepadButtonFrontTopRight},
	cfg.ActionPause:          {ebiten.StandardGamepadButtonCenterRight},
	cfg.ActionBack:           {ebiten.StandardGamepadButtonCenterLeft},
	cfg.ActionConfirm:        {ebiten.StandardGamepadButtonRightBottom},
	cfg.ActionCancel:         {ebiten.StandardGamepadButtonRightRight},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// pollInput swaps the input buffers and reads keyboard, gamepads and mouse.
func pollInput(in *components.InputData) {
	in.Swap()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for actionID, keys := range keyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[actionID] = true
			}
		}
	}
	for actionID, buttons := range padBindings {
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range buttons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					in.Current[actionID] = true
				}
			}
		}
	}

	x, y := ebiten.CursorPosition()
	in.CursorX, in.CursorY = float64(x), float64(y)
	in.Click = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// getOrCreateInput returns the singleton Input component, creating it if needed
func getOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
	}
	return components.Input.Get(entry)
}
