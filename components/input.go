package components

import (
	cfg "github.com/automoto/fishhunt/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions. Edges are computed on demand by comparing the two.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Click is set on the frame the fire button went down.
	Click bool

	CursorX, CursorY float64
}

// Swap starts a new frame: current becomes previous, current is cleared.
func (in *InputData) Swap() {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	in.Click = false
}

func (in *InputData) Action(id cfg.ActionID) ActionState {
	cur, prev := in.Current[id], in.Previous[id]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

var Input = donburi.NewComponentType[InputData]()
