package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionStruggleFirst
	ActionStruggleSecond
	ActionPause // pause/quit prompt during play, skip on game over
	ActionBack  // unconditional return to menu
	ActionConfirm
	ActionCancel
	ActionCount // Must be last - used for array sizing
)

// MoveActions maps movement actions to player directions.
var MoveActions = map[ActionID]Direction{
	ActionMoveUp:    DirUp,
	ActionMoveDown:  DirDown,
	ActionMoveLeft:  DirLeft,
	ActionMoveRight: DirRight,
}
