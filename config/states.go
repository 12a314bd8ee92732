package config

// GameState is the orchestrator's top-level state
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateHarpoonFired
	StateStruggling
	StateFishMovingToJar
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateHarpoonFired:
		return "harpoon_fired"
	case StateStruggling:
		return "struggling"
	case StateFishMovingToJar:
		return "fish_moving_to_jar"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Active reports whether a play session is running in this state.
func (s GameState) Active() bool {
	return s != StateMenu && s != StateGameOver
}

// FishKind identifies a fish variant in the Fish.Types table
type FishKind int

const (
	FishBasic FishKind = iota
	FishDart
	FishBig
)

func (k FishKind) String() string {
	if t, ok := Fish.Types[k]; ok {
		return t.Name
	}
	return "unknown"
}

// Direction is one of the four movement intents
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// StruggleKey is one of the two alternating struggle inputs
type StruggleKey int

const (
	StruggleKeyFirst StruggleKey = iota
	StruggleKeySecond
)

// Other returns the key expected after k.
func (k StruggleKey) Other() StruggleKey {
	if k == StruggleKeyFirst {
		return StruggleKeySecond
	}
	return StruggleKeyFirst
}

func (k StruggleKey) String() string {
	if k == StruggleKeyFirst {
		return "Q"
	}
	return "E"
}

// GameOverReason records why a session ended
type GameOverReason int

const (
	ReasonNone GameOverReason = iota
	ReasonTimeUp
	ReasonOutOfHearts
	ReasonGhost
)

func (r GameOverReason) String() string {
	switch r {
	case ReasonTimeUp:
		return "Time's up!"
	case ReasonOutOfHearts:
		return "Out of hearts!"
	case ReasonGhost:
		return "Caught by a ghost!"
	default:
		return ""
	}
}
