package systems

import (
	"time"

	"github.com/automoto/fishhunt/components"
	cfg "github.com/automoto/fishhunt/config"
	"github.com/automoto/fishhunt/gamemath"
	"github.com/yohamta/donburi"
)

// UpdatePlayer applies movement intents, clamped to the playfield. The hurt
// timer runs down every tick and the player is held in place while it does.
func UpdatePlayer(e *donburi.Entry, layout cfg.Layout, dt time.Duration, canMove bool) {
	player := components.Player.Get(e)
	body := components.Body.Get(e)
	anim := components.Animation.Get(e)

	if player.Immune() {
		player.HurtRemaining -= dt
		if player.HurtRemaining < 0 {
			player.HurtRemaining = 0
		}
		player.Moving = false
		return
	}
	if !canMove {
		player.Moving = false
		anim.Current.Update()
		return
	}

	dx, dy := 0.0, 0.0
	if player.Left {
		dx -= player.Speed
	}
	if player.Right {
		dx += player.Speed
	}
	if player.Up {
		dy -= player.Speed
	}
	if player.Down {
		dy += player.Speed
	}
	player.Moving = dx != 0 || dy != 0
	if dx != 0 {
		body.FacingRight = dx > 0
	}

	x := gamemath.Clamp(body.X+dx, 0, float64(layout.Width-body.W))
	y := gamemath.Clamp(body.Y+dy, 0, float64(layout.Height-body.H))
	SetPosition(e, x, y)

	if player.Moving && anim.Alternate != nil {
		anim.Alternate.Update()
	} else {
		anim.Current.Update()
	}
}

// HurtPlayer removes one heart and starts the hurt reaction. It returns the
// hearts left.
func HurtPlayer(e *donburi.Entry) int {
	player := components.Player.Get(e)
	if player.Hearts > 0 {
		player.Hearts--
	}
	player.HurtRemaining = cfg.Player.HurtDuration
	player.ClearIntents()
	return player.Hearts
}

// ResetPlayer puts the player back at the start with full hearts.
func ResetPlayer(e *donburi.Entry, layout cfg.Layout) {
	player := components.Player.Get(e)
	player.Hearts = player.MaxHearts
	player.HurtRemaining = 0
	player.ClearIntents()
	components.Body.Get(e).FacingRight = true
	SetPosition(e, layout.PlayerStartX, layout.PlayerStartY)
}
