package systems

import (
	"time"

	"github.com/automoto/fishhunt/components"
	cfg "github.com/automoto/fishhunt/config"
	"github.com/yohamta/donburi"
)

// Rect is an axis-aligned box in screen space.
type Rect struct {
	X, Y, W, H float64
}

type EntityView struct {
	Ghost       bool
	Kind        cfg.FishKind
	Bounds      Rect
	Box         Rect
	FacingRight bool
	Frame       int
}

type PlayerView struct {
	Bounds      Rect
	Box         Rect
	FacingRight bool
	Moving      bool
	Hurt        bool
	HurtFrame   int
	Frame       int
	Hearts      int
	MaxHearts   int
}

type HarpoonView struct {
	State            components.HarpoonState
	OriginX, OriginY float64
	TipX, TipY       float64
	Tip              Rect
}

type StruggleView struct {
	Progress  float64
	NextKey   cfg.StruggleKey
	Presses   int
	Remaining time.Duration
}

type JarView struct {
	Bounds Rect
	Count  int
	Score  int
	Scale  float32
}

type EffectView struct {
	Kind   components.EffectKind
	Bounds Rect
	Frame  int
}

// Snapshot is a read-only copy of everything the renderer draws. Nothing in
// it points back into the world.
type Snapshot struct {
	State    cfg.GameState
	Username string

	Player   PlayerView
	Harpoon  HarpoonView
	Entities []EntityView
	Towed    *EntityView // hooked or struggling fish
	Glide    *EntityView
	Effects  []EffectView

	JarVisible bool
	Jar        JarView
	Struggle   *StruggleView

	RemainingSeconds int
	Reason           cfg.GameOverReason
	ReturnIn         time.Duration
	ConfirmingQuit   bool
	Notice           string
	BannerY          float32
}

func (l *Logic) Snapshot() Snapshot {
	s := l.sessionData()
	snap := Snapshot{
		State:            s.State,
		Username:         s.Username,
		Player:           playerView(l.player),
		Harpoon:          l.harpoonView(),
		JarVisible:       jarVisible(s.State, components.Jar.Get(l.jar)),
		Jar:              jarView(l.jar),
		RemainingSeconds: s.RemainingSeconds,
		Reason:           s.Reason,
		ReturnIn:         s.ReturnTimer,
		ConfirmingQuit:   s.ConfirmingQuit,
		Notice:           s.Notice,
		BannerY:          s.BannerY,
	}

	for _, id := range l.handler.Snapshot() {
		if e := entryOf(l.world, id); e != nil {
			snap.Entities = append(snap.Entities, entityView(e))
		}
	}

	st := components.Struggle.Get(l.session)
	if st.Active {
		snap.Struggle = &StruggleView{
			Progress:  st.Progress(),
			NextKey:   st.NextKey,
			Presses:   st.Presses,
			Remaining: st.Remaining(),
		}
	}
	towed := components.Harpoon.Get(l.harpoon).Hooked()
	if towed == donburi.Null && st.Active {
		towed = st.Target
	}
	if e := entryOf(l.world, towed); e != nil {
		v := entityView(e)
		snap.Towed = &v
	}
	if e := entryOf(l.world, components.Glide.Get(l.session).Fish); e != nil {
		v := entityView(e)
		snap.Glide = &v
	}

	components.Effect.Each(l.world, func(e *donburi.Entry) {
		snap.Effects = append(snap.Effects, EffectView{
			Kind:   components.Effect.Get(e).Kind,
			Bounds: bounds(components.Body.Get(e)),
			Frame:  components.Animation.Get(e).Current.Frame(),
		})
	})
	return snap
}

// jarVisible shows the jar while a catch is decided or delivered, and until
// the pop from the last catch settles.
func jarVisible(state cfg.GameState, jar *components.JarData) bool {
	switch state {
	case cfg.StateStruggling, cfg.StateFishMovingToJar:
		return true
	case cfg.StateMenu:
		return false
	}
	return jar.Pop != nil
}

func bounds(b *components.BodyData) Rect {
	return Rect{X: b.X, Y: b.Y, W: float64(b.W), H: float64(b.H)}
}

func box(b *components.BodyData) Rect {
	x, y, w, h := b.Box()
	return Rect{X: x, Y: y, W: w, H: h}
}

func entityView(e *donburi.Entry) EntityView {
	body := components.Body.Get(e)
	v := EntityView{
		Bounds:      bounds(body),
		Box:         box(body),
		FacingRight: body.FacingRight,
		Frame:       components.Animation.Get(e).Current.Frame(),
	}
	if e.HasComponent(components.Fish) {
		v.Kind = components.Fish.Get(e).Kind
	} else {
		v.Ghost = true
	}
	return v
}

func playerView(e *donburi.Entry) PlayerView {
	body := components.Body.Get(e)
	p := components.Player.Get(e)
	anim := components.Animation.Get(e)
	frame := anim.Current.Frame()
	if p.Moving && anim.Alternate != nil {
		frame = anim.Alternate.Frame()
	}
	v := PlayerView{
		Bounds:      bounds(body),
		Box:         box(body),
		FacingRight: body.FacingRight,
		Moving:      p.Moving,
		Hurt:        p.Immune(),
		Frame:       frame,
		Hearts:      p.Hearts,
		MaxHearts:   p.MaxHearts,
	}
	if v.Hurt && cfg.Player.HurtFrames > 0 {
		per := cfg.Player.HurtDuration / time.Duration(cfg.Player.HurtFrames)
		if per > 0 {
			v.HurtFrame = min(int((cfg.Player.HurtDuration-p.HurtRemaining)/per), cfg.Player.HurtFrames-1)
		}
	}
	return v
}

func (l *Logic) harpoonView() HarpoonView {
	h := components.Harpoon.Get(l.harpoon)
	cx, cy := components.Body.Get(l.player).Center()
	obj := components.Object.Get(l.harpoon)
	return HarpoonView{
		State:   h.State(),
		OriginX: cx,
		OriginY: cy,
		TipX:    h.TipX,
		TipY:    h.TipY,
		Tip:     Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H},
	}
}

func jarView(e *donburi.Entry) JarView {
	j := components.Jar.Get(e)
	return JarView{
		Bounds: bounds(components.Body.Get(e)),
		Count:  j.Count,
		Score:  j.Score,
		Scale:  j.Scale,
	}
}
