package systems

import (
	"context"
	"errors"
	"io"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/fishhunt/components"
	cfg "github.com/automoto/fishhunt/config"
	"github.com/automoto/fishhunt/gamemath"
	"github.com/automoto/fishhunt/leaderboard"
	"github.com/automoto/fishhunt/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

const tick = time.Second / 60

type fakeRecorder struct {
	calls []leaderboard.GameData
	err   error
}

func (f *fakeRecorder) Upsert(_ context.Context, result leaderboard.GameData) error {
	f.calls = append(f.calls, result)
	return f.err
}

func newTestLogic(t *testing.T, rec ResultRecorder) *Logic {
	t.Helper()
	return NewLogic(Options{
		Rand:        rand.New(rand.NewSource(1)),
		Recorder:    rec,
		Logger:      log.New(io.Discard),
		MaxEntities: -1,
	})
}

func startSession(t *testing.T, l *Logic) {
	t.Helper()
	if err := l.StartGame("nemo"); err != nil {
		t.Fatalf("StartGame() error = %v", err)
	}
}

// placeFish puts a stationary fish centered at (cx, cy) into the roaming pool.
func placeFish(l *Logic, kind cfg.FishKind, cx, cy float64) *donburi.Entry {
	ft := cfg.Fish.Types[kind]
	fish := factory.CreateFish(l.World(), l.Space(), kind,
		cx-float64(ft.FrameWidth)/2, cy-float64(ft.FrameHeight)/2, 0)
	l.Handler().track(fish)
	return fish
}

func tickUntil(t *testing.T, l *Logic, limit int, done func() bool) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		l.Update(tick)
		if done() {
			return i
		}
	}
	t.Fatalf("condition not reached within %d ticks (state %v)", limit, l.State())
	return 0
}

func playerCenter(l *Logic) (float64, float64) {
	return components.Body.Get(l.player).Center()
}

// reelIn fires at a fish to the right of the player and ticks until the
// struggle starts. The world recycles entries, so callers get the entity.
func reelIn(t *testing.T, l *Logic, kind cfg.FishKind) donburi.Entity {
	t.Helper()
	px, py := playerCenter(l)
	fish := placeFish(l, kind, px+116, py)
	if !l.FireAt(px+116, py) {
		t.Fatal("FireAt() = false, want true")
	}
	if l.State() != cfg.StateHarpoonFired {
		t.Fatalf("state = %v, want %v", l.State(), cfg.StateHarpoonFired)
	}
	id := fish.Entity()
	tickUntil(t, l, 200, func() bool { return l.State() == cfg.StateStruggling })
	return id
}

func TestStartGameRejectsEmptyUsername(t *testing.T) {
	l := newTestLogic(t, nil)
	if err := l.StartGame("   "); !errors.Is(err, ErrEmptyUsername) {
		t.Fatalf("StartGame(blank) error = %v, want ErrEmptyUsername", err)
	}
	if l.State() != cfg.StateMenu {
		t.Fatalf("state = %v, want menu", l.State())
	}
}

func TestStartGameWhileActive(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)
	if err := l.StartGame("other"); !errors.Is(err, ErrSessionActive) {
		t.Fatalf("StartGame() during play error = %v, want ErrSessionActive", err)
	}
}

func TestCatchFlow(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)
	fish := reelIn(t, l, cfg.FishBasic)

	snap := l.Snapshot()
	if snap.Struggle == nil {
		t.Fatal("Snapshot().Struggle = nil while struggling")
	}
	if snap.Struggle.Progress != 0 || snap.Struggle.NextKey != cfg.StruggleKeyFirst {
		t.Fatalf("struggle start = (%v, %v), want (0, first key)", snap.Struggle.Progress, snap.Struggle.NextKey)
	}
	if snap.Towed == nil {
		t.Fatal("Snapshot().Towed = nil while struggling")
	}

	// repeating a key is ignored
	l.StruggleKey(cfg.StruggleKeyFirst)
	l.StruggleKey(cfg.StruggleKeyFirst)
	if got := components.Struggle.Get(l.session).Presses; got != 1 {
		t.Fatalf("presses after repeat = %d, want 1", got)
	}

	secondsBefore := l.Snapshot().RemainingSeconds
	key := cfg.StruggleKeySecond
	for i := 1; i < 10; i++ {
		if l.State() != cfg.StateStruggling {
			t.Fatalf("struggle ended after %d presses, want 10", i)
		}
		l.StruggleKey(key)
		key = key.Other()
	}
	if l.State() != cfg.StateFishMovingToJar {
		t.Fatalf("state = %v, want %v", l.State(), cfg.StateFishMovingToJar)
	}
	h := components.Harpoon.Get(l.harpoon)
	if h.IsFiring() || h.Hooked() != donburi.Null {
		t.Fatal("harpoon still active after a landed fish")
	}

	jar := components.Jar.Get(l.jar)
	if jar.Count != 0 {
		t.Fatalf("jar count before glide ends = %d, want 0", jar.Count)
	}

	tickUntil(t, l, 100, func() bool { return l.State() == cfg.StatePlaying })

	snap = l.Snapshot()
	if snap.Jar.Count != 1 || snap.Jar.Score != 10 {
		t.Fatalf("jar = (%d, %d), want (1, 10)", snap.Jar.Count, snap.Jar.Score)
	}
	if snap.RemainingSeconds != secondsBefore+cfg.Timer.CatchBonus {
		t.Fatalf("remaining = %d, want %d", snap.RemainingSeconds, secondsBefore+cfg.Timer.CatchBonus)
	}
	if l.World().Valid(fish) {
		t.Fatal("landed fish still in the world")
	}
	if !containsSound(l, cfg.SoundCatch) {
		t.Fatal("catch sound not queued")
	}
}

func TestJarShownOnlyAroundACatch(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)
	if l.Snapshot().JarVisible {
		t.Fatal("jar visible during normal play")
	}

	reelIn(t, l, cfg.FishBasic)
	if !l.Snapshot().JarVisible {
		t.Fatal("jar hidden while struggling")
	}
	key := cfg.StruggleKeyFirst
	for l.State() == cfg.StateStruggling {
		l.StruggleKey(key)
		key = key.Other()
	}
	if !l.Snapshot().JarVisible {
		t.Fatal("jar hidden during the glide")
	}

	tickUntil(t, l, 100, func() bool { return l.State() == cfg.StatePlaying })
	if !l.Snapshot().JarVisible {
		t.Fatal("jar hidden before its pop settled")
	}
	tickUntil(t, l, 60, func() bool { return !l.Snapshot().JarVisible })
}

func TestStruggleTimeout(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)
	fish := reelIn(t, l, cfg.FishBig)

	ticks := tickUntil(t, l, 400, func() bool { return l.State() != cfg.StateStruggling })
	if elapsed := time.Duration(ticks) * tick; elapsed <= cfg.Struggle.TimeLimit {
		t.Fatalf("struggle failed after %v, want more than %v", elapsed, cfg.Struggle.TimeLimit)
	}
	if l.State() != cfg.StatePlaying {
		t.Fatalf("state = %v, want playing", l.State())
	}

	snap := l.Snapshot()
	if snap.Player.Hearts != cfg.Player.MaxHearts-1 {
		t.Fatalf("hearts = %d, want %d", snap.Player.Hearts, cfg.Player.MaxHearts-1)
	}
	if len(snap.Effects) != 1 {
		t.Fatalf("effects = %d, want 1", len(snap.Effects))
	}
	if !snap.Player.Hurt {
		t.Fatal("player not in hurt reaction")
	}
	if l.World().Valid(fish) || l.Handler().Len() != 0 {
		t.Fatal("failed fish was not removed")
	}
	h := components.Harpoon.Get(l.harpoon)
	if h.IsFiring() || h.Hooked() != donburi.Null {
		t.Fatal("harpoon still active after a failed struggle")
	}
}

func TestGameOverOnLastHeart(t *testing.T) {
	rec := &fakeRecorder{}
	l := newTestLogic(t, rec)
	startSession(t, l)
	components.Player.Get(l.player).Hearts = 1

	reelIn(t, l, cfg.FishBasic)
	tickUntil(t, l, 400, func() bool { return l.State() != cfg.StateStruggling })

	s := l.Snapshot()
	if s.State != cfg.StateGameOver || s.Reason != cfg.ReasonOutOfHearts {
		t.Fatalf("state, reason = %v, %v; want game over, out of hearts", s.State, s.Reason)
	}
	if s.Player.Hearts != 0 {
		t.Fatalf("hearts = %d, want 0", s.Player.Hearts)
	}

	l.triggerGameOver(cfg.ReasonTimeUp)
	if got := l.Snapshot().Reason; got != cfg.ReasonOutOfHearts {
		t.Fatalf("reason after second trigger = %v, want unchanged", got)
	}
	if len(rec.calls) != 1 {
		t.Fatalf("recorder calls = %d, want 1", len(rec.calls))
	}
	if rec.calls[0].Username != "nemo" {
		t.Fatalf("saved username = %q, want nemo", rec.calls[0].Username)
	}
}

func TestGhostCollisionCostsHeart(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)
	components.Player.Get(l.player).Hearts = 1

	px, py := playerCenter(l)
	ghost := factory.CreateGhost(l.World(), l.Space(),
		px-float64(cfg.Ghost.FrameWidth)/2, py-float64(cfg.Ghost.FrameHeight)/2, 0)
	l.Handler().track(ghost)
	id := ghost.Entity()

	l.Update(tick)

	if l.World().Valid(id) {
		t.Fatal("ghost not removed after hitting the player")
	}
	s := l.Snapshot()
	if s.State != cfg.StateGameOver || s.Reason != cfg.ReasonGhost {
		t.Fatalf("state, reason = %v, %v; want game over by ghost", s.State, s.Reason)
	}
	if !containsSound(l, cfg.SoundFail) {
		t.Fatal("fail sound not queued")
	}
}

func TestGhostCollisionWithHeartsLeft(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)

	px, py := playerCenter(l)
	ghost := factory.CreateGhost(l.World(), l.Space(),
		px-float64(cfg.Ghost.FrameWidth)/2, py-float64(cfg.Ghost.FrameHeight)/2, 0)
	l.Handler().track(ghost)
	id := ghost.Entity()

	l.Update(tick)

	if l.World().Valid(id) || l.Handler().Len() != 0 {
		t.Fatal("ghost not removed after hitting the player")
	}
	s := l.Snapshot()
	if s.State != cfg.StatePlaying {
		t.Fatalf("state = %v, want playing", s.State)
	}
	if s.Player.Hearts != cfg.Player.MaxHearts-1 {
		t.Fatalf("hearts = %d, want %d", s.Player.Hearts, cfg.Player.MaxHearts-1)
	}
	if len(s.Effects) != 1 {
		t.Fatalf("effects = %d, want 1", len(s.Effects))
	}
	if !containsSound(l, cfg.SoundHit) {
		t.Fatal("hit sound not queued")
	}
}

func TestImmunePlayerIgnoresGhosts(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)
	components.Player.Get(l.player).HurtRemaining = time.Second

	px, py := playerCenter(l)
	ghost := factory.CreateGhost(l.World(), l.Space(),
		px-float64(cfg.Ghost.FrameWidth)/2, py-float64(cfg.Ghost.FrameHeight)/2, 0)
	l.Handler().track(ghost)
	id := ghost.Entity()
	l.Update(tick)

	if !l.World().Valid(id) {
		t.Fatal("ghost consumed while the player was immune")
	}
	if got := l.Snapshot().Player.Hearts; got != cfg.Player.MaxHearts {
		t.Fatalf("hearts = %d, want %d", got, cfg.Player.MaxHearts)
	}
}

func TestCountdownTimeUp(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)
	components.Session.Get(l.session).RemainingSeconds = 1

	ticks := tickUntil(t, l, 120, func() bool { return l.State() == cfg.StateGameOver })
	if time.Duration(ticks)*tick < time.Second {
		t.Fatalf("game over after %d ticks, before a full second", ticks)
	}
	s := l.Snapshot()
	if s.Reason != cfg.ReasonTimeUp {
		t.Fatalf("reason = %v, want time up", s.Reason)
	}
	if s.Player.Hearts != cfg.Player.MaxHearts {
		t.Fatalf("hearts = %d, want %d", s.Player.Hearts, cfg.Player.MaxHearts)
	}
}

func TestCountdownPausedDuringGlide(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)
	reelIn(t, l, cfg.FishBasic)
	key := cfg.StruggleKeyFirst
	for l.State() == cfg.StateStruggling {
		l.StruggleKey(key)
		key = key.Other()
	}

	s := components.Session.Get(l.session)
	before, timer := s.RemainingSeconds, s.SecondTimer
	l.Update(tick)
	if l.State() != cfg.StateFishMovingToJar {
		t.Fatalf("state = %v, want glide", l.State())
	}
	s = components.Session.Get(l.session)
	if s.RemainingSeconds != before || s.SecondTimer != timer {
		t.Fatal("countdown advanced during the glide")
	}
}

func TestMissRetractsAtMaxLength(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)

	px, py := playerCenter(l)
	if !l.FireAt(px-cfg.Harpoon.MaxLength-50, py) {
		t.Fatal("FireAt() = false")
	}
	h := components.Harpoon.Get(l.harpoon)
	want := 30 // ceil(350 / 12)
	for i := 1; i < want; i++ {
		l.Update(tick)
		if !h.IsFiring() {
			t.Fatalf("retracted after %d ticks at length %.1f, want %d ticks", i, h.Length, want)
		}
	}
	l.Update(tick)
	if h.IsFiring() || h.Hooked() != donburi.Null {
		t.Fatal("harpoon still firing after reaching max length")
	}
	if l.State() != cfg.StatePlaying {
		t.Fatalf("state = %v, want playing", l.State())
	}
}

func TestTipLeavingPlayfieldRetracts(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)

	px, py := playerCenter(l)
	if !l.FireAt(px, py-1000) {
		t.Fatal("FireAt() = false")
	}
	h := components.Harpoon.Get(l.harpoon)
	// the tip crosses y=0 well before max length
	want := int(math.Floor(py/h.Speed)) + 1
	if float64(want)*h.Speed >= h.MaxLength {
		t.Fatalf("player too far from the top for this test: %v", py)
	}
	ticks := tickUntil(t, l, 100, func() bool { return !h.IsFiring() })
	if ticks != want {
		t.Fatalf("retracted after %d ticks, want %d", ticks, want)
	}
	if l.State() != cfg.StatePlaying {
		t.Fatalf("state = %v, want playing", l.State())
	}
}

func TestExtendAimsFromCurrentPlayerCenter(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)

	px, py := playerCenter(l)
	tx, ty := px+300, py
	if !FireHarpoon(l.harpoon, l.player, tx, ty) {
		t.Fatal("FireHarpoon() = false")
	}
	body := components.Body.Get(l.player)
	SetPosition(l.player, body.X, body.Y+100)

	h := components.Harpoon.Get(l.harpoon)
	tipX, tipY := h.TipX, h.TipY
	if got := UpdateHarpoon(l.world, l.harpoon, l.player, l.layout); got != HarpoonNoEvent {
		t.Fatalf("UpdateHarpoon() = %v, want no event", got)
	}

	ncx, ncy := playerCenter(l)
	dx, dy := gamemath.Heading(ncx, ncy, tx, ty)
	wantX, wantY := tipX+dx*h.Speed, tipY+dy*h.Speed
	if math.Abs(h.TipX-wantX) > 1e-9 || math.Abs(h.TipY-wantY) > 1e-9 {
		t.Fatalf("tip = (%v, %v), want (%v, %v)", h.TipX, h.TipY, wantX, wantY)
	}
	if h.TipY >= tipY {
		t.Fatalf("tip y = %v, want it to rise above %v", h.TipY, tipY)
	}
}

func TestTowedFishSnapsToPlayerCenter(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)

	px, py := playerCenter(l)
	if !FireHarpoon(l.harpoon, l.player, px+200, py) {
		t.Fatal("FireHarpoon() = false")
	}
	h := components.Harpoon.Get(l.harpoon)
	fish := placeFish(l, cfg.FishBasic, px+h.PullSpeed/2, py)
	l.Handler().Remove(fish)
	if !h.Hook(fish) {
		t.Fatal("Hook() = false")
	}

	if got := UpdateHarpoon(l.world, l.harpoon, l.player, l.layout); got != HarpoonReachedPlayer {
		t.Fatalf("UpdateHarpoon() = %v, want reached player", got)
	}
	fx, fy := components.Body.Get(fish).Center()
	if fx != px || fy != py {
		t.Fatalf("fish center = (%v, %v), want (%v, %v)", fx, fy, px, py)
	}
}

func TestRecycledEntryIsNotTowed(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)

	px, py := playerCenter(l)
	if !FireHarpoon(l.harpoon, l.player, px+200, py) {
		t.Fatal("FireHarpoon() = false")
	}
	h := components.Harpoon.Get(l.harpoon)
	fish := placeFish(l, cfg.FishBasic, px+200, py)
	l.Handler().Remove(fish)
	if !h.Hook(fish) {
		t.Fatal("Hook() = false")
	}
	destroy(l.world, fish.Entity())

	// the next entity may reuse the fish's entry
	effect := factory.SpawnHitEffect(l.world, 50, 50)
	id := effect.Entity()
	before := *components.Body.Get(effect)

	if got := UpdateHarpoon(l.world, l.harpoon, l.player, l.layout); got != HarpoonRetracted {
		t.Fatalf("UpdateHarpoon() = %v, want retracted", got)
	}
	if h.IsFiring() {
		t.Fatal("harpoon still firing after its fish was removed")
	}
	e := entryOf(l.world, id)
	if e == nil {
		t.Fatal("effect removed")
	}
	if got := *components.Body.Get(e); got != before {
		t.Fatalf("effect moved: %+v -> %+v", before, got)
	}
}

func TestFireWhileFiringIsNoop(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)
	px, py := playerCenter(l)
	l.FireAt(px, py-200)
	l.Update(tick)

	h := components.Harpoon.Get(l.harpoon)
	before := *h
	if l.FireAt(px+100, py+100) {
		t.Fatal("second FireAt() = true, want false")
	}
	if *h != before {
		t.Fatalf("harpoon changed: %+v -> %+v", before, *h)
	}
}

func TestGhostIsNeverHooked(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)
	px, py := playerCenter(l)
	ghost := factory.CreateGhost(l.World(), l.Space(),
		px+150-float64(cfg.Ghost.FrameWidth)/2, py-float64(cfg.Ghost.FrameHeight)/2, 0)
	l.Handler().track(ghost)
	id := ghost.Entity()

	l.FireAt(px+150, py)
	h := components.Harpoon.Get(l.harpoon)
	for i := 0; i < 60 && h.IsFiring(); i++ {
		l.Update(tick)
		if h.Hooked() != donburi.Null {
			t.Fatal("ghost was hooked")
		}
	}
	if h.IsFiring() {
		t.Fatal("harpoon did not retract")
	}
	if !l.World().Valid(id) {
		t.Fatal("ghost destroyed by the harpoon")
	}
}

func TestQuitNeedsConfirmation(t *testing.T) {
	rec := &fakeRecorder{}
	l := newTestLogic(t, rec)
	startSession(t, l)

	l.PauseOrQuit()
	if !l.Snapshot().ConfirmingQuit {
		t.Fatal("confirmation not shown")
	}
	s := components.Session.Get(l.session)
	before := s.SecondTimer
	l.Update(tick)
	if s.SecondTimer != before {
		t.Fatal("countdown ran while the confirmation was open")
	}

	l.CancelQuit()
	if l.State() != cfg.StatePlaying || l.Snapshot().ConfirmingQuit {
		t.Fatal("cancel did not resume play")
	}

	l.PauseOrQuit()
	l.ConfirmQuit()
	if l.State() != cfg.StateMenu {
		t.Fatalf("state = %v, want menu", l.State())
	}
	if len(rec.calls) != 1 {
		t.Fatalf("recorder calls = %d, want 1", len(rec.calls))
	}
}

func TestEscapeDiscardsAttempt(t *testing.T) {
	l := newTestLogic(t, &fakeRecorder{})
	startSession(t, l)
	fish := reelIn(t, l, cfg.FishDart)

	l.Escape()
	if l.State() != cfg.StateMenu {
		t.Fatalf("state = %v, want menu", l.State())
	}
	if l.World().Valid(fish) {
		t.Fatal("struggling fish survived the return to menu")
	}
	if components.Struggle.Get(l.session).Active {
		t.Fatal("struggle still active")
	}
	if components.Harpoon.Get(l.harpoon).IsFiring() {
		t.Fatal("harpoon still firing")
	}
}

func TestGameOverAutoReturn(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)
	l.triggerGameOver(cfg.ReasonTimeUp)

	ticks := tickUntil(t, l, 400, func() bool { return l.State() == cfg.StateMenu })
	if time.Duration(ticks)*tick < cfg.GameOver.ReturnDelay {
		t.Fatalf("returned after %d ticks, before the delay", ticks)
	}
}

func TestSkipGameOver(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)
	l.triggerGameOver(cfg.ReasonTimeUp)
	l.PauseOrQuit()
	if l.State() != cfg.StateMenu {
		t.Fatalf("state = %v, want menu", l.State())
	}
}

func TestSaveFailureBecomesNotice(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	l := newTestLogic(t, rec)
	startSession(t, l)
	l.triggerGameOver(cfg.ReasonTimeUp)

	if l.State() != cfg.StateGameOver {
		t.Fatalf("state = %v, want game over", l.State())
	}
	if l.Snapshot().Notice == "" {
		t.Fatal("no notice after a failed save")
	}
}

func TestNewSessionResetsJar(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)
	LandCatch(l.jar, 25)
	l.Escape()
	startSession(t, l)

	snap := l.Snapshot()
	if snap.Jar.Count != 0 || snap.Jar.Score != 0 {
		t.Fatalf("jar = (%d, %d), want (0, 0)", snap.Jar.Count, snap.Jar.Score)
	}
	if snap.RemainingSeconds != cfg.Timer.InitialSeconds {
		t.Fatalf("remaining = %d, want %d", snap.RemainingSeconds, cfg.Timer.InitialSeconds)
	}
}

func TestMoveIgnoredWhileStruggling(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)
	reelIn(t, l, cfg.FishBasic)

	before := l.Snapshot().Player.Bounds
	l.MovePlayer(cfg.DirUp, true)
	l.Update(tick)
	if got := l.Snapshot().Player.Bounds; got != before {
		t.Fatalf("player moved while struggling: %+v -> %+v", before, got)
	}
}

func TestPlayerClampedToScreen(t *testing.T) {
	l := newTestLogic(t, nil)
	startSession(t, l)
	l.MovePlayer(cfg.DirLeft, true)
	l.MovePlayer(cfg.DirUp, true)
	for i := 0; i < 200; i++ {
		l.Update(tick)
	}
	b := l.Snapshot().Player.Bounds
	if b.X != 0 || b.Y != 0 {
		t.Fatalf("player at (%v, %v), want (0, 0)", b.X, b.Y)
	}
}

// TestRandomPlayInvariants drives sessions with random commands and checks
// the harpoon and jar invariants after every tick.
func TestRandomPlayInvariants(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		l := NewLogic(Options{
			Rand:   rand.New(rand.NewSource(seed)),
			Logger: log.New(io.Discard),
		})
		lastCount, lastScore := 0, 0

		for i := 0; i < 6000; i++ {
			if l.State() == cfg.StateMenu {
				startSession(t, l)
				lastCount, lastScore = 0, 0
			}
			switch rng.Intn(20) {
			case 0:
				l.FireAt(rng.Float64()*800, rng.Float64()*600)
			case 1, 2:
				l.StruggleKey(cfg.StruggleKey(rng.Intn(2)))
			case 3:
				l.MovePlayer(cfg.Direction(rng.Intn(4)), rng.Intn(2) == 0)
			}
			l.Update(tick)

			h := components.Harpoon.Get(l.harpoon)
			if hooked := h.Hooked(); hooked != donburi.Null {
				if !h.IsFiring() {
					t.Fatalf("seed %d tick %d: hooked while not firing", seed, i)
				}
				e := entryOf(l.world, hooked)
				if e == nil {
					t.Fatalf("seed %d tick %d: hooked entity no longer exists", seed, i)
				}
				if !e.HasComponent(components.Fish) {
					t.Fatalf("seed %d tick %d: non-fish hooked", seed, i)
				}
			}
			if l.State() == cfg.StateMenu {
				continue
			}
			jar := components.Jar.Get(l.jar)
			if jar.Count < lastCount || jar.Score < lastScore {
				t.Fatalf("seed %d tick %d: jar went backwards", seed, i)
			}
			lastCount, lastScore = jar.Count, jar.Score
			if n := l.Handler().Len(); n > cfg.Spawn.MaxEntities {
				t.Fatalf("seed %d tick %d: %d roamers, cap %d", seed, i, n, cfg.Spawn.MaxEntities)
			}
		}
	}
}

func containsSound(l *Logic, id cfg.SoundID) bool {
	for _, s := range components.Audio.Get(l.session).PendingSFX {
		if s == id {
			return true
		}
	}
	return false
}
