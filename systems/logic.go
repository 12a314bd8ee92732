package systems

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/automoto/fishhunt/components"
	cfg "github.com/automoto/fishhunt/config"
	"github.com/automoto/fishhunt/leaderboard"
	"github.com/automoto/fishhunt/systems/factory"
	"github.com/automoto/fishhunt/tags"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

var (
	ErrEmptyUsername = errors.New("username must not be empty")
	ErrSessionActive = errors.New("a session is already running")
)

// saveTimeout bounds the leaderboard write made on game over or quit.
const saveTimeout = 3 * time.Second

// ResultRecorder stores a finished session's result.
type ResultRecorder interface {
	Upsert(ctx context.Context, result leaderboard.GameData) error
}

type Options struct {
	Layout   cfg.Layout
	Rand     *rand.Rand
	Recorder ResultRecorder
	Logger   *log.Logger

	// MaxEntities caps roamers; zero uses config, negative disables spawning.
	MaxEntities int
}

// Logic is the game orchestrator. It owns the world, turns input commands
// into state changes and advances the simulation one tick per Update.
// Logic is driven from a single goroutine; only its EntityHandler may be
// read concurrently.
type Logic struct {
	world    donburi.World
	space    *resolv.Space
	handler  *EntityHandler
	layout   cfg.Layout
	recorder ResultRecorder
	log      *log.Logger

	session *donburi.Entry
	player  *donburi.Entry
	harpoon *donburi.Entry
	jar     *donburi.Entry
}

func NewLogic(opts Options) *Logic {
	if opts.Layout.Width == 0 || opts.Layout.Height == 0 {
		opts.Layout = cfg.DefaultLayout()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	capacity := opts.MaxEntities
	if capacity < 0 {
		capacity = -1
	}

	l := &Logic{
		world:    donburi.NewWorld(),
		layout:   opts.Layout,
		recorder: opts.Recorder,
		log:      opts.Logger.With("component", "logic"),
	}
	spaceEntry := factory.CreateSpace(l.world, l.layout.Width, l.layout.Height, 16, 16)
	l.space = components.Space.Get(spaceEntry)
	l.handler = NewEntityHandler(l.world, l.space, opts.Rand, l.layout.Width, l.layout.Height, capacity,
		opts.Logger.With("component", "spawner"))

	l.session = factory.CreateSession(l.world)
	l.player = factory.CreatePlayer(l.world, l.space, l.layout.PlayerStartX, l.layout.PlayerStartY)
	l.harpoon = factory.CreateHarpoon(l.world, l.space)
	l.jar = factory.CreateJar(l.world, l.space, l.layout.JarX, l.layout.JarY, l.layout.JarWidth, l.layout.JarHeight)
	components.Audio.Get(l.session).Music = cfg.Sound.MenuMusic
	return l
}

func (l *Logic) World() donburi.World    { return l.world }
func (l *Logic) Space() *resolv.Space    { return l.space }
func (l *Logic) Handler() *EntityHandler { return l.handler }
func (l *Logic) Layout() cfg.Layout      { return l.layout }
func (l *Logic) State() cfg.GameState    { return l.sessionData().State }

func (l *Logic) sessionData() *components.SessionData {
	return components.Session.Get(l.session)
}

// StartGame begins a session for username. Blank names are rejected before
// any state is touched.
func (l *Logic) StartGame(username string) error {
	name := strings.TrimSpace(username)
	if name == "" {
		return ErrEmptyUsername
	}
	s := l.sessionData()
	if s.State != cfg.StateMenu {
		return ErrSessionActive
	}

	l.handler.Reset()
	ClearEffects(l.world)
	ResetPlayer(l.player, l.layout)
	components.Harpoon.Get(l.harpoon).FinishAttempt()
	syncTip(l.harpoon)
	components.Jar.Get(l.jar).Reset()
	components.Struggle.Get(l.session).Clear()
	*components.Glide.Get(l.session) = components.GlideData{}

	*s = components.SessionData{
		State:            cfg.StatePlaying,
		Username:         name,
		RemainingSeconds: cfg.Timer.InitialSeconds,
	}
	components.Audio.Get(l.session).Music = cfg.Sound.GameMusic
	l.log.Info("session started", "username", name)
	return nil
}

// MovePlayer sets or clears one movement intent. Presses only count while
// the player is free to move; releases always clear.
func (l *Logic) MovePlayer(dir cfg.Direction, pressed bool) {
	s := l.sessionData()
	if pressed && (s.ConfirmingQuit || (s.State != cfg.StatePlaying && s.State != cfg.StateHarpoonFired)) {
		return
	}
	components.Player.Get(l.player).SetIntent(dir, pressed)
}

// FireAt launches the harpoon toward (x, y). It does nothing unless the
// player is in normal play with the harpoon idle.
func (l *Logic) FireAt(x, y float64) bool {
	s := l.sessionData()
	if s.State != cfg.StatePlaying || s.ConfirmingQuit {
		return false
	}
	if !FireHarpoon(l.harpoon, l.player, x, y) {
		return false
	}
	s.State = cfg.StateHarpoonFired
	l.queueSound(cfg.SoundThrow)
	return true
}

// StruggleKey feeds one alternating key press to the struggle.
func (l *Logic) StruggleKey(key cfg.StruggleKey) {
	s := l.sessionData()
	if s.State != cfg.StateStruggling || s.ConfirmingQuit {
		return
	}
	if PressStruggleKey(components.Struggle.Get(l.session), key) == StruggleWon {
		l.struggleWon()
	}
}

// PauseOrQuit opens the quit confirmation during play, closes it if already
// open, and skips the game over screen.
func (l *Logic) PauseOrQuit() {
	s := l.sessionData()
	switch {
	case s.State == cfg.StateGameOver:
		l.SkipGameOver()
	case !s.State.Active():
	case s.ConfirmingQuit:
		s.ConfirmingQuit = false
	default:
		s.ConfirmingQuit = true
		components.Player.Get(l.player).ClearIntents()
	}
}

func (l *Logic) ConfirmQuit() {
	s := l.sessionData()
	if !s.ConfirmingQuit {
		return
	}
	s.ConfirmingQuit = false
	l.returnToMenu(true)
}

func (l *Logic) CancelQuit() {
	l.sessionData().ConfirmingQuit = false
}

// Escape returns to the menu from any play state, saving the result.
func (l *Logic) Escape() {
	switch s := l.sessionData(); {
	case s.State.Active():
		l.returnToMenu(true)
	case s.State == cfg.StateGameOver:
		l.returnToMenu(false)
	}
}

func (l *Logic) SkipGameOver() {
	if l.sessionData().State == cfg.StateGameOver {
		l.returnToMenu(false)
	}
}

// Update advances the simulation by one tick of length dt.
func (l *Logic) Update(dt time.Duration) {
	s := l.sessionData()
	if s.ConfirmingQuit {
		return
	}

	switch s.State {
	case cfg.StatePlaying:
		UpdatePlayer(l.player, l.layout, dt, true)
		l.handler.Update(dt)
		l.checkGhostCollision()
	case cfg.StateHarpoonFired:
		UpdatePlayer(l.player, l.layout, dt, true)
		l.handler.Update(dt)
		l.updateHarpoon()
	case cfg.StateStruggling:
		UpdatePlayer(l.player, l.layout, dt, false)
		if TickStruggle(components.Struggle.Get(l.session), dt) == StruggleLost {
			l.struggleLost()
		}
	case cfg.StateFishMovingToJar:
		UpdatePlayer(l.player, l.layout, dt, true)
		l.handler.Update(dt)
		l.updateGlide()
	case cfg.StateGameOver:
		l.updateGameOver(dt)
	}

	UpdateEffects(l.world)
	UpdateJar(l.jar, dt)
	l.updateCountdown(dt)
}

func (l *Logic) updateHarpoon() {
	switch UpdateHarpoon(l.world, l.harpoon, l.player, l.layout) {
	case HarpoonRetracted:
		l.sessionData().State = cfg.StatePlaying
		return
	case HarpoonReachedPlayer:
		l.beginStruggle()
		return
	}
	if fish := TryHook(l.harpoon); fish != nil {
		l.handler.Remove(fish)
		l.log.Debug("hooked", "kind", components.Fish.Get(fish).Kind)
	}
}

func (l *Logic) beginStruggle() {
	fish := entryOf(l.world, components.Harpoon.Get(l.harpoon).Hooked())
	if fish == nil {
		components.Harpoon.Get(l.harpoon).FinishAttempt()
		syncTip(l.harpoon)
		l.sessionData().State = cfg.StatePlaying
		return
	}
	BeginStruggle(components.Struggle.Get(l.session), fish)
	components.Player.Get(l.player).ClearIntents()
	l.sessionData().State = cfg.StateStruggling
}

func (l *Logic) struggleWon() {
	st := components.Struggle.Get(l.session)
	fish := entryOf(l.world, st.Target)
	st.Clear()
	components.Harpoon.Get(l.harpoon).FinishAttempt()
	syncTip(l.harpoon)

	if fish == nil {
		l.sessionData().State = cfg.StatePlaying
		return
	}
	BeginGlide(components.Glide.Get(l.session), fish, l.jar)
	l.sessionData().State = cfg.StateFishMovingToJar
}

// struggleLost drops the fish for good and costs a heart.
func (l *Logic) struggleLost() {
	st := components.Struggle.Get(l.session)
	fish := st.Target
	st.Clear()
	components.Harpoon.Get(l.harpoon).FinishAttempt()
	syncTip(l.harpoon)
	destroy(l.world, fish)

	l.sessionData().State = cfg.StatePlaying
	l.damagePlayer(cfg.ReasonOutOfHearts)
}

func (l *Logic) updateGlide() {
	g := components.Glide.Get(l.session)
	if !UpdateGlide(l.world, g) {
		return
	}
	fish := entryOf(l.world, g.Fish)
	*g = components.GlideData{}

	s := l.sessionData()
	if fish != nil {
		fd := components.Fish.Get(fish)
		LandCatch(l.jar, fd.ScoreValue)
		s.RemainingSeconds += cfg.Timer.CatchBonus
		l.queueSound(cfg.SoundCatch)
		jar := components.Jar.Get(l.jar)
		l.log.Debug("caught", "kind", fd.Kind, "count", jar.Count, "score", jar.Score)
		destroy(l.world, fish.Entity())
	}
	s.State = cfg.StatePlaying
}

func (l *Logic) checkGhostCollision() {
	if components.Player.Get(l.player).Immune() {
		return
	}
	playerObj := components.Object.Get(l.player).Object
	for _, ghost := range touching(playerObj, tags.ResolvGhost) {
		l.handler.Remove(ghost)
		destroy(l.world, ghost.Entity())
		l.damagePlayer(cfg.ReasonGhost)
		return
	}
}

func (l *Logic) damagePlayer(reason cfg.GameOverReason) {
	hearts := HurtPlayer(l.player)
	cx, cy := components.Body.Get(l.player).Center()
	factory.SpawnHitEffect(l.world, cx, cy)
	if hearts <= 0 {
		l.triggerGameOver(reason)
		return
	}
	l.queueSound(cfg.SoundHit)
}

func (l *Logic) updateCountdown(dt time.Duration) {
	s := l.sessionData()
	if !countdownRuns(s.State) {
		return
	}
	s.SecondTimer += dt
	for s.SecondTimer >= time.Second {
		s.SecondTimer -= time.Second
		s.RemainingSeconds--
		if s.RemainingSeconds <= 0 {
			s.RemainingSeconds = 0
			l.triggerGameOver(cfg.ReasonTimeUp)
			return
		}
	}
}

// countdownRuns excludes the glide to the jar: a catch in progress can still
// be banked when the clock is about to run out.
func countdownRuns(state cfg.GameState) bool {
	switch state {
	case cfg.StatePlaying, cfg.StateHarpoonFired, cfg.StateStruggling:
		return true
	default:
		return false
	}
}

// triggerGameOver ends the session. Calling it again is a no-op.
func (l *Logic) triggerGameOver(reason cfg.GameOverReason) {
	s := l.sessionData()
	if !s.State.Active() {
		return
	}
	l.abortAttempt()
	components.Player.Get(l.player).ClearIntents()

	s.State = cfg.StateGameOver
	s.Reason = reason
	s.ReturnTimer = cfg.GameOver.ReturnDelay
	s.ConfirmingQuit = false
	s.Banner = gween.New(-60, float32(l.layout.Height)/2-80, cfg.GameOver.BannerDuration, ease.OutBounce)
	s.BannerY = -60
	l.queueSound(cfg.SoundFail)

	jar := components.Jar.Get(l.jar)
	l.log.Info("game over", "reason", reason, "username", s.Username, "score", jar.Score, "count", jar.Count)
	l.saveResult()
}

func (l *Logic) updateGameOver(dt time.Duration) {
	s := l.sessionData()
	if s.Banner != nil {
		y, done := s.Banner.Update(float32(dt.Seconds()))
		s.BannerY = y
		if done {
			s.Banner = nil
		}
	}
	s.ReturnTimer -= dt
	if s.ReturnTimer <= 0 {
		l.returnToMenu(false)
	}
}

// returnToMenu discards every in-flight attempt and the roaming pool.
func (l *Logic) returnToMenu(save bool) {
	s := l.sessionData()
	if s.State == cfg.StateMenu {
		return
	}
	if save {
		l.saveResult()
	}
	l.abortAttempt()
	l.handler.Reset()
	ClearEffects(l.world)
	components.Player.Get(l.player).ClearIntents()

	s.State = cfg.StateMenu
	s.ConfirmingQuit = false
	s.Banner = nil
	components.Audio.Get(l.session).Music = cfg.Sound.MenuMusic
	l.log.Info("returned to menu", "username", s.Username)
}

// abortAttempt tears down harpoon, struggle and glide without resolving them.
func (l *Logic) abortAttempt() {
	h := components.Harpoon.Get(l.harpoon)
	destroy(l.world, h.Hooked())
	h.FinishAttempt()
	syncTip(l.harpoon)

	st := components.Struggle.Get(l.session)
	destroy(l.world, st.Target)
	st.Clear()

	g := components.Glide.Get(l.session)
	destroy(l.world, g.Fish)
	*g = components.GlideData{}
}

// saveResult writes the session to the leaderboard once. Failures become a
// notice for the player and never block the transition.
func (l *Logic) saveResult() {
	s := l.sessionData()
	if s.Saved || s.Username == "" {
		return
	}
	s.Saved = true
	if l.recorder == nil {
		return
	}
	jar := components.Jar.Get(l.jar)
	result := leaderboard.GameData{Username: s.Username, Score: jar.Score, Count: jar.Count}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := l.recorder.Upsert(ctx, result); err != nil {
		l.log.Warn("could not save result", "username", s.Username, "err", err)
		s.Notice = fmt.Sprintf("Score not saved: %v", err)
	}
}

func (l *Logic) queueSound(id cfg.SoundID) {
	a := components.Audio.Get(l.session)
	a.PendingSFX = append(a.PendingSFX, id)
}
