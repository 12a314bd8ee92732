package systems

import (
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/fishhunt/components"
	cfg "github.com/automoto/fishhunt/config"
	"github.com/automoto/fishhunt/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpawnKind is what a spawn roll produces
type SpawnKind int

const (
	SpawnFish SpawnKind = iota
	SpawnBigFish
	SpawnDartFish
	SpawnGhost
)

// PickSpawn maps a roll in [0,100) onto the spawn weight table.
func PickSpawn(roll int) SpawnKind {
	fish := cfg.Spawn.FishWeight
	big := fish + cfg.Spawn.BigFishWeight
	dart := big + cfg.Spawn.DartFishWeight
	switch {
	case roll < fish:
		return SpawnFish
	case roll < big:
		return SpawnBigFish
	case roll < dart:
		return SpawnDartFish
	default:
		return SpawnGhost
	}
}

// IsOutOfBounds reports whether a roamer has fully left the playfield in its
// direction of travel, margin included.
func IsOutOfBounds(body *components.BodyData, speedX float64, screenWidth int) bool {
	margin := cfg.Spawn.OffscreenMargin
	switch {
	case speedX < 0:
		return body.X+float64(body.W) <= -margin
	case speedX > 0:
		return body.X >= float64(screenWidth)+margin
	default:
		return false
	}
}

// EntityHandler owns the roaming fish and ghosts. Its list is guarded so a
// render pass can take a Snapshot while the tick mutates it.
type EntityHandler struct {
	mu       sync.Mutex
	world    donburi.World
	space    *resolv.Space
	rng      *rand.Rand
	width    int
	height   int
	capacity int
	log      *log.Logger

	entities   []donburi.Entity
	sinceSpawn time.Duration
	nextSpawn  time.Duration
}

// NewEntityHandler builds a handler over the given playfield. A negative
// capacity disables timed spawning; zero uses the configured cap.
func NewEntityHandler(w donburi.World, space *resolv.Space, rng *rand.Rand, width, height, capacity int, logger *log.Logger) *EntityHandler {
	if capacity == 0 {
		capacity = cfg.Spawn.MaxEntities
	}
	if logger == nil {
		logger = log.Default()
	}
	h := &EntityHandler{
		world:    w,
		space:    space,
		rng:      rng,
		width:    width,
		height:   height,
		capacity: capacity,
		log:      logger,
	}
	h.primeTimer()
	return h
}

// Update attempts a timed spawn, advances every roamer and culls the ones
// that left the screen.
func (h *EntityHandler) Update(dt time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.sinceSpawn += dt
	if h.sinceSpawn >= h.nextSpawn && len(h.entities) < h.capacity {
		h.spawnLocked()
		h.sinceSpawn = 0
		h.nextSpawn = h.rollDelay()
	}

	kept := h.entities[:0]
	for _, id := range h.entities {
		e := entryOf(h.world, id)
		if e == nil {
			continue
		}
		roamer := components.Roamer.Get(e)
		body := components.Body.Get(e)
		SetPosition(e, body.X+roamer.SpeedX, body.Y)
		components.Animation.Get(e).Current.Update()

		if IsOutOfBounds(body, roamer.SpeedX, h.width) {
			destroy(h.world, id)
			continue
		}
		kept = append(kept, id)
	}
	clear(h.entities[len(kept):])
	h.entities = kept
}

// Spawn creates one random roamer unless the cap is reached.
func (h *EntityHandler) Spawn() *donburi.Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entities) >= h.capacity {
		return nil
	}
	return h.spawnLocked()
}

func (h *EntityHandler) spawnLocked() *donburi.Entry {
	kind := PickSpawn(h.rng.Intn(100))
	leftToRight := h.rng.Intn(2) == 0

	var frameH int
	switch kind {
	case SpawnGhost:
		frameH = cfg.Ghost.FrameHeight
	default:
		frameH = cfg.Fish.Types[fishKindFor(kind)].FrameHeight
	}

	x := float64(h.width) + cfg.Spawn.OffscreenMargin
	dir := -1.0
	if leftToRight {
		x = cfg.Spawn.OffscreenLeftX
		dir = 1.0
	}
	band := h.height - 2*frameH - cfg.Spawn.BandPadding
	if band < 1 {
		band = 1
	}
	y := float64(frameH + h.rng.Intn(band))

	var e *donburi.Entry
	if kind == SpawnGhost {
		speed := cfg.Ghost.BaseSpeed + h.rng.Float64()*cfg.Ghost.SpeedJitter
		e = factory.CreateGhost(h.world, h.space, x, y, speed*dir)
	} else {
		fk := fishKindFor(kind)
		speed := (cfg.Fish.BaseSpeed + h.rng.Float64()*cfg.Fish.SpeedJitter) * cfg.Fish.Types[fk].SpeedMult
		e = factory.CreateFish(h.world, h.space, fk, x, y, speed*dir)
	}
	h.entities = append(h.entities, e.Entity())
	h.log.Debug("spawned", "kind", kind, "x", x, "y", y, "active", len(h.entities))
	return e
}

func fishKindFor(k SpawnKind) cfg.FishKind {
	switch k {
	case SpawnBigFish:
		return cfg.FishBig
	case SpawnDartFish:
		return cfg.FishDart
	default:
		return cfg.FishBasic
	}
}

func (h *EntityHandler) rollDelay() time.Duration {
	d := cfg.Spawn.MinDelay
	if cfg.Spawn.DelayJitter > 0 {
		d += time.Duration(h.rng.Int63n(int64(cfg.Spawn.DelayJitter)))
	}
	return d
}

// primeTimer makes the next Update spawn immediately.
func (h *EntityHandler) primeTimer() {
	h.nextSpawn = h.rollDelay()
	h.sinceSpawn = h.nextSpawn
}

// track puts an existing roamer under the handler's control. Tests use it to
// stage roamers at fixed positions.
func (h *EntityHandler) track(e *donburi.Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entities = append(h.entities, e.Entity())
}

// Remove takes e out of the roaming pool without destroying it.
func (h *EntityHandler) Remove(e *donburi.Entry) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := e.Entity()
	for i, other := range h.entities {
		if other == id {
			h.entities = append(h.entities[:i], h.entities[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the live list.
func (h *EntityHandler) Snapshot() []donburi.Entity {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]donburi.Entity, len(h.entities))
	copy(out, h.entities)
	return out
}

func (h *EntityHandler) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entities)
}

// Reset destroys every roamer and primes the spawn timer.
func (h *EntityHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, id := range h.entities {
		destroy(h.world, id)
	}
	h.entities = nil
	h.primeTimer()
}

func (k SpawnKind) String() string {
	switch k {
	case SpawnFish:
		return "fish"
	case SpawnBigFish:
		return "big_fish"
	case SpawnDartFish:
		return "dart_fish"
	default:
		return "ghost"
	}
}
