package scenes

import (
	"image/color"

	"github.com/automoto/fishhunt/assets"
	"github.com/automoto/fishhunt/components"
	cfg "github.com/automoto/fishhunt/config"
	"github.com/automoto/fishhunt/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	ropeColor = color.RGBA{220, 220, 200, 255}
	tipColor  = color.RGBA{200, 200, 210, 255}
	aimColor  = color.RGBA{255, 255, 255, 140}
)

// worldRenderer draws the playfield from a simulation snapshot.
type worldRenderer struct {
	logic  *systems.Logic
	images *assets.ImageLoader
	op     *ebiten.DrawImageOptions
}

func newWorldRenderer(logic *systems.Logic, images *assets.ImageLoader) *worldRenderer {
	return &worldRenderer{logic: logic, images: images, op: &ebiten.DrawImageOptions{}}
}

func (r *worldRenderer) Draw(e *ecs.ECS, screen *ebiten.Image) {
	snap := r.logic.Snapshot()

	r.drawSprite(screen, r.images.Frame(assets.Background, 0), systems.Rect{W: float64(cfg.C.Width), H: float64(cfg.C.Height)}, true, 1)
	if snap.JarVisible {
		r.drawSprite(screen, r.images.Frame(assets.Jar, 0), snap.Jar.Bounds, true, float64(snap.Jar.Scale))
	}
	for _, ent := range snap.Entities {
		r.drawEntity(screen, ent)
	}
	if snap.Glide != nil {
		r.drawEntity(screen, *snap.Glide)
	}

	if snap.Harpoon.State != components.HarpoonIdle {
		h := snap.Harpoon
		vector.StrokeLine(screen, float32(h.OriginX), float32(h.OriginY), float32(h.TipX), float32(h.TipY), 2, ropeColor, true)
		vector.FillRect(screen, float32(h.Tip.X), float32(h.Tip.Y), float32(h.Tip.W), float32(h.Tip.H), tipColor, false)
	}
	if snap.Towed != nil {
		r.drawEntity(screen, *snap.Towed)
	}

	r.drawPlayer(screen, snap.Player)
	for _, fx := range snap.Effects {
		r.drawSprite(screen, r.images.Frame(assets.HitEffect, fx.Frame), fx.Bounds, true, 1)
	}

	if snap.State == cfg.StatePlaying && !snap.ConfirmingQuit {
		in := drawInput(e)
		x, y := float32(in.CursorX), float32(in.CursorY)
		vector.StrokeLine(screen, x-6, y, x+6, y, 1, aimColor, false)
		vector.StrokeLine(screen, x, y-6, x, y+6, 1, aimColor, false)
	}

	if cfg.Debug.ShowHitboxes {
		r.drawHitboxes(screen, snap)
	}
}

func (r *worldRenderer) drawEntity(screen *ebiten.Image, ent systems.EntityView) {
	r.drawSprite(screen, r.images.Frame(sheetFor(ent), ent.Frame), ent.Bounds, ent.FacingRight, 1)
}

func (r *worldRenderer) drawPlayer(screen *ebiten.Image, p systems.PlayerView) {
	sheet, frame := assets.PlayerIdle, p.Frame
	switch {
	case p.Hurt:
		sheet, frame = assets.PlayerHurt, p.HurtFrame
	case p.Moving:
		sheet = assets.PlayerSwim
	}
	r.drawSprite(screen, r.images.Frame(sheet, frame), p.Bounds, p.FacingRight, 1)
}

// drawSprite stretches img over b, mirrored when facing left and scaled
// about the center of b.
func (r *worldRenderer) drawSprite(screen, img *ebiten.Image, b systems.Rect, facingRight bool, scale float64) {
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}
	r.op.GeoM.Reset()
	r.op.GeoM.Translate(-float64(iw)/2, -float64(ih)/2)
	sx, sy := b.W/float64(iw)*scale, b.H/float64(ih)*scale
	if !facingRight {
		sx = -sx
	}
	r.op.GeoM.Scale(sx, sy)
	r.op.GeoM.Translate(b.X+b.W/2, b.Y+b.H/2)
	screen.DrawImage(img, r.op)
}

func (r *worldRenderer) drawHitboxes(screen *ebiten.Image, snap systems.Snapshot) {
	c := cfg.Debug.HitboxColor
	stroke := func(b systems.Rect) {
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, c, false)
	}
	stroke(snap.Player.Box)
	for _, ent := range snap.Entities {
		stroke(ent.Box)
	}
	if snap.Towed != nil {
		stroke(snap.Towed.Box)
	}
	if snap.JarVisible {
		stroke(snap.Jar.Bounds)
	}
}

func sheetFor(ent systems.EntityView) assets.Sheet {
	if ent.Ghost {
		return assets.Ghost
	}
	switch ent.Kind {
	case cfg.FishDart:
		return assets.DartFish
	case cfg.FishBig:
		return assets.BigFish
	default:
		return assets.Fish
	}
}
