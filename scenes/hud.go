package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/fishhunt/assets"
	cfg "github.com/automoto/fishhunt/config"
	"github.com/automoto/fishhunt/fonts"
	"github.com/automoto/fishhunt/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const heartGap = 4

type hud struct {
	logic  *systems.Logic
	images *assets.ImageLoader
	op     *ebiten.DrawImageOptions
}

func newHUD(logic *systems.Logic, images *assets.ImageLoader) *hud {
	return &hud{logic: logic, images: images, op: &ebiten.DrawImageOptions{}}
}

// Draw renders the score panel, struggle bar and the modal overlays.
func (h *hud) Draw(e *ecs.ECS, screen *ebiten.Image) {
	snap := h.logic.Snapshot()
	width := screen.Bounds().Dx()

	h.drawStats(screen, snap)
	h.drawTimer(screen, snap)
	h.drawHearts(screen, snap, width)

	if snap.Struggle != nil {
		h.drawStruggle(screen, snap)
	}
	if snap.Notice != "" {
		drawCentered(screen, snap.Notice, fonts.Small.Get(), screen.Bounds().Dy()-12, cfg.UI.NoticeColor)
	}
	if snap.ConfirmingQuit {
		h.drawConfirm(screen)
	}
	if snap.State == cfg.StateGameOver {
		h.drawGameOver(screen, snap)
	}
}

func (h *hud) drawStats(screen *ebiten.Image, snap systems.Snapshot) {
	face := fonts.Regular.Get()
	x := int(cfg.UI.HUDMargin)
	y := int(cfg.UI.HUDMargin + cfg.UI.HUDLineHeight)
	line := int(cfg.UI.HUDLineHeight)

	text.Draw(screen, snap.Username, face, x, y, cfg.UI.PlayerColor)
	text.Draw(screen, fmt.Sprintf("Score: %d", snap.Jar.Score), face, x, y+line, cfg.UI.TextColor)
	text.Draw(screen, fmt.Sprintf("Fish: %d", snap.Jar.Count), face, x, y+2*line, cfg.UI.TextColor)
}

func (h *hud) drawTimer(screen *ebiten.Image, snap systems.Snapshot) {
	clr := cfg.UI.TextColor
	if snap.RemainingSeconds <= cfg.Timer.WarningSeconds {
		clr = cfg.UI.WarningColor
	}
	label := fmt.Sprintf("%d:%02d", snap.RemainingSeconds/60, snap.RemainingSeconds%60)
	drawCentered(screen, label, fonts.Bold.Get(), int(cfg.UI.HUDMargin)+24, clr)
}

func (h *hud) drawHearts(screen *ebiten.Image, snap systems.Snapshot, width int) {
	icon := h.images.Frame(assets.Heart, 0)
	iw := icon.Bounds().Dx()
	x := float64(width) - cfg.UI.HUDMargin - float64(snap.Player.MaxHearts*(iw+heartGap))
	for i := 0; i < snap.Player.MaxHearts; i++ {
		h.op.GeoM.Reset()
		h.op.GeoM.Translate(x+float64(i*(iw+heartGap)), cfg.UI.HUDMargin)
		h.op.ColorScale.Reset()
		if i >= snap.Player.Hearts {
			h.op.ColorScale.ScaleAlpha(0.25)
		}
		screen.DrawImage(icon, h.op)
	}
	h.op.ColorScale.Reset()
}

func (h *hud) drawStruggle(screen *ebiten.Image, snap systems.Snapshot) {
	st := snap.Struggle
	p := snap.Player.Bounds
	barX := float32(p.X+p.W/2) - cfg.UI.BarWidth/2
	barY := float32(p.Y) - cfg.UI.BarHeight - 28

	vector.FillRect(screen, barX, barY, cfg.UI.BarWidth, cfg.UI.BarHeight, cfg.UI.BarBackground, false)
	vector.FillRect(screen, barX, barY, cfg.UI.BarWidth*float32(st.Progress), cfg.UI.BarHeight, cfg.UI.BarFill, false)

	left := math.Ceil(st.Remaining.Seconds()*10) / 10
	label := fmt.Sprintf("Press %s!  %.1fs", st.NextKey, left)
	face := fonts.Regular.Get()
	w := font.MeasureString(face, label).Ceil()
	text.Draw(screen, label, face, int(barX+cfg.UI.BarWidth/2)-w/2, int(barY)-6, cfg.UI.TextColor)
}

func (h *hud) drawConfirm(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), cfg.GameOver.OverlayColor, false)
	mid := b.Dy() / 2
	drawCentered(screen, "Quit to menu?", fonts.Bold.Get(), mid, cfg.UI.TextColor)
	drawCentered(screen, "Y to quit, N or SPACE to keep fishing", fonts.Regular.Get(), mid+30, cfg.UI.TextColor)
}

func (h *hud) drawGameOver(screen *ebiten.Image, snap systems.Snapshot) {
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), cfg.GameOver.OverlayColor, false)

	y := int(snap.BannerY)
	drawCentered(screen, "GAME OVER", fonts.Title.Get(), y, cfg.GameOver.TitleColor)
	drawCentered(screen, snap.Reason.String(), fonts.Bold.Get(), y+40, cfg.GameOver.TextColor)
	drawCentered(screen, fmt.Sprintf("%d fish, %d points", snap.Jar.Count, snap.Jar.Score), fonts.Regular.Get(), y+70, cfg.GameOver.TextColor)

	secs := int(math.Ceil(snap.ReturnIn.Seconds()))
	drawCentered(screen, fmt.Sprintf("Back to menu in %d... SPACE to skip", max(secs, 0)), fonts.Small.Get(), y+100, cfg.GameOver.TextColor)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, (screen.Bounds().Dx()-w)/2, y, clr)
}
