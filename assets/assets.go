package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

//go:embed all:images
var imageFS embed.FS

// Sheet describes a horizontal sprite strip under images/.
type Sheet struct {
	Path        string
	FrameWidth  int
	FrameHeight int
	Frames      int
	Fallback    color.Color
}

var (
	PlayerIdle = Sheet{"images/player/idle.png", 80, 80, 6, color.RGBA{240, 200, 80, 255}}
	PlayerSwim = Sheet{"images/player/swim.png", 80, 80, 7, color.RGBA{240, 200, 80, 255}}
	PlayerHurt = Sheet{"images/player/hurt.png", 80, 80, 5, color.RGBA{230, 90, 70, 255}}
	Fish       = Sheet{"images/fish/fish.png", 32, 32, 4, color.RGBA{90, 200, 240, 255}}
	DartFish   = Sheet{"images/fish/dart.png", 39, 20, 4, color.RGBA{120, 240, 160, 255}}
	BigFish    = Sheet{"images/fish/big.png", 54, 49, 4, color.RGBA{70, 120, 230, 255}}
	Ghost      = Sheet{"images/ghost/ghost.png", 47, 66, 4, color.RGBA{220, 220, 240, 180}}
	Jar        = Sheet{"images/objects/jar.png", 140, 168, 1, color.RGBA{170, 220, 230, 110}}
	HitEffect  = Sheet{"images/effects/hit.png", 64, 64, 3, color.RGBA{255, 240, 160, 200}}
	Heart      = Sheet{"images/icons/heart.png", 16, 16, 1, color.RGBA{220, 40, 60, 255}}
	Background = Sheet{"images/background.png", 800, 600, 1, color.RGBA{10, 40, 80, 255}}
)

// ImageLoader caches decoded sheets and their frames. Sheets that are not
// embedded are replaced by flat placeholders so the game stays playable.
type ImageLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
	log        *log.Logger
}

func NewImageLoader(logger *log.Logger) *ImageLoader {
	if logger == nil {
		logger = log.Default()
	}
	return &ImageLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
		log:        logger,
	}
}

func (l *ImageLoader) Image(s Sheet) *ebiten.Image {
	if img, ok := l.cache[s.Path]; ok {
		return img
	}

	img, err := loadImage(s.Path)
	if err != nil {
		l.log.Debug("using placeholder image", "path", s.Path, "err", err)
		img = placeholder(s)
	}
	l.cache[s.Path] = img
	return img
}

// Frame returns a cached sub-image for frame index of s. Out of range
// indices wrap.
func (l *ImageLoader) Frame(s Sheet, index int) *ebiten.Image {
	if s.Frames > 0 {
		index = ((index % s.Frames) + s.Frames) % s.Frames
	}
	key := fmt.Sprintf("%s/%d", s.Path, index)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheet := l.Image(s)
	rect := image.Rect(index*s.FrameWidth, 0, (index+1)*s.FrameWidth, s.FrameHeight).Intersect(sheet.Bounds())
	frame := sheet.SubImage(rect).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame
}

// Preload decodes every sheet up front to avoid a hitch on first draw.
func (l *ImageLoader) Preload() {
	for _, s := range []Sheet{PlayerIdle, PlayerSwim, PlayerHurt, Fish, DartFish, BigFish, Ghost, Jar, HitEffect, Heart, Background} {
		l.Image(s)
	}
}

func loadImage(path string) (*ebiten.Image, error) {
	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

func placeholder(s Sheet) *ebiten.Image {
	frames := max(s.Frames, 1)
	img := ebiten.NewImage(max(s.FrameWidth*frames, 1), max(s.FrameHeight, 1))
	img.Fill(s.Fallback)
	return img
}
