// Package levels loads the arena layout from its embedded Tiled map. It does
// not depend on ebiten so the simulation can be laid out in tests.
package levels

import (
	"embed"
	"fmt"

	cfg "github.com/automoto/fishhunt/config"
	"github.com/lafriks/go-tiled"
)

//go:embed arena.tmx
var levelFS embed.FS

const (
	ArenaPath    = "arena.tmx"
	markersGroup = "Markers"
)

type Arena struct {
	Name   string
	Layout cfg.Layout
}

// LoadArena reads the embedded arena map. Markers missing from the map keep
// their default position.
func LoadArena() (Arena, error) {
	return load(ArenaPath)
}

func load(path string) (Arena, error) {
	arena := Arena{Name: "arena", Layout: cfg.DefaultLayout()}

	m, err := tiled.LoadFile(path, tiled.WithFileSystem(levelFS))
	if err != nil {
		return arena, fmt.Errorf("failed to load level %s: %w", path, err)
	}
	if name := m.Properties.GetString("name"); name != "" {
		arena.Name = name
	}
	if w, h := m.Width*m.TileWidth, m.Height*m.TileHeight; w > 0 && h > 0 {
		arena.Layout.Width, arena.Layout.Height = w, h
	}

	for _, og := range m.ObjectGroups {
		if og.Name != markersGroup {
			continue
		}
		for _, o := range og.Objects {
			switch o.Name {
			case "PlayerStart":
				arena.Layout.PlayerStartX = o.X
				arena.Layout.PlayerStartY = o.Y
			case "Jar":
				arena.Layout.JarX = o.X
				arena.Layout.JarY = o.Y
				if o.Width > 0 && o.Height > 0 {
					arena.Layout.JarWidth = int(o.Width)
					arena.Layout.JarHeight = int(o.Height)
				}
			}
		}
	}
	return arena, nil
}
