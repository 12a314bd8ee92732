package levels

import (
	"testing"

	cfg "github.com/automoto/fishhunt/config"
)

func TestLoadArenaMatchesDefaults(t *testing.T) {
	arena, err := LoadArena()
	if err != nil {
		t.Fatalf("LoadArena() error = %v", err)
	}
	if arena.Name != "Reef" {
		t.Fatalf("Name = %q, want Reef", arena.Name)
	}
	if got, want := arena.Layout, cfg.DefaultLayout(); got != want {
		t.Fatalf("Layout = %+v, want %+v", got, want)
	}
}

func TestLoadMissingLevel(t *testing.T) {
	arena, err := load("missing.tmx")
	if err == nil {
		t.Fatal("load(missing) error = nil")
	}
	if arena.Layout != cfg.DefaultLayout() {
		t.Fatal("failed load did not fall back to the default layout")
	}
}
