package leaderboard

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "scores.db")
	s, err := Open(context.Background(), dsn, log.New(io.Discard))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestUpsertAccumulates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Upsert(ctx, GameData{Username: "nemo", Score: 10, Count: 1}); err != nil {
		t.Fatalf("first Upsert() error = %v", err)
	}
	if err := s.Upsert(ctx, GameData{Username: "nemo", Score: 5, Count: 2}); err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}

	got, ok, err := s.Get(ctx, "nemo")
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v, %v", got, ok, err)
	}
	if got.Score != 15 || got.Count != 3 {
		t.Fatalf("stored = (%d, %d), want (15, 3)", got.Score, got.Count)
	}
}

func TestAllOrdering(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, g := range []GameData{
		{Username: "a", Score: 20, Count: 1},
		{Username: "b", Score: 40, Count: 2},
		{Username: "c", Score: 20, Count: 5},
		{Username: "d", Score: 5, Count: 9},
	} {
		if err := s.Upsert(ctx, g); err != nil {
			t.Fatalf("Upsert(%v) error = %v", g, err)
		}
	}

	all, err := s.All(ctx)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	want := []string{"b", "c", "a", "d"}
	if len(all) != len(want) {
		t.Fatalf("len(All()) = %d, want %d", len(all), len(want))
	}
	for i, name := range want {
		if all[i].Username != name {
			t.Fatalf("All()[%d] = %q, want %q", i, all[i].Username, name)
		}
	}
}

func TestUpsertRejectsEmptyName(t *testing.T) {
	s := openTestStore(t)
	if err := s.Upsert(context.Background(), GameData{Username: "  ", Score: 1}); err == nil {
		t.Fatal("Upsert() with blank name succeeded, want error")
	}
}

func TestClosedStore(t *testing.T) {
	s := openTestStore(t)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	err := s.Upsert(context.Background(), GameData{Username: "x", Score: 1})
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("Upsert() after Close error = %v, want ErrClosed", err)
	}
}

func TestReopenKeepsTotals(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "scores.db")
	ctx := context.Background()

	s, err := Open(ctx, dsn, log.New(io.Discard))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := s.Upsert(ctx, GameData{Username: "dory", Score: 25, Count: 1}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	_ = s.Close()

	s, err = Open(ctx, dsn, log.New(io.Discard))
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer s.Close()
	got, ok, err := s.Get(ctx, "dory")
	if err != nil || !ok || got.Score != 25 || got.Count != 1 {
		t.Fatalf("Get() after reopen = %+v, %v, %v", got, ok, err)
	}
}

func TestGetUnknownPlayer(t *testing.T) {
	s := openTestStore(t)
	got, ok, err := s.Get(context.Background(), "marlin")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok || got != (GameData{}) {
		t.Fatalf("Get(unknown) = %+v, %v; want zero, false", got, ok)
	}
}
