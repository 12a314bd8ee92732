package config

import "testing"

func TestLoadRuntimeDefaults(t *testing.T) {
	t.Setenv("FISHHUNT_USER", "")
	t.Setenv("FISHHUNT_SEED", "0")

	rc, err := LoadRuntime(nil)
	if err != nil {
		t.Fatalf("LoadRuntime(nil) error = %v", err)
	}
	if rc.Username != "" {
		t.Fatalf("Username = %q, want empty", rc.Username)
	}
	if rc.SkipMenu {
		t.Fatal("SkipMenu = true, want false")
	}
	if rc.Seed != 0 {
		t.Fatalf("Seed = %d, want 0", rc.Seed)
	}
}

func TestLoadRuntimeFlags(t *testing.T) {
	t.Setenv("FISHHUNT_USER", "")
	t.Setenv("FISHHUNT_SEED", "0")

	rc, err := LoadRuntime([]string{"-user", "nemo", "-skip-menu", "-seed", "42", "-db", "x.db"})
	if err != nil {
		t.Fatalf("LoadRuntime() error = %v", err)
	}
	if rc.Username != "nemo" || !rc.SkipMenu || rc.Seed != 42 || rc.DatabasePath != "x.db" {
		t.Fatalf("LoadRuntime() = %+v", rc)
	}
}

func TestLoadRuntimeUserFromEnv(t *testing.T) {
	t.Setenv("FISHHUNT_USER", "dory")
	t.Setenv("FISHHUNT_SEED", "0")

	rc, err := LoadRuntime(nil)
	if err != nil {
		t.Fatalf("LoadRuntime(nil) error = %v", err)
	}
	if rc.Username != "dory" {
		t.Fatalf("Username = %q, want %q", rc.Username, "dory")
	}
}

func TestLoadRuntimeBadSeed(t *testing.T) {
	t.Setenv("FISHHUNT_SEED", "fish")
	if _, err := LoadRuntime(nil); err == nil {
		t.Fatal("LoadRuntime() with a bad FISHHUNT_SEED returned nil error")
	}
}

func TestPlayerName(t *testing.T) {
	tests := []struct {
		name  string
		user  string
		saved string
		want  string
	}{
		{"saved name kept", "", "nemo", "nemo"},
		{"explicit user wins", "dory", "nemo", "dory"},
		{"nothing known", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := RuntimeConfig{Username: tt.user}
			if got := rc.PlayerName(tt.saved); got != tt.want {
				t.Fatalf("PlayerName(%q) = %q, want %q", tt.saved, got, tt.want)
			}
		})
	}
}
