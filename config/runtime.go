package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// RuntimeConfig holds process-level options from flags and the environment
type RuntimeConfig struct {
	DatabasePath string
	LogLevel     string
	Seed         int64 // 0 means time based
	Muted        bool
	SkipMenu     bool
	Username     string // empty unless set by -user or FISHHUNT_USER
}

// SkipMenuUsername is used by -skip-menu when neither -user nor a saved
// profile names a player.
const SkipMenuUsername = "diver"

// PlayerName picks the name to prefill. An explicit -user wins over the
// name saved in the profile.
func (rc RuntimeConfig) PlayerName(saved string) string {
	if rc.Username != "" {
		return rc.Username
	}
	return saved
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// LoadRuntime parses args (without the program name). Environment variables
// provide the defaults that flags override.
func LoadRuntime(args []string) (RuntimeConfig, error) {
	var rc RuntimeConfig

	seedDefault, err := strconv.ParseInt(GetEnv("FISHHUNT_SEED", "0"), 10, 64)
	if err != nil {
		return rc, fmt.Errorf("invalid FISHHUNT_SEED: %w", err)
	}

	fs := flag.NewFlagSet("fishhunt", flag.ContinueOnError)
	fs.StringVar(&rc.DatabasePath, "db", GetEnv("FISHHUNT_DB", "fishhunt.db"), "Leaderboard SQLite database path")
	fs.StringVar(&rc.LogLevel, "log-level", GetEnv("FISHHUNT_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	fs.Int64Var(&rc.Seed, "seed", seedDefault, "Random seed for spawns (0 = time based)")
	fs.BoolVar(&rc.Muted, "mute", GetEnv("FISHHUNT_MUTE", "") == "1", "Disable all audio")
	fs.BoolVar(&rc.SkipMenu, "skip-menu", false, "Start a session immediately")
	fs.StringVar(&rc.Username, "user", GetEnv("FISHHUNT_USER", ""), "Username to prefill (and play as with -skip-menu)")
	if err := fs.Parse(args); err != nil {
		return rc, err
	}
	return rc, nil
}
