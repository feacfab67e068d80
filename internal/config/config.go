package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// SlideDurationMs is the default display time of an image slide.
	SlideDurationMs int `koanf:"slide_duration_ms"`
	// TickMs is the auto-advance animation tick interval.
	TickMs int `koanf:"tick_ms"`
	// DBPath overrides the shown-progress database location
	// (default: xdg data dir).
	DBPath string `koanf:"db_path"`

	// Video settings for the simulated player.
	Video VideoConfig `koanf:"video"`

	// TargetStory names which story opens first (default: first story).
	TargetStory string `koanf:"target_story"`

	// Stories is the demo deck.
	Stories []StoryConfig `koanf:"stories"`
}

// VideoConfig holds simulated-player settings.
type VideoConfig struct {
	PrepDelayMs int `koanf:"prep_delay_ms"` // preparation latency before the duration is known
	DurationMs  int `koanf:"duration_ms"`   // reported media duration
}

// StoryConfig describes one story of the deck.
type StoryConfig struct {
	ID     string        `koanf:"id"`
	Slides []SlideConfig `koanf:"slides"`
}

// SlideConfig describes one slide. Video slides get their duration from
// the player; DurationMs of zero on an image slide falls back to
// SlideDurationMs.
type SlideConfig struct {
	DurationMs int    `koanf:"duration_ms"`
	Video      bool   `koanf:"video"`
	URL        string `koanf:"url"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Apply defaults
	if cfg.SlideDurationMs <= 0 {
		cfg.SlideDurationMs = 5000
	}
	if cfg.TickMs <= 0 {
		cfg.TickMs = 50
	}
	if cfg.Video.PrepDelayMs <= 0 {
		cfg.Video.PrepDelayMs = 800
	}
	if cfg.Video.DurationMs <= 0 {
		cfg.Video.DurationMs = 8000
	}

	if cfg.DBPath != "" {
		cfg.DBPath = expandPath(cfg.DBPath)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/reel/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "reel", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
