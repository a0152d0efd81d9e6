package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "reel"

type Config struct {
	DefaultFolder     string   `koanf:"default_folder"`
	IgnoredExtensions []string `koanf:"ignored_extensions"` // without dot; replaces the built-in list
	DeletedDir        string   `koanf:"deleted_dir" validate:"omitempty,excludesall=/\\"`
	Backend           string   `koanf:"backend" validate:"omitempty,oneof=auto mpv beep"`
	Volume            *int     `koanf:"volume" validate:"omitempty,min=0,max=100"`
	Notifications     *bool    `koanf:"notifications"` // desktop now-playing bubbles (default: true)

	AutoPlay AutoPlayConfig `koanf:"autoplay"`
	UI       UIConfig       `koanf:"ui"`
	Seek     SeekConfig     `koanf:"seek"`
	Log      LogConfig      `koanf:"log"`
	Theme    ThemeConfig    `koanf:"theme"`
}

// ThemeConfig overrides palette colors. Empty fields keep the built-in color.
type ThemeConfig struct {
	Primary   string `koanf:"primary" validate:"omitempty,hexcolor"`
	Secondary string `koanf:"secondary" validate:"omitempty,hexcolor"`
	Cursor    string `koanf:"cursor" validate:"omitempty,hexcolor"`
	Border    string `koanf:"border" validate:"omitempty,hexcolor"`
}

// AutoPlayConfig holds the engine settings.
type AutoPlayConfig struct {
	Loop            *bool  `koanf:"loop"`                                       // default: true
	Shuffle         *bool  `koanf:"shuffle"`                                    // default: true
	WithReplacement bool   `koanf:"with_replacement"`                           // default: false
	Seed            uint64 `koanf:"seed"`                                       // 0 = time-seeded
	AutostartAfter  *int   `koanf:"autostart_after" validate:"omitempty,min=0"` // 0 = wait for the scan to end (default: 1000)
}

// UIConfig holds terminal loop timings.
type UIConfig struct {
	TickMS        int `koanf:"tick_ms" validate:"omitempty,min=16,max=5000"`        // default: 250
	DrainBudgetMS int `koanf:"drain_budget_ms" validate:"omitempty,min=1,max=1000"` // default: 100
}

// SeekConfig holds the seek steps.
type SeekConfig struct {
	SmallMS int `koanf:"small_ms" validate:"omitempty,min=1"` // default: 500
	LongMS  int `koanf:"long_ms" validate:"omitempty,min=1"`  // default: 10000
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn error"` // default: info
	Format string `koanf:"format" validate:"omitempty,oneof=text logfmt json"`     // default: text
	File   string `koanf:"file"`                                                   // "-" = stderr, empty = state dir
}

// AutoPlaySettings are the engine settings with defaults applied.
type AutoPlaySettings struct {
	Loop            bool
	Shuffle         bool
	WithReplacement bool
	Seed            uint64
	AutostartAfter  int
}

func Load() (*Config, error) {
	return loadFrom(getConfigPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Last wins
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		DefaultFolder: "", // empty means use cwd
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.DefaultFolder = expandPath(cfg.DefaultFolder)
	cfg.Log.File = expandPath(cfg.Log.File)
	for i, ext := range cfg.IgnoredExtensions {
		cfg.IgnoredExtensions[i] = strings.ToLower(strings.TrimPrefix(ext, "."))
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/reel/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetBackend returns the playback backend name.
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "auto"
	}
	return c.Backend
}

// GetVolume returns the start volume in percent.
func (c *Config) GetVolume() int {
	if c.Volume == nil {
		return 100
	}
	return *c.Volume
}

// GetNotifications reports whether now-playing notifications are shown.
func (c *Config) GetNotifications() bool {
	return c.Notifications == nil || *c.Notifications
}

// GetDeletedDir returns the holding directory name for staged deletes.
func (c *Config) GetDeletedDir() string {
	if c.DeletedDir == "" {
		return "deleted"
	}
	return c.DeletedDir
}

// GetAutoPlayConfig returns the engine settings with defaults applied.
func (c *Config) GetAutoPlayConfig() AutoPlaySettings {
	s := AutoPlaySettings{
		Loop:            true,
		Shuffle:         true,
		WithReplacement: c.AutoPlay.WithReplacement,
		Seed:            c.AutoPlay.Seed,
		AutostartAfter:  1000,
	}
	if c.AutoPlay.Loop != nil {
		s.Loop = *c.AutoPlay.Loop
	}
	if c.AutoPlay.Shuffle != nil {
		s.Shuffle = *c.AutoPlay.Shuffle
	}
	if c.AutoPlay.AutostartAfter != nil {
		s.AutostartAfter = *c.AutoPlay.AutostartAfter
	}
	return s
}

// GetUIConfig returns the UI timings with defaults applied.
func (c *Config) GetUIConfig() UIConfig {
	cfg := c.UI
	if cfg.TickMS <= 0 {
		cfg.TickMS = 250
	}
	if cfg.DrainBudgetMS <= 0 {
		cfg.DrainBudgetMS = 100
	}
	return cfg
}

// Tick returns the UI refresh interval.
func (u UIConfig) Tick() time.Duration { return time.Duration(u.TickMS) * time.Millisecond }

// DrainBudget returns the time allowed for draining results per tick.
func (u UIConfig) DrainBudget() time.Duration {
	return time.Duration(u.DrainBudgetMS) * time.Millisecond
}

// GetSeekConfig returns the seek steps with defaults applied.
func (c *Config) GetSeekConfig() SeekConfig {
	cfg := c.Seek
	if cfg.SmallMS <= 0 {
		cfg.SmallMS = 500
	}
	if cfg.LongMS <= 0 {
		cfg.LongMS = 10000
	}
	return cfg
}

// Small returns the short seek step.
func (s SeekConfig) Small() time.Duration { return time.Duration(s.SmallMS) * time.Millisecond }

// Long returns the long seek step.
func (s SeekConfig) Long() time.Duration { return time.Duration(s.LongMS) * time.Millisecond }

// GetLogConfig returns the logging settings with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	return cfg
}
