// Package config loads the game settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config holds all settings of a game run.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Logging   LoggingConfig   `yaml:"logging"`
	Animation AnimationConfig `yaml:"animation"`
	Entity    EntityConfig    `yaml:"entity"`
	Assets    AssetsConfig    `yaml:"assets"`
	Audio     AudioConfig     `yaml:"audio"`
	Debug     DebugConfig     `yaml:"debug"`
}

// WindowConfig sizes the game window. The view shows Width x Height world pixels
// scaled by Scale.
type WindowConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Scale     float64 `yaml:"scale"`
	Title     string  `yaml:"title"`
	Resizable bool    `yaml:"resizable"`
	TPS       int     `yaml:"tps"` // Updates per second
}

// LoggingConfig selects the log level and encoder.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// AnimationConfig tunes sprite animations.
type AnimationConfig struct {
	SwitchTime float64 `yaml:"switch_time"` // Seconds per frame
}

// EntityConfig tunes the entity kinds. Velocities are in pixels per second, times in
// seconds.
type EntityConfig struct {
	Velocity      float64 `yaml:"velocity"`
	ArrowVelocity float64 `yaml:"arrow_velocity"`
	MoleVelocity  float64 `yaml:"mole_velocity"`
	MoleIdleTime  float64 `yaml:"mole_idle_time"`
	MoleMoveTime  float64 `yaml:"mole_move_time"`
}

// SheetConfig is one sprite sheet image cut into Cols x Rows frames.
type SheetConfig struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"` // Relative to the assets directory
	Cols int    `yaml:"cols"`
	Rows int    `yaml:"rows"`
}

// AssetsConfig locates images and maps.
type AssetsConfig struct {
	Dir    string        `yaml:"dir"`
	Map    string        `yaml:"map"` // First level, relative to Dir
	Sheets []SheetConfig `yaml:"sheets"`
}

// AudioConfig controls sound effects.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
}

// DebugConfig enables debug drawing.
type DebugConfig struct {
	DrawColliders bool `yaml:"draw_colliders"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     320,
			Height:    240,
			Scale:     3,
			Title:     "Forest Adventure",
			Resizable: true,
			TPS:       60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Animation: AnimationConfig{
			SwitchTime: 0.1,
		},
		Entity: EntityConfig{
			Velocity:      120,
			ArrowVelocity: 300,
			MoleVelocity:  60,
			MoleIdleTime:  1.5,
			MoleMoveTime:  1,
		},
		Assets: AssetsConfig{
			Dir: "assets",
			Map: "maps/forest.json",
			Sheets: []SheetConfig{
				{Name: "player", Path: "sprites/player.png", Cols: 4, Rows: 13},
				{Name: "mole", Path: "sprites/mole.png", Cols: 4, Rows: 7},
				{Name: "arrow", Path: "sprites/arrow.png", Cols: 1, Rows: 1},
				{Name: "coin", Path: "sprites/coin.png", Cols: 4, Rows: 1},
			},
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.5,
		},
	}
}

// LoadConfig overlays the file at path on the defaults. A missing file gives the
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.Scale <= 0:
		return fmt.Errorf("%w: window scale %g", ErrInvalid, c.Window.Scale)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.Window.TPS)
	case c.Animation.SwitchTime <= 0:
		return fmt.Errorf("%w: switch_time %g", ErrInvalid, c.Animation.SwitchTime)
	case c.Entity.Velocity <= 0 || c.Entity.ArrowVelocity <= 0 || c.Entity.MoleVelocity <= 0:
		return fmt.Errorf("%w: velocities must be positive", ErrInvalid)
	case c.Entity.MoleIdleTime <= 0 || c.Entity.MoleMoveTime <= 0:
		return fmt.Errorf("%w: mole times must be positive", ErrInvalid)
	case c.Audio.Volume < 0:
		return fmt.Errorf("%w: volume %g", ErrInvalid, c.Audio.Volume)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample_rate %d", ErrInvalid, c.Audio.SampleRate)
	}

	names := make(map[string]bool, len(c.Assets.Sheets))
	for _, s := range c.Assets.Sheets {
		if s.Name == "" || s.Path == "" {
			return fmt.Errorf("%w: sheet needs a name and a path", ErrInvalid)
		}
		if names[s.Name] {
			return fmt.Errorf("%w: duplicate sheet %s", ErrInvalid, s.Name)
		}
		names[s.Name] = true
		if s.Cols <= 0 || s.Rows <= 0 {
			return fmt.Errorf("%w: sheet %s grid %dx%d", ErrInvalid, s.Name, s.Cols, s.Rows)
		}
	}
	return nil
}
