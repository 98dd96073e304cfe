// Package config loads stage, render, audio and logging settings from YAML
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/aether-stage/parameter"
	"github.com/lixenwraith/aether-stage/particle"
	"github.com/lixenwraith/aether-stage/stage"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the root document
type Config struct {
	Stage   StageConfig   `yaml:"stage"`
	Render  RenderConfig  `yaml:"render"`
	Audio   AudioConfig   `yaml:"audio"`
	Logging LoggingConfig `yaml:"logging"`
}

// StageConfig tunes the boot sequence and particle seeding
// Durations are Go duration strings ("5s", "50ms")
type StageConfig struct {
	BootDuration     string  `yaml:"boot_duration"`
	ProgressInterval string  `yaml:"progress_interval"`
	ProgressStep     float64 `yaml:"progress_step"`
	MaxDelta         string  `yaml:"max_delta"`
	Seed             int64   `yaml:"seed"` // 0 = time-derived
	PanelCount       int     `yaml:"panel_count"`
	Jitter           string  `yaml:"jitter"` // uniform, simplex
}

// RenderConfig configures the terminal preview
type RenderConfig struct {
	FPS   int    `yaml:"fps"`
	Color string `yaml:"color"` // truecolor, 256
}

// AudioConfig configures the boot hum
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
	// Volume is a base-2 gain exponent, 0 is unity and -1 halves amplitude
	Volume float64 `yaml:"volume"`
}

// LoggingConfig configures zap
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

const (
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Stage: StageConfig{
			BootDuration:     parameter.BootDuration.String(),
			ProgressInterval: parameter.BootProgressInterval.String(),
			ProgressStep:     parameter.BootProgressStep,
			MaxDelta:         parameter.MaxFrameDelta.String(),
			PanelCount:       parameter.PanelCount,
			Jitter:           string(particle.JitterUniform),
		},
		Render: RenderConfig{
			FPS:   parameter.DefaultFPS,
			Color: ColorTrueColor,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  -1.5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults, a missing file yields the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate reports every problem at once, each wrapped in ErrInvalidConfig
func (c *Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	for _, d := range []struct {
		name, value string
	}{
		{"stage.boot_duration", c.Stage.BootDuration},
		{"stage.progress_interval", c.Stage.ProgressInterval},
		{"stage.max_delta", c.Stage.MaxDelta},
	} {
		v, err := time.ParseDuration(d.value)
		switch {
		case err != nil:
			invalid("%s: %v", d.name, err)
		case v <= 0:
			invalid("%s must be positive, got %s", d.name, d.value)
		}
	}

	if c.Stage.ProgressStep < 0 || c.Stage.ProgressStep > 1 {
		invalid("stage.progress_step %v not in [0,1]", c.Stage.ProgressStep)
	}
	if c.Stage.PanelCount < 1 || c.Stage.PanelCount > parameter.PanelCount {
		invalid("stage.panel_count %d not in [1,%d]", c.Stage.PanelCount, parameter.PanelCount)
	}
	switch particle.JitterKind(c.Stage.Jitter) {
	case particle.JitterUniform, particle.JitterSimplex:
	default:
		invalid("stage.jitter %q (valid: uniform, simplex)", c.Stage.Jitter)
	}

	if c.Render.FPS < 1 || c.Render.FPS > 240 {
		invalid("render.fps %d not in [1,240]", c.Render.FPS)
	}
	if c.Render.Color != ColorTrueColor && c.Render.Color != Color256 {
		invalid("render.color %q (valid: truecolor, 256)", c.Render.Color)
	}

	if c.Audio.Volume > 2 {
		invalid("audio.volume %v exceeds 2", c.Audio.Volume)
	}

	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		invalid("logging.level: %v", err)
	}

	return errors.Join(errs...)
}

// StageConfig converts to the orchestrator settings, call after Validate
func (c *Config) StageConfig() stage.Config {
	return stage.Config{
		BootDuration:     mustDuration(c.Stage.BootDuration),
		ProgressInterval: mustDuration(c.Stage.ProgressInterval),
		ProgressStep:     c.Stage.ProgressStep,
		MaxDelta:         mustDuration(c.Stage.MaxDelta),
		Seed:             c.Stage.Seed,
		PanelCount:       c.Stage.PanelCount,
		Jitter:           particle.JitterKind(c.Stage.Jitter),
		FPS:              c.Render.FPS,
	}
}

// FrameInterval is the render loop period
func (c *Config) FrameInterval() time.Duration {
	if c.Render.FPS <= 0 {
		return time.Second / parameter.DefaultFPS
	}
	return time.Second / time.Duration(c.Render.FPS)
}

// ZapConfig builds the logger configuration for the logging section
func (c *Config) ZapConfig() zap.Config {
	zc := zap.NewProductionConfig()
	if c.Logging.Development {
		zc = zap.NewDevelopmentConfig()
	}
	if lvl, err := zap.ParseAtomicLevel(c.Logging.Level); err == nil {
		zc.Level = lvl
	}
	return zc
}

func mustDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}
