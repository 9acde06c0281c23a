package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/livegrid/internal/livecode"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScenePath string // .hcl, .yaml or .yml file, or a directory holding one

	FPS float64
	// Frames bounds the run. Zero runs until the context is cancelled.
	Frames           uint64
	Mode             livecode.Mode
	TransitionFrames int

	LogFormat string
	LogLevel  string

	MaxInputPerTick int
	RemoteURL       string
	RemoteEvent     string
	Watch           bool
	// Keys are the key names exposed to scenes. Their state, like the
	// pointer, comes from a drawer that implements draw.InputReader.
	Keys []string
	// WindowW and WindowH are reported as window_w and window_h unless the
	// drawer knows its real window size.
	WindowW, WindowH float64

	HealthcheckPort int
}

// NewConfig validates cfg and fills in defaults for zero values.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScenePath == "" {
		return nil, errors.New("ScenePath is a required configuration field and cannot be empty")
	}
	if cfg.FPS == 0 {
		cfg.FPS = 60
	}
	if cfg.FPS < 0 {
		return nil, fmt.Errorf("fps must be positive, got %g", cfg.FPS)
	}
	if cfg.TransitionFrames < 0 {
		return nil, fmt.Errorf("transition frames must not be negative, got %d", cfg.TransitionFrames)
	}
	if cfg.MaxInputPerTick == 0 {
		cfg.MaxInputPerTick = 32
	}
	if cfg.MaxInputPerTick < 0 {
		return nil, fmt.Errorf("max input per tick must be positive, got %d", cfg.MaxInputPerTick)
	}
	if cfg.WindowW == 0 && cfg.WindowH == 0 {
		cfg.WindowW, cfg.WindowH = 800, 600
	}
	if cfg.WindowW <= 0 || cfg.WindowH <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %gx%g", cfg.WindowW, cfg.WindowH)
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("invalid healthcheck port %d", cfg.HealthcheckPort)
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	return &cfg, nil
}
