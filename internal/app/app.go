package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/vk/livegrid/internal/ctxlog"
	"github.com/vk/livegrid/internal/draw"
	"github.com/vk/livegrid/internal/engine"
	"github.com/vk/livegrid/internal/world"
	"github.com/vk/livegrid/modules/print"
)

// RemotePrefix names the variables fed by the remote client, e.g. remote_knob.
const RemotePrefix = "remote"

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config

	drawer  draw.Drawer
	engine  *engine.Engine
	sources *world.Sources
	inbox   *world.Inbox

	httpServer *http.Server
}

// NewApp is the constructor for the main application. A nil drawer prints
// frames to outW.
func NewApp(outW io.Writer, cfg *Config, drawer draw.Drawer) *App {
	logger := newLogger(cfg, outW)
	logger.Debug("Logger configured successfully.")

	if drawer == nil {
		drawer = print.New(outW)
	}

	// Scene vars come first so that live inputs win a name collision.
	custom := world.NewCustomSource()
	sources := world.NewSources(custom, world.NewTimeSource(), world.NewAppInputSource(cfg.Keys...))

	var inbox *world.Inbox
	if cfg.RemoteURL != "" {
		inbox = world.NewInbox(cfg.MaxInputPerTick * 4)
		sources.Register(world.NewInboxSource("remote", RemotePrefix, inbox, cfg.MaxInputPerTick))
	}
	logger.Debug("Input sources registered.", "count", sources.Len())

	eng := engine.NewEngine(engine.Options{
		Mode:             cfg.Mode,
		TransitionFrames: cfg.TransitionFrames,
		Sources:          sources,
		Custom:           custom,
	})

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		drawer:  drawer,
		engine:  eng,
		sources: sources,
		inbox:   inbox,
	}
}

// Engine returns the application's engine. This is primarily for testing.
func (a *App) Engine() *engine.Engine {
	return a.engine
}

// Context returns ctx carrying the app's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
