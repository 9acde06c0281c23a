package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vk/livegrid/internal/ctxlog"
	"github.com/vk/livegrid/internal/draw"
	"github.com/vk/livegrid/internal/engine"
	"github.com/vk/livegrid/internal/reload"
	"github.com/vk/livegrid/internal/world"
	"github.com/vk/livegrid/modules/remote"
	"golang.org/x/sync/errgroup"
)

// Run executes the frame loop until the context is cancelled or the
// configured number of frames has been drawn. The remote client, the file
// watcher and the health check server run alongside it.
func (a *App) Run(ctx context.Context) error {
	ctx = a.Context(ctx)
	a.logger.Debug("App.Run method started.")

	path, err := engine.ResolveScenePath(ctx, a.config.ScenePath)
	if err != nil {
		return fmt.Errorf("failed to resolve scene path: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	var src reload.Source = reload.NewFileSource(path)
	if a.config.Watch {
		n, err := reload.NewNotifySource(path)
		if err != nil {
			return err
		}
		g.Go(func() error { return n.Run(ctx) })
		src = n
	}

	if a.inbox != nil {
		client := remote.New(remote.Config{URL: a.config.RemoteURL, Event: a.config.RemoteEvent}, a.inbox)
		g.Go(func() error {
			// Input is best effort: a dead remote never stops the drawing.
			if err := client.Run(ctx); err != nil {
				ctxlog.FromContext(ctx).Error("Remote input stopped.", "error", err)
			}
			return nil
		})
	}

	if a.config.HealthcheckPort > 0 {
		g.Go(func() error { return a.serveHealth(ctx) })
	}

	g.Go(func() error {
		defer cancel()
		return a.loop(ctx, path, src)
	})

	err = g.Wait()
	a.logger.Debug("App.Run method finished.")
	return err
}

// loop ticks once per frame interval.
func (a *App) loop(ctx context.Context, path string, src reload.Source) error {
	logger := ctxlog.FromContext(ctx)
	interval := time.Duration(float64(time.Second) / a.config.FPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Starting frame loop.", "path", path, "fps", a.config.FPS, "frames", a.config.Frames)
	start := time.Now()
	prev := start
	var n uint64
	for a.config.Frames == 0 || n < a.config.Frames {
		if n > 0 {
			select {
			case <-ctx.Done():
				logger.Info("Frame loop stopped.", "frames", n)
				return nil
			case <-ticker.C:
			}
		}
		now := time.Now()
		in := world.FrameInput{
			Frame:   n,
			Now:     now,
			Elapsed: now.Sub(start),
			Dt:      now.Sub(prev),
			FPS:     a.config.FPS,
			WindowW: a.config.WindowW,
			WindowH: a.config.WindowH,
		}
		a.readInput(&in)
		if err := a.frame(ctx, path, src, in); err != nil {
			return err
		}
		prev = now
		n++
	}
	logger.Info("Frame loop finished.", "frames", n)
	return nil
}

// readInput copies pointer, window and key state from a windowed drawer.
// Text drawers report nothing, so the configured window size stands.
func (a *App) readInput(in *world.FrameInput) {
	r, ok := a.drawer.(draw.InputReader)
	if !ok {
		return
	}
	st := r.ReadInput()
	in.MouseX, in.MouseY, in.MouseDown = st.MouseX, st.MouseY, st.MouseDown
	if st.WindowW > 0 && st.WindowH > 0 {
		in.WindowW, in.WindowH = st.WindowW, st.WindowH
	}
	in.Keys = st.Keys
}

// frame runs one reload, resolve and draw pass.
func (a *App) frame(ctx context.Context, path string, src reload.Source, in world.FrameInput) error {
	logger := ctxlog.FromContext(ctx)

	text, changed, err := src.Poll()
	switch {
	case err != nil:
		logger.Warn("Scene poll failed.", "path", path, "error", err)
	case changed:
		// A failed reload is logged by the engine and the scene keeps running.
		_ = a.engine.Reload(ctx, path, text, in.Now)
	}

	v, err := a.engine.Tick(ctx, in)
	if errors.Is(err, engine.ErrNoScene) {
		logger.Debug("No scene to draw yet.", "frame", in.Frame)
		return nil
	}
	if err != nil {
		logger.Warn("Frame resolution failed.", "frame", in.Frame, "error", err)
	}
	if v == nil {
		return nil
	}
	if err := a.drawer.Draw(ctx, v.Frame()); err != nil {
		return fmt.Errorf("failed to draw frame %d: %w", in.Frame, err)
	}
	return nil
}
