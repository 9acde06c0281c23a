package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vk/livegrid/internal/ctxlog"
	"github.com/vk/livegrid/internal/expr"
	"github.com/vk/livegrid/internal/lastgood"
	"github.com/vk/livegrid/internal/livecode"
	"github.com/vk/livegrid/internal/scene"
	"github.com/vk/livegrid/internal/world"
)

// ErrNoScene is returned by Tick before the first successful Reload.
var ErrNoScene = errors.New("no scene loaded")

// DefaultTransitionFrames is used when neither the options nor the scene set
// a transition length.
const DefaultTransitionFrames = 30

// Options configures an Engine. Scene files may override Mode and
// TransitionFrames.
type Options struct {
	Mode             livecode.Mode
	TransitionFrames int
	Sources          *world.Sources
	// Custom receives the scene vars on every successful reload. It should
	// also be registered in Sources.
	Custom *world.CustomSource
}

// Engine owns the running scene. Its methods are safe for concurrent use,
// though a single frame loop is the expected caller.
type Engine struct {
	opts  Options
	store *lastgood.Store

	mu          sync.Mutex
	filename    string
	loadedAt    time.Time
	current     *scene.Scene
	previous    *scene.Scene
	sinceReload int
	checkNames  bool
	last        *scene.Value
}

// NewEngine creates an engine with no scene. Nil Sources get a time source
// and the custom source.
func NewEngine(opts Options) *Engine {
	if opts.Custom == nil {
		opts.Custom = world.NewCustomSource()
	}
	if opts.Sources == nil {
		opts.Sources = world.NewSources(world.NewTimeSource(), opts.Custom)
	}
	if opts.TransitionFrames < 0 {
		opts.TransitionFrames = 0
	}
	return &Engine{opts: opts, store: lastgood.New()}
}

// Reload replaces the running scene with text. On error the running scene is
// kept and the error, a *config.ParseError for malformed text, is returned.
func (e *Engine) Reload(ctx context.Context, filename string, text []byte, now time.Time) error {
	logger := ctxlog.FromContext(ctx)

	s, err := decodeScene(ctx, filename, text)
	if err != nil {
		logger.Error("Scene reload failed, keeping the running scene.", "path", filename, "error", err)
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current != nil && e.last != nil && e.transitionFrames(s) > 0 {
		e.previous = e.current
	} else {
		e.previous = nil
	}
	e.current = s
	e.filename = filename
	e.loadedAt = now
	e.sinceReload = 0
	e.checkNames = true
	e.opts.Custom.Set(s.Vars)

	logger.Info("Scene loaded.", "path", filename, "layers", len(s.Layers), "mode", e.mode().String(), "transition_frames", e.transitionFrames(s))
	return nil
}

// Tick resolves one frame. A strict-mode failure returns the last good value
// together with the error.
func (e *Engine) Tick(ctx context.Context, in world.FrameInput) (*scene.Value, error) {
	logger := ctxlog.FromContext(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current == nil {
		return nil, ErrNoScene
	}

	w := e.opts.Sources.Build(ctx, in)
	if e.checkNames {
		e.checkNames = false
		e.warnUnknown(ctx, w)
	}

	r := livecode.NewResolver(ctx, e.mode(), e.store)
	v := e.current.ToValue(r, w)
	pct := e.advance()
	if err := r.Err(); err != nil {
		logger.Debug("Frame resolution failed.", "frame", in.Frame, "error", err)
		return e.last, fmt.Errorf("resolving %s: %w", e.filename, err)
	}

	if e.previous != nil {
		// The outgoing scene is best effort: its errors never reach the user.
		pr := livecode.NewResolver(ctxlog.Discard(ctx), livecode.Lenient, nil)
		prev := e.previous.ToValue(pr, w)
		if pr.Err() == nil {
			v = prev.Lerpify(v, pct)
		}
		if pct >= 1 {
			logger.Debug("Transition finished.", "frame", in.Frame)
			e.previous = nil
		}
	}

	e.last = &v
	return e.last, nil
}

// advance counts a frame and returns the transition progress.
func (e *Engine) advance() float64 {
	e.sinceReload++
	n := e.transitionFrames(e.current)
	if n == 0 {
		return 1
	}
	return min(1, float64(e.sinceReload)/float64(n))
}

func (e *Engine) mode() livecode.Mode {
	if e.current != nil && e.current.Mode != nil {
		return *e.current.Mode
	}
	return e.opts.Mode
}

func (e *Engine) transitionFrames(s *scene.Scene) int {
	if s != nil && s.TransitionFrames != nil {
		return *s.TransitionFrames
	}
	return e.opts.TransitionFrames
}

// warnUnknown logs every identifier the scene uses that neither the world
// nor the scene itself provides.
func (e *Engine) warnUnknown(ctx context.Context, w *world.Context) {
	logger := ctxlog.FromContext(ctx)

	c := expr.NewContainer()
	c.Add(e.current.Expressions()...)

	known := make(map[string]struct{})
	for _, n := range w.Names() {
		known[n] = struct{}{}
	}
	for _, n := range e.current.KnownNames() {
		known[n] = struct{}{}
	}

	for _, ref := range c.References() {
		root := ref
		if i := strings.IndexAny(ref, ".["); i >= 0 {
			root = ref[:i]
		}
		if _, ok := known[root]; !ok {
			logger.Warn("Scene references an unknown identifier.", "path", e.filename, "name", root)
		}
	}
	for _, fn := range c.CalledFunctions() {
		if !w.HasFunction(fn) {
			logger.Warn("Scene calls an unknown function.", "path", e.filename, "function", fn)
		}
	}
	logger.Debug("Scene expressions analyzed.", "expressions", c.Len())
}

// Status describes the running scene.
type Status struct {
	Filename      string
	LoadedAt      time.Time
	Mode          livecode.Mode
	Transitioning bool
}

func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Status{
		Filename:      e.filename,
		LoadedAt:      e.loadedAt,
		Mode:          e.mode(),
		Transitioning: e.previous != nil,
	}
}
