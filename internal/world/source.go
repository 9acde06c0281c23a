package world

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/livegrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// FrameInput is the raw per-frame state handed to every source.
type FrameInput struct {
	Frame   uint64
	Now     time.Time
	Elapsed time.Duration
	Dt      time.Duration
	FPS     float64

	MouseX, MouseY   float64
	MouseDown        bool
	WindowW, WindowH float64
	// Keys holds the keys that are down this frame.
	Keys map[string]bool
}

// Source contributes named values to the world once per frame.
type Source interface {
	Name() string
	// Update advances internal state (edge detection, draining) before
	// ExecFuncs is called for the same frame.
	Update(in FrameInput)
	ExecFuncs() []ExprValue
}

// Sources is an ordered set of input sources.
type Sources struct {
	list  []Source
	names map[string]struct{}
}

// NewSources registers srcs in order.
func NewSources(srcs ...Source) *Sources {
	s := &Sources{names: make(map[string]struct{})}
	for _, src := range srcs {
		s.Register(src)
	}
	return s
}

// Register appends a source. Its values override those of every source
// registered before it.
func (s *Sources) Register(src Source) {
	if _, exists := s.names[src.Name()]; exists {
		panic(fmt.Sprintf("input source %q already registered", src.Name()))
	}
	s.names[src.Name()] = struct{}{}
	s.list = append(s.list, src)
}

// Len is the number of registered sources.
func (s *Sources) Len() int { return len(s.list) }

// Build updates every source and unions their values into a new base
// context. Name collisions resolve to the last registered source.
func (s *Sources) Build(ctx context.Context, in FrameInput) *Context {
	logger := ctxlog.FromContext(ctx)

	vars := make(map[string]cty.Value)
	owners := make(map[string]string)
	for _, src := range s.list {
		src.Update(in)
		for _, v := range src.ExecFuncs() {
			if prev, ok := owners[v.Name]; ok && prev != src.Name() {
				logger.Debug("Input variable overridden by later source.", "name", v.Name, "previous", prev, "source", src.Name())
			}
			vars[v.Name] = v.Val.Cty()
			owners[v.Name] = src.Name()
		}
	}
	logger.Debug("World context built.", "frame", in.Frame, "vars", len(vars))
	return NewContext(vars)
}
