package livecode

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/livegrid/internal/ctxlog"
	"github.com/vk/livegrid/internal/fieldpath"
	"github.com/vk/livegrid/internal/lastgood"
	"github.com/vk/livegrid/internal/lazy"
	"github.com/vk/livegrid/internal/world"
)

// Resolvable is implemented by Control types.
type Resolvable[V any] interface {
	ToValue(r *Resolver, w *world.Context) V
}

// Resolver tracks the current field path during one resolution pass. Field
// and Index return scoped copies that share the pass state.
type Resolver struct {
	logger *slog.Logger
	mode   Mode
	path   fieldpath.Address
	store  *lastgood.Store
	state  *passState
}

type passState struct {
	mu      sync.Mutex
	errs    []*FieldError
	aborted error
}

// NewResolver starts a pass. A nil store disables last-known-good fallback.
func NewResolver(ctx context.Context, mode Mode, store *lastgood.Store) *Resolver {
	return &Resolver{
		logger: ctxlog.FromContext(ctx),
		mode:   mode,
		store:  store,
		state:  &passState{},
	}
}

func (r *Resolver) Mode() Mode              { return r.mode }
func (r *Resolver) Path() fieldpath.Address { return r.path }

// Field scopes the resolver to a named child field.
func (r *Resolver) Field(name string) *Resolver {
	c := *r
	c.path = r.path.Child(name)
	return &c
}

// Index scopes the resolver to element i of a named list.
func (r *Resolver) Index(name string, i int) *Resolver {
	c := *r
	c.path = r.path.Indexed(name, i)
	return &c
}

// Aborted reports whether the pass has stopped evaluating.
func (r *Resolver) Aborted() bool {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return r.state.aborted != nil
}

// Err returns the error that aborted the pass, if any.
func (r *Resolver) Err() error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return r.state.aborted
}

// Errors returns every failure recorded so far, in order.
func (r *Resolver) Errors() []*FieldError {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	out := make([]*FieldError, len(r.state.errs))
	copy(out, r.state.errs)
	return out
}

// Fail records err against the current path and applies the mode. It
// reports whether the pass is still running.
func (r *Resolver) Fail(err error) bool {
	fe := newFieldError(r.path, err)
	fatal := r.mode == Strict || errors.Is(err, lazy.ErrUninitialized)

	r.state.mu.Lock()
	r.state.errs = append(r.state.errs, fe)
	if fatal && r.state.aborted == nil {
		r.state.aborted = fe
	}
	r.state.mu.Unlock()

	logger := r.logger.With("field", r.path.String())
	if fe.Subject != nil {
		logger = logger.With("subject", fe.Subject.String())
	}
	if fatal {
		logger.Debug("Resolution aborted.", "error", err)
		return false
	}
	logger.Warn("Field failed to resolve, using fallback.", "error", err)
	return true
}

// Diagnostics converts every recorded failure, in order.
func (r *Resolver) Diagnostics() hcl.Diagnostics {
	var diags hcl.Diagnostics
	for _, fe := range r.Errors() {
		diags = append(diags, fe.Diagnostic())
	}
	return diags
}

// Resolve evaluates one field. On success the value is remembered as last
// known good. On failure the mode decides: the pass aborts and def is
// returned, or the last good value (else def) stands in.
func Resolve[T any](r *Resolver, def T, eval func() (T, error)) T {
	if r.Aborted() {
		return def
	}
	v, err := eval()
	if err == nil {
		if r.store != nil {
			r.store.Set(r.path, v)
		}
		return v
	}
	if !r.Fail(err) {
		return def
	}
	if last, ok := lastgood.Lookup[T](r.store, r.path); ok {
		return last
	}
	return def
}
