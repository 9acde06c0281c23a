package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/livegrid/internal/config"
	"github.com/vk/livegrid/internal/livecode"
	"github.com/vk/livegrid/internal/scene"
	"github.com/vk/livegrid/internal/testutil"
	"github.com/vk/livegrid/internal/world"
)

func circleScene(radius string) []byte {
	return []byte("layer {\n  circle {\n    radius = " + radius + "\n  }\n}\n")
}

func radius(t *testing.T, v *scene.Value) float64 {
	t.Helper()
	require.NotNil(t, v)
	require.NotEmpty(t, v.Layers)
	require.NotEmpty(t, v.Layers[0].Cells)
	c, ok := v.Layers[0].Cells[0].Node.Shapes[0].(scene.CircleValue)
	require.True(t, ok)
	return c.Radius
}

func frame(n uint64, elapsed time.Duration) world.FrameInput {
	return world.FrameInput{Frame: n, Elapsed: elapsed, Dt: time.Second / 60, FPS: 60}
}

func newEngine(mode livecode.Mode, transition int) *Engine {
	return NewEngine(Options{Mode: mode, TransitionFrames: transition})
}

func TestTickBeforeReload(t *testing.T) {
	ctx, _ := testutil.Context(t)
	e := newEngine(livecode.Lenient, 0)
	_, err := e.Tick(ctx, frame(0, 0))
	require.ErrorIs(t, err, ErrNoScene)
}

func TestReloadAndTick(t *testing.T) {
	ctx, logs := testutil.Context(t)
	e := newEngine(livecode.Strict, 0)

	src := []byte("vars {\n  r = 12\n}\nlayer {\n  circle {\n    radius = r\n  }\n}\n")
	require.NoError(t, e.Reload(ctx, "scene.hcl", src, time.Now()))
	assert.Contains(t, logs.String(), "Scene loaded.")

	v, err := e.Tick(ctx, frame(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 12.0, radius(t, v))
}

func TestFailedReloadKeepsOutput(t *testing.T) {
	ctx, logs := testutil.Context(t)
	e := newEngine(livecode.Lenient, 10)
	require.NoError(t, e.Reload(ctx, "scene.hcl", circleScene("10"), time.Now()))

	before, err := e.Tick(ctx, frame(0, 0))
	require.NoError(t, err)

	err = e.Reload(ctx, "scene.hcl", []byte("layer {"), time.Now())
	var pe *config.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, logs.String(), "Scene reload failed, keeping the running scene.")

	after, err := e.Tick(ctx, frame(1, time.Second))
	require.NoError(t, err)
	assert.Equal(t, *before, *after)
	assert.False(t, e.Status().Transitioning)
}

func TestTransitionBlendsOverFrames(t *testing.T) {
	ctx, _ := testutil.Context(t)
	e := newEngine(livecode.Lenient, 4)
	require.NoError(t, e.Reload(ctx, "scene.hcl", circleScene("10"), time.Now()))
	v, err := e.Tick(ctx, frame(0, 0))
	require.NoError(t, err)
	require.Equal(t, 10.0, radius(t, v))

	require.NoError(t, e.Reload(ctx, "scene.hcl", circleScene("30"), time.Now()))
	assert.True(t, e.Status().Transitioning)

	var got []float64
	for i := range 5 {
		v, err := e.Tick(ctx, frame(uint64(i+1), 0))
		require.NoError(t, err)
		got = append(got, radius(t, v))
	}
	assert.Equal(t, []float64{15, 20, 25, 30, 30}, got)
	assert.False(t, e.Status().Transitioning)
}

func TestSceneOverridesTransitionAndMode(t *testing.T) {
	ctx, _ := testutil.Context(t)
	e := newEngine(livecode.Lenient, 30)
	require.NoError(t, e.Reload(ctx, "scene.hcl", circleScene("10"), time.Now()))
	_, err := e.Tick(ctx, frame(0, 0))
	require.NoError(t, err)

	src := append([]byte("mode = \"strict\"\ntransition_frames = 0\n"), circleScene("40")...)
	require.NoError(t, e.Reload(ctx, "scene.hcl", src, time.Now()))
	assert.Equal(t, livecode.Strict, e.Status().Mode)
	assert.False(t, e.Status().Transitioning)

	v, err := e.Tick(ctx, frame(1, 0))
	require.NoError(t, err)
	assert.Equal(t, 40.0, radius(t, v))
}

func TestResolutionFailure(t *testing.T) {
	// sqrt(1 - t) fails once t > 1.
	src := circleScene("sqrt(1 - t) * 10 + 10")

	t.Run("strict returns last value and error", func(t *testing.T) {
		ctx, _ := testutil.Context(t)
		e := newEngine(livecode.Strict, 0)
		require.NoError(t, e.Reload(ctx, "scene.hcl", src, time.Now()))

		good, err := e.Tick(ctx, frame(0, 0))
		require.NoError(t, err)
		assert.Equal(t, 20.0, radius(t, good))

		got, err := e.Tick(ctx, frame(1, 2*time.Second))
		require.Error(t, err)
		var fe *livecode.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "layers[0].cells[0].shapes[0].radius", fe.Path.String())
		assert.Same(t, good, got)
	})

	t.Run("lenient falls back to last good", func(t *testing.T) {
		ctx, logs := testutil.Context(t)
		e := newEngine(livecode.Lenient, 0)
		require.NoError(t, e.Reload(ctx, "scene.hcl", src, time.Now()))

		_, err := e.Tick(ctx, frame(0, 0))
		require.NoError(t, err)
		v, err := e.Tick(ctx, frame(1, 2*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 20.0, radius(t, v))
		assert.Contains(t, logs.String(), "Field failed to resolve, using fallback.")
	})
}

func TestUnknownIdentifiersWarnOnce(t *testing.T) {
	ctx, logs := testutil.Context(t)
	e := newEngine(livecode.Lenient, 0)

	src := []byte(`
layer {
  sequencer "square" {
    rows = 2
    cols = 2
  }
  circle {
    radius = foo * cell_i + t
  }
  rect {
    w = wobble(1)
  }
}
`)
	require.NoError(t, e.Reload(ctx, "scene.hcl", src, time.Now()))
	_, err := e.Tick(ctx, frame(0, 0))
	require.NoError(t, err)

	out := logs.String()
	assert.Contains(t, out, "Scene references an unknown identifier.")
	assert.Contains(t, out, "name=foo")
	assert.NotContains(t, out, "name=cell_i")
	assert.NotContains(t, out, "name=t\n")
	assert.Contains(t, out, "function=wobble")

	before := len(out)
	_, err = e.Tick(ctx, frame(1, 0))
	require.NoError(t, err)
	assert.NotContains(t, logs.String()[before:], "unknown identifier")
}
