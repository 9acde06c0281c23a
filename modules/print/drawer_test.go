package print

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/livegrid/internal/color"
	"github.com/vk/livegrid/internal/draw"
	"github.com/vk/livegrid/internal/geom"
	"github.com/vk/livegrid/internal/testutil"
)

func TestDrawPrintsSummary(t *testing.T) {
	ctx, _ := testutil.Context(t)
	var buf bytes.Buffer
	d := New(&buf)

	f := &draw.Frame{
		Background: color.Black,
		Paths: []draw.Path{{
			Points: []geom.Vec2{{X: -1, Y: -2}, {X: 3, Y: 4}},
			Style:  draw.DefaultStyle(),
		}},
		Labels: []draw.Label{{Text: "hi", Pos: geom.V2(0, 0), Size: 12, Color: color.White}},
	}
	require.NoError(t, d.Draw(ctx, f))
	require.NoError(t, d.Draw(ctx, &draw.Frame{}))

	want := `frame 0 background=#000000ff paths=1 labels=1
  bounds (-1, -2) .. (3, 4)
  path 0 points=2 closed=false fill=#ffffffff stroke=#00000000 width=1
  label "hi" at (0, 0) size=12 color=#ffffffff
frame 1 background=#00000000 paths=0 labels=0
`
	assert.Equal(t, want, buf.String())
}

func TestDrawVerbose(t *testing.T) {
	ctx, _ := testutil.Context(t)
	var buf bytes.Buffer
	d := New(&buf)
	d.Verbose = true

	require.NoError(t, d.Draw(ctx, &draw.Frame{Paths: []draw.Path{{Points: []geom.Vec2{{X: 1, Y: 2}}, Closed: true}}}))
	assert.Contains(t, buf.String(), "    (1, 2)\n")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestDrawReportsWriteErrors(t *testing.T) {
	ctx, _ := testutil.Context(t)
	err := New(failingWriter{}).Draw(ctx, &draw.Frame{})
	require.ErrorContains(t, err, "disk full")
}
