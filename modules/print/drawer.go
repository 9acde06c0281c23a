package print

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/vk/livegrid/internal/ctxlog"
	"github.com/vk/livegrid/internal/draw"
)

// Drawer prints frames to an io.Writer.
type Drawer struct {
	mu     sync.Mutex
	out    io.Writer
	frames uint64
	// Verbose also prints every point.
	Verbose bool
}

func New(out io.Writer) *Drawer {
	return &Drawer{out: out}
}

// Draw implements draw.Drawer.
func (d *Drawer) Draw(ctx context.Context, f *draw.Frame) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Printing frame.", "paths", len(f.Paths), "labels", len(f.Labels))

	d.mu.Lock()
	defer d.mu.Unlock()

	w := bufio.NewWriter(d.out)
	fmt.Fprintf(w, "frame %d background=%s paths=%d labels=%d\n", d.frames, f.Background.Hex(), len(f.Paths), len(f.Labels))
	if lo, hi, ok := f.Bounds(); ok {
		fmt.Fprintf(w, "  bounds %s .. %s\n", lo, hi)
	}
	for i, p := range f.Paths {
		fmt.Fprintf(w, "  path %d points=%d closed=%t fill=%s stroke=%s width=%g\n",
			i, len(p.Points), p.Closed, p.Style.Fill.Hex(), p.Style.Stroke.Hex(), p.Style.StrokeWidth)
		if d.Verbose {
			for _, pt := range p.Points {
				fmt.Fprintf(w, "    %s\n", pt)
			}
		}
	}
	for _, l := range f.Labels {
		fmt.Fprintf(w, "  label %q at %s size=%g color=%s\n", l.Text, l.Pos, l.Size, l.Color.Hex())
	}
	d.frames++

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to print frame: %w", err)
	}
	return nil
}
