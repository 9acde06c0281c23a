package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vk/livegrid/internal/lerp"
)

// HSVA channels are all in [0,1]. H is a fraction of a full turn.
type HSVA struct {
	H, S, V, A float64
}

var (
	Black = HSVA{A: 1}
	White = HSVA{V: 1, A: 1}
)

func New(h, s, v, a float64) HSVA {
	return HSVA{H: wrap(h), S: clamp01(s), V: clamp01(v), A: clamp01(a)}
}

// Lerpify blends each channel independently. Hue does not take the short way
// around the wheel.
func (c HSVA) Lerpify(o HSVA, pct float64) HSVA {
	return HSVA{
		H: lerp.Float64(c.H, o.H, pct),
		S: lerp.Float64(c.S, o.S, pct),
		V: lerp.Float64(c.V, o.V, pct),
		A: lerp.Float64(c.A, o.A, pct),
	}
}

// FromRGBA converts channels in [0,1].
func FromRGBA(r, g, b, a float64) HSVA {
	r, g, b = clamp01(r), clamp01(g), clamp01(b)
	hi := max(r, g, b)
	lo := min(r, g, b)
	d := hi - lo

	var h float64
	switch {
	case d == 0:
		h = 0
	case hi == r:
		h = math.Mod((g-b)/d, 6)
	case hi == g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h = wrap(h / 6)

	var s float64
	if hi > 0 {
		s = d / hi
	}
	return HSVA{H: h, S: s, V: hi, A: clamp01(a)}
}

// RGBA converts back to channels in [0,1].
func (c HSVA) RGBA() (r, g, b, a float64) {
	h := wrap(c.H) * 6
	s, v := clamp01(c.S), clamp01(c.V)
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return r, g, b, clamp01(c.A)
}

// Hex renders #rrggbbaa.
func (c HSVA) Hex() string {
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", to8(r), to8(g), to8(b), to8(a))
}

// ParseHex accepts #rgb, #rrggbb and #rrggbbaa.
func ParseHex(s string) (HSVA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return HSVA{}, fmt.Errorf("invalid hex color %q", s)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return HSVA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	ch := func(shift uint) float64 { return float64((n>>shift)&0xff) / 255 }
	return FromRGBA(ch(24), ch(16), ch(8), ch(0)), nil
}

func (c HSVA) String() string {
	return fmt.Sprintf("hsva(%.3f, %.3f, %.3f, %.3f)", c.H, c.S, c.V, c.A)
}

func to8(f float64) uint8 { return uint8(math.Round(clamp01(f) * 255)) }

func clamp01(f float64) float64 { return math.Max(0, math.Min(1, f)) }

func wrap(h float64) float64 {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	return h
}
