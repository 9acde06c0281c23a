package world

import (
	"sync"
)

// TimeSource exposes t (seconds), frame, dt (seconds) and fps.
type TimeSource struct {
	in FrameInput
}

func NewTimeSource() *TimeSource { return &TimeSource{} }

func (s *TimeSource) Name() string         { return "time" }
func (s *TimeSource) Update(in FrameInput) { s.in = in }
func (s *TimeSource) ExecFuncs() []ExprValue {
	return []ExprValue{
		Float("t", s.in.Elapsed.Seconds()),
		Float("frame", float64(s.in.Frame)),
		Float("dt", s.in.Dt.Seconds()),
		Float("fps", s.in.FPS),
	}
}

// AppInputSource exposes pointer, window and keyboard state. For each tracked
// key k it provides key_k (held) and key_k_pressed, which is true only on the
// frame the key went down.
type AppInputSource struct {
	keys    []string
	in      FrameInput
	held    map[string]bool
	pressed map[string]bool
}

func NewAppInputSource(keys ...string) *AppInputSource {
	return &AppInputSource{
		keys:    keys,
		held:    make(map[string]bool),
		pressed: make(map[string]bool),
	}
}

func (s *AppInputSource) Name() string { return "app" }

func (s *AppInputSource) Update(in FrameInput) {
	s.in = in
	for _, k := range s.keys {
		down := in.Keys[k]
		s.pressed[k] = down && !s.held[k]
		s.held[k] = down
	}
}

func (s *AppInputSource) ExecFuncs() []ExprValue {
	vals := []ExprValue{
		Float("mouse_x", s.in.MouseX),
		Float("mouse_y", s.in.MouseY),
		Bool("mouse_down", s.in.MouseDown),
		Float("window_w", s.in.WindowW),
		Float("window_h", s.in.WindowH),
	}
	for _, k := range s.keys {
		vals = append(vals,
			Bool("key_"+k, s.held[k]),
			Bool("key_"+k+"_pressed", s.pressed[k]),
		)
	}
	return vals
}

// CustomSource holds user variables declared by the scene. The engine
// replaces them on every successful reload.
type CustomSource struct {
	mu   sync.Mutex
	vals []ExprValue
}

func NewCustomSource() *CustomSource { return &CustomSource{} }

func (s *CustomSource) Name() string      { return "custom" }
func (s *CustomSource) Update(FrameInput) {}

// Set replaces the variables.
func (s *CustomSource) Set(vals []ExprValue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vals = append([]ExprValue(nil), vals...)
}

func (s *CustomSource) ExecFuncs() []ExprValue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ExprValue(nil), s.vals...)
}
