package livecode

import (
	"fmt"
	"strings"
)

// Mode selects how resolution failures are handled.
type Mode uint8

const (
	Lenient Mode = iota
	Strict
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	default:
		return "lenient"
	}
}

// ParseMode accepts "strict" or "lenient", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "lenient", "":
		return Lenient, nil
	default:
		return Lenient, fmt.Errorf("unknown resolution mode %q (want strict or lenient)", s)
	}
}
