package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/livegrid/internal/expr"
	"github.com/vk/livegrid/internal/world"
)

// MustExpr parses src or fails the test.
func MustExpr(t *testing.T, src string) *expr.Node {
	t.Helper()
	n, err := expr.Parse(src)
	require.NoError(t, err, "parsing %q", src)
	return n
}

// World builds a context holding vals and the built-in functions.
func World(t *testing.T, vals ...world.ExprValue) *world.Context {
	t.Helper()
	return world.Empty().With(vals...)
}
