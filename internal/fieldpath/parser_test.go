// internal/fieldpath/parser_test.go
package fieldpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name         string
		raw          string
		expectErr    bool
		expectedAddr Address
	}{
		{
			name: "simple path",
			raw:  "a.b.c",
			expectedAddr: Address{
				Path: []PathSegment{NewPathSegment("a"), NewPathSegment("b"), NewPathSegment("c")},
			},
		},
		{
			name: "multi-level path with index",
			raw:  "layers[0].shapes[15]",
			expectedAddr: Address{
				Path: []PathSegment{NewPathSegmentWithIndex("layers", 0), NewPathSegmentWithIndex("shapes", 15)},
			},
		},
		{
			name:         "empty string is the root",
			raw:          "",
			expectedAddr: Root(),
		},
		{
			name:      "error - empty path segment",
			raw:       "a..b",
			expectErr: true,
		},
		{
			name:      "error - invalid segment format",
			raw:       "a.b[x]",
			expectErr: true,
		},
		{
			name:      "error - just hyphen",
			raw:       "a.-.c",
			expectErr: true,
		},
		{
			name:      "error - trailing dot",
			raw:       "a.",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			addr, err := Parse(tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expectedAddr.Equal(addr), "got %q", addr.String())
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("a[") })
}
