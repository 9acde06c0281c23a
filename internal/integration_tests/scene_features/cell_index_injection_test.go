package integration_tests

import (
	"testing"

	"github.com/vk/livegrid/internal/app"
	"github.com/vk/livegrid/internal/integration_tests/harness"
)

// Test for: every cell sees its own index variables
func TestSceneFeatures_CellIndex_IsInjected(t *testing.T) {
	// --- Arrange ---
	scene := `
layer {
  prefix = "tile"
  sequencer "square" {
    rows = 2
    cols = 3
    size = 100
  }
  label {
    text = "${tile_x_i},${tile_y_i}"
  }
}
`

	// --- Act ---
	result := harness.Run(t, "main.hcl", scene, app.Config{Frames: 1})

	// --- Assert ---
	if result.Err != nil {
		t.Fatalf("app.Run() returned an unexpected error: %v", result.Err)
	}
	if len(result.Frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(result.Frames))
	}
	// Columns are the outer loop.
	want := []string{"0,0", "0,1", "1,0", "1,1", "2,0", "2,1"}
	labels := result.Frames[0].Labels
	if len(labels) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(labels))
	}
	for i, l := range labels {
		if l.Text != want[i] {
			t.Errorf("label %d: expected %q, got %q", i, want[i], l.Text)
		}
	}
}
