package integration_tests

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vk/livegrid/internal/app"
	"github.com/vk/livegrid/internal/integration_tests/harness"
)

// Test for: the YAML and HCL front-ends draw the same scene
func TestSceneFeatures_YAMLAndHCL_DrawTheSameFrames(t *testing.T) {
	// --- Arrange ---
	hclScene := `
background = "#202020"
defs {
  spin = cell_i * 0.25
}
layer "petals" {
  sequencer "hex" {
    rows = 2
    cols = 3
    size = 40
  }
  cell_transform {
    rotate = spin
  }
  style {
    fill {
      h = cell_x_pct
      s = 0.8
    }
  }
  polygon {
    sides  = 3 + cell_i
    radius = 40
  }
  label {
    text = "#${cell_i}"
  }
}
`
	yamlScene := `
background: "#202020"
defs:
  spin: cell_i * 0.25
layer petals:
  sequencer hex:
    rows: 2
    cols: 3
    size: 40
  cell_transform:
    rotate: spin
  style:
    fill:
      h: cell_x_pct
      s: 0.8
  polygon:
    sides: 3 + cell_i
    radius: 40
  label:
    text: "#${cell_i}"
`

	// --- Act ---
	fromHCL := harness.Run(t, "scene.hcl", hclScene, app.Config{Frames: 1})
	fromYAML := harness.Run(t, "scene.yaml", yamlScene, app.Config{Frames: 1})

	// --- Assert ---
	if fromHCL.Err != nil || fromYAML.Err != nil {
		t.Fatalf("unexpected errors: hcl=%v yaml=%v", fromHCL.Err, fromYAML.Err)
	}
	if len(fromHCL.Frames) != 1 || len(fromYAML.Frames) != 1 {
		t.Fatalf("expected one frame each, got hcl=%d yaml=%d", len(fromHCL.Frames), len(fromYAML.Frames))
	}
	if got := len(fromHCL.Frames[0].Paths); got != 6 {
		t.Errorf("expected 6 polygons, got %d", got)
	}
	if diff := cmp.Diff(fromHCL.Frames[0], fromYAML.Frames[0]); diff != "" {
		t.Errorf("frames differ (-hcl +yaml):\n%s", diff)
	}
}
