// Package scene is the drawing vocabulary of livegrid: the Control tree a
// scene file decodes into, the Value tree it resolves to every frame, and
// the flattening of a Value into a draw.Frame.
//
// A scene file looks like this (HCL; the YAML front-end decodes the same):
//
//	mode              = "lenient"
//	transition_frames = 30
//	background        = "#101018"
//
//	vars { speed = 2 }
//	defs { wobble = sin(t * speed) }
//
//	layer "grid" {
//	  prefix = "cell"
//	  sequencer "hex" {
//	    rows = 4
//	    cols = 6
//	    size = 40
//	  }
//	  style {
//	    fill {
//	      h = cell_x_pct
//	      s = 0.6
//	      v = 1
//	    }
//	  }
//	  defs { r = 30 + 10 * wobble }
//	  polygon {
//	    sides  = 6
//	    radius = r
//	  }
//	}
//
// Shapes live in a cell's local space, where 100 units span one cell of the
// layer's sequencer. Nested layers repeat inside every cell of their parent.
package scene
