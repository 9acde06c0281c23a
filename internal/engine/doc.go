// Package engine runs the per-frame loop of a live scene: reload the Control
// tree when its text changes, build the world, resolve the current tree and,
// while a transition is running, blend it with the tree it replaced.
//
// A failed reload never disturbs the running scene. The parse error is logged
// and the previous tree keeps producing frames.
package engine
