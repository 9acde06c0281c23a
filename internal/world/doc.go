// Package world assembles the per-frame namespace that expressions are
// evaluated against.
//
// A frame starts with Sources.Build: every registered input source is updated
// with the frame input and contributes its named values. The values are
// unioned into one flat namespace in registration order, so a later source
// overrides an earlier one that uses the same name. The result is a Context
// whose base hcl.EvalContext (variables plus the built-in function table) is
// shared by everything evaluated in that frame.
//
// Per-evaluation values, such as the index variables of one unit cell, are
// layered on top with Context.With and Context.WithDefs. Both return a new
// Context and leave the receiver untouched, so one base can serve every cell
// of a frame.
//
// Hardware-style inputs (midi dials, osc floats, remote messages) arrive on
// background goroutines and are handed over through an Inbox, a bounded
// single-producer/single-consumer channel that the frame loop drains without
// blocking.
package world
