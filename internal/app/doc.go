// Package app wires a live scene to its inputs and its drawer. It owns the
// frame loop and the goroutines that feed it, decoupled from any specific
// entrypoint like a CLI.
package app
