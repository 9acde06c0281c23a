// Package reload detects changes to scene text. A Source is polled once at
// the start of every frame and hands over the new text only when it changed.
package reload
