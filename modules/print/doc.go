// Package print is a Drawer that writes a text summary of every frame. It
// stands in for a renderer in headless runs and tests.
package print
