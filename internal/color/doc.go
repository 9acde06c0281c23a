// Package color provides the HSVA color used by styles. Blending happens
// per channel in HSVA space.
package color
