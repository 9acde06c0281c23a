package config

import (
	"path/filepath"
	"strings"
)

// Parse picks the front-end from the file extension: .yaml and .yml are
// YAML, everything else is HCL.
func Parse(filename string, src []byte) (*Body, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return ParseYAML(filename, src)
	default:
		return ParseHCL(filename, src)
	}
}
