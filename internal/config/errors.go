package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// ParseError reports malformed scene text. Either Diags or Cause is set.
type ParseError struct {
	Filename string
	Diags    hcl.Diagnostics
	Cause    error
}

func (e *ParseError) Error() string {
	if e.Diags.HasErrors() {
		return fmt.Sprintf("failed to parse %s: %s", e.Filename, e.Diags.Error())
	}
	return fmt.Sprintf("failed to parse %s: %v", e.Filename, e.Cause)
}

func (e *ParseError) Unwrap() error {
	if e.Diags.HasErrors() {
		return e.Diags
	}
	return e.Cause
}

// DiagError wraps diags when they contain errors, and returns nil otherwise.
func DiagError(filename string, diags hcl.Diagnostics) error {
	if !diags.HasErrors() {
		return nil
	}
	return &ParseError{Filename: filename, Diags: diags}
}
