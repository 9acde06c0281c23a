package livecode

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/livegrid/internal/expr"
	"github.com/vk/livegrid/internal/fieldpath"
)

// FieldError attributes a resolution failure to a field. Subject is the
// source range of the failing expression, when it came from a file.
type FieldError struct {
	Path    fieldpath.Address
	Subject *hcl.Range
	Err     error
}

func newFieldError(path fieldpath.Address, err error) *FieldError {
	fe := &FieldError{Path: path, Err: err}
	var evalErr *expr.EvalError
	if errors.As(err, &evalErr) && evalErr.Range.Filename != "" {
		fe.Subject = evalErr.Range.Ptr()
	}
	return fe
}

func (e *FieldError) Error() string {
	msg := e.Err.Error()
	if !e.Path.IsRoot() {
		msg = fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	if e.Subject != nil {
		return fmt.Sprintf("%s: %s", e.Subject, msg)
	}
	return msg
}

func (e *FieldError) Unwrap() error { return e.Err }

// Diagnostic reports the failure the way scene decoding reports problems.
func (e *FieldError) Diagnostic() *hcl.Diagnostic {
	summary := "Failed to resolve value"
	if !e.Path.IsRoot() {
		summary = fmt.Sprintf("Failed to resolve %s", e.Path)
	}
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   e.Err.Error(),
		Subject:  e.Subject,
	}
}
