package cli

import (
	"fmt"

	"github.com/mesh-intelligence/formulary/pkg/types"
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userErrorf(format string, args ...any) error {
	return &exitError{code: exitUserError, err: fmt.Errorf(format, args...)}
}

func systemError(err error) error {
	return &exitError{code: exitSysError, err: err}
}

// resultError converts a non-OK result into an exit error. what names the
// missing entity for NotFound results.
func resultError[T any](r types.Result[T], what string) error {
	switch r.Status {
	case types.StatusOK:
		return nil
	case types.StatusNotFound:
		return userErrorf("%s not found", what)
	default:
		return systemError(r.Err)
	}
}
