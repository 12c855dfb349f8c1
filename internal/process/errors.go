// Package process launches external executables for the scaffolder, either
// attached to the caller's terminal (foreground) or detached from it
// (background).
package process

import (
	"errors"
	"fmt"
)

// ErrLaunch indicates an executable could not be found or started.
var ErrLaunch = errors.New("process: launch failed")

// LaunchError describes a failed launch. It matches both ErrLaunch and the
// underlying cause (for example exec.ErrNotFound) with errors.Is.
type LaunchError struct {
	Executable string
	Err        error
}

// Error implements the error interface.
func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %q: %v", e.Executable, e.Err)
}

// Unwrap returns ErrLaunch and the underlying cause.
func (e *LaunchError) Unwrap() []error {
	return []error{ErrLaunch, e.Err}
}
