// Package scaffold runs a complete scaffold: it invokes the project
// generator, overlays the architecture's directory skeleton on lib/ and
// opens the chosen editor.
package scaffold

import "errors"

// Sentinel errors for scaffold runs.
var (
	// ErrInvalidRequest indicates a project request that cannot be scaffolded.
	ErrInvalidRequest = errors.New("invalid project request")

	// ErrGeneratorFailed indicates the generator exited unsuccessfully.
	// It is only returned in strict mode.
	ErrGeneratorFailed = errors.New("project generator failed")

	// ErrFilesystem indicates the directory skeleton could not be created.
	ErrFilesystem = errors.New("create project directories")
)
