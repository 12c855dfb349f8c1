package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether a stream is attached to a terminal.
// Prompts check stdin; progress output checks stdout.
type HeadlessManager struct {
	file   *os.File
	forced *bool
}

// NewHeadlessManager creates a HeadlessManager that detects
// headless mode from the TTY state of os.Stdin.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{file: os.Stdin}
}

// NewOutputHeadlessManager creates a HeadlessManager for os.Stdout.
func NewOutputHeadlessManager() *HeadlessManager {
	return &HeadlessManager{file: os.Stdout}
}

// IsHeadless returns true when the stream is not a terminal.
// ForceHeadless overrides TTY detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	fd := h.file.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}
