package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownArchitecture is returned by ParseArchitecture for unrecognized selectors.
var ErrUnknownArchitecture = errors.New("unknown architecture")

// Architecture is the organizational convention used for the lib/ skeleton.
type Architecture string

const (
	// ArchitectureClean splits the code base into core, data, domain and presentation layers.
	ArchitectureClean Architecture = "clean"

	// ArchitectureMVVM groups code into models, views and view models.
	ArchitectureMVVM Architecture = "mvvm"
)

// Architectures returns every supported architecture in prompt order.
func Architectures() []Architecture {
	return []Architecture{ArchitectureClean, ArchitectureMVVM}
}

// IsValid checks if the architecture is a supported value.
func (a Architecture) IsValid() bool {
	switch a {
	case ArchitectureClean, ArchitectureMVVM:
		return true
	}
	return false
}

// Label returns the human-readable name shown in prompts and summaries.
func (a Architecture) Label() string {
	switch a {
	case ArchitectureClean:
		return "Clean Architecture"
	case ArchitectureMVVM:
		return "MVVM"
	}
	return string(a)
}

// String implements fmt.Stringer.
func (a Architecture) String() string {
	return a.Label()
}

// ParseArchitecture converts a selector such as "clean" or "MVVM" into an Architecture.
func ParseArchitecture(s string) (Architecture, error) {
	arch := Architecture(strings.ToLower(strings.TrimSpace(s)))
	if !arch.IsValid() {
		return "", fmt.Errorf("%w %q: must be one of: clean, mvvm", ErrUnknownArchitecture, s)
	}
	return arch, nil
}
