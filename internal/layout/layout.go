// Package layout holds the built-in directory templates that are overlaid
// on a generated project's lib/ directory, one per architecture.
package layout

import (
	"slices"

	"github.com/modu-ai/flutter-scaffold/pkg/models"
)

// BaseDir is the project-relative directory that receives the skeleton.
const BaseDir = "lib"

// templates maps each architecture to its skeleton, relative to BaseDir.
// Adding an architecture means adding its models constant and one entry here.
var templates = map[models.Architecture][]string{
	models.ArchitectureClean: {
		"core/error",
		"core/usecases",
		"core/util",
		"core/constants",
		"data/datasources/local",
		"data/datasources/remote",
		"data/models",
		"data/repositories",
		"domain/entities",
		"domain/repositories",
		"domain/usecases",
		"presentation/bloc",
		"presentation/pages",
		"presentation/widgets",
	},
	models.ArchitectureMVVM: {
		"core/constants",
		"core/services",
		"models",
		"views",
		"viewmodels",
		"widgets",
	},
}

// Directories returns the skeleton directories for arch, relative to BaseDir.
// The result is a copy. Unknown architectures yield nil.
func Directories(arch models.Architecture) []string {
	return slices.Clone(templates[arch])
}
