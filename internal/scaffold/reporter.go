package scaffold

import (
	"fmt"
	"io"

	"github.com/modu-ai/flutter-scaffold/internal/process"
	"github.com/modu-ai/flutter-scaffold/pkg/models"
)

// Reporter receives user-facing progress of a scaffold run.
type Reporter interface {
	Starting(req models.ProjectRequest)
	GeneratorFailed(status process.Status)
	DirectoriesCreated(arch models.Architecture, baseDir string, count int)
	EditorLaunching(command string)
	EditorLaunchFailed(command string, err error)
	NextSteps(projectName string, steps []string)
}

// TextReporter writes plain English lines.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter creates a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (r *TextReporter) Starting(req models.ProjectRequest) {
	r.printf("Preparing %s with %s...\n", req.Name, req.Architecture.Label())
}

func (r *TextReporter) GeneratorFailed(status process.Status) {
	r.printf("Project generation failed (exit code %d).\n", status.ExitCode)
}

func (r *TextReporter) DirectoriesCreated(arch models.Architecture, baseDir string, count int) {
	r.printf("Added %d %s folders under %s.\n", count, arch.Label(), baseDir)
}

func (r *TextReporter) EditorLaunching(command string) {
	r.printf("Opening the project with '%s'...\n", command)
}

func (r *TextReporter) EditorLaunchFailed(command string, err error) {
	r.printf("Warning: '%s' could not be started: %v\n", command, err)
}

func (r *TextReporter) NextSteps(_ string, steps []string) {
	r.printf("To continue from the terminal:\n")
	for _, s := range steps {
		r.printf("%s\n", s)
	}
}

func (r *TextReporter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}
