package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/helper/chroot"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/modu-ai/flutter-scaffold/internal/layout"
	"github.com/modu-ai/flutter-scaffold/internal/process"
	"github.com/modu-ai/flutter-scaffold/internal/ui"
	"github.com/modu-ai/flutter-scaffold/pkg/models"
)

// Invoker runs external processes. *process.Invoker satisfies it.
type Invoker interface {
	RunForeground(ctx context.Context, name string, args []string, dir string) (process.Status, error)
	RunBackground(ctx context.Context, name string, args []string, dir string) error
}

// Result describes what a scaffold run did.
type Result struct {
	// Generated is true when the generator exited successfully.
	Generated       bool
	GeneratorStatus process.Status
	// BaseDir is the skeleton root, e.g. "demo_app/lib". It is relative to
	// the working directory unless the project name is absolute.
	BaseDir     string
	CreatedDirs []string
	// EditorCommand is empty when no editor was requested.
	EditorCommand  string
	EditorLaunched bool
}

// Scaffolder orchestrates a scaffold run.
type Scaffolder struct {
	invoker    Invoker
	fsFor      func(projectDir string) billy.Filesystem
	reporter   Reporter
	progress   ui.Progress
	logger     *slog.Logger
	generator  string
	subcommand string
	editors    EditorCommands
	strict     bool
	workDir    string
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithFilesystem creates the skeleton in fs instead of the OS filesystem.
// Project directories are resolved against fs the same way they would be
// against the OS: relative ones from the working directory, absolute ones
// from the root.
func WithFilesystem(fs billy.Filesystem) Option {
	return func(s *Scaffolder) {
		s.fsFor = func(projectDir string) billy.Filesystem {
			return chroot.New(fs, projectDir)
		}
	}
}

// WithReporter sets the user-facing reporter.
func WithReporter(r Reporter) Option {
	return func(s *Scaffolder) { s.reporter = r }
}

// WithProgress sets the progress renderer used while directories are created.
func WithProgress(p ui.Progress) Option {
	return func(s *Scaffolder) { s.progress = p }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scaffolder) { s.logger = l }
}

// WithGenerator overrides the generator executable and its subcommand.
// Empty values keep the defaults.
func WithGenerator(command, subcommand string) Option {
	return func(s *Scaffolder) {
		if command != "" {
			s.generator = command
		}
		if subcommand != "" {
			s.subcommand = subcommand
		}
	}
}

// WithEditorCommands overrides the launch commands of the known editors.
func WithEditorCommands(c EditorCommands) Option {
	return func(s *Scaffolder) { s.editors = c }
}

// WithStrict makes a failed generator run an error.
func WithStrict(strict bool) Option {
	return func(s *Scaffolder) { s.strict = strict }
}

// WithPlatform selects the default generator for goos.
func WithPlatform(goos string) Option {
	return func(s *Scaffolder) { s.generator = GeneratorExecutable(goos) }
}

// WithWorkDir sets the directory the generator runs in and the project is
// created under. The default is the process working directory.
func WithWorkDir(dir string) Option {
	return func(s *Scaffolder) { s.workDir = dir }
}

// New creates a Scaffolder.
func New(invoker Invoker, opts ...Option) *Scaffolder {
	s := &Scaffolder{
		invoker:    invoker,
		logger:     slog.New(slog.DiscardHandler),
		generator:  GeneratorExecutable(runtime.GOOS),
		subcommand: "create",
		editors:    DefaultEditorCommands(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.fsFor == nil {
		s.fsFor = func(projectDir string) billy.Filesystem {
			return osfs.New(projectDir)
		}
	}
	if s.reporter == nil {
		s.reporter = NewTextReporter(io.Discard)
	}
	if s.progress == nil {
		s.progress = ui.NewHeadlessProgress(io.Discard)
	}
	s.logger = s.logger.With("module", "scaffold")
	return s
}

// Run scaffolds req and opens editor.
//
// Fatal errors are returned: an invalid request, a generator that cannot be
// started and filesystem failures. A generator that exits unsuccessfully is
// reported and ends the run without error unless strict mode is on. Editor
// launch failures are only reported.
func (s *Scaffolder) Run(ctx context.Context, req models.ProjectRequest, editor models.EditorChoice) (*Result, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	s.reporter.Starting(req)
	s.logger.Info("running generator", "generator", s.generator, "subcommand", s.subcommand, "project", req.Name)

	status, err := s.invoker.RunForeground(ctx, s.generator, []string{s.subcommand, req.Name}, s.workDir)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", s.generator, err)
	}

	res := &Result{GeneratorStatus: status}
	if !status.Success() {
		s.reporter.GeneratorFailed(status)
		if s.strict {
			return res, fmt.Errorf("%w: exit code %d", ErrGeneratorFailed, status.ExitCode)
		}
		return res, nil
	}
	res.Generated = true

	projectDir := s.projectDir(req.Name)
	base := filepath.Join(projectDir, layout.BaseDir)
	created, err := s.materialize(projectDir, req.Architecture)
	if err != nil {
		return res, err
	}
	res.BaseDir = base
	res.CreatedDirs = created
	s.reporter.DirectoriesCreated(req.Architecture, base, len(created))

	cmd, ok := s.editors.Resolve(editor)
	if !ok {
		s.reporter.NextSteps(req.Name, NextSteps(req.Name))
		return res, nil
	}

	res.EditorCommand = cmd
	s.reporter.EditorLaunching(cmd)
	if err := s.invoker.RunBackground(ctx, cmd, []string{"."}, projectDir); err != nil {
		s.logger.Warn("editor launch failed", "command", cmd, "error", err)
		s.reporter.EditorLaunchFailed(cmd, err)
		return res, nil
	}
	res.EditorLaunched = true
	return res, nil
}

// materialize creates every template directory under projectDir/lib and
// returns their paths. Existing directories are left alone.
func (s *Scaffolder) materialize(projectDir string, arch models.Architecture) ([]string, error) {
	fs := s.fsFor(projectDir)
	dirs := layout.Directories(arch)
	bar := s.progress.Start(filepath.Join(projectDir, layout.BaseDir), len(dirs))
	defer bar.Done()

	created := make([]string, 0, len(dirs))
	for _, d := range dirs {
		rel := fs.Join(layout.BaseDir, filepath.FromSlash(d))
		p := filepath.Join(projectDir, rel)
		if err := fs.MkdirAll(rel, 0o755); err != nil {
			return created, fmt.Errorf("%w: %s: %w", ErrFilesystem, p, err)
		}
		s.logger.Debug("directory ready", "path", p)
		created = append(created, p)
		bar.Increment(1)
	}
	return created, nil
}

// projectDir returns where the generator creates the project: the name
// itself when absolute, otherwise the name under the working directory.
func (s *Scaffolder) projectDir(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(s.workDir, name)
}

func validateRequest(req models.ProjectRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: project name is empty", ErrInvalidRequest)
	}
	if !req.Architecture.IsValid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidRequest, models.ErrUnknownArchitecture, req.Architecture)
	}
	return nil
}
