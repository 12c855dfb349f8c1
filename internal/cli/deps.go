// Package cli provides the Cobra command tree and dependency injection
// wiring for the flutter-scaffold CLI. This file defines the Dependencies
// struct (Composition Root) that wires all domain modules together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/go-git/go-billy/v5"
	"github.com/spf13/cobra"

	"github.com/modu-ai/flutter-scaffold/internal/cli/wizard"
	"github.com/modu-ai/flutter-scaffold/internal/config"
	"github.com/modu-ai/flutter-scaffold/internal/process"
	"github.com/modu-ai/flutter-scaffold/internal/scaffold"
	"github.com/modu-ai/flutter-scaffold/internal/ui"
	"github.com/modu-ai/flutter-scaffold/pkg/models"
)

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Config   *config.Config
	Invoker  scaffold.Invoker
	Prompter wizard.Prompter
	Progress ui.Progress
	Theme    *ui.Theme
	// Markdown enables glamour rendering of the next-steps guidance.
	Markdown bool
	Locale   string
	Logger   *slog.Logger

	// FS and WorkDir locate the project. A nil FS means the OS filesystem
	// rooted at WorkDir; an empty WorkDir means the process working directory.
	FS      billy.Filesystem
	WorkDir string
}

// deps is the global dependencies instance, initialized on first command run.
// CLI commands access this through the package-level variable.
var deps *Dependencies

// SetDeps replaces the global dependencies. Tests use it to inject fakes.
func SetDeps(d *Dependencies) {
	deps = d
}

// InitDependencies creates and wires all domain dependencies from the
// persistent flags of cmd.
func InitDependencies(cmd *cobra.Command) error {
	logger := newLogger(getBoolFlag(cmd, "verbose"), cmd.ErrOrStderr())

	loader := config.NewLoader(config.WithLogger(logger.With("module", "config")))
	cfg, err := loader.Load(getStringFlag(cmd, "config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	locale := resolveLocale(getStringFlag(cmd, "lang"), cfg.Locale, os.Getenv)

	theme := ui.NewTheme()
	inHM := ui.NewHeadlessManager()
	outHM := ui.NewOutputHeadlessManager()

	deps = &Dependencies{
		Config: cfg,
		Invoker: process.New(
			process.WithLogger(logger.With("module", "process")),
		),
		Prompter: wizard.NewHuhPrompter(
			wizard.WithLocale(locale),
			wizard.WithAccessible(inHM.IsHeadless()),
		),
		Progress: ui.NewProgress(theme, outHM),
		Theme:    theme,
		Markdown: !outHM.IsHeadless() && !theme.NoColor,
		Locale:   locale,
		Logger:   logger,
	}

	logger.Debug("dependencies initialized",
		"locale", locale,
		"headless_input", inHM.IsHeadless(),
		"headless_output", outHM.IsHeadless(),
	)
	return nil
}

// newLogger returns a discarding logger, or a debug-level text logger on w
// when verbose is set.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// resolveLocale picks the prompt language: the --lang flag, then the
// configured locale, then the POSIX locale environment.
func resolveLocale(flag, configured string, getenv func(string) string) string {
	for _, v := range []string{flag, configured} {
		if slices.Contains(models.SupportedLanguages(), v) {
			return v
		}
	}
	return wizard.MatchLocale(getenv("LC_ALL"), getenv("LC_MESSAGES"), getenv("LANG"))
}
