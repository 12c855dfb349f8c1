package cli

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modu-ai/flutter-scaffold/internal/cli/wizard"
	"github.com/modu-ai/flutter-scaffold/internal/scaffold"
	"github.com/modu-ai/flutter-scaffold/pkg/models"
	"github.com/modu-ai/flutter-scaffold/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "flutter-scaffold",
	Short: "Create a Flutter project with a ready-made lib/ folder layout",
	Long: `flutter-scaffold runs "flutter create" and adds the folder skeleton of
the chosen architecture under lib/, then opens the project in your editor.

Missing answers are asked interactively. When stdin is not a terminal the
questions are read line by line.

Examples:
  flutter-scaffold                         Ask for everything
  flutter-scaffold -n demo_app -a clean    Only ask for the editor
  flutter-scaffold --lang tr               Ask in Turkish`,
	Version:           version.GetVersion(),
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: ensureDependencies,
	PreRunE:           validateRootFlags,
	RunE:              runScaffold,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("flutter-scaffold %s\n", version.GetFullVersion()))

	rootCmd.PersistentFlags().String("config", "", "Config file (default: $XDG_CONFIG_HOME/flutter-scaffold/config.yaml)")
	rootCmd.PersistentFlags().String("lang", "", "Prompt language: "+languageChoices()+" (default: from config or environment)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Write debug logs to stderr")

	rootCmd.Flags().StringP("name", "n", "", "Project name")
	rootCmd.Flags().StringP("arch", "a", "", "Architecture: clean or mvvm")
	rootCmd.Flags().Bool("strict", false, "Exit with an error when flutter create fails")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// ensureDependencies builds the global dependencies unless they were injected.
func ensureDependencies(cmd *cobra.Command, _ []string) error {
	if deps != nil {
		return nil
	}
	return InitDependencies(cmd)
}

// validateRootFlags validates flag values before execution.
func validateRootFlags(cmd *cobra.Command, _ []string) error {
	if arch := getStringFlag(cmd, "arch"); arch != "" {
		if _, err := models.ParseArchitecture(arch); err != nil {
			return fmt.Errorf("invalid --arch value %q: must be one of: clean, mvvm", arch)
		}
	}

	if cmd.Flags().Changed("name") && strings.TrimSpace(getStringFlag(cmd, "name")) == "" {
		return fmt.Errorf("invalid --name value: must not be empty")
	}

	if lang := getStringFlag(cmd, "lang"); lang != "" {
		if !slices.Contains(models.SupportedLanguages(), lang) {
			return fmt.Errorf("invalid --lang value %q: must be one of: %s", lang, languageChoices())
		}
	}

	return nil
}

// languageChoices lists the supported prompt languages with their names,
// e.g. "en (English), tr (Turkish (Türkçe))".
func languageChoices() string {
	langs := models.SupportedLanguages()
	choices := make([]string, len(langs))
	for i, code := range langs {
		choices[i] = fmt.Sprintf("%s (%s)", code, models.GetLanguageName(code))
	}
	return strings.Join(choices, ", ")
}

// runScaffold asks the missing questions and runs the scaffold.
func runScaffold(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	preset := &wizard.Result{ProjectName: strings.TrimSpace(getStringFlag(cmd, "name"))}
	if arch := getStringFlag(cmd, "arch"); arch != "" {
		a, err := models.ParseArchitecture(arch)
		if err != nil {
			return err
		}
		preset.Architecture = a
	}

	answers, err := wizard.Run(ctx, wizard.DefaultQuestions(), preset, deps.Prompter, deps.Logger.With("module", "wizard"))
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			return err
		}
		return fmt.Errorf("collect answers: %w", err)
	}

	strict := deps.Config.Strict
	if cmd.Flags().Changed("strict") {
		strict = getBoolFlag(cmd, "strict")
	}

	reporter := newConsoleReporter(out, deps.Locale, deps.Markdown)
	opts := []scaffold.Option{
		scaffold.WithPlatform(runtime.GOOS),
		scaffold.WithGenerator(deps.Config.Generator.Command, deps.Config.Generator.Subcommand),
		scaffold.WithEditorCommands(scaffold.EditorCommands{
			VSCode: deps.Config.Editor.VSCode,
			Cursor: deps.Config.Editor.Cursor,
		}),
		scaffold.WithStrict(strict),
		scaffold.WithReporter(reporter),
		scaffold.WithLogger(deps.Logger),
		scaffold.WithWorkDir(deps.WorkDir),
	}
	if deps.FS != nil {
		opts = append(opts, scaffold.WithFilesystem(deps.FS))
	}
	if deps.Progress != nil {
		opts = append(opts, scaffold.WithProgress(deps.Progress))
	}

	_, err = scaffold.New(deps.Invoker, opts...).Run(ctx, answers.Request(), answers.EditorChoice())
	return err
}
