package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modu-ai/flutter-scaffold/internal/cli/wizard"
	"github.com/modu-ai/flutter-scaffold/internal/config"
	"github.com/modu-ai/flutter-scaffold/internal/process"
	"github.com/modu-ai/flutter-scaffold/internal/scaffold"
	"github.com/modu-ai/flutter-scaffold/internal/ui"
)

type invocation struct {
	name string
	args []string
	dir  string
}

type fakeInvoker struct {
	status process.Status
	fgErr  error
	bgErr  error
	fg     []invocation
	bg     []invocation
}

func (f *fakeInvoker) RunForeground(_ context.Context, name string, args []string, dir string) (process.Status, error) {
	f.fg = append(f.fg, invocation{name, args, dir})
	return f.status, f.fgErr
}

func (f *fakeInvoker) RunBackground(_ context.Context, name string, args []string, dir string) error {
	f.bg = append(f.bg, invocation{name, args, dir})
	return f.bgErr
}

type mapPrompter struct {
	answers map[string]string
	err     error
	asked   []string
}

func (p *mapPrompter) Ask(_ context.Context, q wizard.Question) (string, error) {
	p.asked = append(p.asked, q.ID)
	if p.err != nil {
		return "", p.err
	}
	return p.answers[q.ID], nil
}

func newTestDeps(inv *fakeInvoker, p wizard.Prompter) *Dependencies {
	return &Dependencies{
		Config:   config.NewDefaultConfig(),
		Invoker:  inv,
		Prompter: p,
		Progress: ui.NewHeadlessProgress(io.Discard),
		Theme:    &ui.Theme{NoColor: true},
		Locale:   "en",
		Logger:   slog.New(slog.DiscardHandler),
		FS:       memfs.New(),
	}
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeRoot runs the root command with injected dependencies and returns its output.
func executeRoot(t *testing.T, d *Dependencies, args ...string) (string, error) {
	t.Helper()

	origDeps := deps
	SetDeps(d)
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		deps = origDeps
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Metadata(t *testing.T) {
	assert.Equal(t, "flutter-scaffold", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)

	for _, name := range []string{"name", "arch", "strict"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), name)
	}
	for _, name := range []string{"config", "lang", "verbose"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "n", rootCmd.Flags().Lookup("name").Shorthand)
	assert.Equal(t, "a", rootCmd.Flags().Lookup("arch").Shorthand)
}

func TestRunScaffold_FlagsSkipQuestions(t *testing.T) {
	inv := &fakeInvoker{}
	p := &mapPrompter{answers: map[string]string{wizard.QuestionEditor: "none"}}
	d := newTestDeps(inv, p)

	out, err := executeRoot(t, d, "-n", "demo_app", "-a", "clean")
	require.NoError(t, err)

	assert.Equal(t, []string{wizard.QuestionEditor}, p.asked)
	require.Len(t, inv.fg, 1)
	assert.Equal(t, scaffold.GeneratorExecutable(runtime.GOOS), inv.fg[0].name)
	assert.Equal(t, []string{"create", "demo_app"}, inv.fg[0].args)
	assert.Empty(t, inv.bg)

	fi, err := d.FS.Stat(filepath.Join("demo_app", "lib", "presentation", "widgets"))
	require.NoError(t, err)
	assert.True(t, fi.IsDir())

	assert.Contains(t, out, "Preparing demo_app with Clean Architecture...")
	assert.Contains(t, out, "To continue from the terminal:")
	assert.Contains(t, out, "cd demo_app")
	assert.Contains(t, out, "flutter run")
	assert.Contains(t, out, "Project ready")
	assert.Less(t, strings.Index(out, "Project ready"), strings.Index(out, "To continue from the terminal:"),
		"summary comes before the next steps")
}

func TestRunScaffold_AllQuestionsAsked(t *testing.T) {
	inv := &fakeInvoker{}
	p := &mapPrompter{answers: map[string]string{
		wizard.QuestionProjectName:   "shop",
		wizard.QuestionArchitecture:  "mvvm",
		wizard.QuestionEditor:        "custom",
		wizard.QuestionEditorCommand: " nvim ",
	}}
	d := newTestDeps(inv, p)

	out, err := executeRoot(t, d)
	require.NoError(t, err)

	assert.Len(t, p.asked, 4)
	require.Len(t, inv.bg, 1)
	assert.Equal(t, invocation{"nvim", []string{"."}, "shop"}, inv.bg[0])
	assert.Contains(t, out, "Starting the editor with 'nvim'...")
	assert.NotContains(t, out, "flutter run")
	assert.Contains(t, out, "Project ready")
	assert.Less(t, strings.Index(out, "Project ready"), strings.Index(out, "Starting the editor"),
		"summary comes before the editor launch")
}

func TestRunScaffold_EditorLaunchFailureIsWarning(t *testing.T) {
	inv := &fakeInvoker{bgErr: &process.LaunchError{Executable: "code", Err: errors.New("not found")}}
	p := &mapPrompter{answers: map[string]string{wizard.QuestionEditor: "vscode"}}

	out, err := executeRoot(t, newTestDeps(inv, p), "-n", "app", "-a", "mvvm")
	require.NoError(t, err)
	assert.Contains(t, out, "Warning: 'code' could not be found or started.")
}

func TestRunScaffold_ConfiguredCommands(t *testing.T) {
	inv := &fakeInvoker{}
	p := &mapPrompter{answers: map[string]string{wizard.QuestionEditor: "cursor"}}
	d := newTestDeps(inv, p)
	d.Config.Generator.Command = "fvm"
	d.Config.Generator.Subcommand = "create"
	d.Config.Editor.Cursor = "cursor-nightly"

	_, err := executeRoot(t, d, "-n", "app", "-a", "clean")
	require.NoError(t, err)

	require.Len(t, inv.fg, 1)
	assert.Equal(t, "fvm", inv.fg[0].name)
	require.Len(t, inv.bg, 1)
	assert.Equal(t, "cursor-nightly", inv.bg[0].name)
}

func TestRunScaffold_GeneratorFailure(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		configStrict bool
		wantErr      bool
	}{
		{"default absorbs failure", nil, false, false},
		{"strict flag", []string{"--strict"}, false, true},
		{"strict config", nil, true, true},
		{"flag overrides config", []string{"--strict=false"}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &fakeInvoker{status: process.Status{ExitCode: 1}}
			p := &mapPrompter{answers: map[string]string{wizard.QuestionEditor: "vscode"}}
			d := newTestDeps(inv, p)
			d.Config.Strict = tt.configStrict

			args := append([]string{"-n", "app", "-a", "clean"}, tt.args...)
			out, err := executeRoot(t, d, args...)

			if tt.wantErr {
				assert.ErrorIs(t, err, scaffold.ErrGeneratorFailed)
			} else {
				assert.NoError(t, err)
			}
			assert.Contains(t, out, "exit code 1")
			assert.Empty(t, inv.bg)
			assert.NotContains(t, out, "Project ready")
		})
	}
}

func TestRunScaffold_GeneratorLaunchError(t *testing.T) {
	inv := &fakeInvoker{fgErr: &process.LaunchError{Executable: "flutter", Err: errors.New("not found")}}
	p := &mapPrompter{answers: map[string]string{wizard.QuestionEditor: "none"}}

	_, err := executeRoot(t, newTestDeps(inv, p), "-n", "app", "-a", "clean")
	assert.ErrorIs(t, err, process.ErrLaunch)
}

func TestRunScaffold_Cancelled(t *testing.T) {
	inv := &fakeInvoker{}
	p := &mapPrompter{err: wizard.ErrCancelled}

	_, err := executeRoot(t, newTestDeps(inv, p))
	assert.ErrorIs(t, err, wizard.ErrCancelled)
	assert.Empty(t, inv.fg, "nothing runs after a cancelled prompt")
}

func TestRunScaffold_Turkish(t *testing.T) {
	inv := &fakeInvoker{}
	p := &mapPrompter{answers: map[string]string{wizard.QuestionEditor: "none"}}
	d := newTestDeps(inv, p)
	d.Locale = "tr"

	out, err := executeRoot(t, d, "-n", "uygulama", "-a", "mvvm")
	require.NoError(t, err)
	assert.Contains(t, out, "uygulama projesi MVVM ile hazırlanıyor...")
	assert.Contains(t, out, "Terminalden girmek için:")
	assert.Contains(t, out, "Proje hazır")
}

func TestValidateRootFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"bad arch", []string{"-a", "hexagonal"}, "invalid --arch"},
		{"blank name", []string{"-n", "  "}, "invalid --name"},
		{"bad lang", []string{"--lang", "de"}, "invalid --lang value \"de\": must be one of: en (English), tr (Turkish (Türkçe))"},
		{"unexpected arg", []string{"extra"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &fakeInvoker{}
			p := &mapPrompter{}
			_, err := executeRoot(t, newTestDeps(inv, p), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, p.asked)
			assert.Empty(t, inv.fg)
		})
	}
}

func TestLanguageFlagHelp(t *testing.T) {
	f := rootCmd.PersistentFlags().Lookup("lang")
	require.NotNil(t, f)
	assert.Contains(t, f.Usage, "en (English), tr (Turkish (Türkçe))")
}

func TestRunScaffold_NoDeps(t *testing.T) {
	origDeps := deps
	defer func() { deps = origDeps }()
	deps = nil

	err := runScaffold(rootCmd, nil)
	assert.Error(t, err)
}

func TestResolveLocale(t *testing.T) {
	env := func(vals map[string]string) func(string) string {
		return func(k string) string { return vals[k] }
	}

	tests := []struct {
		name       string
		flag       string
		configured string
		env        map[string]string
		want       string
	}{
		{"flag wins", "tr", "en", map[string]string{"LANG": "en_US.UTF-8"}, "tr"},
		{"config next", "", "tr", map[string]string{"LANG": "en_US.UTF-8"}, "tr"},
		{"LC_ALL first", "", "", map[string]string{"LC_ALL": "tr_TR.UTF-8", "LANG": "en_US.UTF-8"}, "tr"},
		{"LANG", "", "", map[string]string{"LANG": "tr_TR.UTF-8"}, "tr"},
		{"fallback", "", "", map[string]string{"LANG": "C"}, "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveLocale(tt.flag, tt.configured, env(tt.env)))
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	newLogger(false, &buf).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(true, &buf).Debug("shown", "k", "v")
	assert.True(t, strings.Contains(buf.String(), "shown"))
}

func TestInitDependencies_ExplicitConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, writeTestFile(path, "locale: tr\ngenerator:\n  command: fvm\n"))

	origDeps := deps
	defer func() { deps = origDeps }()

	cmd := &cobra.Command{}
	cmd.Flags().String("config", path, "")
	cmd.Flags().String("lang", "", "")
	cmd.Flags().Bool("verbose", false, "")

	require.NoError(t, InitDependencies(cmd))
	require.NotNil(t, deps)
	assert.Equal(t, "tr", deps.Locale)
	assert.Equal(t, "fvm", deps.Config.Generator.Command)
	assert.NotNil(t, deps.Invoker)
	assert.NotNil(t, deps.Prompter)
}

func TestInitDependencies_MissingConfig(t *testing.T) {
	origDeps := deps
	defer func() { deps = origDeps }()

	cmd := &cobra.Command{}
	cmd.Flags().String("config", filepath.Join(t.TempDir(), "missing.yaml"), "")

	err := InitDependencies(cmd)
	assert.ErrorIs(t, err, config.ErrConfigNotFound)
}
