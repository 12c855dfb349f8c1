package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/flutter-scaffold/internal/process"
	"github.com/modu-ai/flutter-scaffold/internal/scaffold"
	"github.com/modu-ai/flutter-scaffold/internal/ui"
	"github.com/modu-ai/flutter-scaffold/pkg/models"
)

// CLI output styles.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: ui.ColorSuccess})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: ui.ColorWarning})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ui.ColorError})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ui.ColorMuted})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#01579B", Dark: ui.ColorSecondary}).Bold(true)
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

// Status symbols.
func symSuccess() string  { return cliSuccess.Render("✓") }
func symError() string    { return cliError.Render("✗") }
func symWarning() string  { return cliWarn.Render("!") }
func symProgress() string { return cliMuted.Render("○") }

// consoleReporter is the styled, localized scaffold.Reporter.
type consoleReporter struct {
	out      io.Writer
	msg      messages
	markdown bool
}

var _ scaffold.Reporter = (*consoleReporter)(nil)

func newConsoleReporter(out io.Writer, locale string, markdown bool) *consoleReporter {
	return &consoleReporter{out: out, msg: messagesFor(locale), markdown: markdown}
}

func (r *consoleReporter) Starting(req models.ProjectRequest) {
	line := fmt.Sprintf(r.msg.Starting, req.Name, req.Architecture.Label())
	_, _ = fmt.Fprintf(r.out, "%s %s\n", symProgress(), cliPrimary.Render(line))
}

func (r *consoleReporter) GeneratorFailed(status process.Status) {
	_, _ = fmt.Fprintf(r.out, "%s %s\n", symError(), cliError.Render(fmt.Sprintf(r.msg.GeneratorFailed, status.ExitCode)))
}

// DirectoriesCreated closes the scaffold part of the run with the summary
// card, ahead of any editor or next-step output.
func (r *consoleReporter) DirectoriesCreated(arch models.Architecture, baseDir string, count int) {
	_, _ = fmt.Fprintf(r.out, "%s %s\n", symSuccess(), fmt.Sprintf(r.msg.DirectoriesCreated, arch.Label()))
	_, _ = fmt.Fprintf(r.out, "\n%s %s\n", symSuccess(), cliSuccess.Bold(true).Render(r.msg.Done))
	r.Summary(arch, baseDir, count)
}

func (r *consoleReporter) EditorLaunching(command string) {
	_, _ = fmt.Fprintf(r.out, "%s %s\n", symProgress(), fmt.Sprintf(r.msg.EditorLaunching, command))
}

func (r *consoleReporter) EditorLaunchFailed(command string, _ error) {
	_, _ = fmt.Fprintf(r.out, "%s %s\n", symWarning(), cliWarn.Render(fmt.Sprintf(r.msg.EditorLaunchFailed, command)))
	_, _ = fmt.Fprintf(r.out, "  %s\n", cliMuted.Render(r.msg.EditorPathHint))
}

func (r *consoleReporter) NextSteps(_ string, steps []string) {
	if r.markdown {
		if rendered, err := renderMarkdown(nextStepsMarkdown(r.msg.NextStepsTitle, steps), glamour.WithAutoStyle()); err == nil {
			_, _ = fmt.Fprint(r.out, rendered)
			return
		}
	}
	_, _ = fmt.Fprintln(r.out, r.msg.NextStepsTitle)
	for _, s := range steps {
		_, _ = fmt.Fprintln(r.out, s)
	}
}

// Summary prints a bordered card describing a finished scaffold.
func (r *consoleReporter) Summary(arch models.Architecture, baseDir string, count int) {
	rows := [][2]string{
		{r.msg.SummaryArch, arch.Label()},
		{r.msg.SummaryDirs, fmt.Sprintf("%d", count)},
		{r.msg.SummaryPath, baseDir},
	}
	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row[0]))
	}

	var b strings.Builder
	b.WriteString(cliPrimary.Render(r.msg.SummaryTitle))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(cliMuted.Render(fmt.Sprintf("%-*s", width, row[0])))
		b.WriteString("  ")
		b.WriteString(row[1])
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 2).
		MarginLeft(2)
	_, _ = fmt.Fprintln(r.out)
	_, _ = fmt.Fprintln(r.out, box.Render(b.String()))
	_, _ = fmt.Fprintln(r.out)
}

func nextStepsMarkdown(title string, steps []string) string {
	return fmt.Sprintf("**%s**\n\n```sh\n%s\n```\n", title, strings.Join(steps, "\n"))
}

func renderMarkdown(md string, style glamour.TermRendererOption) (string, error) {
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
