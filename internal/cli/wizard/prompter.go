package wizard

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/flutter-scaffold/internal/ui"
)

// HuhPrompter renders each question as its own huh.Form.
// One form per question avoids the huh v0.8.x YOffset scroll bug that
// occurs when multiple groups share a single viewport.
type HuhPrompter struct {
	locale     string
	accessible bool
	input      io.Reader
	output     io.Writer
	theme      *huh.Theme

	// lines is shared by all accessible forms so that each one consumes
	// exactly one line of piped input.
	lines *bufio.Reader
}

// PrompterOption configures a HuhPrompter.
type PrompterOption func(*HuhPrompter)

// WithLocale selects the prompt language.
func WithLocale(locale string) PrompterOption {
	return func(p *HuhPrompter) { p.locale = locale }
}

// WithAccessible switches to huh's line-based accessible mode. Each question
// reads one line: text for inputs, an option number for selects.
func WithAccessible(accessible bool) PrompterOption {
	return func(p *HuhPrompter) { p.accessible = accessible }
}

// WithIO overrides the streams the forms read from and render to.
func WithIO(in io.Reader, out io.Writer) PrompterOption {
	return func(p *HuhPrompter) {
		p.input = in
		p.output = out
	}
}

// NewHuhPrompter creates a HuhPrompter with the scaffold theme.
func NewHuhPrompter(opts ...PrompterOption) *HuhPrompter {
	p := &HuhPrompter{locale: "en", theme: newScaffoldTheme()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Ask runs a single-question form and returns the answer.
func (p *HuhPrompter) Ask(ctx context.Context, q Question) (string, error) {
	lq := GetLocalizedQuestion(&q, p.locale)

	var (
		value string
		field huh.Field
	)
	switch lq.Type {
	case QuestionTypeSelect:
		field = p.buildSelectField(&lq, &value)
	case QuestionTypeInput:
		field = p.buildInputField(&lq, &value)
	default:
		return "", fmt.Errorf("unsupported question type %d", lq.Type)
	}

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithAccessible(p.accessible).
		WithShowHelp(!p.accessible)
	if p.output != nil {
		form = form.WithOutput(p.output)
	}

	if !p.accessible {
		if p.input != nil {
			form = form.WithInput(p.input)
		}
		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return "", ErrCancelled
			}
			return "", err
		}
		return value, nil
	}

	// huh's accessible fields each wrap the input in their own scanner,
	// which reads ahead. Hand every form a single, already validated line.
	line, err := p.nextLine()
	if err != nil {
		return "", err
	}
	answer, line, err := parseLine(&lq, line, GetUIStrings(p.locale).ErrorRequired)
	if err != nil {
		return "", err
	}
	if err := form.WithInput(strings.NewReader(line + "\n")).RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", err
	}
	return answer, nil
}

// nextLine reads one line from the accessible input. End of input before
// any text is ErrNoInput.
func (p *HuhPrompter) nextLine() (string, error) {
	if p.lines == nil {
		in := p.input
		if in == nil {
			in = os.Stdin
		}
		p.lines = bufio.NewReader(in)
	}

	line, err := p.lines.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// parseLine validates a line of accessible input for q. It returns the
// answer value and the line to feed the form. A blank line selects the
// default option; select answers are 1-based option numbers.
func parseLine(q *Question, line, errRequired string) (string, string, error) {
	trimmed := strings.TrimSpace(line)

	if q.Type == QuestionTypeInput {
		if trimmed == "" {
			trimmed = q.Default
		}
		if q.Required && trimmed == "" {
			return "", "", fmt.Errorf("%w: %s", ErrInvalidAnswer, errRequired)
		}
		return trimmed, trimmed, nil
	}

	if trimmed == "" {
		for i, opt := range q.Options {
			if opt.Value == q.Default {
				return opt.Value, strconv.Itoa(i + 1), nil
			}
		}
		return "", "", fmt.Errorf("%w: %s", ErrInvalidAnswer, errRequired)
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 1 || n > len(q.Options) {
		return "", "", fmt.Errorf("%w: %q: choose 1-%d", ErrInvalidAnswer, trimmed, len(q.Options))
	}
	return q.Options[n-1].Value, trimmed, nil
}

// buildSelectField creates a huh.Select field for a select-type question.
// Options are built eagerly with Options() rather than OptionsFunc so the
// select keeps auto-sized height and a fixed option list.
func (p *HuhPrompter) buildSelectField(q *Question, value *string) *huh.Select[string] {
	*value = q.Default

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	return huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(value)
}

// buildInputField creates a huh.Input field for an input-type question.
func (p *HuhPrompter) buildInputField(q *Question, value *string) *huh.Input {
	*value = q.Default

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(value)

	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	required := q.Required
	errRequired := GetUIStrings(p.locale).ErrorRequired
	return inp.Validate(func(val string) error {
		if required && strings.TrimSpace(val) == "" {
			return errors.New(errRequired)
		}
		return nil
	})
}

// newScaffoldTheme creates a huh.Theme in the scaffold brand colors.
func newScaffoldTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#01579B", Dark: ui.ColorSecondary}
	secondary := lipgloss.AdaptiveColor{Light: ui.ColorPrimary, Dark: ui.ColorPrimary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ui.ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ui.ColorError}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ui.ColorMuted}

	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
