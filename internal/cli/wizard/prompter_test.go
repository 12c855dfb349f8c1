package wizard

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modu-ai/flutter-scaffold/pkg/models"
)

// onlyReader hides every method but Read, like a pipe on stdin.
type onlyReader struct{ r io.Reader }

func (o onlyReader) Read(b []byte) (int, error) { return o.r.Read(b) }

func pipedPrompter(input string) (*HuhPrompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewHuhPrompter(
		WithAccessible(true),
		WithIO(onlyReader{strings.NewReader(input)}, &out),
	), &out
}

func TestHuhPrompter_AccessibleInput(t *testing.T) {
	var out bytes.Buffer
	p := NewHuhPrompter(
		WithAccessible(true),
		WithIO(strings.NewReader("demo_app\n"), &out),
	)

	q := questionByID(t, QuestionProjectName)

	answer, err := p.Ask(context.Background(), *q)
	require.NoError(t, err)
	assert.Equal(t, "demo_app", answer)
	assert.Contains(t, out.String(), "What is the project name?")
}

func TestHuhPrompter_AccessibleInput_Turkish(t *testing.T) {
	var out bytes.Buffer
	p := NewHuhPrompter(
		WithLocale("tr"),
		WithAccessible(true),
		WithIO(strings.NewReader("nvim\n"), &out),
	)

	q := questionByID(t, QuestionEditorCommand)

	answer, err := p.Ask(context.Background(), *q)
	require.NoError(t, err)
	assert.Equal(t, "nvim", answer)
	assert.Contains(t, out.String(), "Editör komutunu giriniz")
}

func TestHuhPrompter_UnsupportedType(t *testing.T) {
	p := NewHuhPrompter()
	_, err := p.Ask(context.Background(), Question{ID: "x", Type: QuestionType(99)})
	assert.Error(t, err)
}

func TestNewHuhPrompter_Defaults(t *testing.T) {
	p := NewHuhPrompter()
	assert.Equal(t, "en", p.locale)
	assert.False(t, p.accessible)
	assert.NotNil(t, p.theme)
}

func TestRun_PipedAnswers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantArch models.Architecture
		want     models.EditorChoice
	}{
		{"one line per question", "demo_app\n2\n4\n", "demo_app", models.ArchitectureMVVM,
			models.EditorChoice{Kind: models.EditorNone}},
		{"custom editor command", "app\n1\n3\nnvim\n", "app", models.ArchitectureClean,
			models.EditorChoice{Kind: models.EditorCustom, Command: "nvim"}},
		{"blank lines take defaults", "app\n\n\n", "app", models.ArchitectureClean,
			models.EditorChoice{Kind: models.EditorVSCode}},
		{"crlf and no trailing newline", "demo_app\r\n2\r\n2", "demo_app", models.ArchitectureMVVM,
			models.EditorChoice{Kind: models.EditorCursor}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := pipedPrompter(tt.input)

			result, err := Run(context.Background(), DefaultQuestions(), nil, p, nil)
			require.NoError(t, err)

			assert.Equal(t, tt.wantName, result.ProjectName)
			assert.Equal(t, tt.wantArch, result.Architecture)
			assert.Equal(t, tt.want, result.EditorChoice())
			assert.Contains(t, out.String(), "Which architecture would you like to use?")
		})
	}
}

func TestRun_PipedInputEndsEarly(t *testing.T) {
	p, _ := pipedPrompter("demo_app\n")

	result, err := Run(context.Background(), DefaultQuestions(), nil, p, nil)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNoInput)
	assert.Contains(t, err.Error(), QuestionArchitecture)
}

func TestRun_PipedInvalidAnswer(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"option out of range", "demo_app\n9\n"},
		{"option not a number", "demo_app\nmvvm\n"},
		{"blank required name", "\n1\n1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := pipedPrompter(tt.input)

			_, err := Run(context.Background(), DefaultQuestions(), nil, p, nil)
			assert.ErrorIs(t, err, ErrInvalidAnswer)
		})
	}
}
