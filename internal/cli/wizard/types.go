// Package wizard asks the scaffolding questions: project name, architecture,
// editor and, when requested, a custom editor command.
package wizard

import (
	"errors"

	"github.com/modu-ai/flutter-scaffold/pkg/models"
)

// Result holds the answers collected by the wizard.
type Result struct {
	ProjectName   string              // Project name (required)
	Architecture  models.Architecture // Directory layout for lib/
	Editor        models.EditorKind   // Editor opened after scaffolding
	EditorCommand string              // Raw command, only read when Editor is custom
}

// EditorChoice converts the editor answers into a models.EditorChoice.
// A custom editor with a blank command becomes EditorNone.
func (r *Result) EditorChoice() models.EditorChoice {
	switch r.Editor {
	case models.EditorCustom:
		return models.NewCustomEditor(r.EditorCommand)
	case "":
		return models.EditorChoice{Kind: models.EditorNone}
	}
	return models.EditorChoice{Kind: r.Editor}
}

// Request returns the immutable project request built from the answers.
func (r *Result) Request() models.ProjectRequest {
	return models.ProjectRequest{Name: r.ProjectName, Architecture: r.Architecture}
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
)

// Question defines a single wizard question.
type Question struct {
	ID          string             // Unique identifier
	Type        QuestionType       // Select or Input
	Title       string             // Question title
	Description string             // Additional description
	Options     []Option           // Options for select questions
	Default     string             // Default value
	Required    bool               // Whether the field is required
	Condition   func(*Result) bool // Condition for showing this question
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Question IDs.
const (
	QuestionProjectName   = "project_name"
	QuestionArchitecture  = "architecture"
	QuestionEditor        = "editor"
	QuestionEditorCommand = "editor_command"
)

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrUnknownQuestion is returned when an answer targets an unknown question ID.
	ErrUnknownQuestion = errors.New("unknown question")
	// ErrInvalidAnswer is returned when an answer cannot be stored.
	ErrInvalidAnswer = errors.New("invalid answer")
	// ErrNoInput is returned when line-based input ends before an answer.
	ErrNoInput = errors.New("input ended before all questions were answered")
)
