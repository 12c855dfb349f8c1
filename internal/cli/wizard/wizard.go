package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modu-ai/flutter-scaffold/pkg/models"
)

// Prompter asks a single question and returns the raw answer.
// Implementations return ErrCancelled when the user aborts.
type Prompter interface {
	Ask(ctx context.Context, q Question) (string, error)
}

// Run asks every question whose condition holds, in order, and returns the
// collected answers. Answers already present in preset are kept and their
// questions are skipped through the question conditions. Any prompt error
// stops the wizard; nothing is returned for a partial run.
func Run(ctx context.Context, questions []Question, preset *Result, p Prompter, logger *slog.Logger) (*Result, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	result := &Result{}
	if preset != nil {
		*result = *preset
	}

	for i := range questions {
		q := &questions[i]

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if q.Condition != nil && !q.Condition(result) {
			logger.Debug("question skipped", "id", q.ID)
			continue
		}

		answer, err := p.Ask(ctx, *q)
		if err != nil {
			if errors.Is(err, ErrCancelled) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %s: %w", q.ID, err)
		}

		if err := saveAnswer(q.ID, answer, result); err != nil {
			return nil, err
		}
		logger.Debug("question answered", "id", q.ID)
	}

	return result, nil
}

// saveAnswer stores an answer in the result.
func saveAnswer(id, value string, result *Result) error {
	switch id {
	case QuestionProjectName:
		result.ProjectName = strings.TrimSpace(value)
	case QuestionArchitecture:
		arch, err := models.ParseArchitecture(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidAnswer, id, err)
		}
		result.Architecture = arch
	case QuestionEditor:
		kind := models.EditorKind(value)
		if !kind.IsValid() {
			return fmt.Errorf("%w: %s: %q", ErrInvalidAnswer, id, value)
		}
		result.Editor = kind
	case QuestionEditorCommand:
		result.EditorCommand = strings.TrimSpace(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
	}
	return nil
}
