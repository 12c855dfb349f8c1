package wizard

import "github.com/modu-ai/flutter-scaffold/pkg/models"

// DefaultQuestions returns the scaffolding questions in the order they are asked:
// 1. Project name (skipped when already known)
// 2. Architecture (skipped when already known)
// 3. Editor
// 4. Custom editor command (only for the "other" editor)
//
// Default options come first in each option list to avoid the huh v0.8.x
// viewport YOffset bug that hides options above the preselected one.
func DefaultQuestions() []Question {
	archOptions := make([]Option, 0, len(models.Architectures()))
	for _, a := range models.Architectures() {
		archOptions = append(archOptions, Option{Label: a.Label(), Value: string(a)})
	}

	editorOptions := make([]Option, 0, len(models.EditorKinds()))
	for _, k := range models.EditorKinds() {
		editorOptions = append(editorOptions, Option{Label: k.Label(), Value: string(k)})
	}

	return []Question{
		{
			ID:          QuestionProjectName,
			Type:        QuestionTypeInput,
			Title:       "What is the project name?",
			Description: "Passed to flutter create and used as the project directory.",
			Required:    true,
			Condition: func(r *Result) bool {
				return r.ProjectName == ""
			},
		},
		{
			ID:          QuestionArchitecture,
			Type:        QuestionTypeSelect,
			Title:       "Which architecture would you like to use?",
			Description: "Folders for the chosen layout are created under lib/.",
			Options:     archOptions,
			Default:     string(models.ArchitectureClean),
			Required:    true,
			Condition: func(r *Result) bool {
				return r.Architecture == ""
			},
		},
		{
			ID:       QuestionEditor,
			Type:     QuestionTypeSelect,
			Title:    "Where would you like to open the project once it is created?",
			Options:  editorOptions,
			Default:  string(models.EditorVSCode),
			Required: true,
		},
		{
			ID:          QuestionEditorCommand,
			Type:        QuestionTypeInput,
			Title:       "Enter the editor command (e.g. nvim, subl, atom)",
			Description: "Leave empty to skip opening an editor.",
			Condition: func(r *Result) bool {
				return r.Editor == models.EditorCustom
			},
		},
	}
}
