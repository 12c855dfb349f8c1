package scaffold

import (
	"strings"

	"github.com/modu-ai/flutter-scaffold/pkg/models"
)

// EditorCommands maps the known editors to their launch commands.
type EditorCommands struct {
	VSCode string
	Cursor string
}

// DefaultEditorCommands returns the stock launch commands.
func DefaultEditorCommands() EditorCommands {
	return EditorCommands{VSCode: models.VSCodeCommand, Cursor: models.CursorCommand}
}

// Resolve returns the command that opens the editor, or false when no
// editor should be launched. Blank configured commands fall back to the
// stock ones.
func (c EditorCommands) Resolve(choice models.EditorChoice) (string, bool) {
	switch choice.Kind {
	case models.EditorVSCode:
		return orDefault(c.VSCode, models.VSCodeCommand), true
	case models.EditorCursor:
		return orDefault(c.Cursor, models.CursorCommand), true
	case models.EditorCustom:
		cmd := strings.TrimSpace(choice.Command)
		return cmd, cmd != ""
	}
	return "", false
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

// GeneratorExecutable returns the project generator executable for goos.
// Windows installs flutter as a batch script.
func GeneratorExecutable(goos string) string {
	if goos == "windows" {
		return "flutter.bat"
	}
	return "flutter"
}

// NextSteps returns the shell commands that continue work in a project
// that was not opened in an editor.
func NextSteps(projectName string) []string {
	return []string{"cd " + projectName, "flutter run"}
}
