package models

import "strings"

// EditorKind identifies which editor opens the project after scaffolding.
type EditorKind string

const (
	EditorVSCode EditorKind = "vscode"
	EditorCursor EditorKind = "cursor"
	EditorCustom EditorKind = "custom"
	EditorNone   EditorKind = "none"
)

// Fixed launch commands for the known editors.
const (
	VSCodeCommand = "code"
	CursorCommand = "cursor"
)

// EditorKinds returns every editor kind in prompt order.
func EditorKinds() []EditorKind {
	return []EditorKind{EditorVSCode, EditorCursor, EditorCustom, EditorNone}
}

// IsValid checks if the editor kind is a supported value.
func (k EditorKind) IsValid() bool {
	switch k {
	case EditorVSCode, EditorCursor, EditorCustom, EditorNone:
		return true
	}
	return false
}

// Label returns the English display label of the editor kind.
func (k EditorKind) Label() string {
	switch k {
	case EditorVSCode:
		return "VS Code"
	case EditorCursor:
		return "Cursor"
	case EditorCustom:
		return "Other (enter command)"
	case EditorNone:
		return "None"
	}
	return string(k)
}

// EditorChoice is the user's editor preference.
// Command is only meaningful for EditorCustom.
type EditorChoice struct {
	Kind    EditorKind
	Command string
}

// NewCustomEditor returns a custom editor choice with a trimmed command.
// An all-whitespace command yields EditorNone.
func NewCustomEditor(command string) EditorChoice {
	cmd := strings.TrimSpace(command)
	if cmd == "" {
		return EditorChoice{Kind: EditorNone}
	}
	return EditorChoice{Kind: EditorCustom, Command: cmd}
}
