package config

import "github.com/modu-ai/flutter-scaffold/pkg/models"

// Default value constants.
const (
	DefaultGeneratorSubcommand = "create"

	// EnvPrefix is the prefix of environment variable overrides.
	EnvPrefix = "FLUTTER_SCAFFOLD_"

	// FileName is the name of the per-user config file.
	FileName = "config.yaml"

	appDirName = "flutter-scaffold"
)

// NewDefaultConfig returns a Config populated with built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Subcommand: DefaultGeneratorSubcommand,
		},
		Editor: EditorConfig{
			VSCode: models.VSCodeCommand,
			Cursor: models.CursorCommand,
		},
	}
}

// defaultsMap flattens the defaults into koanf keys.
func defaultsMap() map[string]any {
	d := NewDefaultConfig()
	return map[string]any{
		"generator.command":    d.Generator.Command,
		"generator.subcommand": d.Generator.Subcommand,
		"editor.vscode":        d.Editor.VSCode,
		"editor.cursor":        d.Editor.Cursor,
		"locale":               d.Locale,
		"strict":               d.Strict,
	}
}
