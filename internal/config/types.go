package config

// Config is the effective configuration of a run.
type Config struct {
	Generator GeneratorConfig `koanf:"generator" yaml:"generator"`
	Editor    EditorConfig    `koanf:"editor" yaml:"editor"`

	// Locale selects the prompt language. Empty means detect from the environment.
	Locale string `koanf:"locale" yaml:"locale"`

	// Strict makes a failed generator run exit with a non-zero status.
	Strict bool `koanf:"strict" yaml:"strict"`
}

// GeneratorConfig describes the external project generator.
type GeneratorConfig struct {
	// Command overrides the platform default executable (flutter / flutter.bat).
	Command    string `koanf:"command" yaml:"command"`
	Subcommand string `koanf:"subcommand" yaml:"subcommand"`
}

// EditorConfig holds the launch commands of the known editors.
type EditorConfig struct {
	VSCode string `koanf:"vscode" yaml:"vscode"`
	Cursor string `koanf:"cursor" yaml:"cursor"`
}
