package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/modu-ai/flutter-scaffold/pkg/models"
)

// Dynamic token patterns that must not appear in command values.
// They indicate variables the shell was expected to expand.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),        // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`),      // {{VAR}}
	regexp.MustCompile(`\$[A-Z_][A-Z0-9_]*`), // $VAR
}

// Validate checks the configuration for correctness.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if strings.TrimSpace(cfg.Generator.Subcommand) == "" {
		errs = append(errs, ValidationError{
			Field:   "generator.subcommand",
			Message: "required field is empty",
			Wrapped: ErrInvalidConfig,
		})
	}

	if cfg.Locale != "" && !slices.Contains(models.SupportedLanguages(), cfg.Locale) {
		errs = append(errs, ValidationError{
			Field:   "locale",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(models.SupportedLanguages(), ", ")),
			Value:   cfg.Locale,
			Wrapped: ErrUnsupportedLocale,
		})
	}

	errs = append(errs, checkStringField("generator.command", cfg.Generator.Command)...)
	errs = append(errs, checkStringField("generator.subcommand", cfg.Generator.Subcommand)...)
	errs = append(errs, checkStringField("editor.vscode", cfg.Editor.VSCode)...)
	errs = append(errs, checkStringField("editor.cursor", cfg.Editor.Cursor)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// checkStringField reports the first dynamic token found in value.
func checkStringField(field, value string) []ValidationError {
	if value == "" {
		return nil
	}
	for _, pattern := range dynamicTokenPatterns {
		if match := pattern.FindString(value); match != "" {
			return []ValidationError{
				{
					Field:   field,
					Message: fmt.Sprintf("contains unexpanded dynamic token: %s", match),
					Value:   value,
					Wrapped: ErrDynamicToken,
				},
			}
		}
	}
	return nil
}
