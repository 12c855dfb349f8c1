package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Loader reads configuration layers with koanf.
type Loader struct {
	environ func() []string
	userDir func() (string, error)
	logger  *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithEnviron replaces the environment source (used for testing).
func WithEnviron(fn func() []string) LoaderOption {
	return func(l *Loader) {
		l.environ = fn
	}
}

// WithUserConfigDir replaces os.UserConfigDir (used for testing).
func WithUserConfigDir(fn func() (string, error)) LoaderOption {
	return func(l *Loader) {
		l.userDir = fn
	}
}

// WithLogger sets the logger for the loader.
func WithLogger(lg *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = lg
	}
}

// NewLoader creates a new Loader instance.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		environ: os.Environ,
		userDir: os.UserConfigDir,
		logger:  slog.Default().With("module", "config"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// DefaultPath returns the per-user config file location, e.g.
// ~/.config/flutter-scaffold/config.yaml on Linux.
func (l *Loader) DefaultPath() (string, error) {
	dir, err := l.userDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, appDirName, FileName), nil
}

// Load builds the effective configuration, highest precedence last:
//
//  1. Built-in defaults
//  2. YAML file: path if non-empty (must exist), otherwise DefaultPath if present
//  3. FLUTTER_SCAFFOLD_ environment variables
//
// FLUTTER_SCAFFOLD_GENERATOR_COMMAND maps to generator.command.
func (l *Loader) Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	filePath, err := l.resolveFile(path)
	if err != nil {
		return nil, err
	}
	if filePath != "" {
		if err := k.Load(file.Provider(filePath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parse %s: %w: %v", filePath, ErrInvalidYAML, err)
		}
		l.logger.Debug("config file loaded", "path", filePath)
	}

	lookup := buildEnvLookup(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:      EnvPrefix,
		EnvironFunc: l.environ,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
			if koanfKey, ok := lookup[key]; ok {
				return koanfKey, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveFile returns the config file to read, or "" when none applies.
func (l *Loader) resolveFile(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
		return path, nil
	}

	def, err := l.DefaultPath()
	if err != nil {
		l.logger.Debug("no user config dir, skipping config file", "error", err)
		return "", nil
	}
	if _, err := os.Stat(def); err != nil {
		return "", nil
	}
	return def, nil
}

// buildEnvLookup maps env-style keys ("generator_command") to koanf keys
// ("generator.command") so underscores inside key names are not split.
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}
