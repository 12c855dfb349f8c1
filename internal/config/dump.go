package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Marshal renders cfg as YAML, in the same shape the config file accepts.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
