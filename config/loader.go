package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPaths are searched in order when no explicit path is given
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

// Load reads, defaults and validates the configuration. With an empty path
// the DefaultPaths are tried; when none exists the defaults are returned.
func Load(path string) (AppConfig, error) {
	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return AppConfig{}, fmt.Errorf("read config: %w", err)
		}
		return Parse(data)
	}
	for _, p := range DefaultPaths {
		if data, err = os.ReadFile(p); err == nil {
			return Parse(data)
		}
	}
	return Parse(nil)
}

// Parse decodes YAML over the defaults and validates the result.
// Status labels from the file are merged into the default table.
func Parse(data []byte) (AppConfig, error) {
	cfg := Default()
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks struct tag constraints of every section
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
