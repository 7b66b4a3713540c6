package projectconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MegaPintoos/Courses/internal/domain"
)

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"text": true, "json": true}
)

// Load reads the config file at path and applies it on top of DefaultConfig.
// Data and README paths are resolved relative to the config file's directory,
// including the defaults, so a project config pins the project root.
func Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, domain.FileError("projectconfig.load", path, err)
	}

	var y yamlConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&y); err != nil && !errors.Is(err, io.EOF) {
		return cfg, &domain.OpError{
			Op:   "projectconfig.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	c := y.Coursetable
	if c.Paths.Data != "" {
		cfg.Paths.Data = c.Paths.Data
	}
	if c.Paths.Readme != "" {
		cfg.Paths.Readme = c.Paths.Readme
	}
	if c.Strict != nil {
		cfg.Strict = *c.Strict
	}
	if c.Log.Level != "" {
		cfg.Log.Level = strings.ToLower(c.Log.Level)
	}
	if c.Log.Format != "" {
		cfg.Log.Format = strings.ToLower(c.Log.Format)
	}

	if c.Log.File != "" {
		cfg.Log.File = c.Log.File
	}

	if !validLevels[cfg.Log.Level] {
		return cfg, invalidField(path, "coursetable.log.level", fmt.Sprintf("unsupported level %q (expected debug|info|warn|error)", cfg.Log.Level))
	}
	if !validFormats[cfg.Log.Format] {
		return cfg, invalidField(path, "coursetable.log.format", fmt.Sprintf("unsupported format %q (expected text|json)", cfg.Log.Format))
	}

	base := filepath.Dir(path)
	cfg.Paths.Data = resolve(base, cfg.Paths.Data)
	cfg.Paths.Readme = resolve(base, cfg.Paths.Readme)
	if cfg.Log.File != "" {
		cfg.Log.File = resolve(base, cfg.Log.File)
	}

	return cfg, nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "projectconfig.load",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}

type yamlConfig struct {
	Coursetable struct {
		Paths struct {
			Data   string `yaml:"data"`
			Readme string `yaml:"readme"`
		} `yaml:"paths"`

		Strict *bool `yaml:"strict"`

		Log struct {
			Level  string `yaml:"level"`
			Format string `yaml:"format"`
			File   string `yaml:"file"`
		} `yaml:"log"`
	} `yaml:"coursetable"`
}
