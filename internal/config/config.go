// Package config loads YAML configuration for the pnptex CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/valgut/go-pnptex/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// maxConfigSize limits config input to prevent memory exhaustion.
const maxConfigSize = 1 << 20

// Config holds all configuration for document generation. Boolean fields
// are pointers so "unset" is distinguishable from an explicit false; the
// CLI fills unset fields from its own defaults.
type Config struct {
	Paper  PaperConfig  `yaml:"paper"`
	Cards  CardsConfig  `yaml:"cards"`
	Notes  NotesConfig  `yaml:"notes"`
	Output OutputConfig `yaml:"output"`
}

// PaperConfig defines the target paper.
type PaperConfig struct {
	Size string `yaml:"size"` // "a4" or "letter" (default: "a4")
}

// CardsConfig defines card sizing options.
type CardsConfig struct {
	Bleed     *bool `yaml:"bleed"`     // scans already include bleed (default: true)
	RotateAMD *bool `yaml:"rotateAmd"` // rotate AMD-size cards 90 degrees (default: true)
}

// NotesConfig defines class-notes rendering options.
type NotesConfig struct {
	Enabled bool `yaml:"enabled"` // also render notes.md/README.md to HTML
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // default output directory (empty = current)
}

// DefaultConfig returns a neutral configuration with everything unset.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent
// fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > maxConfigSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrConfigParse, configPath, maxConfigSize)
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml. Tries locations in
// order: current directory, <user config dir>/pnptex/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "pnptex", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
