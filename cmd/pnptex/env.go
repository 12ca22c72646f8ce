package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/valgut/go-pnptex/internal/config"
)

// envConfig holds configuration from environment variables. Provides
// CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // PNPTEX_CONFIG: config file path
	PaperSize  string // PNPTEX_PAPER_SIZE: a4, letter
	Bleed      *bool  // PNPTEX_BLEED: true/false
	RotateAMD  *bool  // PNPTEX_ROTATE_AMD: true/false
	Notes      *bool  // PNPTEX_NOTES: true/false
	OutputDir  string // PNPTEX_OUTPUT_DIR: default output directory
}

// knownEnvVars lists valid PNPTEX_* environment variables. Used to
// detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"PNPTEX_CONFIG":     true,
	"PNPTEX_PAPER_SIZE": true,
	"PNPTEX_BLEED":      true,
	"PNPTEX_ROTATE_AMD": true,
	"PNPTEX_NOTES":      true,
	"PNPTEX_OUTPUT_DIR": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("PNPTEX_CONFIG"),
		PaperSize:  os.Getenv("PNPTEX_PAPER_SIZE"),
		Bleed:      parseBoolEnv("PNPTEX_BLEED"),
		RotateAMD:  parseBoolEnv("PNPTEX_ROTATE_AMD"),
		Notes:      parseBoolEnv("PNPTEX_NOTES"),
		OutputDir:  os.Getenv("PNPTEX_OUTPUT_DIR"),
	}
}

// parseBoolEnv parses a boolean environment variable. Unset or
// unparsable values return nil so they never override other sources.
func parseBoolEnv(name string) *bool {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// warnUnknownEnvVars logs warnings for unrecognized PNPTEX_* variables.
// Helps catch typos like PNPTEX_PAPER instead of PNPTEX_PAPER_SIZE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "PNPTEX_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config. Only
// sets values the config file left unset, preserving precedence:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.PaperSize != "" && cfg.Paper.Size == "" {
		cfg.Paper.Size = env.PaperSize
	}
	if env.Bleed != nil && cfg.Cards.Bleed == nil {
		cfg.Cards.Bleed = env.Bleed
	}
	if env.RotateAMD != nil && cfg.Cards.RotateAMD == nil {
		cfg.Cards.RotateAMD = env.RotateAMD
	}
	if env.Notes != nil && *env.Notes && !cfg.Notes.Enabled {
		cfg.Notes.Enabled = true
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
}
