package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	pnptex "github.com/valgut/go-pnptex"
	"github.com/valgut/go-pnptex/internal/config"
)

// Sentinel errors for CLI operations.
var ErrInvalidArgs = errors.New("usage: pnptex [flags] <path_to_root_dir> <output_path>")

// Positional argument count.
const requiredPositionals = 2

// run parses arguments, resolves configuration, and drives generation.
func run(args []string, stdout, stderr io.Writer) error {
	flags, positionals, fs, err := parseFlags(args[1:])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}

	if flags.common.help {
		printUsage(stdout)
		return nil
	}
	if flags.common.version {
		fmt.Fprintf(stdout, "pnptex %s\n", Version)
		return nil
	}

	if len(positionals) != requiredPositionals {
		return ErrInvalidArgs
	}
	rootDir := positionals[0]
	outputPath := positionals[1]

	env := loadEnvConfig()
	if !flags.common.quiet {
		warnUnknownEnvVars(stderr)
	}

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}
	applyEnvConfig(env, cfg)

	layout := resolveLayout(flags, fs, cfg)
	outputPath = resolveOutputPath(outputPath, cfg)

	svc, err := pnptex.New(layout)
	if err != nil {
		return err
	}

	summary, err := svc.GenerateToFile(rootDir, outputPath)
	if err != nil {
		return err
	}

	if notesEnabled(flags, cfg) {
		notesPath := notesOutputPath(outputPath)
		wrote, err := svc.RenderNotesToFile(rootDir, notesPath)
		if err != nil {
			return err
		}
		if wrote && !flags.common.quiet {
			fmt.Fprintf(stdout, "Created %s\n", notesPath)
		}
	}

	if !flags.common.quiet {
		fmt.Fprintf(stdout, "Created %s (%d pages)\n", outputPath, summary.TotalPages())
	}
	if flags.common.verbose {
		fmt.Fprintf(stderr, "ability cards: %d front + %d back pages\n",
			summary.AbilityFrontPages, summary.AbilityBackPages)
		fmt.Fprintf(stderr, "AMD-size cards: %d pages\n", summary.AMDPages)
		fmt.Fprintf(stderr, "mat/mini: %d pages, character sheet: %d pages\n",
			summary.MatPages, summary.SheetPages)
	}
	return nil
}

// resolveConfig loads the config file named by flag or environment, or
// returns an empty default when neither is set.
func resolveConfig(flags *cliFlags, env *envConfig) (*config.Config, error) {
	configPath := flags.common.config
	if configPath == "" {
		configPath = env.ConfigPath
	}
	if configPath == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(configPath)
}

// resolveLayout merges layout settings with precedence:
// CLI flags > env vars > config file > defaults.
// Env values were already folded into cfg by applyEnvConfig.
func resolveLayout(flags *cliFlags, fs *flag.FlagSet, cfg *config.Config) pnptex.LayoutConfig {
	layout := pnptex.DefaultLayout()

	if cfg.Paper.Size != "" {
		layout.Paper = strings.ToLower(cfg.Paper.Size)
	}
	if cfg.Cards.Bleed != nil {
		layout.Bleed = *cfg.Cards.Bleed
	}
	if cfg.Cards.RotateAMD != nil {
		layout.RotateSmallCards = *cfg.Cards.RotateAMD
	}

	if fs.Changed("is_A4") {
		layout.Paper = pnptex.PaperLetter
		if flags.layout.isA4 {
			layout.Paper = pnptex.PaperA4
		}
	}
	if flags.layout.noIsA4 {
		layout.Paper = pnptex.PaperLetter
	}

	if fs.Changed("with_bleed") {
		layout.Bleed = flags.layout.withBleed
	}
	if flags.layout.noWithBleed {
		layout.Bleed = false
	}

	if flags.layout.noRotateAMD {
		layout.RotateSmallCards = false
	}

	return layout
}

// notesEnabled reports whether the notes HTML file should be rendered.
func notesEnabled(flags *cliFlags, cfg *config.Config) bool {
	return flags.output.notes || cfg.Notes.Enabled
}

// resolveOutputPath applies the configured default output directory to a
// bare file name. Explicit paths are left untouched.
func resolveOutputPath(outputPath string, cfg *config.Config) string {
	if cfg.Output.DefaultDir == "" || filepath.Dir(outputPath) != "." {
		return outputPath
	}
	return filepath.Join(cfg.Output.DefaultDir, outputPath)
}

// notesOutputPath derives the notes HTML path from the LaTeX output
// path: my_class.tex -> my_class_notes.html.
func notesOutputPath(outputPath string) string {
	base := strings.TrimSuffix(outputPath, filepath.Ext(outputPath))
	return base + "_notes.html"
}
