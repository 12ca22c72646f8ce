package main

import (
	"errors"
	"os"

	pnptex "github.com/valgut/go-pnptex"
	"github.com/valgut/go-pnptex/internal/config"
)

// Exit codes for the pnptex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or asset layout
	ExitIO      = 3 // Unreadable directory, unwritable output
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, pnptex.ErrReadFolder) ||
		errors.Is(err, pnptex.ErrReadNotes) ||
		errors.Is(err, pnptex.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, pnptex.ErrMissingFolder) ||
		errors.Is(err, pnptex.ErrMissingAsset) ||
		errors.Is(err, pnptex.ErrInvalidPaperSize) {
		return ExitUsage
	}

	return ExitGeneral
}
