package pnptex

import "errors"

// Sentinel errors for library operations.
var (
	// Asset location errors.
	ErrMissingFolder = errors.New("missing required folder")
	ErrMissingAsset  = errors.New("missing required asset")
	ErrReadFolder    = errors.New("failed to read folder")

	// Layout validation errors.
	ErrInvalidPaperSize = errors.New("invalid paper size")

	// Generation errors.
	ErrNilBundle   = errors.New("asset bundle cannot be nil")
	ErrWriteOutput = errors.New("failed to write output file")

	// Notes rendering errors.
	ErrNotesRender = errors.New("notes rendering failed")
	ErrReadNotes   = errors.New("failed to read notes file")
)
