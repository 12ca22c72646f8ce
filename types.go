package pnptex

import (
	"fmt"
	"strings"
)

// Paper size constants.
const (
	PaperA4     = "a4"
	PaperLetter = "letter"
)

// Grid capacities for small-format pages.
const (
	// amdPageCapacity is the number of AMD-size card images per sheet,
	// laid out as two rows of five.
	amdPageCapacity = 10
	amdCardsPerRow  = 5

	// tokenPairsPerSheet is the number of token pairs (one normal, one
	// horizontally mirrored) appended to the final AMD page.
	tokenPairsPerSheet = 5
)

// Physical dimensions embedded in the LaTeX output. Bleed-variant ability
// cards are wider so the trimmed card matches the no-bleed physical size.
const (
	abilityCardWidthBleed   = "6.99cm"
	abilityCardWidthNoBleed = "6.35cm"
	amdCardWidth            = "4.4cm"
	tokenWidth              = "1.45cm"
	matWidth                = "14.5cm"
	matHeight               = "9.5cm"
	miniWidth               = "4cm"
	sheetHeight             = "14cm"
)

// LayoutConfig drives all sizing and grid decisions. It is resolved once
// at startup and never mutated afterwards.
type LayoutConfig struct {
	Paper            string // "a4" or "letter"
	Bleed            bool   // card scans already include bleed margins
	RotateSmallCards bool   // rotate AMD-size cards 90 degrees
}

// DefaultLayout returns the layout used when nothing is configured:
// A4 paper, cards with bleed, small cards rotated.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		Paper:            PaperA4,
		Bleed:            true,
		RotateSmallCards: true,
	}
}

// Validate checks that the layout is usable. Comparison is
// case-insensitive; the zero value fails (paper must be set explicitly).
func (c LayoutConfig) Validate() error {
	switch strings.ToLower(c.Paper) {
	case PaperA4, PaperLetter:
		return nil
	}
	return fmt.Errorf("%w: %q (must be %q or %q)", ErrInvalidPaperSize, c.Paper, PaperA4, PaperLetter)
}

// isLetter reports whether the layout targets US Letter paper.
func (c LayoutConfig) isLetter() bool {
	return strings.ToLower(c.Paper) == PaperLetter
}

// CardsPerLine returns how many ability cards fit on one row: four,
// except on US Letter with bleed where the wider cards only allow three.
func (c LayoutConfig) CardsPerLine() int {
	if c.isLetter() && c.Bleed {
		return 3
	}
	return 4
}

// AbilityPageCapacity returns how many ability cards fit on one sheet
// (two rows).
func (c LayoutConfig) AbilityPageCapacity() int {
	return 2 * c.CardsPerLine()
}

// abilityCardWidth returns the per-card width embedded in ability-card
// pages.
func (c LayoutConfig) abilityCardWidth() string {
	if c.Bleed {
		return abilityCardWidthBleed
	}
	return abilityCardWidthNoBleed
}

// Option configures a Service.
type Option func(*Service)

// WithNotesRenderer replaces the Markdown renderer used for class notes.
// Mainly useful for tests.
func WithNotesRenderer(r NotesRenderer) Option {
	return func(s *Service) {
		s.notes = r
	}
}
