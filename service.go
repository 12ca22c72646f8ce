package pnptex

import (
	"fmt"
	"os"
	"strings"
)

// Service orchestrates asset location, pagination, and LaTeX emission.
type Service struct {
	layout LayoutConfig
	notes  NotesRenderer
}

// New creates a Service for the given layout. The layout is validated
// once here and never mutated afterwards.
func New(layout LayoutConfig, opts ...Option) (*Service, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	s := &Service{
		layout: layout,
		notes:  newNotesRenderer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Layout returns the immutable layout configuration.
func (s *Service) Layout() LayoutConfig {
	return s.layout
}

// Document is a generated print-and-play document: an ordered list of
// LaTeX fragments plus page counts per section. Fragments are kept
// separate until String so each one is independently assertable.
type Document struct {
	Fragments []string
	Summary   Summary
}

// Summary counts the pages emitted per section.
type Summary struct {
	AbilityFrontPages int
	AbilityBackPages  int
	AMDPages          int
	MatPages          int
	SheetPages        int
}

// TotalPages returns the page count of the whole document.
func (s Summary) TotalPages() int {
	return s.AbilityFrontPages + s.AbilityBackPages + s.AMDPages + s.MatPages + s.SheetPages
}

// String joins the fragments into the final LaTeX source.
func (d *Document) String() string {
	return strings.Join(d.Fragments, "")
}

// Generate produces the full document for a located asset bundle.
// Section order is fixed: ability cards, AMD-size cards (with tokens on
// the final sheet), character mat and mini, character sheet. Empty card
// categories simply contribute zero pages.
func (s *Service) Generate(b *Bundle) (*Document, error) {
	if b == nil {
		return nil, ErrNilBundle
	}

	doc := &Document{}
	doc.Fragments = append(doc.Fragments, documentHeader(s.layout))

	// Ability cards: each front page directly followed by its back page.
	for i, page := range abilityPages(b.AbilityCards, b.AbilityBack, s.layout) {
		doc.Fragments = append(doc.Fragments, abilityCardPage(page, s.layout))
		if i%2 == 0 {
			doc.Summary.AbilityFrontPages++
		} else {
			doc.Summary.AbilityBackPages++
		}
	}

	// AMD-size cards: one flat front+back sequence, tokens on the last
	// sheet only.
	amdSheets := chunk(amdSequence(b), amdPageCapacity)
	for i, page := range amdSheets {
		token := ""
		if i == len(amdSheets)-1 {
			token = b.Token
		}
		doc.Fragments = append(doc.Fragments, amdCardPage(page, token, s.layout))
		doc.Summary.AMDPages++
	}

	doc.Fragments = append(doc.Fragments, characterMatPages(b.MatFront, b.MatBack, b.Mini))
	doc.Summary.MatPages = 2

	doc.Fragments = append(doc.Fragments, characterSheetPages(b.Sheet))
	doc.Summary.SheetPages = 2

	doc.Fragments = append(doc.Fragments, documentTrailer())
	return doc, nil
}

// GenerateToFile locates assets under root, generates the document, and
// writes it to outputPath in one shot. Nothing is written when any stage
// fails, so there is no partial-success mode.
func (s *Service) GenerateToFile(root, outputPath string) (Summary, error) {
	bundle, err := LocateAssets(root)
	if err != nil {
		return Summary{}, err
	}

	doc, err := s.Generate(bundle)
	if err != nil {
		return Summary{}, err
	}

	if err := os.WriteFile(outputPath, []byte(doc.String()), 0o644); err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return doc.Summary, nil
}
