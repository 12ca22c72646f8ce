// Package pnptex generates print-and-play LaTeX documents for custom
// tabletop-game classes.
//
// # Quick Start
//
// Create a service and point it at a class asset directory:
//
//	svc, err := pnptex.New(pnptex.DefaultLayout())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	summary, err := svc.GenerateToFile("MyClass/", "my_class.tex")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d pages\n", summary.TotalPages)
//
// The generated file is plain LaTeX meant to be compiled by an external
// engine (pdflatex, xelatex). This package never renders or rasterizes
// images itself.
//
// # Input Directory Contract
//
// The root directory must follow a fixed structure:
//
//	MyClass/
//	├── AbilityCards/      (any number of .jpg/.png card fronts)
//	├── AMD/               (attack modifier deck cards)
//	├── NON_AMD/           (optional: perk cards that are not AMDs)
//	├── ability_card_back.(jpg|png)
//	├── amd_back.(jpg|png)
//	├── non_amd_back.(jpg|png)
//	├── character_token.(jpg|png)
//	├── character_mat.(jpg|png)
//	├── character_mat_back.(jpg|png)
//	├── character_mini.(jpg|png)
//	└── character_sheet.(jpg|png)
//
// LocateAssets validates the structure eagerly and fails with
// ErrMissingFolder or ErrMissingAsset before any layout work, so a bad
// directory never produces a partial document.
//
// # Generation Pipeline
//
// Generation is a single deterministic pass:
//
//  1. Asset location and validation (sorted, reproducible ordering)
//  2. Pagination of each card category into fixed-capacity pages
//  3. LaTeX fragment emission per page
//  4. Concatenation in fixed section order and a single file write
//
// # Configuration
//
// LayoutConfig selects the paper size (A4 or US Letter), whether the
// card scans carry bleed, and whether small cards are rotated 90
// degrees so two rows of five fit on one sheet:
//
//	svc, err := pnptex.New(pnptex.LayoutConfig{
//	    Paper:            pnptex.PaperLetter,
//	    Bleed:            false,
//	    RotateSmallCards: true,
//	})
package pnptex
