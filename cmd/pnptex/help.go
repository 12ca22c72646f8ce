package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pnptex [flags] <path_to_root_dir> <output_path>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a print-and-play LaTeX document for a custom class.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  path_to_root_dir    Directory with the class assets (see README)")
	fmt.Fprintln(w, "  output_path         Path of the generated .tex file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "      --is_A4             Target A4 paper (default)")
	fmt.Fprintln(w, "      --no-is_A4          Target US Letter paper")
	fmt.Fprintln(w, "      --with_bleed        Card scans include bleed (default)")
	fmt.Fprintln(w, "      --no-with_bleed     Card scans have no bleed")
	fmt.Fprintln(w, "      --no-rotate-amd     Do not rotate AMD-size cards 90 degrees")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --notes             Also render notes.md/README.md to HTML")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show per-section page counts")
	fmt.Fprintln(w, "  -h, --help              Show this help")
	fmt.Fprintln(w, "      --version           Show version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment: PNPTEX_CONFIG, PNPTEX_PAPER_SIZE, PNPTEX_BLEED,")
	fmt.Fprintln(w, "             PNPTEX_ROTATE_AMD, PNPTEX_NOTES, PNPTEX_OUTPUT_DIR")
}
