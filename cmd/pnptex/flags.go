package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across concerns.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	help    bool
	version bool
}

// layoutFlags holds paper and card sizing flags. The paired --x /
// --no-x booleans mirror the historical CLI surface; the no- form wins
// when both are set.
type layoutFlags struct {
	isA4        bool
	noIsA4      bool
	withBleed   bool
	noWithBleed bool
	noRotateAMD bool
}

// outputFlags holds output-related flags.
type outputFlags struct {
	notes bool
}

// cliFlags holds all flags for the pnptex command.
type cliFlags struct {
	common commonFlags
	layout layoutFlags
	output outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-section page counts")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	fs.BoolVar(&f.version, "version", false, "show version")
}

// addLayoutFlags adds paper and card sizing flags to a FlagSet.
func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.BoolVar(&f.isA4, "is_A4", true, "generate for A4 paper (default); US Letter otherwise")
	fs.BoolVar(&f.noIsA4, "no-is_A4", false, "generate for US Letter paper")
	fs.BoolVar(&f.withBleed, "with_bleed", true, "card scans already include bleed (default)")
	fs.BoolVar(&f.noWithBleed, "no-with_bleed", false, "card scans have no bleed")
	fs.BoolVar(&f.noRotateAMD, "no-rotate-amd", false, "do not rotate AMD-size cards 90 degrees")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.notes, "notes", false, "also render notes.md/README.md to HTML")
}

// parseFlags parses CLI flags and returns them along with positional
// arguments and the FlagSet (for Changed lookups during merging).
func parseFlags(args []string) (*cliFlags, []string, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("pnptex", flag.ContinueOnError)
	f := &cliFlags{}

	addCommonFlags(fs, &f.common)
	addLayoutFlags(fs, &f.layout)
	addOutputFlags(fs, &f.output)

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}

	return f, fs.Args(), fs, nil
}
