package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage indicates invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// layoutFlags holds source and destination directories.
type layoutFlags struct {
	content string
	static  string
	output  string
}

// renderFlags holds page rendering flags.
type renderFlags struct {
	engine         string
	headingIDs     bool
	rewriteLinks   bool
	highlight      bool
	highlightStyle string
}

// assetFlags holds template and stylesheet flags.
type assetFlags struct {
	template  string
	style     string
	assetPath string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common      commonFlags
	layout      layoutFlags
	render      renderFlags
	assets      assetFlags
	workers     int
	keepGoing   bool
	printConfig bool
	fs          *flag.FlagSet
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
}

// addLayoutFlags adds directory flags to a FlagSet.
func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.StringVar(&f.content, "content", "", "markdown source directory")
	fs.StringVar(&f.static, "static", "", "static assets directory")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (cleared on build)")
}

// addRenderFlags adds rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.engine, "engine", "e", "", "markdown engine: native, goldmark")
	fs.BoolVar(&f.headingIDs, "heading-ids", false, "add slug ids to headings")
	fs.BoolVar(&f.rewriteLinks, "rewrite-links", false, "rewrite relative .md links to .html")
	fs.BoolVar(&f.highlight, "highlight", false, "syntax highlight code blocks")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for highlighting")
}

// addAssetFlags adds template and stylesheet flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVarP(&f.template, "template", "t", "", "template name or .html path")
	fs.StringVarP(&f.style, "style", "s", "", "style name or .css path")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with styles/ and templates/ overrides")
}

// newBuildFlagSet registers every build flag on a fresh FlagSet.
func newBuildFlagSet(f *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	addCommonFlags(fs, &f.common)
	addLayoutFlags(fs, &f.layout)
	addRenderFlags(fs, &f.render)
	addAssetFlags(fs, &f.assets)
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVarP(&f.keepGoing, "keep-going", "k", false, "build remaining pages after a failure")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective configuration and exit")

	return fs
}

// parseBuildFlags parses build arguments. The build command takes no
// positional arguments.
func parseBuildFlags(args []string) (*buildFlags, error) {
	f := &buildFlags{}
	f.fs = newBuildFlagSet(f)

	if err := f.fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if f.fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, f.fs.Arg(0))
	}
	if f.common.quiet && f.common.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}
	return f, nil
}

// changed reports whether a flag was set on the command line.
func (f *buildFlags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}
