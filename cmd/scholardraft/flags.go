package main

import (
	"time"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	logLevel  string
	logFormat string
	quiet     bool
	verbose   bool
}

func (f *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.config, "config", "", "config name or file path (env SCHOLARDRAFT_CONFIG)")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text or json")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only log errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log debug details")
}

// inputFlags selects the content bundle or reference list to read.
type inputFlags struct {
	content    string
	references string
}

func (f *inputFlags) register(fs *flag.FlagSet, withReferences bool) {
	fs.StringVarP(&f.content, "content", "c", "", "generated content bundle (.json, .yaml, or - for JSON on stdin)")
	if withReferences {
		fs.StringVarP(&f.references, "references", "r", "", "reference list (.ris, .json, .yaml)")
	}
}

// outputFlags controls where files are written.
type outputFlags struct {
	dir    string
	format string
}

func (f *outputFlags) register(fs *flag.FlagSet, withFormat bool) {
	fs.StringVarP(&f.dir, "output", "o", "", "output directory (default: output.dir or current directory)")
	if withFormat {
		fs.StringVarP(&f.format, "format", "f", "", "output format: doc, html, pdf (default: output.format)")
	}
}

// renderFlags tune the exporter.
type renderFlags struct {
	workers int
	timeout time.Duration
}

func (f *renderFlags) register(fs *flag.FlagSet) {
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel section exports (0 = auto, env SCHOLARDRAFT_WORKERS)")
	fs.DurationVarP(&f.timeout, "timeout", "t", 0, "PDF render timeout, e.g. 45s (default: pdf.timeout)")
}

// stringFlag returns the flag value when the user set it, else fallback.
func stringFlag(fs *flag.FlagSet, name, value, fallback string) string {
	if fs.Changed(name) {
		return value
	}
	return fallback
}
