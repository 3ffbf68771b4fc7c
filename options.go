package scholardraft

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Option configures an Exporter.
type Option func(*Exporter)

// exporterConfig holds settings resolved in NewExporter.
type exporterConfig struct {
	timeout     time.Duration
	assetPath   string
	style       string
	pagination  [3]int
	frontMatter *int
	workers     int
}

// defaultTimeout bounds one PDF render when the context has no deadline.
const defaultTimeout = 30 * time.Second

// ExportObserver receives one call per finished export. The metrics
// package implements it.
type ExportObserver interface {
	ObserveExport(section, format string, d time.Duration, err error)
}

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("scholardraft: WithTimeout duration must be positive")
	}
	return func(e *Exporter) {
		e.cfg.timeout = d
	}
}

// WithAssetPath loads styles and templates from dir, falling back to the
// embedded assets for anything missing there.
func WithAssetPath(dir string) Option {
	return func(e *Exporter) {
		e.cfg.assetPath = dir
	}
}

// WithStyle selects the style sheet by name.
func WithStyle(name string) Option {
	return func(e *Exporter) {
		e.cfg.style = name
	}
}

// WithPagination overrides the estimator constants. Zero keeps a default;
// negative values make NewExporter fail with ErrInvalidPagination.
func WithPagination(wordsPerPage, frontMatterPages, referencesPerPage int) Option {
	return func(e *Exporter) {
		e.cfg.pagination = [3]int{wordsPerPage, frontMatterPages, referencesPerPage}
	}
}

// WithFrontMatterPages sets the cover and abstract allowance explicitly,
// including zero. It wins over the WithPagination value.
func WithFrontMatterPages(n int) Option {
	return func(e *Exporter) {
		e.cfg.frontMatter = &n
	}
}

// WithWorkers bounds the concurrency of ExportSections. Zero or less uses
// ResolvePoolSize.
func WithWorkers(n int) Option {
	return func(e *Exporter) {
		e.cfg.workers = n
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithTracerProvider sets the tracer provider used for export spans.
// The default is the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Exporter) {
		if tp != nil {
			e.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithObserver reports every export to o.
func WithObserver(o ExportObserver) Option {
	return func(e *Exporter) {
		e.observer = o
	}
}

// WithClock sets the time source used for the cover year.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// withPDFConverter injects a PDF backend (tests).
func withPDFConverter(c pdfConverter) Option {
	return func(e *Exporter) {
		e.pdf = c
	}
}
