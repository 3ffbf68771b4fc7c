package scholardraft

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-scholardraft/internal/assemble"
	"github.com/alnah/go-scholardraft/internal/assets"
	"github.com/alnah/go-scholardraft/internal/citation"
	"github.com/alnah/go-scholardraft/internal/fileutil"
	"github.com/alnah/go-scholardraft/internal/markup"
	"github.com/alnah/go-scholardraft/internal/msword"
	"github.com/alnah/go-scholardraft/internal/pagination"
	"github.com/alnah/go-scholardraft/internal/ris"
)

const tracerName = "github.com/alnah/go-scholardraft"

// Exporter turns generated content into print documents and bibliography
// files. Create with NewExporter and Close when done. An Exporter is safe
// for concurrent use; every export owns its footnote numbering.
type Exporter struct {
	cfg       exporterConfig
	estimator pagination.Estimator
	writer    *msword.Writer
	pdf       pdfConverter
	logger    *slog.Logger
	tracer    trace.Tracer
	observer  ExportObserver
	now       func() time.Time
}

// NewExporter creates an Exporter with the embedded academic style sheet.
// Returns error if pagination settings, asset loading or template parsing
// fail.
func NewExporter(opts ...Option) (*Exporter, error) {
	e := &Exporter{
		cfg: exporterConfig{
			timeout: defaultTimeout,
			style:   assets.DefaultStyleName,
		},
		logger: slog.New(slog.DiscardHandler),
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	p := e.cfg.pagination
	est, err := pagination.NewEstimator(p[0], p[1], p[2])
	if err != nil {
		return nil, err
	}
	if e.cfg.frontMatter != nil {
		if est, err = est.WithFrontMatterPages(*e.cfg.frontMatter); err != nil {
			return nil, err
		}
	}
	e.estimator = est

	resolver, err := assets.NewAssetResolver(e.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	css, err := resolver.LoadStyle(e.cfg.style)
	if err != nil {
		return nil, fmt.Errorf("loading style %q: %w", e.cfg.style, err)
	}
	ts, err := resolver.LoadTemplateSet(assets.DefaultTemplateSetName)
	if err != nil {
		return nil, fmt.Errorf("loading template set: %w", err)
	}
	e.writer, err = msword.NewWriter(ts, css)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}

	// Create PDF converter if not injected (e.g., by tests).
	if e.pdf == nil {
		e.pdf = newRodConverter(e.cfg.timeout)
	}

	return e, nil
}

// Close releases the headless browser, if one was started.
func (e *Exporter) Close() error {
	if e.pdf != nil {
		return e.pdf.Close()
	}
	return nil
}

// Export renders one section, or the full document for SectionFull, in
// the given format. An empty format selects DefaultFormat.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (e *Exporter) Export(ctx context.Context, content GeneratedContent, cfg ExportConfig, section Section, format Format) (file *File, err error) {
	start := time.Now()
	ctx, span := e.tracer.Start(ctx, "scholardraft.Export", trace.WithAttributes(
		attribute.String("scholardraft.section", string(section)),
		attribute.String("scholardraft.format", string(format)),
	))
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		if e.observer != nil {
			e.observer.ObserveExport(string(section), string(format), time.Since(start), err)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if format == "" {
		format = DefaultFormat
	}
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}

	asm := e.assembler(cfg)
	var doc assemble.Document
	if section == SectionFull {
		doc = asm.Full(e.fullInput(content, cfg))
	} else {
		in, err := e.sectionInput(content, cfg, section)
		if err != nil {
			return nil, err
		}
		doc = asm.Section(in)
	}

	data, err := e.render(ctx, doc, format)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("scholardraft.footnotes", len(doc.Footnotes)),
		attribute.Int("scholardraft.bytes", len(data)),
	)
	e.logger.DebugContext(ctx, "document exported",
		slog.String("section", string(section)),
		slog.String("format", string(format)),
		slog.Int("footnotes", len(doc.Footnotes)),
		slog.Int("bytes", len(data)),
	)

	return &File{
		Name:        fileutil.JoinName(section.fileBase(), cfg.StudentName, format.Extension()),
		ContentType: format.ContentType(),
		Data:        data,
		Section:     section,
		Footnotes:   len(doc.Footnotes),
		TOC:         doc.TOC,
	}, nil
}

// ExportSections exports several sections concurrently. Results keep the
// order of sections. The first failure cancels the remaining exports.
func (e *Exporter) ExportSections(ctx context.Context, content GeneratedContent, cfg ExportConfig, sections []Section, format Format) ([]*File, error) {
	files := make([]*File, len(sections))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers())
	for i, s := range sections {
		g.Go(func() error {
			f, err := e.Export(gctx, content, cfg, s, format)
			if err != nil {
				return fmt.Errorf("exporting %s: %w", s, err)
			}
			files[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// ExportBibliography serializes refs as a RIS file. Zero references yield
// an empty body.
func (e *Exporter) ExportBibliography(refs []Reference) *File {
	data := ris.Marshal(refs)
	e.logger.Debug("bibliography exported", slog.Int("references", len(refs)), slog.Int("bytes", len(data)))
	return &File{
		Name:        BibliographyFileName,
		ContentType: ris.ContentType,
		Data:        data,
		Section:     SectionReferences,
	}
}

// Outline estimates the table of contents of the full document and
// compares each chapter's estimate with its page target.
func (e *Exporter) Outline(content GeneratedContent, cfg ExportConfig) Outline {
	labels := assemble.LabelsFor(cfg.Language)
	asm := e.assembler(cfg)
	chapters := make([]pagination.Chapter, ChapterCount)
	for n := 1; n <= ChapterCount; n++ {
		chapters[n-1] = pagination.Chapter{
			Title:   labels.ChapterNumber(n) + " " + labels.ChapterTitle(n),
			Content: asm.PrintedText(content.Chapter(n)),
			Target:  cfg.ChapterPages.Target(n),
		}
	}
	return Outline{
		TOC:      asm.TOC(e.fullInput(content, cfg)),
		Chapters: e.estimator.LengthReport(chapters),
	}
}

func (e *Exporter) assembler(cfg ExportConfig) *assemble.Assembler {
	return assemble.New(
		assemble.WithLabels(assemble.LabelsFor(cfg.Language)),
		assemble.WithStyle(citation.ParseStyle(string(cfg.Style))),
		assemble.WithMode(citation.ParseMode(string(cfg.Mode))),
		assemble.WithEstimator(e.estimator),
	)
}

// fullInput selects the generated fields for a full document. Empty
// fields are omitted; chapters keep their numbers.
func (e *Exporter) fullInput(content GeneratedContent, cfg ExportConfig) assemble.Input {
	in := assemble.Input{Cover: e.cover(content, cfg)}

	if present(content.Abstract) {
		b := block(content.Abstract)
		in.Abstract = &b
	}
	for n := 1; n <= ChapterCount; n++ {
		if text := content.Chapter(n); present(text) {
			in.Chapters = append(in.Chapters, assemble.Chapter{Number: n, Body: block(text)})
		}
	}
	if len(content.References) > 0 {
		in.References = &assemble.ReferenceList{Items: content.References}
	}

	ap := assemble.Appendix{
		Questionnaire: optional(content.Questionnaire),
		Grid:          optional(content.InstrumentGrid),
		PreTest:       optional(content.PreTest),
		PostTest:      optional(content.PostTest),
		Calculations:  optional(content.Calculations),
	}
	if ap != (assemble.Appendix{}) {
		in.Appendix = &ap
	}
	return in
}

// sectionInput selects the fields of one section. The requested section is
// always emitted, even when its content is empty.
func (e *Exporter) sectionInput(content GeneratedContent, cfg ExportConfig, section Section) (assemble.Input, error) {
	if n := section.ChapterNumber(); n > 0 {
		return assemble.Input{Chapters: []assemble.Chapter{{Number: n, Body: block(content.Chapter(n))}}}, nil
	}

	switch section {
	case SectionCover:
		abstract := block(content.Abstract)
		return assemble.Input{Cover: e.cover(content, cfg), Abstract: &abstract}, nil
	case SectionReferences:
		return assemble.Input{References: &assemble.ReferenceList{Items: content.References}}, nil
	case SectionAppendix:
		questionnaire := block(content.Questionnaire)
		return assemble.Input{Appendix: &assemble.Appendix{
			Questionnaire: &questionnaire,
			Grid:          optional(content.InstrumentGrid),
			PreTest:       optional(content.PreTest),
			PostTest:      optional(content.PostTest),
			Calculations:  optional(content.Calculations),
		}}, nil
	}
	return assemble.Input{}, fmt.Errorf("%w: %q", ErrUnknownSection, section)
}

func (e *Exporter) cover(content GeneratedContent, cfg ExportConfig) *assemble.Cover {
	year := cfg.Year
	if year == "" {
		year = strconv.Itoa(e.now().Year())
	}
	return &assemble.Cover{
		Title:        cfg.Title,
		DocumentType: cfg.DocumentType,
		StudentName:  cfg.StudentName,
		Faculty:      cfg.Faculty,
		University:   cfg.University,
		Year:         year,
		Note:         block(content.Cover),
	}
}

func (e *Exporter) render(ctx context.Context, doc assemble.Document, format Format) ([]byte, error) {
	opts := msword.Options{BOM: format == FormatDOC}
	data, err := e.writer.Render(doc, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	if format != FormatPDF {
		return data, nil
	}

	pdf, err := e.pdf.ToPDF(ctx, string(data), &pdfOptions{Title: doc.Title})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	return pdf, nil
}

func (e *Exporter) workers() int {
	if e.cfg.workers > 0 {
		return e.cfg.workers
	}
	return ResolvePoolSize(0)
}

// block marks pre-structured HTML so the assembler keeps its layout.
func block(text string) assemble.Block {
	return assemble.Block{Text: text, Structured: markup.IsStructured(text)}
}

func optional(text string) *assemble.Block {
	if !present(text) {
		return nil
	}
	b := block(text)
	return &b
}

func present(text string) bool {
	return strings.TrimSpace(text) != ""
}
