// Package assemble composes normalized section content, footnotes, a table
// of contents and a reference list into one document tree.
//
// Two shapes are produced. Full documents carry a table of contents and
// every section the caller supplies. Section documents carry only the
// sections supplied and no table of contents. In both shapes every text
// field is normalized, then scanned for footnote markers with one numbering
// sequence per call, and the collected footnotes travel beside the body.
//
// The Assembler never validates content. A nil section is omitted; a
// non-nil empty section is emitted with its heading.
package assemble

import (
	"html"
	"strings"

	"github.com/alnah/go-scholardraft/internal/citation"
	"github.com/alnah/go-scholardraft/internal/footnote"
	"github.com/alnah/go-scholardraft/internal/normalize"
	"github.com/alnah/go-scholardraft/internal/pagination"
)

// Block is one free-text field. Structured marks content that is already
// laid out as HTML blocks (tables, lists) and must not be split into
// paragraphs. The flag is decided where content enters the system.
type Block struct {
	Text       string
	Structured bool
}

// Cover holds the identity lines of the cover page. Note is optional
// generated cover text printed under the identity block.
type Cover struct {
	Title        string
	DocumentType string
	By           string
	StudentName  string
	Faculty      string
	University   string
	Year         string
	Note         Block
}

// Chapter is one numbered body chapter (1-based).
type Chapter struct {
	Number int
	Body   Block
}

// Appendix holds the appendix fields. Nil fields are omitted.
// Questionnaire, Grid, PreTest and PostTest form the instrument appendix;
// Calculations forms the data appendix.
type Appendix struct {
	Questionnaire *Block
	Grid          *Block
	PreTest       *Block
	PostTest      *Block
	Calculations  *Block
}

// ReferenceList is the bibliography section.
type ReferenceList struct {
	Items []citation.Reference
}

// Input lists the sections to compose, in fixed print order.
type Input struct {
	Cover      *Cover
	Abstract   *Block
	Chapters   []Chapter
	References *ReferenceList
	Appendix   *Appendix
}

// Kind identifies a composed section.
type Kind string

// Section kinds.
const (
	KindCover      Kind = "cover"
	KindAbstract   Kind = "abstract"
	KindTOC        Kind = "toc"
	KindChapter    Kind = "chapter"
	KindReferences Kind = "references"
	KindAppendix   Kind = "appendix"
)

// Section is one composed part of the document.
type Section struct {
	Kind      Kind
	PageBreak bool
	// Heading lines, rendered centered and separated by line breaks.
	Heading []string
	// Body is composed HTML: paragraphs, block quotes, tables and
	// footnote anchors.
	Body string
	// Cover is set for KindCover.
	Cover *Cover
	// TOC is set for KindTOC.
	TOC []pagination.Entry
	// Items holds formatted references for KindReferences.
	Items []string
}

// Document is the assembled tree plus the out-of-band footnote list.
type Document struct {
	Title     string
	Mode      citation.Mode
	Sections  []Section
	Footnotes []footnote.Entry
	TOC       []pagination.Entry
}

// Assembler composes documents. It is safe for concurrent use; every call
// owns its footnote sequence.
type Assembler struct {
	labels     Labels
	style      citation.Style
	mode       citation.Mode
	estimator  pagination.Estimator
	normalizer normalize.Pipeline
	footnotes  *footnote.Processor
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithLabels sets the heading labels.
func WithLabels(l Labels) Option {
	return func(a *Assembler) { a.labels = l }
}

// WithStyle sets the citation style of the reference list.
func WithStyle(s citation.Style) Option {
	return func(a *Assembler) { a.style = s }
}

// WithMode records the citation placement mode in the document.
func WithMode(m citation.Mode) Option {
	return func(a *Assembler) { a.mode = m }
}

// WithEstimator sets the pagination estimator used for the TOC.
func WithEstimator(e pagination.Estimator) Option {
	return func(a *Assembler) { a.estimator = e }
}

// WithNormalizer replaces the normalization pipeline.
func WithNormalizer(p normalize.Pipeline) Option {
	return func(a *Assembler) { a.normalizer = p }
}

// WithAnchor sets how footnote anchors are rendered.
func WithAnchor(fn footnote.AnchorFunc) Option {
	return func(a *Assembler) { a.footnotes = footnote.NewProcessor(fn) }
}

// New creates an Assembler with Indonesian labels, APA style and the
// default estimator.
func New(opts ...Option) *Assembler {
	a := &Assembler{
		labels:     Indonesian,
		style:      citation.DefaultStyle,
		mode:       citation.ModeInText,
		estimator:  pagination.Default(),
		normalizer: normalize.Default(),
		footnotes:  footnote.NewProcessor(nil),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Full composes a full document: cover, abstract, table of contents,
// chapters, references and appendices, each after a page break.
func (a *Assembler) Full(in Input) Document {
	return a.compose(in, true)
}

// Section composes a section document without a table of contents.
func (a *Assembler) Section(in Input) Document {
	return a.compose(in, false)
}

// TOC returns the table of contents a full document of in would carry.
func (a *Assembler) TOC(in Input) []pagination.Entry {
	return a.estimator.BuildTOC(a.outline(in))
}

// composition is per-call state.
type composition struct {
	a        *Assembler
	seq      *footnote.Sequence
	notes    []footnote.Entry
	sections []Section
}

func (a *Assembler) compose(in Input, withTOC bool) Document {
	c := &composition{a: a, seq: footnote.NewSequence()}
	doc := Document{Mode: a.mode}

	if in.Cover != nil {
		doc.Title = in.Cover.Title
		cover := *in.Cover
		cover.Faculty = strings.ToUpper(cover.Faculty)
		cover.University = strings.ToUpper(cover.University)
		if cover.DocumentType == "" {
			cover.DocumentType = a.labels.DocumentType
		}
		if cover.By == "" {
			cover.By = a.labels.CoverBy
		}
		c.add(Section{Kind: KindCover, Cover: &cover, Body: c.body(in.Cover.Note)})
	}

	if in.Abstract != nil {
		c.add(Section{Kind: KindAbstract, Heading: []string{a.labels.Abstract}, Body: c.body(*in.Abstract)})
	}

	if withTOC {
		doc.TOC = a.TOC(in)
		c.add(Section{Kind: KindTOC, Heading: []string{a.labels.Contents}, TOC: doc.TOC})
	}

	for i, ch := range in.Chapters {
		n := chapterNumber(ch, i)
		c.add(Section{
			Kind:    KindChapter,
			Heading: []string{a.labels.ChapterNumber(n), a.labels.ChapterTitle(n)},
			Body:    c.body(ch.Body),
		})
	}

	if in.References != nil {
		c.add(Section{
			Kind:    KindReferences,
			Heading: []string{a.labels.References},
			Items:   citation.FormatAll(in.References.Items, a.style),
		})
	}

	if in.Appendix != nil {
		c.appendix(*in.Appendix)
	}

	doc.Sections = c.sections
	doc.Footnotes = c.notes
	return doc
}

// add appends s, breaking the page before every section but the first.
func (c *composition) add(s Section) {
	s.PageBreak = len(c.sections) > 0
	c.sections = append(c.sections, s)
}

// body runs one field through normalization and footnote extraction, then
// wraps unstructured text in paragraphs.
func (c *composition) body(b Block) string {
	text := c.a.normalizer.Apply(b.Text)
	text, notes := c.a.footnotes.Process(text, c.seq)
	c.notes = append(c.notes, notes...)
	if b.Structured {
		return text
	}
	return Paragraphs(text)
}

func (c *composition) appendix(ap Appendix) {
	l := c.a.labels
	parts := []struct {
		heading string
		block   *Block
	}{
		{l.Questionnaire, ap.Questionnaire},
		{l.Grid, ap.Grid},
		{l.PreTest, ap.PreTest},
		{l.PostTest, ap.PostTest},
	}

	var sb strings.Builder
	emitted := false
	for _, p := range parts {
		if p.block == nil {
			continue
		}
		emitted = true
		sb.WriteString("<h3>" + html.EscapeString(p.heading) + "</h3>\n")
		sb.WriteString(c.body(*p.block))
		sb.WriteString("\n")
	}
	if emitted {
		c.add(Section{Kind: KindAppendix, Heading: []string{l.Appendix}, Body: sb.String()})
	}

	if ap.Calculations != nil {
		c.add(Section{Kind: KindAppendix, Heading: []string{l.AppendixData}, Body: c.body(*ap.Calculations)})
	}
}

// PrintedText returns the text of a field as it reads in the document body:
// markdown artifacts normalized and footnote markers removed. Page
// estimates count words of this text.
func (a *Assembler) PrintedText(text string) string {
	return footnote.Strip(a.normalizer.Apply(text))
}

// outline maps the input onto the estimator's section list.
func (a *Assembler) outline(in Input) pagination.Outline {
	o := pagination.Outline{Chapters: make([]pagination.Chapter, 0, len(in.Chapters))}
	for i, ch := range in.Chapters {
		n := chapterNumber(ch, i)
		o.Chapters = append(o.Chapters, pagination.Chapter{
			Title:   a.labels.ChapterNumber(n) + " " + a.labels.ChapterTitle(n),
			Content: a.PrintedText(ch.Body.Text),
		})
	}
	if in.References != nil {
		o.ReferencesTitle = a.labels.References
		o.References = len(in.References.Items)
	}
	if in.Appendix.present() {
		o.Appendix = &pagination.Appendix{Title: a.labels.AppendixTOC}
	}
	return o
}

func (ap *Appendix) present() bool {
	return ap != nil && (ap.Questionnaire != nil || ap.Grid != nil ||
		ap.PreTest != nil || ap.PostTest != nil || ap.Calculations != nil)
}

func chapterNumber(ch Chapter, index int) int {
	if ch.Number > 0 {
		return ch.Number
	}
	return index + 1
}

// Paragraphs splits text on newlines and wraps each non-blank line in <p>.
// Lines that are already block quotations are kept as they are.
func Paragraphs(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, "<blockquote"):
			out = append(out, line)
		default:
			out = append(out, "<p>"+line+"</p>")
		}
	}
	return strings.Join(out, "\n")
}
