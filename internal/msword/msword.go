// Package msword renders an assembled document as the HTML+XML hybrid that
// legacy word processors open as a paginated document.
//
// The output carries the print style sheet, a Section1 page definition with
// a PAGE-field footer, the composed sections, and a footnote list linked to
// the body anchors by id.
package msword

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/alnah/go-scholardraft/internal/assemble"
	"github.com/alnah/go-scholardraft/internal/assets"
	"github.com/alnah/go-scholardraft/internal/pagination"
)

// ContentType is the media type of the print document.
const ContentType = "application/msword"

// BOM marks the file as UTF-8 for word processors.
const BOM = "\ufeff"

// ErrRender indicates a template failure while writing the document.
var ErrRender = errors.New("document template rendering failed")

// Writer renders documents with one parsed template set and style sheet.
// It is safe for concurrent use.
type Writer struct {
	tmpl *template.Template
	css  template.CSS
}

// NewWriter parses the template set. css is embedded verbatim in the
// document head.
func NewWriter(ts *assets.TemplateSet, css string) (*Writer, error) {
	if ts == nil {
		return nil, fmt.Errorf("%w: nil template set", ErrRender)
	}

	tmpl, err := template.New("document").Parse(ts.Document)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrRender, assets.DocumentFile, err)
	}
	if _, err := tmpl.New("cover").Parse(ts.Cover); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrRender, assets.CoverFile, err)
	}
	if _, err := tmpl.New("contents").Parse(ts.Contents); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrRender, assets.ContentsFile, err)
	}

	return &Writer{
		tmpl: tmpl,
		css:  template.CSS(css), // #nosec G203 -- style sheet comes from the asset loader
	}, nil
}

// Options control the byte-level envelope.
type Options struct {
	// BOM prefixes the output with a UTF-8 byte order mark.
	BOM bool
}

// Write renders doc to w.
func (wr *Writer) Write(w io.Writer, doc assemble.Document, opts Options) error {
	var buf bytes.Buffer
	if opts.BOM {
		buf.WriteString(BOM)
	}
	if err := wr.tmpl.ExecuteTemplate(&buf, "document", wr.view(doc)); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Render returns the rendered document.
func (wr *Writer) Render(doc assemble.Document, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := wr.Write(&buf, doc, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// documentView is the template data. Composed bodies are trusted markup.
type documentView struct {
	Title     string
	Mode      string
	CSS       template.CSS
	Sections  []sectionView
	Footnotes []footnoteView
}

type sectionView struct {
	Kind      string
	PageBreak bool
	Heading   []string
	Body      template.HTML
	Cover     *coverView
	TOC       []pagination.Entry
	Items     []template.HTML
}

type coverView struct {
	Title        string
	DocumentType string
	By           string
	StudentName  string
	Faculty      string
	University   string
	Year         string
	Note         template.HTML
}

type footnoteView struct {
	ID   int
	Body template.HTML
}

// view converts the assembled document into template data.
// #nosec G203 -- bodies are composed markup, not user-supplied templates.
func (wr *Writer) view(doc assemble.Document) documentView {
	v := documentView{
		Title:    doc.Title,
		Mode:     string(doc.Mode),
		CSS:      wr.css,
		Sections: make([]sectionView, len(doc.Sections)),
	}

	for i, s := range doc.Sections {
		sv := sectionView{
			Kind:      string(s.Kind),
			PageBreak: s.PageBreak,
			Heading:   s.Heading,
			TOC:       s.TOC,
		}
		if s.Cover != nil {
			sv.Cover = toCoverView(s.Cover, s.Body)
		} else {
			sv.Body = template.HTML(s.Body)
		}
		if len(s.Items) > 0 {
			sv.Items = make([]template.HTML, len(s.Items))
			for j, item := range s.Items {
				sv.Items[j] = template.HTML(item)
			}
		}
		v.Sections[i] = sv
	}

	if len(doc.Footnotes) > 0 {
		v.Footnotes = make([]footnoteView, len(doc.Footnotes))
		for i, fn := range doc.Footnotes {
			v.Footnotes[i] = footnoteView{ID: fn.ID, Body: template.HTML(fn.Body)}
		}
	}

	return v
}

func toCoverView(c *assemble.Cover, note string) *coverView {
	return &coverView{
		Title:        c.Title,
		DocumentType: c.DocumentType,
		By:           c.By,
		StudentName:  c.StudentName,
		Faculty:      c.Faculty,
		University:   c.University,
		Year:         c.Year,
		Note:         template.HTML(note),
	}
}
