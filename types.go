package scholardraft

import (
	"fmt"
	"strings"

	"github.com/alnah/go-scholardraft/internal/citation"
	"github.com/alnah/go-scholardraft/internal/msword"
	"github.com/alnah/go-scholardraft/internal/pagination"
	"github.com/alnah/go-scholardraft/internal/ris"
)

// Reference is one bibliographic record.
type Reference = citation.Reference

// Kind classifies a Reference.
type Kind = citation.Kind

// Reference kinds.
const (
	KindBook       = citation.KindBook
	KindJournal    = citation.KindJournal
	KindThesis     = citation.KindThesis
	KindProceeding = citation.KindProceeding
	KindReport     = citation.KindReport
	KindWebsite    = citation.KindWebsite
)

// Style is a citation style.
type Style = citation.Style

// Citation styles.
const (
	APA     = citation.APA
	MLA     = citation.MLA
	Chicago = citation.Chicago
	Harvard = citation.Harvard
)

// Mode is the citation placement mode.
type Mode = citation.Mode

// Citation placement modes.
const (
	ModeInText   = citation.ModeInText
	ModeFootnote = citation.ModeFootnote
)

// TOCEntry is one table-of-contents line with its estimated start page.
type TOCEntry = pagination.Entry

// LengthRow compares a chapter's page target with its estimate.
type LengthRow = pagination.LengthRow

// ChapterCount is the number of body chapters in a draft.
const ChapterCount = 5

// GeneratedContent is the document payload produced upstream. An empty
// string means the field was not generated.
type GeneratedContent struct {
	Cover    string `json:"cover" yaml:"cover"`
	Abstract string `json:"abstract" yaml:"abstract"`
	Chapter1 string `json:"chapter1" yaml:"chapter1"`
	Chapter2 string `json:"chapter2" yaml:"chapter2"`
	Chapter3 string `json:"chapter3" yaml:"chapter3"`
	Chapter4 string `json:"chapter4" yaml:"chapter4"`
	Chapter5 string `json:"chapter5" yaml:"chapter5"`

	References []Reference `json:"references" yaml:"references"`

	Questionnaire  string `json:"questionnaire" yaml:"questionnaire"`
	InstrumentGrid string `json:"instrumentGrid" yaml:"instrumentGrid"`
	PreTest        string `json:"preTest" yaml:"preTest"`
	PostTest       string `json:"postTest" yaml:"postTest"`
	Calculations   string `json:"calculations" yaml:"calculations"`
}

// Chapter returns the body of chapter n (1-based), or "".
func (g *GeneratedContent) Chapter(n int) string {
	switch n {
	case 1:
		return g.Chapter1
	case 2:
		return g.Chapter2
	case 3:
		return g.Chapter3
	case 4:
		return g.Chapter4
	case 5:
		return g.Chapter5
	}
	return ""
}

// ChapterPages holds the requested page count per chapter.
type ChapterPages struct {
	C1 int `json:"c1" yaml:"c1"`
	C2 int `json:"c2" yaml:"c2"`
	C3 int `json:"c3" yaml:"c3"`
	C4 int `json:"c4" yaml:"c4"`
	C5 int `json:"c5" yaml:"c5"`
}

// Target returns the page target of chapter n (1-based), or 0.
func (p ChapterPages) Target(n int) int {
	switch n {
	case 1:
		return p.C1
	case 2:
		return p.C2
	case 3:
		return p.C3
	case 4:
		return p.C4
	case 5:
		return p.C5
	}
	return 0
}

// ExportConfig holds the user settings relevant to export. The exporter
// never mutates it.
type ExportConfig struct {
	Title        string `json:"title" yaml:"title"`
	DocumentType string `json:"documentType" yaml:"documentType"`
	StudentName  string `json:"studentName" yaml:"studentName"`
	Faculty      string `json:"faculty" yaml:"faculty"`
	University   string `json:"university" yaml:"university"`
	// Year printed on the cover. Empty uses the current year.
	Year string `json:"year" yaml:"year"`

	// Style and Mode accept free-form labels such as "APA (7th Edition)".
	Style Style `json:"citationStyle" yaml:"citationStyle"`
	Mode  Mode  `json:"citationFormat" yaml:"citationFormat"`

	ChapterPages ChapterPages `json:"chapterPages" yaml:"chapterPages"`

	// Language selects heading labels: "id" (default) or "en".
	Language string `json:"language" yaml:"language"`
}

// Section names an exportable part of the document.
type Section string

// Sections.
const (
	SectionFull       Section = "full"
	SectionCover      Section = "cover"
	SectionChapter1   Section = "chapter1"
	SectionChapter2   Section = "chapter2"
	SectionChapter3   Section = "chapter3"
	SectionChapter4   Section = "chapter4"
	SectionChapter5   Section = "chapter5"
	SectionReferences Section = "references"
	SectionAppendix   Section = "appendix"
)

// Sections lists every exportable section, full document first.
func Sections() []Section {
	return []Section{
		SectionFull, SectionCover,
		SectionChapter1, SectionChapter2, SectionChapter3, SectionChapter4, SectionChapter5,
		SectionReferences, SectionAppendix,
	}
}

// ParseSection resolves a section name. Matching is case insensitive and
// accepts "bab1" and "chapter-1" style spellings for chapters.
func ParseSection(s string) (Section, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
	if strings.HasPrefix(name, "bab") {
		name = "chapter" + strings.TrimPrefix(name, "bab")
	}
	switch name {
	case "lampiran", "appendices":
		name = string(SectionAppendix)
	case "daftarpustaka", "bibliography":
		name = string(SectionReferences)
	}
	for _, sec := range Sections() {
		if name == string(sec) {
			return sec, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// ChapterNumber returns n for SectionChapterN, otherwise 0.
func (s Section) ChapterNumber() int {
	if !strings.HasPrefix(string(s), "chapter") || len(s) != len("chapter")+1 {
		return 0
	}
	n := int(s[len(s)-1] - '0')
	if n < 1 || n > ChapterCount {
		return 0
	}
	return n
}

// fileBase is the file name stem of an exported section.
func (s Section) fileBase() string {
	if n := s.ChapterNumber(); n > 0 {
		return fmt.Sprintf("Bab_%d", n)
	}
	switch s {
	case SectionFull:
		return "Full_Draft"
	case SectionCover:
		return "Cover_Abstrak"
	case SectionReferences:
		return "Daftar_Pustaka"
	case SectionAppendix:
		return "Lampiran"
	}
	return string(s)
}

// Format is an output file format.
type Format string

// Output formats.
const (
	FormatDOC  Format = "doc"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// DefaultFormat is the word-processor document.
const DefaultFormat = FormatDOC

// Formats lists the supported output formats.
func Formats() []Format {
	return []Format{FormatDOC, FormatHTML, FormatPDF}
}

// ParseFormat resolves a format name (case insensitive, leading dot
// allowed). Empty selects DefaultFormat.
func ParseFormat(s string) (Format, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	if name == "" {
		return DefaultFormat, nil
	}
	for _, f := range Formats() {
		if name == string(f) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	return string(f)
}

// ContentType returns the media type of files in this format.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	default:
		return msword.ContentType
	}
}

// BibliographyFileName is the fixed name of the RIS export.
const BibliographyFileName = "referensi_scholardraft.ris"

// BibliographyContentType is the media type of the RIS export.
const BibliographyContentType = ris.ContentType

// File is one exported artifact.
type File struct {
	Name        string
	ContentType string
	Data        []byte

	Section Section
	// Footnotes is the number of footnotes collected in this file.
	Footnotes int
	// TOC is set for full documents.
	TOC []TOCEntry
}

// Outline is the estimated table of contents plus the per-chapter length
// report.
type Outline struct {
	TOC      []TOCEntry  `json:"toc" yaml:"toc"`
	Chapters []LengthRow `json:"chapters" yaml:"chapters"`
}
