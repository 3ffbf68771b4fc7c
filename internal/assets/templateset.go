package assets

// TemplateSet holds the html/template sources that render a print document.
type TemplateSet struct {
	Name     string // Identifier (name or directory path)
	Document string // Page wrapper: head, style sheet, sections, footnotes, footer
	Cover    string // Cover block
	Contents string // Table of contents block
}

// Template file names inside a set directory.
const (
	DocumentFile = "document.html"
	CoverFile    = "cover.html"
	ContentsFile = "contents.html"
)

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// DefaultStyleName is the name of the built-in style sheet.
const DefaultStyleName = "academic"
