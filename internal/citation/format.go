// Package citation renders bibliographic references under the supported
// citation styles and parses style, mode and kind labels.
//
// Formatting is pure. Reference fields are HTML-escaped; the title is
// always wrapped in <i>. Missing fields render as empty segments.
package citation

import "html"

// Formatter renders one reference as display markup.
type Formatter interface {
	Format(ref Reference) string
}

// Compile-time interface checks.
var (
	_ Formatter = apaFormatter{}
	_ Formatter = mlaFormatter{}
	_ Formatter = chicagoFormatter{}
	_ Formatter = harvardFormatter{}
)

// fields holds escaped reference fields.
type fields struct {
	author, year, title, city, publisher string
}

func escaped(ref Reference) fields {
	return fields{
		author:    html.EscapeString(ref.Author),
		year:      html.EscapeString(ref.Year),
		title:     html.EscapeString(ref.Title),
		city:      html.EscapeString(ref.City),
		publisher: html.EscapeString(ref.Publisher),
	}
}

// apaFormatter: Author (Year). <i>Title</i>. Publisher.
type apaFormatter struct{}

func (apaFormatter) Format(ref Reference) string {
	f := escaped(ref)
	return f.author + " (" + f.year + "). <i>" + f.title + "</i>. " + f.publisher + "."
}

// mlaFormatter: Author. <i>Title</i>. Publisher, Year.
type mlaFormatter struct{}

func (mlaFormatter) Format(ref Reference) string {
	f := escaped(ref)
	return f.author + ". <i>" + f.title + "</i>. " + f.publisher + ", " + f.year + "."
}

// chicagoFormatter: Author. <i>Title</i>. City: Publisher, Year.
type chicagoFormatter struct{}

func (chicagoFormatter) Format(ref Reference) string {
	f := escaped(ref)
	return f.author + ". <i>" + f.title + "</i>. " + f.city + ": " + f.publisher + ", " + f.year + "."
}

// harvardFormatter: Author (Year) <i>Title</i>. City: Publisher.
type harvardFormatter struct{}

func (harvardFormatter) Format(ref Reference) string {
	f := escaped(ref)
	return f.author + " (" + f.year + ") <i>" + f.title + "</i>. " + f.city + ": " + f.publisher + "."
}

// For returns the formatter for style. Unknown styles get the APA formatter.
func For(style Style) Formatter {
	switch style {
	case MLA:
		return mlaFormatter{}
	case Chicago:
		return chicagoFormatter{}
	case Harvard:
		return harvardFormatter{}
	default:
		return apaFormatter{}
	}
}

// Format renders ref under style.
func Format(ref Reference, style Style) string {
	return For(style).Format(ref)
}

// FormatAll renders every reference in order.
func FormatAll(refs []Reference, style Style) []string {
	if len(refs) == 0 {
		return nil
	}
	f := For(style)
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = f.Format(ref)
	}
	return out
}
