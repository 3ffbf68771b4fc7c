// Package markup inspects the small HTML subset that flows through the
// document pipeline. It collapses markup to plain text for word counting
// and detects pre-structured block content.
package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// inline elements do not separate words.
var inline = map[atom.Atom]bool{
	atom.A:      true,
	atom.B:      true,
	atom.I:      true,
	atom.Em:     true,
	atom.Strong: true,
	atom.Span:   true,
	atom.Sup:    true,
	atom.Sub:    true,
	atom.U:      true,
	atom.Small:  true,
}

// structural elements carry their own block layout.
var structural = map[atom.Atom]bool{
	atom.Table: true,
	atom.Ol:    true,
	atom.Ul:    true,
}

// PlainText strips tags and comments from s and decodes entities.
// Block-level tags and line breaks become spaces so adjacent cells or
// paragraphs never merge into one word.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			sb.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if !inline[atom.Lookup(name)] {
				sb.WriteByte(' ')
			}
		}
	}
}

// WordCount counts whitespace-separated words in the plain text of s.
func WordCount(s string) int {
	return len(strings.Fields(PlainText(s)))
}

// IsStructured reports whether s contains a real table or list element.
// Such content is already laid out as HTML blocks and must not be split
// into paragraphs. The word "table" in prose does not count.
func IsStructured(s string) bool {
	if !strings.Contains(s, "<") {
		return false
	}

	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if structural[atom.Lookup(name)] {
				return true
			}
		}
	}
}
