// Package normalize rewrites markdown artifacts left by free-text generation
// into the small markup subset the print document understands: bold, italic,
// line breaks and block quotations.
//
// Rules run in a fixed order. Each rule is a pure string -> string function
// and can be applied on its own.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// Rule rewrites one kind of markdown artifact.
type Rule func(string) string

// Tag placeholders use Unicode Private Use Area characters. HTML tags are
// swapped for placeholders before the rules run so that underscores and
// asterisks inside attributes (class names, URLs) are never read as emphasis.
// Standalone runs of three or more asterisks (horizontal rule artifacts) are
// shielded the same way. Placeholder runes already present in the input are
// dropped first.
const (
	tagStartPlaceholder = "\uE002"
	tagEndPlaceholder   = "\uE003"
)

// Precompiled regex patterns.
var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	blockQuotePattern  = regexp.MustCompile(`(?m)^> (.*)$`)
	boldPattern        = regexp.MustCompile(`\*\*(.+?)\*\*`)
	starItalicPattern  = regexp.MustCompile(`\*(.+?)\*`)
	underItalicPattern = regexp.MustCompile(`_(.+?)_`)
	headingHashPattern = regexp.MustCompile(`(?m)^#+[ \t]+(.*)$`)
	htmlTagPattern     = regexp.MustCompile(`<[/!]?[A-Za-z][^<>]*>`)
	placeholderPattern = regexp.MustCompile(tagStartPlaceholder + `(\d+)` + tagEndPlaceholder)
	asteriskRunPattern = regexp.MustCompile(`\*{3,}`)
)

var placeholderStripper = strings.NewReplacer(tagStartPlaceholder, "", tagEndPlaceholder, "")

// BlockQuotes turns lines starting with "> " into <blockquote> elements.
func BlockQuotes(s string) string {
	return blockQuotePattern.ReplaceAllString(s, "<blockquote>$1</blockquote>")
}

// Bold turns **text** into <b>text</b>.
func Bold(s string) string {
	return boldPattern.ReplaceAllString(s, "<b>$1</b>")
}

// Italic turns *text* and _text_ into <i>text</i>.
func Italic(s string) string {
	s = starItalicPattern.ReplaceAllString(s, "<i>$1</i>")
	return underItalicPattern.ReplaceAllString(s, "<i>$1</i>")
}

// HeadingHashes strips leading "#" runs, leaving the heading text.
func HeadingHashes(s string) string {
	return headingHashPattern.ReplaceAllString(s, "$1")
}

// CodeFences deletes triple-backtick markers.
func CodeFences(s string) string {
	return strings.ReplaceAll(s, "```", "")
}

// Pipeline is an ordered list of rules.
type Pipeline []Rule

// Default returns the standard rule order. Block quotes come first so the
// later rules only ever see the quoted text, never the "> " prefix.
func Default() Pipeline {
	return Pipeline{BlockQuotes, Bold, Italic, HeadingHashes, CodeFences}
}

// Apply runs every rule in order over s. Existing HTML tags are shielded
// from the rules and restored afterwards.
func (p Pipeline) Apply(s string) string {
	if s == "" {
		return ""
	}
	masked, tags := maskTags(crlfOrCR.ReplaceAllString(s, "\n"))
	for _, rule := range p {
		masked = rule(masked)
	}
	return unmaskTags(masked, tags)
}

// Normalize applies the default pipeline.
func Normalize(s string) string {
	return Default().Apply(s)
}

// maskTags replaces every HTML tag and every standalone asterisk run with
// an indexed placeholder.
func maskTags(s string) (string, []string) {
	var tags []string
	placeholder := func(literal string) string {
		tags = append(tags, literal)
		return tagStartPlaceholder + strconv.Itoa(len(tags)-1) + tagEndPlaceholder
	}

	masked := htmlTagPattern.ReplaceAllStringFunc(placeholderStripper.Replace(s), placeholder)
	if !strings.Contains(masked, "***") {
		return masked, tags
	}

	var sb strings.Builder
	last := 0
	for _, loc := range asteriskRunPattern.FindAllStringIndex(masked, -1) {
		if !standalone(masked, loc[0], loc[1]) {
			continue
		}
		sb.WriteString(masked[last:loc[0]])
		sb.WriteString(placeholder(masked[loc[0]:loc[1]]))
		last = loc[1]
	}
	sb.WriteString(masked[last:])
	return sb.String(), tags
}

// standalone reports whether s[start:end] is bounded by whitespace or the
// ends of s.
func standalone(s string, start, end int) bool {
	before := start == 0 || isSpace(s[start-1])
	after := end == len(s) || isSpace(s[end])
	return before && after
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n'
}

// unmaskTags restores tags hidden by maskTags.
func unmaskTags(s string, tags []string) string {
	if len(tags) == 0 {
		return s
	}
	return placeholderPattern.ReplaceAllStringFunc(s, func(m string) string {
		idx, err := strconv.Atoi(m[len(tagStartPlaceholder) : len(m)-len(tagEndPlaceholder)])
		if err != nil || idx < 0 || idx >= len(tags) {
			return m
		}
		return tags[idx]
	})
}
