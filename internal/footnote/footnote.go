// Package footnote turns inline [[citation]] markers into numbered footnote
// anchors and collects the matching footnote bodies.
//
// Numbering is owned by a Sequence. Create one Sequence per exported file and
// share it across every field of that file; never share it between files.
package footnote

import (
	"fmt"
	"regexp"
	"strings"
)

// Marker delimiters.
const (
	OpenMarker  = "[["
	CloseMarker = "]]"
)

// tagPattern matches one HTML tag. Markers inside a tag, such as in an
// attribute value, are left untouched.
var tagPattern = regexp.MustCompile(`<[/!]?[A-Za-z][^<>]*>`)

// Entry is one footnote derived from an inline marker.
type Entry struct {
	ID   int
	Body string
}

// Sequence hands out footnote numbers starting at 1.
// A Sequence is not safe for concurrent use; each export owns its own.
type Sequence struct {
	next int
}

// NewSequence returns a sequence whose first number is 1.
func NewSequence() *Sequence {
	return &Sequence{next: 1}
}

// Next returns the next footnote number.
func (s *Sequence) Next() int {
	if s.next < 1 {
		s.next = 1
	}
	n := s.next
	s.next++
	return n
}

// Count returns how many numbers have been handed out.
func (s *Sequence) Count() int {
	if s.next < 1 {
		return 0
	}
	return s.next - 1
}

// AnchorFunc renders the visible reference for footnote id.
type AnchorFunc func(id int) string

// WordAnchor renders a footnote reference understood by Word's HTML import.
// The anchor links to the list entry written by the print document writer.
func WordAnchor(id int) string {
	return fmt.Sprintf(
		`<a style='mso-footnote-id:ftn%d' href="#_ftn%d" name="_ftnref%d" title=""><span class=MsoFootnoteReference>[%d]</span></a>`,
		id, id, id, id,
	)
}

// Processor replaces markers with anchors.
type Processor struct {
	anchor AnchorFunc
}

// NewProcessor creates a Processor. A nil anchor uses WordAnchor.
func NewProcessor(anchor AnchorFunc) *Processor {
	if anchor == nil {
		anchor = WordAnchor
	}
	return &Processor{anchor: anchor}
}

// Process scans content left to right, replacing each complete marker with
// the anchor for the next number in seq. It returns the rewritten content
// and the footnotes in encounter order. Repeated citations are numbered
// again. A marker with empty text still consumes a number.
//
// A marker must close on the same line. An opening delimiter without a close
// is kept as literal text.
func (p *Processor) Process(content string, seq *Sequence) (string, []Entry) {
	if !strings.Contains(content, OpenMarker) {
		return content, nil
	}

	var (
		out     strings.Builder
		entries []Entry
		tags    = tagPattern.FindAllStringIndex(content, -1)
		pos     int
	)
	out.Grow(len(content))

	for {
		rel := strings.Index(content[pos:], OpenMarker)
		if rel == -1 {
			out.WriteString(content[pos:])
			break
		}
		start := pos + rel

		if tagEnd, ok := enclosingTag(tags, start); ok {
			out.WriteString(content[pos:tagEnd])
			pos = tagEnd
			continue
		}

		bodyStart := start + len(OpenMarker)
		end := closingIndex(content[bodyStart:])
		if end == -1 {
			// Unterminated on this line: keep the opener and move past it.
			out.WriteString(content[pos:bodyStart])
			pos = bodyStart
			continue
		}

		body := content[bodyStart : bodyStart+end]
		id := seq.Next()
		entries = append(entries, Entry{ID: id, Body: strings.TrimSpace(body)})

		out.WriteString(content[pos:start])
		out.WriteString(p.anchor(id))
		pos = bodyStart + end + len(CloseMarker)
	}

	return out.String(), entries
}

// enclosingTag returns the end offset of the tag span containing i.
// spans are sorted and do not overlap.
func enclosingTag(spans [][]int, i int) (int, bool) {
	for _, sp := range spans {
		if sp[0] > i {
			break
		}
		if i < sp[1] {
			return sp[1], true
		}
	}
	return 0, false
}

// closingIndex returns the index of the first CloseMarker in s that comes
// before any newline, or -1.
func closingIndex(s string) int {
	line := s
	if nl := strings.IndexByte(s, '\n'); nl != -1 {
		line = s[:nl]
	}
	return strings.Index(line, CloseMarker)
}

// Process runs a default Processor with a fresh sequence. It is meant for
// single-field use; documents with several fields share one Sequence.
func Process(content string) (string, []Entry) {
	return NewProcessor(nil).Process(content, NewSequence())
}

// Strip removes every complete marker from content, leaving the body text
// that is actually printed in place.
func Strip(content string) string {
	out, _ := NewProcessor(func(int) string { return "" }).Process(content, NewSequence())
	return out
}
