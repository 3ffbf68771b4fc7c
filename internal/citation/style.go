package citation

import "strings"

// Style is a bibliographic formatting convention.
type Style string

// Supported styles.
const (
	APA     Style = "APA"
	MLA     Style = "MLA"
	Chicago Style = "Chicago"
	Harvard Style = "Harvard"
)

// DefaultStyle is used for unrecognized style values.
const DefaultStyle = APA

// Styles lists the supported styles in display order.
func Styles() []Style {
	return []Style{APA, MLA, Chicago, Harvard}
}

// ParseStyle resolves a style label such as "apa", "APA (7th Edition)" or
// "Harvard". Matching is a case-insensitive prefix match on the style name.
// Unknown labels resolve to DefaultStyle.
func ParseStyle(s string) Style {
	if st, ok := LookupStyle(s); ok {
		return st
	}
	return DefaultStyle
}

// LookupStyle is ParseStyle without the fallback: ok is false when the
// label names no supported style.
func LookupStyle(s string) (Style, bool) {
	label := strings.ToLower(strings.TrimSpace(s))
	for _, st := range Styles() {
		if strings.HasPrefix(label, strings.ToLower(string(st))) {
			return st, true
		}
	}
	return "", false
}

// Valid reports whether s is one of the supported styles.
func (s Style) Valid() bool {
	switch s {
	case APA, MLA, Chicago, Harvard:
		return true
	}
	return false
}

// Mode is where citations are placed in the body text.
type Mode string

// Citation placement modes.
const (
	ModeInText   Mode = "in-text"
	ModeFootnote Mode = "footnote"
)

// ParseMode resolves a placement mode label. Labels mentioning footnotes
// ("footnote", "Footnote / Catatan Kaki") resolve to ModeFootnote; anything
// else resolves to ModeInText.
func ParseMode(s string) Mode {
	label := strings.ToLower(s)
	if strings.Contains(label, "foot") || strings.Contains(label, "catatan kaki") {
		return ModeFootnote
	}
	return ModeInText
}
