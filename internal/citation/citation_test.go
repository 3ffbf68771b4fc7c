package citation

import (
	"strings"
	"testing"
)

var sugiyono = Reference{
	Kind:      KindBook,
	Author:    "Sugiyono",
	Year:      "2019",
	Title:     "Metode Penelitian",
	City:      "Bandung",
	Publisher: "Alfabeta",
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		style    Style
		expected string
	}{
		{"APA", APA, "Sugiyono (2019). <i>Metode Penelitian</i>. Alfabeta."},
		{"MLA", MLA, "Sugiyono. <i>Metode Penelitian</i>. Alfabeta, 2019."},
		{"Chicago", Chicago, "Sugiyono. <i>Metode Penelitian</i>. Bandung: Alfabeta, 2019."},
		{"Harvard", Harvard, "Sugiyono (2019) <i>Metode Penelitian</i>. Bandung: Alfabeta."},
		{"unknown falls back to APA", Style("Vancouver"), "Sugiyono (2019). <i>Metode Penelitian</i>. Alfabeta."},
		{"empty falls back to APA", Style(""), "Sugiyono (2019). <i>Metode Penelitian</i>. Alfabeta."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Format(sugiyono, tt.style)
			if got != tt.expected {
				t.Errorf("Format(%q) = %q, want %q", tt.style, got, tt.expected)
			}
		})
	}
}

func TestFormat_TitleAlwaysItalic(t *testing.T) {
	t.Parallel()

	refs := []Reference{
		sugiyono,
		{},
		{Kind: KindWebsite, Title: "Data BPS"},
		{Author: "A & B", Title: "<script>"},
	}
	for _, style := range append(Styles(), Style("x")) {
		for _, ref := range refs {
			got := Format(ref, style)
			want := "<i>" + escaped(ref).title + "</i>"
			if !strings.Contains(got, want) {
				t.Errorf("Format(%+v, %q) = %q, missing %q", ref, style, got, want)
			}
		}
	}
}

func TestFormat_EscapesFields(t *testing.T) {
	t.Parallel()

	got := Format(Reference{Author: "Smith & Sons", Title: "a<b", Publisher: `"P"`}, APA)
	want := "Smith &amp; Sons (). <i>a&lt;b</i>. &#34;P&#34;."
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormat_EmptyReference(t *testing.T) {
	t.Parallel()

	if got := Format(Reference{}, Chicago); got != ". <i></i>. : , ." {
		t.Errorf("Format() = %q", got)
	}
}

func TestFormatAll(t *testing.T) {
	t.Parallel()

	if got := FormatAll(nil, APA); got != nil {
		t.Errorf("FormatAll(nil) = %v, want nil", got)
	}

	got := FormatAll([]Reference{sugiyono, sugiyono}, MLA)
	if len(got) != 2 || got[0] != got[1] || !strings.HasSuffix(got[0], "2019.") {
		t.Errorf("FormatAll() = %v", got)
	}
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Style
	}{
		{"APA", APA},
		{"apa", APA},
		{"APA (7th Edition)", APA},
		{"MLA (9th Edition)", MLA},
		{"  mla", MLA},
		{"Chicago", Chicago},
		{"chicago manual", Chicago},
		{"HARVARD", Harvard},
		{"", APA},
		{"IEEE", APA},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := ParseStyle(tt.input); got != tt.expected {
				t.Errorf("ParseStyle(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLookupStyle(t *testing.T) {
	t.Parallel()

	if st, ok := LookupStyle("Harvard (18th)"); !ok || st != Harvard {
		t.Errorf("LookupStyle(Harvard) = %q, %v", st, ok)
	}
	for _, in := range []string{"", "IEEE", "vancouver"} {
		if st, ok := LookupStyle(in); ok {
			t.Errorf("LookupStyle(%q) = %q, true; want not found", in, st)
		}
	}
}

func TestStyle_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range Styles() {
		if !s.Valid() {
			t.Errorf("%q.Valid() = false", s)
		}
	}
	if Style("apa").Valid() {
		t.Error(`Style("apa").Valid() = true, want false`)
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Mode
	}{
		{"footnote", ModeFootnote},
		{"Footnote / Catatan Kaki", ModeFootnote},
		{"catatan kaki", ModeFootnote},
		{"in-text", ModeInText},
		{"In-Note / Body Note (Nama, Tahun)", ModeInText},
		{"", ModeInText},
	}

	for _, tt := range tests {
		if got := ParseMode(tt.input); got != tt.expected {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Kind
	}{
		{"BOOK", KindBook},
		{"book", KindBook},
		{"Buku", KindBook},
		{"JOURNAL", KindJournal},
		{"thesis", KindThesis},
		{"Skripsi", KindThesis},
		{"proceeding", KindProceeding},
		{"report", KindReport},
		{"website", KindWebsite},
		{" Website ", KindWebsite},
		{"", KindJournal},
		{"magazine", KindJournal},
	}

	for _, tt := range tests {
		if got := ParseKind(tt.input); got != tt.expected {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
