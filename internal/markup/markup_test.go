package markup

import "testing"

func TestPlainTextWordCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		words int
	}{
		{"empty", "", 0},
		{"whitespace", " \n\t ", 0},
		{"plain", "satu dua tiga", 3},
		{"inline tags keep words whole", "<b>peng</b>ujian <i>data</i>", 2},
		{"paragraphs separate words", "<p>satu</p><p>dua</p>", 2},
		{"table cells separate words", "<table><tr><td>a</td><td>b</td></tr></table>", 2},
		{"line break separates words", "satu<br/>dua", 2},
		{"entities decoded", "A &amp; B", 3},
		{"comment ignored", "a <!-- catatan panjang --> b", 2},
		{"tag only", "<p></p>", 0},
		{"comparison in prose", "p < 0,05 dan r > 0,3", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := WordCount(tt.input); got != tt.words {
				t.Errorf("WordCount(%q) = %d, want %d (plain %q)", tt.input, got, tt.words, PlainText(tt.input))
			}
		})
	}
}

func TestIsStructured(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"plain prose", "Hasil penelitian disajikan di bawah.", false},
		{"word table in prose", "The table below shows results.", false},
		{"escaped table tag", "&lt;table&gt; is an element", false},
		{"table element", "<table><tr><td>1</td></tr></table>", true},
		{"table with attributes", `<TABLE border="1"><tr><td>x</td></tr></TABLE>`, true},
		{"list element", "<ol><li>satu</li></ol>", true},
		{"paragraph only", "<p>teks</p>", false},
		{"table after text", "Tabel 4.1\n<table></table>", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsStructured(tt.input); got != tt.expected {
				t.Errorf("IsStructured(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
