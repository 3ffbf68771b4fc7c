package assemble

import "strings"

// Labels holds the fixed headings of a document in one language.
type Labels struct {
	ChapterPrefix string
	ChapterTitles []string

	Abstract     string
	Contents     string
	References   string
	DocumentType string
	CoverBy      string

	// Appendix headings. AppendixTOC is the table-of-contents line.
	Appendix      string
	AppendixTOC   string
	AppendixData  string
	Questionnaire string
	Grid          string
	PreTest       string
	PostTest      string
}

// Indonesian is the default label set.
var Indonesian = Labels{
	ChapterPrefix: "BAB",
	ChapterTitles: []string{
		"PENDAHULUAN",
		"TINJAUAN PUSTAKA",
		"METODOLOGI PENELITIAN",
		"HASIL DAN PEMBAHASAN",
		"PENUTUP",
	},
	Abstract:      "ABSTRAK",
	Contents:      "DAFTAR ISI",
	References:    "DAFTAR PUSTAKA",
	DocumentType:  "PROPOSAL PENELITIAN",
	CoverBy:       "Oleh:",
	Appendix:      "LAMPIRAN: INSTRUMEN PENELITIAN",
	AppendixTOC:   "LAMPIRAN",
	AppendixData:  "LAMPIRAN: DATA DAN PERHITUNGAN",
	Questionnaire: "Kisi-kisi dan Kuesioner",
	Grid:          "Kisi-kisi Instrumen",
	PreTest:       "Soal Pre-test",
	PostTest:      "Soal Post-test",
}

// English labels.
var English = Labels{
	ChapterPrefix: "CHAPTER",
	ChapterTitles: []string{
		"INTRODUCTION",
		"LITERATURE REVIEW",
		"RESEARCH METHODOLOGY",
		"RESULTS AND DISCUSSION",
		"CONCLUSION",
	},
	Abstract:      "ABSTRACT",
	Contents:      "TABLE OF CONTENTS",
	References:    "REFERENCES",
	DocumentType:  "RESEARCH PROPOSAL",
	CoverBy:       "By:",
	Appendix:      "APPENDIX: RESEARCH INSTRUMENTS",
	AppendixTOC:   "APPENDICES",
	AppendixData:  "APPENDIX: DATA AND CALCULATIONS",
	Questionnaire: "Instrument Grid and Questionnaire",
	Grid:          "Instrument Grid",
	PreTest:       "Pre-test Items",
	PostTest:      "Post-test Items",
}

// LabelsFor returns the label set for a language code or name.
// English is selected by "en" or "english"; everything else is Indonesian.
func LabelsFor(lang string) Labels {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "en", "english", "inggris":
		return English
	default:
		return Indonesian
	}
}

// ChapterTitle returns the title of chapter n (1-based), or "".
func (l Labels) ChapterTitle(n int) string {
	if n < 1 || n > len(l.ChapterTitles) {
		return ""
	}
	return l.ChapterTitles[n-1]
}

// ChapterNumber returns the heading line "BAB III".
func (l Labels) ChapterNumber(n int) string {
	return l.ChapterPrefix + " " + Roman(n)
}

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Roman formats n as an upper-case Roman numeral. Values below 1 are
// formatted as "0".
func Roman(n int) string {
	if n < 1 {
		return "0"
	}
	var sb strings.Builder
	for _, r := range romanTable {
		for n >= r.value {
			sb.WriteString(r.symbol)
			n -= r.value
		}
	}
	return sb.String()
}
