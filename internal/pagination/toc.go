package pagination

import "github.com/alnah/go-scholardraft/internal/markup"

// Chapter is one body chapter as seen by the estimator.
type Chapter struct {
	Title   string
	Content string
	// Target is the requested page count. It never influences the TOC.
	Target int
}

// Appendix is an optional trailing section.
type Appendix struct {
	Title   string
	Content string
}

// Outline is the ordered section list the TOC is built from.
type Outline struct {
	Chapters        []Chapter
	ReferencesTitle string
	References      int
	Appendix        *Appendix
}

// Entry is one table-of-contents line.
type Entry struct {
	Title string `json:"title" yaml:"title"`
	Page  int    `json:"page" yaml:"page"`
}

// BuildTOC walks the outline in print order and returns one entry per
// section with its estimated starting page. The counter starts at page 1
// and skips the front matter allowance before the first chapter.
func (e Estimator) BuildTOC(o Outline) []Entry {
	entries := make([]Entry, 0, len(o.Chapters)+2)
	page := 1 + e.frontMatterPages

	for _, ch := range o.Chapters {
		entries = append(entries, Entry{Title: ch.Title, Page: page})
		page += e.Pages(ch.Content)
	}

	if o.ReferencesTitle != "" {
		entries = append(entries, Entry{Title: o.ReferencesTitle, Page: page})
		page += e.ReferencePages(o.References)
	}

	if o.Appendix != nil {
		entries = append(entries, Entry{Title: o.Appendix.Title, Page: page})
	}

	return entries
}

// LengthRow compares a chapter's requested length with its estimate.
type LengthRow struct {
	Title     string `json:"title" yaml:"title"`
	Target    int    `json:"target" yaml:"target"`
	Estimated int    `json:"estimated" yaml:"estimated"`
	Words     int    `json:"words" yaml:"words"`
	// Delta is Estimated minus Target.
	Delta int `json:"delta" yaml:"delta"`
}

// LengthReport returns one row per chapter, in order.
func (e Estimator) LengthReport(chapters []Chapter) []LengthRow {
	rows := make([]LengthRow, len(chapters))
	for i, ch := range chapters {
		est := e.Pages(ch.Content)
		rows[i] = LengthRow{
			Title:     ch.Title,
			Target:    ch.Target,
			Estimated: est,
			Words:     markup.WordCount(ch.Content),
			Delta:     est - ch.Target,
		}
	}
	return rows
}
