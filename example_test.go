package scholardraft_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-scholardraft"
)

// Example exports one chapter as HTML. PDF output works the same way but
// requires Chrome.
func Example() {
	exp, err := scholardraft.NewExporter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer exp.Close()

	content := scholardraft.GeneratedContent{
		Chapter1: "**Latar Belakang**\nPendidikan adalah kunci.[[Dewey, 1916.]]",
	}
	cfg := scholardraft.ExportConfig{StudentName: "Budi Santoso"}

	file, err := exp.Export(context.Background(), content, cfg, scholardraft.SectionChapter1, scholardraft.FormatHTML)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(file.Name)
	fmt.Println(file.Footnotes)
	fmt.Println(strings.Contains(string(file.Data), "BAB I"))
	// Output:
	// Bab_1_Budi_Santoso.html
	// 1
	// true
}

// ExampleExporter_Outline estimates where each section starts.
func ExampleExporter_Outline() {
	exp, err := scholardraft.NewExporter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer exp.Close()

	content := scholardraft.GeneratedContent{
		Chapter1: strings.Repeat("kata ", 600),
		Chapter2: strings.Repeat("kata ", 100),
		References: []scholardraft.Reference{
			{Kind: scholardraft.KindBook, Author: "Sugiyono", Year: "2019", Title: "Metode Penelitian"},
		},
	}
	cfg := scholardraft.ExportConfig{ChapterPages: scholardraft.ChapterPages{C1: 5, C2: 1}}

	outline := exp.Outline(content, cfg)
	for _, e := range outline.TOC {
		fmt.Printf("%s ... %d\n", e.Title, e.Page)
	}
	fmt.Println(outline.Chapters[0].Estimated, outline.Chapters[0].Delta)
	// Output:
	// BAB I PENDAHULUAN ... 3
	// BAB II TINJAUAN PUSTAKA ... 6
	// DAFTAR PUSTAKA ... 7
	// 3 -2
}

// ExampleExporter_ExportBibliography writes references as RIS.
func ExampleExporter_ExportBibliography() {
	exp, err := scholardraft.NewExporter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer exp.Close()

	file := exp.ExportBibliography([]scholardraft.Reference{
		{Kind: scholardraft.KindBook, Author: "Sugiyono", Year: "2019", Title: "Metode Penelitian", City: "Bandung", Publisher: "Alfabeta"},
	})

	fmt.Println(file.Name)
	fmt.Println(strings.Split(string(file.Data), "\r\n")[0])
	// Output:
	// referensi_scholardraft.ris
	// TY  - BOOK
}
