// Package scholardraft exports generated academic drafts as print-ready
// documents and bibliography files.
//
// # Quick Start
//
// Create an exporter, export the full draft, and close when done:
//
//	exp, err := scholardraft.NewExporter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer exp.Close()
//
//	file, err := exp.Export(ctx, content, scholardraft.ExportConfig{
//	    Title:       "Pengaruh Media Pembelajaran",
//	    StudentName: "Budi Santoso",
//	    Style:       scholardraft.APA,
//	    Mode:        scholardraft.ModeFootnote,
//	}, scholardraft.SectionFull, scholardraft.FormatDOC)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(file.Name, file.Data, 0600)
//
// The default format is an HTML document with Word-processor markup that
// opens in Word and LibreOffice. FormatHTML returns the same markup without
// a byte order mark, and FormatPDF prints it through headless Chrome.
//
// # Export Pipeline
//
// Every export runs these stages:
//
//  1. Text normalization (bold markers, stray headings, glyph cleanup)
//  2. Footnote extraction ([[...]] markers become numbered notes)
//  3. Citation formatting (APA, MLA, Chicago, Harvard)
//  4. Page estimation and table of contents
//  5. Document assembly and rendering
//
// Footnote numbers are scoped to one export, so one Exporter can serve
// concurrent requests.
//
// # Sections
//
// SectionFull assembles cover, abstract, contents, chapters, references and
// appendix, skipping fields that were not generated. The other sections
// export one part on its own and always emit it, even when empty:
//
//	files, err := exp.ExportSections(ctx, content, cfg,
//	    []scholardraft.Section{scholardraft.SectionChapter1, scholardraft.SectionChapter2},
//	    scholardraft.FormatDOC)
//
// # Bibliography and Outline
//
// ExportBibliography writes references as RIS for reference managers.
// Outline returns the estimated table of contents and a per-chapter
// comparison against ExportConfig.ChapterPages, without rendering.
//
// # Parallel Processing
//
// PDF rendering holds one browser per Exporter. For servers, share an
// ExporterPool:
//
//	pool := scholardraft.NewExporterPool(scholardraft.ResolvePoolSize(0))
//	defer pool.Close()
//
//	exp, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(exp)
//
// # Browser Requirements
//
// PDF output requires Chrome/Chromium. The go-rod library downloads a
// managed Chromium on first use (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package scholardraft
