//go:build integration

package scholardraft

// Notes:
// - Renders real PDFs through headless Chrome; requires a browser
// - Text is read back with ledongthuc/pdf to check headings and footnotes
// - Exporters come from a shared pool closed in TestMain

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ledongthuc/pdf"
)

// testTimeout is the standard timeout for integration test operations.
const testTimeout = 60 * time.Second

// testPool is shared by all integration tests.
var testPool *ExporterPool

func TestMain(m *testing.M) {
	poolSize := min(ResolvePoolSize(0), 2)
	testPool = NewExporterPool(poolSize, WithTimeout(testTimeout))

	code := m.Run()

	testPool.Close()
	os.Exit(code)
}

// acquireExporter takes an exporter from the pool and returns it on cleanup.
func acquireExporter(t *testing.T) *Exporter {
	t.Helper()
	e, err := testPool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	t.Cleanup(func() { testPool.Release(e) })
	return e
}

// pdfText extracts the plain text of a PDF.
func pdfText(t *testing.T, data []byte) string {
	t.Helper()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open pdf: %v", err)
	}
	reader, err := r.GetPlainText()
	if err != nil {
		t.Fatalf("extract pdf text: %v", err)
	}
	buf := new(strings.Builder)
	if _, err := io.Copy(buf, reader); err != nil {
		t.Fatalf("read extracted text: %v", err)
	}
	return buf.String()
}

func TestIntegration_ExportPDF(t *testing.T) {
	t.Parallel()

	e := acquireExporter(t)
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	content := GeneratedContent{
		Chapter1: "Latar Belakang\nPendidikan adalah kunci kemajuan bangsa.[[Dewey, 1916, hlm. 3.]]",
	}
	file, err := e.Export(ctx, content, ExportConfig{StudentName: "Budi"}, SectionChapter1, FormatPDF)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if !bytes.HasPrefix(file.Data, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", file.Data[:min(len(file.Data), 16)])
	}
	if file.Name != "Bab_1_Budi.pdf" {
		t.Errorf("Name = %q, want Bab_1_Budi.pdf", file.Name)
	}

	text := pdfText(t, file.Data)
	for _, want := range []string{"BAB I", "PENDAHULUAN", "Pendidikan", "Dewey"} {
		if !strings.Contains(text, want) {
			t.Errorf("PDF text missing %q", want)
		}
	}
}

func TestIntegration_ExportFullPDF(t *testing.T) {
	t.Parallel()

	e := acquireExporter(t)
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	content := GeneratedContent{
		Abstract: "Penelitian ini membahas media pembelajaran.",
		Chapter1: strings.Repeat("Kalimat pendahuluan yang cukup panjang. ", 200),
		Chapter2: "Kajian teori.",
		References: []Reference{
			{Kind: KindBook, Author: "Sugiyono", Year: "2019", Title: "Metode Penelitian", City: "Bandung", Publisher: "Alfabeta"},
		},
	}
	cfg := ExportConfig{Title: "Media Pembelajaran", StudentName: "Budi", Year: "2025"}

	file, err := e.Export(ctx, content, cfg, SectionFull, FormatPDF)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	text := pdfText(t, file.Data)
	for _, want := range []string{"DAFTAR ISI", "ABSTRAK", "DAFTAR PUSTAKA", "Sugiyono"} {
		if !strings.Contains(text, want) {
			t.Errorf("PDF text missing %q", want)
		}
	}
}
