package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// sampleBundle is a small content bundle with two footnotes in chapter 1.
const sampleBundle = `{
  "cover": "Judul penelitian",
  "abstract": "Penelitian ini membahas motivasi belajar.",
  "chapter1": "**Latar Belakang**\nPendidikan adalah kunci.[[Dewey, 1916.]] Motivasi penting.[[Sardiman, 2018.]]",
  "chapter2": "Kajian teori tentang motivasi.",
  "references": [
    {"type": "book", "author": "Sugiyono", "year": "2019", "title": "Metode Penelitian", "city": "Bandung", "publisher": "Alfabeta"},
    {"kind": "journal", "author": "Rahman, A.", "year": "2021", "title": "Motivasi Siswa", "publisher": "Jurnal Pendidikan"}
  ],
  "questionnaire": "1. Saya senang belajar."
}`

// cliResult captures one CLI invocation.
type cliResult struct {
	code   int
	stdout string
	stderr string
}

// testEnv returns an Environment with buffered streams and a fixed clock.
func testEnv(stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) },
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}
	return env, &stdout, &stderr
}

// runCLI executes args against a fresh test environment.
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()
	env, stdout, stderr := testEnv(stdin)
	code := run(args, env)
	return cliResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

// writeTestFile writes data into dir/name and returns the path.
func writeTestFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// readTestFile reads path or fails the test.
func readTestFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return data
}
