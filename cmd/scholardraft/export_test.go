package main

// Notes:
// - Exports run with the doc and html formats only; pdf needs Chrome and is
//   covered by the root package integration tests.
// - Tests that set SCHOLARDRAFT_* variables cannot use t.Parallel().

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alnah/go-scholardraft"
)

// ---------------------------------------------------------------------------
// TestResolveSections - --section and --all handling
// ---------------------------------------------------------------------------

func TestResolveSections(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		names   []string
		all     bool
		want    []scholardraft.Section
		wantErr error
	}{
		{
			name: "default is full",
			want: []scholardraft.Section{scholardraft.SectionFull},
		},
		{
			name:  "aliases and duplicates",
			names: []string{"bab1", "chapter1", "daftar-pustaka"},
			want:  []scholardraft.Section{scholardraft.SectionChapter1, scholardraft.SectionReferences},
		},
		{
			name: "all",
			all:  true,
			want: scholardraft.Sections(),
		},
		{
			name:    "all conflicts with section",
			names:   []string{"cover"},
			all:     true,
			wantErr: ErrUsage,
		},
		{
			name:    "unknown section",
			names:   []string{"chapter9"},
			wantErr: scholardraft.ErrUnknownSection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := resolveSections(tt.names, tt.all)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ---------------------------------------------------------------------------
// TestExport - End-to-end export command
// ---------------------------------------------------------------------------

func TestExport_FullDocument(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	input := writeTestFile(t, dir, "draft.json", sampleBundle)
	out := filepath.Join(dir, "out")

	res := runCLI(t, "", "export", "--content", input, "--output", out)

	require.Equal(t, ExitSuccess, res.code, res.stderr)
	path := filepath.Join(out, "Full_Draft.doc")
	assert.Equal(t, path, strings.TrimSpace(res.stdout))

	data := string(readTestFile(t, path))
	assert.True(t, strings.HasPrefix(data, "\ufeff"), "doc output starts with a BOM")
	assert.Contains(t, data, "BAB I")
	assert.Contains(t, data, "DAFTAR PUSTAKA")
	assert.Contains(t, data, "mso-footnote-id:ftn2")
}

func TestExport_SectionsAsHTML(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	input := writeTestFile(t, dir, "draft.json", sampleBundle)

	res := runCLI(t, "", "export", "-c", input, "-o", dir, "--section", "chapter1,references", "--format", "html")

	require.Equal(t, ExitSuccess, res.code, res.stderr)
	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, filepath.Join(dir, "Bab_1.html"), lines[0])
	assert.Equal(t, filepath.Join(dir, "Daftar_Pustaka.html"), lines[1])

	chapter := string(readTestFile(t, lines[0]))
	assert.False(t, strings.HasPrefix(chapter, "\ufeff"), "html output has no BOM")
	assert.Contains(t, chapter, "Latar Belakang")
	assert.Contains(t, string(readTestFile(t, lines[1])), "Sugiyono")
}

func TestExport_All(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	input := writeTestFile(t, dir, "draft.json", sampleBundle)

	res := runCLI(t, "", "export", "-c", input, "-o", dir, "--all")

	require.Equal(t, ExitSuccess, res.code, res.stderr)
	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	assert.Len(t, lines, len(scholardraft.Sections()))
	for _, l := range lines {
		assert.FileExists(t, l)
	}
}

func TestExport_Stdin(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	res := runCLI(t, sampleBundle, "export", "-c", "-", "-o", dir, "-s", "cover")

	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.FileExists(t, filepath.Join(dir, "Cover_Abstrak.doc"))
}

func TestExport_YAMLBundle(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	input := writeTestFile(t, dir, "draft.yaml", "chapter1: |\n  Isi bab satu.\n")

	res := runCLI(t, "", "export", "-c", input, "-o", dir, "-s", "chapter1", "-f", "html")

	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, string(readTestFile(t, filepath.Join(dir, "Bab_1.html"))), "Isi bab satu.")
}

func TestExport_Errors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	input := writeTestFile(t, dir, "draft.json", sampleBundle)
	blocker := writeTestFile(t, dir, "blocker", "not a directory")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"missing content", []string{"export"}, ExitUsage, "--content is required"},
		{"unknown section", []string{"export", "-c", input, "-s", "bab9"}, ExitUsage, "unknown section"},
		{"unknown format", []string{"export", "-c", input, "-f", "odt"}, ExitUsage, "unknown output format"},
		{"all and section", []string{"export", "-c", input, "--all", "-s", "cover"}, ExitUsage, "mutually exclusive"},
		{"missing content file", []string{"export", "-c", filepath.Join(dir, "none.json")}, ExitIO, "opening content"},
		{"unsupported content", []string{"export", "-c", filepath.Join(dir, "draft.txt")}, ExitUsage, "unsupported content format"},
		{"invalid json", []string{"export", "-c", writeTestFile(t, dir, "bad.json", "{")}, ExitUsage, "failed to parse content"},
		{"unwritable output", []string{"export", "-c", input, "-o", filepath.Join(blocker, "out")}, ExitIO, "failed to write output"},
		{"unknown flag", []string{"export", "--bogus"}, ExitUsage, "unknown flag"},
		{"positional argument", []string{"export", "draft.json"}, ExitUsage, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := runCLI(t, "", tt.args...)
			assert.Equal(t, tt.wantCode, res.code)
			assert.Contains(t, res.stderr, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// TestExport_Overrides - Config file, environment and flag precedence
// ---------------------------------------------------------------------------

func TestExport_ConfigFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	input := writeTestFile(t, dir, "draft.json", sampleBundle)
	cfg := writeTestFile(t, dir, "thesis.yaml", `
document:
  title: Motivasi Belajar Siswa
  studentName: Siti Aminah
  university: Universitas Negeri
output:
  format: html
  dir: `+filepath.Join(dir, "from-config")+`
`)

	res := runCLI(t, "", "export", "--config", cfg, "-c", input)

	require.Equal(t, ExitSuccess, res.code, res.stderr)
	path := filepath.Join(dir, "from-config", "Full_Draft_Siti_Aminah.html")
	data := string(readTestFile(t, path))
	assert.Contains(t, data, "Motivasi Belajar Siswa")
	assert.Contains(t, data, "UNIVERSITAS NEGERI")
}

func TestExport_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "draft.json", sampleBundle)
	cfg := writeTestFile(t, dir, "thesis.yaml", "document:\n  studentName: Siti Aminah\n")

	t.Setenv("SCHOLARDRAFT_CONFIG", cfg)
	t.Setenv("SCHOLARDRAFT_STUDENT_NAME", "Budi Santoso")
	t.Setenv("SCHOLARDRAFT_FORMAT", "html")
	t.Setenv("SCHOLARDRAFT_OUTPUT_DIR", dir)

	res := runCLI(t, "", "export", "-c", input, "-s", "chapter2")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.FileExists(t, filepath.Join(dir, "Bab_2_Budi_Santoso.html"))

	// Flags win over the environment.
	res = runCLI(t, "", "export", "-c", input, "-s", "chapter2", "--format", "doc")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.FileExists(t, filepath.Join(dir, "Bab_2_Budi_Santoso.doc"))
}

func TestExport_InvalidEnvOverride(t *testing.T) {
	t.Setenv("SCHOLARDRAFT_LOG_LEVEL", "loud")

	res := runCLI(t, "", "export", "-c", "draft.json")

	assert.Equal(t, ExitUsage, res.code)
	assert.Contains(t, res.stderr, "invalid config value")
}

func TestExport_VerboseLogsToStderr(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	input := writeTestFile(t, dir, "draft.json", sampleBundle)

	res := runCLI(t, "", "export", "-v", "--log-format", "json", "-c", input, "-o", dir, "-s", "chapter1")

	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stderr, `"msg":"exported"`)
	assert.Contains(t, res.stderr, `"footnotes":2`)
	assert.NotContains(t, res.stdout, "exported")

	_, err := os.Stat(filepath.Join(dir, "Bab_1.doc"))
	require.NoError(t, err)
}
