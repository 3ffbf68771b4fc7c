package main

// Notes:
// - exitCodeFor: we test every sentinel the CLI can surface, plus wrapped
//   errors to verify the errors.Is() chain.
// - errorMessage: we check that the matching hint is appended, not its
//   exact wording, which lives in internal/hints.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/alnah/go-scholardraft"
	"github.com/alnah/go-scholardraft/internal/config"
	"github.com/alnah/go-scholardraft/internal/content"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser connect", scholardraft.ErrBrowserConnect, ExitBrowser},
		{"page create", scholardraft.ErrPageCreate, ExitBrowser},
		{"page load", scholardraft.ErrPageLoad, ExitBrowser},
		{"pdf generation", scholardraft.ErrPDFGeneration, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("exporting full: %w", scholardraft.ErrBrowserConnect), ExitBrowser},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"wrapped file not exist", fmt.Errorf("opening content: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid value", config.ErrInvalidValue, ExitUsage},
		{"content parse", content.ErrContentParse, ExitUsage},
		{"content format", content.ErrUnsupportedContentFormat, ExitUsage},
		{"unknown section", scholardraft.ErrUnknownSection, ExitUsage},
		{"unknown format", scholardraft.ErrUnknownFormat, ExitUsage},
		{"invalid pagination", scholardraft.ErrInvalidPagination, ExitUsage},
		{"style not found", scholardraft.ErrStyleNotFound, ExitUsage},
		{"invalid asset path", scholardraft.ErrInvalidAssetPath, ExitUsage},
		{"wrapped unknown section", fmt.Errorf("exporting: %w", scholardraft.ErrUnknownSection), ExitUsage},

		// General errors (exit 1)
		{"generic error", errors.New("boom"), ExitGeneral},
		{"document render", scholardraft.ErrDocumentRender, ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_Conventions(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Errorf("exit codes break Unix conventions: %d %d %d", ExitSuccess, ExitGeneral, ExitUsage)
	}
	for _, code := range []int{ExitIO, ExitBrowser} {
		if code >= 126 {
			t.Errorf("exit code %d collides with shell-reserved codes", code)
		}
	}
}

// ---------------------------------------------------------------------------
// TestErrorMessage - Hints appended to errors
// ---------------------------------------------------------------------------

func TestErrorMessage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "plain error",
			err:      errors.New("boom"),
			contains: []string{"error: boom"},
		},
		{
			name:     "unknown section lists sections",
			err:      fmt.Errorf("%w: %q", scholardraft.ErrUnknownSection, "bab9"),
			contains: []string{"unknown section", "hint:", "chapter1", "appendix"},
		},
		{
			name:     "config not found suggests user config",
			err:      fmt.Errorf("%w: tried a.yaml, a.yml, /home/u/.config/scholardraft/a.yaml", config.ErrConfigNotFound),
			contains: []string{"hint:", "--config", "create /home/u/.config/scholardraft/a.yaml"},
		},
		{
			name:     "content parse",
			err:      fmt.Errorf("%w: bad json", content.ErrContentParse),
			contains: []string{"hint:", ".json"},
		},
		{
			name:     "write output",
			err:      fmt.Errorf("%w: disk full", ErrWriteOutput),
			contains: []string{"hint:", "writable"},
		},
		{
			name:     "timeout",
			err:      fmt.Errorf("exporting full: %w", context.DeadlineExceeded),
			contains: []string{"hint:", "timeout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := errorMessage(tt.err)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("errorMessage() = %q, want substring %q", got, want)
				}
			}
		})
	}
}

func TestTriedPaths(t *testing.T) {
	t.Parallel()

	got := triedPaths("config file not found: tried a.yaml, a.yml")
	if len(got) != 2 || got[0] != "a.yaml" || got[1] != "a.yml" {
		t.Errorf("triedPaths() = %v, want [a.yaml a.yml]", got)
	}
	if got := triedPaths("config file not found: x.yaml"); got != nil {
		t.Errorf("triedPaths() without list = %v, want nil", got)
	}
}
