package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/alnah/go-scholardraft"
	"github.com/alnah/go-scholardraft/internal/config"
	"github.com/alnah/go-scholardraft/internal/content"
	"github.com/alnah/go-scholardraft/internal/hints"
)

// Exit codes for the scholardraft CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful export
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or content
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitBrowser = 4 // Browser/Chrome errors
)

// CLI sentinel errors.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrWriteOutput = errors.New("failed to write output")
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, scholardraft.ErrBrowserConnect) ||
		errors.Is(err, scholardraft.ErrPageCreate) ||
		errors.Is(err, scholardraft.ErrPageLoad) ||
		errors.Is(err, scholardraft.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, content.ErrContentParse) ||
		errors.Is(err, content.ErrUnsupportedContentFormat) ||
		errors.Is(err, scholardraft.ErrUnknownSection) ||
		errors.Is(err, scholardraft.ErrUnknownFormat) ||
		errors.Is(err, scholardraft.ErrInvalidPagination) ||
		errors.Is(err, scholardraft.ErrStyleNotFound) ||
		errors.Is(err, scholardraft.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}

// errorMessage formats err for stderr with any matching hints.
func errorMessage(err error) string {
	msg := "error: " + err.Error()

	switch {
	case errors.Is(err, scholardraft.ErrBrowserConnect):
		msg += hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, scholardraft.ErrPageLoad):
		msg += hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		msg += hints.ForConfigNotFound(triedPaths(err.Error()))
	case errors.Is(err, scholardraft.ErrUnknownSection):
		msg += hints.ForUnknownSection(sectionNames())
	case errors.Is(err, content.ErrContentParse), errors.Is(err, content.ErrUnsupportedContentFormat):
		msg += hints.ForContentFormat()
	case errors.Is(err, ErrWriteOutput):
		msg += hints.ForOutputDirectory()
	}
	return msg
}

// triedPaths extracts the search list from a config-not-found message.
func triedPaths(msg string) []string {
	_, list, ok := strings.Cut(msg, "tried ")
	if !ok {
		return nil
	}
	return strings.Split(list, ", ")
}

func sectionNames() []string {
	secs := scholardraft.Sections()
	names := make([]string, len(secs))
	for i, s := range secs {
		names[i] = string(s)
	}
	return names
}
