// Package fileutil provides temp files for rendering and deterministic
// output file names.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// WriteTempFile creates a temporary file with the given content and extension.
// Returns the file path and a cleanup function to remove the file.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", "scholardraft-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// ValidateExtension checks that the extension is safe for use in file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SafeName turns free text into a file name component: whitespace runs
// collapse to one underscore, path separators and control characters are
// removed, and leading or trailing underscores and dots are trimmed.
//
// Examples:
//   - "Budi  Santoso" -> "Budi_Santoso"
//   - "../etc/passwd" -> "etcpasswd"
//   - "   " -> ""
func SafeName(s string) string {
	var sb strings.Builder
	space := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			space = true
			continue
		case r == '/' || r == '\\' || r == 0 || unicode.IsControl(r):
			continue
		case strings.ContainsRune(`:*?"<>|`, r):
			continue
		}
		if space && sb.Len() > 0 {
			sb.WriteByte('_')
		}
		space = false
		sb.WriteRune(r)
	}
	return strings.Trim(sb.String(), "._")
}

// JoinName builds "<base>_<owner>.<ext>". An owner that reduces to nothing
// is left out.
func JoinName(base, owner, ext string) string {
	name := base
	if o := SafeName(owner); o != "" {
		name += "_" + o
	}
	return name + "." + strings.TrimPrefix(ext, ".")
}

// WriteFile writes data to dir/name, creating dir when missing, and
// returns the written path.
func WriteFile(dir, name string, data []byte) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("invalid output file name %q", name)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
