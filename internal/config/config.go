package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-scholardraft"
	"github.com/alnah/go-scholardraft/internal/citation"
	"github.com/alnah/go-scholardraft/internal/yamlutil"
)

// AppName is the directory name under the user config directory.
const AppName = "scholardraft"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits for multi-tenant safety.
const (
	MaxTitleLength        = 300  // Research titles run long
	MaxDocumentTypeLength = 100  // "PROPOSAL PENELITIAN", "SKRIPSI"
	MaxNameLength         = 100  // Student name
	MaxInstitutionLength  = 200  // Faculty or university
	MaxYearLength         = 10   // "2025"
	MaxLabelLength        = 50   // Citation style/mode labels
	MaxPathLength         = 4096 // Output and asset directories
	MaxAddrLength         = 255  // host:port
	MaxOriginLength       = 2048 // Browser limit
	MaxPageTarget         = 500  // Per-chapter page target
)

// Config holds all configuration for document export.
type Config struct {
	Document     DocumentConfig     `yaml:"document"`
	Citation     CitationConfig     `yaml:"citation"`
	ChapterPages ChapterPagesConfig `yaml:"chapterPages"`
	Language     string             `yaml:"language"` // "id" (default) or "en"
	Pagination   PaginationConfig   `yaml:"pagination"`
	Output       OutputConfig       `yaml:"output"`
	Assets       AssetsConfig       `yaml:"assets"`
	PDF          PDFConfig          `yaml:"pdf"`
	Server       ServerConfig       `yaml:"server"`
	Log          LogConfig          `yaml:"log"`
}

// DocumentConfig holds the identity fields printed on the cover.
type DocumentConfig struct {
	Title        string `yaml:"title"`
	DocumentType string `yaml:"documentType"` // Empty = "PROPOSAL PENELITIAN"
	StudentName  string `yaml:"studentName"`  // Also used in file names
	Faculty      string `yaml:"faculty"`
	University   string `yaml:"university"`
	Year         string `yaml:"year"` // Empty = current year
}

// CitationConfig selects the reference style and citation placement.
type CitationConfig struct {
	Style string `yaml:"style"` // "APA", "MLA", "Chicago", "Harvard" (default: APA)
	Mode  string `yaml:"mode"`  // "in-text" or "footnote" (default: in-text)
}

// ChapterPagesConfig holds the page target per chapter.
type ChapterPagesConfig struct {
	C1 int `yaml:"c1"`
	C2 int `yaml:"c2"`
	C3 int `yaml:"c3"`
	C4 int `yaml:"c4"`
	C5 int `yaml:"c5"`
}

// PaginationConfig overrides the page estimate constants. Zero keeps the
// default, except FrontMatterPages where an explicit 0 drops the allowance.
type PaginationConfig struct {
	WordsPerPage      int  `yaml:"wordsPerPage"`
	FrontMatterPages  *int `yaml:"frontMatterPages"`
	ReferencesPerPage int  `yaml:"referencesPerPage"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir    string `yaml:"dir"`    // Empty = current directory
	Format string `yaml:"format"` // "doc", "html", "pdf" (default: doc)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// PDFConfig defines PDF rendering options.
type PDFConfig struct {
	Timeout string `yaml:"timeout"` // Go duration, e.g. "45s" (default: 30s)
}

// ServerConfig defines HTTP API options.
type ServerConfig struct {
	Addr        string   `yaml:"addr"`        // Default ":8080"
	CORSOrigins []string `yaml:"corsOrigins"` // Empty = CORS disabled
}

// LogConfig defines logging options.
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "text" or "json"
}

// Default values.
const (
	DefaultServerAddr = ":8080"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
	DefaultPDFTimeout = 30 * time.Second
)

// Validate checks field lengths and enumerations.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., API adapters, library users).
func (c *Config) Validate() error {
	// Document
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.documentType", c.Document.DocumentType, MaxDocumentTypeLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.studentName", c.Document.StudentName, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.faculty", c.Document.Faculty, MaxInstitutionLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.university", c.Document.University, MaxInstitutionLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.year", c.Document.Year, MaxYearLength); err != nil {
		return err
	}

	// Citation
	if err := validateFieldLength("citation.style", c.Citation.Style, MaxLabelLength); err != nil {
		return err
	}
	if err := validateFieldLength("citation.mode", c.Citation.Mode, MaxLabelLength); err != nil {
		return err
	}
	if c.Citation.Style != "" {
		if _, ok := citation.LookupStyle(c.Citation.Style); !ok {
			return fmt.Errorf("%w: citation.style %q (valid: APA, MLA, Chicago, Harvard)", ErrInvalidValue, c.Citation.Style)
		}
	}

	// Chapter pages
	for i, n := range c.ChapterPages.values() {
		if n < 0 || n > MaxPageTarget {
			return fmt.Errorf("%w: chapterPages.c%d = %d (must be 0-%d)", ErrInvalidValue, i+1, n, MaxPageTarget)
		}
	}

	// Language
	switch strings.ToLower(c.Language) {
	case "", "id", "en":
	default:
		return fmt.Errorf("%w: language %q (valid: id, en)", ErrInvalidValue, c.Language)
	}

	// Pagination
	p := c.Pagination
	if p.WordsPerPage < 0 || p.ReferencesPerPage < 0 || (p.FrontMatterPages != nil && *p.FrontMatterPages < 0) {
		return fmt.Errorf("%w: pagination values must not be negative", ErrInvalidValue)
	}

	// Output
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if _, err := scholardraft.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: output.format %q (valid: doc, html, pdf)", ErrInvalidValue, c.Output.Format)
	}

	// Assets
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	// PDF
	if _, err := c.PDFTimeout(); err != nil {
		return err
	}

	// Server
	if err := validateFieldLength("server.addr", c.Server.Addr, MaxAddrLength); err != nil {
		return err
	}
	for i, origin := range c.Server.CORSOrigins {
		if err := validateFieldLength(fmt.Sprintf("server.corsOrigins[%d]", i), origin, MaxOriginLength); err != nil {
			return err
		}
	}

	// Log
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log.level %q (valid: debug, info, warn, error)", ErrInvalidValue, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (valid: text, json)", ErrInvalidValue, c.Log.Format)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func (p ChapterPagesConfig) values() [scholardraft.ChapterCount]int {
	return [scholardraft.ChapterCount]int{p.C1, p.C2, p.C3, p.C4, p.C5}
}

// PDFTimeout parses pdf.timeout. Empty returns DefaultPDFTimeout.
func (c *Config) PDFTimeout() (time.Duration, error) {
	if c.PDF.Timeout == "" {
		return DefaultPDFTimeout, nil
	}
	d, err := time.ParseDuration(c.PDF.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: pdf.timeout %q (want a positive duration such as 45s)", ErrInvalidValue, c.PDF.Timeout)
	}
	return d, nil
}

// ToExportConfig converts the document, citation and length settings into
// the exporter's input.
func (c *Config) ToExportConfig() scholardraft.ExportConfig {
	return scholardraft.ExportConfig{
		Title:        c.Document.Title,
		DocumentType: c.Document.DocumentType,
		StudentName:  c.Document.StudentName,
		Faculty:      c.Document.Faculty,
		University:   c.Document.University,
		Year:         c.Document.Year,
		Style:        scholardraft.Style(c.Citation.Style),
		Mode:         scholardraft.Mode(c.Citation.Mode),
		ChapterPages: scholardraft.ChapterPages{
			C1: c.ChapterPages.C1,
			C2: c.ChapterPages.C2,
			C3: c.ChapterPages.C3,
			C4: c.ChapterPages.C4,
			C5: c.ChapterPages.C5,
		},
		Language: c.Language,
	}
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Citation: CitationConfig{Style: string(citation.APA), Mode: string(citation.ModeInText)},
		Language: "id",
		Output:   OutputConfig{Format: string(scholardraft.DefaultFormat)},
		PDF:      PDFConfig{Timeout: DefaultPDFTimeout.String()},
		Server:   ServerConfig{Addr: DefaultServerAddr},
		Log:      LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Fields absent from the file keep their DefaultConfig value.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\") || strings.HasSuffix(s, ".yaml") || strings.HasSuffix(s, ".yml")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/scholardraft/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppName, name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
