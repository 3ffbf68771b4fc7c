// Package content decodes generated document bundles at the input
// boundary. A bundle is JSON or YAML with the GeneratedContent field names;
// references may give their kind under "type" or "kind".
package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-scholardraft"
	"github.com/alnah/go-scholardraft/internal/citation"
	"github.com/alnah/go-scholardraft/internal/ris"
	"github.com/alnah/go-scholardraft/internal/yamlutil"
)

// Sentinel errors for content decoding.
var (
	ErrContentParse             = errors.New("failed to parse content")
	ErrUnsupportedContentFormat = errors.New("unsupported content format")
)

// Format is an encoding of a content bundle.
type Format string

// Bundle encodings.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatRIS  Format = "ris" // references only
)

// MaxBundleSize bounds the bytes read from one bundle. It matches the YAML
// decoder limit.
const MaxBundleSize = yamlutil.MaxInputSize

// Reference is the wire form of a bibliographic record.
type Reference struct {
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`
	Kind      string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Author    string `json:"author" yaml:"author"`
	Year      string `json:"year" yaml:"year"`
	Title     string `json:"title" yaml:"title"`
	City      string `json:"city" yaml:"city"`
	Publisher string `json:"publisher" yaml:"publisher"`
}

// Bundle is the wire form of scholardraft.GeneratedContent.
type Bundle struct {
	Cover    string `json:"cover" yaml:"cover"`
	Abstract string `json:"abstract" yaml:"abstract"`
	Chapter1 string `json:"chapter1" yaml:"chapter1"`
	Chapter2 string `json:"chapter2" yaml:"chapter2"`
	Chapter3 string `json:"chapter3" yaml:"chapter3"`
	Chapter4 string `json:"chapter4" yaml:"chapter4"`
	Chapter5 string `json:"chapter5" yaml:"chapter5"`

	References []Reference `json:"references" yaml:"references"`

	Questionnaire  string `json:"questionnaire" yaml:"questionnaire"`
	InstrumentGrid string `json:"instrumentGrid" yaml:"instrumentGrid"`
	PreTest        string `json:"preTest" yaml:"preTest"`
	PostTest       string `json:"postTest" yaml:"postTest"`
	Calculations   string `json:"calculations" yaml:"calculations"`
}

// ToReference resolves the kind label. "type" wins over "kind"; unknown
// labels map to a journal.
func (r Reference) ToReference() scholardraft.Reference {
	label := r.Type
	if label == "" {
		label = r.Kind
	}
	return scholardraft.Reference{
		Kind:      citation.ParseKind(label),
		Author:    r.Author,
		Year:      r.Year,
		Title:     r.Title,
		City:      r.City,
		Publisher: r.Publisher,
	}
}

// FromReference is the inverse of ToReference.
func FromReference(ref scholardraft.Reference) Reference {
	return Reference{
		Type:      string(ref.Kind),
		Author:    ref.Author,
		Year:      ref.Year,
		Title:     ref.Title,
		City:      ref.City,
		Publisher: ref.Publisher,
	}
}

// References converts wire references.
func References(in []Reference) []scholardraft.Reference {
	if len(in) == 0 {
		return nil
	}
	out := make([]scholardraft.Reference, len(in))
	for i, r := range in {
		out[i] = r.ToReference()
	}
	return out
}

// Content converts the bundle into the exporter's input.
func (b *Bundle) Content() scholardraft.GeneratedContent {
	return scholardraft.GeneratedContent{
		Cover:          b.Cover,
		Abstract:       b.Abstract,
		Chapter1:       b.Chapter1,
		Chapter2:       b.Chapter2,
		Chapter3:       b.Chapter3,
		Chapter4:       b.Chapter4,
		Chapter5:       b.Chapter5,
		References:     References(b.References),
		Questionnaire:  b.Questionnaire,
		InstrumentGrid: b.InstrumentGrid,
		PreTest:        b.PreTest,
		PostTest:       b.PostTest,
		Calculations:   b.Calculations,
	}
}

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".ris":
		return FormatRIS, nil
	}
	return "", fmt.Errorf("%w: %q (use .json, .yaml or .yml)", ErrUnsupportedContentFormat, path)
}

// Decode reads one bundle from r.
func Decode(r io.Reader, format Format) (*Bundle, error) {
	data, err := readLimited(r)
	if err != nil {
		return nil, err
	}

	var b Bundle
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrContentParse, err)
		}
	case FormatYAML:
		if err := yamlutil.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrContentParse, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentFormat, format)
	}
	return &b, nil
}

// DecodeReferences reads a reference list: a RIS file, or a JSON/YAML
// array of references.
func DecodeReferences(r io.Reader, format Format) ([]scholardraft.Reference, error) {
	data, err := readLimited(r)
	if err != nil {
		return nil, err
	}

	var wire []Reference
	switch format {
	case FormatRIS:
		refs, err := ris.Unmarshal(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrContentParse, err)
		}
		return refs, nil
	case FormatJSON:
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrContentParse, err)
		}
	case FormatYAML:
		if err := yamlutil.Unmarshal(data, &wire); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrContentParse, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentFormat, format)
	}
	return References(wire), nil
}

// Load reads a bundle from path; "-" reads stdin as JSON.
func Load(path string) (*Bundle, error) {
	if path == "-" {
		return Decode(os.Stdin, FormatJSON)
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	if format == FormatRIS {
		return nil, fmt.Errorf("%w: %q holds references only", ErrUnsupportedContentFormat, path)
	}

	f, err := os.Open(path) // #nosec G304 -- content path is user-provided
	if err != nil {
		return nil, fmt.Errorf("opening content: %w", err)
	}
	defer f.Close()

	return Decode(f, format)
}

// LoadReferences reads a reference list from path.
func LoadReferences(path string) ([]scholardraft.Reference, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) // #nosec G304 -- reference path is user-provided
	if err != nil {
		return nil, fmt.Errorf("opening references: %w", err)
	}
	defer f.Close()

	return DecodeReferences(f, format)
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxBundleSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	if len(data) > MaxBundleSize {
		return nil, fmt.Errorf("%w: input exceeds %d bytes", ErrContentParse, MaxBundleSize)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrContentParse)
	}
	return data, nil
}
