package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed styles/*.css
var styles embed.FS

//go:embed templates
var templates embed.FS

// EmbeddedLoader loads assets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads an embedded style sheet by name.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// LoadTemplateSet loads an embedded template set by name.
func (e *EmbeddedLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}
	return readTemplateSet(templates, "templates/"+name, name)
}

// readTemplateSet reads the three template files of a set from fsys.
func readTemplateSet(fsys fs.FS, dir, name string) (*TemplateSet, error) {
	files := []string{DocumentFile, CoverFile, ContentsFile}
	contents := make([]string, len(files))
	missing := 0
	var firstMissing string

	for i, f := range files {
		b, err := fs.ReadFile(fsys, dir+"/"+f)
		switch {
		case err == nil:
			contents[i] = string(b)
		case errors.Is(err, fs.ErrNotExist):
			if missing == 0 {
				firstMissing = f
			}
			missing++
		default:
			return nil, fmt.Errorf("%w: reading %s: %v", ErrAssetRead, f, err)
		}
	}

	if missing == len(files) {
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}
	if missing > 0 {
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, firstMissing)
	}

	return &TemplateSet{
		Name:     name,
		Document: contents[0],
		Cover:    contents[1],
		Contents: contents[2],
	}, nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
