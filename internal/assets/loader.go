package assets

// AssetLoader loads the print style sheet and document templates.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	LoadStyle(name string) (string, error)

	// LoadTemplateSet loads the templates of a named set.
	LoadTemplateSet(name string) (*TemplateSet, error)
}
