// Package assets provides the print style sheet and the HTML templates of
// the print document.
//
// # Loaders
//
//	AssetLoader (interface)
//	    ├── EmbeddedLoader    - go:embed assets (academic style, default set)
//	    ├── FilesystemLoader  - a custom directory on disk
//	    └── AssetResolver     - custom first, embedded fallback
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}/
//	        ├── document.html   # page wrapper, sections, footnotes, footer
//	        ├── cover.html      # cover block
//	        └── contents.html   # table of contents
//
// Asset names are bare identifiers. FilesystemLoader resolves symlinks and
// rejects paths that leave basePath.
package assets
