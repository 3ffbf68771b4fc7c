package scholardraft

import (
	"errors"

	"github.com/alnah/go-scholardraft/internal/assets"
	"github.com/alnah/go-scholardraft/internal/pagination"
)

// Sentinel errors for library operations.
var (
	ErrUnknownSection = errors.New("unknown section")
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrDocumentRender = errors.New("document rendering failed")

	// PDF output errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Setup errors.
	ErrInvalidPagination = pagination.ErrInvalidPagination
	ErrInvalidAssetPath  = errors.New("invalid asset path")
	ErrStyleNotFound     = assets.ErrStyleNotFound

	// ErrPoolClosed is returned by ExporterPool.Acquire after Close.
	ErrPoolClosed = errors.New("exporter pool closed")
)
