package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alnah/go-scholardraft"
)

// Error codes returned in the envelope.
const (
	CodeInvalidRequest = "invalid_request"
	CodeUnknownSection = "unknown_section"
	CodeUnknownFormat  = "unknown_format"
	CodeTooLarge       = "request_too_large"
	CodeNotFound       = "not_found"
	CodeUnavailable    = "unavailable"
	CodeTimeout        = "timeout"
	CodeExportFailed   = "export_failed"
	CodeInternal       = "internal"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: c.GetString(requestIDKey),
	})
}

// classify maps an exporter error to a status and code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, scholardraft.ErrUnknownSection):
		return http.StatusBadRequest, CodeUnknownSection
	case errors.Is(err, scholardraft.ErrUnknownFormat):
		return http.StatusBadRequest, CodeUnknownFormat
	case errors.Is(err, scholardraft.ErrPoolClosed),
		errors.Is(err, scholardraft.ErrBrowserConnect):
		return http.StatusServiceUnavailable, CodeUnavailable
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, scholardraft.ErrPageLoad):
		return http.StatusGatewayTimeout, CodeTimeout
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads the body.
		return 499, CodeTimeout
	case errors.Is(err, scholardraft.ErrDocumentRender),
		errors.Is(err, scholardraft.ErrPDFGeneration),
		errors.Is(err, scholardraft.ErrPageCreate):
		return http.StatusInternalServerError, CodeExportFailed
	}
	return http.StatusInternalServerError, CodeInternal
}
