package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alnah/go-scholardraft"
	"github.com/alnah/go-scholardraft/internal/content"
	"github.com/alnah/go-scholardraft/internal/logger"
)

// FootnotesHeader reports the footnote count of an exported document.
const FootnotesHeader = "X-Footnote-Count"

// DocumentRequest is the body of the document and outline endpoints.
type DocumentRequest struct {
	Content content.Bundle            `json:"content"`
	Config  scholardraft.ExportConfig `json:"config"`
	Format  string                    `json:"format"`
}

// BibliographyRequest is the body of POST /v1/bibliography.
type BibliographyRequest struct {
	References []content.Reference `json:"references"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}

// exportDocument serves POST /v1/documents and /v1/documents/:section.
func (s *Server) exportDocument(c *gin.Context) {
	section := scholardraft.SectionFull
	if name := c.Param("section"); name != "" {
		sec, err := scholardraft.ParseSection(name)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, CodeUnknownSection, err.Error())
			return
		}
		section = sec
	}

	var req DocumentRequest
	if !s.bind(c, &req) {
		return
	}
	format, err := scholardraft.ParseFormat(req.Format)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, CodeUnknownFormat, err.Error())
		return
	}

	exp, ok := s.acquire(c)
	if !ok {
		return
	}
	defer s.release(exp)

	file, err := exp.Export(c.Request.Context(), req.Content.Content(), req.Config, section, format)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.Header(FootnotesHeader, strconv.Itoa(file.Footnotes))
	sendFile(c, file)
}

// exportBibliography serves POST /v1/bibliography.
func (s *Server) exportBibliography(c *gin.Context) {
	var req BibliographyRequest
	if !s.bind(c, &req) {
		return
	}

	exp, ok := s.acquire(c)
	if !ok {
		return
	}
	defer s.release(exp)

	refs := content.References(req.References)
	file := exp.ExportBibliography(refs)
	s.metrics.ObserveBibliography(len(refs))
	sendFile(c, file)
}

// outline serves POST /v1/outline.
func (s *Server) outline(c *gin.Context) {
	var req DocumentRequest
	if !s.bind(c, &req) {
		return
	}

	exp, ok := s.acquire(c)
	if !ok {
		return
	}
	defer s.release(exp)

	c.JSON(http.StatusOK, exp.Outline(req.Content.Content(), req.Config))
}

// bind decodes a size-limited JSON body. It writes the error response and
// returns false on failure.
func (s *Server) bind(c *gin.Context, v any) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBytes)
	if err := c.ShouldBindJSON(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithError(c, http.StatusRequestEntityTooLarge, CodeTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return false
		}
		abortWithError(c, http.StatusBadRequest, CodeInvalidRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) acquire(c *gin.Context) (*scholardraft.Exporter, bool) {
	exp, err := s.source.Acquire()
	if err != nil {
		s.fail(c, err)
		return nil, false
	}
	s.metrics.PoolExportersInUse.Inc()
	return exp, true
}

func (s *Server) release(exp *scholardraft.Exporter) {
	s.metrics.PoolExportersInUse.Dec()
	s.source.Release(exp)
}

// fail logs err and writes its envelope. Internal details stay in the log.
func (s *Server) fail(c *gin.Context, err error) {
	status, code := classify(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		logger.With(c.Request.Context(), s.logger).Error("export failed",
			slog.String("code", code),
			slog.String("error", err.Error()),
		)
		msg = http.StatusText(status)
	}
	abortWithError(c, status, code, msg)
}

func sendFile(c *gin.Context, file *scholardraft.File) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
