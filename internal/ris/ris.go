// Package ris reads and writes bibliographies in the RIS interchange format
// understood by reference managers.
//
// Records are written with CRLF line endings in a fixed tag order:
//
//	TY  - BOOK|JOUR
//	AU  - author
//	PY  - year
//	TI  - title
//	CY  - city
//	PB  - publisher
//	ER  -
//
// followed by a blank line. Field values are written verbatim.
package ris

import (
	"bytes"
	"errors"
	"io"

	"github.com/alnah/go-scholardraft/internal/citation"
)

// ContentType is the media type of RIS files.
const ContentType = "application/x-research-info-systems"

// Record type codes.
const (
	TypeBook    = "BOOK"
	TypeJournal = "JOUR"
)

const crlf = "\r\n"

// ErrMalformedRecord indicates RIS input that cannot be parsed.
var ErrMalformedRecord = errors.New("malformed RIS record")

// typeCode maps a reference kind to its RIS type tag. Only books get the
// book tag; every other kind is written as a generic serial record.
func typeCode(k citation.Kind) string {
	if k == citation.KindBook {
		return TypeBook
	}
	return TypeJournal
}

// Encode writes refs to w as RIS records. Zero references write nothing.
func Encode(w io.Writer, refs []citation.Reference) error {
	for _, ref := range refs {
		if _, err := io.WriteString(w, record(ref)); err != nil {
			return err
		}
	}
	return nil
}

// Marshal returns the RIS encoding of refs.
func Marshal(refs []citation.Reference) []byte {
	var buf bytes.Buffer
	_ = Encode(&buf, refs) // bytes.Buffer writes do not fail
	return buf.Bytes()
}

func record(ref citation.Reference) string {
	return "TY  - " + typeCode(ref.Kind) + crlf +
		"AU  - " + ref.Author + crlf +
		"PY  - " + ref.Year + crlf +
		"TI  - " + ref.Title + crlf +
		"CY  - " + ref.City + crlf +
		"PB  - " + ref.Publisher + crlf +
		"ER  - " + crlf + crlf
}
