package ris

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-scholardraft/internal/citation"
)

// maxLineSize bounds a single RIS line.
const maxLineSize = 64 * 1024

// kinds maps RIS type codes to reference kinds. Unlisted codes are journal.
var kinds = map[string]citation.Kind{
	"BOOK":   citation.KindBook,
	"CHAP":   citation.KindBook,
	"EBOOK":  citation.KindBook,
	"THES":   citation.KindThesis,
	"CONF":   citation.KindProceeding,
	"CPAPER": citation.KindProceeding,
	"RPRT":   citation.KindReport,
	"GOVDOC": citation.KindReport,
	"ELEC":   citation.KindWebsite,
	"WEB":    citation.KindWebsite,
}

// Decode reads RIS records from r. Both CRLF and LF line endings are
// accepted. Repeated author tags are joined with "; ". Unknown tags are
// ignored.
func Decode(r io.Reader) ([]citation.Reference, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	var (
		refs    []citation.Reference
		cur     *citation.Reference
		authors []string
		lineNo  int
	)

	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		tag, value, ok := splitLine(line)
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedRecord, lineNo, line)
		}

		if tag == "TY" {
			if cur != nil {
				return nil, fmt.Errorf("%w: line %d: TY before ER", ErrMalformedRecord, lineNo)
			}
			k, known := kinds[strings.ToUpper(value)]
			if !known {
				k = citation.KindJournal
			}
			cur = &citation.Reference{Kind: k}
			authors = authors[:0]
			continue
		}

		if cur == nil {
			return nil, fmt.Errorf("%w: line %d: %s outside a record", ErrMalformedRecord, lineNo, tag)
		}

		switch tag {
		case "AU", "A1":
			authors = append(authors, value)
		case "PY", "Y1", "DA":
			if cur.Year == "" {
				cur.Year = yearOf(value)
			}
		case "TI", "T1":
			cur.Title = value
		case "CY":
			cur.City = value
		case "PB":
			cur.Publisher = value
		case "ER":
			cur.Author = strings.Join(nonEmpty(authors), "; ")
			refs = append(refs, *cur)
			cur = nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading RIS: %w", err)
	}
	if cur != nil {
		return nil, fmt.Errorf("%w: missing ER at end of input", ErrMalformedRecord)
	}

	return refs, nil
}

// Unmarshal decodes RIS data.
func Unmarshal(data []byte) ([]citation.Reference, error) {
	return Decode(bytes.NewReader(data))
}

// splitLine splits "XX  - value" into tag and value. The value may be
// absent ("ER  -").
func splitLine(line string) (tag, value string, ok bool) {
	if len(line) < 5 || line[2:5] != "  -" {
		return "", "", false
	}
	tag = line[:2]
	if !isTag(tag) {
		return "", "", false
	}
	return tag, strings.TrimSpace(line[5:]), true
}

func isTag(s string) bool {
	return s[0] >= 'A' && s[0] <= 'Z' &&
		((s[1] >= 'A' && s[1] <= 'Z') || (s[1] >= '0' && s[1] <= '9'))
}

// yearOf keeps the year part of "2019/05/01/" style dates.
func yearOf(s string) string {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return s[:i]
	}
	return s
}

func nonEmpty(ss []string) []string {
	out := ss[:0:0]
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
