// Package pagination estimates printed page counts from word counts and
// builds the table of contents from those estimates.
//
// The estimates model double-spaced, justified 12pt text on A4 with the
// print style sheet margins. They are heuristics, not layout results.
package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-scholardraft/internal/markup"
)

// Default heuristic constants.
const (
	DefaultWordsPerPage      = 250
	DefaultFrontMatterPages  = 2
	DefaultReferencesPerPage = 5
)

// ErrInvalidPagination indicates a non-positive pagination constant.
var ErrInvalidPagination = errors.New("invalid pagination setting")

// Estimator turns content into page estimates.
// The zero value is not usable; use Default or NewEstimator.
type Estimator struct {
	wordsPerPage      int
	frontMatterPages  int
	referencesPerPage int
}

// Default returns an Estimator using the default constants.
func Default() Estimator {
	return Estimator{
		wordsPerPage:      DefaultWordsPerPage,
		frontMatterPages:  DefaultFrontMatterPages,
		referencesPerPage: DefaultReferencesPerPage,
	}
}

// NewEstimator returns an Estimator with overridden constants. A zero value
// keeps the default for that constant; negative values are rejected.
func NewEstimator(wordsPerPage, frontMatterPages, referencesPerPage int) (Estimator, error) {
	e := Default()
	if wordsPerPage < 0 {
		return e, fmt.Errorf("%w: words per page %d", ErrInvalidPagination, wordsPerPage)
	}
	if frontMatterPages < 0 {
		return e, fmt.Errorf("%w: front matter pages %d", ErrInvalidPagination, frontMatterPages)
	}
	if referencesPerPage < 0 {
		return e, fmt.Errorf("%w: references per page %d", ErrInvalidPagination, referencesPerPage)
	}
	if wordsPerPage > 0 {
		e.wordsPerPage = wordsPerPage
	}
	if frontMatterPages > 0 {
		e.frontMatterPages = frontMatterPages
	}
	if referencesPerPage > 0 {
		e.referencesPerPage = referencesPerPage
	}
	return e, nil
}

// WithFrontMatterPages returns a copy with the front-matter allowance set to
// n. Unlike NewEstimator, zero is kept as zero.
func (e Estimator) WithFrontMatterPages(n int) (Estimator, error) {
	if n < 0 {
		return e, fmt.Errorf("%w: front matter pages %d", ErrInvalidPagination, n)
	}
	e.frontMatterPages = n
	return e, nil
}

// WordsPerPage returns the words-per-page constant.
func (e Estimator) WordsPerPage() int { return e.wordsPerPage }

// FrontMatterPages returns the fixed cover and abstract allowance.
func (e Estimator) FrontMatterPages() int { return e.frontMatterPages }

// ReferencesPerPage returns the reference-list density constant.
func (e Estimator) ReferencesPerPage() int { return e.referencesPerPage }

// Pages estimates the printed pages of content: ceil(words / wordsPerPage),
// at least 1 for non-empty content. Blank content takes no pages.
func (e Estimator) Pages(content string) int {
	if strings.TrimSpace(content) == "" {
		return 0
	}
	return max(1, ceilDiv(markup.WordCount(content), e.wordsPerPage))
}

// ReferencePages estimates the pages of a reference list with n entries.
func (e Estimator) ReferencePages(n int) int {
	if n <= 0 {
		return 0
	}
	return ceilDiv(n, e.referencesPerPage)
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		b = 1
	}
	return (a + b - 1) / b
}
