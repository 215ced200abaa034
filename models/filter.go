package models

import (
	"strings"

	"github.com/supakorn-kn/go-catalog/objects"
	"golang.org/x/text/cases"
)

// AnyOption disables the author or genre predicate.
const AnyOption = "any"

type FilterCriteria struct {
	TitleQuery string `json:"title"`
	AuthorID   string `json:"author"`
	GenreID    string `json:"genre"`
}

// AnyCriteria matches every book.
func AnyCriteria() FilterCriteria {
	return FilterCriteria{AuthorID: AnyOption, GenreID: AnyOption}
}

func (c FilterCriteria) HasTitle() bool {
	return c.TitleQuery != ""
}

func (c FilterCriteria) HasAuthor() bool {
	return !isAny(c.AuthorID)
}

func (c FilterCriteria) HasGenre() bool {
	return !isAny(c.GenreID)
}

// Matches reports whether book satisfies all three predicates.
func (c FilterCriteria) Matches(book objects.Book) bool {
	return c.matcher().matches(book)
}

// FilterCatalog returns the books matching criteria in their input order.
// An empty result is an empty, non-nil slice.
func FilterCatalog(books []objects.Book, criteria FilterCriteria) []objects.Book {

	m := criteria.matcher()

	matched := make([]objects.Book, 0, len(books))
	for _, book := range books {

		if m.matches(book) {
			matched = append(matched, book)
		}
	}

	return matched
}

func isAny(id string) bool {
	return id == "" || id == AnyOption
}

// matcher holds the folded title query for one pass over the catalog.
type matcher struct {
	criteria FilterCriteria
	query    string
	caser    cases.Caser
}

func (c FilterCriteria) matcher() matcher {

	m := matcher{criteria: c, caser: cases.Fold()}
	if c.HasTitle() {
		m.query = m.caser.String(c.TitleQuery)
	}

	return m
}

func (m matcher) matches(book objects.Book) bool {

	if m.criteria.HasAuthor() && book.AuthorID != m.criteria.AuthorID {
		return false
	}

	if m.criteria.HasGenre() && !book.HasGenre(m.criteria.GenreID) {
		return false
	}

	if m.query == "" {
		return true
	}

	return strings.Contains(m.caser.String(book.Title), m.query)
}
