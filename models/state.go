package models

import (
	"slices"

	"github.com/supakorn-kn/go-catalog/objects"
)

// PageState is the search state of one browsing session. Operations return a new state
// and leave the receiver untouched.
type PageState struct {
	CurrentPage int            `json:"current_page"`
	Criteria    FilterCriteria `json:"criteria"`
	Matched     []objects.Book `json:"matched"`
}

// NewPageState applies criteria to books and starts at page 1.
func NewPageState(books []objects.Book, criteria FilterCriteria) PageState {

	return PageState{
		CurrentPage: 1,
		Criteria:    criteria,
		Matched:     FilterCatalog(books, criteria),
	}
}

// Page returns the items of the current page.
func (s PageState) Page(pageSize int) ([]objects.Book, error) {
	return Paginate(s.Matched, s.CurrentPage, pageSize)
}

// ShowMore advances one page and returns the items it reveals. An exhausted state is returned unchanged
// with no items.
func (s PageState) ShowMore(pageSize int) (PageState, []objects.Book, error) {

	if _, err := s.Page(pageSize); err != nil {
		return s, nil, err
	}

	if s.Exhausted(pageSize) {
		return s, []objects.Book{}, nil
	}

	next := s
	next.CurrentPage++

	items, err := next.Page(pageSize)
	if err != nil {
		return s, nil, err
	}

	return next, items, nil
}

// Visible returns every item revealed up to and including the current page.
func (s PageState) Visible(pageSize int) ([]objects.Book, error) {

	if _, err := s.Page(pageSize); err != nil {
		return nil, err
	}

	end := len(s.Matched)
	if s.CurrentPage < TotalPages(end, pageSize) {
		end = s.CurrentPage * pageSize
	}

	return slices.Clone(s.Matched[:end]), nil
}

func (s PageState) Remaining(pageSize int) int {
	return RemainingCount(s.Matched, s.CurrentPage, pageSize)
}

func (s PageState) Exhausted(pageSize int) bool {
	return s.Remaining(pageSize) == 0
}

// SortedByYear reorders the matches by publication year and starts again at page 1.
func (s PageState) SortedByYear() PageState {

	s.Matched = SortByPublicationYear(s.Matched)
	s.CurrentPage = 1

	return s
}
