package models

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/supakorn-kn/go-catalog/errors"
	"github.com/supakorn-kn/go-catalog/objects"
)

const (
	SortNone   = ""
	SortByYear = "year"
)

// SortByPublicationYear returns a copy of books ordered by ascending publication year.
// Books published in the same year keep their relative order.
func SortByPublicationYear(books []objects.Book) []objects.Book {

	sorted := slices.Clone(books)
	slices.SortStableFunc(sorted, func(a, b objects.Book) int {
		return cmp.Compare(a.PublishedYear(), b.PublishedYear())
	})

	return sorted
}

// Sort applies the named ordering. SortNone keeps the catalog order.
func Sort(books []objects.Book, sortBy string) ([]objects.Book, error) {

	switch sortBy {
	case SortNone:
		return books, nil
	case SortByYear:
		return SortByPublicationYear(books), nil
	default:
		return nil, errors.DataValidationFailedError.New(fmt.Sprintf("sort %q is unsupported", sortBy))
	}
}
