package catalog

import (
	"context"
	"slices"

	"github.com/supakorn-kn/go-catalog/errors"
	"github.com/supakorn-kn/go-catalog/models"
	"github.com/supakorn-kn/go-catalog/objects"
)

const DefaultPageSize = 10

// Store serves a Catalog from memory. It is read-only after NewStore and safe for concurrent use.
type Store struct {
	books     []objects.Book
	index     map[string]int
	directory objects.Directory
	pageSize  int
}

var _ models.BookStore = (*Store)(nil)

func NewStore(c Catalog, pageSize ...int) (*Store, error) {

	paginateSizeLen := len(pageSize)
	if paginateSizeLen > 1 {
		return nil, errors.DataValidationFailedError.New("PaginateSize can have only one elements")
	}

	store := Store{pageSize: DefaultPageSize}
	if paginateSizeLen == 1 {

		if pageSize[0] < 1 {
			return nil, errors.PageSizeInvalidError.New()
		}
		store.pageSize = pageSize[0]
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	store.books = slices.Clone(c.Books)
	store.directory = c.Directory().Clone()
	store.index = make(map[string]int, len(store.books))
	for i, book := range store.books {
		store.index[book.BookID] = i
	}

	return &store, nil
}

// Books returns the whole catalog in load order.
func (s *Store) Books() []objects.Book {
	return slices.Clone(s.books)
}

func (s *Store) PageSize() int {
	return s.pageSize
}

// Directory returns a copy of the lookup tables. Writes to it do not reach the store.
func (s *Store) Directory() objects.Directory {
	return s.directory.Clone()
}

func (s *Store) GetByID(_ context.Context, bookID string) (objects.Book, error) {

	i, ok := s.index[bookID]
	if !ok {
		return objects.Book{}, errors.ObjectIDNotFoundError.New(bookID)
	}

	return s.books[i], nil
}

func (s *Store) Search(_ context.Context, opt models.SearchOption) (models.PaginationData[objects.Book], error) {

	if opt.CurrentPage < 1 {
		return models.PaginationData[objects.Book]{}, errors.CurrentPageInvalidError.New()
	}

	pageSize := opt.PageSize
	if pageSize == 0 {
		pageSize = s.pageSize
	}

	matched, err := models.Sort(models.FilterCatalog(s.books, opt.Criteria()), opt.SortBy)
	if err != nil {
		return models.PaginationData[objects.Book]{}, err
	}

	return models.NewPaginationData(matched, opt.CurrentPage, pageSize)
}
