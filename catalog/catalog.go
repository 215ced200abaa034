package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/supakorn-kn/go-catalog/errors"
	"github.com/supakorn-kn/go-catalog/objects"
)

//go:embed data/catalog.json
var defaultCatalog []byte

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Catalog is the static book collection with its lookup tables.
type Catalog struct {
	Authors map[string]string `json:"authors"`
	Genres  map[string]string `json:"genres"`
	Books   []objects.Book    `json:"books"`
}

func (c Catalog) Directory() objects.Directory {
	return objects.Directory{Authors: c.Authors, Genres: c.Genres}
}

// Validate checks book IDs are present and unique and every reference resolves.
// Genre IDs form a set per book.
func (c Catalog) Validate() error {

	directory := c.Directory()
	seen := make(map[string]struct{}, len(c.Books))

	for i, book := range c.Books {

		if book.BookID == "" {
			return errors.DataValidationFailedError.New(fmt.Sprintf("book #%d has no book_id", i))
		}

		if _, ok := seen[book.BookID]; ok {
			return errors.DuplicatedObjectIDError.New(book.BookID)
		}
		seen[book.BookID] = struct{}{}

		if book.Title == "" {
			return errors.DataValidationFailedError.New(fmt.Sprintf("book %s has no title", book.BookID))
		}

		if !directory.HasAuthor(book.AuthorID) {
			return errors.DataValidationFailedError.New(fmt.Sprintf("book %s refers to unknown author %q", book.BookID, book.AuthorID))
		}

		genres := make(map[string]struct{}, len(book.GenreIDs))
		for _, genreID := range book.GenreIDs {

			if !directory.HasGenre(genreID) {
				return errors.DataValidationFailedError.New(fmt.Sprintf("book %s refers to unknown genre %q", book.BookID, genreID))
			}

			if _, ok := genres[genreID]; ok {
				return errors.DataValidationFailedError.New(fmt.Sprintf("book %s lists genre %q more than once", book.BookID, genreID))
			}
			genres[genreID] = struct{}{}
		}
	}

	return nil
}

// Load decodes and validates a catalog document.
func Load(r io.Reader) (Catalog, error) {

	var c Catalog
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return Catalog{}, errors.DataValidationFailedError.New(fmt.Sprintf("decode catalog: %v", err))
	}

	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}

	return c, nil
}

func LoadFile(path string) (Catalog, error) {

	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, err
	}
	defer f.Close()

	return Load(f)
}

// Default returns the catalog bundled with the binary.
func Default() (Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
}
