package objects

import (
	"reflect"
	"slices"
	"time"
)

type Book struct {
	BookID        string    `json:"book_id" bson:"book_id"`
	Title         string    `json:"title" bson:"title"`
	AuthorID      string    `json:"author_id" bson:"author_id"`
	GenreIDs      []string  `json:"genre_ids" bson:"genre_ids"`
	Image         string    `json:"image" bson:"image"`
	Description   string    `json:"description" bson:"description"`
	PublishedDate time.Time `json:"published_date" bson:"published_date"`
}

func (b Book) GetID() string {
	return b.BookID
}

func (b Book) IsNil() bool {
	return reflect.ValueOf(b).IsZero()
}

// HasGenre reports whether genreID is one of the book's genres.
func (b Book) HasGenre(genreID string) bool {
	return slices.Contains(b.GenreIDs, genreID)
}

// PublishedYear is the calendar year of PublishedDate in UTC.
func (b Book) PublishedYear() int {
	return b.PublishedDate.UTC().Year()
}
