package models

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/supakorn-kn/go-catalog/objects"
)

func fakeBook() objects.Book {

	fakeInfo := gofakeit.Book()
	uuid := gofakeit.UUID()

	return objects.Book{
		BookID:        fmt.Sprintf("book_%s", uuid),
		Title:         fakeInfo.Title,
		AuthorID:      "author_" + gofakeit.LetterN(6),
		GenreIDs:      []string{fakeInfo.Genre},
		Image:         gofakeit.URL(),
		Description:   gofakeit.SentenceSimple(),
		PublishedDate: gofakeit.DateRange(time.Date(1800, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).UTC(),
	}
}

func fakeBooks(n int) []objects.Book {

	books := make([]objects.Book, 0, n)
	for i := 0; i < n; i++ {
		books = append(books, fakeBook())
	}

	return books
}

func ids(books []objects.Book) []string {

	list := make([]string, 0, len(books))
	for _, book := range books {
		list = append(list, book.BookID)
	}

	return list
}

func publishedIn(year int) time.Time {
	return time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
}
