package render

import (
	"io"
	"strings"

	"github.com/supakorn-kn/go-catalog/errors"
	"github.com/supakorn-kn/go-catalog/models"
	"github.com/supakorn-kn/go-catalog/objects"
)

// Renderer writes one page of search results to a target.
type Renderer interface {
	Render(w io.Writer, view View) error
	ContentType() string
}

// View is a page of results plus what is needed to describe it.
type View struct {
	Books      []objects.Book
	Directory  objects.Directory
	Page       int
	TotalPages int
	Count      int
	Remaining  int
	Query      models.SearchOption
}

func NewView(data models.PaginationData[objects.Book], directory objects.Directory, query models.SearchOption) View {

	return View{
		Books:      data.Data,
		Directory:  directory,
		Page:       data.Page,
		TotalPages: data.TotalPages,
		Count:      data.Count,
		Remaining:  data.Remaining,
		Query:      query,
	}
}

// Card is a book with its references resolved to display names.
type Card struct {
	BookID      string   `json:"book_id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Genres      []string `json:"genres"`
	Year        int      `json:"year"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
}

func (v View) Cards() []Card {

	cards := make([]Card, 0, len(v.Books))
	for _, book := range v.Books {

		genres := make([]string, 0, len(book.GenreIDs))
		for _, genreID := range book.GenreIDs {
			genres = append(genres, v.Directory.GenreName(genreID))
		}

		cards = append(cards, Card{
			BookID:      book.BookID,
			Title:       book.Title,
			Author:      v.Directory.AuthorName(book.AuthorID),
			Genres:      genres,
			Year:        book.PublishedYear(),
			Image:       book.Image,
			Description: book.Description,
		})
	}

	return cards
}

func (v View) Empty() bool {
	return v.Count == 0
}

// ForFormat selects a renderer by name: html, json, or text.
func ForFormat(format string) (Renderer, error) {

	switch strings.ToLower(format) {
	case "", "html":
		return NewHTML(), nil
	case "json":
		return JSON{}, nil
	case "text", "terminal":
		return Terminal{}, nil
	default:
		return nil, errors.FormatUnsupportedError.New(format)
	}
}
