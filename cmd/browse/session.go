package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/supakorn-kn/go-catalog/errors"
	"github.com/supakorn-kn/go-catalog/models"
	"github.com/supakorn-kn/go-catalog/objects"
	"github.com/supakorn-kn/go-catalog/render"
)

var commands = []string{"search", "author", "genre", "more", "sort", "authors", "genres", "help", "quit"}

const usage = `commands:
  search <text>      filter by title, empty text clears
  author <id|any>    filter by author
  genre <id|any>     filter by genre
  more               show the next page
  sort year|none     order by publication year or catalog order
  authors, genres    list the known ids
  quit`

// session holds the browsing state of one prompt. It is not safe for concurrent use.
type session struct {
	books     []objects.Book
	directory objects.Directory
	pageSize  int
	sortBy    string
	state     models.PageState
	out       io.Writer
	renderer  render.Terminal
}

func newSession(books []objects.Book, directory objects.Directory, pageSize int, out io.Writer) *session {

	s := &session{books: books, directory: directory, pageSize: pageSize, out: out}
	s.refresh(models.AnyCriteria())

	return s
}

func (s *session) refresh(criteria models.FilterCriteria) {

	s.state = models.NewPageState(s.books, criteria)
	if s.sortBy == models.SortByYear {
		s.state = s.state.SortedByYear()
	}
}

// exec runs one command line. It reports true when the session should end.
func (s *session) exec(line string) (bool, error) {

	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	criteria := s.state.Criteria

	switch name {
	case "":
		return false, nil

	case "quit", "exit":
		return true, nil

	case "help":
		_, err := fmt.Fprintln(s.out, usage)
		return false, err

	case "search":
		criteria.TitleQuery = arg
		s.refresh(criteria)
		return false, s.show()

	case "author":
		if arg != models.AnyOption && !s.directory.HasAuthor(arg) {
			return false, errors.DataValidationFailedError.New(fmt.Sprintf("unknown author %q", arg))
		}
		criteria.AuthorID = arg
		s.refresh(criteria)
		return false, s.show()

	case "genre":
		if arg != models.AnyOption && !s.directory.HasGenre(arg) {
			return false, errors.DataValidationFailedError.New(fmt.Sprintf("unknown genre %q", arg))
		}
		criteria.GenreID = arg
		s.refresh(criteria)
		return false, s.show()

	case "sort":
		switch arg {
		case "year":
			s.sortBy = models.SortByYear
		case "none":
			s.sortBy = models.SortNone
		default:
			return false, errors.DataValidationFailedError.New(fmt.Sprintf("sort must be year or none, got %q", arg))
		}
		s.refresh(criteria)
		return false, s.show()

	case "more":
		next, items, err := s.state.ShowMore(s.pageSize)
		if err != nil {
			return false, err
		}

		if len(items) == 0 {
			_, err := fmt.Fprintln(s.out, "No more results.")
			return false, err
		}

		s.state = next
		return false, s.renderer.Render(s.out, s.view(items))

	case "authors":
		return false, s.list(s.directory.AuthorEntries())

	case "genres":
		return false, s.list(s.directory.GenreEntries())

	default:
		return false, errors.DataValidationFailedError.New(fmt.Sprintf("unknown command %q, try help", name))
	}
}

// show prints the current page.
func (s *session) show() error {

	items, err := s.state.Page(s.pageSize)
	if err != nil {
		return err
	}

	return s.renderer.Render(s.out, s.view(items))
}

func (s *session) view(items []objects.Book) render.View {

	criteria := s.state.Criteria

	return render.View{
		Books:      items,
		Directory:  s.directory,
		Page:       s.state.CurrentPage,
		TotalPages: models.TotalPages(len(s.state.Matched), s.pageSize),
		Count:      len(s.state.Matched),
		Remaining:  s.state.Remaining(s.pageSize),
		Query: models.SearchOption{
			Title:       criteria.TitleQuery,
			Author:      criteria.AuthorID,
			Genre:       criteria.GenreID,
			SortBy:      s.sortBy,
			CurrentPage: s.state.CurrentPage,
			PageSize:    s.pageSize,
		},
	}
}

func (s *session) list(entries []objects.Entry) error {

	for _, entry := range entries {
		if _, err := fmt.Fprintf(s.out, "%-10s %s\n", entry.ID, entry.Name); err != nil {
			return err
		}
	}

	return nil
}

// complete suggests command names for the prompt.
func complete(line string) []string {

	var suggestions []string
	for _, command := range commands {
		if strings.HasPrefix(command, strings.ToLower(line)) {
			suggestions = append(suggestions, command)
		}
	}

	return suggestions
}
