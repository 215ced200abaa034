package objects

import (
	"cmp"
	"maps"
	"slices"
)

// Directory holds the author and genre lookup tables, keyed by ID.
type Directory struct {
	Authors map[string]string `json:"authors"`
	Genres  map[string]string `json:"genres"`
}

// Clone copies both lookup tables.
func (d Directory) Clone() Directory {
	return Directory{Authors: maps.Clone(d.Authors), Genres: maps.Clone(d.Genres)}
}

type Entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (d Directory) AuthorName(authorID string) string {
	return lookup(d.Authors, authorID)
}

func (d Directory) GenreName(genreID string) string {
	return lookup(d.Genres, genreID)
}

func (d Directory) HasAuthor(authorID string) bool {
	_, ok := d.Authors[authorID]
	return ok
}

func (d Directory) HasGenre(genreID string) bool {
	_, ok := d.Genres[genreID]
	return ok
}

// AuthorEntries lists authors ordered by name, then ID.
func (d Directory) AuthorEntries() []Entry {
	return entries(d.Authors)
}

// GenreEntries lists genres ordered by name, then ID.
func (d Directory) GenreEntries() []Entry {
	return entries(d.Genres)
}

func lookup(table map[string]string, id string) string {

	if name, ok := table[id]; ok {
		return name
	}

	return id
}

func entries(table map[string]string) []Entry {

	list := make([]Entry, 0, len(table))
	for _, id := range slices.Sorted(maps.Keys(table)) {
		list = append(list, Entry{ID: id, Name: table[id]})
	}

	slices.SortStableFunc(list, func(a, b Entry) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return list
}
