package models

import (
	"context"

	"github.com/supakorn-kn/go-catalog/objects"
)

type Item interface {
	GetID() string
}

// SearchOption is one search submission. PageSize 0 selects the store default.
type SearchOption struct {
	Title       string `json:"title,omitempty" form:"title"`
	Author      string `json:"author,omitempty" form:"author"`
	Genre       string `json:"genre,omitempty" form:"genre"`
	SortBy      string `json:"sort,omitempty" form:"sort"`
	CurrentPage int    `json:"current_page" form:"page,default=1"`
	PageSize    int    `json:"page_size,omitempty" form:"page_size"`
}

func (opt SearchOption) Criteria() FilterCriteria {

	return FilterCriteria{
		TitleQuery: opt.Title,
		AuthorID:   opt.Author,
		GenreID:    opt.Genre,
	}
}

// BookStore serves read-only catalog queries.
type BookStore interface {
	GetByID(ctx context.Context, bookID string) (objects.Book, error)
	Search(ctx context.Context, opt SearchOption) (PaginationData[objects.Book], error)
	Directory() objects.Directory
}
