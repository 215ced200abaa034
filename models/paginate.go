package models

import (
	"slices"

	"github.com/supakorn-kn/go-catalog/errors"
)

type PaginationData[Data any] struct {
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	Count      int    `json:"count"`
	Remaining  int    `json:"remaining"`
	Data       []Data `json:"data"`
}

// Paginate returns a copy of items[(pageIndex-1)*pageSize : pageIndex*pageSize], clamped to len(items).
// A page past the end is empty.
func Paginate[T any](items []T, pageIndex, pageSize int) ([]T, error) {

	if pageIndex < 1 {
		return nil, errors.CurrentPageInvalidError.New()
	}

	if pageSize < 1 {
		return nil, errors.PageSizeInvalidError.New()
	}

	if pageIndex > TotalPages(len(items), pageSize) {
		return []T{}, nil
	}

	start := (pageIndex - 1) * pageSize
	end := min(start+pageSize, len(items))

	return slices.Clone(items[start:end]), nil
}

// RemainingCount is the number of items after page pageIndex, never negative.
// Non-positive arguments count nothing as shown.
func RemainingCount[T any](items []T, pageIndex, pageSize int) int {
	return remaining(len(items), pageIndex, pageSize)
}

func TotalPages(count, pageSize int) int {

	if pageSize < 1 {
		return 0
	}

	totalPages := count / pageSize
	if count%pageSize > 0 {
		totalPages++
	}

	return totalPages
}

// NewPaginationData windows items into the page pageIndex.
func NewPaginationData[T any](items []T, pageIndex, pageSize int) (PaginationData[T], error) {

	data, err := Paginate(items, pageIndex, pageSize)
	if err != nil {
		return PaginationData[T]{}, err
	}

	return PaginationData[T]{
		Page:       pageIndex,
		TotalPages: TotalPages(len(items), pageSize),
		Count:      len(items),
		Remaining:  remaining(len(items), pageIndex, pageSize),
		Data:       data,
	}, nil
}

func remaining(count, pageIndex, pageSize int) int {

	if pageIndex < 1 || pageSize < 1 {
		return count
	}

	if pageIndex >= TotalPages(count, pageSize) {
		return 0
	}

	return count - pageIndex*pageSize
}
