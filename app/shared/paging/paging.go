// Package paging slices in-memory lists into numbered pages.
package paging

import "strconv"

// DefaultSize is the page size of every list view.
const DefaultSize = 10

// Page is one page of items. Number is 1-based.
type Page[T any] struct {
	Items  []T
	Number int
	Pages  int
	Total  int
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a next page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.Pages }

// Prev is the previous page number.
func (p Page[T]) Prev() int { return p.Number - 1 }

// Next is the next page number.
func (p Page[T]) Next() int { return p.Number + 1 }

// Slice returns page number of items, clamping number into range.
// An empty list is one empty page.
func Slice[T any](items []T, number, size int) Page[T] {
	if size <= 0 {
		size = DefaultSize
	}
	pages := (len(items) + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > pages {
		number = pages
	}

	start := (number - 1) * size
	end := min(start+size, len(items))

	return Page[T]{
		Items:  items[start:end],
		Number: number,
		Pages:  pages,
		Total:  len(items),
	}
}

// ParseNumber reads a page query value, defaulting to 1.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
