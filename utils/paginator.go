package utils

import "errors"

// ErrPageNotFound is returned for page numbers outside 1..TotalPages
var ErrPageNotFound = errors.New("page not found")

// Page is one fixed-size window over an ordered sequence, plus the
// metadata list templates need to draw the pager
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

func (p Page[T]) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p Page[T]) HasPrev() bool {
	return p.Number > 1
}

func (p Page[T]) NextNumber() int {
	return p.Number + 1
}

func (p Page[T]) PrevNumber() int {
	return p.Number - 1
}

// Paginate slices items into pages of the given size and returns page
// `number` (1-based). An empty sequence still has one (empty) page.
// The last page holds len(items) mod size entries when that remainder
// is non-zero.
func Paginate[T any](items []T, number, size int) (Page[T], error) {
	if size <= 0 {
		return Page[T]{}, errors.New("page size must be positive")
	}
	total := len(items)
	pages := (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	if number < 1 || number > pages {
		return Page[T]{}, ErrPageNotFound
	}
	first := (number - 1) * size
	last := first + size
	if last > total {
		last = total
	}
	return Page[T]{
		Items:      items[first:last],
		Number:     number,
		Size:       size,
		TotalItems: total,
		TotalPages: pages,
	}, nil
}
