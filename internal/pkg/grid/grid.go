// Package grid implements the display-order contract of the attendee grid:
// a uniform shuffle of the full collection and fixed-size page arithmetic.
package grid

import (
	"math"
	"math/rand"
)

// DefaultPageSize is the number of cards shown per grid page.
const DefaultPageSize = 12

// Shuffle returns a uniformly shuffled copy of items using the Fisher-Yates
// algorithm. The input slice is never mutated.
func Shuffle[T any](items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}

// Pager computes 1-indexed page arithmetic for a fixed page size. It is the
// canonical statement of the paging contract: the server uses TotalPages for
// the grid metadata, while HasPrev, HasNext, and Bounds define the button
// states and slice bounds the browser computes for itself from that metadata.
type Pager struct {
	PageSize int
}

// NewPager creates a pager, falling back to DefaultPageSize for invalid sizes.
func NewPager(pageSize int) Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Pager{PageSize: pageSize}
}

// TotalPages returns ceil(count/pageSize) with a floor of one page, so an
// empty collection still renders a single (empty) page.
func (p Pager) TotalPages(count int) int {
	if count <= 0 {
		return 1
	}
	return int(math.Ceil(float64(count) / float64(p.PageSize)))
}

// HasPrev reports whether a previous page exists. False iff page == 1.
func (p Pager) HasPrev(page int) bool {
	return page > 1
}

// HasNext reports whether a next page exists. False iff page == TotalPages.
func (p Pager) HasNext(page, count int) bool {
	return page < p.TotalPages(count)
}

// Bounds returns the half-open slice indices [start, end) for a 1-indexed
// page, clamped to the collection size.
func (p Pager) Bounds(page, count int) (start, end int) {
	if page < 1 {
		page = 1
	}

	start = (page - 1) * p.PageSize
	end = start + p.PageSize

	if start > count {
		start = count
	}
	if end > count {
		end = count
	}

	return start, end
}
