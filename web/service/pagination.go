package service

import (
	"math"
)

// Pagination carries everything a listing template needs to draw the page
// selector: a window of page numbers around the current one with "..." gaps
// toward the edges. A zero field means "do not draw this element".
type Pagination struct {
	FirstPage     int
	GapAfterFirst bool
	PrevPage      int
	Page          int
	NextPage      int
	GapBeforeLast bool
	LastPage      int
}

// Paginate computes the selector window for total rows split into pages of
// perPage rows each.
func Paginate(total int64, page int, perPage int) Pagination {
	if page < 1 {
		page = 1
	}
	pages := int(math.Ceil(float64(total) / float64(perPage)))

	p := Pagination{Page: page}
	if page > 2 {
		p.FirstPage = 1
	}
	if page > 3 {
		p.GapAfterFirst = true
	}
	if page > 1 {
		p.PrevPage = page - 1
	}
	if page < pages {
		p.NextPage = page + 1
	}
	if pages-page > 2 {
		p.GapBeforeLast = true
	}
	if pages-page > 1 {
		p.LastPage = pages
	}
	return p
}
