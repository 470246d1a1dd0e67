// Package pagination computes listing windows and prev/next navigation from
// a total item count, a fixed page size and a raw page query parameter.
package pagination

import "fmt"

// Disabled is the href rendered for a navigation link that goes nowhere.
const Disabled = "#"

// Window is a bounded view into a sequence of Total items.
type Window struct {
	Page  int // normalized requested page, 1-based
	Last  int // ceil(Total/Size); 0 when Total is 0
	Start int // inclusive slice offset, clamped to [0, Total]
	End   int // exclusive slice offset, clamped to [Start, Total]
	Prev  string
	Next  string
}

// Len returns the number of items inside the window.
func (w Window) Len() int { return w.End - w.Start }

// Paginate derives the window for page raw of total items with size items
// per page. raw comes straight from the query string: anything that is not a
// positive integer counts as page 1. An out-of-range page yields an empty
// window rather than an error. Prev is Disabled on the first page, Next is
// Disabled on the last page and whenever there are no items.
func Paginate(total, size int, raw string, basePath string) Window {
	if size < 1 {
		size = 1
	}
	page := parsePage(raw)

	last := 0
	if total > 0 {
		last = (total + size - 1) / size
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	w := Window{Page: page, Last: last, Start: start, End: end}

	if page == 1 {
		w.Prev = Disabled
	} else {
		w.Prev = fmt.Sprintf("%s?page=%d", basePath, page-1)
	}
	if total == 0 || page == last {
		w.Next = Disabled
	} else {
		w.Next = fmt.Sprintf("%s?page=%d", basePath, page+1)
	}
	return w
}

// parsePage accepts only base-10 positive integers; everything else is 1.
// Deliberately not strconv.Atoi: "+2", " 2" and "2_0" must all fall back.
func parsePage(raw string) int {
	if raw == "" {
		return 1
	}
	n := 0
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 1
		}
		n = n*10 + int(r-'0')
		if n > 1<<30 {
			return 1
		}
	}
	if n < 1 {
		return 1
	}
	return n
}
