package catalog

import (
	"fmt"

	"github.com/hammamikhairi/resepi/internal/domain"
)

// DefaultPageSize is the number of cards per page.
const DefaultPageSize = 3

// Paginator tracks the current 1-based page over a list of n items.
// The item count is passed to each call because the filtered list is
// recomputed from scratch on every input change.
type Paginator struct {
	size    int
	current int
}

// NewPaginator returns a paginator on page 1. Non-positive sizes fall back
// to DefaultPageSize.
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{size: pageSize, current: 1}
}

// PageSize returns the fixed page size.
func (p *Paginator) PageSize() int { return p.size }

// Current returns the current page clamped to [1, TotalPages(n)].
func (p *Paginator) Current(n int) int {
	p.Clamp(n)
	return p.current
}

// TotalPages returns max(1, ceil(n / size)).
func (p *Paginator) TotalPages(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + p.size - 1) / p.size
}

// Clamp pulls the current page back into range after the list shrank.
func (p *Paginator) Clamp(n int) {
	total := p.TotalPages(n)
	if p.current > total {
		p.current = total
	}
	if p.current < 1 {
		p.current = 1
	}
}

// Window returns the half-open [start, end) slice bounds of the current page.
func (p *Paginator) Window(n int) (start, end int) {
	p.Clamp(n)
	if n <= 0 {
		return 0, 0
	}
	start = (p.current - 1) * p.size
	end = start + p.size
	if end > n {
		end = n
	}
	return start, end
}

// Page returns the recipes on the current page.
func (p *Paginator) Page(list []domain.Recipe) []domain.Recipe {
	start, end := p.Window(len(list))
	return list[start:end]
}

// Previous moves back one page. No-op on page 1.
func (p *Paginator) Previous(n int) {
	p.Clamp(n)
	if p.current > 1 {
		p.current--
	}
}

// Next moves forward one page. No-op on the last page.
func (p *Paginator) Next(n int) {
	p.Clamp(n)
	if p.current < p.TotalPages(n) {
		p.current++
	}
}

// GoTo jumps to page. Out-of-range pages leave the paginator untouched and
// return ErrPageOutOfRange.
func (p *Paginator) GoTo(page, n int) error {
	total := p.TotalPages(n)
	if page < 1 || page > total {
		return fmt.Errorf("%w: %d not in [1, %d]", domain.ErrPageOutOfRange, page, total)
	}
	p.current = page
	return nil
}

// Reset returns to page 1. Called whenever a filter changes.
func (p *Paginator) Reset() { p.current = 1 }

// HasPrevious reports whether Previous would move.
func (p *Paginator) HasPrevious(n int) bool { return p.Current(n) > 1 }

// HasNext reports whether Next would move.
func (p *Paginator) HasNext(n int) bool { return p.Current(n) < p.TotalPages(n) }

// Pages lists the page numbers 1..TotalPages(n) for page buttons.
func (p *Paginator) Pages(n int) []int {
	total := p.TotalPages(n)
	out := make([]int, total)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// ShowControls reports whether pagination controls should be rendered.
// They are hidden when everything fits on one page.
func (p *Paginator) ShowControls(n int) bool { return p.TotalPages(n) > 1 }
