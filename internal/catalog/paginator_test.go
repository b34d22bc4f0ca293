package catalog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hammamikhairi/resepi/internal/domain"
)

func makeRecipes(n int) []domain.Recipe {
	out := make([]domain.Recipe, n)
	for i := range out {
		out[i] = domain.Recipe{ID: fmt.Sprintf("r%d", i), Name: fmt.Sprintf("Recipe %d", i)}
	}
	return out
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 3, 1},
		{1, 3, 1},
		{3, 3, 1},
		{4, 3, 2},
		{9, 3, 3},
		{10, 3, 4},
		{5, 1, 5},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d/size=%d", tt.n, tt.size), func(t *testing.T) {
			if got := NewPaginator(tt.size).TotalPages(tt.n); got != tt.want {
				t.Fatalf("TotalPages = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewPaginatorDefaultSize(t *testing.T) {
	if got := NewPaginator(0).PageSize(); got != DefaultPageSize {
		t.Fatalf("expected default page size %d, got %d", DefaultPageSize, got)
	}
}

func TestPaginationCoverage(t *testing.T) {
	for n := 0; n <= 11; n++ {
		for size := 1; size <= 4; size++ {
			list := makeRecipes(n)
			p := NewPaginator(size)

			var joined []string
			for _, page := range p.Pages(n) {
				if err := p.GoTo(page, n); err != nil {
					t.Fatalf("n=%d size=%d goto %d: %v", n, size, page, err)
				}
				joined = append(joined, ids(p.Page(list))...)
			}
			want := ids(list)
			if len(joined) == 0 {
				joined = []string{}
			}
			if diff := cmp.Diff(want, joined); diff != "" {
				t.Fatalf("n=%d size=%d pages do not rebuild list (-want +got):\n%s", n, size, diff)
			}
		}
	}
}

func TestPreviousNextBounds(t *testing.T) {
	const n = 7
	p := NewPaginator(3)

	p.Previous(n)
	if got := p.Current(n); got != 1 {
		t.Fatalf("previous on page 1 moved to %d", got)
	}

	p.Next(n)
	p.Next(n)
	if got := p.Current(n); got != 3 {
		t.Fatalf("expected page 3, got %d", got)
	}
	p.Next(n)
	if got := p.Current(n); got != 3 {
		t.Fatalf("next on last page moved to %d", got)
	}

	p.Previous(n)
	if got := p.Current(n); got != 2 {
		t.Fatalf("expected page 2, got %d", got)
	}
}

func TestGoToOutOfRange(t *testing.T) {
	const n = 7
	p := NewPaginator(3)
	if err := p.GoTo(2, n); err != nil {
		t.Fatalf("goto 2: %v", err)
	}

	for _, page := range []int{0, -1, 4, 100} {
		err := p.GoTo(page, n)
		if !errors.Is(err, domain.ErrPageOutOfRange) {
			t.Fatalf("goto %d: expected ErrPageOutOfRange, got %v", page, err)
		}
		if got := p.Current(n); got != 2 {
			t.Fatalf("goto %d changed page to %d", page, got)
		}
	}
}

func TestClampAfterShrink(t *testing.T) {
	p := NewPaginator(3)
	if err := p.GoTo(4, 10); err != nil {
		t.Fatalf("goto: %v", err)
	}
	if got := p.Current(4); got != 2 {
		t.Fatalf("expected clamp to 2, got %d", got)
	}
	if got := p.Current(0); got != 1 {
		t.Fatalf("expected clamp to 1 on empty list, got %d", got)
	}
}

func TestWindowAndControls(t *testing.T) {
	p := NewPaginator(3)

	start, end := p.Window(0)
	if start != 0 || end != 0 {
		t.Fatalf("empty window = [%d,%d)", start, end)
	}
	if p.ShowControls(0) || p.ShowControls(3) {
		t.Fatal("controls should be hidden for a single page")
	}
	if !p.ShowControls(4) {
		t.Fatal("controls should show for two pages")
	}

	_ = p.GoTo(3, 8)
	start, end = p.Window(8)
	if start != 6 || end != 8 {
		t.Fatalf("last window = [%d,%d), want [6,8)", start, end)
	}
	if !p.HasPrevious(8) || p.HasNext(8) {
		t.Fatalf("flags on last page: prev=%v next=%v", p.HasPrevious(8), p.HasNext(8))
	}

	p.Reset()
	if got := p.Current(8); got != 1 {
		t.Fatalf("reset left page at %d", got)
	}
}
