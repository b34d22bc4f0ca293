package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/hammamikhairi/resepi/internal/catalog"
	"github.com/hammamikhairi/resepi/internal/domain"
)

// View is everything a surface needs to draw the page. It is a copy;
// changing it does not touch the controller.
type View struct {
	SearchQuery      string
	IngredientFilter string
	ShowFilterPanel  bool
	ShowFavourites   bool

	// Ingredients is the full sorted index; Popular is its head.
	Ingredients []string
	Popular     []string

	Filtered    []domain.Recipe
	Page        []domain.Recipe
	CurrentPage int
	TotalPages  int
	Pages       []int
	HasPrevious bool
	HasNext     bool
	// Start and End bound Page within Filtered, End exclusive.
	Start int
	End   int

	Favourites []domain.Recipe
	Selected   *domain.Recipe
	// SelectedSaved reports whether the open recipe is a favourite.
	SelectedSaved bool

	// Version of the recipe collection the view was built from.
	Version uint64
}

// Snapshot derives the page from the current state. Filtering and paging
// are recomputed in full; only the ingredient index is memoized.
func (c *Controller) Snapshot(ctx context.Context) (View, error) {
	src := c.source()
	all, err := src.List(ctx)
	if err != nil {
		return View{}, fmt.Errorf("listing recipes: %w", err)
	}
	favs, err := c.favourites.List(ctx)
	if err != nil {
		return View{}, fmt.Errorf("listing favourites: %w", err)
	}
	version := src.Version()
	sel := c.Selected()
	saved := sel != nil && c.favourites.Has(ctx, sel.ID)

	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := catalog.Filter(all, c.search, c.ingredient)
	n := len(filtered)
	c.pager.Clamp(n)
	start, end := c.pager.Window(n)
	names := c.index.Names(version, all)

	v := View{
		SearchQuery:      c.search,
		IngredientFilter: c.ingredient,
		ShowFilterPanel:  c.showFilters,
		ShowFavourites:   c.showFavourites,
		Ingredients:      names,
		Popular:          catalog.Popular(names, c.chips),
		Filtered:         filtered,
		Page:             c.pager.Page(filtered),
		CurrentPage:      c.pager.Current(n),
		TotalPages:       c.pager.TotalPages(n),
		Pages:            c.pager.Pages(n),
		HasPrevious:      c.pager.HasPrevious(n),
		HasNext:          c.pager.HasNext(n),
		Start:            start,
		End:              end,
		Favourites:       favs,
		Version:          version,
		Selected:         sel,
		SelectedSaved:    saved,
	}
	return v, nil
}

// Empty reports whether no recipe matched.
func (v View) Empty() bool { return len(v.Filtered) == 0 }

// ShowControls reports whether the pagination bar is drawn.
func (v View) ShowControls() bool { return v.TotalPages > 1 }

// Summary is the result count line above the grid.
func (v View) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ditemukan %d resep", len(v.Filtered))
	if v.SearchQuery != "" {
		fmt.Fprintf(&b, " untuk %q", v.SearchQuery)
	}
	if v.IngredientFilter != "" {
		fmt.Fprintf(&b, " dengan bahan %q", v.IngredientFilter)
	}
	return b.String()
}

// RangeLine is shown next to the pagination controls.
func (v View) RangeLine() string {
	if v.Empty() {
		return ""
	}
	return fmt.Sprintf("Menampilkan %d-%d dari %d resep", v.Start+1, v.End, len(v.Filtered))
}

// EmptyTitle heads the no-results message.
const EmptyTitle = "Resep tidak ditemukan"

// EmptyHint explains the empty state in terms of the active filters.
func (v View) EmptyHint() string {
	if v.SearchQuery == "" && v.IngredientFilter == "" {
		return "Coba gunakan kata kunci pencarian yang berbeda"
	}
	var b strings.Builder
	b.WriteString("Tidak ada resep yang sesuai dengan pencarian")
	if v.SearchQuery != "" {
		fmt.Fprintf(&b, " %q", v.SearchQuery)
	}
	if v.IngredientFilter != "" {
		fmt.Fprintf(&b, " dan bahan %q", v.IngredientFilter)
	}
	return b.String()
}

// BatchKey identifies the set of cards on screen. A new key means a new
// reveal session.
func (v View) BatchKey() string {
	list := v.Page
	prefix := "page"
	if v.ShowFavourites {
		list = v.Favourites
		prefix = "fav"
	}
	ids := make([]string, len(list))
	for i, r := range list {
		ids[i] = r.ID
	}
	return fmt.Sprintf("%s/%d/%s", prefix, v.Version, strings.Join(ids, ","))
}

// Cards returns the list currently on screen.
func (v View) Cards() []domain.Recipe {
	if v.ShowFavourites {
		return v.Favourites
	}
	return v.Page
}
