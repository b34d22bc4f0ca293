// Package engine implements the recipe browser page controller. It owns
// the filter state, the pagination state and the selected recipe, and
// turns user events into state changes. It depends only on interfaces and
// is fully testable with the in-memory implementations.
package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/hammamikhairi/resepi/internal/catalog"
	"github.com/hammamikhairi/resepi/internal/domain"
	"github.com/hammamikhairi/resepi/internal/logger"
)

// DefaultChipCount is how many popular ingredient chips the page shows.
const DefaultChipCount = 8

// Option configures the controller.
type Option func(*Controller)

// WithPageSize sets the number of cards per page.
func WithPageSize(n int) Option {
	return func(c *Controller) {
		c.pager = catalog.NewPaginator(n)
	}
}

// WithChipCount sets how many popular chips the view lists.
func WithChipCount(n int) Option {
	return func(c *Controller) {
		c.chips = n
	}
}

// Controller is the page controller. All methods are safe for concurrent
// use, but the intended caller is a single UI loop.
type Controller struct {
	recipes    domain.RecipeSource
	favourites domain.FavouriteStore
	log        *logger.Logger

	mu             sync.Mutex
	pager          *catalog.Paginator
	index          catalog.Index
	chips          int
	search         string
	ingredient     string
	showFilters    bool
	showFavourites bool
	selected       *domain.Recipe
}

// New creates a page controller with the given dependencies and options.
func New(recipes domain.RecipeSource, favourites domain.FavouriteStore, log *logger.Logger, opts ...Option) *Controller {
	c := &Controller{
		recipes:    recipes,
		favourites: favourites,
		log:        log,
		pager:      catalog.NewPaginator(catalog.DefaultPageSize),
		chips:      DefaultChipCount,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dispatch applies one user event. Events that cannot apply, such as a
// page number out of range, leave the state untouched and return an
// error the caller may show or ignore.
func (c *Controller) Dispatch(ctx context.Context, ev domain.Event) error {
	c.log.Debug("dispatch %s %q", ev.Type, ev.Payload)

	switch ev.Type {
	case domain.EventSearchChanged:
		c.SetSearch(ev.Payload)
	case domain.EventIngredientChanged:
		c.SetIngredient(ev.Payload)
	case domain.EventChipClicked:
		c.ClickChip(ev.Payload)
	case domain.EventClearFilters:
		c.ClearFilters()
	case domain.EventToggleFilterPanel:
		c.ToggleFilterPanel()
	case domain.EventPrevious:
		return c.Previous(ctx)
	case domain.EventNext:
		return c.Next(ctx)
	case domain.EventGoTo:
		page, err := strconv.Atoi(strings.TrimSpace(ev.Payload))
		if err != nil {
			return fmt.Errorf("page %q: %w", ev.Payload, domain.ErrPageOutOfRange)
		}
		return c.GoTo(ctx, page)
	case domain.EventSelectRecipe:
		return c.selectRef(ctx, ev.Payload)
	case domain.EventSelectCard:
		pos, err := strconv.Atoi(strings.TrimSpace(ev.Payload))
		if err != nil {
			return fmt.Errorf("card %q: %w", ev.Payload, domain.ErrNotFound)
		}
		return c.SelectCard(ctx, pos)
	case domain.EventCloseDetail:
		c.CloseDetail()
	case domain.EventSaveRecipe:
		return c.SaveSelected(ctx)
	case domain.EventRemoveFavourite:
		return c.removeRef(ctx, ev.Payload)
	case domain.EventShowFavourites:
		c.ToggleFavourites()
	case domain.EventHelp, domain.EventQuit:
		// Handled by the surface.
	default:
		return fmt.Errorf("%s: %w", ev.Type, domain.ErrUnknownEvent)
	}
	return nil
}

// SetSearch replaces the name query. Any change returns to page 1.
func (c *Controller) SetSearch(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if q == c.search {
		return
	}
	c.search = q
	c.pager.Reset()
}

// SetIngredient replaces the ingredient filter. Any change returns to page 1.
func (c *Controller) SetIngredient(i string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i == c.ingredient {
		return
	}
	c.ingredient = i
	c.pager.Reset()
}

// ClickChip filters by the chip's ingredient name.
func (c *Controller) ClickChip(name string) {
	c.SetIngredient(name)
}

// ClearFilters empties both filters and hides the filter panel.
func (c *Controller) ClearFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = ""
	c.ingredient = ""
	c.showFilters = false
	c.pager.Reset()
}

// ToggleFilterPanel shows or hides the ingredient chips.
func (c *Controller) ToggleFilterPanel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showFilters = !c.showFilters
}

// ToggleFavourites switches between the results and the favourites list.
func (c *Controller) ToggleFavourites() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showFavourites = !c.showFavourites
}

// Previous moves back one page; a no-op on page 1.
func (c *Controller) Previous(ctx context.Context) error {
	n, err := c.filteredCount(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pager.Previous(n)
	return nil
}

// Next moves forward one page; a no-op on the last page.
func (c *Controller) Next(ctx context.Context) error {
	n, err := c.filteredCount(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pager.Next(n)
	return nil
}

// GoTo jumps to a 1-based page. Out-of-range pages are ignored and
// reported with domain.ErrPageOutOfRange.
func (c *Controller) GoTo(ctx context.Context, page int) error {
	n, err := c.filteredCount(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pager.GoTo(page, n)
}

// Select opens the detail view for a recipe id. Selecting replaces any
// open recipe, so at most one is ever open.
func (c *Controller) Select(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	r, err := c.source().Get(ctx, id)
	if err != nil {
		// A favourite may outlive a reload that dropped its recipe.
		fav := c.favourite(ctx, id)
		if fav == nil {
			return fmt.Errorf("selecting recipe: %w", err)
		}
		r = fav
	}

	c.mu.Lock()
	c.selected = r
	c.mu.Unlock()

	c.log.Info("opened recipe %s (%s)", r.ID, r.Name)
	return nil
}

// SelectCard opens the card at the 1-based position of the list on
// screen: the current page, or the favourites when they are shown.
func (c *Controller) SelectCard(ctx context.Context, pos int) error {
	view, err := c.Snapshot(ctx)
	if err != nil {
		return err
	}
	cards := view.Cards()
	if pos < 1 || pos > len(cards) {
		return fmt.Errorf("card %d of %d: %w", pos, len(cards), domain.ErrNotFound)
	}
	return c.Select(ctx, cards[pos-1].ID)
}

// selectRef resolves an event payload. A number that fits the cards on
// screen is a card position, since that is the label the user sees;
// anything else is an id.
func (c *Controller) selectRef(ctx context.Context, ref string) error {
	pos, ok, err := c.cardRef(ctx, ref)
	if err != nil {
		return err
	}
	if ok {
		return c.SelectCard(ctx, pos)
	}
	return c.Select(ctx, ref)
}

// cardRef reports whether ref is a 1-based position among the cards on
// screen.
func (c *Controller) cardRef(ctx context.Context, ref string) (int, bool, error) {
	pos, convErr := strconv.Atoi(strings.TrimSpace(ref))
	if convErr != nil || pos < 1 {
		return 0, false, nil
	}
	view, err := c.Snapshot(ctx)
	if err != nil {
		return 0, false, err
	}
	return pos, pos <= len(view.Cards()), nil
}

// CloseDetail clears the selection. Closing when nothing is open is fine.
func (c *Controller) CloseDetail() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
}

// Selected returns the open recipe, or nil.
func (c *Controller) Selected() *domain.Recipe {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return nil
	}
	r := *c.selected
	return &r
}

// SaveSelected stores the open recipe in favourites.
func (c *Controller) SaveSelected(ctx context.Context) error {
	r := c.Selected()
	if r == nil {
		return domain.ErrNoSelection
	}
	if err := c.favourites.Save(ctx, *r); err != nil {
		return fmt.Errorf("saving favourite: %w", err)
	}
	c.log.Info("saved %s to favourites", r.ID)
	return nil
}

// RemoveFavourite drops a recipe from favourites by id.
func (c *Controller) RemoveFavourite(ctx context.Context, id string) error {
	if err := c.favourites.Remove(ctx, id); err != nil {
		return fmt.Errorf("removing favourite: %w", err)
	}
	c.log.Info("removed %s from favourites", id)
	return nil
}

// removeRef resolves a remove payload: empty means the open recipe, a
// number that fits the cards on screen is a card position, anything else
// is an id.
func (c *Controller) removeRef(ctx context.Context, ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		r := c.Selected()
		if r == nil {
			return domain.ErrNoSelection
		}
		return c.RemoveFavourite(ctx, r.ID)
	}
	pos, ok, err := c.cardRef(ctx, ref)
	if err != nil {
		return err
	}
	if ok {
		view, err := c.Snapshot(ctx)
		if err != nil {
			return err
		}
		ref = view.Cards()[pos-1].ID
	}
	return c.RemoveFavourite(ctx, ref)
}

// Favourites lists saved recipes.
func (c *Controller) Favourites(ctx context.Context) ([]domain.Recipe, error) {
	return c.favourites.List(ctx)
}

func (c *Controller) favourite(ctx context.Context, id string) *domain.Recipe {
	favs, err := c.favourites.List(ctx)
	if err != nil {
		return nil
	}
	for _, f := range favs {
		if f.ID == id {
			return &f
		}
	}
	return nil
}

func (c *Controller) filteredCount(ctx context.Context) (int, error) {
	all, err := c.source().List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing recipes: %w", err)
	}
	c.mu.Lock()
	q, i := c.search, c.ingredient
	c.mu.Unlock()
	return len(catalog.Filter(all, q, i)), nil
}

func (c *Controller) source() domain.RecipeSource {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recipes
}
