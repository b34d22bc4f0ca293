package domain

// EventType classifies an inbound user action.
type EventType int

const (
	EventUnknown EventType = iota
	EventSearchChanged
	EventIngredientChanged
	EventChipClicked
	EventClearFilters
	EventToggleFilterPanel
	EventPrevious
	EventNext
	EventGoTo
	EventSelectRecipe
	EventSelectCard
	EventCloseDetail
	EventSaveRecipe
	EventRemoveFavourite
	EventShowFavourites
	EventHelp
	EventQuit
)

// String returns a human-readable event type.
func (e EventType) String() string {
	switch e {
	case EventSearchChanged:
		return "search_changed"
	case EventIngredientChanged:
		return "ingredient_changed"
	case EventChipClicked:
		return "chip_clicked"
	case EventClearFilters:
		return "clear_filters"
	case EventToggleFilterPanel:
		return "toggle_filter_panel"
	case EventPrevious:
		return "previous"
	case EventNext:
		return "next"
	case EventGoTo:
		return "go_to"
	case EventSelectRecipe:
		return "select_recipe"
	case EventSelectCard:
		return "select_card"
	case EventCloseDetail:
		return "close_detail"
	case EventSaveRecipe:
		return "save_recipe"
	case EventRemoveFavourite:
		return "remove_favourite"
	case EventShowFavourites:
		return "show_favourites"
	case EventHelp:
		return "help"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is one user action routed to the page controller.
//
// Payload carries the text for search/ingredient/chip events, the page
// number for go_to, the recipe id or 1-based card position for
// select_recipe and remove_favourite, and only a card position for
// select_card.
type Event struct {
	Type    EventType
	Payload string
}
