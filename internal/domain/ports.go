package domain

import "context"

// RecipeSource supplies the recipe collection. The browser only needs a
// stable iteration order; List must return the same order on every call
// until the source is replaced.
type RecipeSource interface {
	List(ctx context.Context) ([]Recipe, error)
	Get(ctx context.Context, id string) (*Recipe, error)
	// Version changes whenever the collection is replaced. Derived data
	// (the ingredient index) is keyed by it.
	Version() uint64
}

// FavouriteStore keeps recipes the user saved from the detail view.
// Implementations can be in-memory or anything else.
type FavouriteStore interface {
	Save(ctx context.Context, recipe Recipe) error
	Remove(ctx context.Context, id string) error
	Has(ctx context.Context, id string) bool
	List(ctx context.Context) ([]Recipe, error)
}

// EventParser converts a typed or spoken command line into an event.
type EventParser interface {
	Parse(ctx context.Context, input string) (*Event, error)
}

// SpeechInput turns one spoken utterance into text.
type SpeechInput interface {
	Listen(ctx context.Context) (string, error)
}

// Notifier delivers status messages to the user.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}

// VisibilityNotifier reports when rendered cards enter the viewport.
// The reveal scheduler subscribes to it once per rendered batch.
type VisibilityNotifier interface {
	// Observe registers card positions 0..count-1 and calls fn with the
	// visible fraction each time a card crosses into view. The returned
	// func releases every observation.
	Observe(count int, fn func(index int, ratio float64)) (release func())
}
