// Package domain defines the core types and interfaces for the recipe browser.
// All other packages depend on domain; domain depends on nothing.
package domain

import (
	"fmt"
	"strings"
)

// Display fallbacks for optional recipe fields.
const (
	DefaultRating      = 4.8
	DefaultDescription = "Resep favorit yang mudah dibuat dan penuh cita rasa."
)

// RecipeType tells food and drinks apart.
type RecipeType int

const (
	TypeFood RecipeType = iota
	TypeBeverage
)

// String returns the wire spelling used in recipe files.
func (t RecipeType) String() string {
	switch t {
	case TypeFood:
		return "food"
	case TypeBeverage:
		return "beverage"
	default:
		return "unknown"
	}
}

// Label returns the name shown on badges.
func (t RecipeType) Label() string {
	if t == TypeBeverage {
		return "Minuman"
	}
	return "Makanan"
}

// ParseRecipeType accepts the English and Indonesian spellings.
func ParseRecipeType(s string) (RecipeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "food", "makanan", "":
		return TypeFood, nil
	case "beverage", "drink", "minuman":
		return TypeBeverage, nil
	default:
		return TypeFood, fmt.Errorf("unknown recipe type %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t RecipeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *RecipeType) UnmarshalText(b []byte) error {
	parsed, err := ParseRecipeType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Recipe is an immutable recipe record. Identity is ID.
//
// Ingredients keep their quantity prefix ("2 cups rice"); steps are in
// execution order.
type Recipe struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Type        RecipeType `yaml:"type"`
	ImageURL    string     `yaml:"image_url"`
	Description string     `yaml:"description,omitempty"`
	Ingredients []string   `yaml:"ingredients"`
	Steps       []string   `yaml:"steps"`
	Rating      *float64   `yaml:"rating,omitempty"`
}

// DisplayRating returns the rating or DefaultRating when absent.
func (r Recipe) DisplayRating() float64 {
	if r.Rating == nil {
		return DefaultRating
	}
	return *r.Rating
}

// DisplayDescription returns the description or DefaultDescription when blank.
func (r Recipe) DisplayDescription() string {
	if strings.TrimSpace(r.Description) == "" {
		return DefaultDescription
	}
	return r.Description
}

// Validate reports records the browser cannot show.
func (r Recipe) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidRecipe)
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: recipe %s has no name", ErrInvalidRecipe, r.ID)
	}
	return nil
}
