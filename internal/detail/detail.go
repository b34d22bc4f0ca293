// Package detail builds the full-recipe view shown when a card is opened.
// It is a pure function of the selected recipe: no selection, no view.
package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/hammamikhairi/resepi/internal/domain"
)

// Fixed values shown in the stats row.
const (
	Servings = "2-3 orang"
	Duration = "30 menit"
)

// Stat is one cell of the stats row.
type Stat struct {
	Label string
	Value string
}

// View is the rendered content of an open recipe.
type View struct {
	ID          string
	Name        string
	Badge       string
	Rating      float64
	ImageURL    string
	Description string
	Ingredients []string
	Steps       []string
	Stats       []Stat
}

// New builds the view for r. A nil recipe means the detail is closed and
// yields nil.
func New(r *domain.Recipe) *View {
	if r == nil {
		return nil
	}
	return &View{
		ID:          r.ID,
		Name:        r.Name,
		Badge:       r.Type.Label(),
		Rating:      r.DisplayRating(),
		ImageURL:    r.ImageURL,
		Description: r.DisplayDescription(),
		Ingredients: append([]string(nil), r.Ingredients...),
		Steps:       append([]string(nil), r.Steps...),
		Stats: []Stat{
			{Label: "Bahan", Value: fmt.Sprintf("%d item", len(r.Ingredients))},
			{Label: "Langkah", Value: fmt.Sprintf("%d langkah", len(r.Steps))},
			{Label: "Porsi", Value: Servings},
			{Label: "Waktu", Value: Duration},
		},
	}
}

// Markdown lays the view out as a markdown document. Steps keep their
// order and are numbered from 1.
func (v *View) Markdown() string {
	if v == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", v.Name)
	fmt.Fprintf(&b, "**%s** · ★ %.1f\n\n", v.Badge, v.Rating)
	fmt.Fprintf(&b, "%s\n\n", v.Description)

	b.WriteString("| ")
	for _, s := range v.Stats {
		b.WriteString(s.Label + " | ")
	}
	b.WriteString("\n|")
	for range v.Stats {
		b.WriteString("---|")
	}
	b.WriteString("\n| ")
	for _, s := range v.Stats {
		b.WriteString(s.Value + " | ")
	}
	b.WriteString("\n\n")

	b.WriteString("## Bahan-bahan\n\n")
	for _, ing := range v.Ingredients {
		fmt.Fprintf(&b, "- %s\n", ing)
	}

	b.WriteString("\n## Langkah Pembuatan\n\n")
	for i, step := range v.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return b.String()
}

// Render draws the view for a terminal of the given width. It falls back
// to the raw markdown if the renderer cannot be built.
func Render(v *View, width int) (string, error) {
	if v == nil {
		return "", nil
	}
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return v.Markdown(), fmt.Errorf("building renderer: %w", err)
	}
	out, err := r.Render(v.Markdown())
	if err != nil {
		return v.Markdown(), fmt.Errorf("rendering %s: %w", v.ID, err)
	}
	return out, nil
}
