package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/hammamikhairi/resepi/internal/domain"
	"github.com/hammamikhairi/resepi/internal/engine"
	"github.com/hammamikhairi/resepi/internal/reveal"
)

// Card geometry in terminal cells, border included.
const (
	cardWidth     = 34
	cardLines     = 5
	cardHeight    = cardLines + 2
	cardTextWidth = cardWidth - 4
)

// columns returns how many cards fit side by side.
func columns(width int) int {
	if n := width / cardWidth; n > 1 {
		return n
	}
	return 1
}

// cardSpans places count cards row by row, cols per row.
func cardSpans(count, cols int) []reveal.Span {
	spans := make([]reveal.Span, count)
	for i := range spans {
		spans[i] = reveal.Span{Top: (i / cols) * cardHeight, Height: cardHeight}
	}
	return spans
}

// renderCard draws one recipe. pos is the 1-based number typed to open it.
func renderCard(r domain.Recipe, pos int, settled bool) string {
	badge := foodBadgeStyle
	if r.Type == domain.TypeBeverage {
		badge = drinkBadgeStyle
	}

	desc := wrapLines(r.DisplayDescription(), cardTextWidth, 2)
	for len(desc) < 2 {
		desc = append(desc, "")
	}

	lines := []string{
		cardNameStyle.Render(ansi.Truncate(fmt.Sprintf("%d. %s", pos, r.Name), cardTextWidth, "…")),
		badge.Render(r.Type.Label()) + sepStyle.Render(" · ") +
			ratingStyle.Render(fmt.Sprintf("★ %.1f", r.DisplayRating())),
		secondaryStyle.Render(desc[0]),
		secondaryStyle.Render(desc[1]),
		labelStyle.Render(fmt.Sprintf("%d bahan · %d langkah", len(r.Ingredients), len(r.Steps))),
	}

	style := cardStyle
	if !settled {
		style = enteringCardStyle
		// Entering cards show only their outline and name.
		lines = []string{
			ansi.Truncate(fmt.Sprintf("%d. %s", pos, r.Name), cardTextWidth, "…"),
			"", "", "", "",
		}
	}
	return style.Width(cardWidth - 2).Render(strings.Join(lines, "\n"))
}

// renderGrid lays out cards in rows. visible reports whether card i has
// settled.
func renderGrid(cards []domain.Recipe, cols int, visible func(int) bool) string {
	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		row := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			row = append(row, renderCard(cards[i], i+1, visible(i)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

// renderChips draws the popular ingredient chips, marking the active one.
func renderChips(v engine.View) string {
	if len(v.Popular) == 0 {
		return secondaryStyle.Render("  Belum ada bahan")
	}
	chips := make([]string, len(v.Popular))
	for i, name := range v.Popular {
		style := chipStyle
		if strings.EqualFold(name, v.IngredientFilter) {
			style = activeChipStyle
		}
		chips[i] = style.Render(name)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// renderPager draws the pagination bar. Disabled ends are dimmed.
func renderPager(v engine.View) string {
	prev, next := pageStyle, pageStyle
	if !v.HasPrevious {
		prev = disabledStyle
	}
	if !v.HasNext {
		next = disabledStyle
	}

	parts := []string{prev.Render("‹ Sebelumnya")}
	for _, p := range v.Pages {
		label := fmt.Sprintf(" %d ", p)
		if p == v.CurrentPage {
			parts = append(parts, currentPageStyle.Render(label))
		} else {
			parts = append(parts, pageStyle.Render(label))
		}
	}
	parts = append(parts, next.Render("Selanjutnya ›"))
	return strings.Join(parts, " ")
}

// wrapLines word-wraps s to width and keeps at most n lines, marking a
// cut with an ellipsis.
func wrapLines(s string, width, n int) []string {
	wrapped := strings.Split(lipgloss.NewStyle().Width(width).Render(s), "\n")
	for i := range wrapped {
		wrapped[i] = strings.TrimRight(wrapped[i], " ")
	}
	if len(wrapped) <= n {
		return wrapped
	}
	out := wrapped[:n]
	out[n-1] = ansi.Truncate(out[n-1]+" …", width, "…")
	return out
}
