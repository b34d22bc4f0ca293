package display

import "github.com/charmbracelet/lipgloss"

// Soft zinc/slate palette shared by every surface.
var (
	barBg = lipgloss.NewStyle().
		Background(lipgloss.Color("#27272a")).
		Foreground(lipgloss.Color("#a1a1aa"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Underline(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// BannerStyle is the muted slate used for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#bbf7d0"))

	userInputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(0, 1)

	activeChipStyle = chipStyle.
			Foreground(lipgloss.Color("#fde68a")).
			BorderForeground(lipgloss.Color("#fde68a"))

	// Settled cards are fully drawn; entering cards are faint until
	// their reveal timer fires.
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#94a3b8")).
			Padding(0, 1)

	enteringCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("#3f3f46")).
				Foreground(lipgloss.Color("#3f3f46")).
				Faint(true)

	cardNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8")).
			Bold(true)

	foodBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fdba74"))

	drinkBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	ratingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	pageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	currentPageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#27272a")).
				Background(lipgloss.Color("#fde68a"))

	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3f3f46"))
)
