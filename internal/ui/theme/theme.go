package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: Porsche red on black with silver
var (
	Primary   = lipgloss.Color("#BC2026") // Guards Red
	Secondary = lipgloss.Color("#B4B4B4") // Silver
	Accent    = lipgloss.Color("#E0A526") // Crest Gold
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#8A8A8A") // Grey
	BgCard    = lipgloss.Color("#1C1C1C") // Charcoal
	Border    = lipgloss.Color("#3A3A3A") // Graphite
)

// Typography
var (
	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	QuestionCard = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(1, 2).
			Align(lipgloss.Center)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(TextDim).
			Padding(0, 2)
)
