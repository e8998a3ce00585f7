// Package theme defines the console styles used by the lingua CLI.
package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingua/internal/achievements"
	"github.com/abhisek/lingua/internal/skillpath"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate

	Bronze   = lipgloss.Color("#CD7F32")
	Silver   = lipgloss.Color("#C0C0C0")
	Gold     = lipgloss.Color("#FFD700")
	Platinum = lipgloss.Color("#E5E4E2")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(TextDim)

	Value = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Layout
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 2)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Locked = lipgloss.NewStyle().
		Foreground(TextDim)

	Available = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Completed = lipgloss.NewStyle().
			Foreground(Success)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

// Result returns the style for a checked answer.
func Result(correct bool) lipgloss.Style {
	if correct {
		return Correct
	}
	return Incorrect
}

// LessonState returns the style for a lesson's state on a path.
func LessonState(s skillpath.LessonState) lipgloss.Style {
	switch s {
	case skillpath.StateCompleted:
		return Completed
	case skillpath.StateAvailable:
		return Available
	default:
		return Locked
	}
}

// Tier returns the style for an achievement tier.
func Tier(t achievements.Tier) lipgloss.Style {
	c := Bronze
	switch t {
	case achievements.TierSilver:
		c = Silver
	case achievements.TierGold:
		c = Gold
	case achievements.TierPlatinum:
		c = Platinum
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
