package ui

import "github.com/charmbracelet/lipgloss"

var (
	amber      = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"}
	green      = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	red        = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#EF4444"}
	steel      = lipgloss.AdaptiveColor{Light: "#52525B", Dark: "#A1A1AA"}
	shadow     = lipgloss.AdaptiveColor{Light: "#A1A1AA", Dark: "#3F3F46"}
	labelColor = lipgloss.AdaptiveColor{Light: "#78350F", Dark: "#FDE68A"}
)

type Styles struct {
	App         lipgloss.Style
	Window      lipgloss.Style
	Reel        lipgloss.Style
	ReelMoving  lipgloss.Style
	ReelPercent lipgloss.Style
	Spindle     lipgloss.Style
	Label       lipgloss.Style
	Display     lipgloss.Style
	Status      lipgloss.Style
	Counter     lipgloss.Style
	Badge       lipgloss.Style
	BadgeAccent lipgloss.Style
	Help        lipgloss.Style
	Small       lipgloss.Style
}

func DefaultStyles() Styles {
	s := Styles{}
	s.App = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(shadow).
		Padding(1, 2)
	s.Window = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(steel).
		Padding(0, 1)
	s.Reel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(steel).
		Width(reelWidth).
		Align(lipgloss.Center)
	s.ReelMoving = s.Reel.BorderForeground(amber)
	s.ReelPercent = lipgloss.NewStyle().Foreground(steel)
	s.Spindle = lipgloss.NewStyle().Foreground(shadow).Padding(1, 1)
	s.Label = lipgloss.NewStyle().
		Foreground(labelColor).
		Bold(true).
		Align(lipgloss.Center)
	s.Display = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true).
		BorderForeground(shadow).
		Padding(0, 1)
	s.Status = lipgloss.NewStyle().Foreground(amber).Bold(true)
	s.Counter = lipgloss.NewStyle().Foreground(green)
	s.Badge = lipgloss.NewStyle().Foreground(steel).Bold(true)
	s.BadgeAccent = lipgloss.NewStyle().Foreground(amber).Bold(true)
	s.Help = lipgloss.NewStyle().Foreground(steel)
	s.Small = lipgloss.NewStyle().Foreground(steel).Faint(true)
	return s
}
