package ui

import (
	"github.com/gabrielcapilla/tapedeck/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

const buttonGap = 1

func buttonBorder(top, bottom string) lipgloss.Border {
	border := lipgloss.RoundedBorder()
	border.Top = top
	border.Bottom = bottom
	return border
}

// A raised button casts a heavy bottom edge; a pressed one sinks it to the top.
var (
	raisedButtonBorder  = buttonBorder("─", "━")
	pressedButtonBorder = buttonBorder("━", "─")
)

var raisedButtonStyle = lipgloss.NewStyle().
	Border(raisedButtonBorder, true).
	BorderForeground(steel).
	Width(9).
	Align(lipgloss.Center)

var pressedButtonStyle = raisedButtonStyle.
	Border(pressedButtonBorder, true).
	BorderForeground(shadow).
	Faint(true)

type deckButton struct {
	cmd     domain.Command
	caption func(domain.Snapshot) string
	active  func(domain.Mode) bool
	accent  lipgloss.TerminalColor
}

// Left to right, as on the deck.
var deckButtons = []deckButton{
	{
		cmd:     domain.Rewind,
		caption: func(domain.Snapshot) string { return "◀◀ RW" },
		active:  domain.Mode.IsRewinding,
		accent:  amber,
	},
	{
		cmd: domain.PlayPause,
		caption: func(s domain.Snapshot) string {
			if s.Mode.IsPlaying() {
				return "❚❚ PAUSE"
			}
			return "▶ PLAY"
		},
		active: domain.Mode.IsPlaying,
		accent: green,
	},
	{
		cmd:     domain.Stop,
		caption: func(domain.Snapshot) string { return "■ STOP" },
		active:  func(domain.Mode) bool { return false },
		accent:  red,
	},
	{
		cmd:     domain.FastForward,
		caption: func(domain.Snapshot) string { return "FF ▶▶" },
		active:  domain.Mode.IsFastForwarding,
		accent:  amber,
	},
}

func (b deckButton) View(s domain.Snapshot) string {
	style := raisedButtonStyle
	if s.Pressed(b.cmd.Button()) {
		style = pressedButtonStyle
		if b.cmd == domain.Stop {
			style = style.Foreground(b.accent)
		}
	}
	if b.active(s.Mode) {
		style = style.BorderForeground(b.accent).Foreground(b.accent).Bold(true)
	}
	return style.Render(b.caption(s))
}

func renderButtons(s domain.Snapshot) []string {
	views := make([]string, len(deckButtons))
	for i, b := range deckButtons {
		views[i] = b.View(s)
	}
	return views
}

func joinButtons(views []string) string {
	gap := lipgloss.NewStyle().Width(buttonGap).Render("")
	row := make([]string, 0, 2*len(views))
	for i, v := range views {
		if i > 0 {
			row = append(row, gap)
		}
		row = append(row, v)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, row...)
}

// buttonAt maps a cell inside the button row, relative to the row's top-left
// corner, to the command of the button drawn there.
func buttonAt(views []string, x, y int) (domain.Command, bool) {
	left := 0
	for i, v := range views {
		w, h := lipgloss.Width(v), lipgloss.Height(v)
		if x >= left && x < left+w && y >= 0 && y < h {
			return deckButtons[i].cmd, true
		}
		left += w + buttonGap
	}
	return 0, false
}
