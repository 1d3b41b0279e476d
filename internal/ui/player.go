package ui

import (
	"fmt"
	"time"

	"github.com/gabrielcapilla/tapedeck/internal/domain"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const reelWidth = 12

var reelSpinner = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 12,
}

// PlayerModel draws the cassette window and the counter display. The reels
// turn only while the tape moves.
type PlayerModel struct {
	reel     spinner.Model
	spinning bool
	fill     progress.Model
	styles   Styles
}

func NewPlayerModel(styles Styles) PlayerModel {
	return PlayerModel{
		reel: spinner.New(spinner.WithSpinner(reelSpinner)),
		fill: progress.New(
			progress.WithSolidFill(string(amber.Dark)),
			progress.WithWidth(reelWidth-2),
			progress.WithoutPercentage(),
		),
		styles: styles,
	}
}

// SetMoving starts or parks the reels. The returned command keeps them
// turning; once parked, the next tick is dropped in Update.
func (m *PlayerModel) SetMoving(moving bool) tea.Cmd {
	if moving && !m.spinning {
		m.spinning = true
		return m.reel.Tick
	}
	return nil
}

func (m PlayerModel) Spinning() bool { return m.spinning }

func (m PlayerModel) Update(msg spinner.TickMsg, moving bool) (PlayerModel, tea.Cmd) {
	if !moving {
		m.spinning = false
		return m, nil
	}
	var cmd tea.Cmd
	m.reel, cmd = m.reel.Update(msg)
	return m, cmd
}

func (m PlayerModel) reelView(percent int, moving bool) string {
	style := m.styles.Reel
	if moving {
		style = m.styles.ReelMoving
	}
	content := lipgloss.JoinVertical(lipgloss.Center,
		m.reel.View(),
		m.fill.ViewAs(float64(percent)/100),
		m.styles.ReelPercent.Render(fmt.Sprintf("%d%%", percent)),
	)
	return style.Render(content)
}

// WindowView renders both reels: tape leaves the left reel and winds onto the
// right one.
func (m PlayerModel) WindowView(s domain.Snapshot, width int) string {
	moving := s.Mode.IsMoving()
	reels := lipgloss.JoinHorizontal(lipgloss.Center,
		m.reelView(s.SupplyPercent(), moving),
		m.styles.Spindle.Render("═══"),
		m.reelView(s.TakeupPercent(), moving),
	)

	labelWidth := lipgloss.Width(reels)
	if width > 0 && width < labelWidth {
		labelWidth = width
	}
	label := m.styles.Label.Width(labelWidth).Render(truncate(s.Label, labelWidth))

	return m.styles.Window.Render(lipgloss.JoinVertical(lipgloss.Center, reels, label))
}

// DisplayView renders the status text and the tape counter.
func (m PlayerModel) DisplayView(s domain.Snapshot) string {
	status := m.styles.Status.Width(9).Render(s.Status())
	counter := m.styles.Counter.Render(s.Counter())
	return m.styles.Display.Render(lipgloss.JoinHorizontal(lipgloss.Top, status, "  ", counter))
}
