package ui

import (
	"github.com/gabrielcapilla/tapedeck/internal/domain"
	"github.com/gabrielcapilla/tapedeck/internal/logger"
	"github.com/gabrielcapilla/tapedeck/internal/ports"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	MIN_WIDTH  = 56
	MIN_HEIGHT = 24
)

type AppModel struct {
	width, height int
	transport     ports.Transport
	updates       <-chan domain.Snapshot
	unsubscribe   func()
	snapshot      domain.Snapshot
	player        PlayerModel
	keys          keyMap
	help          help.Model
	styles        Styles
}

func InitialModel(transport ports.Transport) AppModel {
	styles := DefaultStyles()
	updates, unsubscribe := transport.Subscribe()
	return AppModel{
		transport:   transport,
		updates:     updates,
		unsubscribe: unsubscribe,
		snapshot:    transport.Snapshot(),
		player:      NewPlayerModel(styles),
		keys:        defaultKeyMap(),
		help:        help.New(),
		styles:      styles,
	}
}

func (m AppModel) Init() tea.Cmd { return waitForSnapshotCmd(m.updates) }

func (m AppModel) send(cmd domain.Command) {
	logger.Log.Debug().Str("button", cmd.String()).Msg("Button pressed")
	switch cmd {
	case domain.PlayPause:
		m.transport.PlayPause()
	case domain.FastForward:
		m.transport.FastForward()
	case domain.Rewind:
		m.transport.Rewind()
	case domain.Stop:
		m.transport.Stop()
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.unsubscribe()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.PlayPause):
			m.send(domain.PlayPause)
		case key.Matches(msg, m.keys.FastForward):
			m.send(domain.FastForward)
		case key.Matches(msg, m.keys.Rewind):
			m.send(domain.Rewind)
		case key.Matches(msg, m.keys.Stop):
			m.send(domain.Stop)
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if c, ok := m.buttonAt(msg.X, msg.Y); ok {
				m.send(c)
			}
		}
	case ports.SnapshotMsg:
		m.snapshot = msg.Snapshot
		cmd = m.player.SetMoving(m.snapshot.Mode.IsMoving())
		return m, tea.Batch(waitForSnapshotCmd(m.updates), cmd)
	case ports.TransportClosedMsg:
		logger.Log.Info().Msg("Deck closed, leaving")
		return m, tea.Quit
	case spinner.TickMsg:
		m.player, cmd = m.player.Update(msg, m.snapshot.Mode.IsMoving())
		return m, cmd
	}

	return m, nil
}

func (m AppModel) tooSmall() bool {
	return m.width < MIN_WIDTH || m.height < MIN_HEIGHT
}

// sections renders everything above the button row, the buttons, and
// everything below. View and buttonAt share it so clicks always line up with
// what is on screen.
func (m AppModel) sections() (top string, buttons []string, bottom string) {
	availableWidth := m.width - m.styles.App.GetHorizontalFrameSize()

	top = lipgloss.JoinVertical(lipgloss.Left,
		m.player.WindowView(m.snapshot, availableWidth),
		m.player.DisplayView(m.snapshot),
	)
	buttons = renderButtons(m.snapshot)

	badge := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Badge.Render("RETRO AUDIO"),
		" ",
		m.styles.BadgeAccent.Render("TAPE DECK"),
	)
	bottom = lipgloss.JoinVertical(lipgloss.Left,
		"",
		badge,
		"",
		m.styles.Help.Render(m.help.View(m.keys)),
	)
	return top, buttons, bottom
}

func (m AppModel) buttonAt(x, y int) (domain.Command, bool) {
	if m.tooSmall() {
		return 0, false
	}
	top, buttons, _ := m.sections()
	app := m.styles.App
	originX := app.GetMarginLeft() + app.GetBorderLeftSize() + app.GetPaddingLeft()
	originY := app.GetMarginTop() + app.GetBorderTopSize() + app.GetPaddingTop() + lipgloss.Height(top)
	return buttonAt(buttons, x-originX, y-originY)
}

func (m AppModel) View() string {
	if m.tooSmall() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, "Terminal too small")
	}

	top, buttons, bottom := m.sections()
	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		top,
		joinButtons(buttons),
		bottom,
	))
}
