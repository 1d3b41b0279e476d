package ui

import (
	"github.com/gabrielcapilla/tapedeck/internal/domain"
	"github.com/gabrielcapilla/tapedeck/internal/ports"

	tea "github.com/charmbracelet/bubbletea"
)

// waitForSnapshotCmd blocks on the deck subscription and turns the next
// snapshot into a message. Update re-issues it after every delivery.
func waitForSnapshotCmd(updates <-chan domain.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return ports.TransportClosedMsg{}
		}
		return ports.SnapshotMsg{Snapshot: snap}
	}
}
