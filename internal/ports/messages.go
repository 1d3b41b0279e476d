package ports

import "github.com/gabrielcapilla/tapedeck/internal/domain"

type SnapshotMsg struct{ Snapshot domain.Snapshot }

// TransportClosedMsg is sent once the deck has been torn down and its
// subscription channel closed.
type TransportClosedMsg struct{}
