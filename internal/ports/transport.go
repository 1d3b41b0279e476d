package ports

import "github.com/gabrielcapilla/tapedeck/internal/domain"

type Transport interface {
	PlayPause()
	FastForward()
	Rewind()
	Stop()
	Snapshot() domain.Snapshot
	// Subscribe returns a channel that always holds the latest snapshot and a
	// func that cancels the subscription.
	Subscribe() (<-chan domain.Snapshot, func())
}
