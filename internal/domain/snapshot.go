package domain

import (
	"fmt"
	"math"
)

// Snapshot is a point-in-time view of the deck handed to renderers.
type Snapshot struct {
	Mode     Mode
	Position float64
	Flash    Button
	Label    string
}

func (s Snapshot) Status() string { return s.Mode.String() }

// Counter formats the position as the zero-padded tape counter, e.g. "007.5".
func (s Snapshot) Counter() string {
	return fmt.Sprintf("%05.1f", s.Position)
}

// TakeupPercent is the fill of the reel the tape is wound onto.
func (s Snapshot) TakeupPercent() int {
	return int(math.Round(s.Position))
}

// SupplyPercent is the fill of the reel the tape is wound from.
func (s Snapshot) SupplyPercent() int {
	return int(math.Round(100 - s.Position))
}

func (s Snapshot) Pressed(b Button) bool {
	return b != NoButton && s.Flash == b
}
