package domain

// Mode is the transport mode of the deck. Exactly one mode is active at a
// time, so playing, fast-forwarding and rewinding can never overlap.
type Mode int

const (
	Stopped Mode = iota
	Playing
	FastForwarding
	Rewinding
)

// Tape speeds in position units per millisecond.
const (
	PlayRate  = 0.01
	SpoolRate = 0.05
)

func (m Mode) IsPlaying() bool        { return m == Playing }
func (m Mode) IsFastForwarding() bool { return m == FastForwarding }
func (m Mode) IsRewinding() bool      { return m == Rewinding }

// IsMoving reports whether the tape is being transported.
func (m Mode) IsMoving() bool { return m != Stopped }

// String returns the status text shown on the deck display.
func (m Mode) String() string {
	switch m {
	case Playing:
		return "PLAYING"
	case FastForwarding:
		return "FF >>"
	case Rewinding:
		return "<< RW"
	default:
		return "STOPPED"
	}
}

// Apply returns the mode that results from pressing the button bound to cmd.
// Play, fast-forward and rewind toggle their own mode and replace any other;
// stop always stops.
func (m Mode) Apply(cmd Command) Mode {
	switch cmd {
	case PlayPause:
		return m.toggle(Playing)
	case FastForward:
		return m.toggle(FastForwarding)
	case Rewind:
		return m.toggle(Rewinding)
	default:
		return Stopped
	}
}

func (m Mode) toggle(target Mode) Mode {
	if m == target {
		return Stopped
	}
	return target
}
