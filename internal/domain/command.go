package domain

// Command is one of the four transport buttons.
type Command int

const (
	PlayPause Command = iota
	FastForward
	Rewind
	Stop
)

// Button identifies the most recently pressed button for the press flash.
type Button string

const (
	NoButton         Button = ""
	PlayButton       Button = "play"
	FastForwardButton Button = "ff"
	RewindButton     Button = "rw"
	StopButton       Button = "stop"
)

func (c Command) Button() Button {
	switch c {
	case PlayPause:
		return PlayButton
	case FastForward:
		return FastForwardButton
	case Rewind:
		return RewindButton
	default:
		return StopButton
	}
}

func (c Command) String() string {
	return string(c.Button())
}
