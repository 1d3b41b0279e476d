package deck

import (
	"math"
	"time"

	"github.com/gabrielcapilla/tapedeck/internal/domain"
)

const (
	MinPosition = 0.0
	MaxPosition = 100.0
)

// Integrator advances the tape position from frame timestamps. lastFrame is
// reset by Start at the beginning of every run, so the first frame of a run
// counts the time since the run began.
type Integrator struct {
	position  float64
	lastFrame time.Time
}

func NewIntegrator(position float64) *Integrator {
	return &Integrator{position: clamp(position)}
}

func (i *Integrator) Position() float64 { return i.position }

// Start begins a new run at now.
func (i *Integrator) Start(now time.Time) {
	i.lastFrame = now
}

// Step integrates the time since the previous frame at the speed of mode and
// returns the new position.
func (i *Integrator) Step(now time.Time, mode domain.Mode) float64 {
	delta := float64(now.Sub(i.lastFrame)) / float64(time.Millisecond)
	i.lastFrame = now
	if delta < 0 {
		delta = 0
	}

	i.position = clamp(i.position + delta*Rate(mode))
	return i.position
}

// Rate is the tape speed of mode in position units per millisecond. Every
// active contribution is summed.
func Rate(mode domain.Mode) float64 {
	var rate float64
	if mode.IsPlaying() {
		rate += domain.PlayRate
	}
	if mode.IsFastForwarding() {
		rate += domain.SpoolRate
	}
	if mode.IsRewinding() {
		rate -= domain.SpoolRate
	}
	return rate
}

func clamp(position float64) float64 {
	if math.IsNaN(position) {
		return MinPosition
	}
	return math.Max(MinPosition, math.Min(MaxPosition, position))
}
