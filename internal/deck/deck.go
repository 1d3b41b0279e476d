package deck

import (
	"sync"
	"time"

	"github.com/gabrielcapilla/tapedeck/internal/domain"
	"github.com/gabrielcapilla/tapedeck/internal/logger"
	"github.com/gabrielcapilla/tapedeck/internal/ports"
)

type Options struct {
	FrameInterval time.Duration
	FlashDuration time.Duration
	DebounceFlash bool
	StartPosition float64
	Label         string
}

func DefaultOptions() Options {
	return Options{
		FrameInterval: 16 * time.Millisecond,
		FlashDuration: 150 * time.Millisecond,
		Label:         "MIXTAPE VOL. 1",
	}
}

func OptionsFromConfig(cfg domain.Config) Options {
	return Options{
		FrameInterval: cfg.FrameInterval,
		FlashDuration: cfg.Flash.Duration,
		DebounceFlash: cfg.Flash.Debounce,
		StartPosition: cfg.StartPosition,
		Label:         cfg.Label,
	}
}

// Compile-time check that Deck implements ports.Transport.
var _ ports.Transport = (*Deck)(nil)

// Deck is the cassette transport: the mode, the tape position and the press
// flash. Commands, frames and flash expiries all run under mu, one at a time.
type Deck struct {
	mu        sync.Mutex
	scheduler ports.Scheduler
	opts      Options

	mode       domain.Mode
	integrator *Integrator

	// frames is the running frame task, nil while stopped. run identifies
	// the current run; frames carrying an older run are dropped.
	frames ports.Task
	run    uint64

	flash    domain.Button
	flashes  map[uint64]ports.Task
	flashSeq uint64

	closed bool
	subs   map[uint64]chan domain.Snapshot
	subSeq uint64
}

func New(scheduler ports.Scheduler, opts Options) *Deck {
	defaults := DefaultOptions()
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = defaults.FrameInterval
	}
	if opts.FlashDuration <= 0 {
		opts.FlashDuration = defaults.FlashDuration
	}

	return &Deck{
		scheduler:  scheduler,
		opts:       opts,
		mode:       domain.Stopped,
		integrator: NewIntegrator(opts.StartPosition),
		flashes:    make(map[uint64]ports.Task),
		subs:       make(map[uint64]chan domain.Snapshot),
	}
}

func (d *Deck) PlayPause()   { d.press(domain.PlayPause) }
func (d *Deck) FastForward() { d.press(domain.FastForward) }
func (d *Deck) Rewind()      { d.press(domain.Rewind) }
func (d *Deck) Stop()        { d.press(domain.Stop) }

func (d *Deck) press(cmd domain.Command) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	d.flashLocked(cmd.Button())

	prev := d.mode
	d.mode = prev.Apply(cmd)
	if d.mode != prev {
		logger.Log.Debug().
			Str("command", cmd.String()).
			Str("from", prev.String()).
			Str("to", d.mode.String()).
			Float64("position", d.integrator.Position()).
			Msg("Transport changed")

		d.stopFramesLocked()
		if d.mode.IsMoving() {
			d.startFramesLocked()
		}
	}

	d.publishLocked()
}

func (d *Deck) startFramesLocked() {
	d.run++
	run := d.run
	d.integrator.Start(d.scheduler.Now())
	d.frames = d.scheduler.Every(d.opts.FrameInterval, func(now time.Time) {
		d.frame(run, now)
	})
}

// stopFramesLocked cancels the frame task. Calling it while stopped is a no-op.
func (d *Deck) stopFramesLocked() {
	if d.frames == nil {
		return
	}
	d.frames.Cancel()
	d.frames = nil
	d.run++
}

func (d *Deck) frame(run uint64, now time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed || run != d.run || !d.mode.IsMoving() {
		return
	}

	before := d.integrator.Position()
	if d.integrator.Step(now, d.mode) != before {
		d.publishLocked()
	}
}

// flashLocked shows b as pressed and schedules its release.
//
// By default an earlier release timer is left running, so when two presses
// land within FlashDuration the first timer clears the second flash early.
// DebounceFlash cancels the earlier timer instead.
func (d *Deck) flashLocked(b domain.Button) {
	if d.opts.DebounceFlash {
		d.cancelFlashesLocked()
	}

	d.flash = b
	d.flashSeq++
	id := d.flashSeq
	d.flashes[id] = d.scheduler.After(d.opts.FlashDuration, func() {
		d.releaseFlash(id)
	})
}

func (d *Deck) releaseFlash(id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.flashes[id]; !ok || d.closed {
		return
	}
	delete(d.flashes, id)

	if d.flash != domain.NoButton {
		d.flash = domain.NoButton
		d.publishLocked()
	}
}

func (d *Deck) cancelFlashesLocked() {
	for id, task := range d.flashes {
		task.Cancel()
		delete(d.flashes, id)
	}
}

func (d *Deck) Snapshot() domain.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshotLocked()
}

func (d *Deck) snapshotLocked() domain.Snapshot {
	return domain.Snapshot{
		Mode:     d.mode,
		Position: d.integrator.Position(),
		Flash:    d.flash,
		Label:    d.opts.Label,
	}
}

// Subscribe returns a channel holding the latest snapshot. Slow readers only
// ever miss intermediate snapshots, never the newest one. The channel is
// closed by the returned cancel func or by Close.
func (d *Deck) Subscribe() (<-chan domain.Snapshot, func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ch := make(chan domain.Snapshot, 1)
	if d.closed {
		close(ch)
		return ch, func() {}
	}

	ch <- d.snapshotLocked()
	d.subSeq++
	id := d.subSeq
	d.subs[id] = ch

	return ch, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if sub, ok := d.subs[id]; ok {
			delete(d.subs, id)
			close(sub)
		}
	}
}

func (d *Deck) publishLocked() {
	snap := d.snapshotLocked()
	for _, ch := range d.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

// Close tears the deck down: the frame task and every pending flash timer
// are cancelled and subscriptions are closed. Nothing changes afterwards.
func (d *Deck) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.closed = true

	d.stopFramesLocked()
	d.cancelFlashesLocked()
	for id, ch := range d.subs {
		delete(d.subs, id)
		close(ch)
	}

	logger.Log.Debug().
		Str("mode", d.mode.String()).
		Float64("position", d.integrator.Position()).
		Msg("Deck closed")
}
