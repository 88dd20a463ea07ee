package animation

import (
	"time"

	"git.lost.host/meutraa/funkin/internal/assets"
	"git.lost.host/meutraa/funkin/internal/game"
)

type State uint8

const (
	Idle State = iota
	Left
	Up
	Down
	Right
)

var States = [...]State{Idle, Left, Up, Down, Right}

func (s State) String() string {
	switch s {
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	case Right:
		return "right"
	}
	return "idle"
}

func StateFor(d game.Direction) State {
	switch d {
	case game.Left:
		return Left
	case game.Up:
		return Up
	case game.Down:
		return Down
	case game.Right:
		return Right
	}
	return Idle
}

// Frames holds the atlas frames of every state of one actor.
type Frames map[State][]assets.Frame

// NewFrames picks each state's frames from the atlas by name prefix.
func NewFrames(atlas *assets.Atlas, prefixes map[State]string) Frames {
	frames := Frames{}
	if nil == atlas {
		return frames
	}
	for state, prefix := range prefixes {
		frames[state] = atlas.Animation(prefix)
	}
	return frames
}

// Driver is the animation state of one actor. A trigger switches to its
// direction and pushes the return to idle out by the dwell time. Time is
// passed in, so there are no timers to cancel.
type Driver struct {
	dwell    time.Duration
	interval time.Duration
	frames   Frames

	state    State
	started  time.Duration // Start of the current state's frame playback
	deadline time.Duration // Return to idle at, if not idle
}

// NewDriver returns a driver that is idle and playing from start.
func NewDriver(dwell, interval time.Duration, frames Frames, start time.Duration) *Driver {
	return &Driver{
		dwell:    dwell,
		interval: interval,
		frames:   frames,
		state:    Idle,
		started:  start,
	}
}

func (d *Driver) transition(s State, now time.Duration) {
	d.state = s
	d.started = now
}

func (d *Driver) Trigger(dir game.Direction, now time.Duration) {
	d.transition(StateFor(dir), now)
	d.deadline = now + d.dwell
}

// Update returns to idle once the deadline of the last trigger passed.
func (d *Driver) Update(now time.Duration) {
	if d.state != Idle && now >= d.deadline {
		d.transition(Idle, now)
	}
}

func (d *Driver) State() State {
	return d.state
}

// Deadline is when the current state returns to idle. It reports false while
// idle.
func (d *Driver) Deadline() (time.Duration, bool) {
	if d.state == Idle {
		return 0, false
	}
	return d.deadline, true
}

// FrameIndex is the playback position within the current state's frames. It
// restarts at 0 on every transition and loops.
func (d *Driver) FrameIndex(now time.Duration) int {
	n := len(d.frames[d.state])
	if n == 0 || d.interval <= 0 || now < d.started {
		return 0
	}
	return int((now-d.started)/d.interval) % n
}

func (d *Driver) Frame(now time.Duration) (assets.Frame, bool) {
	frames := d.frames[d.state]
	if len(frames) == 0 {
		return assets.Frame{}, false
	}
	return frames[d.FrameIndex(now)], true
}
