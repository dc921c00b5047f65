// Package animator interpolates a displayed balance toward its true value.
// The animator is passive: the owner schedules frames and calls Tick on
// each one, so tests can drive it with a fake clock.
package animator

import (
	"math"
	"time"
)

// DefaultDuration is how long one balance count-up runs.
const DefaultDuration = 550 * time.Millisecond

// Clock supplies the current time. Tests substitute a stepped fake.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// State is the animator's lifecycle state.
type State int

const (
	// Idle means the displayed value equals the target.
	Idle State = iota
	// Animating means the displayed value is interpolating toward the target.
	Animating
)

// Animator animates a displayed value toward a target over a fixed duration
// using an ease-out cubic curve. Re-targeting mid-flight cancels the run and
// starts again from the current displayed value, never snapping back.
type Animator struct {
	clock    Clock
	duration time.Duration

	state     State
	from      float64
	target    float64
	prev      float64 // last naturally completed target
	displayed float64
	start     time.Time
	run       int
}

// New creates an Animator. A non-positive duration falls back to
// DefaultDuration.
func New(clock Clock, duration time.Duration) *Animator {
	if clock == nil {
		clock = SystemClock()
	}
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Animator{clock: clock, duration: duration}
}

// Settle jumps directly to v with zero duration. Used for the initial value
// on mount: no animation occurs beyond settling at the first balance.
func (a *Animator) Settle(v float64) {
	a.from, a.target, a.prev, a.displayed = v, v, v, v
	a.state = Idle
	a.run++
}

// Observe records a new target. If target differs from the current one, a
// run starts from the current displayed value; an in-flight run is
// cancelled. Returns true when a new run started.
func (a *Animator) Observe(target float64) bool {
	if target == a.target {
		return false
	}
	a.from = a.displayed
	a.target = target
	a.start = a.clock.Now()
	a.state = Animating
	a.run++
	return true
}

// Run identifies the current animation. Frame callbacks scheduled for an
// earlier run carry a stale number and must be dropped by the owner.
func (a *Animator) Run() int { return a.run }

// Tick advances the animation to the clock's current time. done is true
// when the run completed; only natural completion updates the previous
// target memory.
func (a *Animator) Tick() (displayed float64, done bool) {
	if a.state != Animating {
		return a.Displayed(), true
	}
	elapsed := a.clock.Now().Sub(a.start)
	t := math.Min(1, float64(elapsed)/float64(a.duration))
	eased := 1 - math.Pow(1-t, 3)
	a.displayed = a.from + (a.target-a.from)*eased
	if t >= 1 {
		a.displayed = a.target
		a.prev = a.target
		a.state = Idle
		return a.Displayed(), true
	}
	return a.Displayed(), false
}

// Displayed returns the current displayed value rounded to 2 decimal places
// for presentation.
func (a *Animator) Displayed() float64 {
	return math.Round(a.displayed*100) / 100
}

// State returns the current lifecycle state.
func (a *Animator) State() State { return a.state }

// Target returns the current animation destination.
func (a *Animator) Target() float64 { return a.target }

// PrevTarget returns the last naturally completed target.
func (a *Animator) PrevTarget() float64 { return a.prev }
