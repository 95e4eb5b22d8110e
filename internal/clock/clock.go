// Package clock provides the pausable logical time source that every other
// part of the simulation reads instead of wall-clock time. Freezing the
// clock therefore freezes tile animation, emitter propagation, and gesture
// duration measurement all at once.
package clock

// Clock accumulates wall-clock deltas into a logical timeline, in
// milliseconds. While paused the timeline does not advance no matter how
// much wall time passes.
type Clock struct {
	nowMs  float64
	paused bool
}

func New() *Clock {
	return &Clock{}
}

// Tick advances logical time by wallDeltaMs unless the clock is paused.
// Negative deltas are ignored so the timeline stays monotonic.
func (c *Clock) Tick(wallDeltaMs float64) {
	if c.paused || wallDeltaMs <= 0 {
		return
	}
	c.nowMs += wallDeltaMs
}

// NowMs returns the current logical time in milliseconds.
func (c *Clock) NowMs() float64 {
	return c.nowMs
}

func (c *Clock) Pause() {
	c.paused = true
}

func (c *Clock) Resume() {
	c.paused = false
}

func (c *Clock) Paused() bool {
	return c.paused
}
