package gesture

import "github.com/25Neil25/pulsegrid/internal/geom"

// DragState is the drag-to-emit machine's position in
// IDLE → PRESSED → LONGPRESS → IDLE.
type DragState int

const (
	Idle DragState = iota
	Pressed
	LongPress
)

// Drag detects long presses and, while one is held, spawns a trail of wave
// emitters along the pointer path. All durations are measured on the
// logical clock: a paused clock suspends both long-press detection and
// emission cadence.
type Drag struct {
	LongPressMs    float64
	EmitIntervalMs float64

	state      DragState
	downAtMs   float64
	pos        geom.Point
	lastEmitMs float64
}

func NewDrag(longPressMs, emitIntervalMs float64) *Drag {
	return &Drag{LongPressMs: longPressMs, EmitIntervalMs: emitIntervalMs}
}

func (d *Drag) State() DragState { return d.state }

// LongPressActive reports whether a long press currently owns the grid.
func (d *Drag) LongPressActive() bool { return d.state == LongPress }

// Pos returns the latest known pointer position.
func (d *Drag) Pos() geom.Point { return d.pos }

// HandleEvent applies one input message. Presses only start with a single
// contact while the knob is inactive; any release forces the machine back
// to IDLE. Emission stops on release but already-triggered tiles keep
// animating to their planned stop.
func (d *Drag) HandleEvent(nowMs float64, ev Event, knobActive bool) {
	switch ev.Kind {
	case Down:
		if d.state == Idle && !knobActive && len(ev.Contacts) == 1 {
			d.state = Pressed
			d.downAtMs = nowMs
			d.pos = ev.Contacts[0]
		}
	case Move:
		if d.state != Idle && len(ev.Contacts) > 0 {
			d.pos = ev.Contacts[0]
		}
	case Up:
		d.state = Idle
	}
}

// Advance runs the per-tick logic and returns the emitter positions to
// spawn this frame. began is true exactly when the press crosses the
// long-press threshold: the caller must reset the grid and field (a new
// gesture means fresh state) before spawning the returned first emitter.
func (d *Drag) Advance(nowMs float64) (spawns []geom.Point, began bool) {
	switch d.state {
	case Pressed:
		if nowMs-d.downAtMs >= d.LongPressMs {
			d.state = LongPress
			d.lastEmitMs = nowMs
			return []geom.Point{d.pos}, true
		}
	case LongPress:
		// A slow frame may owe more than one emitter.
		for nowMs-d.lastEmitMs >= d.EmitIntervalMs {
			d.lastEmitMs += d.EmitIntervalMs
			spawns = append(spawns, d.pos)
		}
	}
	return spawns, false
}
