package gesture

import "github.com/25Neil25/pulsegrid/internal/geom"

// Knob is the pinch-to-tune machine. A second simultaneous contact enters
// tuning mode; while tuning, pinch-distance deltas adjust the hold
// parameter directly, with no smoothing, and a single-contact tap exits.
// Whether the logical clock is paused and whether the overlay is visible
// both derive from the single Active flag, so the two can never desync.
type Knob struct {
	Sensitivity float64
	HoldMin     float64
	HoldMax     float64

	HoldMs float64 // the tunable timing parameter, always clamped

	active      bool
	center      geom.Point
	baseDist    float64
	lastDist    float64
	enteredAtMs float64
	angle       float64 // cosmetic pointer angle, no effect on timing
}

func NewKnob(holdMs, holdMin, holdMax, sensitivity float64) *Knob {
	return &Knob{
		Sensitivity: sensitivity,
		HoldMin:     holdMin,
		HoldMax:     holdMax,
		HoldMs:      geom.Clamp(holdMs, holdMin, holdMax),
	}
}

func (k *Knob) Active() bool       { return k.active }
func (k *Knob) Center() geom.Point { return k.center }
func (k *Knob) Angle() float64     { return k.angle }

// HandleEvent applies one input message and reports whether the event was
// consumed by the knob. The exit tap is consumed so it can never double as
// the start of a drag.
func (k *Knob) HandleEvent(nowMs float64, ev Event) (consumed bool) {
	if !k.active {
		if (ev.Kind == Down || ev.Kind == Move) && len(ev.Contacts) >= 2 {
			k.enter(nowMs, ev.Contacts[0], ev.Contacts[1])
			return true
		}
		return false
	}

	switch ev.Kind {
	case Down:
		if len(ev.Contacts) == 1 {
			k.active = false
			return true
		}
		if len(ev.Contacts) >= 2 {
			k.track(ev.Contacts[0], ev.Contacts[1])
			return true
		}
	case Move:
		if len(ev.Contacts) >= 2 {
			k.track(ev.Contacts[0], ev.Contacts[1])
			return true
		}
	case Up:
		// Lifting both fingers keeps tuning mode on; only a tap exits.
	}
	return false
}

func (k *Knob) enter(nowMs float64, a, b geom.Point) {
	k.active = true
	k.center = geom.Mid(a, b)
	k.baseDist = a.Dist(b)
	k.lastDist = k.baseDist
	k.enteredAtMs = nowMs
}

// track follows the finger pair: the dial rides the midpoint and every
// distance delta applies immediately, which keeps the knob fully
// responsive and fully sensitive to input jitter.
func (k *Knob) track(a, b geom.Point) {
	k.center = geom.Mid(a, b)
	dist := a.Dist(b)
	delta := dist - k.lastDist
	k.HoldMs = geom.Clamp(k.HoldMs+delta*k.Sensitivity, k.HoldMin, k.HoldMax)
	k.angle += delta * 0.6
	k.lastDist = dist
}
