// Package field tracks wave pulse emitters and answers, for any point and
// logical time, whether an expanding ring front currently covers it.
// Propagation is sampled per frame from closed-form ring radii rather than
// simulated, which keeps hit-testing O(live emitters) and lets a single
// drag leave many overlapping concurrent sources.
package field

import (
	"math"

	"github.com/25Neil25/pulsegrid/internal/geom"
)

// Emitter is a single pulse source. Immutable after creation.
type Emitter struct {
	Origin    geom.Point
	EmittedMs float64
}

// Radius returns the ring radius at the given logical time.
func (e Emitter) Radius(nowMs, waveSpeed float64) float64 {
	return (nowMs - e.EmittedMs) * waveSpeed
}

// Field owns the ordered emitter collection. Insertion order is time order:
// spawn time is monotonic with the clock while unpaused, so the oldest
// emitter is always at the front and carries the largest ring.
type Field struct {
	WaveSpeed float64 // ring growth in px per logical ms
	Band      float64 // activation annulus width in px
	Cap       int     // max live emitters

	emitters []Emitter
}

func New(waveSpeed, band float64, cap_ int) *Field {
	return &Field{
		WaveSpeed: waveSpeed,
		Band:      band,
		Cap:       cap_,
		emitters:  make([]Emitter, 0, cap_),
	}
}

// Spawn appends an emitter at p. If the collection exceeds its cap the
// oldest emitters are discarded; gesture duration is unbounded, so memory
// must be.
func (f *Field) Spawn(nowMs float64, p geom.Point) {
	f.emitters = append(f.emitters, Emitter{Origin: p, EmittedMs: nowMs})
	if f.Cap > 0 && len(f.emitters) > f.Cap {
		drop := len(f.emitters) - f.Cap
		f.emitters = append(f.emitters[:0], f.emitters[drop:]...)
	}
}

// CoversPoint reports whether any live ring front covers p at nowMs: the
// point lies within the fixed-width annulus trailing an expanding front.
// An emitter spawned in the future never matches.
func (f *Field) CoversPoint(nowMs float64, p geom.Point) bool {
	for _, e := range f.emitters {
		age := nowMs - e.EmittedMs
		if age < 0 {
			continue
		}
		r := age * f.WaveSpeed
		if math.Abs(p.Dist(e.Origin)-r) <= f.Band {
			return true
		}
	}
	return false
}

// Prune drops emitters whose rings have grown past maxReachDist and can no
// longer touch any on-screen point. Rings only grow, so emitters age out in
// creation order; the scan stops at the first one still reachable.
func (f *Field) Prune(nowMs, maxReachDist float64) {
	i := 0
	for i < len(f.emitters) {
		if f.emitters[i].Radius(nowMs, f.WaveSpeed)-f.Band <= maxReachDist {
			break
		}
		i++
	}
	if i > 0 {
		f.emitters = append(f.emitters[:0], f.emitters[i:]...)
	}
}

// Reset discards every emitter; a new gesture starts from a clean field.
func (f *Field) Reset() {
	f.emitters = f.emitters[:0]
}

// Len returns the number of live emitters.
func (f *Field) Len() int {
	return len(f.emitters)
}

// Emitters returns the live emitters, oldest first. The slice is owned by
// the field; callers must not mutate or retain it across ticks.
func (f *Field) Emitters() []Emitter {
	return f.emitters
}
