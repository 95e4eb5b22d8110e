// Package tilegrid holds the per-tile animation state machines. Each tile
// cycles square→circle→triangle→square while struck by wave fronts during a
// long press, and after release finishes its current cycle back to the
// square before stopping, so the stop lands on a silhouette identical to
// rest and is invisible as a discontinuity.
package tilegrid

import (
	"math"

	"github.com/25Neil25/pulsegrid/internal/geom"
)

// Timing derives the cycle structure from the tunable hold parameter.
// Recomputed every tick from the current hold value.
type Timing struct {
	HalfMs float64 // one shape-to-shape transition
	HoldMs float64 // dwell after each transition, knob-tunable
}

// SegmentMs is one transition plus its dwell.
func (t Timing) SegmentMs() float64 { return t.HalfMs + t.HoldMs }

// CycleMs is the full square→circle→triangle→square loop.
func (t Timing) CycleMs() float64 { return 3 * t.SegmentMs() }

// Phase is a tile's lifecycle tag. A tile moves Unset → Animating → Done at
// most once per gesture; a new gesture resets the whole grid.
type Phase int

const (
	Unset Phase = iota
	Animating
	Done
)

// Tile is one cell's state. StopAtMs is meaningful only once StopPlanned is
// set, which happens at the first observation after gesture release and is
// never recomputed afterwards, even if the hold parameter changes.
type Tile struct {
	Phase       Phase
	SinceMs     float64
	StopAtMs    float64
	StopPlanned bool
}

// Frame is what the render layer needs for one tile: which transition is
// active and how far along it is. Resting tiles draw the square silhouette.
type Frame struct {
	Stage   int // 0 square→circle, 1 circle→triangle, 2 triangle→square
	K       float64
	Resting bool
}

// Grid is the fixed ROWS×COLS collection of tile machines plus their
// screen-space centers used for ring hit-testing.
type Grid struct {
	Rows, Cols int

	tiles   []Tile
	centers []geom.Point
}

func New(rows, cols int) *Grid {
	return &Grid{
		Rows:    rows,
		Cols:    cols,
		tiles:   make([]Tile, rows*cols),
		centers: make([]geom.Point, rows*cols),
	}
}

// UniformCenters lays tile centers on an even grid filling bounds. Frontends
// pass pixel bounds; tests pass synthetic ones.
func UniformCenters(bounds geom.Rect, rows, cols int) []geom.Point {
	centers := make([]geom.Point, rows*cols)
	cw := bounds.W() / float64(cols)
	ch := bounds.H() / float64(rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			centers[r*cols+c] = geom.Pt(
				bounds.Min.X+(float64(c)+0.5)*cw,
				bounds.Min.Y+(float64(r)+0.5)*ch,
			)
		}
	}
	return centers
}

func (g *Grid) SetCenters(centers []geom.Point) {
	copy(g.centers, centers)
}

func (g *Grid) Center(row, col int) geom.Point {
	return g.centers[row*g.Cols+col]
}

func (g *Grid) Tile(row, col int) Tile {
	return g.tiles[row*g.Cols+col]
}

// Reset returns every tile to Unset; called when a new long press begins.
func (g *Grid) Reset() {
	for i := range g.tiles {
		g.tiles[i] = Tile{}
	}
}

// Advance samples the wave field for every tile and steps the state
// machines. emitting is true while the owning long press is active: only
// then may covered Unset tiles trigger, and Animating tiles loop without
// exit. Once emitting turns false each Animating tile plans its stop at the
// next cycle boundary and goes Done when the clock reaches it.
func (g *Grid) Advance(nowMs float64, tm Timing, covers func(geom.Point) bool, emitting bool) {
	cycle := tm.CycleMs()
	for i := range g.tiles {
		t := &g.tiles[i]
		switch t.Phase {
		case Unset:
			if emitting && covers(g.centers[i]) {
				t.Phase = Animating
				t.SinceMs = nowMs
			}
		case Animating:
			if emitting {
				continue
			}
			if !t.StopPlanned {
				elapsed := nowMs - t.SinceMs
				n := math.Ceil(elapsed / cycle)
				t.StopAtMs = t.SinceMs + n*cycle
				t.StopPlanned = true
			}
			if nowMs >= t.StopAtMs {
				t.Phase = Done
			}
		}
	}
}

// FrameAt computes the render frame for one tile at nowMs. Within a stage
// the interpolation factor eases over the transition half and then holds at
// 1 for the dwell, so the shape rests on the end-of-transition silhouette.
func (g *Grid) FrameAt(row, col int, nowMs float64, tm Timing) Frame {
	t := g.tiles[row*g.Cols+col]
	if t.Phase != Animating {
		return Frame{Resting: true}
	}
	elapsed := nowMs - t.SinceMs
	cycle := tm.CycleMs()
	segment := tm.SegmentMs()

	phase := math.Mod(elapsed, cycle)
	if phase < 0 {
		phase = 0
	}
	stage := int(phase / segment)
	if stage > 2 {
		stage = 2
	}
	within := phase - float64(stage)*segment

	k := 1.0
	if tm.HalfMs > 0 {
		k = geom.EaseInOutCubic(within / tm.HalfMs)
	}
	return Frame{Stage: stage, K: k}
}

// AnimatingCount reports how many tiles are currently animating; frontends
// use it for activity readouts.
func (g *Grid) AnimatingCount() int {
	n := 0
	for i := range g.tiles {
		if g.tiles[i].Phase == Animating {
			n++
		}
	}
	return n
}
