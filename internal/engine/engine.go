// Package engine owns the simulation context: the logical clock, the wave
// emitter field, the tile grid, and both gesture machines. There are no
// ambient globals; a single driver constructs one Engine and calls Tick
// once per display frame.
package engine

import (
	"github.com/25Neil25/pulsegrid/internal/clock"
	"github.com/25Neil25/pulsegrid/internal/config"
	"github.com/25Neil25/pulsegrid/internal/field"
	"github.com/25Neil25/pulsegrid/internal/geom"
	"github.com/25Neil25/pulsegrid/internal/gesture"
	"github.com/25Neil25/pulsegrid/internal/tilegrid"
)

// KnobView is what the overlay renderer needs each frame.
type KnobView struct {
	Active  bool
	Center  geom.Point
	Angle   float64
	HoldMs  float64
	HoldMin float64
	HoldMax float64
}

// Engine is single-threaded and frame-driven. Callers replacing the draw
// loop with any other scheduler must still serialize all access behind one
// exclusive Tick to keep the in-frame ordering guarantee.
type Engine struct {
	cfg *config.Config

	clock *clock.Clock
	field *field.Field
	grid  *tilegrid.Grid
	drag  *gesture.Drag
	knob  *gesture.Knob

	bounds   geom.Rect
	maxReach float64
}

// New builds an engine for a grid laid out inside bounds (pixels).
func New(cfg *config.Config, bounds geom.Rect) *Engine {
	g := tilegrid.New(cfg.Rows, cfg.Cols)
	g.SetCenters(tilegrid.UniformCenters(bounds, cfg.Rows, cfg.Cols))
	return &Engine{
		cfg:    cfg,
		clock:  clock.New(),
		field:  field.New(cfg.WaveSpeed, cfg.ActivationBand, cfg.MaxEmitters),
		grid:   g,
		drag:   gesture.NewDrag(cfg.LongPressMs, cfg.EmitIntervalMs),
		knob:   gesture.NewKnob(cfg.HoldMs, cfg.HoldMinMs, cfg.HoldMaxMs, cfg.KnobSensitivity),
		bounds: bounds,
		// A ring past the bounding rectangle's diagonal (plus the band)
		// cannot reach any tile center anymore.
		maxReach: bounds.Diag() + cfg.ActivationBand,
	}
}

// Tick advances one frame. Order matters and is fixed: clock update, then
// gesture transitions (knob first, so a pause lands before drag timing is
// read), then emitter spawns and prunes, then tile sampling — tiles must
// observe emitters spawned earlier in the same frame. Input events are
// consumed here, at the start of the tick, even while the clock is paused.
func (e *Engine) Tick(wallDeltaMs float64, events []gesture.Event) {
	e.clock.Tick(wallDeltaMs)
	now := e.clock.NowMs()

	for _, ev := range events {
		if e.knob.HandleEvent(now, ev) {
			continue
		}
		e.drag.HandleEvent(now, ev, e.knob.Active())
	}

	// Clock pause and knob visibility derive from the same mode flag.
	if e.knob.Active() {
		e.clock.Pause()
	} else {
		e.clock.Resume()
	}

	spawns, began := e.drag.Advance(now)
	if began {
		e.grid.Reset()
		e.field.Reset()
	}
	for _, p := range spawns {
		e.field.Spawn(now, p)
	}
	e.field.Prune(now, e.maxReach)

	e.grid.Advance(now, e.Timing(), func(p geom.Point) bool {
		return e.field.CoversPoint(now, p)
	}, e.drag.LongPressActive())
}

// Timing is recomputed every frame from the knob's current hold value.
func (e *Engine) Timing() tilegrid.Timing {
	return tilegrid.Timing{HalfMs: e.cfg.HalfMs, HoldMs: e.knob.HoldMs}
}

func (e *Engine) NowMs() float64 { return e.clock.NowMs() }

func (e *Engine) Rows() int { return e.grid.Rows }
func (e *Engine) Cols() int { return e.grid.Cols }

// TileFrame returns the shape-pair index and interpolation factor the
// renderer needs for one tile.
func (e *Engine) TileFrame(row, col int) tilegrid.Frame {
	return e.grid.FrameAt(row, col, e.clock.NowMs(), e.Timing())
}

func (e *Engine) TileCenter(row, col int) geom.Point {
	return e.grid.Center(row, col)
}

// TileSize returns one cell's width and height in pixels.
func (e *Engine) TileSize() (w, h float64) {
	return e.bounds.W() / float64(e.grid.Cols), e.bounds.H() / float64(e.grid.Rows)
}

func (e *Engine) AnimatingCount() int { return e.grid.AnimatingCount() }

// Emitters exposes the live emitters, oldest first, for ring rendering.
func (e *Engine) Emitters() []field.Emitter { return e.field.Emitters() }

func (e *Engine) WaveSpeed() float64 { return e.field.WaveSpeed }

func (e *Engine) LongPressActive() bool { return e.drag.LongPressActive() }

func (e *Engine) Knob() KnobView {
	return KnobView{
		Active:  e.knob.Active(),
		Center:  e.knob.Center(),
		Angle:   e.knob.Angle(),
		HoldMs:  e.knob.HoldMs,
		HoldMin: e.knob.HoldMin,
		HoldMax: e.knob.HoldMax,
	}
}
