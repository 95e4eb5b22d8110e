package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/25Neil25/pulsegrid/internal/config"
	"github.com/25Neil25/pulsegrid/internal/engine"
	"github.com/25Neil25/pulsegrid/internal/geom"
	"github.com/25Neil25/pulsegrid/internal/gesture"
	"github.com/25Neil25/pulsegrid/internal/tilegrid"
)

const frameMs = 10.0

// run advances the engine n frames with no input.
func run(e *engine.Engine, n int) {
	for i := 0; i < n; i++ {
		e.Tick(frameMs, nil)
	}
}

var _ = Describe("Engine", func() {
	var (
		cfg *config.Config
		e   *engine.Engine
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		e = engine.New(cfg, geom.R(0, 0, 720, 720))
	})

	Describe("drag-to-emit", func() {
		It("produces nothing for a press shorter than the threshold", func() {
			e.Tick(frameMs, []gesture.Event{gesture.DownAt(geom.Pt(100, 100))})
			run(e, 20) // 200ms < 350ms
			e.Tick(frameMs, []gesture.Event{gesture.Lift()})
			run(e, 50)

			Expect(e.Emitters()).To(BeEmpty())
			Expect(e.AnimatingCount()).To(BeZero())
		})

		It("spawns exactly one emitter for a motionless 400ms hold", func() {
			pos := e.TileCenter(4, 4)
			e.Tick(frameMs, []gesture.Event{gesture.DownAt(pos)})
			run(e, 40) // threshold crossed at 350ms held, next emitter due at 470ms

			Expect(e.Emitters()).To(HaveLen(1))
			Expect(e.Emitters()[0].Origin).To(Equal(pos))
			Expect(e.LongPressActive()).To(BeTrue())
		})

		It("lets tiles observe an emitter spawned in the same frame", func() {
			// The first emitter appears the instant the long press begins;
			// the tile under it must trigger on that very tick, not the next.
			pos := e.TileCenter(0, 0)
			e.Tick(0, []gesture.Event{gesture.DownAt(pos)})
			e.Tick(cfg.LongPressMs, nil) // crosses the threshold this frame
			Expect(e.Emitters()).To(HaveLen(1))
			Expect(e.AnimatingCount()).To(BeNumerically(">", 0))
		})

		It("triggers a distant tile only inside its ring window", func() {
			// Emitter at one center, a tile 160px away: with speed 0.8 and
			// band 40 the window is age in [150, 250].
			origin := e.TileCenter(4, 4)
			target := e.TileCenter(4, 6) // two cells right: 160px
			Expect(origin.Dist(target)).To(BeNumerically("~", 160, 1e-9))

			e.Tick(frameMs, []gesture.Event{gesture.DownAt(origin)})
			run(e, 34)
			Expect(tileResting(e, 4, 6)).To(BeTrue())

			// The press began at 10ms, so the first emitter fires at 360ms
			// and its ring reaches age 150 at logical 510ms.
			for e.NowMs() < 490 {
				e.Tick(frameMs, nil)
			}
			Expect(tileResting(e, 4, 6)).To(BeTrue())
			run(e, 2)
			Expect(tileResting(e, 4, 6)).To(BeFalse())
		})

		It("caps the emitter collection during an endless hold", func() {
			e.Tick(frameMs, []gesture.Event{gesture.DownAt(geom.Pt(360, 360))})
			run(e, 3000)
			Expect(len(e.Emitters())).To(BeNumerically("<=", cfg.MaxEmitters))
		})

		It("resets grid and field when a new long press begins", func() {
			center := e.TileCenter(4, 4)
			e.Tick(frameMs, []gesture.Event{gesture.DownAt(center)})
			run(e, 40)
			Expect(e.AnimatingCount()).To(BeNumerically(">", 0))
			e.Tick(frameMs, []gesture.Event{gesture.Lift()})

			// Second press far away: old tiles clear at the new threshold.
			e.Tick(frameMs, []gesture.Event{gesture.DownAt(geom.Pt(700, 20))})
			run(e, 40)
			Expect(tileResting(e, 4, 4)).To(BeTrue())
		})
	})

	Describe("finish-the-cycle stops", func() {
		It("returns every triggered tile to rest after release", func() {
			center := e.TileCenter(4, 4)
			e.Tick(frameMs, []gesture.Event{gesture.DownAt(center)})
			run(e, 40)
			Expect(e.AnimatingCount()).To(BeNumerically(">", 0))

			e.Tick(frameMs, []gesture.Event{gesture.Lift()})
			// Worst case one full extra cycle: 3*(300+2400) with hold at max.
			deadline := e.NowMs() + e.Timing().CycleMs() + frameMs
			for e.NowMs() < deadline {
				e.Tick(frameMs, nil)
			}
			Expect(e.AnimatingCount()).To(BeZero())
		})
	})

	Describe("pinch-to-tune", func() {
		pinchEnter := func() {
			e.Tick(frameMs, []gesture.Event{
				gesture.DownAt(geom.Pt(300, 300), geom.Pt(400, 300)),
			})
		}

		It("freezes logical time while tuning is active", func() {
			run(e, 10)
			pinchEnter()
			// The pause lands within the entering frame; from here on no
			// amount of wall time moves the logical clock.
			frozen := e.NowMs()

			for i := 0; i < 500; i++ {
				e.Tick(frameMs, []gesture.Event{
					gesture.MoveTo(geom.Pt(300, 300), geom.Pt(410+float64(i%5), 300)),
				})
			}
			Expect(e.NowMs()).To(Equal(frozen))
			Expect(e.Knob().Active).To(BeTrue())
		})

		It("maps pinch deltas onto the hold parameter within bounds", func() {
			pinchEnter()
			hold := e.Knob().HoldMs
			e.Tick(frameMs, []gesture.Event{
				gesture.MoveTo(geom.Pt(300, 300), geom.Pt(420, 300)),
			})
			Expect(e.Knob().HoldMs).To(Equal(hold + 20*cfg.KnobSensitivity))

			// Pull far past the bounds: clamped, never escapes.
			e.Tick(frameMs, []gesture.Event{
				gesture.MoveTo(geom.Pt(300, 300), geom.Pt(5000, 300)),
			})
			Expect(e.Knob().HoldMs).To(Equal(cfg.HoldMaxMs))
			e.Tick(frameMs, []gesture.Event{
				gesture.MoveTo(geom.Pt(300, 300), geom.Pt(301, 300)),
			})
			Expect(e.Knob().HoldMs).To(BeNumerically(">=", cfg.HoldMinMs))
		})

		It("feeds the tuned hold into the timing derivation", func() {
			pinchEnter()
			e.Tick(frameMs, []gesture.Event{
				gesture.MoveTo(geom.Pt(300, 300), geom.Pt(450, 300)),
			})
			want := tilegrid.Timing{HalfMs: cfg.HalfMs, HoldMs: e.Knob().HoldMs}
			Expect(e.Timing()).To(Equal(want))
			Expect(e.Timing().CycleMs()).To(Equal(3 * (cfg.HalfMs + e.Knob().HoldMs)))
		})

		It("exits on a single-contact tap and resumes the clock", func() {
			pinchEnter()
			frozen := e.NowMs()
			e.Tick(frameMs, []gesture.Event{gesture.DownAt(geom.Pt(100, 100))})
			Expect(e.Knob().Active).To(BeFalse())

			e.Tick(frameMs, nil)
			Expect(e.NowMs()).To(Equal(frozen + frameMs))
		})

		It("never turns the exit tap into a drag", func() {
			pinchEnter()
			e.Tick(frameMs, []gesture.Event{gesture.DownAt(geom.Pt(100, 100))})
			// Hold past the long-press threshold: nothing may emit, the tap
			// was consumed by the knob.
			run(e, 60)
			Expect(e.Emitters()).To(BeEmpty())
		})
	})
})

func tileResting(e *engine.Engine, row, col int) bool {
	return e.TileFrame(row, col).Resting
}
