// Package metrics aggregates per-frame observations of a running engine
// into single summary numbers. Each metric is fed every frame and asked
// for its value once at the end.
package metrics

import "github.com/25Neil25/pulsegrid/internal/engine"

// Metric observes engine state once per frame.
type Metric interface {
	Name() string
	Observe(nowMs float64, eng *engine.Engine)
	Value() float64
}

// PeakActivity tracks the largest number of simultaneously animating tiles.
type PeakActivity struct {
	peak int
}

func NewPeakActivity() *PeakActivity { return &PeakActivity{} }

func (p *PeakActivity) Name() string { return "peak_activity" }

func (p *PeakActivity) Observe(nowMs float64, eng *engine.Engine) {
	if n := eng.AnimatingCount(); n > p.peak {
		p.peak = n
	}
}

func (p *PeakActivity) Value() float64 { return float64(p.peak) }

// MeanActivity tracks the average number of animating tiles per frame.
type MeanActivity struct {
	sum     float64
	samples int
}

func NewMeanActivity() *MeanActivity { return &MeanActivity{} }

func (m *MeanActivity) Name() string { return "mean_activity" }

func (m *MeanActivity) Observe(nowMs float64, eng *engine.Engine) {
	m.sum += float64(eng.AnimatingCount())
	m.samples++
}

func (m *MeanActivity) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

// Coverage tracks the fraction of tiles that animated at least once.
type Coverage struct {
	touched map[[2]int]bool
	total   int
}

func NewCoverage() *Coverage { return &Coverage{touched: make(map[[2]int]bool)} }

func (c *Coverage) Name() string { return "coverage" }

func (c *Coverage) Observe(nowMs float64, eng *engine.Engine) {
	c.total = eng.Rows() * eng.Cols()
	for row := 0; row < eng.Rows(); row++ {
		for col := 0; col < eng.Cols(); col++ {
			if !eng.TileFrame(row, col).Resting {
				c.touched[[2]int{row, col}] = true
			}
		}
	}
}

func (c *Coverage) Value() float64 {
	if c.total == 0 {
		return 0
	}
	return float64(len(c.touched)) / float64(c.total)
}

// PeakEmitters tracks the largest number of live wave fronts.
type PeakEmitters struct {
	peak int
}

func NewPeakEmitters() *PeakEmitters { return &PeakEmitters{} }

func (p *PeakEmitters) Name() string { return "peak_emitters" }

func (p *PeakEmitters) Observe(nowMs float64, eng *engine.Engine) {
	if n := len(eng.Emitters()); n > p.peak {
		p.peak = n
	}
}

func (p *PeakEmitters) Value() float64 { return float64(p.peak) }

// Set is a convenience bundle fed as one unit.
type Set []Metric

func DefaultSet() Set {
	return Set{NewPeakActivity(), NewMeanActivity(), NewCoverage(), NewPeakEmitters()}
}

func (s Set) Observe(nowMs float64, eng *engine.Engine) {
	for _, m := range s {
		m.Observe(nowMs, eng)
	}
}

// Values collects every metric keyed by name.
func (s Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s))
	for _, m := range s {
		out[m.Name()] = m.Value()
	}
	return out
}
