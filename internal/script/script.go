// Package script plays YAML-described gesture sessions against a headless
// engine. A scenario is a flat list of timed steps; each step either holds
// the current contact set or changes it, and the player converts the
// transitions into the same event stream a live frontend would produce.
package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/25Neil25/pulsegrid/internal/engine"
	"github.com/25Neil25/pulsegrid/internal/geom"
	"github.com/25Neil25/pulsegrid/internal/gesture"
)

// Scenario defines a scripted gesture session.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is one timed action. Positions are fractions of the window, so a
// scenario works at any resolution. Kinds:
//
//	press   - put a finger down at (x, y)
//	drag    - move the finger to (x, y) over the duration
//	release - lift all contacts
//	pinch   - put two fingers down, gap px apart, centered at (x, y)
//	spread  - move the pinch gap to the given value over the duration
//	tap     - single press-and-lift at (x, y)
//	wait    - let time pass
type Step struct {
	Kind     string  `yaml:"kind"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Gap      float64 `yaml:"gap"`
	Duration float64 `yaml:"duration"` // seconds
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) validate() error {
	for i, st := range sc.Steps {
		switch st.Kind {
		case "press", "release", "tap":
		case "drag", "spread", "wait":
			if st.Duration <= 0 {
				return fmt.Errorf("step %d (%s): duration must be positive", i+1, st.Kind)
			}
		case "pinch":
			if st.Gap <= 0 {
				return fmt.Errorf("step %d (pinch): gap must be positive", i+1)
			}
		default:
			return fmt.Errorf("step %d: unknown kind %q", i+1, st.Kind)
		}
	}
	return nil
}

// Sampler receives the engine after every frame of playback.
type Sampler func(nowMs float64, eng *engine.Engine)

// Player advances an engine through a scenario frame by frame.
type Player struct {
	eng     *engine.Engine
	bounds  geom.Rect
	frameMs float64

	pos    geom.Point
	gap    float64
	pinch  bool
	sample Sampler
}

func NewPlayer(eng *engine.Engine, bounds geom.Rect, frameMs float64, sample Sampler) *Player {
	return &Player{eng: eng, bounds: bounds, frameMs: frameMs, sample: sample}
}

func (p *Player) at(x, y float64) geom.Point {
	return geom.Pt(x*p.bounds.W(), y*p.bounds.H())
}

func (p *Player) contacts() []geom.Point {
	if p.pinch {
		half := geom.Pt(p.gap/2, 0)
		return []geom.Point{p.pos.Sub(half), p.pos.Add(half)}
	}
	return []geom.Point{p.pos}
}

func (p *Player) tick(events ...gesture.Event) {
	p.eng.Tick(p.frameMs, events)
	if p.sample != nil {
		p.sample(p.eng.NowMs(), p.eng)
	}
}

// run plays frames for the duration, calling move with progress in [0, 1]
// to update the contact set before each frame.
func (p *Player) run(durationS float64, move func(t float64)) {
	frames := int(durationS * 1000 / p.frameMs)
	if frames < 1 {
		frames = 1
	}
	for f := 1; f <= frames; f++ {
		if move != nil {
			move(float64(f) / float64(frames))
			p.tick(gesture.MoveTo(p.contacts()...))
		} else {
			p.tick()
		}
	}
}

// Play executes the scenario from the engine's current state.
func (p *Player) Play(sc *Scenario) error {
	if err := sc.validate(); err != nil {
		return err
	}

	for _, st := range sc.Steps {
		switch st.Kind {
		case "press":
			p.pos, p.pinch = p.at(st.X, st.Y), false
			p.tick(gesture.DownAt(p.contacts()...))

		case "drag":
			from, to := p.pos, p.at(st.X, st.Y)
			p.run(st.Duration, func(t float64) {
				p.pos = geom.LerpPt(from, to, t)
			})

		case "release":
			p.pinch = false
			p.tick(gesture.Lift())

		case "pinch":
			p.pos, p.gap, p.pinch = p.at(st.X, st.Y), st.Gap, true
			p.tick(gesture.DownAt(p.contacts()...))

		case "spread":
			from, to := p.gap, st.Gap
			p.run(st.Duration, func(t float64) {
				p.gap = geom.Lerp(from, to, t)
			})

		case "tap":
			p.pos, p.pinch = p.at(st.X, st.Y), false
			p.tick(gesture.DownAt(p.contacts()...))
			p.tick(gesture.Lift())

		case "wait":
			p.run(st.Duration, nil)
		}
	}
	return nil
}

// DefaultScenario is the builtin session trace uses when no script is
// given: a long-press drag across the middle, then idle-out.
func DefaultScenario(dragS, totalS float64) *Scenario {
	idle := totalS - dragS
	if idle < 0 {
		idle = 0
	}
	return &Scenario{
		Name: "sweep",
		Steps: []Step{
			{Kind: "press", X: 0.2, Y: 0.5},
			{Kind: "drag", X: 0.8, Y: 0.5, Duration: dragS},
			{Kind: "release"},
			{Kind: "wait", Duration: idle},
		},
	}
}
