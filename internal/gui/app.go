// Package gui is the raylib frontend: it translates touch and mouse input
// into engine events, ticks the engine once per frame, and draws the
// morphing tile grid, the live wave rings, and the tuning knob overlay.
// No simulation logic lives here.
package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/25Neil25/pulsegrid/internal/config"
	"github.com/25Neil25/pulsegrid/internal/engine"
	"github.com/25Neil25/pulsegrid/internal/geom"
	"github.com/25Neil25/pulsegrid/internal/gesture"
	"github.com/25Neil25/pulsegrid/internal/shapes"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg     = rl.NewColor(10, 10, 10, 255)    // Deep Black
	ColShape  = rl.NewColor(230, 230, 230, 255) // Soft White
	ColRest   = rl.NewColor(90, 90, 90, 255)    // Resting outline
	ColRing   = rl.NewColor(70, 70, 70, 120)    // Wave fronts, barely there
	ColKnob   = rl.NewColor(255, 255, 255, 255) // Bright White
	ColText   = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	ColDimmed = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
)

const defaultPinchDist = 120.0

type App struct {
	cfg   *config.Config
	eng   *engine.Engine
	cache *shapes.Cache

	// Desktop stand-in for a pinch: Tab toggles a synthetic second
	// contact, the wheel moves it closer or farther.
	synthPinch bool
	synthDist  float64

	hadContacts bool

	ring []rl.Vector2 // scratch buffer, N+1 to close the loop
	lerp []geom.Point
}

func NewApp(cfg *config.Config) *App {
	bounds := geom.R(0, 0, float64(cfg.WindowW), float64(cfg.WindowH))
	return &App{
		cfg:       cfg,
		eng:       engine.New(cfg, bounds),
		cache:     shapes.NewCache(cfg.ShapePoints),
		synthDist: defaultPinchDist,
		ring:      make([]rl.Vector2, cfg.ShapePoints+1),
		lerp:      make([]geom.Point, cfg.ShapePoints),
	}
}

// Run opens the window and blocks in the update-draw loop until closed.
func Run(cfg *config.Config) {
	rl.InitWindow(int32(cfg.WindowW), int32(cfg.WindowH), "pulsegrid")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	app := NewApp(cfg)
	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}
}

func (a *App) Update() {
	dtMs := float64(rl.GetFrameTime()) * 1000
	a.eng.Tick(dtMs, a.collectEvents())
}

// collectEvents samples the host input state and emits the explicit event
// messages the engine consumes: Down when contacts appear or their count
// rises, Move while they persist, Up when the last one lifts.
func (a *App) collectEvents() []gesture.Event {
	if rl.IsKeyPressed(rl.KeyTab) {
		a.synthPinch = !a.synthPinch
		a.synthDist = defaultPinchDist
	}
	if a.synthPinch {
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			a.synthDist += float64(wheel) * 8
			if a.synthDist < 10 {
				a.synthDist = 10
			}
		}
	}

	contacts := a.currentContacts()

	var events []gesture.Event
	switch {
	case len(contacts) > 0 && !a.hadContacts:
		events = append(events, gesture.Event{Kind: gesture.Down, Contacts: contacts})
	case len(contacts) > 0:
		events = append(events, gesture.Event{Kind: gesture.Move, Contacts: contacts})
	case a.hadContacts:
		events = append(events, gesture.Event{Kind: gesture.Up})
	}
	a.hadContacts = len(contacts) > 0
	return events
}

func (a *App) currentContacts() []geom.Point {
	if n := rl.GetTouchPointCount(); n > 0 {
		contacts := make([]geom.Point, 0, n)
		for i := int32(0); i < n; i++ {
			p := rl.GetTouchPosition(i)
			contacts = append(contacts, geom.Pt(float64(p.X), float64(p.Y)))
		}
		return contacts
	}

	// Mouse fallback.
	m := rl.GetMousePosition()
	pos := geom.Pt(float64(m.X), float64(m.Y))
	if a.synthPinch {
		return []geom.Point{pos, pos.Add(geom.Pt(a.synthDist, 0))}
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		return []geom.Point{pos}
	}
	return nil
}
