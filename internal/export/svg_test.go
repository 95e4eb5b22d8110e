package export

import (
	"strings"
	"testing"

	"github.com/25Neil25/pulsegrid/internal/config"
	"github.com/25Neil25/pulsegrid/internal/engine"
	"github.com/25Neil25/pulsegrid/internal/geom"
	"github.com/25Neil25/pulsegrid/internal/gesture"
	"github.com/25Neil25/pulsegrid/internal/shapes"
)

func TestSnapshotSVGRestingGrid(t *testing.T) {
	cfg := config.DefaultConfig()
	bounds := geom.R(0, 0, float64(cfg.WindowW), float64(cfg.WindowH))
	eng := engine.New(cfg, bounds)
	cache := shapes.NewCache(cfg.ShapePoints)

	svg := SnapshotSVG(eng, cache, cfg.WindowW, cfg.WindowH)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("unterminated SVG document")
	}

	wantPaths := cfg.Rows * cfg.Cols
	if got := strings.Count(svg, "<path"); got != wantPaths {
		t.Errorf("got %d tile paths, want %d", got, wantPaths)
	}
	// Nothing touched, so every tile draws in the resting color and there
	// are no wave fronts.
	if got := strings.Count(svg, restColor); got != wantPaths {
		t.Errorf("got %d resting tiles, want %d", got, wantPaths)
	}
	if strings.Contains(svg, "<circle") {
		t.Error("idle snapshot has wave fronts")
	}
}

func TestSnapshotSVGActiveSession(t *testing.T) {
	cfg := config.DefaultConfig()
	bounds := geom.R(0, 0, float64(cfg.WindowW), float64(cfg.WindowH))
	eng := engine.New(cfg, bounds)
	cache := shapes.NewCache(cfg.ShapePoints)

	center := geom.Mid(bounds.Min, bounds.Max)
	eng.Tick(16, []gesture.Event{gesture.DownAt(center)})
	eng.Tick(cfg.LongPressMs, nil)
	eng.Tick(50, nil) // age the first emitter so its ring has a radius

	svg := SnapshotSVG(eng, cache, cfg.WindowW, cfg.WindowH)

	if !strings.Contains(svg, "<circle") {
		t.Error("active session snapshot has no wave fronts")
	}
	if !strings.Contains(svg, shapeColor) {
		t.Error("no tile rendered in the animating color")
	}
}
