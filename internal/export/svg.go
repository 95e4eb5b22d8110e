// Package export renders a still of the running piece to SVG: every tile's
// current silhouette plus the live wave fronts, on the same dark canvas the
// GUI draws.
package export

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/25Neil25/pulsegrid/internal/engine"
	"github.com/25Neil25/pulsegrid/internal/geom"
	"github.com/25Neil25/pulsegrid/internal/shapes"
)

const (
	bgColor    = "#0a0a0a"
	shapeColor = "#e6e6e6"
	restColor  = "#5a5a5a"
	ringColor  = "#464646"
	shapeScale = 0.36
)

// SnapshotSVG captures the engine's current visual state.
func SnapshotSVG(eng *engine.Engine, cache *shapes.Cache, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, bgColor))

	// Wave fronts first so the shapes draw over them.
	now := eng.NowMs()
	for _, em := range eng.Emitters() {
		r := em.Radius(now, eng.WaveSpeed())
		if r <= 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf(
			`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="1" opacity="0.5"/>`+"\n",
			em.Origin.X, em.Origin.Y, r, ringColor))
	}

	cellW, cellH := eng.TileSize()
	scale := math.Min(cellW, cellH) * shapeScale
	lerp := make([]geom.Point, cache.N)
	ring := make([]geom.Point, cache.N)

	for row := 0; row < eng.Rows(); row++ {
		for col := 0; col < eng.Cols(); col++ {
			fr := eng.TileFrame(row, col)
			center := eng.TileCenter(row, col)

			color := shapeColor
			from, to := cache.Pair(fr.Stage)
			if fr.Resting {
				color = restColor
				from, to = cache.Square, cache.Square
			}
			shapes.LerpInto(lerp, from, to, fr.K)

			for i, p := range lerp {
				ring[i] = geom.Pt(center.X+p.X*scale, center.Y+p.Y*scale)
			}
			sb.WriteString(polygonPath(ring, color))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func polygonPath(pts []geom.Point, color string) string {
	var sb strings.Builder
	sb.WriteString(`<path fill="none" stroke="`)
	sb.WriteString(color)
	sb.WriteString(`" stroke-width="1.5" d="M`)
	for i, p := range pts {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
		}
	}
	sb.WriteString(` Z"/>` + "\n")
	return sb.String()
}

// WriteSnapshot renders and writes the SVG in one step.
func WriteSnapshot(path string, eng *engine.Engine, cache *shapes.Cache, width, height int) error {
	return os.WriteFile(path, []byte(SnapshotSVG(eng, cache, width, height)), 0644)
}
