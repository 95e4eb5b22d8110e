package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/25Neil25/pulsegrid/internal/shapes"
)

const (
	knobRadius  = 70.0
	shapeScale  = 0.36 // silhouette radius as a fraction of the cell size
	hudFontSize = 18
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawRings()
	a.drawTiles()
	a.drawKnob()
	a.drawHUD()

	rl.EndDrawing()
}

// drawRings traces every live wave front as a faint circle so the user can
// see the pulses travel.
func (a *App) drawRings() {
	now := a.eng.NowMs()
	for _, em := range a.eng.Emitters() {
		r := em.Radius(now, a.eng.WaveSpeed())
		if r <= 0 {
			continue
		}
		rl.DrawCircleLines(int32(em.Origin.X), int32(em.Origin.Y), float32(r), ColRing)
	}
}

func (a *App) drawTiles() {
	cellW, cellH := a.eng.TileSize()
	scale := math.Min(cellW, cellH) * shapeScale

	for row := 0; row < a.eng.Rows(); row++ {
		for col := 0; col < a.eng.Cols(); col++ {
			fr := a.eng.TileFrame(row, col)
			center := a.eng.TileCenter(row, col)

			tint := ColShape
			from, to := a.cache.Pair(fr.Stage)
			if fr.Resting {
				tint = ColRest
				from, to = a.cache.Square, a.cache.Square
			}
			shapes.LerpInto(a.lerp, from, to, fr.K)

			for i, p := range a.lerp {
				a.ring[i] = rl.NewVector2(
					float32(center.X+p.X*scale),
					float32(center.Y+p.Y*scale),
				)
			}
			a.ring[len(a.lerp)] = a.ring[0]
			rl.DrawLineStrip(a.ring, tint)
		}
	}
}

// drawKnob renders the tuning overlay: the dial ring, a pointer at the
// cosmetic angle, and the hold readout with its position inside the bounds.
func (a *App) drawKnob() {
	knob := a.eng.Knob()
	if !knob.Active {
		return
	}

	cx, cy := float32(knob.Center.X), float32(knob.Center.Y)
	rl.DrawCircleLines(int32(knob.Center.X), int32(knob.Center.Y), knobRadius, ColKnob)
	rl.DrawCircleLines(int32(knob.Center.X), int32(knob.Center.Y), knobRadius-4, ColDimmed)

	rad := knob.Angle * math.Pi / 180
	tip := rl.NewVector2(
		cx+float32(math.Cos(rad)*(knobRadius-8)),
		cy+float32(math.Sin(rad)*(knobRadius-8)),
	)
	rl.DrawLineEx(rl.NewVector2(cx, cy), tip, 2, ColKnob)

	// Readout bar under the dial.
	frac := (knob.HoldMs - knob.HoldMin) / (knob.HoldMax - knob.HoldMin)
	barW := int32(2 * knobRadius)
	barX := int32(knob.Center.X) - barW/2
	barY := int32(knob.Center.Y) + int32(knobRadius) + 14
	rl.DrawRectangle(barX, barY, barW, 4, ColDimmed)
	rl.DrawRectangle(barX, barY, int32(float64(barW)*frac), 4, ColKnob)

	label := fmt.Sprintf("hold %.0f ms", knob.HoldMs)
	tw := rl.MeasureText(label, hudFontSize)
	rl.DrawText(label, int32(knob.Center.X)-tw/2, barY+10, hudFontSize, ColText)
}

func (a *App) drawHUD() {
	status := fmt.Sprintf("%d animating  |  %d emitters", a.eng.AnimatingCount(), len(a.eng.Emitters()))
	rl.DrawText(status, 10, 10, hudFontSize, ColDimmed)

	if a.eng.Knob().Active {
		rl.DrawText("tuning - tap to resume", 10, int32(a.cfg.WindowH)-28, hudFontSize, ColText)
	} else {
		rl.DrawText("hold and drag to emit - tab+wheel to tune", 10, int32(a.cfg.WindowH)-28, hudFontSize, ColDimmed)
	}
}
