// Package shapes precomputes the three silhouettes a tile morphs between.
// Each silhouette is resampled to the same number of vertices at even arc
// length, starting from the top and winding clockwise, so index i of one
// ring corresponds to index i of the others and interpolation is a plain
// per-vertex lerp.
package shapes

import (
	"math"

	"github.com/25Neil25/pulsegrid/internal/geom"
)

// Cache holds the unit-radius vertex rings. Rings are built once at startup
// and never mutated; renderers scale and translate per tile.
type Cache struct {
	N        int
	Square   []geom.Point
	Circle   []geom.Point
	Triangle []geom.Point
}

// NewCache builds the three rings with n vertices each.
func NewCache(n int) *Cache {
	if n < 3 {
		n = 3
	}
	return &Cache{
		N:        n,
		Square:   Resample(regularPolygon(4, math.Pi/4), n),
		Circle:   circleRing(n),
		Triangle: Resample(regularPolygon(3, 0), n),
	}
}

// Pair returns the from/to rings for a tile's transition stage:
// 0 square→circle, 1 circle→triangle, 2 triangle→square.
func (c *Cache) Pair(stage int) (from, to []geom.Point) {
	switch stage {
	case 0:
		return c.Square, c.Circle
	case 1:
		return c.Circle, c.Triangle
	default:
		return c.Triangle, c.Square
	}
}

// Lerp interpolates two matched rings. k outside [0,1] is clamped.
func Lerp(from, to []geom.Point, k float64) []geom.Point {
	k = geom.Clamp(k, 0, 1)
	out := make([]geom.Point, len(from))
	for i := range from {
		out[i] = geom.LerpPt(from[i], to[i], k)
	}
	return out
}

// LerpInto is Lerp without the allocation; dst must have the rings' length.
func LerpInto(dst, from, to []geom.Point, k float64) {
	k = geom.Clamp(k, 0, 1)
	for i := range from {
		dst[i] = geom.LerpPt(from[i], to[i], k)
	}
}

// regularPolygon returns the corner ring of a unit-circumradius polygon.
// The rotation offset puts the shape upright: the square gets flat top and
// bottom edges, the triangle a flat bottom. Corners start at angle -π/2
// plus the offset and wind clockwise in screen coordinates (y down).
func regularPolygon(sides int, offset float64) []geom.Point {
	pts := make([]geom.Point, sides)
	for i := 0; i < sides; i++ {
		a := -math.Pi/2 - offset + 2*math.Pi*float64(i)/float64(sides)
		pts[i] = geom.Pt(math.Cos(a), math.Sin(a))
	}
	return pts
}

func circleRing(n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		pts[i] = geom.Pt(math.Cos(a), math.Sin(a))
	}
	return pts
}

// Resample walks a closed polygon outline and places n points at even arc
// length, starting at the first input vertex. A degenerate outline with
// zero perimeter collapses every sample to the outline's start point.
func Resample(poly []geom.Point, n int) []geom.Point {
	out := make([]geom.Point, n)
	if len(poly) == 0 || n == 0 {
		return out
	}

	perim := 0.0
	for i := range poly {
		perim += poly[i].Dist(poly[(i+1)%len(poly)])
	}
	if perim == 0 {
		for i := range out {
			out[i] = poly[0]
		}
		return out
	}

	step := perim / float64(n)
	edge := 0
	edgeStart := poly[0]
	edgeEnd := poly[1%len(poly)]
	edgeLen := edgeStart.Dist(edgeEnd)
	walked := 0.0 // distance consumed on the current edge

	for i := 0; i < n; i++ {
		target := float64(i) * step
		for target > walked+edgeLen && edge < len(poly)-1 {
			walked += edgeLen
			edge++
			edgeStart = poly[edge]
			edgeEnd = poly[(edge+1)%len(poly)]
			edgeLen = edgeStart.Dist(edgeEnd)
		}
		if edgeLen == 0 {
			out[i] = edgeStart
			continue
		}
		t := (target - walked) / edgeLen
		out[i] = geom.LerpPt(edgeStart, edgeEnd, t)
	}
	return out
}
