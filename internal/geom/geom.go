// Package geom implements the planar geometry primitives used by the public
// geostyle package: point-in-ring containment, ring area, and distance.
//
// All functions work on projected (linear) coordinates and tolerate
// degenerate input. Rings with fewer than three vertices, or vertices with
// fewer than two components, contain nothing and have zero area - they never
// cause a panic or an error.
package geom

import "math"

// Distance returns the planar Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// IsClosedRing reports whether the ring's first and last vertices coincide.
func IsClosedRing(ring [][]float64) bool {
	if len(ring) < 3 {
		return false
	}
	first, last := ring[0], ring[len(ring)-1]
	if len(first) < 2 || len(last) < 2 {
		return false
	}
	return first[0] == last[0] && first[1] == last[1]
}

// PointInRing reports whether the point (x, y) lies inside a single ring,
// using the ray casting algorithm. The ring may be open or closed; a
// duplicated closing vertex contributes no extra crossing.
//
// Points exactly on an edge may be reported as inside or outside depending
// on edge orientation. Callers needing boundary guarantees should expand
// the ring first.
func PointInRing(x, y float64, ring [][]float64) bool {
	if len(ring) < 3 {
		return false
	}

	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		if len(ring[i]) < 2 || len(ring[j]) < 2 {
			j = i
			continue
		}
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]

		// Count edges crossing the horizontal ray extending east from (x, y).
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}

	return inside
}

// PointInRings reports whether the point lies inside a polygon made of the
// given rings, using the even-odd rule. The first ring is the outer boundary
// and subsequent rings are holes: a point inside the outer ring and inside a
// hole is outside the polygon.
func PointInRings(x, y float64, rings [][][]float64) bool {
	inside := false
	for _, ring := range rings {
		if PointInRing(x, y, ring) {
			inside = !inside
		}
	}
	return inside
}

// RingArea returns the signed shoelace area of a ring.
//
// The sign follows vertex order: counter-clockwise rings have positive area,
// clockwise rings negative. Degenerate rings return 0.
func RingArea(ring [][]float64) float64 {
	if len(ring) < 3 {
		return 0
	}

	sum := 0.0
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		if len(ring[i]) < 2 || len(ring[j]) < 2 {
			j = i
			continue
		}
		sum += (ring[j][0] + ring[i][0]) * (ring[j][1] - ring[i][1])
		j = i
	}

	return sum / 2
}

// PolygonArea returns the unsigned planar area of a polygon in squared
// projected units. The first ring is the outer boundary; areas of subsequent
// rings (holes) are subtracted. Never returns a negative value.
func PolygonArea(rings [][][]float64) float64 {
	if len(rings) == 0 {
		return 0
	}

	area := math.Abs(RingArea(rings[0]))
	for _, hole := range rings[1:] {
		area -= math.Abs(RingArea(hole))
	}

	if area < 0 {
		return 0
	}
	return area
}
