package geostyle

import (
	"fmt"
	"math"

	"geostyle/internal/geom"
)

// ValidateCoordinate validates a single coordinate pair.
//
// Coordinates must be finite; no range is enforced because the reference
// frame is caller-defined projected units, not latitude/longitude.
func ValidateCoordinate(x, y float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return &ErrInvalidCoordinate{X: x, Y: y}
	}
	return nil
}

// ValidateGeometry validates a geometry for ingestion.
//
// Empty geometry is valid - the engine tolerates it everywhere. Non-empty
// geometry must have two-component finite coordinates, and polygon rings
// must be closed (first vertex equal to last) with at least four vertices.
func ValidateGeometry(g *Geometry) error {
	if g == nil {
		return &ErrInvalidGeometry{Reason: "geometry is nil"}
	}
	if g.IsEmpty() {
		return nil
	}

	switch g.Type {
	case GeometryTypePoint:
		if len(g.Point) < 2 {
			return &ErrInvalidGeometry{
				Type:   g.Type,
				Reason: fmt.Sprintf("point must have 2 values [x, y], got %d", len(g.Point)),
			}
		}
		return validateCoordSlice(g.Type, 0, g.Point)

	case GeometryTypePolygon:
		for r, ring := range g.Rings {
			if len(ring) < 4 {
				return &ErrInvalidGeometry{
					Type:   g.Type,
					Reason: fmt.Sprintf("ring %d has %d vertices, closed rings need at least 4", r, len(ring)),
				}
			}
			if !geom.IsClosedRing(ring) {
				return &ErrInvalidGeometry{
					Type:   g.Type,
					Reason: fmt.Sprintf("ring %d is not closed", r),
				}
			}
			for i, coord := range ring {
				if len(coord) < 2 {
					return &ErrInvalidGeometry{
						Type:   g.Type,
						Reason: fmt.Sprintf("ring %d coordinate %d must have 2 values [x, y], got %d", r, i, len(coord)),
					}
				}
				if err := validateCoordSlice(g.Type, i, coord); err != nil {
					return err
				}
			}
		}
		return nil

	default:
		return &ErrInvalidGeometry{Type: g.Type, Reason: "unknown geometry type"}
	}
}

// ValidateFeature validates a feature for ingestion.
func ValidateFeature(f *Feature) error {
	if f == nil {
		return fmt.Errorf("feature is nil")
	}
	if err := ValidateGeometry(&f.Geometry); err != nil {
		return fmt.Errorf("feature %q: %w", f.ID, err)
	}
	return nil
}

func validateCoordSlice(t GeometryType, i int, coord []float64) error {
	if err := ValidateCoordinate(coord[0], coord[1]); err != nil {
		return &ErrInvalidGeometry{
			Type:   t,
			Reason: fmt.Sprintf("coordinate %d invalid: %v", i, err),
		}
	}
	return nil
}
