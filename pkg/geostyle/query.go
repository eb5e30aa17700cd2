package geostyle

import (
	"geostyle/internal/geom"
)

// Engine answers read-only spatial queries over a feature store.
//
// Every method is a snapshot over the store's partitions at call time and
// never mutates anything. Containment tests are exact point-in-polygon
// checks, not bounding-box approximations. Distances and areas are planar,
// computed in whatever projected unit the coordinates are expressed in;
// callers must supply all geometry in one common reference frame.
//
// Queries scan the partitions linearly. That keeps tie-breaking tied to the
// store's insertion order; the store's R-tree remains available should a
// future implementation swap the scans for index-backed search.
type Engine struct {
	store *Store
}

// NewEngine creates a query engine over the given store.
//
// The store is injected explicitly; the engine holds no other state.
func NewEngine(store *Store) *Engine {
	return &Engine{store: store}
}

// MarkersWithinPolygon returns all point features lying inside the polygon,
// in store insertion order.
//
// Containment is an exact even-odd point-in-polygon test against the
// polygon's rings (holes excluded). Markers with empty geometry, and an
// empty or degenerate polygon, produce no matches.
func (e *Engine) MarkersWithinPolygon(polygon *Feature) []*Feature {
	if polygon == nil || polygon.Geometry.IsEmpty() {
		return nil
	}

	var result []*Feature
	for _, marker := range e.store.All(PartitionMarkers) {
		x, y, ok := markerCoord(marker)
		if !ok {
			continue
		}
		if geom.PointInRings(x, y, polygon.Geometry.Rings) {
			result = append(result, marker)
		}
	}
	return result
}

// PolygonsContainingMarker returns all polygon features containing the
// marker, in store insertion order. The inverse of MarkersWithinPolygon.
func (e *Engine) PolygonsContainingMarker(marker *Feature) []*Feature {
	x, y, ok := markerCoord(marker)
	if !ok {
		return nil
	}

	var result []*Feature
	for _, polygon := range e.store.All(PartitionPolygons) {
		if polygon.Geometry.IsEmpty() {
			continue
		}
		if geom.PointInRings(x, y, polygon.Geometry.Rings) {
			result = append(result, polygon)
		}
	}
	return result
}

// Distance returns the planar Euclidean distance between two point features,
// in the linear unit their coordinates are expressed in.
//
// Returns 0 when either feature is nil or carries no coordinate.
func (e *Engine) Distance(a, b *Feature) float64 {
	ax, ay, ok := markerCoord(a)
	if !ok {
		return 0
	}
	bx, by, ok := markerCoord(b)
	if !ok {
		return 0
	}
	return geom.Distance(ax, ay, bx, by)
}

// Area returns the planar area of a polygon feature in squared projected
// units. Hole rings are subtracted from the outer ring's area.
//
// Returns 0 for nil, empty, or degenerate polygons.
func (e *Engine) Area(polygon *Feature) float64 {
	if polygon == nil {
		return 0
	}
	return geom.PolygonArea(polygon.Geometry.Rings)
}

// NearestMarker returns the point feature nearest to the given marker,
// excluding the marker itself.
//
// Returns (nil, false) when the store holds fewer than two point features or
// the marker carries no coordinate. Ties are broken by store insertion
// order: the first marker encountered at the minimal distance wins.
func (e *Engine) NearestMarker(marker *Feature) (*Feature, bool) {
	x, y, ok := markerCoord(marker)
	if !ok {
		return nil, false
	}

	var nearest *Feature
	var nearestDist float64
	for _, candidate := range e.store.All(PartitionMarkers) {
		if marker != nil && candidate.ID == marker.ID {
			continue
		}
		cx, cy, ok := markerCoord(candidate)
		if !ok {
			continue
		}
		dist := geom.Distance(x, y, cx, cy)
		if nearest == nil || dist < nearestDist {
			nearest = candidate
			nearestDist = dist
		}
	}

	if nearest == nil {
		return nil, false
	}
	return nearest, true
}

// MarkersWithinDistance returns all point features within radius of the
// marker (inclusive), excluding the marker itself, in store insertion order.
//
// An empty store, a radius of 0 with no coincident markers, or a marker
// without a coordinate all produce an empty result.
func (e *Engine) MarkersWithinDistance(marker *Feature, radius float64) []*Feature {
	x, y, ok := markerCoord(marker)
	if !ok {
		return nil
	}

	var result []*Feature
	for _, candidate := range e.store.All(PartitionMarkers) {
		if marker != nil && candidate.ID == marker.ID {
			continue
		}
		cx, cy, ok := markerCoord(candidate)
		if !ok {
			continue
		}
		if geom.Distance(x, y, cx, cy) <= radius {
			result = append(result, candidate)
		}
	}
	return result
}

// markerCoord extracts a point feature's coordinate.
func markerCoord(f *Feature) (x, y float64, ok bool) {
	if f == nil || len(f.Geometry.Point) < 2 {
		return 0, 0, false
	}
	return f.Geometry.Point[0], f.Geometry.Point[1], true
}
