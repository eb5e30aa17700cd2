package geostyle

// GeometryType represents the type of geometry a feature carries.
type GeometryType int

const (
	// GeometryTypePoint represents a single point location (a marker).
	GeometryTypePoint GeometryType = iota

	// GeometryTypePolygon represents a closed polygon area.
	GeometryTypePolygon
)

// String returns the string representation of the geometry type.
//
// The value is also used as the prefix of geometry-derived feature ids,
// so it is part of the id derivation contract and must stay stable.
func (g GeometryType) String() string {
	switch g {
	case GeometryTypePoint:
		return "Point"
	case GeometryTypePolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// Geometry is the spatial representation of a feature.
//
// Coordinates are [x, y] pairs in a projected (linear) reference frame.
// Callers are responsible for supplying all geometry in a common frame;
// no reprojection is performed anywhere in this package.
type Geometry struct {
	// Type indicates the geometry type (Point or Polygon).
	Type GeometryType

	// Point holds the single [x, y] coordinate of a point geometry.
	Point []float64

	// Rings holds the closed coordinate rings of a polygon geometry.
	// The first ring is the outer boundary; subsequent rings are holes.
	Rings [][][]float64
}

// IsEmpty reports whether the geometry carries no usable coordinates.
//
// Empty geometry is valid input everywhere: it has no neighbors in the
// colorer and is excluded from containment and distance results.
func (g Geometry) IsEmpty() bool {
	switch g.Type {
	case GeometryTypePoint:
		return len(g.Point) < 2
	case GeometryTypePolygon:
		for _, ring := range g.Rings {
			for _, coord := range ring {
				if len(coord) >= 2 {
					return false
				}
			}
		}
		return true
	default:
		return true
	}
}

// FlatCoords returns the geometry's coordinates flattened into a single
// slice, ring by ring for polygons. Used by geometry-derived id assignment.
func (g Geometry) FlatCoords() []float64 {
	if g.Type == GeometryTypePoint {
		flat := make([]float64, 0, len(g.Point))
		return append(flat, g.Point...)
	}

	var flat []float64
	for _, ring := range g.Rings {
		for _, coord := range ring {
			flat = append(flat, coord...)
		}
	}
	return flat
}

// Property keys written or read by this package.
const (
	// PropertyFillColor is the property key the colorer writes the assigned
	// fill color under.
	PropertyFillColor = "fillColor"

	// PropertyLabel is the property key marker features carry their display
	// label under. The key is defined here for ingestion collaborators; the
	// engine itself never reads it.
	PropertyLabel = "label"
)

// Feature is a single polygon or point feature.
//
// ID is unique within a store partition. It is either supplied at ingestion
// or assigned by the store (see Store.Index). Properties is the mutable
// property bag; ApplyPolygonColors writes PropertyFillColor into it in place.
type Feature struct {
	ID         string
	Geometry   Geometry
	Properties map[string]any
}

// NewPolygonFeature creates a polygon feature from closed coordinate rings.
//
// Pass an empty id to have the store assign one during Index or OnAdd.
func NewPolygonFeature(id string, rings [][][]float64) *Feature {
	return &Feature{
		ID: id,
		Geometry: Geometry{
			Type:  GeometryTypePolygon,
			Rings: rings,
		},
		Properties: make(map[string]any),
	}
}

// NewPointFeature creates a point (marker) feature at (x, y) with the given
// display label.
func NewPointFeature(id string, x, y float64, label string) *Feature {
	return &Feature{
		ID: id,
		Geometry: Geometry{
			Type:  GeometryTypePoint,
			Point: []float64{x, y},
		},
		Properties: map[string]any{
			PropertyLabel: label,
		},
	}
}

// Partition identifies one of the store's two independent feature sets.
type Partition int

const (
	// PartitionPolygons holds polygon features.
	PartitionPolygons Partition = iota

	// PartitionMarkers holds point features.
	PartitionMarkers
)

// String returns the human-readable name of the partition.
func (p Partition) String() string {
	switch p {
	case PartitionPolygons:
		return "polygons"
	case PartitionMarkers:
		return "markers"
	default:
		return "unknown"
	}
}
