package geostyle

// Bounds represents an axis-aligned bounding box in projected coordinates.
type Bounds struct {
	MinX float64 // Western edge
	MaxX float64 // Eastern edge
	MinY float64 // Southern edge
	MaxY float64 // Northern edge
}

// Contains returns true if the point (x, y) is within the bounds.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX &&
		y >= b.MinY && y <= b.MaxY
}

// Intersects returns true if the given bounds intersects with this bounds.
//
// Touching edges count as intersecting. This is the adjacency proxy the
// colorer relies on.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxX < b.MinX ||
		other.MinX > b.MaxX ||
		other.MaxY < b.MinY ||
		other.MinY > b.MaxY)
}

// Expand returns a new Bounds expanded by the given margin in all directions.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinX: b.MinX - margin,
		MaxX: b.MaxX + margin,
		MinY: b.MinY - margin,
		MaxY: b.MaxY + margin,
	}
}

// Union returns the smallest bounds containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	out := b
	if other.MinX < out.MinX {
		out.MinX = other.MinX
	}
	if other.MaxX > out.MaxX {
		out.MaxX = other.MaxX
	}
	if other.MinY < out.MinY {
		out.MinY = other.MinY
	}
	if other.MaxY > out.MaxY {
		out.MaxY = other.MaxY
	}
	return out
}

// featureBounds calculates the bounding box for a feature's geometry.
//
// The second return value is false for empty or degenerate geometry.
func featureBounds(f *Feature) (Bounds, bool) {
	if f == nil {
		return Bounds{}, false
	}

	var coords [][]float64
	switch f.Geometry.Type {
	case GeometryTypePoint:
		if len(f.Geometry.Point) >= 2 {
			coords = [][]float64{f.Geometry.Point}
		}
	case GeometryTypePolygon:
		for _, ring := range f.Geometry.Rings {
			coords = append(coords, ring...)
		}
	}

	bounds := Bounds{}
	initialized := false
	for _, coord := range coords {
		if len(coord) < 2 {
			continue
		}
		x, y := coord[0], coord[1]
		if !initialized {
			bounds = Bounds{MinX: x, MaxX: x, MinY: y, MaxY: y}
			initialized = true
			continue
		}
		if x < bounds.MinX {
			bounds.MinX = x
		}
		if x > bounds.MaxX {
			bounds.MaxX = x
		}
		if y < bounds.MinY {
			bounds.MinY = y
		}
		if y > bounds.MaxY {
			bounds.MaxY = y
		}
	}

	return bounds, initialized
}
