package geostyle

import (
	"strconv"
	"strings"
	"sync"

	"github.com/dhconnelly/rtreego"
	"github.com/google/uuid"
)

// Store holds the canonical partitioned sets of polygon and point features.
//
// Each partition maps id to feature, preserves insertion order, and maintains
// an R-tree spatial index for bounding box queries. Features lacking an id
// are assigned one during Index or OnAdd: by default a deterministic
// geometry-derived id (see DeriveID), or a fresh UUID when the store was
// created with AssignUUIDs.
//
// All mutating operations take a write lock, so a Store may be shared across
// goroutines; the single-writer discipline is enforced internally.
//
// Example:
//
//	store := geostyle.NewStore()
//	store.Index(geostyle.PartitionPolygons, districts)
//	store.Index(geostyle.PartitionMarkers, stations)
//
//	for _, f := range store.All(geostyle.PartitionPolygons) {
//	    render(f)
//	}
type Store struct {
	mu          sync.RWMutex
	partitions  map[Partition]*partition
	assignUUIDs bool
}

// NewStore creates an empty feature store with default options.
func NewStore() *Store {
	return NewStoreWithOptions(DefaultStoreOptions())
}

// NewStoreWithOptions creates an empty feature store with custom options.
func NewStoreWithOptions(opts StoreOptions) *Store {
	return &Store{
		partitions: map[Partition]*partition{
			PartitionPolygons: newPartition(),
			PartitionMarkers:  newPartition(),
		},
		assignUUIDs: opts.AssignUUIDs,
	}
}

// DeriveID derives a deterministic id from a geometry.
//
// The id is the geometry type name, an underscore, and all coordinates
// flattened and joined by comma. Two identical geometries always derive the
// same id - which also means two distinct features with identical coordinates
// collide into one id. Ingestion collaborators that can produce such
// duplicates should assign explicit ids or enable AssignUUIDs instead.
func DeriveID(g Geometry) string {
	flat := g.FlatCoords()
	parts := make([]string, len(flat))
	for i, v := range flat {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return g.Type.String() + "_" + strings.Join(parts, ",")
}

// Index replaces a partition's contents with the given features.
//
// Features lacking an id are assigned one. If two features in the batch
// resolve to the same id, the later one overwrites the earlier (the
// partition's id mapping is authoritative). The partition's spatial index is
// rebuilt from scratch.
func (s *Store) Index(p Partition, feats []*Feature) {
	s.mu.Lock()
	defer s.mu.Unlock()

	part := newPartition()
	for _, f := range feats {
		if f == nil {
			continue
		}
		s.ensureID(f)
		part.put(f)
	}
	s.partitions[p] = part
}

// OnAdd adds a single feature to a partition, mirroring an external
// "feature added" notification without requiring a full reindex.
//
// The same id-assignment rules as Index apply. Adding a feature whose id is
// already present replaces the existing feature in place.
func (s *Store) OnAdd(p Partition, f *Feature) {
	if f == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureID(f)
	s.partition(p).put(f)
}

// OnRemove removes the feature with the given id from a partition.
//
// Removing an unknown id is a no-op.
func (s *Store) OnRemove(p Partition, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.partition(p).remove(id)
}

// All returns the partition's features in insertion order.
func (s *Store) All(p Partition) []*Feature {
	s.mu.RLock()
	defer s.mu.RUnlock()

	part := s.partition(p)
	result := make([]*Feature, 0, len(part.order))
	for _, id := range part.order {
		result = append(result, part.byID[id].feature)
	}
	return result
}

// ByID returns the feature with the given id, or (nil, false) when the
// partition has no such feature.
func (s *Store) ByID(p Partition, id string) (*Feature, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.partition(p).byID[id]
	if !ok {
		return nil, false
	}
	return entry.feature, true
}

// Count returns the number of features in a partition.
func (s *Store) Count(p Partition) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.partition(p).order)
}

// Bounds returns the union of all feature bounds in a partition.
//
// The second return value is false when the partition is empty or contains
// only features with empty geometry.
func (s *Store) Bounds(p Partition) (Bounds, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	part := s.partition(p)
	var union Bounds
	found := false
	for _, id := range part.order {
		entry := part.byID[id]
		if !entry.hasBounds {
			continue
		}
		if !found {
			union = entry.bounds
			found = true
			continue
		}
		union = union.Union(entry.bounds)
	}
	return union, found
}

// FeaturesInBounds returns all features in a partition whose bounding box
// intersects the given bounds.
//
// Uses the partition's R-tree for O(log n) queries, falling back to a linear
// scan when no index exists. Features with empty geometry are never returned.
func (s *Store) FeaturesInBounds(p Partition, bounds Bounds) []*Feature {
	s.mu.RLock()
	defer s.mu.RUnlock()

	part := s.partition(p)
	if part.rtree == nil || part.rtree.Size() == 0 {
		return part.featuresInBoundsLinear(bounds)
	}

	spatials := part.rtree.SearchIntersect(boundsRect(bounds))
	result := make([]*Feature, 0, len(spatials))
	for _, spatial := range spatials {
		result = append(result, spatial.(*indexedFeature).feature)
	}
	return result
}

// partition returns the named partition, or an empty throwaway one for
// unknown values, so queries against an unknown partition degrade to empty
// results rather than a panic.
// Must be called with s.mu locked (read or write).
func (s *Store) partition(p Partition) *partition {
	if part, ok := s.partitions[p]; ok {
		return part
	}
	return newPartition()
}

// ensureID assigns an id to a feature that lacks one.
// Must be called with s.mu locked.
func (s *Store) ensureID(f *Feature) {
	if f.ID != "" {
		return
	}
	if s.assignUUIDs {
		f.ID = uuid.NewString()
		return
	}
	f.ID = DeriveID(f.Geometry)
}

// partition is one id-to-feature mapping with insertion order and an R-tree.
type partition struct {
	order []string
	byID  map[string]*indexedFeature
	rtree *rtreego.Rtree
}

func newPartition() *partition {
	return &partition{
		byID:  make(map[string]*indexedFeature),
		rtree: rtreego.NewTree(2, 25, 50),
	}
}

// put inserts or replaces a feature, maintaining order and the R-tree.
func (p *partition) put(f *Feature) {
	if existing, ok := p.byID[f.ID]; ok {
		if existing.hasBounds {
			p.rtree.Delete(existing)
		}
	} else {
		p.order = append(p.order, f.ID)
	}

	entry := newIndexedFeature(f)
	p.byID[f.ID] = entry
	if entry.hasBounds {
		p.rtree.Insert(entry)
	}
}

// remove deletes a feature by id, maintaining order and the R-tree.
func (p *partition) remove(id string) {
	entry, ok := p.byID[id]
	if !ok {
		return
	}

	if entry.hasBounds {
		p.rtree.Delete(entry)
	}
	delete(p.byID, id)
	for i, existing := range p.order {
		if existing == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// featuresInBoundsLinear performs linear search when no spatial index exists.
func (p *partition) featuresInBoundsLinear(bounds Bounds) []*Feature {
	var result []*Feature
	for _, id := range p.order {
		entry := p.byID[id]
		if !entry.hasBounds {
			continue
		}
		if bounds.Intersects(entry.bounds) {
			result = append(result, entry.feature)
		}
	}
	return result
}

// indexedFeature wraps a feature for R-tree storage.
type indexedFeature struct {
	feature   *Feature
	bounds    Bounds
	hasBounds bool
}

func newIndexedFeature(f *Feature) *indexedFeature {
	bounds, ok := featureBounds(f)
	return &indexedFeature{
		feature:   f,
		bounds:    bounds,
		hasBounds: ok,
	}
}

// Bounds implements rtreego.Spatial.
func (f *indexedFeature) Bounds() rtreego.Rect {
	return boundsRect(f.bounds)
}

// boundsRect converts a Bounds to an rtreego.Rect.
//
// R-tree rectangles require non-zero dimensions, so zero-extent bounds
// (point features, axis-aligned segments) are padded by a small epsilon.
func boundsRect(b Bounds) rtreego.Rect {
	const epsilon = 1e-9

	point := rtreego.Point{b.MinX, b.MinY}
	xLength := b.MaxX - b.MinX
	yLength := b.MaxY - b.MinY
	if xLength < epsilon {
		xLength = epsilon
	}
	if yLength < epsilon {
		yLength = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{xLength, yLength})
	return rect
}
