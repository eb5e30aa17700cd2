package geostyle

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/dhconnelly/rtreego"
)

// NeutralFillColor is written onto polygons that end up without an assigned
// color (for example when ApplyPolygonColors is given a feature the coloring
// pass never saw).
const NeutralFillColor = "#cccccc"

// Colorer assigns each polygon a fill color such that polygons with
// overlapping bounding boxes are visually distinguishable.
//
// Adjacency is deliberately a bounding-box proxy, not exact polygon-edge
// topology. Switching to exact adjacency would change which features count
// as neighbors and therefore which colors they receive, so it must not be
// done silently.
//
// Coloring is a greedy, order-dependent heuristic: features are processed in
// input order and each takes the first palette color not used by an
// already-colored neighbor. With palette size P, any feature with fewer than
// P already-colored neighbors is guaranteed a color distinct from all of
// them; a feature with P or more falls back to a random color with no
// distinctness guarantee.
//
// Example:
//
//	cache := geostyle.NewColorCache()
//	colorer := geostyle.NewColorer(cache)
//
//	colorer.ApplyPolygonColors(store.All(geostyle.PartitionPolygons), rawSources)
type Colorer struct {
	cache   *ColorCache
	palette *Palette
	rng     *rand.Rand
	logger  *slog.Logger
}

// NewColorer creates a colorer owning the given cache, with default options.
func NewColorer(cache *ColorCache) *Colorer {
	return NewColorerWithOptions(cache, DefaultColorerOptions())
}

// NewColorerWithOptions creates a colorer with custom options.
//
// A nil options field falls back to its default (see ColorerOptions).
func NewColorerWithOptions(cache *ColorCache, opts ColorerOptions) *Colorer {
	palette := opts.Palette
	if palette == nil {
		palette = DefaultPalette()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Colorer{
		cache:   cache,
		palette: palette,
		rng:     rng,
		logger:  opts.Logger,
	}
}

// CalculatePolygonColors returns a feature id to color token mapping for the
// given polygon features.
//
// The colorer first validates its cache against rawContents (one raw source
// text per logical geometry source, fingerprint-compared by position). On
// any mismatch the whole mapping is recomputed; on a hit, cached colors of
// features no longer present are pruned and survivors keep their colors
// unchanged. Only features without a cached color are then assigned one.
//
// When every palette color is already used by a neighbor, the feature gets a
// uniformly random color from the injected random source. Fallback colors
// are returned but not cached, so a later recomputation with identical
// inputs may produce a different color for that feature - an accepted
// non-determinism, limited to features whose colored neighbor count reaches
// the palette size.
//
// Features with empty or degenerate geometry have no neighbors and receive
// the first palette color.
func (c *Colorer) CalculatePolygonColors(features []*Feature, rawContents []string) map[string]string {
	if !c.cache.Validate(rawContents) {
		if c.logger != nil {
			c.logger.Debug("color cache invalidated",
				"sources", len(rawContents),
				"features", len(features))
		}
	} else {
		live := make(map[string]struct{}, len(features))
		for _, f := range features {
			if f != nil {
				live[f.ID] = struct{}{}
			}
		}
		c.cache.Prune(live)
	}

	result := make(map[string]string, len(features))

	// Cached survivors keep their colors and count as already assigned
	// when neighbor colors are collected below.
	for _, f := range features {
		if f == nil {
			continue
		}
		if color, ok := c.cache.Color(f.ID); ok {
			result[f.ID] = color
		}
	}

	neighbors := newNeighborIndex(features)

	for _, f := range features {
		if f == nil {
			continue
		}
		if _, done := result[f.ID]; done {
			continue
		}

		used := make(map[string]struct{})
		for _, n := range neighbors.overlapping(f) {
			if color, ok := result[n.ID]; ok {
				used[color] = struct{}{}
			}
		}

		color, ok := c.palette.Pick(used)
		if ok {
			c.cache.SetColor(f.ID, color)
		} else {
			color = randomColor(c.rng)
			if c.logger != nil {
				c.logger.Debug("palette exhausted, using random fallback",
					"feature", f.ID,
					"neighbors", len(used))
			}
		}
		result[f.ID] = color
	}

	return result
}

// ApplyPolygonColors computes polygon colors and writes each feature's color
// into its property bag under PropertyFillColor, in place.
//
// Features absent from the computed mapping receive NeutralFillColor.
func (c *Colorer) ApplyPolygonColors(features []*Feature, rawContents []string) {
	colors := c.CalculatePolygonColors(features, rawContents)

	for _, f := range features {
		if f == nil {
			continue
		}
		color, ok := colors[f.ID]
		if !ok {
			color = NeutralFillColor
		}
		if f.Properties == nil {
			f.Properties = make(map[string]any)
		}
		f.Properties[PropertyFillColor] = color
	}
}

// randomColor returns a uniformly random #rrggbb token.
func randomColor(rng *rand.Rand) string {
	return fmt.Sprintf("#%06x", rng.Intn(1<<24))
}

// neighborIndex answers bounding-box overlap queries over one working set of
// features. It is rebuilt per coloring pass; the store's persistent index is
// not consulted so that the colorer depends only on its arguments.
type neighborIndex struct {
	rtree   *rtreego.Rtree
	entries map[*Feature]*indexedFeature
}

func newNeighborIndex(features []*Feature) *neighborIndex {
	idx := &neighborIndex{
		rtree:   rtreego.NewTree(2, 25, 50),
		entries: make(map[*Feature]*indexedFeature, len(features)),
	}
	for _, f := range features {
		if f == nil {
			continue
		}
		entry := newIndexedFeature(f)
		idx.entries[f] = entry
		if entry.hasBounds {
			idx.rtree.Insert(entry)
		}
	}
	return idx
}

// overlapping returns every other feature in the working set whose bounding
// box intersects f's. Features with empty geometry have no neighbors.
//
// The R-tree narrows candidates; the exact Bounds.Intersects check decides,
// so the epsilon padding R-tree rectangles carry cannot introduce phantom
// neighbors.
func (idx *neighborIndex) overlapping(f *Feature) []*Feature {
	entry, ok := idx.entries[f]
	if !ok || !entry.hasBounds {
		return nil
	}

	spatials := idx.rtree.SearchIntersect(entry.Bounds())
	result := make([]*Feature, 0, len(spatials))
	for _, spatial := range spatials {
		candidate := spatial.(*indexedFeature)
		if candidate == entry {
			continue
		}
		if entry.bounds.Intersects(candidate.bounds) {
			result = append(result, candidate.feature)
		}
	}
	return result
}
