package geostyle

import (
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ColorCache stores assigned polygon colors keyed by feature id, together
// with content fingerprints of the raw source material the features were
// ingested from.
//
// The cache is an explicitly owned object: create one with NewColorCache and
// pass it to NewColorer. It has no hidden process-wide state, so independent
// colorers (and test runs) never interfere with each other. It lives as long
// as the colorer that owns it and is rebuilt in place, never recreated.
type ColorCache struct {
	mu           sync.Mutex
	colors       map[string]string
	fingerprints []uint64
	rebuiltAt    time.Time
}

// NewColorCache creates an empty color cache.
func NewColorCache() *ColorCache {
	return &ColorCache{
		colors: make(map[string]string),
	}
}

// Fingerprint computes the content fingerprint of one raw source text.
//
// This is a fast non-cryptographic hash (xxHash64); it detects content
// changes, not tampering.
func Fingerprint(text string) uint64 {
	return xxhash.Sum64String(text)
}

// Validate compares the fingerprints of rawContents, by position, against
// the stored ones.
//
// If the count differs or any fingerprint mismatches, the entire color
// mapping is cleared, the fresh fingerprints are stored, the rebuild
// timestamp is set, and Validate returns false. Otherwise the cache is left
// untouched and Validate returns true.
func (c *ColorCache) Validate(rawContents []string) bool {
	fresh := make([]uint64, len(rawContents))
	for i, text := range rawContents {
		fresh[i] = Fingerprint(text)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.matchesLocked(fresh) {
		return true
	}

	c.colors = make(map[string]string)
	c.fingerprints = fresh
	c.rebuiltAt = time.Now()
	return false
}

// matchesLocked reports whether fresh equals the stored fingerprints.
// Must be called with c.mu locked.
func (c *ColorCache) matchesLocked(fresh []uint64) bool {
	if len(fresh) != len(c.fingerprints) {
		return false
	}
	for i, fp := range fresh {
		if fp != c.fingerprints[i] {
			return false
		}
	}
	return true
}

// Prune removes cached colors for ids not present in live, returning the
// number of entries removed. Colors of surviving ids are preserved unchanged.
func (c *ColorCache) Prune(live map[string]struct{}) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for id := range c.colors {
		if _, ok := live[id]; !ok {
			delete(c.colors, id)
			removed++
		}
	}
	return removed
}

// Color returns the cached color for a feature id.
func (c *ColorCache) Color(id string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	color, ok := c.colors[id]
	return color, ok
}

// SetColor caches a color for a feature id.
func (c *ColorCache) SetColor(id, color string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.colors[id] = color
}

// Snapshot returns a copy of the current color mapping.
func (c *ColorCache) Snapshot() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]string, len(c.colors))
	for id, color := range c.colors {
		out[id] = color
	}
	return out
}

// Len returns the number of cached color entries.
func (c *ColorCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.colors)
}

// LastRebuild returns the time of the last full invalidation, or the zero
// time if the cache has never been (in)validated.
func (c *ColorCache) LastRebuild() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.rebuiltAt
}

// Reset clears all colors and fingerprints, returning the cache to its
// initial state.
func (c *ColorCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.colors = make(map[string]string)
	c.fingerprints = nil
	c.rebuiltAt = time.Time{}
}
