package geostyle

import "testing"

func TestCacheValidateFirstCall(t *testing.T) {
	cache := NewColorCache()

	// First call stores fingerprints and reports invalid
	if cache.Validate([]string{"source-a", "source-b"}) {
		t.Error("Expected first Validate to invalidate")
	}
	if cache.LastRebuild().IsZero() {
		t.Error("Expected rebuild timestamp to be set")
	}

	// Same contents: valid from now on
	if !cache.Validate([]string{"source-a", "source-b"}) {
		t.Error("Expected unchanged contents to validate")
	}
}

func TestCacheInvalidationOnContentChange(t *testing.T) {
	cache := NewColorCache()
	cache.Validate([]string{"source-a", "source-b"})
	cache.SetColor("p1", "#e6194b")

	// Single character change in one entry invalidates everything
	if cache.Validate([]string{"source-a", "source-B"}) {
		t.Error("Expected changed content to invalidate")
	}
	if cache.Len() != 0 {
		t.Errorf("Expected colors cleared on invalidation, got %d entries", cache.Len())
	}
}

func TestCacheInvalidationOnCountChange(t *testing.T) {
	cache := NewColorCache()
	cache.Validate([]string{"source-a"})
	cache.SetColor("p1", "#e6194b")

	if cache.Validate([]string{"source-a", "source-b"}) {
		t.Error("Expected source count change to invalidate")
	}
	if cache.Len() != 0 {
		t.Error("Expected colors cleared on invalidation")
	}
}

func TestCachePrune(t *testing.T) {
	cache := NewColorCache()
	cache.SetColor("keep", "#e6194b")
	cache.SetColor("drop", "#3cb44b")

	removed := cache.Prune(map[string]struct{}{"keep": {}})
	if removed != 1 {
		t.Errorf("Expected 1 entry pruned, got %d", removed)
	}
	if _, ok := cache.Color("drop"); ok {
		t.Error("Expected pruned entry gone")
	}
	if color, ok := cache.Color("keep"); !ok || color != "#e6194b" {
		t.Error("Expected surviving entry preserved unchanged")
	}
}

func TestCacheSnapshotAndReset(t *testing.T) {
	cache := NewColorCache()
	cache.Validate([]string{"src"})
	cache.SetColor("p1", "#e6194b")

	snap := cache.Snapshot()
	snap["p1"] = "mutated"
	if color, _ := cache.Color("p1"); color != "#e6194b" {
		t.Error("Expected Snapshot to return a copy")
	}

	cache.Reset()
	if cache.Len() != 0 {
		t.Error("Expected empty cache after Reset")
	}
	if !cache.LastRebuild().IsZero() {
		t.Error("Expected zero rebuild time after Reset")
	}
	if cache.Validate([]string{"src"}) {
		t.Error("Expected Reset to forget fingerprints")
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	if Fingerprint("abc") != Fingerprint("abc") {
		t.Error("Expected identical inputs to fingerprint identically")
	}
	if Fingerprint("abc") == Fingerprint("abd") {
		t.Error("Expected different inputs to fingerprint differently")
	}
}
