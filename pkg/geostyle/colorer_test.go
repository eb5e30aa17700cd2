package geostyle

import (
	"math/rand"
	"reflect"
	"regexp"
	"testing"
)

// overlappingPolygons returns n squares that all overlap each other's
// bounding boxes.
func overlappingPolygons(n int) []*Feature {
	feats := make([]*Feature, n)
	for i := 0; i < n; i++ {
		feats[i] = squarePolygon("", float64(i), float64(i), 10)
	}
	return feats
}

func TestCalculateAssignsDistinctNeighborColors(t *testing.T) {
	colorer := NewColorer(NewColorCache())

	feats := overlappingPolygons(5)
	colors := colorer.CalculatePolygonColors(feats, []string{"src"})

	if len(colors) != 5 {
		t.Fatalf("Expected 5 colors, got %d", len(colors))
	}
	seen := make(map[string]string)
	for id, color := range colors {
		if prev, ok := seen[color]; ok {
			t.Errorf("Color %s assigned to both %s and %s", color, prev, id)
		}
		seen[color] = id
	}
}

func TestCalculateIdempotent(t *testing.T) {
	colorer := NewColorer(NewColorCache())
	feats := overlappingPolygons(5)
	raw := []string{"src-a", "src-b"}

	first := colorer.CalculatePolygonColors(feats, raw)
	second := colorer.CalculatePolygonColors(feats, raw)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical mappings, got %v then %v", first, second)
	}
}

func TestCalculateInvalidatesOnContentChange(t *testing.T) {
	cache := NewColorCache()
	colorer := NewColorer(cache)
	feats := overlappingPolygons(3)

	colorer.CalculatePolygonColors(feats, []string{"source"})

	// Plant a sentinel entry: it survives a valid cache but not a rebuild.
	cache.SetColor("sentinel", "#000001")

	colorer.CalculatePolygonColors(feats, []string{"source"})
	if _, ok := cache.Color("sentinel"); ok {
		t.Fatal("Expected sentinel pruned but cache not rebuilt on unchanged contents")
	}

	cache.SetColor(feats[0].ID, "#000002")
	colors := colorer.CalculatePolygonColors(feats, []string{"sourcE"})
	if colors[feats[0].ID] == "#000002" {
		t.Error("Expected single-character change to force full recomputation")
	}
}

func TestCalculatePrunesDeletedKeepsSurvivors(t *testing.T) {
	colorer := NewColorer(NewColorCache())
	feats := overlappingPolygons(5)
	raw := []string{"src"}

	before := colorer.CalculatePolygonColors(feats, raw)

	// Remove the middle polygon; fingerprints unchanged
	remaining := append([]*Feature{}, feats[:2]...)
	remaining = append(remaining, feats[3:]...)
	after := colorer.CalculatePolygonColors(remaining, raw)

	if _, ok := after[feats[2].ID]; ok {
		t.Error("Expected removed polygon absent from mapping")
	}
	for _, f := range remaining {
		if after[f.ID] != before[f.ID] {
			t.Errorf("Expected survivor %s to keep color %s, got %s",
				f.ID, before[f.ID], after[f.ID])
		}
	}
}

func TestCalculateRandomFallbackOnExhaustion(t *testing.T) {
	palette, err := NewPalette([]string{"#e6194b"})
	if err != nil {
		t.Fatal(err)
	}
	cache := NewColorCache()
	colorer := NewColorerWithOptions(cache, ColorerOptions{
		Palette: palette,
		Rand:    rand.New(rand.NewSource(42)),
	})

	feats := overlappingPolygons(2)
	colors := colorer.CalculatePolygonColors(feats, []string{"src"})

	if colors[feats[0].ID] != "#e6194b" {
		t.Errorf("Expected first polygon to get the palette color, got %s", colors[feats[0].ID])
	}

	fallback := colors[feats[1].ID]
	if fallback == "#e6194b" {
		t.Fatal("Expected second polygon to not reuse its neighbor's color")
	}
	if !regexp.MustCompile(`^#[0-9a-f]{6}$`).MatchString(fallback) {
		t.Errorf("Expected a #rrggbb fallback token, got %q", fallback)
	}

	// Fallback colors are not authoritative: not cached
	if _, ok := cache.Color(feats[1].ID); ok {
		t.Error("Expected fallback color to not be cached")
	}
}

func TestCalculateEmptyGeometry(t *testing.T) {
	colorer := NewColorer(NewColorCache())

	empty := NewPolygonFeature("empty", nil)
	feats := append(overlappingPolygons(3), empty)
	colors := colorer.CalculatePolygonColors(feats, []string{"src"})

	// No neighbors: eligible for the first palette color
	if colors["empty"] != DefaultPalette().Tokens()[0] {
		t.Errorf("Expected empty geometry to get the first palette color, got %s", colors["empty"])
	}
}

func TestApplyPolygonColors(t *testing.T) {
	colorer := NewColorer(NewColorCache())
	feats := overlappingPolygons(3)

	colorer.ApplyPolygonColors(feats, []string{"src"})

	seen := make(map[string]bool)
	for _, f := range feats {
		color, ok := f.Properties[PropertyFillColor].(string)
		if !ok || color == "" {
			t.Fatalf("Expected fillColor written on %s", f.ID)
		}
		if seen[color] {
			t.Errorf("Expected distinct colors for overlapping polygons, %s repeated", color)
		}
		seen[color] = true
	}
}

func TestApplyInitializesNilProperties(t *testing.T) {
	colorer := NewColorer(NewColorCache())

	f := squarePolygon("a", 0, 0, 10)
	f.Properties = nil
	colorer.ApplyPolygonColors([]*Feature{f}, []string{"src"})

	if _, ok := f.Properties[PropertyFillColor]; !ok {
		t.Error("Expected fillColor written even with nil property bag")
	}
}

func TestNonOverlappingPolygonsShareColors(t *testing.T) {
	colorer := NewColorer(NewColorCache())

	// Far apart: no bounding box overlap, everyone may take the first color
	feats := []*Feature{
		squarePolygon("a", 0, 0, 1),
		squarePolygon("b", 100, 100, 1),
	}
	colors := colorer.CalculatePolygonColors(feats, []string{"src"})

	first := DefaultPalette().Tokens()[0]
	if colors["a"] != first || colors["b"] != first {
		t.Errorf("Expected both isolated polygons to get %s, got %s and %s",
			first, colors["a"], colors["b"])
	}
}
