package main

import (
	"fmt"

	"geostyle/pkg/geostyle"
)

func main() {
	store := geostyle.NewStore()
	store.Index(geostyle.PartitionMarkers, []*geostyle.Feature{
		geostyle.NewPointFeature("a", 0, 0, "Alpha"),
		geostyle.NewPointFeature("b", 30, 40, "Bravo"),
		geostyle.NewPointFeature("c", 300, 400, "Charlie"),
	})

	engine := geostyle.NewEngine(store)

	a, _ := store.ByID(geostyle.PartitionMarkers, "a")
	b, _ := store.ByID(geostyle.PartitionMarkers, "b")

	fmt.Printf("distance a-b: %.0f\n", engine.Distance(a, b))

	if nearest, ok := engine.NearestMarker(a); ok {
		fmt.Printf("nearest to a: %s\n", nearest.ID)
	}

	for _, m := range engine.MarkersWithinDistance(a, 100) {
		fmt.Printf("within 100 of a: %s\n", m.ID)
	}

	// Viewport query backed by the store's R-tree
	viewport := geostyle.Bounds{MinX: -10, MaxX: 50, MinY: -10, MaxY: 50}
	for _, m := range store.FeaturesInBounds(geostyle.PartitionMarkers, viewport) {
		fmt.Printf("visible: %s\n", m.ID)
	}
}
