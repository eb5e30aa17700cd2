package main

import (
	"fmt"

	"geostyle/pkg/geostyle"
)

func main() {
	// Index two districts and one station
	store := geostyle.NewStore()
	store.Index(geostyle.PartitionPolygons, []*geostyle.Feature{
		geostyle.NewPolygonFeature("north", [][][]float64{
			{{0, 0}, {0, 100}, {100, 100}, {100, 0}, {0, 0}},
		}),
		geostyle.NewPolygonFeature("south", [][][]float64{
			{{50, 50}, {50, 150}, {150, 150}, {150, 50}, {50, 50}},
		}),
	})
	store.Index(geostyle.PartitionMarkers, []*geostyle.Feature{
		geostyle.NewPointFeature("station-1", 25, 25, "Central"),
	})

	// Color the districts; adjacent (overlapping bounding box) districts
	// get distinct fill colors
	colorer := geostyle.NewColorer(geostyle.NewColorCache())
	colorer.ApplyPolygonColors(
		store.All(geostyle.PartitionPolygons),
		[]string{"raw district geojson text"},
	)

	for _, district := range store.All(geostyle.PartitionPolygons) {
		fmt.Printf("%s: %v\n", district.ID, district.Properties[geostyle.PropertyFillColor])
	}

	// Which districts contain the station?
	engine := geostyle.NewEngine(store)
	station, _ := store.ByID(geostyle.PartitionMarkers, "station-1")
	for _, district := range engine.PolygonsContainingMarker(station) {
		fmt.Printf("station-1 is in %s (area %.0f)\n", district.ID, engine.Area(district))
	}
}
