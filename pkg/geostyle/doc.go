// Package geostyle provides a feature-indexing and styling engine for
// polygon and point features in a projected coordinate frame.
//
// The package has three cooperating components. A Store holds the canonical
// partitioned feature sets with incremental add/remove maintenance and an
// R-tree per partition. A Colorer assigns each polygon a fill color such
// that polygons with overlapping bounding boxes are distinguishable, cached
// against content fingerprints of the raw source material. An Engine answers
// read-only containment, distance, nearest-neighbor, radius, and area
// queries over the store.
//
// Retrieval and parsing of geometry data, and rendering, are external
// collaborators: they hand ordered feature batches and raw source texts in,
// and consume the fillColor property and query results coming out.
//
// # Basic Usage
//
//	store := geostyle.NewStore()
//	store.Index(geostyle.PartitionPolygons, districts)
//	store.Index(geostyle.PartitionMarkers, stations)
//
//	colorer := geostyle.NewColorer(geostyle.NewColorCache())
//	colorer.ApplyPolygonColors(store.All(geostyle.PartitionPolygons), rawSources)
//
//	engine := geostyle.NewEngine(store)
//	inside := engine.MarkersWithinPolygon(district)
//
// # Coloring and Caching
//
// CalculatePolygonColors fingerprints each raw source text (xxHash64) and
// compares against the fingerprints stored from the previous run. Unchanged
// sources keep all surviving colors; any change rebuilds the whole mapping.
// Deleted features are pruned from the cache without touching survivors:
//
//	colors := colorer.CalculatePolygonColors(polygons, rawSources)
//	// colors["Polygon_0,0,0,10,10,10,10,0,0,0"] == "#e6194b"
//
// Coloring is greedy and order-dependent. A feature whose bounding-box
// neighbors have already used every palette color receives a random fallback
// color; inject a seeded source via ColorerOptions.Rand to pin that down in
// tests.
//
// # Spatial Queries
//
// All Engine queries are exact (point-in-polygon with hole support, planar
// Euclidean distance, shoelace area) and scan the store's partitions in
// insertion order:
//
//	nearest, ok := engine.NearestMarker(station)
//	close := engine.MarkersWithinDistance(station, 250)
//	a := engine.Area(district)
//
// The store additionally offers FeaturesInBounds, an R-tree backed viewport
// query:
//
//	visible := store.FeaturesInBounds(geostyle.PartitionPolygons, viewport)
//
// # Identity
//
// Features without an id get one assigned during Index or OnAdd. The default
// derivation is deterministic from geometry (DeriveID), preserving legacy
// behavior where re-ingesting the same source reproduces the same ids; two
// distinct features with identical coordinates collide under this scheme.
// Stores created with StoreOptions.AssignUUIDs use random UUIDs instead.
//
// # Concurrency
//
// Store and ColorCache serialize access internally with one mutex each.
// Mutating operations (Index, OnAdd, OnRemove, CalculatePolygonColors) run
// to completion before the next one begins; queries take read locks. No
// operation performs I/O or blocks on anything but those locks.
package geostyle
