package geostyle

import (
	"log/slog"
	"math/rand"
)

// StoreOptions configures store behavior.
type StoreOptions struct {
	// AssignUUIDs controls how features lacking an id are identified.
	// Default is false - ids are derived from geometry (see DeriveID),
	// which is deterministic but collides for identical coordinates.
	//
	// Set to true to assign a fresh UUID instead. UUIDs never collide but
	// are not reproducible across re-ingestion of the same source.
	AssignUUIDs bool
}

// DefaultStoreOptions returns default store options.
func DefaultStoreOptions() StoreOptions {
	return StoreOptions{
		AssignUUIDs: false,
	}
}

// ColorerOptions configures colorer behavior.
type ColorerOptions struct {
	// Palette is the ordered color sequence to assign from.
	// Default is DefaultPalette().
	Palette *Palette

	// Rand is the random source for the palette-exhaustion fallback.
	// Default is a time-seeded source. Inject a fixed-seed source in tests
	// to make fallback colors reproducible.
	Rand *rand.Rand

	// Logger receives debug-level lines on cache invalidation and palette
	// exhaustion. Default is nil - the colorer is silent.
	Logger *slog.Logger
}

// DefaultColorerOptions returns default colorer options.
func DefaultColorerOptions() ColorerOptions {
	return ColorerOptions{
		Palette: DefaultPalette(),
	}
}
