package geostyle

import (
	"errors"
	"fmt"
)

// ErrEmptyPalette indicates a palette was constructed with zero tokens.
var ErrEmptyPalette = errors.New("palette must contain at least one color")

// ErrInvalidCoordinate indicates a coordinate with too few components or a
// non-finite value.
type ErrInvalidCoordinate struct {
	X, Y float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: x=%f y=%f (values must be finite)", e.X, e.Y)
}

// ErrInvalidGeometry indicates geometry that ingestion should not hand to
// the store: wrong coordinate arity, unclosed rings, non-finite values.
//
// The engine itself never returns this error; malformed geometry reaching a
// query or the colorer degrades to empty results and default colors instead.
// Validation exists for ingestion collaborators that want to reject bad
// input early.
type ErrInvalidGeometry struct {
	Type   GeometryType
	Reason string
}

func (e *ErrInvalidGeometry) Error() string {
	return fmt.Sprintf("invalid geometry (%v): %s", e.Type, e.Reason)
}
