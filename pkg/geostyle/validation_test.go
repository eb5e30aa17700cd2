package geostyle

import (
	"errors"
	"math"
	"testing"
)

func TestValidateCoordinate(t *testing.T) {
	if err := ValidateCoordinate(10, -20); err != nil {
		t.Errorf("Expected finite coordinate valid, got %v", err)
	}

	err := ValidateCoordinate(math.NaN(), 0)
	if err == nil {
		t.Fatal("Expected NaN coordinate to be invalid")
	}
	var coordErr *ErrInvalidCoordinate
	if !errors.As(err, &coordErr) {
		t.Errorf("Expected *ErrInvalidCoordinate, got %T", err)
	}

	if ValidateCoordinate(math.Inf(1), 0) == nil {
		t.Error("Expected infinite coordinate to be invalid")
	}
}

func TestValidateGeometry(t *testing.T) {
	valid := squarePolygon("a", 0, 0, 10)
	if err := ValidateGeometry(&valid.Geometry); err != nil {
		t.Errorf("Expected closed square valid, got %v", err)
	}

	// Empty geometry is valid input everywhere
	empty := Geometry{Type: GeometryTypePolygon}
	if err := ValidateGeometry(&empty); err != nil {
		t.Errorf("Expected empty geometry valid, got %v", err)
	}

	if err := ValidateGeometry(nil); err == nil {
		t.Error("Expected nil geometry invalid")
	}

	open := Geometry{
		Type:  GeometryTypePolygon,
		Rings: [][][]float64{{{0, 0}, {0, 10}, {10, 10}, {10, 0}}},
	}
	err := ValidateGeometry(&open)
	if err == nil {
		t.Fatal("Expected unclosed ring invalid")
	}
	var geomErr *ErrInvalidGeometry
	if !errors.As(err, &geomErr) {
		t.Errorf("Expected *ErrInvalidGeometry, got %T", err)
	}

	short := Geometry{
		Type:  GeometryTypePolygon,
		Rings: [][][]float64{{{0, 0}, {1, 1}, {0, 0}}},
	}
	if ValidateGeometry(&short) == nil {
		t.Error("Expected 3-vertex ring invalid")
	}
}

func TestValidateFeature(t *testing.T) {
	if err := ValidateFeature(squarePolygon("a", 0, 0, 10)); err != nil {
		t.Errorf("Expected valid feature, got %v", err)
	}
	if err := ValidateFeature(nil); err == nil {
		t.Error("Expected nil feature invalid")
	}
	if err := ValidateFeature(NewPointFeature("m", 3, 4, "Label")); err != nil {
		t.Errorf("Expected valid marker, got %v", err)
	}
}
