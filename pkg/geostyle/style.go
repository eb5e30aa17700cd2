package geostyle

// Style is a renderer-consumable style description.
//
// Field names follow the fill/stroke paint property convention of vector
// map styles, so the struct can be serialized straight into a style layer.
type Style struct {
	FillColor   string  `json:"fill-color,omitempty"`
	FillOpacity float64 `json:"fill-opacity,omitempty"`
	StrokeColor string  `json:"stroke-color,omitempty"`
	StrokeWidth float64 `json:"stroke-width,omitempty"`
	Radius      float64 `json:"radius,omitempty"`
}

// FillStyle returns the fill style for a polygon feature, reading the color
// the colorer wrote under PropertyFillColor.
//
// Features without an assigned color get NeutralFillColor.
func FillStyle(f *Feature) Style {
	color := NeutralFillColor
	if f != nil {
		if v, ok := f.Properties[PropertyFillColor].(string); ok && v != "" {
			color = v
		}
	}
	return Style{
		FillColor:   color,
		FillOpacity: 0.45,
		StrokeColor: "#333333",
		StrokeWidth: 1,
	}
}

// MarkerStyle returns the fixed style for point markers.
func MarkerStyle() Style {
	return Style{
		FillColor:   "#3388ff",
		FillOpacity: 0.9,
		StrokeColor: "#ffffff",
		StrokeWidth: 1.5,
		Radius:      6,
	}
}
