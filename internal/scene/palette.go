package scene

import "image/color"

// Palette is the colour scheme every renderer shares.
var (
	ColorBackground = color.NRGBA{R: 10, G: 10, B: 10, A: 255}
	ColorOutline    = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	ColorCentre     = color.NRGBA{R: 255, G: 128, B: 0, A: 15}
	ColorRim        = color.NRGBA{R: 255, G: 255, B: 255, A: 5}
	ColorHover      = color.NRGBA{R: 255, G: 255, B: 255, A: 40}
	ColorPath       = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	ColorStuck      = color.NRGBA{R: 255, G: 200, B: 0, A: 255}
	ColorLabel      = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
)

// FillColor returns the tint for a fill kind; ok is false for FillNone.
func FillColor(f Fill) (c color.NRGBA, ok bool) {
	switch f {
	case FillCentre:
		return ColorCentre, true
	case FillRim:
		return ColorRim, true
	case FillHover:
		return ColorHover, true
	}
	return color.NRGBA{}, false
}

// Color is the fill of an end marker.
func (m Marker) Color() color.NRGBA {
	if m.Stuck {
		return ColorStuck
	}
	return ColorPath
}
