package layout

import "image"

// TextColor is the black-or-white decision for text over a background.
type TextColor string

const (
	TextBlack TextColor = "black"
	TextWhite TextColor = "white"
)

// RegionSampler measures the average color of a rectangular region of
// whatever surface the rendering layer draws on. Implemented by the cover
// assembly code; this package only consumes it.
type RegionSampler interface {
	AverageColor(region image.Rectangle) (r, g, b uint8)
}

// luminanceThreshold is the midpoint of the 0..255 range. Backgrounds above
// it read as light, so they get black text.
const luminanceThreshold = 127.5

// Luminance returns the perceived brightness of an sRGB color using the
// ITU-R BT.709 weights.
func Luminance(r, g, b uint8) float64 {
	return 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
}

// OptimalTextColor picks black or white text for the given background
// region based on its average perceived luminance. Deterministic for
// identical pixel input.
func OptimalTextColor(sampler RegionSampler, region image.Rectangle) TextColor {
	r, g, b := sampler.AverageColor(region)
	if Luminance(r, g, b) > luminanceThreshold {
		return TextBlack
	}
	return TextWhite
}
