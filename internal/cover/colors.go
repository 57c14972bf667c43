package cover

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// RGB is a plain 8-bit color. Kept separate from image/color so the drawing
// helpers can interpolate without premultiplied-alpha surprises.
type RGB struct {
	R, G, B uint8
}

var (
	white = RGB{255, 255, 255}
	black = RGB{0, 0, 0}
)

// ParseHex parses a "#rrggbb" or "rrggbb" color string.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Scheme is a named primary/secondary color pair offered by the CLI and web
// front-ends. The AI assistant suggests scheme names from this set.
type Scheme struct {
	Name      string
	Primary   string
	Secondary string
}

// Schemes lists the built-in color schemes in a stable order.
var Schemes = []Scheme{
	{"ocean", "#667eea", "#764ba2"},
	{"midnight", "#0f2027", "#2c5364"},
	{"forest", "#134e5e", "#71b280"},
	{"sunset", "#ee0979", "#ff6a00"},
	{"ember", "#ff416c", "#ff4b2b"},
	{"slate", "#485563", "#29323c"},
	{"royal", "#141e30", "#243b55"},
	{"dawn", "#ff9966", "#ff5e62"},
}

// SchemeByName looks up a built-in scheme, case-insensitively.
func SchemeByName(name string) (Scheme, bool) {
	for _, s := range Schemes {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Scheme{}, false
}

// imageSampler adapts a rendered image to the layout package's sampler
// interface by averaging the channel values over a region.
type imageSampler struct {
	img image.Image
}

func (s imageSampler) AverageColor(region image.Rectangle) (uint8, uint8, uint8) {
	region = region.Intersect(s.img.Bounds())
	if region.Empty() {
		return 0, 0, 0
	}

	var sumR, sumG, sumB uint64
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			r, g, b, _ := s.img.At(x, y).RGBA()
			sumR += uint64(r >> 8)
			sumG += uint64(g >> 8)
			sumB += uint64(b >> 8)
		}
	}
	n := uint64(region.Dx()) * uint64(region.Dy())
	return uint8(sumR / n), uint8(sumG / n), uint8(sumB / n)
}
