package layout

import (
	"image"
	"math"

	"github.com/bookpress/bookpress/internal/kdp"
)

// MinSpineTextPages is the KDP minimum page count for printing text on the
// spine. Thinner books still get a solid spine band, just without text.
const MinSpineTextPages = 79

// spineTextClearance keeps spine text away from the head and tail of the
// book, beyond the bleed, so it survives trimming tolerances.
const spineTextClearance = 0.0625 // inches

// SpineTextEligible reports whether the book is thick enough for spine text.
// When false the spine must still be drawn as a plain color band.
func SpineTextEligible(pageCount int) bool {
	return pageCount >= MinSpineTextPages
}

// SpineTextArea returns the rectangle spine text must fit inside: the spine
// region inset vertically by the bleed plus a trim-tolerance clearance.
// Callers center their (rotated) text inside this box.
func SpineTextArea(dims kdp.CoverDimensions) image.Rectangle {
	spine := Regions(dims).Spine
	inset := int(math.Round((dims.BleedInches + spineTextClearance) * float64(dims.DPI)))
	return image.Rect(spine.Min.X, inset, spine.Max.X, dims.HeightPx-inset)
}
