package layout

import (
	"image"
	"math"

	"github.com/bookpress/bookpress/internal/kdp"
)

// Barcode safe-area geometry. KDP reserves a blank rectangle on the back
// panel for the printed ISBN barcode; hardcovers need a taller bottom
// clearance because the case wrap folds over more material.
const (
	BarcodeWidth  = 2.0 // inches
	BarcodeHeight = 1.2 // inches

	paperbackBarcodeClearanceBottom = 0.25 // inches from the bottom trim edge
	paperbackBarcodeClearanceSide   = 0.25 // inches from the spine
	hardcoverBarcodeClearanceBottom = 0.76
	hardcoverBarcodeClearanceSide   = 0.25
)

// BarcodeSafeArea returns the rectangle to keep blank for the ISBN barcode,
// in pixels, anchored to the lower-right of the back panel. Returns nil for
// ebook covers, which have no physical back.
func BarcodeSafeArea(dims kdp.CoverDimensions, format Format) *image.Rectangle {
	if format == FormatEbook {
		return nil
	}

	clearBottom := paperbackBarcodeClearanceBottom
	clearSide := paperbackBarcodeClearanceSide
	if format == FormatHardcover {
		clearBottom = hardcoverBarcodeClearanceBottom
		clearSide = hardcoverBarcodeClearanceSide
	}

	px := func(inches float64) int {
		return int(math.Round(inches * float64(dims.DPI)))
	}

	back := Regions(dims).Back

	// Inset from the spine on the right and the bottom trim edge below.
	x2 := back.Max.X - px(clearSide)
	y2 := dims.HeightPx - px(dims.BleedInches) - px(clearBottom)
	x1 := x2 - px(BarcodeWidth)
	y1 := y2 - px(BarcodeHeight)

	r := image.Rect(x1, y1, x2, y2)
	return &r
}
