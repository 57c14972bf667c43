// Package layout decides where things go on a print cover wrap: the panel
// regions along the width axis, the barcode safe area, spine text gating and
// placement, plus the text-color and word-wrap decisions used when drawing.
//
// Everything here is pure geometry over kdp.CoverDimensions. The package
// never touches pixels itself; rendering capabilities (font metrics, pixel
// sampling) are injected as narrow interfaces.
package layout

import (
	"image"

	"github.com/bookpress/bookpress/internal/kdp"
)

// Format identifies the physical cover kind being laid out. Ebook covers are
// a single front panel with no spine, back or bleed.
type Format string

const (
	FormatEbook     Format = "ebook"
	FormatPaperback Format = "paperback"
	FormatHardcover Format = "hardcover"
)

// CoverRegions splits a full print wrap into its panels, left to right:
// optional back flap, back panel, spine, front panel, optional front flap.
// All rectangles are in pixels at the cover's DPI and include the vertical
// bleed; the flap rectangles are empty unless the wrap style has flaps.
type CoverRegions struct {
	BackFlap  image.Rectangle
	Back      image.Rectangle
	Spine     image.Rectangle
	Front     image.Rectangle
	FrontFlap image.Rectangle
}

// Regions computes the panel split for a cover wrap. The back panel sits on
// the left of the spine and the front on the right, matching how the printed
// sheet wraps around the book.
func Regions(dims kdp.CoverDimensions) CoverRegions {
	flapPx := dims.FlapWidthPx
	panelPx := dims.PanelWidthPx()
	spinePx := dims.SpineWidthPx

	// Horizontal bleed is whatever remains after flaps, panels and spine;
	// deriving it keeps the regions exactly tiling the rounded pixel width.
	bleedPx := (dims.WidthPx - 2*flapPx - 2*panelPx - spinePx) / 2

	x := bleedPx
	r := CoverRegions{}
	if flapPx > 0 {
		r.BackFlap = image.Rect(x, 0, x+flapPx, dims.HeightPx)
		x += flapPx
	}
	r.Back = image.Rect(x, 0, x+panelPx, dims.HeightPx)
	x += panelPx
	r.Spine = image.Rect(x, 0, x+spinePx, dims.HeightPx)
	x += spinePx
	r.Front = image.Rect(x, 0, x+panelPx, dims.HeightPx)
	x += panelPx
	if flapPx > 0 {
		r.FrontFlap = image.Rect(x, 0, x+flapPx, dims.HeightPx)
	}
	return r
}
