// Package cover renders KDP-compliant book covers: ebook front covers as
// JPEG and full print wraps (back + spine + front, with bleed) as JPEG or
// print-ready PDF. All geometry comes from internal/kdp and internal/layout;
// this package only fills pixels and encodes files.
package cover

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/bookpress/bookpress/internal/kdp"
	"github.com/bookpress/bookpress/internal/layout"
)

// Ebook covers follow the KDP recommended 1.6:1 ratio.
const (
	EbookWidth  = 1600
	EbookHeight = 2560
)

// JPEGQuality matches the KDP upload recommendation.
const JPEGQuality = 95

// Style selects the background treatment.
type Style string

const (
	StyleGradient   Style = "gradient"
	StyleSolid      Style = "solid"
	StyleMinimalist Style = "minimalist"
)

// Styles lists all valid cover styles in a stable order.
var Styles = []Style{StyleGradient, StyleSolid, StyleMinimalist}

// Spec describes one cover to render. TrimWidth/TrimHeight, PageCount,
// Paper, Binding and WrapStyle are only consulted for print formats.
type Spec struct {
	Title    string
	Subtitle string
	Author   string

	Format layout.Format
	Style  Style

	// Primary and Secondary are hex colors ("#667eea"). Secondary is the
	// gradient end color and the spine band color.
	Primary   string
	Secondary string

	TrimWidth  float64
	TrimHeight float64
	PageCount  int
	Paper      kdp.PaperType
	Binding    kdp.BindingType
	WrapStyle  kdp.HardcoverWrapStyle
	DPI        int
}

// GenerateEbook renders a 1600x2560 front cover.
func GenerateEbook(spec Spec) (*image.RGBA, error) {
	primary, secondary, err := spec.palette()
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, EbookWidth, EbookHeight))
	fillBackground(img, img.Bounds(), spec.Style, primary, secondary)
	if err := drawFrontPanel(img, img.Bounds(), spec, true); err != nil {
		return nil, err
	}
	return img, nil
}

// GeneratePrint renders the full print wrap at the spec's DPI and returns it
// together with the dimensions it was built from.
func GeneratePrint(spec Spec) (*image.RGBA, kdp.CoverDimensions, error) {
	primary, secondary, err := spec.palette()
	if err != nil {
		return nil, kdp.CoverDimensions{}, err
	}

	dpi := spec.DPI
	if dpi == 0 {
		dpi = kdp.PrintDPI
	}
	dims, err := kdp.CalculateCoverDimensions(
		spec.TrimWidth, spec.TrimHeight, spec.PageCount,
		spec.Paper, spec.Binding, spec.WrapStyle, dpi,
	)
	if err != nil {
		return nil, kdp.CoverDimensions{}, err
	}

	img := image.NewRGBA(image.Rect(0, 0, dims.WidthPx, dims.HeightPx))
	fillBackground(img, img.Bounds(), spec.Style, primary, secondary)

	regions := layout.Regions(dims)
	fillRect(img, regions.Spine, secondary)

	if layout.SpineTextEligible(spec.PageCount) {
		if err := drawSpineText(img, dims, spec.Title, spec.Author); err != nil {
			return nil, kdp.CoverDimensions{}, err
		}
	}

	if err := drawFrontPanel(img, regions.Front, spec, false); err != nil {
		return nil, kdp.CoverDimensions{}, err
	}

	if safe := layout.BarcodeSafeArea(dims, spec.Format); safe != nil {
		fillRect(img, *safe, white)
	}

	return img, dims, nil
}

// EncodeJPEG encodes a rendered cover for upload.
func EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding cover jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func (s Spec) palette() (primary, secondary RGB, err error) {
	primary, err = ParseHex(s.Primary)
	if err != nil {
		return RGB{}, RGB{}, fmt.Errorf("primary color: %w", err)
	}
	secondary, err = ParseHex(s.Secondary)
	if err != nil {
		return RGB{}, RGB{}, fmt.Errorf("secondary color: %w", err)
	}
	return primary, secondary, nil
}
