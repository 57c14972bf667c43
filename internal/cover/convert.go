package cover

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/bookpress/bookpress/internal/kdp"
	"github.com/bookpress/bookpress/internal/layout"
)

// LoadImage reads a JPEG or PNG cover from disk.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening cover image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding cover image %s: %w", path, err)
	}
	return img, nil
}

// ConvertToEbook rescales an existing cover image to the ebook canvas.
// Aspect ratio is not preserved; KDP crops nothing, so the source should
// already be close to 1.6:1.
func ConvertToEbook(src image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, EbookWidth, EbookHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// ConvertToPrint builds a full print wrap from an existing front-cover
// image: the source fills the front panel, the back panel mirrors the
// primary color sampled from it, and the spine gets a solid band. The
// barcode safe area is cleared to white.
func ConvertToPrint(src image.Image, spec Spec) (*image.RGBA, kdp.CoverDimensions, error) {
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

	// Back panel and margins take the average color of the source so the
	// wrap reads as one piece.
	r, g, b := imageSampler{src}.AverageColor(src.Bounds())
	fillRect(img, img.Bounds(), RGB{r, g, b})

	regions := layout.Regions(dims)
	draw.CatmullRom.Scale(img, regions.Front, src, src.Bounds(), draw.Src, nil)

	spineColor := RGB{r, g, b}
	if spec.Secondary != "" {
		if c, err := ParseHex(spec.Secondary); err == nil {
			spineColor = c
		}
	}
	fillRect(img, regions.Spine, spineColor)

	if layout.SpineTextEligible(spec.PageCount) {
		if err := drawSpineText(img, dims, spec.Title, spec.Author); err != nil {
			return nil, kdp.CoverDimensions{}, err
		}
	}

	if safe := layout.BarcodeSafeArea(dims, spec.Format); safe != nil {
		fillRect(img, *safe, white)
	}

	return img, dims, nil
}
