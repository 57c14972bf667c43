package cover

import (
	"bytes"
	"fmt"
	"image"

	"github.com/jung-kurt/gofpdf"

	"github.com/bookpress/bookpress/internal/kdp"
)

// WritePDF wraps a rendered print cover in a single-page PDF sized exactly
// to the wrap dimensions in inches, as KDP requires for paperback and
// hardcover uploads.
func WritePDF(img image.Image, dims kdp.CoverDimensions, title, path string) error {
	jpg, err := EncodeJPEG(img)
	if err != nil {
		return err
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "in",
		Size:    gofpdf.SizeType{Wd: dims.WidthInches, Ht: dims.HeightInches},
	})
	pdf.SetTitle(title, true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "JPG"}
	pdf.RegisterImageOptionsReader("cover", opts, bytes.NewReader(jpg))
	pdf.ImageOptions("cover", 0, 0, dims.WidthInches, dims.HeightInches, false, opts, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing cover pdf: %w", err)
	}
	return nil
}
