// Package watermark stamps review and draft copies of generated books. PDF
// pages are re-imported and overlaid with rotated translucent text; HTML
// files get a fixed-position CSS overlay. Every stamped file gets a JSON
// sidecar recording what was applied.
package watermark

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
)

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B int
}

// Config describes the stamp. Zero fields fall back to the defaults below.
type Config struct {
	Text     string  `json:"text"`
	FontSize float64 `json:"font_size"` // points
	Opacity  float64 `json:"opacity"`   // 0..1
	Angle    float64 `json:"angle"`     // degrees, counterclockwise
	Color    RGB     `json:"color"`
}

// Defaults: large, light gray, diagonal.
const (
	DefaultFontSize = 60.0
	DefaultOpacity  = 0.3
	DefaultAngle    = 45.0
)

var defaultColor = RGB{200, 200, 200}

func (c Config) withDefaults() Config {
	if c.FontSize == 0 {
		c.FontSize = DefaultFontSize
	}
	if c.Opacity == 0 {
		c.Opacity = DefaultOpacity
	}
	if c.Angle == 0 {
		c.Angle = DefaultAngle
	}
	if c.Color == (RGB{}) {
		c.Color = defaultColor
	}
	return c
}

// ApplyPDF rewrites inputPath to outputPath with the watermark stamped
// across every page. Page sizes are preserved.
func ApplyPDF(inputPath, outputPath string, cfg Config) error {
	cfg = cfg.withDefaults()
	if cfg.Text == "" {
		return fmt.Errorf("watermark text is empty")
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	imp := gofpdi.NewImporter()

	// Importing the first page loads the whole source; the size map then
	// tells us how many pages there are.
	firstTpl := imp.ImportPage(pdf, inputPath, 1, "/MediaBox")
	sizes := imp.GetPageSizes()
	pageCount := len(sizes)
	if pageCount == 0 {
		return fmt.Errorf("no pages found in %s", inputPath)
	}

	for page := 1; page <= pageCount; page++ {
		tpl := firstTpl
		if page > 1 {
			tpl = imp.ImportPage(pdf, inputPath, page, "/MediaBox")
		}

		w, h := pageSize(sizes, page)
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})
		imp.UseImportedTemplate(pdf, tpl, 0, 0, w, h)
		stampPage(pdf, cfg, w, h)
	}

	if pdf.Err() {
		return fmt.Errorf("watermarking %s: %w", inputPath, pdf.Error())
	}
	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return WriteSidecar(outputPath, cfg)
}

func pageSize(sizes map[int]map[string]map[string]float64, page int) (w, h float64) {
	if dims, ok := sizes[page]; ok {
		if mb, ok := dims["/MediaBox"]; ok {
			w, h = mb["w"], mb["h"]
		}
	}
	if w == 0 || h == 0 {
		// A4 in points
		w, h = 595.28, 841.89
	}
	return w, h
}

// stampPage draws the watermark text rotated around the page center.
func stampPage(pdf *gofpdf.Fpdf, cfg Config, pageW, pageH float64) {
	pdf.SetFont("Helvetica", "B", cfg.FontSize)
	pdf.SetTextColor(cfg.Color.R, cfg.Color.G, cfg.Color.B)
	pdf.SetAlpha(cfg.Opacity, "Normal")

	cx := pageW / 2
	cy := pageH / 2
	textW := pdf.GetStringWidth(cfg.Text)

	pdf.TransformBegin()
	pdf.TransformRotate(cfg.Angle, cx, cy)
	pdf.Text(cx-textW/2, cy+cfg.FontSize/3, cfg.Text)
	pdf.TransformEnd()

	pdf.SetAlpha(1.0, "Normal")
}

// Sidecar records what stamp a file carries, next to the file itself.
type Sidecar struct {
	Config    Config    `json:"watermark"`
	AppliedAt time.Time `json:"applied_at"`
}

// SidecarPath returns the metadata path for a stamped file.
func SidecarPath(path string) string {
	return path + ".watermark.json"
}

// WriteSidecar saves the stamp metadata for a file.
func WriteSidecar(path string, cfg Config) error {
	data, err := json.MarshalIndent(Sidecar{Config: cfg.withDefaults(), AppliedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding watermark sidecar: %w", err)
	}
	if err := os.WriteFile(SidecarPath(path), data, 0600); err != nil {
		return fmt.Errorf("writing watermark sidecar: %w", err)
	}
	return nil
}

// ReadSidecar loads stamp metadata, reporting ok=false when none exists.
func ReadSidecar(path string) (Sidecar, bool, error) {
	data, err := os.ReadFile(SidecarPath(path))
	if os.IsNotExist(err) {
		return Sidecar{}, false, nil
	}
	if err != nil {
		return Sidecar{}, false, err
	}
	var sc Sidecar
	if err := json.Unmarshal(data, &sc); err != nil {
		return Sidecar{}, false, fmt.Errorf("parsing watermark sidecar: %w", err)
	}
	return sc, true, nil
}
