package cover

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/bookpress/bookpress/internal/kdp"
	"github.com/bookpress/bookpress/internal/layout"
)

// fillBackground paints the style's background across the given area.
// Minimalist covers are plain white; the text drawing picks a matching
// color afterwards by sampling.
func fillBackground(img *image.RGBA, area image.Rectangle, style Style, primary, secondary RGB) {
	switch style {
	case StyleSolid:
		fillRect(img, area, primary)
	case StyleMinimalist:
		fillRect(img, area, white)
	default:
		fillGradient(img, area, primary, secondary)
	}
}

func fillRect(img *image.RGBA, area image.Rectangle, c RGB) {
	draw.Draw(img, area, image.NewUniform(color.RGBA{c.R, c.G, c.B, 255}), image.Point{}, draw.Src)
}

// fillGradient paints a vertical blend from top (primary) to bottom
// (secondary), row by row.
func fillGradient(img *image.RGBA, area image.Rectangle, top, bottom RGB) {
	h := area.Dy()
	if h <= 0 {
		return
	}
	for y := area.Min.Y; y < area.Max.Y; y++ {
		t := float64(y-area.Min.Y) / float64(h)
		c := RGB{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
		}
		row := image.Rect(area.Min.X, y, area.Max.X, y+1)
		draw.Draw(img, row, image.NewUniform(color.RGBA{c.R, c.G, c.B, 255}), image.Point{}, draw.Src)
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// drawFrontPanel renders title, subtitle and author centered in the panel.
// Text color is chosen by sampling the central band of the background.
func drawFrontPanel(img *image.RGBA, panel image.Rectangle, spec Spec, decorated bool) error {
	w := panel.Dx()

	titleFace, err := loadFace(gobold.TTF, float64(w)/9)
	if err != nil {
		return fmt.Errorf("loading title font: %w", err)
	}
	subtitleFace, err := loadFace(gobold.TTF, float64(w)/14)
	if err != nil {
		return fmt.Errorf("loading subtitle font: %w", err)
	}
	authorFace, err := loadFace(goregular.TTF, float64(w)/18)
	if err != nil {
		return fmt.Errorf("loading author font: %w", err)
	}

	// Sample the band where the title lands, not the whole panel, so the
	// decision is not skewed by a distant gradient extreme.
	band := image.Rect(panel.Min.X, panel.Min.Y+panel.Dy()/3, panel.Max.X, panel.Min.Y+2*panel.Dy()/3)
	textColor := black
	if layout.OptimalTextColor(imageSampler{img}, band) == layout.TextWhite {
		textColor = white
	}

	pad := w / 10
	maxWidth := w - 2*pad

	y := panel.Min.Y + panel.Dy()/3

	// Accent rule above the title on decorated styles.
	if decorated && spec.Style != StyleMinimalist {
		ruleW := w * 3 / 8
		ruleX := panel.Min.X + (w-ruleW)/2
		fillRect(img, image.Rect(ruleX, y-pad/2, ruleX+ruleW, y-pad/2+5), textColor)
	}

	y = drawCenteredLines(img, panel, spec.Title, titleFace, textColor, maxWidth, y)
	if spec.Subtitle != "" {
		y += subtitleFace.Metrics().Height.Ceil() / 2
		drawCenteredLines(img, panel, spec.Subtitle, subtitleFace, textColor, maxWidth, y)
	}

	if spec.Author != "" {
		authorY := panel.Max.Y - panel.Dy()/8
		drawCenteredLines(img, panel, spec.Author, authorFace, textColor, maxWidth, authorY)
	}
	return nil
}

// drawCenteredLines word-wraps text to maxWidth and draws each line centered
// in the panel, starting at startY. Returns the baseline y after the last
// line.
func drawCenteredLines(img *image.RGBA, panel image.Rectangle, text string, face font.Face, c RGB, maxWidth, startY int) int {
	lines := layout.WrapText(text, faceMeasure(face), maxWidth)
	lineHeight := face.Metrics().Height.Ceil() + 8

	y := startY + face.Metrics().Ascent.Ceil()
	for _, line := range lines {
		lineW := font.MeasureString(face, line).Ceil()
		x := panel.Min.X + (panel.Dx()-lineW)/2
		drawString(img, line, face, c, x, y)
		y += lineHeight
	}
	return y
}

// drawSpineText renders "title · author" rotated 90° clockwise, centered in
// the spine text area, so it reads top to bottom on the shelf.
func drawSpineText(img *image.RGBA, dims kdp.CoverDimensions, title, author string) error {
	area := layout.SpineTextArea(dims)
	if area.Empty() {
		return nil
	}

	text := title
	if author != "" {
		text = title + "  ·  " + author
	}

	// Render horizontally into a strip as tall as the spine is wide, then
	// rotate the strip into place.
	stripW, stripH := area.Dy(), area.Dx()
	face, err := loadFace(gobold.TTF, float64(stripH)*0.6)
	if err != nil {
		return fmt.Errorf("loading spine font: %w", err)
	}

	textColor := black
	if layout.OptimalTextColor(imageSampler{img}, area) == layout.TextWhite {
		textColor = white
	}

	strip := image.NewRGBA(image.Rect(0, 0, stripW, stripH))
	textW := font.MeasureString(face, text).Ceil()
	if textW > stripW {
		// Too long for the spine even at this size; drop the author first.
		text = title
		textW = font.MeasureString(face, text).Ceil()
	}
	x := (stripW - textW) / 2
	baseline := (stripH + face.Metrics().Ascent.Ceil() - face.Metrics().Descent.Ceil()) / 2
	drawString(strip, text, face, textColor, x, baseline)

	rotateInto(img, strip, area.Min)
	return nil
}

// rotateInto copies src rotated 90° clockwise onto dst at offset. Only
// pixels the text rasterizer touched are copied.
func rotateInto(dst *image.RGBA, src *image.RGBA, offset image.Point) {
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := src.RGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			dst.SetRGBA(offset.X+(b.Max.Y-1-y), offset.Y+x, c)
		}
	}
}

func drawString(img *image.RGBA, s string, face font.Face, c RGB, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{c.R, c.G, c.B, 255}),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// faceMeasure adapts a font face to the layout package's measure function.
func faceMeasure(face font.Face) layout.MeasureFunc {
	return func(s string) int {
		return font.MeasureString(face, s).Ceil()
	}
}

// loadFace parses an OpenType font at the given pixel size.
func loadFace(ttf []byte, sizePx float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
