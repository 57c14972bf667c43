package cover

import (
	"image"
	"testing"

	"github.com/bookpress/bookpress/internal/kdp"
	"github.com/bookpress/bookpress/internal/layout"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#667eea", RGB{0x66, 0x7e, 0xea}, false},
		{"764ba2", RGB{0x76, 0x4b, 0xa2}, false},
		{"#FFFFFF", RGB{255, 255, 255}, false},
		{" #000000 ", RGB{0, 0, 0}, false},
		{"", RGB{}, true},
		{"#fff", RGB{}, true},
		{"#zzxxyy", RGB{}, true},
		{"#1234567", RGB{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := RGB{0x12, 0xab, 0xef}
	back, err := ParseHex(c.Hex())
	if err != nil {
		t.Fatalf("ParseHex(%q) error = %v", c.Hex(), err)
	}
	if back != c {
		t.Errorf("round trip = %v, want %v", back, c)
	}
}

func TestSchemes(t *testing.T) {
	for _, s := range Schemes {
		if _, err := ParseHex(s.Primary); err != nil {
			t.Errorf("scheme %s primary: %v", s.Name, err)
		}
		if _, err := ParseHex(s.Secondary); err != nil {
			t.Errorf("scheme %s secondary: %v", s.Name, err)
		}
	}

	if s, ok := SchemeByName("OCEAN"); !ok || s.Name != "ocean" {
		t.Errorf("SchemeByName(\"OCEAN\") = %v, %v", s, ok)
	}
	if _, ok := SchemeByName("plaid"); ok {
		t.Error("SchemeByName(\"plaid\") should not match")
	}
}

func TestImageSampler(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	fillRect(img, img.Bounds(), RGB{200, 100, 50})

	r, g, b := imageSampler{img}.AverageColor(image.Rect(2, 2, 8, 8))
	if r != 200 || g != 100 || b != 50 {
		t.Errorf("AverageColor() = %d,%d,%d, want 200,100,50", r, g, b)
	}

	// Regions outside the image clip instead of panicking.
	if r, g, b := (imageSampler{img}).AverageColor(image.Rect(100, 100, 200, 200)); r != 0 || g != 0 || b != 0 {
		t.Errorf("out-of-bounds AverageColor() = %d,%d,%d, want zeros", r, g, b)
	}
}

func ebookSpec(style Style) Spec {
	return Spec{
		Title:     "The Silent Harbor",
		Subtitle:  "A Novel",
		Author:    "J. R. Whitfield",
		Format:    layout.FormatEbook,
		Style:     style,
		Primary:   "#667eea",
		Secondary: "#764ba2",
	}
}

func paperbackSpec() Spec {
	s := ebookSpec(StyleGradient)
	s.Format = layout.FormatPaperback
	s.TrimWidth = 6.0
	s.TrimHeight = 9.0
	s.PageCount = 250
	s.Paper = kdp.PaperWhite
	s.Binding = kdp.BindingPaperback
	s.WrapStyle = kdp.WrapBoardOnly
	s.DPI = 300
	return s
}

func TestGenerateEbook(t *testing.T) {
	img, err := GenerateEbook(ebookSpec(StyleGradient))
	if err != nil {
		t.Fatalf("GenerateEbook() error = %v", err)
	}
	if img.Bounds().Dx() != EbookWidth || img.Bounds().Dy() != EbookHeight {
		t.Errorf("ebook cover = %dx%d, want %dx%d",
			img.Bounds().Dx(), img.Bounds().Dy(), EbookWidth, EbookHeight)
	}

	// Gradient starts at the primary color.
	if c := img.RGBAAt(0, 0); c.R != 0x66 || c.G != 0x7e || c.B != 0xea {
		t.Errorf("top-left pixel = %v, want primary #667eea", c)
	}
}

func TestGenerateEbookMinimalist(t *testing.T) {
	img, err := GenerateEbook(ebookSpec(StyleMinimalist))
	if err != nil {
		t.Fatalf("GenerateEbook() error = %v", err)
	}
	if c := img.RGBAAt(0, 0); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("minimalist background = %v, want white", c)
	}
}

func TestGenerateEbookBadColor(t *testing.T) {
	spec := ebookSpec(StyleSolid)
	spec.Primary = "teal"
	if _, err := GenerateEbook(spec); err == nil {
		t.Error("GenerateEbook() with invalid color should fail")
	}
}

func TestGeneratePrint(t *testing.T) {
	img, dims, err := GeneratePrint(paperbackSpec())
	if err != nil {
		t.Fatalf("GeneratePrint() error = %v", err)
	}

	if img.Bounds().Dx() != dims.WidthPx || img.Bounds().Dy() != dims.HeightPx {
		t.Errorf("print cover = %dx%d, want %dx%d",
			img.Bounds().Dx(), img.Bounds().Dy(), dims.WidthPx, dims.HeightPx)
	}

	// Spine band uses the secondary color, clear of the text area.
	spine := layout.Regions(dims).Spine
	if c := img.RGBAAt(spine.Min.X, 0); c.R != 0x76 || c.G != 0x4b || c.B != 0xa2 {
		t.Errorf("spine pixel = %v, want secondary #764ba2", c)
	}

	// Barcode safe area is cleared to white.
	safe := layout.BarcodeSafeArea(dims, layout.FormatPaperback)
	if safe == nil {
		t.Fatal("BarcodeSafeArea() = nil for paperback")
	}
	center := image.Pt((safe.Min.X+safe.Max.X)/2, (safe.Min.Y+safe.Max.Y)/2)
	if c := img.RGBAAt(center.X, center.Y); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("barcode area pixel = %v, want white", c)
	}
}

func TestConvertToEbook(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 640))
	fillRect(src, src.Bounds(), RGB{10, 20, 30})

	dst := ConvertToEbook(src)
	if dst.Bounds().Dx() != EbookWidth || dst.Bounds().Dy() != EbookHeight {
		t.Errorf("converted cover = %dx%d, want %dx%d",
			dst.Bounds().Dx(), dst.Bounds().Dy(), EbookWidth, EbookHeight)
	}
}

func TestConvertToPrint(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1800, 2700))
	fillRect(src, src.Bounds(), RGB{40, 40, 40})

	img, dims, err := ConvertToPrint(src, paperbackSpec())
	if err != nil {
		t.Fatalf("ConvertToPrint() error = %v", err)
	}
	if img.Bounds().Dx() != dims.WidthPx {
		t.Errorf("wrap width = %dpx, want %d", img.Bounds().Dx(), dims.WidthPx)
	}

	safe := layout.BarcodeSafeArea(dims, layout.FormatPaperback)
	center := image.Pt((safe.Min.X+safe.Max.X)/2, (safe.Min.Y+safe.Max.Y)/2)
	if c := img.RGBAAt(center.X, center.Y); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("barcode area pixel = %v, want white", c)
	}
}
