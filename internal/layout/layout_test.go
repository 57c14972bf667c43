package layout

import (
	"testing"

	"github.com/bookpress/bookpress/internal/kdp"
)

func paperbackDims(t *testing.T) kdp.CoverDimensions {
	t.Helper()
	dims, err := kdp.CalculateCoverDimensions(6.0, 9.0, 250, kdp.PaperWhite, kdp.BindingPaperback, kdp.WrapBoardOnly, 300)
	if err != nil {
		t.Fatalf("CalculateCoverDimensions() error = %v", err)
	}
	return dims
}

func hardcoverDims(t *testing.T, wrap kdp.HardcoverWrapStyle) kdp.CoverDimensions {
	t.Helper()
	dims, err := kdp.CalculateCoverDimensions(6.0, 9.0, 250, kdp.PaperWhite, kdp.BindingHardcover, wrap, 300)
	if err != nil {
		t.Fatalf("CalculateCoverDimensions() error = %v", err)
	}
	return dims
}

func TestRegionsPaperback(t *testing.T) {
	dims := paperbackDims(t)
	r := Regions(dims)

	if !r.BackFlap.Empty() || !r.FrontFlap.Empty() {
		t.Error("paperback regions should have no flaps")
	}

	// Panels tile left to right with no gaps.
	if r.Back.Max.X != r.Spine.Min.X {
		t.Errorf("back ends at %d, spine starts at %d", r.Back.Max.X, r.Spine.Min.X)
	}
	if r.Spine.Max.X != r.Front.Min.X {
		t.Errorf("spine ends at %d, front starts at %d", r.Spine.Max.X, r.Front.Min.X)
	}

	if got := r.Spine.Dx(); got != dims.SpineWidthPx {
		t.Errorf("spine width = %dpx, want %d", got, dims.SpineWidthPx)
	}
	if got := r.Back.Dx(); got != dims.PanelWidthPx() {
		t.Errorf("back panel width = %dpx, want %d", got, dims.PanelWidthPx())
	}
	if r.Back.Dx() != r.Front.Dx() {
		t.Errorf("panel widths differ: back %d, front %d", r.Back.Dx(), r.Front.Dx())
	}

	for _, panel := range []struct {
		name string
		dy   int
	}{{"back", r.Back.Dy()}, {"spine", r.Spine.Dy()}, {"front", r.Front.Dy()}} {
		if panel.dy != dims.HeightPx {
			t.Errorf("%s height = %dpx, want %d", panel.name, panel.dy, dims.HeightPx)
		}
	}

	// Everything sits inside the canvas with room for bleed on both sides.
	if r.Back.Min.X <= 0 {
		t.Errorf("back panel starts at %d, want left bleed before it", r.Back.Min.X)
	}
	if r.Front.Max.X >= dims.WidthPx {
		t.Errorf("front panel ends at %d, want right bleed after it (canvas %d)", r.Front.Max.X, dims.WidthPx)
	}
}

func TestRegionsDustJacket(t *testing.T) {
	dims := hardcoverDims(t, kdp.WrapDustJacket)
	r := Regions(dims)

	if r.BackFlap.Empty() || r.FrontFlap.Empty() {
		t.Fatal("dust jacket regions should include both flaps")
	}
	if got := r.BackFlap.Dx(); got != dims.FlapWidthPx {
		t.Errorf("back flap width = %dpx, want %d", got, dims.FlapWidthPx)
	}
	if r.BackFlap.Max.X != r.Back.Min.X {
		t.Errorf("back flap ends at %d, back panel starts at %d", r.BackFlap.Max.X, r.Back.Min.X)
	}
	if r.Front.Max.X != r.FrontFlap.Min.X {
		t.Errorf("front panel ends at %d, front flap starts at %d", r.Front.Max.X, r.FrontFlap.Min.X)
	}
}

func TestBarcodeSafeArea(t *testing.T) {
	dims := paperbackDims(t)
	r := Regions(dims)

	barcode := BarcodeSafeArea(dims, FormatPaperback)
	if barcode == nil {
		t.Fatal("BarcodeSafeArea() = nil for paperback")
	}

	if !barcode.In(r.Back) {
		t.Errorf("barcode %v not inside back panel %v", *barcode, r.Back)
	}
	if barcode.Overlaps(r.Spine) {
		t.Errorf("barcode %v overlaps spine %v", *barcode, r.Spine)
	}

	// 2.0in × 1.2in at 300 DPI.
	if barcode.Dx() != 600 || barcode.Dy() != 360 {
		t.Errorf("barcode size = %dx%dpx, want 600x360", barcode.Dx(), barcode.Dy())
	}
}

func TestBarcodeSafeAreaHardcoverClearance(t *testing.T) {
	pb := BarcodeSafeArea(paperbackDims(t), FormatPaperback)
	hc := BarcodeSafeArea(hardcoverDims(t, kdp.WrapBoardOnly), FormatHardcover)
	if pb == nil || hc == nil {
		t.Fatal("BarcodeSafeArea() = nil for a print format")
	}

	hcDims := hardcoverDims(t, kdp.WrapBoardOnly)
	hcBottomGap := hcDims.HeightPx - hc.Max.Y
	pbDims := paperbackDims(t)
	pbBottomGap := pbDims.HeightPx - pb.Max.Y
	if hcBottomGap <= pbBottomGap {
		t.Errorf("hardcover bottom gap = %dpx, want more than paperback's %dpx", hcBottomGap, pbBottomGap)
	}
}

func TestBarcodeSafeAreaEbook(t *testing.T) {
	if got := BarcodeSafeArea(paperbackDims(t), FormatEbook); got != nil {
		t.Errorf("BarcodeSafeArea() = %v for ebook, want nil", *got)
	}
}

func TestSpineTextEligible(t *testing.T) {
	tests := []struct {
		pageCount int
		want      bool
	}{
		{24, false},
		{78, false},
		{79, true},
		{80, true},
		{828, true},
	}
	for _, tt := range tests {
		if got := SpineTextEligible(tt.pageCount); got != tt.want {
			t.Errorf("SpineTextEligible(%d) = %v, want %v", tt.pageCount, got, tt.want)
		}
	}
}

func TestSpineTextArea(t *testing.T) {
	dims := paperbackDims(t)
	spine := Regions(dims).Spine
	area := SpineTextArea(dims)

	if !area.In(spine) {
		t.Fatalf("spine text area %v not inside spine %v", area, spine)
	}
	if area.Min.Y <= 0 || area.Max.Y >= dims.HeightPx {
		t.Errorf("spine text area %v touches the canvas edge", area)
	}
	// Clearance is symmetric top and bottom.
	if top, bottom := area.Min.Y, dims.HeightPx-area.Max.Y; top != bottom {
		t.Errorf("spine text clearance asymmetric: top %d, bottom %d", top, bottom)
	}
}
