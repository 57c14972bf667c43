package kdp

import "math"

// HardcoverWrapStyle selects between the two hardcover cover conventions.
// KDP documents both a board-only case (each panel slightly larger than the
// trim) and a full dust jacket (much wider panels plus tuck-in flaps); the
// two are not interchangeable, so callers must pick one explicitly.
type HardcoverWrapStyle string

const (
	// WrapBoardOnly extends each panel and the height by the board
	// thickness. No flaps. This is the default.
	WrapBoardOnly HardcoverWrapStyle = "board_only"

	// WrapDustJacket extends each panel and the height by the case-wrap
	// allowance and adds two flaps to the total width.
	WrapDustJacket HardcoverWrapStyle = "dust_jacket"
)

// CoverDimensions describes a full cover wrap in inches and pixels.
// Values are computed once and never mutated; the four raw inputs are echoed
// for traceability.
type CoverDimensions struct {
	WidthInches  float64
	HeightInches float64
	WidthPx      int
	HeightPx     int

	SpineWidthInches float64
	SpineWidthPx     int

	// FlapWidthInches is zero unless the dust-jacket wrap style applies.
	FlapWidthInches float64
	FlapWidthPx     int

	BleedInches float64
	DPI         int

	// Echoed inputs.
	TrimWidth  float64
	TrimHeight float64
	PageCount  int
	Paper      PaperType
	Binding    BindingType
	WrapStyle  HardcoverWrapStyle
}

// pixels converts inches to pixels at the given DPI, rounding half away
// from zero. One policy everywhere: KDP tolerances are thousandths of an
// inch, and truncation would silently lose up to a full pixel.
func pixels(inches float64, dpi int) int {
	return int(math.Round(inches * float64(dpi)))
}

// CalculateCoverDimensions computes the full wrap for a print cover:
// back panel + spine + front panel, plus bleed on every edge, plus the
// hardcover case or jacket extension when applicable.
//
//	width  = 2×panel + spine + 2×bleed (+ 2×flap for dust jackets)
//	height = panel height + 2×bleed
//
// Inches→pixels uses round-half-away-from-zero at the given DPI.
func CalculateCoverDimensions(
	trimWidth, trimHeight float64,
	pageCount int,
	paper PaperType,
	binding BindingType,
	wrap HardcoverWrapStyle,
	dpi int,
) (CoverDimensions, error) {
	if trimWidth <= 0 {
		return CoverDimensions{}, &RangeError{Field: "trim width", Value: trimWidth, Min: 0, Max: math.Inf(1)}
	}
	if trimHeight <= 0 {
		return CoverDimensions{}, &RangeError{Field: "trim height", Value: trimHeight, Min: 0, Max: math.Inf(1)}
	}
	if dpi <= 0 {
		return CoverDimensions{}, &RangeError{Field: "dpi", Value: float64(dpi), Min: 1, Max: math.Inf(1)}
	}

	spine, err := CalculateSpineWidth(pageCount, paper, binding)
	if err != nil {
		return CoverDimensions{}, err
	}

	panelW := trimWidth
	panelH := trimHeight
	flap := 0.0
	if binding == BindingHardcover {
		switch wrap {
		case WrapDustJacket:
			panelW += CaseWrapAllowance
			panelH += CaseWrapAllowance
			flap = FlapWidth
		case WrapBoardOnly, "":
			panelW += BoardThickness
			panelH += BoardThickness
		default:
			return CoverDimensions{}, &UnknownEnumError{
				Field: "hardcover wrap style",
				Value: string(wrap),
				Valid: []string{string(WrapBoardOnly), string(WrapDustJacket)},
			}
		}
	}

	coverW := 2*panelW + spine + 2*BleedSize + 2*flap
	coverH := panelH + 2*BleedSize

	return CoverDimensions{
		WidthInches:      coverW,
		HeightInches:     coverH,
		WidthPx:          pixels(coverW, dpi),
		HeightPx:         pixels(coverH, dpi),
		SpineWidthInches: spine,
		SpineWidthPx:     pixels(spine, dpi),
		FlapWidthInches:  flap,
		FlapWidthPx:      pixels(flap, dpi),
		BleedInches:      BleedSize,
		DPI:              dpi,
		TrimWidth:        trimWidth,
		TrimHeight:       trimHeight,
		PageCount:        pageCount,
		Paper:            paper,
		Binding:          binding,
		WrapStyle:        wrap,
	}, nil
}

// PanelWidthInches returns the width of a single front or back panel,
// including any hardcover extension but excluding bleed and flaps.
func (d CoverDimensions) PanelWidthInches() float64 {
	return (d.WidthInches - d.SpineWidthInches - 2*BleedSize - 2*d.FlapWidthInches) / 2
}

// PanelWidthPx returns the panel width in pixels at the cover's DPI.
func (d CoverDimensions) PanelWidthPx() int {
	return pixels(d.PanelWidthInches(), d.DPI)
}
