package kdp

import "math"

// CalculateSpineWidth returns the spine width in inches for a book with the
// given page count, paper stock and binding. Hardcover boards add a fixed
// thickness on top of the paper stack.
//
// The result keeps full float precision for downstream pixel math; use
// Round3 for user-facing strings.
func CalculateSpineWidth(pageCount int, paper PaperType, binding BindingType) (float64, error) {
	if pageCount < MinPageCount || pageCount > MaxPageCount {
		return 0, pageCountError(pageCount)
	}

	thickness, ok := spineThickness[paper]
	if !ok {
		return 0, paperTypeError(paper)
	}
	if binding != BindingPaperback && binding != BindingHardcover {
		return 0, bindingTypeError(binding)
	}

	spine := float64(pageCount) * thickness
	if binding == BindingHardcover {
		spine += BoardThickness
	}
	return spine, nil
}

// CalculateGutterMargin returns the recommended gutter margin in inches for
// perfect binding at the given page count.
func CalculateGutterMargin(pageCount int) (float64, error) {
	if pageCount < MinPageCount || pageCount > MaxPageCount {
		return 0, pageCountError(pageCount)
	}

	for _, bp := range gutterMargins {
		if pageCount >= bp.MinPages && pageCount <= bp.MaxPages {
			return bp.Gutter, nil
		}
	}

	// Unreachable: the breakpoint table covers [MinPageCount, MaxPageCount].
	return gutterMargins[len(gutterMargins)-1].Gutter, nil
}

// ManuscriptMargins aggregates the interior page margins for a manuscript.
type ManuscriptMargins struct {
	Top     float64
	Bottom  float64
	Outside float64
	Gutter  float64
	Bleed   float64
}

// DefaultMargin is the KDP-recommended top/bottom/outside margin.
const DefaultMargin = 0.75 // inches

// CalculateManuscriptMargins returns KDP-compliant manuscript margins.
// A customGutter override takes precedence over the page-count table;
// pass a negative customGutter to use the computed value.
func CalculateManuscriptMargins(pageCount int, top, bottom, outside, customGutter float64) (ManuscriptMargins, error) {
	gutter := customGutter
	if customGutter < 0 {
		g, err := CalculateGutterMargin(pageCount)
		if err != nil {
			return ManuscriptMargins{}, err
		}
		gutter = g
	}

	return ManuscriptMargins{
		Top:     top,
		Bottom:  bottom,
		Outside: outside,
		Gutter:  gutter,
		Bleed:   BleedSize,
	}, nil
}

// DefaultManuscriptMargins returns the margins with all defaults applied.
func DefaultManuscriptMargins(pageCount int) (ManuscriptMargins, error) {
	return CalculateManuscriptMargins(pageCount, DefaultMargin, DefaultMargin, DefaultMargin, -1)
}

// Round3 rounds a dimension in inches to three decimals for display.
func Round3(inches float64) float64 {
	return math.Round(inches*1000) / 1000
}
