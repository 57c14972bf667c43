// Package kdp implements Amazon KDP print-file calculations: spine width,
// gutter margins, full cover-wrap dimensions and trim/page-count validation.
//
// The formulas and tables reproduce the official KDP Print File Setup
// Calculator. All functions are pure; the tables in this file are read-only.
package kdp

// Spine thickness per page in inches, by paper type.
// Source: https://kdp.amazon.com/en_US/help/topic/G201834180
const (
	thicknessWhite         = 0.002252
	thicknessCream         = 0.0025
	thicknessPremiumColor  = 0.002347
	thicknessStandardColor = 0.002252
)

// Bleed extends past the trim edge on every side of a print cover.
const BleedSize = 0.125 // inches (3.175mm)

// Page count limits for KDP print books.
const (
	MinPageCount = 24
	MaxPageCount = 828
)

// DPI requirements.
const (
	EbookDPI = 72  // minimum for ebook covers (300 recommended)
	PrintDPI = 300 // required for print covers
)

// Hardcover geometry.
const (
	// BoardThickness is added to the spine and, in the board-only wrap
	// style, to each panel of a hardcover case.
	BoardThickness = 0.25 // inches

	// CaseWrapAllowance is the per-panel extension of a full dust jacket.
	CaseWrapAllowance = 1.5 // inches

	// FlapWidth is the width of each dust-jacket flap.
	FlapWidth = 3.5 // inches
)

// PaperType identifies a KDP interior paper stock.
type PaperType string

const (
	PaperWhite         PaperType = "white"
	PaperCream         PaperType = "cream"
	PaperColor         PaperType = "color"
	PaperStandardColor PaperType = "standard_color"
)

// PaperTypes lists all valid paper types in a stable order.
var PaperTypes = []PaperType{PaperWhite, PaperCream, PaperColor, PaperStandardColor}

// spineThickness maps a paper type to its per-page thickness.
var spineThickness = map[PaperType]float64{
	PaperWhite:         thicknessWhite,
	PaperCream:         thicknessCream,
	PaperColor:         thicknessPremiumColor,
	PaperStandardColor: thicknessStandardColor,
}

// BindingType identifies the physical binding of a print book.
type BindingType string

const (
	BindingPaperback BindingType = "paperback"
	BindingHardcover BindingType = "hardcover"
)

// BindingTypes lists all valid binding types in a stable order.
var BindingTypes = []BindingType{BindingPaperback, BindingHardcover}

// InteriorType distinguishes black-and-white from color interiors.
type InteriorType string

const (
	InteriorBW    InteriorType = "bw"
	InteriorColor InteriorType = "color"
)

// TrimSize is a named standard KDP page size. Catalog entries are immutable.
type TrimSize struct {
	Name     string
	Width    float64 // inches
	Height   float64 // inches
	Interior InteriorType
	MaxPages int
}

// trimSizes is the standard KDP trim-size catalog, in catalog order.
// Source: https://kdp.amazon.com/en_US/help/topic/GVBQ3CMEQW3W2VL6#trimsize
var trimSizes = []TrimSize{
	// Black & white interior
	{"5x8", 5.0, 8.0, InteriorBW, 828},
	{"5.06x7.81", 5.06, 7.81, InteriorBW, 828},
	{"5.25x8", 5.25, 8.0, InteriorBW, 828},
	{"5.5x8.5", 5.5, 8.5, InteriorBW, 828},
	{"6x9", 6.0, 9.0, InteriorBW, 828},
	{"6.14x9.21", 6.14, 9.21, InteriorBW, 828},
	{"6.69x9.61", 6.69, 9.61, InteriorBW, 828},
	{"7x10", 7.0, 10.0, InteriorBW, 828},
	{"7.44x9.69", 7.44, 9.69, InteriorBW, 828},
	{"7.5x9.25", 7.5, 9.25, InteriorBW, 828},
	{"8x10", 8.0, 10.0, InteriorBW, 828},
	{"8.25x6", 8.25, 6.0, InteriorBW, 828},
	{"8.25x8.25", 8.25, 8.25, InteriorBW, 828},
	{"8.5x11", 8.5, 11.0, InteriorBW, 828},

	// Color interior
	{"6x9_color", 6.0, 9.0, InteriorColor, 828},
	{"7x10_color", 7.0, 10.0, InteriorColor, 828},
	{"8x10_color", 8.0, 10.0, InteriorColor, 828},
	{"8.5x11_color", 8.5, 11.0, InteriorColor, 828},
}

// gutterBreakpoint maps an inclusive page-count range to a gutter margin.
type gutterBreakpoint struct {
	MinPages int
	MaxPages int
	Gutter   float64 // inches
}

// gutterMargins holds the KDP perfect-binding gutter recommendations.
// The ranges are contiguous and cover [MinPageCount, MaxPageCount] exactly.
var gutterMargins = []gutterBreakpoint{
	{24, 150, 0.375},
	{151, 300, 0.5},
	{301, 500, 0.625},
	{501, 700, 0.75},
	{701, 828, 0.875},
}

// TrimSizes returns the standard catalog, optionally filtered by interior
// type. The returned slice is a copy; the catalog itself is never mutated.
func TrimSizes(interior InteriorType) []TrimSize {
	out := make([]TrimSize, 0, len(trimSizes))
	for _, ts := range trimSizes {
		if interior == "" || ts.Interior == interior {
			out = append(out, ts)
		}
	}
	return out
}

// TrimSizeByName looks up a catalog entry by its name.
func TrimSizeByName(name string) (TrimSize, bool) {
	for _, ts := range trimSizes {
		if ts.Name == name {
			return ts, true
		}
	}
	return TrimSize{}, false
}
