package kdp

import (
	"fmt"
	"math"
)

// trimTolerance is the floating-point-safe equality window for matching a
// requested trim size against the catalog.
const trimTolerance = 0.01 // inches

// ValidateTrimSize reports whether the given dimensions match a standard KDP
// trim size, and if so which one. Unlike the calculators this is an advisory
// query: it never returns an error.
func ValidateTrimSize(width, height float64) (bool, string) {
	for _, ts := range trimSizes {
		if math.Abs(ts.Width-width) < trimTolerance && math.Abs(ts.Height-height) < trimTolerance {
			return true, ts.Name
		}
	}
	return false, ""
}

// ValidatePageCount reports whether a page count meets the KDP print
// requirements. Checks run in order and the first failure wins:
// minimum, maximum, then even parity (books are printed in signatures).
// Returns (true, "") when all checks pass.
func ValidatePageCount(pageCount int) (bool, string) {
	if pageCount < MinPageCount {
		return false, fmt.Sprintf("page count too low: minimum is %d pages", MinPageCount)
	}
	if pageCount > MaxPageCount {
		return false, fmt.Sprintf("page count too high: maximum is %d pages", MaxPageCount)
	}
	if pageCount%2 != 0 {
		return false, "page count must be even (books are printed in signatures)"
	}
	return true, ""
}
