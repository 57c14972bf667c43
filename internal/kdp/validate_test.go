package kdp

import "testing"

func TestValidateTrimSize(t *testing.T) {
	tests := []struct {
		name     string
		width    float64
		height   float64
		wantOK   bool
		wantName string
	}{
		{"exact 6x9", 6.0, 9.0, true, "6x9"},
		{"exact 8.5x11", 8.5, 11.0, true, "8.5x11"},
		{"exact 5.06x7.81", 5.06, 7.81, true, "5.06x7.81"},
		{"within tolerance", 6.005, 8.995, true, "6x9"},
		{"outside tolerance", 6.02, 9.0, false, ""},
		{"non-standard", 5.5, 7.0, false, ""},
		{"rotated", 9.0, 6.0, false, ""},
		{"zero", 0, 0, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, name := ValidateTrimSize(tt.width, tt.height)
			if ok != tt.wantOK || name != tt.wantName {
				t.Errorf("ValidateTrimSize(%v, %v) = (%v, %q), want (%v, %q)",
					tt.width, tt.height, ok, name, tt.wantOK, tt.wantName)
			}
		})
	}
}

func TestValidatePageCount(t *testing.T) {
	tests := []struct {
		name      string
		pageCount int
		wantOK    bool
		wantMsg   string
	}{
		{"typical", 250, true, ""},
		{"minimum", 24, true, ""},
		{"maximum", 828, true, ""},
		{"too low", 20, false, "page count too low: minimum is 24 pages"},
		{"too high", 900, false, "page count too high: maximum is 828 pages"},
		{"odd", 251, false, "page count must be even (books are printed in signatures)"},
		// Order matters: an odd count below the minimum reports the
		// minimum failure, not the parity one.
		{"odd and too low", 23, false, "page count too low: minimum is 24 pages"},
		{"odd and too high", 829, false, "page count too high: maximum is 828 pages"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := ValidatePageCount(tt.pageCount)
			if ok != tt.wantOK || msg != tt.wantMsg {
				t.Errorf("ValidatePageCount(%d) = (%v, %q), want (%v, %q)",
					tt.pageCount, ok, msg, tt.wantOK, tt.wantMsg)
			}
		})
	}
}

func TestTrimSizesFilter(t *testing.T) {
	all := TrimSizes("")
	if len(all) != 18 {
		t.Fatalf("TrimSizes(\"\") returned %d entries, want 18", len(all))
	}
	bw := TrimSizes(InteriorBW)
	color := TrimSizes(InteriorColor)
	if len(bw) != 14 || len(color) != 4 {
		t.Errorf("filtered catalog sizes = %d bw, %d color, want 14 and 4", len(bw), len(color))
	}
	for _, ts := range color {
		if ts.Interior != InteriorColor {
			t.Errorf("color filter returned %q with interior %q", ts.Name, ts.Interior)
		}
	}

	// Callers get a copy, not the catalog itself.
	all[0].Name = "mutated"
	if again := TrimSizes(""); again[0].Name != "5x8" {
		t.Error("TrimSizes exposes internal catalog state")
	}
}

func TestTrimSizeByName(t *testing.T) {
	ts, ok := TrimSizeByName("6x9_color")
	if !ok {
		t.Fatal("TrimSizeByName(\"6x9_color\") not found")
	}
	if ts.Width != 6.0 || ts.Height != 9.0 || ts.Interior != InteriorColor {
		t.Errorf("TrimSizeByName(\"6x9_color\") = %+v", ts)
	}
	if _, ok := TrimSizeByName("4x6"); ok {
		t.Error("TrimSizeByName(\"4x6\") should not be found")
	}
}
