package watermark

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

func TestConfigDefaults(t *testing.T) {
	got := Config{Text: "DRAFT"}.withDefaults()
	if got.FontSize != DefaultFontSize || got.Opacity != DefaultOpacity || got.Angle != DefaultAngle {
		t.Errorf("withDefaults() = %+v", got)
	}
	if got.Color != defaultColor {
		t.Errorf("default color = %v, want %v", got.Color, defaultColor)
	}

	custom := Config{Text: "DRAFT", FontSize: 30, Opacity: 0.5, Angle: 10, Color: RGB{1, 2, 3}}
	if got := custom.withDefaults(); got != custom {
		t.Errorf("withDefaults() overrode explicit values: %+v", got)
	}
}

func TestSidecarRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.pdf")

	if _, ok, err := ReadSidecar(path); err != nil || ok {
		t.Fatalf("ReadSidecar() before write = ok %v, err %v", ok, err)
	}

	cfg := Config{Text: "REVIEW COPY", Opacity: 0.2}
	if err := WriteSidecar(path, cfg); err != nil {
		t.Fatalf("WriteSidecar() error = %v", err)
	}

	sc, ok, err := ReadSidecar(path)
	if err != nil || !ok {
		t.Fatalf("ReadSidecar() = ok %v, err %v", ok, err)
	}
	if sc.Config.Text != "REVIEW COPY" || sc.Config.Opacity != 0.2 {
		t.Errorf("sidecar config = %+v", sc.Config)
	}
	if sc.Config.FontSize != DefaultFontSize {
		t.Errorf("sidecar should store resolved defaults, got %+v", sc.Config)
	}
	if sc.AppliedAt.IsZero() {
		t.Error("sidecar missing applied_at")
	}
}

func TestApplyHTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.html")
	orig := "<html><body><h1>Chapter 1</h1></body></html>"
	if err := os.WriteFile(path, []byte(orig), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := Config{Text: "DRAFT"}
	if err := ApplyHTML(path, cfg); err != nil {
		t.Fatalf("ApplyHTML() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !IsWatermarkedHTML(content) {
		t.Error("stamped file not detected as watermarked")
	}
	if !strings.Contains(content, "DRAFT") {
		t.Error("watermark text missing from output")
	}
	bodyEnd := strings.Index(content, "</body>")
	if bodyEnd < 0 || strings.Index(content, "DRAFT") > bodyEnd {
		t.Error("overlay not injected before </body>")
	}

	// Second application is a no-op.
	if err := ApplyHTML(path, cfg); err != nil {
		t.Fatalf("ApplyHTML() second pass error = %v", err)
	}
	again, _ := os.ReadFile(path)
	if strings.Count(string(again), htmlMarker) != 1 {
		t.Error("watermark applied twice")
	}
}

func TestApplyHTMLEmptyText(t *testing.T) {
	if err := ApplyHTML("ignored.html", Config{}); err == nil {
		t.Error("ApplyHTML() with empty text should fail")
	}
}

func newTestPDF(t *testing.T, path string, pages int) {
	t.Helper()
	pdf := gofpdf.New("P", "pt", "A4", "")
	for i := 0; i < pages; i++ {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "", 12)
		pdf.Text(72, 72, "page content")
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("creating test pdf: %v", err)
	}
}

func TestApplyPDF(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.pdf")
	out := filepath.Join(dir, "out.pdf")
	newTestPDF(t, in, 3)

	if err := ApplyPDF(in, out, Config{Text: "REVIEW COPY"}); err != nil {
		t.Fatalf("ApplyPDF() error = %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output is empty")
	}

	if _, ok, err := ReadSidecar(out); err != nil || !ok {
		t.Errorf("sidecar after ApplyPDF = ok %v, err %v", ok, err)
	}
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()

	newTestPDF(t, filepath.Join(dir, "a.pdf"), 1)
	htmlPath := filepath.Join(dir, "b.html")
	if err := os.WriteFile(htmlPath, []byte("<body>x</body>"), 0600); err != nil {
		t.Fatal(err)
	}
	// Pre-stamped file should be skipped.
	stamped := filepath.Join(dir, "c.html")
	if err := os.WriteFile(stamped, []byte("<body>y</body>"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := ApplyHTML(stamped, Config{Text: "DRAFT"}); err != nil {
		t.Fatal(err)
	}
	// Unrelated files are ignored entirely.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0600); err != nil {
		t.Fatal(err)
	}

	report, err := Batch(dir, Config{Text: "DRAFT"}, false)
	if err != nil {
		t.Fatalf("Batch() error = %v", err)
	}

	if len(report.Processed) != 2 {
		t.Errorf("processed = %v, want 2 entries", report.Processed)
	}
	if len(report.Skipped) != 1 || report.Skipped[0] != stamped {
		t.Errorf("skipped = %v, want [%s]", report.Skipped, stamped)
	}
	if report.Failed != nil {
		t.Errorf("failed = %v", report.Failed)
	}
}
