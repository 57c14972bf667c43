package watermark

import (
	"fmt"
	"os"
	"strings"
)

// htmlMarker identifies files this package already stamped.
const htmlMarker = "<!-- bookpress-watermark -->"

// IsWatermarkedHTML reports whether the HTML content already carries a stamp.
func IsWatermarkedHTML(content string) bool {
	return strings.Contains(content, htmlMarker)
}

// htmlOverlay renders the fixed-position overlay injected before </body>.
func htmlOverlay(cfg Config) string {
	return fmt.Sprintf(`%s
<div style="position: fixed; top: 50%%; left: 50%%;
    transform: translate(-50%%, -50%%) rotate(-%gdeg);
    font-size: %gpx; font-weight: bold;
    color: rgb(%d, %d, %d); opacity: %g;
    pointer-events: none; z-index: 9999; white-space: nowrap;">%s</div>
`, htmlMarker, cfg.Angle, cfg.FontSize, cfg.Color.R, cfg.Color.G, cfg.Color.B, cfg.Opacity, cfg.Text)
}

// ApplyHTML injects the watermark overlay into an HTML file in place.
// Already-stamped files are left untouched.
func ApplyHTML(path string, cfg Config) error {
	cfg = cfg.withDefaults()
	if cfg.Text == "" {
		return fmt.Errorf("watermark text is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(data)
	if IsWatermarkedHTML(content) {
		return nil
	}

	overlay := htmlOverlay(cfg)
	if idx := strings.LastIndex(strings.ToLower(content), "</body>"); idx >= 0 {
		content = content[:idx] + overlay + content[idx:]
	} else {
		content += overlay
	}

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return WriteSidecar(path, cfg)
}
