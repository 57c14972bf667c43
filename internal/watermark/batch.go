package watermark

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// Report summarizes a batch run.
type Report struct {
	Processed []string          `json:"processed"`
	Skipped   []string          `json:"skipped"`
	Failed    map[string]string `json:"failed,omitempty"`
}

// Batch stamps every PDF and HTML file under dir. Files with an existing
// sidecar (or HTML marker) are skipped; individual failures do not stop the
// run. Set showProgress for interactive use.
func Batch(dir string, cfg Config, showProgress bool) (Report, error) {
	var targets []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".pdf", ".html", ".htm":
			targets = append(targets, path)
		}
		return nil
	})
	if err != nil {
		return Report{}, fmt.Errorf("scanning %s: %w", dir, err)
	}

	report := Report{Failed: map[string]string{}}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.Default(int64(len(targets)), "watermarking")
	}

	for _, path := range targets {
		if bar != nil {
			_ = bar.Add(1)
		}

		if _, stamped, err := ReadSidecar(path); err != nil {
			report.Failed[path] = err.Error()
			continue
		} else if stamped {
			report.Skipped = append(report.Skipped, path)
			continue
		}

		var applyErr error
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			applyErr = ApplyPDF(path, path, cfg)
		} else {
			applyErr = ApplyHTML(path, cfg)
		}
		if applyErr != nil {
			report.Failed[path] = applyErr.Error()
			continue
		}
		report.Processed = append(report.Processed, path)
	}

	if len(report.Failed) == 0 {
		report.Failed = nil
	}
	return report, nil
}
