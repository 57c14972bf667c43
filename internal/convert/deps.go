package convert

import "os/exec"

// pdfEngines in preference order; the first one installed wins.
var pdfEngines = []string{"wkhtmltopdf", "pdflatex", "weasyprint"}

// Dependency reports whether an external tool the pipeline can use is
// installed.
type Dependency struct {
	Name     string `json:"name"`
	Purpose  string `json:"purpose"`
	Required bool   `json:"required"`
	Found    bool   `json:"found"`
	Path     string `json:"path,omitempty"`
}

// CheckDependencies probes PATH for every external tool the conversion
// pipeline knows about. Pandoc is the only hard requirement; at least one
// PDF engine is needed for PDF output.
func CheckDependencies() []Dependency {
	deps := []Dependency{
		{Name: "pandoc", Purpose: "document conversion", Required: true},
		{Name: "wkhtmltopdf", Purpose: "PDF engine (HTML based)"},
		{Name: "pdflatex", Purpose: "PDF engine (LaTeX, supports KDP margins)"},
		{Name: "weasyprint", Purpose: "PDF engine (CSS based)"},
	}
	for i := range deps {
		if path, err := exec.LookPath(deps[i].Name); err == nil {
			deps[i].Found = true
			deps[i].Path = path
		}
	}
	return deps
}

// AvailablePDFEngine returns the first installed PDF engine.
func AvailablePDFEngine() (string, bool) {
	for _, engine := range pdfEngines {
		if _, err := exec.LookPath(engine); err == nil {
			return engine, true
		}
	}
	return "", false
}
