// Package convert turns manuscript files into publishable e-book formats by
// driving pandoc. It normalizes text before conversion, injects YAML front
// matter, selects a PDF engine from what is installed, and can apply
// KDP-compliant page margins computed by internal/kdp.
package convert

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/bookpress/bookpress/internal/kdp"
)

// Format is an output format pandoc can produce for us.
type Format string

const (
	FormatEPUB     Format = "epub"
	FormatPDF      Format = "pdf"
	FormatHTML     Format = "html"
	FormatDOCX     Format = "docx"
	FormatMarkdown Format = "md"
)

// Formats lists the supported output formats in a stable order.
var Formats = []Format{FormatEPUB, FormatPDF, FormatHTML, FormatDOCX, FormatMarkdown}

// markdownFlavor enables the extensions manuscripts commonly rely on.
const markdownFlavor = "markdown+definition_lists+fancy_lists+startnum"

// binaryInputs are formats pandoc must read for us before combining.
var binaryInputs = map[string]bool{
	".docx": true,
	".epub": true,
	".odt":  true,
}

// Job describes one conversion.
type Job struct {
	Inputs []string
	Output string

	Title    string
	Subtitle string
	Author   string

	CoverImage string // optional, epub only

	// KDPMargins applies manuscript margins computed from PageCount when
	// producing a PDF through pdflatex. Margins overrides the computed
	// values when non-nil.
	KDPMargins bool
	PageCount  int
	Margins    *kdp.ManuscriptMargins
}

// Converter runs pandoc conversions. The zero value is not usable; call New.
type Converter struct {
	pageNumbering PageNumbering
}

func New(pn PageNumbering) *Converter {
	return &Converter{pageNumbering: pn}
}

// Convert produces job.Output from job.Inputs. The target format comes from
// the output file extension.
func (c *Converter) Convert(ctx context.Context, job Job) error {
	format, err := formatFromPath(job.Output)
	if err != nil {
		return err
	}
	if len(job.Inputs) == 0 {
		return fmt.Errorf("no input files")
	}
	if _, err := exec.LookPath("pandoc"); err != nil {
		return fmt.Errorf("pandoc not found in PATH: %w", err)
	}

	content, err := c.combine(ctx, job.Inputs)
	if err != nil {
		return err
	}
	content = Normalize(content)

	doc := c.frontMatter(job, format) + content

	tmpDir, err := os.MkdirTemp("", "bookpress-convert-")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	srcPath := filepath.Join(tmpDir, "manuscript.md")
	if err := os.WriteFile(srcPath, []byte(doc), 0600); err != nil {
		return fmt.Errorf("writing manuscript: %w", err)
	}

	args, err := c.pandocArgs(job, format, srcPath)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, "pandoc", args...)
	cmd.Dir = tmpDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("pandoc failed: %w\n%s", err, string(output))
	}
	return nil
}

// combine concatenates input files into one markdown document. Binary
// formats go through pandoc first.
func (c *Converter) combine(ctx context.Context, inputs []string) (string, error) {
	var parts []string
	for _, path := range inputs {
		ext := strings.ToLower(filepath.Ext(path))
		if binaryInputs[ext] {
			cmd := exec.CommandContext(ctx, "pandoc", path, "-t", "markdown")
			var out, errBuf bytes.Buffer
			cmd.Stdout = &out
			cmd.Stderr = &errBuf
			if err := cmd.Run(); err != nil {
				return "", fmt.Errorf("reading %s via pandoc: %w\n%s", path, err, errBuf.String())
			}
			parts = append(parts, out.String())
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		parts = append(parts, string(data))
	}
	return strings.Join(parts, "\n\n"), nil
}

// frontMatter builds the YAML metadata block pandoc reads from the top of
// the document.
func (c *Converter) frontMatter(job Job, format Format) string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", job.Title)
	fmt.Fprintf(&b, "author: %q\n", job.Author)
	if job.Subtitle != "" {
		fmt.Fprintf(&b, "subtitle: %q\n", job.Subtitle)
	}
	fmt.Fprintf(&b, "date: %q\n", time.Now().Format("2006-01-02"))
	b.WriteString("toc: true\ntoc-depth: 3\n")

	if format == FormatPDF {
		if header := c.pageNumbering.LatexHeader(); header != "" {
			b.WriteString("header-includes: |\n")
			for _, line := range strings.Split(header, "\n") {
				b.WriteString("  " + line + "\n")
			}
		}
	}

	b.WriteString("---\n\n")
	return b.String()
}

func (c *Converter) pandocArgs(job Job, format Format, srcPath string) ([]string, error) {
	// pandoc runs inside the temp dir, so caller-relative paths must be
	// resolved before they reach the command line.
	outPath, err := filepath.Abs(job.Output)
	if err != nil {
		return nil, fmt.Errorf("resolving output path: %w", err)
	}

	args := []string{
		"-f", markdownFlavor,
		srcPath,
		"-o", outPath,
		"--toc",
		"--toc-depth=3",
	}

	switch format {
	case FormatEPUB:
		if job.CoverImage != "" {
			cover, err := filepath.Abs(job.CoverImage)
			if err != nil {
				return nil, fmt.Errorf("resolving cover image path: %w", err)
			}
			args = append(args, "--epub-cover-image="+cover)
		}
	case FormatPDF:
		engine, ok := AvailablePDFEngine()
		if !ok {
			return nil, fmt.Errorf("no PDF engine available: install one of %s", strings.Join(pdfEngines, ", "))
		}
		args = append(args, "--pdf-engine="+engine)

		// Geometry flags only make sense under a LaTeX engine.
		if engine == "pdflatex" {
			margins, err := c.jobMargins(job)
			if err != nil {
				return nil, err
			}
			if margins != nil {
				args = append(args, "-V", fmt.Sprintf(
					"geometry:top=%gin,bottom=%gin,outer=%gin,inner=%gin",
					margins.Top, margins.Bottom, margins.Outside, margins.Gutter,
				))
			}
		}
	}

	return args, nil
}

func (c *Converter) jobMargins(job Job) (*kdp.ManuscriptMargins, error) {
	if job.Margins != nil {
		return job.Margins, nil
	}
	if !job.KDPMargins {
		return nil, nil
	}
	m, err := kdp.DefaultManuscriptMargins(job.PageCount)
	if err != nil {
		return nil, fmt.Errorf("computing KDP margins: %w", err)
	}
	return &m, nil
}

func formatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch Format(ext) {
	case FormatEPUB, FormatPDF, FormatHTML, FormatDOCX, FormatMarkdown:
		return Format(ext), nil
	case "markdown":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unsupported output format %q (supported: epub, pdf, html, docx, md)", ext)
}
