package convert

import (
	"fmt"
	"strings"
)

// PageNumbering controls page numbers in PDF output, rendered through a
// fancyhdr header include. Other formats carry their own numbering.
type PageNumbering struct {
	Enabled  bool
	Position Position

	// Custom header/footer text per slot. When any footer text is set it
	// replaces the plain page number.
	HeaderLeft   string
	HeaderCenter string
	HeaderRight  string
	FooterLeft   string
	FooterCenter string
	FooterRight  string
}

// Position places the page number.
type Position string

const (
	FooterCenter Position = "footer-center"
	FooterLeft   Position = "footer-left"
	FooterRight  Position = "footer-right"
	HeaderCenter Position = "header-center"
	HeaderLeft   Position = "header-left"
	HeaderRight  Position = "header-right"
)

// DefaultPageNumbering numbers pages in the footer center.
func DefaultPageNumbering() PageNumbering {
	return PageNumbering{
		Enabled:  true,
		Position: FooterCenter,
	}
}

// latexSlot maps a position to the fancyhdr slot letter.
func latexSlot(p Position) (cmd, slot string, ok bool) {
	parts := strings.SplitN(string(p), "-", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	switch parts[0] {
	case "header":
		cmd = `\fancyhead`
	case "footer":
		cmd = `\fancyfoot`
	default:
		return "", "", false
	}
	switch parts[1] {
	case "left":
		slot = "L"
	case "center":
		slot = "C"
	case "right":
		slot = "R"
	default:
		return "", "", false
	}
	return cmd, slot, true
}

// LatexHeader renders the fancyhdr preamble for pandoc's header-includes.
// Returns "" when numbering is disabled.
func (p PageNumbering) LatexHeader() string {
	if !p.Enabled {
		return ""
	}

	lines := []string{
		`\usepackage{fancyhdr}`,
		`\pagestyle{fancy}`,
		`\fancyhf{}`,
	}

	custom := map[Position]string{
		HeaderLeft:   p.HeaderLeft,
		HeaderCenter: p.HeaderCenter,
		HeaderRight:  p.HeaderRight,
		FooterLeft:   p.FooterLeft,
		FooterCenter: p.FooterCenter,
		FooterRight:  p.FooterRight,
	}
	hasCustom := false
	for _, pos := range []Position{HeaderLeft, HeaderCenter, HeaderRight, FooterLeft, FooterCenter, FooterRight} {
		text := custom[pos]
		if text == "" {
			continue
		}
		if cmd, slot, ok := latexSlot(pos); ok {
			lines = append(lines, fmt.Sprintf(`%s[%s]{%s}`, cmd, slot, text))
			hasCustom = true
		}
	}

	if !hasCustom {
		cmd, slot, ok := latexSlot(p.Position)
		if !ok {
			cmd, slot = `\fancyfoot`, "C"
		}
		lines = append(lines, fmt.Sprintf(`%s[%s]{\thepage}`, cmd, slot))
	}

	lines = append(lines,
		`\renewcommand{\headrulewidth}{0.4pt}`,
		`\renewcommand{\footrulewidth}{0pt}`,
	)
	return strings.Join(lines, "\n")
}
