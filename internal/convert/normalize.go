package convert

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// replacements maps characters that break downstream converters to safe
// ASCII equivalents. Applied before NFKD decomposition.
var replacements = strings.NewReplacer(
	// Non-breaking spaces
	" ", " ",
	" ", " ",
	" ", " ",
	"⁠", "",

	// Dashes and hyphens
	"–", "--",
	"—", "---",
	"―", "---",
	"−", "-",

	// Quotation marks
	"‘", "'",
	"’", "'",
	"‚", "'",
	"‛", "'",
	"“", `"`,
	"”", `"`,
	"„", `"`,
	"‟", `"`,
	"′", "'",
	"″", `"`,

	// Ellipsis and bullets
	"…", "...",
	"•", "-",
	"‣", ">",
	"⁃", "-",

	// Whitespace
	" ", "\n",
	" ", "\n\n",
	"\t", "    ",

	// Soft hyphen and BOM
	"­", "",
	"\ufeff", "",

	// Symbols that trip LaTeX encodings
	"°", " degrees",
	"©", "(c)",
	"®", "(R)",
	"×", "x",
	"÷", "/",
	"≈", "~",
	"≠", "!=",
	"≤", "<=",
	"≥", ">=",
)

var (
	trailingWS  = regexp.MustCompile(`[ \t]+\n`)
	manyBlanks  = regexp.MustCompile(`\n{4,}`)
	orphanPunct = regexp.MustCompile(`[ \t]+([.,;:!?])`)
)

// Normalize rewrites manuscript text so pandoc and the PDF engines behind it
// never see characters they mangle: typographic punctuation becomes ASCII,
// compatibility forms are decomposed, combining marks are stripped, and list
// spacing is repaired.
func Normalize(text string) string {
	text = replacements.Replace(text)

	// NFKD, then drop combining marks left over from the decomposition.
	text = norm.NFKD.String(text)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	text = b.String()

	text = trailingWS.ReplaceAllString(text, "\n")
	text = manyBlanks.ReplaceAllString(text, "\n\n\n")
	text = orphanPunct.ReplaceAllString(text, "$1")
	text = ensureBlankBeforeLists(text)

	return text
}

var (
	bulletItem   = regexp.MustCompile(`^[-*+] `)
	numberedItem = regexp.MustCompile(`^\d+\. `)
)

func isListItem(line string) bool {
	return bulletItem.MatchString(line) || numberedItem.MatchString(line)
}

// ensureBlankBeforeLists inserts a blank line between a paragraph and a list
// that immediately follows it so markdown parsers recognize the list.
func ensureBlankBeforeLists(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		out = append(out, line)
		if i+1 >= len(lines) {
			continue
		}
		cur := strings.TrimSpace(line)
		next := strings.TrimSpace(lines[i+1])
		if cur != "" && !strings.HasPrefix(cur, "#") && !isListItem(cur) && isListItem(next) {
			out = append(out, "")
		}
	}
	return strings.Join(out, "\n")
}
