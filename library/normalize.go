package library

import (
	"regexp"
	"strings"
)

// ParagraphGap replaces every paragraph break in a normalized document.
const ParagraphGap = "    "

// paragraphBreak matches runs that separate paragraphs: two or more CRLF
// pairs, two or more lone CR or LF, or a form feed.
var paragraphBreak = regexp.MustCompile(`(?:\r\n){2,}|\r{2,}|\n{2,}|\f`)

var residualSpace = strings.NewReplacer(
	"\n", "",
	"\r", "",
	"\t", "",
	"\u3000", "",
)

// Normalize collapses the source file's layout whitespace into one continuous
// character stream. Paragraph breaks survive as ParagraphGap and every other
// line break, tab and ideographic space is removed. The paragraph pass must
// run first or the residual pass would eat the runs it looks for.
func Normalize(s string) string {
	s = paragraphBreak.ReplaceAllLiteralString(s, ParagraphGap)
	return residualSpace.Replace(s)
}
