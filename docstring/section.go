package docstring

import (
	"regexp"
	"strings"
)

var (
	// underlineRegex matches a line holding a single whitespace-delimited
	// token, the only shape an rST section underline can take.
	underlineRegex = regexp.MustCompile(`^\s*\S+\s*$`)

	// headerCharRegex matches the characters of a header that map onto
	// underline characters: letters, a literal backslash (so escaped
	// headers like "Raises\*" still match), and word-boundary-adjacent
	// whitespace (so multi-word headers produce one contiguous run).
	headerCharRegex = regexp.MustCompile(`[A-Za-z\\]|\b\s`)
)

// SectionHeader reports whether the line at the cursor is a section header
// with a matching rST underline on the following line. It returns the
// stripped header name, or "" when the pair is not a header. Both dash and
// equals underlines are accepted. The buffer is only peeked, never
// mutated; removing the header and underline is the caller's job.
func SectionHeader(b *LineBuffer) string {
	if b.EOL() {
		return ""
	}

	header := b.Peek(0)
	underline := b.Peek(1)

	if !underlineRegex.MatchString(underline) {
		return ""
	}

	stripped := strings.TrimRight(header, " \t")
	if strings.TrimSpace(stripped) == "" {
		return ""
	}

	dashes := headerCharRegex.ReplaceAllString(stripped, "-")
	equals := headerCharRegex.ReplaceAllString(stripped, "=")

	got := strings.TrimRight(underline, " \t")
	if got != dashes && got != equals {
		return ""
	}

	return strings.TrimSpace(header)
}
