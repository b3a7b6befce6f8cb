package docstring

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// headerSplitRegex splits an item header into term and classifier
	// text at the first " :" (with an optional following space).
	headerSplitRegex = regexp.MustCompile(`\s:\s?`)

	// classifierSplitRegex splits classifier text on the standalone word
	// "or". Words merely containing "or" (e.g. "color") are untouched.
	classifierSplitRegex = regexp.MustCompile(`\bor\b`)

	// termRegex is the accepted shape of a term: one word, optionally
	// prefixed by up to two stars for variadic-argument markers.
	termRegex = regexp.MustCompile(`^\*{0,2}\w+$`)

	// definitionFieldRegex recognizes the header line of a definition
	// field at a given indent.
	definitionFieldRegex = regexp.MustCompile(`^\*{0,2}\w+\s:(\s+|$)`)

	// methodFieldRegex recognizes the header line of a method field:
	// a name followed by a parenthesized signature.
	methodFieldRegex = regexp.MustCompile(`^\w+\(.*\)\s*$`)
)

// Item is one parsed field of a section: a term naming a parameter,
// attribute, or return value, zero to two classifiers (type annotations,
// possibly joined by "or" in the source), and the description lines with
// their shared indentation stripped. Items are built once per block by an
// [ItemParser] and consumed once by a [Renderer].
type Item struct {
	Term        string
	Classifiers []string
	Description []string
}

// ItemParser turns one extracted block into an [Item].
type ItemParser func(block []string) (Item, error)

// ParseDefinition parses a definition block into an [Item].
//
// The header line takes one of three shapes:
//
//	term
//	term : classifier
//	term : classifier or classifier
//
// Any line after the header belongs to the description. The description
// keeps its internal structure: indentation is stripped relative to the
// first non-blank description line, so nested blocks stay nested. A field
// with no description yields a single empty description line; a field
// whose body is one intentionally blank line is indistinguishable from it.
func ParseDefinition(block []string) (Item, error) {
	if len(block) == 0 {
		return Item{}, ErrEmptyBlock
	}

	header := strings.TrimSpace(block[0])

	// Without a " :" separator the whole header is the term, phrase or
	// not; the single-token rule only applies to split headers.
	if !strings.Contains(header, " :") {
		return Item{
			Term:        header,
			Description: descriptionOf(block),
		}, nil
	}

	parts := headerSplitRegex.Split(header, 2)

	term := strings.TrimSpace(parts[0])
	if !termRegex.MatchString(term) {
		return Item{}, fmt.Errorf("%w: invalid term %q", ErrMalformedItem, term)
	}

	classifierText := ""
	if len(parts) > 1 {
		classifierText = parts[1]
	}

	classifiers, err := splitClassifiers(classifierText)
	if err != nil {
		return Item{}, fmt.Errorf("%w in field %q", err, header)
	}

	return Item{
		Term:        term,
		Classifiers: classifiers,
		Description: descriptionOf(block),
	}, nil
}

// ParseMethod parses a method block into an [Item]. The header line is a
// method signature such as "foo(a, b)"; the signature becomes the term and
// there are no classifiers.
func ParseMethod(block []string) (Item, error) {
	if len(block) == 0 {
		return Item{}, ErrEmptyBlock
	}

	header := strings.TrimSpace(block[0])
	if !methodFieldRegex.MatchString(header) {
		return Item{}, fmt.Errorf("%w: not a method signature: %q", ErrMalformedItem, header)
	}

	return Item{
		Term:        header,
		Description: descriptionOf(block),
	}, nil
}

// splitClassifiers splits classifier text on the word "or" and strips each
// segment. An empty result collapses to nil rather than [""]. More than
// two classifiers is a grammar violation.
func splitClassifiers(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	parts := classifierSplitRegex.Split(text, -1)
	if len(parts) > 2 {
		return nil, fmt.Errorf("%w: %d classifiers", ErrMalformedItem, len(parts))
	}

	classifiers := make([]string, 0, len(parts))
	for _, part := range parts {
		classifiers = append(classifiers, strings.TrimSpace(part))
	}

	return classifiers, nil
}

// descriptionOf extracts the description lines of a block: blank lines at
// the top and bottom dropped, each line right-trimmed, and indentation
// stripped against the first non-blank line.
func descriptionOf(block []string) []string {
	lines := block[1:]

	start := 0
	for start < len(lines) && isBlank(lines[start]) {
		start++
	}

	end := len(lines)
	for end > start && isBlank(lines[end-1]) {
		end--
	}

	if start == end {
		return []string{""}
	}

	trimmed := trimIndent(lines[start:end])
	for i, line := range trimmed {
		trimmed[i] = strings.TrimRight(line, " \t")
	}

	return trimmed
}

// trimIndent removes the shared leading indentation from lines, using the
// indent of the first non-blank line as the baseline. Lines indented
// deeper than the baseline keep the difference, preserving nested
// structure such as code blocks.
func trimIndent(lines []string) []string {
	baseline := ""

	for _, line := range lines {
		if !isBlank(line) {
			baseline = indentOf(line)

			break
		}
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if isBlank(line) {
			out[i] = ""
		} else {
			out[i] = strings.TrimPrefix(line, baseline)
		}
	}

	return out
}

// escapeStars escapes star prefixes so variadic markers like **kwargs are
// not re-emitted as emphasis markup.
func escapeStars(term string) string {
	return strings.ReplaceAll(term, "*", `\*`)
}
