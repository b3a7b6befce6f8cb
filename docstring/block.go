package docstring

import "strings"

// NextBlock extracts one field block from the buffer, starting at the
// cursor. The first line of the block is the field header; following
// lines are consumed while they belong to the field body:
//
//   - a non-blank line continues the block only if it starts with the
//     body indent (the header indent plus one space);
//   - a blank line continues the block only if the line after it starts
//     with the body indent, so a blank line between two same-indent
//     fields ends the block while a blank line inside an indented
//     description is retained.
//
// The collected span is removed from the buffer and the cursor lands back
// at the block start, so the caller can immediately test whether another
// field follows. Continuation lines are right-trimmed; the header line is
// returned untouched so its original indentation stays inspectable.
//
// Calling NextBlock at end of input is a contract violation and returns
// [ErrEmptyBlock].
func NextBlock(b *LineBuffer) ([]string, error) {
	if b.EOL() {
		return nil, ErrEmptyBlock
	}

	start := b.Pos()

	header, err := b.Read()
	if err != nil {
		return nil, err
	}

	bodyIndent := indentOf(header) + " "
	block := []string{header}

	for !b.EOL() {
		next := b.Peek(0)
		after := b.Peek(1)

		if isBlank(next) && !strings.HasPrefix(after, bodyIndent) {
			break
		}

		if !isBlank(next) && !strings.HasPrefix(next, bodyIndent) {
			break
		}

		line, err := b.Read()
		if err != nil {
			return nil, err
		}

		block = append(block, strings.TrimRight(line, " \t"))
	}

	if _, err := b.ExtractSpan(start, len(block)); err != nil {
		return nil, err
	}

	return block, nil
}

// NextParagraph consumes and returns the lines from the cursor up to the
// next blank line or end of input, removing them from the buffer. The
// cursor lands where the paragraph began.
func NextParagraph(b *LineBuffer) ([]string, error) {
	start := b.Pos()
	count := 0

	for !b.EOL() && !isBlank(b.Peek(count)) {
		count++
	}

	return b.ExtractSpan(start, count)
}

// isDefinitionField reports whether the line opens a definition field at
// the given indent: an optionally starred word followed by " :".
func isDefinitionField(line, indent string) bool {
	rest, ok := strings.CutPrefix(line, indent)
	if !ok {
		return false
	}

	return definitionFieldRegex.MatchString(rest)
}

// isMethodField reports whether the line opens a method field at the
// given indent: a name followed by a parenthesized signature.
func isMethodField(line, indent string) bool {
	rest, ok := strings.CutPrefix(line, indent)
	if !ok {
		return false
	}

	return methodFieldRegex.MatchString(rest)
}
