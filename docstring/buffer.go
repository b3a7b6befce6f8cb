package docstring

import (
	"fmt"
	"regexp"
	"strings"
)

// indentRegex matches the leading whitespace run of a line.
var indentRegex = regexp.MustCompile(`^\s+`)

// LineBuffer holds the mutable line sequence for one docstring
// transformation, together with the cursor marking the next unread line.
//
// The low-level [LineBuffer.Remove] and [LineBuffer.Insert] primitives do
// not touch the cursor; any caller mutating at or before the cursor must
// restore it. Prefer the span operations [LineBuffer.ExtractSpan] and
// [LineBuffer.InsertHere], which keep the cursor consistent by
// construction and are what the engine and strategies use.
type LineBuffer struct {
	lines  []string
	cursor int
}

// NewLineBuffer creates a [LineBuffer] over a copy of lines, with the
// cursor at the first line. The input slice is never mutated.
func NewLineBuffer(lines []string) *LineBuffer {
	copied := make([]string, len(lines))
	copy(copied, lines)

	return &LineBuffer{lines: copied}
}

// Len returns the current number of lines.
func (b *LineBuffer) Len() int {
	return len(b.lines)
}

// Pos returns the cursor position.
func (b *LineBuffer) Pos() int {
	return b.cursor
}

// Lines returns the underlying line slice. The returned slice aliases the
// buffer; callers must not hold it across mutations.
func (b *LineBuffer) Lines() []string {
	return b.lines
}

// EOL reports whether the cursor is past the last line.
func (b *LineBuffer) EOL() bool {
	return b.cursor >= len(b.lines)
}

// Read returns the line at the cursor and advances the cursor.
// Reading at end of input is a contract violation and returns
// [ErrOutOfRange].
func (b *LineBuffer) Read() (string, error) {
	if b.EOL() {
		return "", fmt.Errorf("%w: read at line %d of %d", ErrOutOfRange, b.cursor, len(b.lines))
	}

	line := b.lines[b.cursor]
	b.cursor++

	return line, nil
}

// Peek returns the line at cursor+offset without advancing. Positions past
// the end yield an empty string rather than an error, so lookahead at the
// buffer boundary needs no special casing.
func (b *LineBuffer) Peek(offset int) string {
	pos := b.cursor + offset
	if pos < 0 || pos >= len(b.lines) {
		return ""
	}

	return b.lines[pos]
}

// Remove deletes count lines starting at absolute index at. The cursor is
// not adjusted; callers removing at or before the cursor must reset it.
// Out-of-bounds spans are a contract violation.
func (b *LineBuffer) Remove(at, count int) error {
	if at < 0 || count < 0 || at+count > len(b.lines) {
		return fmt.Errorf("%w: remove [%d,%d) of %d lines", ErrOutOfRange, at, at+count, len(b.lines))
	}

	b.lines = append(b.lines[:at], b.lines[at+count:]...)

	return nil
}

// Insert splices lines into the buffer starting at absolute index at,
// preserving their order. The cursor is not adjusted; callers inserting at
// or before the cursor must advance it by len(lines) to avoid re-reading
// the inserted output as input.
func (b *LineBuffer) Insert(at int, lines []string) error {
	if at < 0 || at > len(b.lines) {
		return fmt.Errorf("%w: insert at %d of %d lines", ErrOutOfRange, at, len(b.lines))
	}

	b.lines = append(b.lines[:at], append(append([]string{}, lines...), b.lines[at:]...)...)

	return nil
}

// ExtractSpan removes count lines starting at absolute index at and
// returns them. The cursor lands at the start of the removed span, so the
// same position can be re-examined by the caller.
func (b *LineBuffer) ExtractSpan(at, count int) ([]string, error) {
	if at < 0 || count < 0 || at+count > len(b.lines) {
		return nil, fmt.Errorf("%w: extract [%d,%d) of %d lines", ErrOutOfRange, at, at+count, len(b.lines))
	}

	span := make([]string, count)
	copy(span, b.lines[at:at+count])

	b.lines = append(b.lines[:at], b.lines[at+count:]...)
	b.cursor = at

	return span, nil
}

// InsertHere splices lines at the cursor and advances the cursor past
// them, so already-rendered output is never re-read as input.
func (b *LineBuffer) InsertHere(lines []string) {
	// Insert at the cursor is always in bounds.
	_ = b.Insert(b.cursor, lines)
	b.cursor += len(lines)
}

// SeekNonEmpty advances the cursor to the next non-blank line, or to end
// of input if none remains.
func (b *LineBuffer) SeekNonEmpty() {
	for !b.EOL() && isBlank(b.Peek(0)) {
		b.cursor++
	}
}

// isBlank reports whether the line is empty or whitespace-only.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// indentOf returns the leading whitespace of the line.
func indentOf(line string) string {
	return indentRegex.FindString(line)
}

// indentLines prefixes every non-blank line with indent.
func indentLines(lines []string, indent string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if isBlank(line) {
			out[i] = line
		} else {
			out[i] = indent + line
		}
	}

	return out
}
