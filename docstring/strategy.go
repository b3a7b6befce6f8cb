package docstring

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Section carries the per-section state handed to a [Strategy]: the
// buffer with the cursor at the first body line (header and underline
// already removed), the stripped header name, the header's original
// indentation, and the header's line index for error reporting.
type Section struct {
	Buffer *LineBuffer
	Logger *slog.Logger
	Header string
	Indent string
	Line   int
}

// Strategy rewrites one recognized section in place. Implementations are
// a closed set of variants ([GenericDirective], [ItemList], [MethodTable],
// [Paragraph]); a [Registry] maps header names to the variant that governs
// them, and a missing entry falls back to [GenericDirective].
type Strategy interface {
	Rewrite(s *Section) error
}

// Registry maps section header names, as they literally appear in the
// docstring text, to the [Strategy] governing them. It is read-only for
// the lifetime of a [Transformer].
type Registry map[string]Strategy

// GenericDirective is the default strategy: the section header is
// rewritten as a rubric directive and the body is left untouched.
type GenericDirective struct{}

// Rewrite emits a rubric directive carrying the header text. Backslashes
// in the header are escaped so headers like `Raises\*` render literally.
func (GenericDirective) Rewrite(s *Section) error {
	header := strings.Trim(strconv.Quote(s.Header), `"`)

	s.Buffer.InsertHere([]string{
		s.Indent + ".. rubric:: " + header,
		"",
	})

	return nil
}

// ItemList extracts consecutive field blocks from the section body,
// parses each with Parse, and renders each with Render. Extraction stops
// when the next line (or the line after a single blank separator) no
// longer opens a field at the section indent.
type ItemList struct {
	// Render turns one parsed item into output lines. Required.
	Render Renderer
	// Parse turns one block into an item. Defaults to [ParseDefinition].
	Parse ItemParser
	// Match reports whether a line opens a field at the given indent.
	// Defaults to the definition-field predicate.
	Match func(line, indent string) bool
}

// Rewrite extracts, parses, and renders the section's items, splicing the
// rendered lines in at the cursor.
func (il ItemList) Rewrite(s *Section) error {
	parse := il.Parse
	if parse == nil {
		parse = ParseDefinition
	}

	match := il.Match
	if match == nil {
		match = isDefinitionField
	}

	items, err := extractItems(s, parse, match)
	if err != nil {
		return err
	}

	var out []string
	for _, item := range items {
		out = append(out, il.Render(item, s.Indent)...)
	}

	if len(out) > 0 {
		out = append(out, "")
	}

	s.Buffer.InsertHere(out)

	return nil
}

// extractItems drives the block extractor over the section body: while
// the next line (or the line after one blank separator) opens a field at
// the section indent, the blank separator is dropped, the block is
// extracted, and the item parsed. Parse failures surface as a
// [TransformError] naming the section and block.
func extractItems(s *Section, parse ItemParser, match func(line, indent string) bool) ([]Item, error) {
	b := s.Buffer

	var items []Item

	for !b.EOL() && (match(b.Peek(0), s.Indent) || match(b.Peek(1), s.Indent)) {
		if isBlank(b.Peek(0)) {
			// Drop the blank separator between fields. Removing at the
			// cursor leaves the cursor on the following line.
			if err := b.Remove(b.Pos(), 1); err != nil {
				return nil, err
			}
		}

		line := b.Pos()

		block, err := NextBlock(b)
		if err != nil {
			return nil, err
		}

		item, err := parse(block)
		if err != nil {
			return nil, &TransformError{Err: err, Header: s.Header, Block: block, Line: s.Line}
		}

		s.Logger.Debug("field extracted",
			"section", s.Header,
			"term", item.Term,
			"line", line,
		)

		items = append(items, item)
	}

	return items, nil
}

// MethodTable renders a methods section as an rST grid table with one row
// per method. Field blocks that open like a field but do not carry a
// method signature violate the table's structure and fail the section.
type MethodTable struct{}

// Rewrite extracts method blocks and splices in the rendered table.
func (MethodTable) Rewrite(s *Section) error {
	match := func(line, indent string) bool {
		return isMethodField(line, indent) || isDefinitionField(line, indent)
	}

	parse := func(block []string) (Item, error) {
		item, err := ParseMethod(block)
		if errors.Is(err, ErrMalformedItem) {
			return Item{}, fmt.Errorf("%w: %v", ErrMalformedSection, err)
		}

		return item, err
	}

	items, err := extractItems(s, parse, match)
	if err != nil {
		return err
	}

	out := renderMethodTable(items, s.Indent)
	if len(out) > 0 {
		out = append(out, "")
	}

	s.Buffer.InsertHere(out)

	return nil
}

// Paragraph carries the whole section body through as an indented block
// quote under a directive, with no item extraction.
type Paragraph struct {
	// Directive is the directive line to emit. Defaults to ".. note::".
	Directive string
}

// Rewrite consumes the body paragraph and splices in the directive block.
func (p Paragraph) Rewrite(s *Section) error {
	directive := p.Directive
	if directive == "" {
		directive = ".. note::"
	}

	body, err := NextParagraph(s.Buffer)
	if err != nil {
		return err
	}

	out := []string{s.Indent + directive}
	if len(body) > 0 {
		out = append(out, "")
		out = append(out, indentLines(trimIndent(body), s.Indent+"    ")...)
	}

	out = append(out, "")

	s.Buffer.InsertHere(out)

	return nil
}
