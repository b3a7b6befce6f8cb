// Package docstring rewrites structured documentation comments --
// numpy/Google-style docstrings with underlined section headers such as
// Parameters, Returns, Attributes, and Notes -- into directive-based
// markup consumable by a documentation renderer.
//
// The core is a single-pass, in-place line rewriter. A [LineBuffer] holds
// the mutable line sequence and a forward-moving cursor; the
// [Transformer] scans for section headers, recognized by an rST underline
// heuristic ([SectionHeader]), and hands each recognized section to the
// [Strategy] registered for its header name. Strategies extract field
// blocks ([NextBlock]), parse them into [Item] records, and splice
// rendered replacement lines back into the buffer at the cursor.
//
// # Buffer Discipline
//
// Every structural edit passes through the [LineBuffer]. The low-level
// [LineBuffer.Remove] and [LineBuffer.Insert] primitives deliberately do
// not adjust the cursor, mirroring the genuine hazard of in-place line
// editing; the span operations [LineBuffer.ExtractSpan] and
// [LineBuffer.InsertHere] encode the two editing patterns the engine
// needs -- "remove a span and re-examine its start" and "insert output
// and never re-read it" -- so call sites cannot desynchronize the cursor.
// Everything before the cursor is original text or finished output;
// everything from the cursor on is well-formed unprocessed input.
//
// # Sections and Items
//
// A section header is a line whose successor is a matching underline of
// dashes or equals signs, one underline character per header letter
// (backslashes count as letters). A field block is a header line plus the
// lines indented under
// it; a blank line ends the block unless the line after it is still
// indented under the field. [ParseDefinition] accepts three header
// shapes:
//
//	term
//	term : classifier
//	term : classifier or classifier
//
// A third classifier, or a term that is not a single optionally-starred
// word, fails with [ErrMalformedItem].
//
// # Strategies
//
// Strategies form a closed variant set:
//
//   - [GenericDirective]: rewrite the header as a rubric directive,
//     leaving the body untouched. This is the fallback for headers with
//     no registry entry.
//   - [ItemList]: extract and parse consecutive field blocks, rendering
//     each with a [Renderer] ([RenderArgument], [RenderListItem], or
//     [RenderAttribute]).
//   - [MethodTable]: render method fields as a two-column summary table.
//   - [Paragraph]: carry the section body through as a block quote under
//     a directive such as ".. note::".
//
// [FunctionSections] and [ClassSections] return the stock registries for
// function and class docstrings; [ParseSections] builds a registry from a
// YAML config file.
//
// # Errors
//
// Data-quality failures ([ErrMalformedItem], [ErrMalformedSection]) are
// returned as a [*TransformError] naming the section, block, and line, and
// no partial rewrite is ever returned. [ErrOutOfRange],
// [ErrUnknownStrategy], and [ErrEmptyBlock] indicate bugs or
// configuration mistakes, never bad input.
//
// # Concurrency
//
// A [Transformer] holds only read-only state and may be shared; each
// [Transformer.Transform] call owns a private buffer, so callers can
// transform independent docstrings concurrently.
//
// # Basic Usage
//
//	out, err := docstring.Transform(lines, docstring.FunctionSections())
//
// # With Tracing
//
//	t := docstring.NewTransformer(
//	    docstring.ClassSections(),
//	    docstring.WithLogger(slog.Default()),
//	)
//	out, err := t.Transform(lines)
package docstring
