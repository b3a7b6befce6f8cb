package docstring

import (
	"io"
	"log/slog"
)

// Transformer rewrites docstrings section by section. It holds only
// read-only state (the registry and a logger), so a single Transformer is
// safe to reuse across docstrings and goroutines; each [Transformer.Transform]
// call owns its own [LineBuffer].
//
// Create instances with [NewTransformer].
type Transformer struct {
	registry Registry
	logger   *slog.Logger
}

// Option configures a [Transformer].
type Option func(*Transformer)

// WithLogger sets the logger receiving trace events (sections recognized,
// fields extracted). The default discards them.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transformer) {
		t.logger = logger
	}
}

// NewTransformer creates a [Transformer] with the given registry and
// options. Headers missing from the registry fall back to
// [GenericDirective].
func NewTransformer(registry Registry, opts ...Option) *Transformer {
	t := &Transformer{
		registry: registry,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Transform rewrites every recognized section of one docstring and
// returns the resulting lines. The input is never mutated, and on error
// no partial rewrite is returned: data-quality failures surface as a
// [*TransformError] identifying the offending section and block.
func (t *Transformer) Transform(lines []string) ([]string, error) {
	b := NewLineBuffer(lines)

	if err := t.scan(b); err != nil {
		return nil, err
	}

	return b.Lines(), nil
}

// scan is the top-level parse loop: advance to the next section header,
// hand the section off to its strategy, and repeat until end of input.
// The cursor is monotonically non-decreasing across the scan, so the pass
// is linear-bounded.
func (t *Transformer) scan(b *LineBuffer) error {
	b.SeekNonEmpty()

	for !b.EOL() {
		header := SectionHeader(b)
		if header == "" {
			if _, err := b.Read(); err != nil {
				return err
			}

			b.SeekNonEmpty()

			continue
		}

		if err := t.rewriteSection(b, header); err != nil {
			return err
		}

		b.SeekNonEmpty()
	}

	return nil
}

// rewriteSection removes the header, underline, and their blank separator,
// then dispatches to the registered strategy for the header (or the
// generic rubric fallback).
func (t *Transformer) rewriteSection(b *LineBuffer, header string) error {
	line := b.Pos()

	t.logger.Debug("section recognized", "header", header, "line", line)

	// Collapse the blank separator after the underline, when present.
	if b.Pos()+2 < b.Len() && isBlank(b.Peek(2)) {
		if err := b.Remove(b.Pos()+2, 1); err != nil {
			return err
		}
	}

	indent := indentOf(b.Peek(0))

	if _, err := b.ExtractSpan(b.Pos(), 2); err != nil {
		return err
	}

	strategy, ok := t.registry[header]
	if !ok {
		strategy = GenericDirective{}
	}

	return strategy.Rewrite(&Section{
		Buffer: b,
		Logger: t.logger,
		Header: header,
		Indent: indent,
		Line:   line,
	})
}

// Transform rewrites one docstring with the given registry. It is
// shorthand for [NewTransformer] followed by [Transformer.Transform].
func Transform(lines []string, registry Registry) ([]string, error) {
	return NewTransformer(registry).Transform(lines)
}
