// Package stringtest provides helpers for constructing and comparing
// multiline strings in tests with explicit line endings.
package stringtest

import "strings"

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//		"line3",
//	) // -> "line1\nline2\nline3"
func JoinLF(ss ...string) string {
	var sb strings.Builder
	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}

// Lines splits s on LF line endings. It is the inverse of [JoinLF], handy
// for building line-slice inputs from readable multiline literals.
func Lines(s string) []string {
	return strings.Split(s, "\n")
}
