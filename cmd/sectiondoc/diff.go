package main

import (
	"fmt"
	"io"
	"strings"
)

// writeDiff writes a simple line-by-line diff of a and b to w. It uses a
// short lookahead to resynchronize after insertions or deletions rather
// than a full LCS, which is enough for eyeballing docstring rewrites.
func writeDiff(w io.Writer, a, b string) {
	aLines := strings.Split(a, "\n")
	bLines := strings.Split(b, "\n")

	ai, bi := 0, 0
	for ai < len(aLines) || bi < len(bLines) {
		switch {
		case ai >= len(aLines):
			fmt.Fprintf(w, "+%s\n", bLines[bi])

			bi++

		case bi >= len(bLines):
			fmt.Fprintf(w, "-%s\n", aLines[ai])

			ai++

		case aLines[ai] == bLines[bi]:
			fmt.Fprintf(w, " %s\n", aLines[ai])

			ai++
			bi++

		default:
			ai, bi = emitChangedLines(w, aLines, bLines, ai, bi)
		}
	}
}

// emitChangedLines handles one mismatch: look a few lines ahead on either
// side for a resynchronization point, emitting removals or additions up to
// it, or fall back to a one-line change.
func emitChangedLines(w io.Writer, aLines, bLines []string, ai, bi int) (int, int) {
	const window = 5

	for lookahead := 1; lookahead < window && ai+lookahead < len(aLines); lookahead++ {
		if aLines[ai+lookahead] == bLines[bi] {
			for j := 0; j < lookahead; j++ {
				fmt.Fprintf(w, "-%s\n", aLines[ai+j])
			}

			return ai + lookahead, bi
		}
	}

	for lookahead := 1; lookahead < window && bi+lookahead < len(bLines); lookahead++ {
		if bLines[bi+lookahead] == aLines[ai] {
			for j := 0; j < lookahead; j++ {
				fmt.Fprintf(w, "+%s\n", bLines[bi+j])
			}

			return ai, bi + lookahead
		}
	}

	fmt.Fprintf(w, "-%s\n", aLines[ai])
	fmt.Fprintf(w, "+%s\n", bLines[bi])

	return ai + 1, bi + 1
}
