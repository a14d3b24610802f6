package strlit

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Splice replaces rng in doc with text, using (row, col) coordinates.
func Splice(doc string, rng Range, text string) string {
	start := PosToOffset(doc, rng.Start)
	end := PosToOffset(doc, rng.End)
	return SpliceOffsets(doc, start, end, text)
}

// Preview renders the change a write-back would make to doc, for the host's
// feedback channel. With color set, insertions and deletions are wrapped in
// ANSI green/red; otherwise they are wrapped in [-...-] and [+...+] markers.
func Preview(before, after string, color bool) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	if color {
		return dmp.DiffPrettyText(diffs)
	}

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-")
			b.WriteString(d.Text)
			b.WriteString("-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("[+")
			b.WriteString(d.Text)
			b.WriteString("+]")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
