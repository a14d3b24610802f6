// Package strlit edits string-valued JSON fields as first-class JSON:
// it locates a JSON string literal in raw source text, unescapes it into an
// editable document, and splices edited content back into the original text
// correctly escaped.
package strlit

import "strings"

// Pos points into a text buffer by (row, col). Row and Col are 0-based;
// Col counts runes, not bytes.
type Pos struct {
	Row int
	Col int
}

// Range is a half-open span in buffer coordinates: [Start, End).
type Range struct {
	Start Pos
	End   Pos
}

// IsEmpty reports whether the range is collapsed to a single position.
func (r Range) IsEmpty() bool { return r.Start == r.End }

// Selection is a non-collapsed host selection: the selected text together
// with the range it covers in the source buffer.
type Selection struct {
	Text  string
	Range Range
}

// EditTarget is the substring to edit and where it lives in the source
// buffer. Body is the raw string-literal content, quotes stripped but still
// escaped. Offsets carries the same span in byte offsets when the target was
// located against a whole document; it is [0, 0] for line-based locates.
type EditTarget struct {
	Body    string
	Range   Range
	Offsets [2]int
}

// OffsetToPos converts a byte offset in doc to a (row, col) position.
// Columns count runes since the last line break.
func OffsetToPos(doc string, off int) Pos {
	if off > len(doc) {
		off = len(doc)
	}
	row := strings.Count(doc[:off], "\n")
	lineStart := strings.LastIndexByte(doc[:off], '\n') + 1
	col := len([]rune(doc[lineStart:off]))
	return Pos{Row: row, Col: col}
}

// PosToOffset converts a (row, col) position to a byte offset in doc.
// A row past the last line maps to len(doc); a col past the line end maps to
// the line end.
func PosToOffset(doc string, p Pos) int {
	off := 0
	for row := 0; row < p.Row; row++ {
		nl := strings.IndexByte(doc[off:], '\n')
		if nl < 0 {
			return len(doc)
		}
		off += nl + 1
	}
	lineEnd := strings.IndexByte(doc[off:], '\n')
	if lineEnd < 0 {
		lineEnd = len(doc) - off
	}
	line := doc[off : off+lineEnd]
	col := 0
	for i := range line {
		if col == p.Col {
			return off + i
		}
		col++
	}
	return off + len(line)
}
