package strlit

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
)

// ErrNotString reports that a key path resolved to a non-string value.
var ErrNotString = errors.New("strlit.ValueNotString")

// LocatePath finds the string value at the given key path inside a whole
// JSON document and returns it as an EditTarget with both byte offsets and
// (row, col) coordinates filled in. The body is returned still escaped,
// quotes excluded, exactly as Locate would produce for the same span.
//
// Hosts without a caret (command line, scripting) use this in place of
// Locate.
func LocatePath(doc []byte, path ...string) (EditTarget, error) {
	value, typ, end, err := jsonparser.Get(doc, path...)
	if err != nil {
		return EditTarget{}, fmt.Errorf("resolve path %v: %w", path, err)
	}
	if typ != jsonparser.String {
		return EditTarget{}, fmt.Errorf("path %v resolves to %s: %w", path, typ, ErrNotString)
	}

	// jsonparser reports the offset just past the closing quote and hands
	// back the body with quotes trimmed and escapes intact, so the body
	// span can be recovered arithmetically.
	start := end - len(value) - 1
	if start < 1 || doc[start-1] != '"' || !bytes.Equal(doc[start:end-1], value) {
		return EditTarget{}, fmt.Errorf("path %v: value span not recoverable: %w", path, ErrNotString)
	}

	text := string(doc)
	return EditTarget{
		Body:    string(value),
		Offsets: [2]int{start, end - 1},
		Range: Range{
			Start: OffsetToPos(text, start),
			End:   OffsetToPos(text, end-1),
		},
	}, nil
}

// SpliceOffsets replaces doc[start:end] with text.
func SpliceOffsets(doc string, start, end int, text string) string {
	return doc[:start] + text + doc[end:]
}
