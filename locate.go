package strlit

import "strings"

// Locate finds the JSON string literal to edit on a single line.
//
// With a non-empty selection the selected text wins: one leading and one
// trailing double quote are trimmed when present, so selecting the bare
// content or the content with its quotes yields the same target.
//
// With a collapsed selection the line containing the caret is scanned for
// single-line JSON string literals, left to right; the first literal whose
// quoted span contains the caret column (both quote positions included)
// wins. Literals spanning multiple lines are never matched.
//
// The returned Body is still escaped; Range excludes the quotes. ok is
// false when nothing is found.
func Locate(lineText string, sel *Selection, caret Pos) (EditTarget, bool) {
	if sel != nil && !sel.Range.IsEmpty() {
		return fromSelection(sel), true
	}

	runes := []rune(lineText)
	i := 0
	for i < len(runes) {
		if runes[i] != '"' {
			i++
			continue
		}
		end, ok := scanLiteral(runes, i+1)
		if !ok {
			i++
			continue
		}
		// The quoted span is [i, end]; a caret sitting on either quote
		// still counts as inside.
		if caret.Col >= i && caret.Col <= end+1 {
			return EditTarget{
				Body: string(runes[i+1 : end]),
				Range: Range{
					Start: Pos{Row: caret.Row, Col: i + 1},
					End:   Pos{Row: caret.Row, Col: end},
				},
			}, true
		}
		i = end + 1
	}
	return EditTarget{}, false
}

// scanLiteral scans the body of a JSON string literal starting just after
// its opening quote and returns the index of the closing quote. A backslash
// escapes the rune that follows it; an unterminated literal reports false.
func scanLiteral(runes []rune, i int) (int, bool) {
	for ; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			i++
			if i == len(runes) {
				return i, false
			}
		case '"':
			return i, true
		}
	}
	return i, false
}

func fromSelection(sel *Selection) EditTarget {
	text, rng := sel.Text, sel.Range
	if strings.HasPrefix(text, `"`) {
		text = text[1:]
		rng.Start.Col++
	}
	if strings.HasSuffix(text, `"`) {
		text = text[:len(text)-1]
		rng.End.Col--
	}
	return EditTarget{Body: text, Range: rng}
}
