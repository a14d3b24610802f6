package strlit

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EditableOption adjusts how ToEditable unescapes a literal body.
type EditableOption func(*editableConfig)

type editableConfig struct {
	expandNewlines bool
}

// ExpandNewlines additionally expands `\n` escapes into real line breaks
// before the parse attempt. Used on the caret-located path for readability;
// write-back re-escapes line breaks only as part of standard JSON string
// encoding, so the expansion is deliberately not reversed as its own step.
func ExpandNewlines() EditableOption {
	return func(c *editableConfig) { c.expandNewlines = true }
}

// ToEditable turns a JSON string-literal body into standalone editable text.
//
// One optional leading double quote and one optional unescaped trailing
// double quote are stripped (the locator already removes them, but callers
// may pass either form; a trailing `\"` pair is body content), escape pairs are
// undone, and when the result parses as JSON it is pretty-printed with a
// 2-space indent. Content that does not parse comes back unescaped but
// unformatted so the user can fix it in the editable copy; ToEditable never
// fails.
func ToEditable(body string, opts ...EditableOption) string {
	var c editableConfig
	for _, opt := range opts {
		opt(&c)
	}

	body = strings.TrimPrefix(body, `"`)
	if hasUnescapedTrailingQuote(body) {
		body = body[:len(body)-1]
	}
	text := unescape(body, c.expandNewlines)

	v, ok := parseValue(text)
	if !ok {
		return text
	}
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return text
	}
	return string(pretty)
}

// ToLiteral turns edited text back into a JSON string-literal body, without
// the surrounding quotes. Valid JSON is canonicalized to its compact form
// first; anything else is escaped as-is and wasJSON reports false so the
// caller can surface a warning. ToLiteral always produces a usable body.
func ToLiteral(edited string) (body string, wasJSON bool) {
	text := strings.TrimSpace(edited)

	if v, ok := parseValue(text); ok {
		if compact, err := json.Marshal(v); err == nil {
			return encodeBody(string(compact)), true
		}
	}
	return encodeBody(text), false
}

// parseValue parses text as a single JSON value, keeping numbers verbatim.
func parseValue(text string) (interface{}, bool) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	if dec.More() {
		return nil, false
	}
	return v, true
}

// encodeBody produces the JSON string-literal encoding of s, quotes
// stripped. Going through the JSON encoder covers control characters, and a
// single encoding pass cannot double-escape quote markers.
func encodeBody(s string) string {
	quoted, err := json.Marshal(s)
	if err != nil {
		// Marshal of a string cannot fail; keep the text rather than drop it.
		return s
	}
	return string(quoted[1 : len(quoted)-1])
}

// hasUnescapedTrailingQuote reports whether s ends in a double quote that
// is a real closing quote rather than the tail of a `\"` escape pair. The
// quote is escaped exactly when an odd number of backslashes precedes it.
func hasUnescapedTrailingQuote(s string) bool {
	if !strings.HasSuffix(s, `"`) {
		return false
	}
	n := 0
	for i := len(s) - 2; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n%2 == 0
}

// unescape undoes `\"` and `\\` pairs in a single left-to-right pass, and
// optionally `\n`. Other escape pairs are kept verbatim.
func unescape(s string, expandNewlines bool) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		switch s[i+1] {
		case '"':
			b.WriteByte('"')
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		case 'n':
			if expandNewlines {
				b.WriteByte('\n')
				i++
			} else {
				b.WriteByte(c)
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
