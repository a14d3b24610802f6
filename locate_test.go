package strlit

import "testing"

func TestLocateCaret(t *testing.T) {
	line := `{"a": "x", "b": "y"}`

	tests := []struct {
		name     string
		col      int
		wantBody string
		wantCols [2]int
		wantOK   bool
	}{
		{name: "inside x", col: 7, wantBody: "x", wantCols: [2]int{7, 8}, wantOK: true},
		{name: "on opening quote of x", col: 6, wantBody: "x", wantCols: [2]int{7, 8}, wantOK: true},
		{name: "just past closing quote of x", col: 9, wantBody: "x", wantCols: [2]int{7, 8}, wantOK: true},
		{name: "inside y", col: 17, wantBody: "y", wantCols: [2]int{17, 18}, wantOK: true},
		{name: "inside a", col: 2, wantBody: "a", wantCols: [2]int{2, 3}, wantOK: true},
		{name: "outside any literal", col: 0, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := Locate(line, nil, Pos{Row: 4, Col: tt.col})
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if target.Body != tt.wantBody {
				t.Errorf("body = %q, want %q", target.Body, tt.wantBody)
			}
			want := Range{Start: Pos{Row: 4, Col: tt.wantCols[0]}, End: Pos{Row: 4, Col: tt.wantCols[1]}}
			if target.Range != want {
				t.Errorf("range = %+v, want %+v", target.Range, want)
			}
		})
	}
}

func TestLocateCaretEscapedQuotes(t *testing.T) {
	line := `{"s": "a\"b"}`
	target, ok := Locate(line, nil, Pos{Col: 9})
	if !ok {
		t.Fatal("no target found")
	}
	if target.Body != `a\"b` {
		t.Errorf("body = %q, want %q", target.Body, `a\"b`)
	}
}

func TestLocateAdjacentLiterals(t *testing.T) {
	// Tie break is first match containing the caret, scanning left to right.
	line := `"x","y"`
	target, ok := Locate(line, nil, Pos{Col: 5})
	if !ok || target.Body != "y" {
		t.Fatalf("got (%q, %v), want (%q, true)", target.Body, ok, "y")
	}
}

func TestLocateUnterminatedLiteral(t *testing.T) {
	for _, line := range []string{`"abc`, `"a\`, `no quotes here`} {
		if _, ok := Locate(line, nil, Pos{Col: 1}); ok {
			t.Errorf("Locate(%q) found a target, want none", line)
		}
	}
}

func TestLocateSelection(t *testing.T) {
	// Selecting the quoted literal or just its content yields the same target.
	withQuotes := &Selection{
		Text:  `"hello"`,
		Range: Range{Start: Pos{Row: 1, Col: 8}, End: Pos{Row: 1, Col: 15}},
	}
	bare := &Selection{
		Text:  `hello`,
		Range: Range{Start: Pos{Row: 1, Col: 9}, End: Pos{Row: 1, Col: 14}},
	}

	a, ok := Locate("", withQuotes, Pos{})
	if !ok {
		t.Fatal("no target from quoted selection")
	}
	b, ok := Locate("", bare, Pos{})
	if !ok {
		t.Fatal("no target from bare selection")
	}
	if a != b {
		t.Errorf("quoted selection %+v != bare selection %+v", a, b)
	}
	if a.Body != "hello" {
		t.Errorf("body = %q, want %q", a.Body, "hello")
	}
}

func TestLocateSelectionLoneQuote(t *testing.T) {
	sel := &Selection{Text: `"`, Range: Range{End: Pos{Col: 1}}}
	target, ok := Locate("", sel, Pos{})
	if !ok {
		t.Fatal("no target")
	}
	if target.Body != "" {
		t.Errorf("body = %q, want empty", target.Body)
	}
}

func TestLocateCollapsedSelectionFallsBackToCaret(t *testing.T) {
	sel := &Selection{Range: Range{Start: Pos{Col: 3}, End: Pos{Col: 3}}}
	target, ok := Locate(`x "y"`, sel, Pos{Col: 3})
	if !ok || target.Body != "y" {
		t.Fatalf("got (%q, %v), want (%q, true)", target.Body, ok, "y")
	}
}
