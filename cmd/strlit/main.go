package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/strlit/strlit"
)

var (
	version = "1.0.0"
	tag     = "strlit - edit embedded JSON strings as JSON " + version
	usage   = `usage: strlit [-x] [-w editedfile] [-i infile] [-o outfile] [-k keypath | -r row -c col]
eg.: strlit -i api.json -k body.payload            extract the field to stdout
     strlit -i api.json -r 3 -c 14                 extract the literal under a caret
     strlit -i api.json -k body.payload -w fix.json -o api.json
                                                   splice the edited file back
options:
     -x            Extract the located string as editable JSON (default)
     -w editedfile Write the edited file back into the located range
     -d            With -w, print a preview diff instead of the result
     -k keypath    Locate by JSON key path (like "name.last")
     -r row        Caret row, 0-based (with -c)
     -c col        Caret column in runes, 0-based (with -r)
     -i infile     Use input file instead of stdin
     -o outfile    Use output file instead of stdout
     -n            No color in preview output
     -V            Print version and exit`
)

type args struct {
	infile, outfile string
	editedfile      string
	keypath         string
	row, col        int
	caretok         bool
	writeback       bool
	preview         bool
	notty           bool
}

func parseArgs() args {
	fail := func(format string, v ...any) {
		fmt.Fprintf(os.Stderr, "%s\n", tag)
		if format != "" {
			fmt.Fprintf(os.Stderr, format+"\n", v...)
		}
		fmt.Fprintf(os.Stderr, "%s\n", usage)
		os.Exit(1)
	}

	a := args{row: -1, col: -1}
	next := func(i int, name string) string {
		if i+1 >= len(os.Args) {
			fail("option %s requires a value", name)
		}
		return os.Args[i+1]
	}
	atoi := func(s, name string) int {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			fail("option %s requires a non-negative number, got %q", name, s)
		}
		return n
	}

	for i := 1; i < len(os.Args); i++ {
		switch os.Args[i] {
		case "-V":
			fmt.Printf("%s version: %s\n", os.Args[0], version)
			os.Exit(0)
		case "-x":
			// extract is the default mode
		case "-d":
			a.preview = true
		case "-n":
			a.notty = true
		case "-w":
			a.writeback = true
			a.editedfile = next(i, "-w")
			i++
		case "-i":
			a.infile = next(i, "-i")
			i++
		case "-o":
			a.outfile = next(i, "-o")
			i++
		case "-k":
			a.keypath = next(i, "-k")
			i++
		case "-r":
			a.row = atoi(next(i, "-r"), "-r")
			i++
		case "-c":
			a.col = atoi(next(i, "-c"), "-c")
			i++
		default:
			fail("unknown option: %q", os.Args[i])
		}
	}

	a.caretok = a.row >= 0 && a.col >= 0
	if a.keypath == "" && !a.caretok {
		fail("a target is required: -k keypath, or -r row -c col")
	}
	if a.keypath != "" && a.caretok {
		fail("-k and -r/-c are mutually exclusive")
	}
	if a.preview && !a.writeback {
		fail("-d only applies with -w")
	}
	return a
}

func main() {
	a := parseArgs()

	doc, err := readInput(a.infile)
	if err != nil {
		fatal("read input: %v", err)
	}

	target, caretMode, err := locateTarget(doc, a)
	if err != nil {
		fatal("%v", err)
	}

	if !a.writeback {
		var opts []strlit.EditableOption
		if caretMode {
			opts = append(opts, strlit.ExpandNewlines())
		}
		writeOutput(a.outfile, strlit.ToEditable(target.Body, opts...)+"\n")
		return
	}

	edited, err := os.ReadFile(a.editedfile)
	if err != nil {
		fatal("read edited file: %v", err)
	}
	body, wasJSON := strlit.ToLiteral(string(edited))
	if !wasJSON {
		fmt.Fprintln(os.Stderr, "warning: edited content is not valid JSON; writing it back as an escaped string")
	}

	spliced := strlit.SpliceOffsets(doc, target.Offsets[0], target.Offsets[1], body)
	if a.preview {
		color := a.outfile == "" && !a.notty && isatty.IsTerminal(os.Stdout.Fd())
		writeOutput(a.outfile, strlit.Preview(doc, spliced, color))
		return
	}
	writeOutput(a.outfile, spliced)
}

func locateTarget(doc string, a args) (strlit.EditTarget, bool, error) {
	if a.keypath != "" {
		t, err := strlit.LocatePath([]byte(doc), strings.Split(a.keypath, ".")...)
		return t, false, err
	}

	lines := strings.Split(doc, "\n")
	if a.row >= len(lines) {
		return strlit.EditTarget{}, true, fmt.Errorf("row %d past the last line", a.row)
	}
	caret := strlit.Pos{Row: a.row, Col: a.col}
	t, ok := strlit.Locate(lines[a.row], nil, caret)
	if !ok {
		return strlit.EditTarget{}, true, strlit.ErrNoTarget
	}
	t.Offsets = [2]int{
		strlit.PosToOffset(doc, t.Range.Start),
		strlit.PosToOffset(doc, t.Range.End),
	}
	return t, true, nil
}

func readInput(infile string) (string, error) {
	if infile != "" {
		data, err := os.ReadFile(infile)
		return string(data), err
	}
	data, err := io.ReadAll(os.Stdin)
	return string(data), err
}

func writeOutput(outfile, text string) {
	if outfile == "" {
		os.Stdout.WriteString(text)
		return
	}
	if err := os.WriteFile(outfile, []byte(text), 0o644); err != nil {
		fatal("write output: %v", err)
	}
}

func fatal(format string, v ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", v...)
	os.Exit(1)
}
