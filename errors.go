// errors.go — user-facing error wrapping and caret-snippet rendering.
//
// Turns lexer, parser and runtime diagnostics into readable snippets with a
// caret pointing at the offending column:
//
//	RUNTIME ERROR in examples/enigma.txt at 3:11: div: division by zero
//
//	   2 | {set:n:{args.length};}
//	   3 | {set:step:{div:26:{n};}
//	     |           ^
//	   4 | ...
//
// The snippet shows up to one line of context before and after the error.
// Errors of other types pass through unchanged.
package brace

import (
	"fmt"
	"strings"
)

// RuntimeError is an evaluation-time failure. Head names the directive that
// failed; Line and Col are 1-based.
type RuntimeError struct {
	Line int
	Col  int
	Head string
	Msg  string
}

func (e *RuntimeError) Error() string {
	if e.Head != "" {
		return fmt.Sprintf("runtime error at %d:%d: %s: %s", e.Line, e.Col, e.Head, e.Msg)
	}
	return fmt.Sprintf("runtime error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// WrapErrorWithSource renders err against src as a caret snippet without a
// source name. See WrapErrorWithName.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName returns an error whose message is a caret-annotated
// snippet of src when err is a brace lex, parse, or runtime error. Other
// errors are returned unchanged.
func WrapErrorWithName(err error, srcName, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", snippet(src, "LEXICAL ERROR", srcName, e.Line, e.Col, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", snippet(src, "PARSE ERROR", srcName, e.Line, e.Col, e.Msg))
	case *RuntimeError:
		msg := e.Msg
		if e.Head != "" {
			msg = e.Head + ": " + msg
		}
		return fmt.Errorf("%s", snippet(src, "RUNTIME ERROR", srcName, e.Line, e.Col, msg))
	default:
		return err
	}
}

// snippet builds the multi-line rendering. Coordinates are 1-based and
// clamped to the source bounds so rendering never fails.
func snippet(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
