// interpreter.go — public API surface of the brace runtime.
//
// An Interpreter owns the global environment and the builtin directive table.
// The canonical entry points are:
//
//	ip := brace.NewInterpreter()
//	ip.SetArgs(argv)                      // expose CLI arguments as {args}
//	err := ip.RunSource(src, os.Stdout)   // parse + evaluate, output to w
//
// RunProgram evaluates an already-parsed Program, which hosts use when they
// want to report parse errors separately (the CLI does). Evaluation in the
// persistent Global environment means successive RunSource calls see each
// other's bindings, which is what the REPL builds on.
//
// Runtime failures are raised internally via fail (a panic carrying rtErr)
// and recovered at the Run* boundary into a *RuntimeError holding the source
// position and head of the directive that was being evaluated. There is no
// user-visible catch: the first error aborts the program.
package brace

import (
	"fmt"
	"io"
)

// Version of the brace language runtime.
const Version = "0.4.0"

// maxEvalDepth bounds nested directive evaluation (and therefore recursion).
// Exceeding it is a runtime error, not a stack overflow.
const maxEvalDepth = 10000

// builtinFn implements one builtin directive. Builtins receive their call
// node unevaluated so control-flow forms can evaluate arguments lazily;
// eager builtins start with evalArgs.
type builtinFn func(ip *Interpreter, call *CallNode, env *Env, out sink) (Value, signal)

// Interpreter evaluates brace programs.
type Interpreter struct {
	// Global is the persistent program environment. CLI arguments and
	// top-level bindings live here.
	Global *Env

	builtins map[string]builtinFn

	depth int
	line  int
	col   int
	head  string
}

// NewInterpreter returns an interpreter with the full builtin set installed.
func NewInterpreter() *Interpreter {
	ip := &Interpreter{
		Global:   NewEnv(nil),
		builtins: make(map[string]builtinFn),
	}
	registerCoreBuiltins(ip)
	registerCollectionBuiltins(ip)
	registerControlBuiltins(ip)
	registerCastBuiltins(ip)
	return ip
}

// register installs a builtin directive under name.
func (ip *Interpreter) register(name string, fn builtinFn) {
	ip.builtins[name] = fn
}

// SetArgs binds the host-supplied argument strings as the global args list.
func (ip *Interpreter) SetArgs(args []string) {
	elems := make([]Value, len(args))
	for i, a := range args {
		elems[i] = Str(a)
	}
	ip.Global.Define("args", List(elems))
}

// RunSource parses and evaluates src, writing program output to w.
func (ip *Interpreter) RunSource(src string, w io.Writer) error {
	prog, err := Parse(src)
	if err != nil {
		return err
	}
	return ip.RunProgram(prog, w)
}

// RunProgram evaluates a parsed program in the Global environment, writing
// output to w. The returned error is a *RuntimeError on evaluation failure.
func (ip *Interpreter) RunProgram(prog *Program, w io.Writer) (err error) {
	var out sink = &writerSink{w: w}
	if prog.Oneline {
		out = &onelineSink{inner: out}
	}

	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(rtErr)
			if !ok {
				panic(r)
			}
			err = &RuntimeError{Line: ip.line, Col: ip.col, Head: ip.head, Msg: re.msg}
		}
	}()

	ip.depth = 0
	sig := ip.evalBody(prog.Nodes, ip.Global, out)
	switch sig.kind {
	case ctrlNone:
		return nil
	case ctrlReturn:
		return &RuntimeError{Line: sig.line, Col: sig.col, Head: "return", Msg: "return outside of function"}
	case ctrlBreak:
		return &RuntimeError{Line: sig.line, Col: sig.col, Head: "break", Msg: "break outside of loop"}
	default:
		return &RuntimeError{Line: sig.line, Col: sig.col, Head: "continue", Msg: "continue outside of loop"}
	}
}

// rtErr is the internal carrier of a runtime failure. It is panicked by fail
// and recovered at the RunProgram boundary, where the interpreter's current
// position and directive head turn it into a *RuntimeError.
type rtErr struct {
	msg string
}

// fail aborts evaluation with a runtime error.
func fail(format string, args ...interface{}) {
	panic(rtErr{msg: fmt.Sprintf(format, args...)})
}

// setPos records the directive currently being evaluated, for diagnostics.
func (ip *Interpreter) setPos(line, col int, head string) {
	ip.line, ip.col, ip.head = line, col, head
}
