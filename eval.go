// eval.go — the tree-walking evaluator.
//
// Every node evaluates to a value. At statement position (program top level,
// function bodies, control-flow bodies and arms) the value is also emitted to
// the active sink; in value context the active sink is a collector whose
// contents fold into the enclosing argument's value. Function bodies
// evaluate against the caller's sink, so a function called at statement
// position writes straight to program output, while the same call inside an
// argument contributes its emissions to that argument's value unless a
// return supplies the call's value.
//
// break, continue and return travel outward as a signal returned alongside
// the value, caught by the nearest loop or call driver. Runtime failures use
// fail (see interpreter.go); they are not signals.
package brace

// ctrlKind discriminates non-local exits.
type ctrlKind int

const (
	ctrlNone ctrlKind = iota
	ctrlBreak
	ctrlContinue
	ctrlReturn
)

// signal is a non-local exit in flight. val is the return value for
// ctrlReturn; line/col locate the originating directive for diagnostics.
type signal struct {
	kind ctrlKind
	val  Value
	line int
	col  int
}

var noSignal = signal{}

// evalBody evaluates nodes at statement position, emitting each result to
// out. The first signal stops the walk and propagates.
func (ip *Interpreter) evalBody(nodes []Node, env *Env, out sink) signal {
	for _, n := range nodes {
		if t, ok := n.(*TextNode); ok {
			out.emitText(t.Text, t.Raw)
			continue
		}
		v, sig := ip.evalNode(n, env, out)
		if sig.kind != ctrlNone {
			return sig
		}
		out.emitValue(v)
	}
	return noSignal
}

// evalValue evaluates nodes in value context and folds the emissions into a
// single value: text fragments and directive results concatenate, Nils are
// dropped, and a lone value keeps its identity.
func (ip *Interpreter) evalValue(nodes []Node, env *Env) (Value, signal) {
	c := &collector{}
	if sig := ip.evalBody(nodes, env, c); sig.kind != ctrlNone {
		return Nil, sig
	}
	return c.value(), noSignal
}

// evalNode evaluates a single non-text node.
func (ip *Interpreter) evalNode(n Node, env *Env, out sink) (Value, signal) {
	ip.depth++
	if ip.depth > maxEvalDepth {
		line, col := n.Pos()
		ip.setPos(line, col, "")
		fail("evaluation depth limit exceeded")
	}
	defer func() { ip.depth-- }()

	switch n := n.(type) {
	case *TextNode:
		return Str(n.Text), noSignal
	case *PathNode:
		ip.setPos(n.Line, n.Col, n.Path.String())
		if len(n.Path.Steps) == 0 {
			if v, ok := env.Get(n.Path.Base); ok {
				return v, noSignal
			}
			// Bare builtins such as {break} and {return} are
			// zero-argument calls.
			if fn, ok := ip.builtins[n.Path.Base]; ok {
				return fn(ip, &CallNode{Line: n.Line, Col: n.Col, Head: n.Path.Base}, env, out)
			}
			fail("unknown variable: %s", n.Path.Base)
		}
		return ip.readPath(n.Path, env)
	case *CallNode:
		ip.setPos(n.Line, n.Col, n.name())
		if n.HeadPath != nil {
			return ip.callPath(n, env, out)
		}
		if fn, ok := ip.builtins[n.Head]; ok {
			return fn(ip, n, env, out)
		}
		v, ok := env.Get(n.Head)
		if !ok {
			fail("unknown directive")
		}
		return ip.callValue(v, n, env, out)
	default:
		fail("unexpected node")
		return Nil, noSignal
	}
}

// evalArgs eagerly evaluates every argument of call in value context, then
// restores the interpreter's diagnostic position to the call itself.
func (ip *Interpreter) evalArgs(call *CallNode, env *Env) ([]Value, signal) {
	vals := make([]Value, len(call.Args))
	for i, arg := range call.Args {
		v, sig := ip.evalValue(arg, env)
		if sig.kind != ctrlNone {
			return nil, sig
		}
		vals[i] = v
	}
	ip.setPos(call.Line, call.Col, call.name())
	return vals, noSignal
}

// callValue invokes a callee value with the call's arguments. Only functions
// are callable.
func (ip *Interpreter) callValue(callee Value, call *CallNode, env *Env, out sink) (Value, signal) {
	if callee.Tag != VTFunc {
		fail("not callable: %s", callee.KindName())
	}
	args, sig := ip.evalArgs(call, env)
	if sig.kind != ctrlNone {
		return Nil, sig
	}
	return ip.callFun(callee.Data.(*Fun), args, out)
}

// callFun pushes a call frame derived from the closure environment, binds
// parameters in order, and evaluates the body against the caller's sink.
// The call's value is the value delivered by return, else Nil. In value
// context the body's emissions are held until it finishes: a return
// discards them, otherwise they fold into the caller's collector.
func (ip *Interpreter) callFun(f *Fun, args []Value, out sink) (Value, signal) {
	if len(args) != len(f.Params) {
		fail("expected %d arguments, got %d", len(f.Params), len(args))
	}
	frame := NewEnv(f.Env)
	for i, p := range f.Params {
		frame.Define(p, args[i])
	}
	body := out
	var held *collector
	if _, ok := out.(*collector); ok {
		held = &collector{}
		body = held
	}
	sig := ip.evalBody(f.Body, frame, body)
	switch sig.kind {
	case ctrlNone:
		if held != nil {
			c := out.(*collector)
			c.vals = append(c.vals, held.vals...)
		}
		return Nil, noSignal
	case ctrlReturn:
		return sig.val, noSignal
	case ctrlBreak:
		ip.setPos(sig.line, sig.col, "break")
		fail("break outside of loop")
	default:
		ip.setPos(sig.line, sig.col, "continue")
		fail("continue outside of loop")
	}
	return Nil, noSignal
}

// callPath invokes through a path head: container methods first, otherwise
// the path must resolve to a function value.
func (ip *Interpreter) callPath(call *CallNode, env *Env, out sink) (Value, signal) {
	p := call.HeadPath
	base, ok := env.Get(p.Base)
	if !ok {
		fail("unknown variable: %s", p.Base)
	}
	recv, sig := ip.resolveSteps(base, p.Steps[:len(p.Steps)-1], env)
	if sig.kind != ctrlNone {
		return Nil, sig
	}

	last := p.Steps[len(p.Steps)-1]
	var callee Value
	if last.Field != "" {
		if v, sig, ok := ip.methodCall(recv, last.Field, call, env); ok {
			return v, sig
		}
		// Not a method: the field may hold a function value.
		callee = ip.fieldRead(recv, last.Field)
	} else {
		iv, sig := ip.evalValue(last.Index, env)
		if sig.kind != ctrlNone {
			return Nil, sig
		}
		callee = ip.indexRead(recv, iv)
	}
	if callee.Tag != VTFunc {
		fail("not callable: %s", callee.KindName())
	}
	args, sig := ip.evalArgs(call, env)
	if sig.kind != ctrlNone {
		return Nil, sig
	}
	return ip.callFun(callee.Data.(*Fun), args, out)
}

// methodCall dispatches the argument-taking container methods. ok is false
// when name is not a method of the receiver's kind, letting the caller fall
// back to field resolution.
func (ip *Interpreter) methodCall(recv Value, name string, call *CallNode, env *Env) (Value, signal, bool) {
	switch recv.Tag {
	case VTList:
		lo := recv.Data.(*ListObject)
		switch name {
		case "push":
			args, sig := ip.evalArgs(call, env)
			if sig.kind != ctrlNone {
				return Nil, sig, true
			}
			if len(args) == 0 {
				fail("push: expected at least 1 argument")
			}
			lo.Elems = append(lo.Elems, args...)
			return Nil, noSignal, true
		case "index":
			args, sig := ip.evalArgs(call, env)
			if sig.kind != ctrlNone {
				return Nil, sig, true
			}
			if len(args) != 1 {
				fail("index: expected 1 argument, got %d", len(args))
			}
			for i, e := range lo.Elems {
				if Equal(e, args[0]) {
					return Int(int64(i)), noSignal, true
				}
			}
			return Int(-1), noSignal, true
		}
	case VTMap:
		mo := recv.Data.(*MapObject)
		switch name {
		case "has":
			args, sig := ip.evalArgs(call, env)
			if sig.kind != ctrlNone {
				return Nil, sig, true
			}
			if len(args) != 1 {
				fail("has: expected 1 argument, got %d", len(args))
			}
			_, ok := mo.Get(args[0].Render())
			return Bool(ok), noSignal, true
		}
	case VTStr:
		s := recv.Data.(string)
		switch name {
		case "index":
			args, sig := ip.evalArgs(call, env)
			if sig.kind != ctrlNone {
				return Nil, sig, true
			}
			if len(args) != 1 {
				fail("index: expected 1 argument, got %d", len(args))
			}
			want := args[0].Render()
			for i, r := range []rune(s) {
				if string(r) == want {
					return Int(int64(i)), noSignal, true
				}
			}
			return Int(-1), noSignal, true
		}
	}
	return Nil, noSignal, false
}
