// builtin_control.go — conditionals, loops, non-local exits and function
// definition.
//
// These are the lazy directives: branch and body arguments stay unevaluated
// until the form decides to run them, and bodies evaluate at statement
// position against the caller's sink. break/continue/return surface as
// signals (see eval.go) caught here by the loop drivers or, for return, by
// the function call driver.
package brace

func registerControlBuiltins(ip *Interpreter) {
	// if:cond:then[:else] — evaluates exactly one branch.
	ip.register("if", func(ip *Interpreter, call *CallNode, env *Env, out sink) (Value, signal) {
		wantArity(call, 2, 3)
		cond, sig := ip.evalValue(call.Args[0], env)
		if sig.kind != ctrlNone {
			return Nil, sig
		}
		if cond.Truthy() {
			return Nil, ip.evalBody(call.Args[1], env, out)
		}
		if len(call.Args) == 3 {
			return Nil, ip.evalBody(call.Args[2], env, out)
		}
		return Nil, noSignal
	})

	// while:cond:body — cond re-evaluated before every iteration.
	ip.register("while", func(ip *Interpreter, call *CallNode, env *Env, out sink) (Value, signal) {
		wantArity(call, 2, 2)
		for {
			cond, sig := ip.evalValue(call.Args[0], env)
			if sig.kind != ctrlNone {
				return Nil, sig
			}
			if !cond.Truthy() {
				return Nil, noSignal
			}
			if sig := ip.evalBody(call.Args[1], env, out); sig.kind != ctrlNone {
				if sig.kind == ctrlBreak {
					return Nil, noSignal
				}
				if sig.kind != ctrlContinue {
					return Nil, sig
				}
			}
		}
	})

	// for:var:end:body | for:var:start:end:body | for:var:start:end:step:body
	// Half-open range; zero step fails. The loop variable is assigned with
	// set semantics before each iteration.
	ip.register("for", func(ip *Interpreter, call *CallNode, env *Env, out sink) (Value, signal) {
		wantArity(call, 3, 5)
		name, sig := ip.evalValue(call.Args[0], env)
		if sig.kind != ctrlNone {
			return Nil, sig
		}
		ident := name.Render()
		if ident == "" {
			fail("invalid loop variable")
		}

		bounds := make([]Value, 0, 3)
		for _, arg := range call.Args[1 : len(call.Args)-1] {
			v, sig := ip.evalValue(arg, env)
			if sig.kind != ctrlNone {
				return Nil, sig
			}
			bounds = append(bounds, wantNumber(v))
		}
		ip.setPos(call.Line, call.Col, "for")

		start, end, step := Int(0), bounds[0], Int(1)
		switch len(bounds) {
		case 2:
			start, end = bounds[0], bounds[1]
		case 3:
			start, end, step = bounds[0], bounds[1], bounds[2]
		}

		body := call.Args[len(call.Args)-1]
		if start.Tag == VTInt && end.Tag == VTInt && step.Tag == VTInt {
			s, e, st := start.Data.(int64), end.Data.(int64), step.Data.(int64)
			if st == 0 {
				fail("zero-size step")
			}
			for i := s; (st > 0 && i < e) || (st < 0 && i > e); i += st {
				env.Assign(ident, Int(i))
				sig := ip.evalBody(body, env, out)
				if sig.kind == ctrlBreak {
					return Nil, noSignal
				}
				if sig.kind != ctrlNone && sig.kind != ctrlContinue {
					return Nil, sig
				}
			}
			return Nil, noSignal
		}

		s, e, st := numFloat(start), numFloat(end), numFloat(step)
		if st == 0 {
			fail("zero-size step")
		}
		for i := s; (st > 0 && i < e) || (st < 0 && i > e); i += st {
			env.Assign(ident, Float(i))
			sig := ip.evalBody(body, env, out)
			if sig.kind == ctrlBreak {
				return Nil, noSignal
			}
			if sig.kind != ctrlNone && sig.kind != ctrlContinue {
				return Nil, sig
			}
		}
		return Nil, noSignal
	})

	// foreach:var:collection:body — list elements in order, map values in
	// insertion order.
	ip.register("foreach", func(ip *Interpreter, call *CallNode, env *Env, out sink) (Value, signal) {
		wantArity(call, 3, 3)
		name, sig := ip.evalValue(call.Args[0], env)
		if sig.kind != ctrlNone {
			return Nil, sig
		}
		ident := name.Render()
		if ident == "" {
			fail("invalid loop variable")
		}
		coll, sig := ip.evalValue(call.Args[1], env)
		if sig.kind != ctrlNone {
			return Nil, sig
		}
		ip.setPos(call.Line, call.Col, "foreach")
		body := call.Args[2]

		run := func(v Value) (done bool, sig signal) {
			env.Assign(ident, v)
			s := ip.evalBody(body, env, out)
			switch s.kind {
			case ctrlNone, ctrlContinue:
				return false, noSignal
			case ctrlBreak:
				return true, noSignal
			default:
				return true, s
			}
		}

		switch coll.Tag {
		case VTList:
			lo := coll.Data.(*ListObject)
			for i := 0; i < len(lo.Elems); i++ {
				if done, sig := run(lo.Elems[i]); done {
					return Nil, sig
				}
			}
		case VTMap:
			mo := coll.Data.(*MapObject)
			keys := append([]string(nil), mo.Keys...)
			for _, k := range keys {
				v, ok := mo.Get(k)
				if !ok {
					continue
				}
				if done, sig := run(v); done {
					return Nil, sig
				}
			}
		case VTStr:
			for _, r := range coll.Data.(string) {
				if done, sig := run(Str(string(r))); done {
					return Nil, sig
				}
			}
		default:
			fail("cannot iterate %s", coll.KindName())
		}
		return Nil, noSignal
	})

	ip.register("break", func(ip *Interpreter, call *CallNode, env *Env, out sink) (Value, signal) {
		wantArity(call, 0, 0)
		return Nil, signal{kind: ctrlBreak, line: call.Line, col: call.Col}
	})

	ip.register("continue", func(ip *Interpreter, call *CallNode, env *Env, out sink) (Value, signal) {
		wantArity(call, 0, 0)
		return Nil, signal{kind: ctrlContinue, line: call.Line, col: call.Col}
	})

	// return[:value] — delivered to the nearest enclosing function call.
	ip.register("return", func(ip *Interpreter, call *CallNode, env *Env, out sink) (Value, signal) {
		wantArity(call, 0, 1)
		val := Nil
		if len(call.Args) == 1 {
			v, sig := ip.evalValue(call.Args[0], env)
			if sig.kind != ctrlNone {
				return Nil, sig
			}
			val = v
		}
		return Nil, signal{kind: ctrlReturn, val: val, line: call.Line, col: call.Col}
	})

	// func:{name:p1:p2:...;}:body — defines a closure over the current
	// environment and binds it under name.
	ip.register("func", func(ip *Interpreter, call *CallNode, env *Env, out sink) (Value, signal) {
		wantArity(call, 2, 2)
		name, params := funcHeader(call.Args[0])
		f := &Fun{Name: name, Params: params, Body: call.Args[1], Env: env}
		env.Assign(name, FunVal(f))
		return Nil, noSignal
	})
}

// funcHeader destructures the {name:p1:p2;} header directive of func.
func funcHeader(nodes []Node) (string, []string) {
	if len(nodes) != 1 {
		fail("invalid function header")
	}
	switch h := nodes[0].(type) {
	case *PathNode:
		if len(h.Path.Steps) != 0 {
			fail("invalid function name")
		}
		return h.Path.Base, nil
	case *CallNode:
		if h.Head == "" {
			fail("invalid function name")
		}
		params := make([]string, len(h.Args))
		for i, arg := range h.Args {
			if len(arg) != 1 {
				fail("invalid parameter name")
			}
			t, ok := arg[0].(*TextNode)
			if !ok || t.Text == "" {
				fail("invalid parameter name")
			}
			params[i] = t.Text
		}
		return h.Head, params
	default:
		fail("invalid function header")
		return "", nil
	}
}
