// builtin_core.go — binding, arithmetic, bitwise, comparison and logic
// directives.
package brace

import "math"

func registerCoreBuiltins(ip *Interpreter) {
	// set:path:value — assign through a place; a bare unbound name is
	// created in the innermost frame, an unbound path prefix is an error.
	ip.register("set", func(ip *Interpreter, call *CallNode, env *Env, out sink) (Value, signal) {
		if call.ArgPath == nil || len(call.Args) != 1 {
			fail("expected a path and a value")
		}
		v, sig := ip.evalValue(call.Args[0], env)
		if sig.kind != ctrlNone {
			return Nil, sig
		}
		pl, sig := ip.resolvePlace(call.ArgPath, env)
		if sig.kind != ctrlNone {
			return Nil, sig
		}
		pl.assign(v)
		return Nil, noSignal
	})

	// del:path — drop a binding, list element, or map key.
	ip.register("del", func(ip *Interpreter, call *CallNode, env *Env, out sink) (Value, signal) {
		if call.ArgPath == nil || len(call.Args) != 0 {
			fail("expected a path")
		}
		pl, sig := ip.resolvePlace(call.ArgPath, env)
		if sig.kind != ctrlNone {
			return Nil, sig
		}
		pl.remove()
		return Nil, noSignal
	})

	// add sums numbers; when every operand is a string and at least one is
	// not numeric, it concatenates instead.
	ip.register("add", eager(2, -1, func(args []Value) Value {
		if allStrings(args) && !allNumeric(args) {
			return concatStrings(args)
		}
		acc := wantNumber(args[0])
		for _, a := range args[1:] {
			b := wantNumber(a)
			if acc.Tag == VTInt && b.Tag == VTInt {
				acc = Int(acc.Data.(int64) + b.Data.(int64))
			} else {
				acc = Float(numFloat(acc) + numFloat(b))
			}
		}
		return acc
	}))

	ip.register("sub", eager(2, 2, func(args []Value) Value {
		a, b := wantNumber(args[0]), wantNumber(args[1])
		if a.Tag == VTInt && b.Tag == VTInt {
			return Int(a.Data.(int64) - b.Data.(int64))
		}
		return Float(numFloat(a) - numFloat(b))
	}))

	ip.register("mul", eager(2, -1, func(args []Value) Value {
		acc := wantNumber(args[0])
		for _, x := range args[1:] {
			b := wantNumber(x)
			if acc.Tag == VTInt && b.Tag == VTInt {
				acc = Int(acc.Data.(int64) * b.Data.(int64))
			} else {
				acc = Float(numFloat(acc) * numFloat(b))
			}
		}
		return acc
	}))

	// div — integer division when both operands are Int, else float.
	ip.register("div", eager(2, 2, func(args []Value) Value {
		a, b := wantNumber(args[0]), wantNumber(args[1])
		if a.Tag == VTInt && b.Tag == VTInt {
			d := b.Data.(int64)
			if d == 0 {
				fail("division by zero")
			}
			return Int(a.Data.(int64) / d)
		}
		return Float(numFloat(a) / numFloat(b))
	}))

	// fdiv — always float division.
	ip.register("fdiv", eager(2, 2, func(args []Value) Value {
		a, b := wantNumber(args[0]), wantNumber(args[1])
		return Float(numFloat(a) / numFloat(b))
	}))

	ip.register("mod", eager(2, 2, func(args []Value) Value {
		a, b := wantNumber(args[0]), wantNumber(args[1])
		if a.Tag == VTInt && b.Tag == VTInt {
			d := b.Data.(int64)
			if d == 0 {
				fail("modulus by zero")
			}
			return Int(a.Data.(int64) % d)
		}
		return Float(math.Mod(numFloat(a), numFloat(b)))
	}))

	ip.register("neg", eager(1, 1, func(args []Value) Value {
		n := wantNumber(args[0])
		if n.Tag == VTInt {
			return Int(-n.Data.(int64))
		}
		return Float(-n.Data.(float64))
	}))

	// Bitwise operations are Int-only.
	ip.register("band", eager(2, 2, func(args []Value) Value {
		return Int(wantInt(args[0]) & wantInt(args[1]))
	}))
	ip.register("bor", eager(2, 2, func(args []Value) Value {
		return Int(wantInt(args[0]) | wantInt(args[1]))
	}))
	ip.register("bxor", eager(2, 2, func(args []Value) Value {
		return Int(wantInt(args[0]) ^ wantInt(args[1]))
	}))
	ip.register("bnot", eager(1, 1, func(args []Value) Value {
		return Int(^wantInt(args[0]))
	}))
	ip.register("shl", eager(2, 2, func(args []Value) Value {
		n := wantInt(args[1])
		if n < 0 || n >= 64 {
			fail("shift out of range")
		}
		return Int(wantInt(args[0]) << uint(n))
	}))
	ip.register("shr", eager(2, 2, func(args []Value) Value {
		n := wantInt(args[1])
		if n < 0 || n >= 64 {
			fail("shift out of range")
		}
		return Int(wantInt(args[0]) >> uint(n))
	}))

	// eq/neq chain pairwise over two or more operands.
	ip.register("eq", eager(2, -1, func(args []Value) Value {
		for i := 1; i < len(args); i++ {
			if !Equal(args[i-1], args[i]) {
				return Bool(false)
			}
		}
		return Bool(true)
	}))
	ip.register("neq", eager(2, -1, func(args []Value) Value {
		for i := 1; i < len(args); i++ {
			if !Equal(args[i-1], args[i]) {
				return Bool(true)
			}
		}
		return Bool(false)
	}))

	ip.register("lt", eager(2, 2, func(args []Value) Value {
		return Bool(compare(args[0], args[1]) < 0)
	}))
	ip.register("le", eager(2, 2, func(args []Value) Value {
		return Bool(compare(args[0], args[1]) <= 0)
	}))
	ip.register("gt", eager(2, 2, func(args []Value) Value {
		return Bool(compare(args[0], args[1]) > 0)
	}))
	ip.register("ge", eager(2, 2, func(args []Value) Value {
		return Bool(compare(args[0], args[1]) >= 0)
	}))

	// and/or short-circuit over unevaluated arguments.
	ip.register("and", func(ip *Interpreter, call *CallNode, env *Env, out sink) (Value, signal) {
		wantArity(call, 2, -1)
		for _, arg := range call.Args {
			v, sig := ip.evalValue(arg, env)
			if sig.kind != ctrlNone {
				return Nil, sig
			}
			if !v.Truthy() {
				return Bool(false), noSignal
			}
		}
		return Bool(true), noSignal
	})
	ip.register("or", func(ip *Interpreter, call *CallNode, env *Env, out sink) (Value, signal) {
		wantArity(call, 2, -1)
		for _, arg := range call.Args {
			v, sig := ip.evalValue(arg, env)
			if sig.kind != ctrlNone {
				return Nil, sig
			}
			if v.Truthy() {
				return Bool(true), noSignal
			}
		}
		return Bool(false), noSignal
	})
	ip.register("not", eager(1, 1, func(args []Value) Value {
		return Bool(!args[0].Truthy())
	}))
}

// eager wraps a pure builtin: arguments are evaluated up front and arity is
// checked against [min, max] (max < 0 means unbounded).
func eager(min, max int, fn func(args []Value) Value) builtinFn {
	return func(ip *Interpreter, call *CallNode, env *Env, out sink) (Value, signal) {
		wantArity(call, min, max)
		args, sig := ip.evalArgs(call, env)
		if sig.kind != ctrlNone {
			return Nil, sig
		}
		return fn(args), noSignal
	}
}

// wantArity fails unless the call has between min and max arguments.
func wantArity(call *CallNode, min, max int) {
	n := len(call.Args)
	if n < min || (max >= 0 && n > max) {
		if min == max {
			fail("expected %d arguments, got %d", min, n)
		} else if max < 0 {
			fail("expected at least %d arguments, got %d", min, n)
		} else {
			fail("expected %d to %d arguments, got %d", min, max, n)
		}
	}
}

// wantNumber coerces v to Int or Float or fails.
func wantNumber(v Value) Value {
	n, ok := AsNumber(v)
	if !ok {
		fail("invalid number: %s", v.Render())
	}
	return n
}

// wantInt coerces v to an Int or fails (floats are not silently truncated).
func wantInt(v Value) int64 {
	n, ok := AsNumber(v)
	if !ok || n.Tag != VTInt {
		fail("expected an integer")
	}
	return n.Data.(int64)
}

func allStrings(args []Value) bool {
	for _, a := range args {
		if a.Tag != VTStr {
			return false
		}
	}
	return true
}

func allNumeric(args []Value) bool {
	for _, a := range args {
		if _, ok := AsNumber(a); !ok {
			return false
		}
	}
	return true
}

func concatStrings(args []Value) Value {
	n := 0
	for _, a := range args {
		n += len(a.Data.(string))
	}
	buf := make([]byte, 0, n)
	for _, a := range args {
		buf = append(buf, a.Data.(string)...)
	}
	return Str(string(buf))
}

// compare orders two numbers numerically or two strings lexicographically.
func compare(a, b Value) int {
	if na, ok := AsNumber(a); ok {
		if nb, ok := AsNumber(b); ok {
			if na.Tag == VTInt && nb.Tag == VTInt {
				x, y := na.Data.(int64), nb.Data.(int64)
				switch {
				case x < y:
					return -1
				case x > y:
					return 1
				default:
					return 0
				}
			}
			x, y := numFloat(na), numFloat(nb)
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			default:
				return 0
			}
		}
	}
	if a.Tag == VTStr && b.Tag == VTStr {
		x, y := a.Data.(string), b.Data.(string)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	}
	fail("cannot order %s and %s", a.KindName(), b.KindName())
	return 0
}
