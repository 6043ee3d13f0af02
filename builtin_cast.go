// builtin_cast.go — type coercion and inspection directives.
package brace

func registerCastBuiltins(ip *Interpreter) {
	ip.register("str", eager(1, 1, func(args []Value) Value {
		return Str(args[0].Render())
	}))

	// int truncates floats toward zero; strings must parse as a number.
	ip.register("int", eager(1, 1, func(args []Value) Value {
		switch args[0].Tag {
		case VTInt:
			return args[0]
		case VTFloat:
			return Int(int64(args[0].Data.(float64)))
		case VTBool:
			if args[0].Data.(bool) {
				return Int(1)
			}
			return Int(0)
		case VTStr:
			n, ok := parseNumber(args[0].Data.(string))
			if !ok {
				fail("cannot convert %q to int", args[0].Data.(string))
			}
			if n.Tag == VTFloat {
				return Int(int64(n.Data.(float64)))
			}
			return n
		default:
			fail("cannot convert %s to int", args[0].KindName())
			return Nil
		}
	}))

	ip.register("float", eager(1, 1, func(args []Value) Value {
		switch args[0].Tag {
		case VTFloat:
			return args[0]
		case VTInt:
			return Float(float64(args[0].Data.(int64)))
		case VTBool:
			if args[0].Data.(bool) {
				return Float(1)
			}
			return Float(0)
		case VTStr:
			n, ok := parseNumber(args[0].Data.(string))
			if !ok {
				fail("cannot convert %q to float", args[0].Data.(string))
			}
			return Float(numFloat(n))
		default:
			fail("cannot convert %s to float", args[0].KindName())
			return Nil
		}
	}))

	ip.register("bool", eager(1, 1, func(args []Value) Value {
		return Bool(args[0].Truthy())
	}))

	// type — the kind name of its operand.
	ip.register("type", eager(1, 1, func(args []Value) Value {
		return Str(args[0].KindName())
	}))
}
