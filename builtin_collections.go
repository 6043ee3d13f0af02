// builtin_collections.go — list and map construction.
//
// Element access, mutation and the container methods (.length, .push, .pop,
// .index, .keys, .values, .has) go through the path resolver and the method
// dispatch in eval.go; only the constructors are directives.
package brace

func registerCollectionBuiltins(ip *Interpreter) {
	// list:e1:e2:... — a fresh list; {list;} is empty.
	ip.register("list", func(ip *Interpreter, call *CallNode, env *Env, out sink) (Value, signal) {
		args, sig := ip.evalArgs(call, env)
		if sig.kind != ctrlNone {
			return Nil, sig
		}
		return List(args), noSignal
	})

	// map:k1:v1:k2:v2:... — a fresh map; keys are stringified and keep
	// first-insertion order.
	ip.register("map", func(ip *Interpreter, call *CallNode, env *Env, out sink) (Value, signal) {
		if len(call.Args)%2 != 0 {
			fail("expected an even number of arguments, got %d", len(call.Args))
		}
		args, sig := ip.evalArgs(call, env)
		if sig.kind != ctrlNone {
			return Nil, sig
		}
		mo := NewMapObject()
		for i := 0; i < len(args); i += 2 {
			mo.Set(args[i].Render(), args[i+1])
		}
		return MapVal(mo), noSignal
	})
}
