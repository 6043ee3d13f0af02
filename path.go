// path.go — the shared path resolver.
//
// One routine family walks a parsed path against the environment, producing
// either a value (reads, method receivers) or a place — a container plus
// key/index pair — used by set and del. Reads and writes going through the
// same walk keeps {a[i][j].k} and {set:a[i][j].k:...} from drifting apart.
//
// On maps, `.field` is equivalent to `[field]` except for the computed
// attributes (length, keys, values), which win over same-named keys; such
// keys remain reachable with index syntax. Lists accept only integer
// indices; negative indices count from the end. Strings index by code point.
package brace

// readPath resolves a full path to its value.
func (ip *Interpreter) readPath(p *PathExpr, env *Env) (Value, signal) {
	v, ok := env.Get(p.Base)
	if !ok {
		fail("unknown variable: %s", p.Base)
	}
	return ip.resolveSteps(v, p.Steps, env)
}

// resolveSteps applies accessor steps to a base value.
func (ip *Interpreter) resolveSteps(v Value, steps []PathStep, env *Env) (Value, signal) {
	for _, st := range steps {
		if st.Field != "" {
			v = ip.fieldRead(v, st.Field)
			continue
		}
		iv, sig := ip.evalValue(st.Index, env)
		if sig.kind != ctrlNone {
			return Nil, sig
		}
		v = ip.indexRead(v, iv)
	}
	return v, noSignal
}

// fieldRead resolves `.name`: computed attributes first, then map keys.
func (ip *Interpreter) fieldRead(v Value, name string) Value {
	if av, ok := attrRead(v, name); ok {
		return av
	}
	if v.Tag == VTMap {
		mo := v.Data.(*MapObject)
		if mv, ok := mo.Get(name); ok {
			return mv
		}
		fail("unknown key: %s", name)
	}
	fail("invalid attribute %q on %s", name, v.KindName())
	return Nil
}

// attrRead dispatches the computed attributes. ok is false when name is not
// an attribute of v's kind.
func attrRead(v Value, name string) (Value, bool) {
	switch v.Tag {
	case VTList:
		lo := v.Data.(*ListObject)
		switch name {
		case "length":
			return Int(int64(len(lo.Elems))), true
		case "pop":
			if len(lo.Elems) == 0 {
				fail("pop: empty list")
			}
			last := lo.Elems[len(lo.Elems)-1]
			lo.Elems = lo.Elems[:len(lo.Elems)-1]
			return last, true
		}
	case VTMap:
		mo := v.Data.(*MapObject)
		switch name {
		case "length":
			return Int(int64(len(mo.Keys))), true
		case "keys":
			keys := make([]Value, len(mo.Keys))
			for i, k := range mo.Keys {
				keys[i] = Str(k)
			}
			return List(keys), true
		case "values":
			vals := make([]Value, len(mo.Keys))
			for i, k := range mo.Keys {
				vals[i] = mo.Entries[k]
			}
			return List(vals), true
		}
	case VTStr:
		if name == "length" {
			return Int(int64(len([]rune(v.Data.(string))))), true
		}
	case VTInt, VTFloat:
		if name == "length" {
			return Int(int64(len(v.Render()))), true
		}
	case VTNil:
		if name == "length" {
			return Int(0), true
		}
	}
	return Nil, false
}

// indexRead resolves `[expr]` against lists, maps, strings and numbers
// (numbers index their decimal rendering).
func (ip *Interpreter) indexRead(v Value, idx Value) Value {
	switch v.Tag {
	case VTList:
		lo := v.Data.(*ListObject)
		i := wantIndex(idx, len(lo.Elems))
		return lo.Elems[i]
	case VTMap:
		mo := v.Data.(*MapObject)
		key := idx.Render()
		mv, ok := mo.Get(key)
		if !ok {
			fail("unknown key: %s", key)
		}
		return mv
	case VTStr:
		return indexStr(v.Data.(string), idx)
	case VTInt, VTFloat:
		return indexStr(v.Render(), idx)
	default:
		fail("cannot index %s", v.KindName())
		return Nil
	}
}

// indexStr returns the one-code-point string at idx; negative indices count
// from the end.
func indexStr(s string, idx Value) Value {
	runes := []rune(s)
	i := wantIndex(idx, len(runes))
	return Str(string(runes[i]))
}

// wantIndex coerces idx to an integer, resolves negative indices against n,
// and bounds-checks the result.
func wantIndex(idx Value, n int) int {
	num, ok := AsNumber(idx)
	if !ok {
		fail("invalid index")
	}
	var i int64
	switch num.Tag {
	case VTInt:
		i = num.Data.(int64)
	case VTFloat:
		f := num.Data.(float64)
		i = int64(f)
		if float64(i) != f {
			fail("invalid index")
		}
	}
	if i < 0 {
		i += int64(n)
	}
	if i < 0 || i >= int64(n) {
		fail("index out of range")
	}
	return int(i)
}

// placeKind discriminates assignment targets.
type placeKind int

const (
	placeName placeKind = iota
	placeList
	placeMap
)

// place identifies an assignment target resolved from a path.
type place struct {
	kind placeKind

	env  *Env
	name string

	list *ListObject
	idx  int

	m   *MapObject
	key string
}

// resolvePlace walks a path down to a place usable by set and del. The base
// name must be bound unless the path is a bare name, in which case set
// creates the binding.
func (ip *Interpreter) resolvePlace(p *PathExpr, env *Env) (place, signal) {
	if len(p.Steps) == 0 {
		return place{kind: placeName, env: env, name: p.Base}, noSignal
	}
	v, ok := env.Get(p.Base)
	if !ok {
		fail("unknown variable: %s", p.Base)
	}
	v, sig := ip.resolveSteps(v, p.Steps[:len(p.Steps)-1], env)
	if sig.kind != ctrlNone {
		return place{}, sig
	}

	last := p.Steps[len(p.Steps)-1]
	if last.Field != "" {
		if v.Tag != VTMap {
			fail("cannot assign to attribute %q on %s", last.Field, v.KindName())
		}
		if _, isAttr := attrRead(v, last.Field); isAttr {
			fail("cannot assign to attribute %q", last.Field)
		}
		return place{kind: placeMap, m: v.Data.(*MapObject), key: last.Field}, noSignal
	}

	iv, sig := ip.evalValue(last.Index, env)
	if sig.kind != ctrlNone {
		return place{}, sig
	}
	switch v.Tag {
	case VTList:
		lo := v.Data.(*ListObject)
		return place{kind: placeList, list: lo, idx: wantIndex(iv, len(lo.Elems))}, noSignal
	case VTMap:
		return place{kind: placeMap, m: v.Data.(*MapObject), key: iv.Render()}, noSignal
	case VTStr:
		fail("cannot assign into a string")
	default:
		fail("cannot index %s", v.KindName())
	}
	return place{}, noSignal
}

// assign writes v into the place. Bare names rewrite the frame where the
// name lives, else bind in the current frame.
func (pl place) assign(v Value) {
	switch pl.kind {
	case placeName:
		pl.env.Assign(pl.name, v)
	case placeList:
		pl.list.Elems[pl.idx] = v
	case placeMap:
		pl.m.Set(pl.key, v)
	}
}

// remove deletes the binding, element or key the place denotes.
func (pl place) remove() {
	switch pl.kind {
	case placeName:
		if !pl.env.Delete(pl.name) {
			fail("unknown variable: %s", pl.name)
		}
	case placeList:
		pl.list.Elems = append(pl.list.Elems[:pl.idx], pl.list.Elems[pl.idx+1:]...)
	case placeMap:
		if !pl.m.Delete(pl.key) {
			fail("unknown key: %s", pl.key)
		}
	}
}
