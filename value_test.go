package brace

import "testing"

func Test_Value_Render(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Nil, ""},
		{Int(42), "42"},
		{Int(-7), "-7"},
		{Float(0.5), "0.5"},
		{Float(3), "3"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Str("hi"), "hi"},
		{List(nil), "<List>"},
		{MapVal(NewMapObject()), "<Map>"},
		{FunVal(&Fun{}), "<Function>"},
	}
	for _, c := range cases {
		if got := c.v.Render(); got != c.want {
			t.Fatalf("Render(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func Test_Value_FloatRoundTrip(t *testing.T) {
	for _, f := range []float64{0.1, 1.0 / 3.0, 1e20, -2.5} {
		s := formatFloat(f)
		n, ok := parseNumber(s)
		if !ok || n.Tag != VTFloat || n.Data.(float64) != f {
			t.Fatalf("%v did not round-trip through %q", f, s)
		}
	}
}

func Test_Value_Truthy(t *testing.T) {
	truthy := []Value{Int(1), Int(-1), Float(0.5), Bool(true), Str("x"), FunVal(&Fun{})}
	falsy := []Value{Nil, Int(0), Float(0), Bool(false), Str(""), Str("0"), List(nil), MapVal(NewMapObject())}
	for _, v := range truthy {
		if !v.Truthy() {
			t.Fatalf("%v should be truthy", v)
		}
	}
	for _, v := range falsy {
		if v.Truthy() {
			t.Fatalf("%v should be falsy", v)
		}
	}
	if !List([]Value{Int(1)}).Truthy() {
		t.Fatal("non-empty list should be truthy")
	}
}

func Test_Value_ParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want Value
	}{
		{"42", Int(42)},
		{"-3", Int(-3)},
		{"0x1f", Int(31)},
		{"0b101", Int(5)},
		{"-0x10", Int(-16)},
		{"2.5", Float(2.5)},
		{"1e3", Float(1000)},
	}
	for _, c := range cases {
		got, ok := parseNumber(c.in)
		if !ok || got != c.want {
			t.Fatalf("parseNumber(%q) = %v/%v, want %v", c.in, got, ok, c.want)
		}
	}
	for _, bad := range []string{"", "abc", "1x", "0x", "1.2.3", "12 "} {
		if _, ok := parseNumber(bad); ok {
			t.Fatalf("parseNumber(%q) should fail", bad)
		}
	}
}

func Test_Value_Equal(t *testing.T) {
	if !Equal(Int(1), Float(1)) {
		t.Fatal("1 == 1.0")
	}
	if !Equal(Str("2"), Int(2)) {
		t.Fatal("numeric strings compare numerically")
	}
	if Equal(Str("a"), Int(2)) {
		t.Fatal("unrelated kinds are unequal")
	}
	if !Equal(Nil, Str("")) {
		t.Fatal("nil equals the empty string")
	}

	a := List([]Value{Int(1), Str("x")})
	b := List([]Value{Int(1), Str("x")})
	if !Equal(a, b) {
		t.Fatal("structural list equality")
	}
	b.Data.(*ListObject).Elems[1] = Str("y")
	if Equal(a, b) {
		t.Fatal("lists with different elements are unequal")
	}

	m1, m2 := NewMapObject(), NewMapObject()
	m1.Set("k", Int(1))
	m2.Set("k", Int(1))
	if !Equal(MapVal(m1), MapVal(m2)) {
		t.Fatal("structural map equality")
	}
}

func Test_MapObject_Order(t *testing.T) {
	mo := NewMapObject()
	mo.Set("b", Int(1))
	mo.Set("a", Int(2))
	mo.Set("b", Int(3)) // update keeps position
	mo.Set("c", Int(4))
	want := []string{"b", "a", "c"}
	if len(mo.Keys) != 3 {
		t.Fatalf("keys = %v", mo.Keys)
	}
	for i, k := range want {
		if mo.Keys[i] != k {
			t.Fatalf("keys = %v, want %v", mo.Keys, want)
		}
	}
	mo.Delete("a")
	if len(mo.Keys) != 2 || mo.Keys[0] != "b" || mo.Keys[1] != "c" {
		t.Fatalf("keys after delete = %v", mo.Keys)
	}
}
