package brace

import "testing"

func Test_Env_LookupWalksOutward(t *testing.T) {
	outer := NewEnv(nil)
	outer.Define("x", Int(1))
	inner := NewEnv(outer)
	v, ok := inner.Get("x")
	if !ok || v.Data.(int64) != 1 {
		t.Fatalf("Get(x) = %v, %v", v, ok)
	}
	if _, ok := inner.Get("missing"); ok {
		t.Fatal("missing name should not resolve")
	}
}

func Test_Env_AssignRewritesWhereBound(t *testing.T) {
	outer := NewEnv(nil)
	outer.Define("x", Int(1))
	inner := NewEnv(outer)

	inner.Assign("x", Int(2))
	if v, _ := outer.Get("x"); v.Data.(int64) != 2 {
		t.Fatal("assign should rewrite the outer binding")
	}
	if _, ok := inner.table["x"]; ok {
		t.Fatal("assign must not shadow in the inner frame")
	}

	inner.Assign("y", Int(3))
	if _, ok := outer.Get("y"); ok {
		t.Fatal("y must not be created in the outer frame")
	}
}

func Test_Env_AssignCreatesInCurrent(t *testing.T) {
	outer := NewEnv(nil)
	inner := NewEnv(outer)
	inner.Assign("fresh", Int(9))
	if _, ok := outer.table["fresh"]; ok {
		t.Fatal("unbound assign should create in the current frame")
	}
	if v, ok := inner.Get("fresh"); !ok || v.Data.(int64) != 9 {
		t.Fatal("fresh not bound in current frame")
	}
}

func Test_Env_DefineShadows(t *testing.T) {
	outer := NewEnv(nil)
	outer.Define("x", Int(1))
	inner := NewEnv(outer)
	inner.Define("x", Int(2))
	if v, _ := inner.Get("x"); v.Data.(int64) != 2 {
		t.Fatal("inner should see the shadow")
	}
	if v, _ := outer.Get("x"); v.Data.(int64) != 1 {
		t.Fatal("outer binding must be untouched")
	}
}

func Test_Env_Delete(t *testing.T) {
	outer := NewEnv(nil)
	outer.Define("x", Int(1))
	inner := NewEnv(outer)
	if !inner.Delete("x") {
		t.Fatal("delete should find the outer binding")
	}
	if _, ok := inner.Get("x"); ok {
		t.Fatal("x should be gone")
	}
	if inner.Delete("x") {
		t.Fatal("second delete should report missing")
	}
}
