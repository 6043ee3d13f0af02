package brace

import (
	"bytes"
	"testing"
)

func Test_Collector_Folding(t *testing.T) {
	// Nothing collected folds to Nil.
	c := &collector{}
	if v := c.value(); v.Tag != VTNil {
		t.Fatalf("empty collector = %v", v)
	}

	// A single value keeps its identity.
	lst := List([]Value{Int(1)})
	c = &collector{}
	c.emitValue(Nil)
	c.emitValue(lst)
	v := c.value()
	if v.Tag != VTList || v.Data.(*ListObject) != lst.Data.(*ListObject) {
		t.Fatal("single surviving value must keep identity")
	}

	// Several values concatenate their renderings.
	c = &collector{}
	c.emitText("n=", false)
	c.emitValue(Int(4))
	c.emitValue(Nil)
	c.emitValue(Str("!"))
	if v := c.value(); v.Tag != VTStr || v.Data.(string) != "n=4!" {
		t.Fatalf("folded = %v", v)
	}
}

func Test_WriterSink_ScalarsOnly(t *testing.T) {
	var buf bytes.Buffer
	s := &writerSink{w: &buf}
	s.emitValue(Int(1))
	s.emitValue(List(nil))
	s.emitValue(MapVal(NewMapObject()))
	s.emitValue(FunVal(&Fun{}))
	s.emitValue(Nil)
	s.emitValue(Str("x"))
	s.emitValue(Bool(false))
	if buf.String() != "1xfalse" {
		t.Fatalf("output = %q", buf.String())
	}
}

func Test_OnelineSink_Filter(t *testing.T) {
	var buf bytes.Buffer
	s := &onelineSink{inner: &writerSink{w: &buf}}

	s.emitText("   \n\t ", false) // whitespace-only fragment vanishes
	s.emitText("  indented  ", false)
	s.emitValue(Str(" kept "))
	s.emitText("\n", true) // escape expansion is preserved
	s.emitText(" in ter ior ", false)

	if got := buf.String(); got != "indented kept \nin ter ior" {
		t.Fatalf("output = %q", got)
	}
}

func Test_Run_OnelineEndToEnd(t *testing.T) {
	src := "{#>oneline}\n    {set:x:5;}\n    value={x}\\n    done"
	wantOutput(t, src, "value=5\ndone")
}

func Test_Run_VerbatimWithoutPragma(t *testing.T) {
	wantOutput(t, "  a\n b", "  a\n b")
}
