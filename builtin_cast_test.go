package brace

import "testing"

func Test_Cast_Str(t *testing.T) {
	wantOutput(t, `{str:42;}{str:2.5;}{str:true;}`, "422.5true")
	// Containers render as opaque markers only through str.
	wantOutput(t, `{str:{list:1;};}`, "<List>")
	wantOutput(t, `{str:{map;};}`, "<Map>")
	wantOutput(t, `{func:{f}:;}{str:{f};}`, "<Function>")
	wantOutput(t, `{str:;}{type:{str:;};}`, "str")
}

func Test_Cast_Int(t *testing.T) {
	wantOutput(t, `{int:42;}{int:-3.9;}{int:{bool:1;};}{int:{bool:0;};}`, "42-310")
	wantOutput(t, `{int:0b1111;}`, "15")
	wantErrContains(t, runErr(t, `{int:abc;}`), "cannot convert")
	wantErrContains(t, runErr(t, `{int:{list;};}`), "cannot convert")
}

func Test_Cast_Float(t *testing.T) {
	wantOutput(t, `{float:2;}{type:{float:2;};}`, "2float")
	wantOutput(t, `{float:2.5;}`, "2.5")
	wantErrContains(t, runErr(t, `{float:abc;}`), "cannot convert")
}

func Test_Cast_Bool(t *testing.T) {
	wantOutput(t, `{bool:1;}{bool:0;}{bool:x;}{bool:;}`, "truefalsetruefalse")
	wantOutput(t, `{bool:{list:1;};}{bool:{list;};}`, "truefalse")
}

func Test_Cast_Type(t *testing.T) {
	wantOutput(t, `{type:;}`, "nil")
	wantOutput(t, `{func:{f}:;}{type:{f};}`, "func")
	wantOutput(t, `{type:true;}`, "str") // literal text, not a Bool
	wantOutput(t, `{type:{bool:1;};}`, "bool")
}
