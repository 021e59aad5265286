package vm

import "testing"

func TestSegmentByName(t *testing.T) {
	for _, name := range []string{"constant", "local", "argument", "this", "that", "pointer", "temp", "static"} {
		seg, ok := SegmentByName(name)
		if !ok {
			t.Fatalf("SegmentByName(%q) not found", name)
		}
		if seg.String() != name {
			t.Fatalf("SegmentByName(%q).String()=%q", name, seg.String())
		}
	}
	if _, ok := SegmentByName("heap"); ok {
		t.Fatal("SegmentByName(heap) should fail")
	}
}

func TestSegmentRegister(t *testing.T) {
	tests := []struct {
		seg Segment
		reg string
	}{
		{SegLocal, "LCL"},
		{SegArgument, "ARG"},
		{SegThis, "THIS"},
		{SegThat, "THAT"},
	}
	for _, tt := range tests {
		reg, ok := tt.seg.Register()
		if !ok || reg != tt.reg {
			t.Fatalf("%s.Register()=%q,%v", tt.seg, reg, ok)
		}
	}
	for _, seg := range []Segment{SegConstant, SegPointer, SegTemp, SegStatic} {
		if _, ok := seg.Register(); ok {
			t.Fatalf("%s should have no base register", seg)
		}
	}
}

func TestOpClasses(t *testing.T) {
	for _, name := range []string{"add", "sub", "and", "or", "neg", "not", "eq", "gt", "lt"} {
		op, ok := OpByName(name)
		if !ok {
			t.Fatalf("OpByName(%q) not found", name)
		}
		if op.String() != name {
			t.Fatalf("OpByName(%q).String()=%q", name, op.String())
		}
	}
	if _, ok := OpByName("xor"); ok {
		t.Fatal("OpByName(xor) should fail")
	}

	if !OpNeg.Unary() || !OpNot.Unary() || OpAdd.Unary() {
		t.Fatal("Unary classification wrong")
	}
	if !OpEq.Comparison() || !OpGt.Comparison() || !OpLt.Comparison() || OpSub.Comparison() {
		t.Fatal("Comparison classification wrong")
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Command{Kind: KindArithmetic, Op: OpAdd}, "add"},
		{Command{Kind: KindPush, Segment: SegConstant, Index: 7}, "push constant 7"},
		{Command{Kind: KindPop, Segment: SegLocal, Index: 2}, "pop local 2"},
		{Command{Kind: KindLabel, Name: "LOOP"}, "label LOOP"},
		{Command{Kind: KindGoto, Name: "LOOP"}, "goto LOOP"},
		{Command{Kind: KindIfGoto, Name: "LOOP"}, "if-goto LOOP"},
		{Command{Kind: KindFunction, Name: "Main.fib", Index: 2}, "function Main.fib 2"},
		{Command{Kind: KindCall, Name: "Main.fib", Index: 1}, "call Main.fib 1"},
		{Command{Kind: KindReturn}, "return"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Fatalf("String()=%q want=%q", got, tt.want)
		}
	}
}
