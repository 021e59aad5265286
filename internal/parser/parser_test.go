package parser

import (
	"strings"
	"testing"

	"hackvm/internal/vm"
)

func TestParsePushPop(t *testing.T) {
	tests := []struct {
		line    string
		kind    vm.Kind
		segment vm.Segment
		index   uint16
	}{
		{"push constant 7", vm.KindPush, vm.SegConstant, 7},
		{"push local 0", vm.KindPush, vm.SegLocal, 0},
		{"push argument 2", vm.KindPush, vm.SegArgument, 2},
		{"push this 6", vm.KindPush, vm.SegThis, 6},
		{"push that 5", vm.KindPush, vm.SegThat, 5},
		{"push pointer 1", vm.KindPush, vm.SegPointer, 1},
		{"push temp 6", vm.KindPush, vm.SegTemp, 6},
		{"push static 3", vm.KindPush, vm.SegStatic, 3},
		{"pop local 0", vm.KindPop, vm.SegLocal, 0},
		{"pop static 8", vm.KindPop, vm.SegStatic, 8},
		{"push constant 32767", vm.KindPush, vm.SegConstant, 32767},
	}
	for _, tt := range tests {
		cmd, err := Parse(tt.line)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.line, err)
		}
		if cmd.Kind != tt.kind || cmd.Segment != tt.segment || cmd.Index != tt.index {
			t.Fatalf("Parse(%q)=%+v", tt.line, cmd)
		}
	}
}

func TestParseArithmetic(t *testing.T) {
	for _, name := range []string{"add", "sub", "and", "or", "neg", "not", "eq", "gt", "lt"} {
		cmd, err := Parse(name)
		if err != nil {
			t.Fatalf("Parse(%q): %v", name, err)
		}
		if cmd.Kind != vm.KindArithmetic || cmd.Op.String() != name {
			t.Fatalf("Parse(%q)=%+v", name, cmd)
		}
	}
}

func TestParseFlowAndFunctions(t *testing.T) {
	tests := []struct {
		line  string
		kind  vm.Kind
		name  string
		index uint16
	}{
		{"label LOOP", vm.KindLabel, "LOOP", 0},
		{"goto LOOP", vm.KindGoto, "LOOP", 0},
		{"if-goto LOOP", vm.KindIfGoto, "LOOP", 0},
		{"function Main.fib 2", vm.KindFunction, "Main.fib", 2},
		{"call Main.fib 1", vm.KindCall, "Main.fib", 1},
	}
	for _, tt := range tests {
		cmd, err := Parse(tt.line)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.line, err)
		}
		if cmd.Kind != tt.kind || cmd.Name != tt.name || cmd.Index != tt.index {
			t.Fatalf("Parse(%q)=%+v", tt.line, cmd)
		}
	}
}

func TestParseReturn(t *testing.T) {
	cmd, err := Parse("return")
	if err != nil {
		t.Fatalf("Parse(return): %v", err)
	}
	if cmd.Kind != vm.KindReturn {
		t.Fatalf("Parse(return)=%+v", cmd)
	}
}

func TestParseRejections(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"frobnicate", "unrecognized command"},
		{"push", "push expects"},
		{"push constant", "push expects"},
		{"push constant 1 2", "push expects"},
		{"pop heap 0", "unrecognized segment"},
		{"push constant x", "malformed operand"},
		{"push constant -1", "malformed operand"},
		{"push constant 65536", "malformed operand"},
		{"call Foo many", "malformed operand"},
		{"function Foo", "function expects"},
		{"label", "label expects"},
		{"goto a b", "goto expects"},
		{"return 1", "return takes no arguments"},
		{"add 1", "add takes no arguments"},
	}
	for _, tt := range tests {
		_, err := Parse(tt.line)
		if err == nil {
			t.Fatalf("Parse(%q): expected error", tt.line)
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Fatalf("Parse(%q) error=%q want substring %q", tt.line, err, tt.want)
		}
	}
}

func TestStripComment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"push constant 1 // comment", "push constant 1"},
		{"// only a comment", ""},
		{"   ", ""},
		{"\tadd\t", "add"},
		{"push constant 1", "push constant 1"},
	}
	for _, tt := range tests {
		if got := StripComment(tt.in); got != tt.want {
			t.Fatalf("StripComment(%q)=%q want=%q", tt.in, got, tt.want)
		}
	}
}

func TestParseSource(t *testing.T) {
	source := "// program\n\npush constant 1   // push\n  push constant 2\nadd\n"
	commands, err := ParseSource(source)
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}
	if len(commands) != 3 {
		t.Fatalf("ParseSource produced %d commands, want 3", len(commands))
	}
	if commands[2].Kind != vm.KindArithmetic || commands[2].Op != vm.OpAdd {
		t.Fatalf("third command=%+v", commands[2])
	}
}

func TestParseSourceReportsLineNumber(t *testing.T) {
	source := "push constant 1\n// fine\nbogus cmd\n"
	_, err := ParseSource(source)
	if err == nil {
		t.Fatal("expected error for bogus command")
	}
	pe, ok := err.(ParseError)
	if !ok {
		t.Fatalf("error type %T, want ParseError", err)
	}
	if pe.Line != 3 {
		t.Fatalf("error line=%d want=3", pe.Line)
	}
	if !strings.Contains(pe.Error(), "line 3") {
		t.Fatalf("error text missing position: %q", pe.Error())
	}
}
