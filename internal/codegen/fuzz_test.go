package codegen

import (
	"testing"

	"hackvm/internal/parser"
)

// FuzzWriteCommandNoPanic ensures generation never panics for any line the
// parser accepts.
func FuzzWriteCommandNoPanic(f *testing.F) {
	seeds := []string{
		"push constant 0",
		"push static 32767",
		"pop temp 7",
		"pop pointer 1",
		"add",
		"eq",
		"not",
		"label x",
		"goto x",
		"if-goto x",
		"function f 2",
		"call f 2",
		"return",
		"pop constant 3",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("generator panicked for input %q: %v", input, r)
			}
		}()

		line := parser.StripComment(input)
		if line == "" {
			return
		}
		cmd, err := parser.Parse(line)
		if err != nil {
			return
		}
		cg := New("Fuzz")
		_ = cg.WriteCommand(cmd)
		_ = cg.Output()
	})
}
