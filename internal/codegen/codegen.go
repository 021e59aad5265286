package codegen

import (
	"fmt"
	"strings"

	"hackvm/internal/vm"
)

const (
	// DefaultFunction is the implicit scope qualifying labels that appear
	// before any function declaration.
	DefaultFunction = "System"

	// StackBase is where the bootstrap points SP before calling Sys.init.
	StackBase = 256

	// EntryFunction is the designated whole-program entry symbol.
	EntryFunction = "Sys.init"

	tempBase = 5

	// Scratch registers: R15 holds pop destinations and comparison
	// sentinels, R13/R14 hold the frame pointer and return address during
	// a return sequence.
	regAddr   = "R15"
	regFrame  = "R13"
	regRetPtr = "R14"
)

// CodeGen turns Commands into Hack assembly. One CodeGen spans a whole
// program translation: the jump index is never reset, so every comparison
// and return label it mints is unique across all units. The static name is
// rebound per unit and the function scope tracks the most recent function
// declaration.
type CodeGen struct {
	output     strings.Builder
	jumpIndex  uint64
	function   string
	staticName string
}

// New creates a generator for one program translation.
func New(staticName string) *CodeGen {
	return &CodeGen{
		function:   DefaultFunction,
		staticName: staticName,
	}
}

// SetStaticName rebinds the identifier qualifying static segment accesses.
// Called by the orchestrator when it moves to the next unit.
func (cg *CodeGen) SetStaticName(name string) {
	cg.staticName = name
}

// ResetFunctionScope restores the implicit top-level scope. Called at the
// start of each unit.
func (cg *CodeGen) ResetFunctionScope() {
	cg.function = DefaultFunction
}

// JumpIndex exposes the label counter for tests and progress reporting.
func (cg *CodeGen) JumpIndex() uint64 {
	return cg.jumpIndex
}

// CurrentFunction returns the scope qualifying flow labels right now.
func (cg *CodeGen) CurrentFunction() string {
	return cg.function
}

// Output returns everything emitted so far.
func (cg *CodeGen) Output() string {
	return cg.output.String()
}

// WriteCommand emits the assembly for one command. The first failure is
// terminal for the translation; nothing is appended for a rejected command.
func (cg *CodeGen) WriteCommand(cmd vm.Command) error {
	switch cmd.Kind {
	case vm.KindArithmetic:
		return cg.writeArithmetic(cmd.Op)
	case vm.KindPush:
		return cg.writePush(cmd.Segment, cmd.Index)
	case vm.KindPop:
		return cg.writePop(cmd.Segment, cmd.Index)
	case vm.KindLabel:
		cg.writeLabel(cmd.Name)
	case vm.KindGoto:
		cg.writeGoto(cmd.Name)
	case vm.KindIfGoto:
		cg.writeIfGoto(cmd.Name)
	case vm.KindFunction:
		cg.writeFunction(cmd.Name, cmd.Index)
	case vm.KindReturn:
		cg.writeReturn()
	case vm.KindCall:
		cg.writeCall(cmd.Name, cmd.Index)
	default:
		return CodegenError{Message: fmt.Sprintf("unrecognized command kind: %d", cmd.Kind)}
	}
	return nil
}

// WriteBootstrap emits the program prologue: SP at the stack base, then a
// call to the entry function through this same generator, so the call's
// return label consumes one jump index like any other call.
func (cg *CodeGen) WriteBootstrap() {
	cg.emit("@%d", StackBase)
	cg.emit("D=A")
	cg.emit("@SP")
	cg.emit("M=D")
	cg.writeCall(EntryFunction, 0)
}

// emit appends one assembly line.
func (cg *CodeGen) emit(format string, args ...interface{}) {
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	cg.output.WriteString(format)
	cg.output.WriteString("\n")
}

// emitPushD appends the stack push tail: store D at the stack top and grow
// the stack by one.
func (cg *CodeGen) emitPushD() {
	cg.emit("@SP")
	cg.emit("AM=M+1")
	cg.emit("A=A-1")
	cg.emit("M=D")
}
