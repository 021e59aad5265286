package codegen

import "hackvm/internal/vm"

// writeArithmetic dispatches on the operator class. Binary ops shrink the
// stack by one, unary ops rewrite the top in place, comparisons shrink by
// one and leave -1 (true) or 0 (false).
func (cg *CodeGen) writeArithmetic(op vm.Op) error {
	switch op {
	case vm.OpNeg, vm.OpNot:
		cg.writeUnary(op)
	case vm.OpAdd, vm.OpSub, vm.OpAnd, vm.OpOr:
		cg.writeBinary(op)
	case vm.OpEq, vm.OpGt, vm.OpLt:
		cg.writeComparison(op)
	default:
		return CodegenError{
			Message: "unrecognized operator",
			Context: op.String(),
		}
	}
	return nil
}

func (cg *CodeGen) writeUnary(op vm.Op) {
	mnemonic := "-"
	if op == vm.OpNot {
		mnemonic = "!"
	}
	cg.emit("@SP")
	cg.emit("AM=M-1")
	cg.emit("MD=%sM", mnemonic)
	cg.emit("@SP")
	cg.emit("M=M+1")
}

func (cg *CodeGen) writeBinary(op vm.Op) {
	var mnemonic string
	switch op {
	case vm.OpAdd:
		mnemonic = "+"
	case vm.OpSub:
		mnemonic = "-"
	case vm.OpAnd:
		mnemonic = "&"
	case vm.OpOr:
		mnemonic = "|"
	}
	cg.emit("@SP")
	cg.emit("AM=M-1")
	cg.emit("D=M")
	cg.emit("A=A-1")
	cg.emit("MD=M%sD", mnemonic)
}

// writeComparison computes (top-1) - top and branches on the predicate.
// The sentinel starts as -1 (true); the branch over the reset to 0 is taken
// when the predicate holds. The label index comes from the shared jump
// counter, which advances by exactly one afterwards.
func (cg *CodeGen) writeComparison(op vm.Op) {
	var jump string
	switch op {
	case vm.OpEq:
		jump = "JEQ"
	case vm.OpGt:
		jump = "JGT"
	case vm.OpLt:
		jump = "JLT"
	}
	cg.emit("@%s", regAddr)
	cg.emit("M=-1")
	cg.emit("@SP")
	cg.emit("AM=M-1")
	cg.emit("D=M")
	cg.emit("A=A-1")
	cg.emit("D=M-D")
	cg.emit("@JMP_FALSE%d", cg.jumpIndex)
	cg.emit("D;%s", jump)
	cg.emit("@%s", regAddr)
	cg.emit("M=0")
	cg.emit("(JMP_FALSE%d)", cg.jumpIndex)
	cg.emit("@%s", regAddr)
	cg.emit("D=M")
	cg.emit("@SP")
	cg.emit("A=M-1")
	cg.emit("M=D")
	cg.jumpIndex++
}
