package codegen

import (
	"fmt"

	"hackvm/internal/vm"
)

// writePush loads the segment value into D per the addressing table, then
// appends the push tail. Stack grows by one.
func (cg *CodeGen) writePush(seg vm.Segment, idx uint16) error {
	switch seg {
	case vm.SegConstant:
		cg.emit("@%d", idx)
		cg.emit("D=A")
	case vm.SegPointer:
		reg, err := pointerRegister(seg, idx)
		if err != nil {
			return err
		}
		cg.emit("@%s", reg)
		cg.emit("D=M")
	case vm.SegTemp:
		cg.emit("@%d", tempBase)
		cg.emit("D=A")
		cg.emit("@%d", idx)
		cg.emit("A=D+A")
		cg.emit("D=M")
	case vm.SegStatic:
		cg.emit("@%s.%d", cg.staticName, idx)
		cg.emit("D=M")
	case vm.SegLocal, vm.SegArgument, vm.SegThis, vm.SegThat:
		reg, _ := seg.Register()
		cg.emit("@%s", reg)
		cg.emit("D=M")
		cg.emit("@%d", idx)
		cg.emit("A=D+A")
		cg.emit("D=M")
	default:
		return CodegenError{
			Message: "unrecognized segment",
			Context: fmt.Sprintf("push %s %d", seg, idx),
		}
	}
	cg.emitPushD()
	return nil
}

// writePop computes the destination address into D, parks it in the scratch
// register, then pops the stack top into it. The address is cached before
// the pop because the pop itself claims A and D.
func (cg *CodeGen) writePop(seg vm.Segment, idx uint16) error {
	switch seg {
	case vm.SegConstant:
		// Constants have no storage address to pop into.
		return CodegenError{
			Message: "unrecognized segment: cannot pop to constant",
			Context: fmt.Sprintf("pop constant %d", idx),
		}
	case vm.SegPointer:
		reg, err := pointerRegister(seg, idx)
		if err != nil {
			return err
		}
		cg.emit("@%s", reg)
		cg.emit("D=A")
	case vm.SegTemp:
		cg.emit("@%d", tempBase)
		cg.emit("D=A")
		cg.emit("@%d", idx)
		cg.emit("D=D+A")
	case vm.SegStatic:
		cg.emit("@%s.%d", cg.staticName, idx)
		cg.emit("D=A")
	case vm.SegLocal, vm.SegArgument, vm.SegThis, vm.SegThat:
		reg, _ := seg.Register()
		cg.emit("@%s", reg)
		cg.emit("D=M")
		cg.emit("@%d", idx)
		cg.emit("D=D+A")
	default:
		return CodegenError{
			Message: "unrecognized segment",
			Context: fmt.Sprintf("pop %s %d", seg, idx),
		}
	}
	cg.emit("@%s", regAddr)
	cg.emit("M=D")
	cg.emit("@SP")
	cg.emit("AM=M-1")
	cg.emit("D=M")
	cg.emit("@%s", regAddr)
	cg.emit("A=M")
	cg.emit("M=D")
	return nil
}

func pointerRegister(seg vm.Segment, idx uint16) (string, error) {
	switch idx {
	case 0:
		return "THIS", nil
	case 1:
		return "THAT", nil
	default:
		return "", CodegenError{
			Message: "pointer index must be 0 or 1",
			Context: fmt.Sprintf("%s %d", seg, idx),
		}
	}
}
