package codegen

import "fmt"

// writeFunction emits the entry label and zeroes nLocals words on the stack.
// Function names are the program's single flat namespace, so the zeroing
// loop label can derive from the name instead of the jump index. Declaring a
// function also moves the label-qualification scope to its name.
func (cg *CodeGen) writeFunction(name string, nLocals uint16) {
	cg.function = name
	cg.emit("(%s)", name)
	if nLocals == 0 {
		return
	}
	cg.emit("@%d", nLocals)
	cg.emit("D=A")
	cg.emit("(%s_rep)", name)
	cg.emit("@SP")
	cg.emit("AM=M+1")
	cg.emit("A=A-1")
	cg.emit("M=0")
	cg.emit("@%s_rep", name)
	cg.emit("D=D-1;JGT")
}

// writeCall saves the caller frame (return address, LCL, ARG, THIS, THAT),
// points ARG at the first pushed argument (SP-5-nArgs), points LCL at the
// new stack top, and jumps to the callee. The return label shares the jump
// counter with comparisons, so the two label families cannot collide; the
// counter advances by exactly one per call.
func (cg *CodeGen) writeCall(name string, nArgs uint16) {
	returnLabel := cg.returnLabel(name)

	cg.emit("@%s", returnLabel)
	cg.emit("D=A")
	cg.emitPushD()
	for _, reg := range []string{"LCL", "ARG", "THIS", "THAT"} {
		cg.emit("@%s", reg)
		cg.emit("D=M")
		cg.emitPushD()
	}
	cg.emit("@SP")
	cg.emit("D=M")
	cg.emit("@LCL")
	cg.emit("M=D")
	cg.emit("@5")
	cg.emit("D=D-A")
	cg.emit("@%d", nArgs)
	cg.emit("D=D-A")
	cg.emit("@ARG")
	cg.emit("M=D")
	cg.emit("@%s", name)
	cg.emit("0;JMP")
	cg.emit("(%s)", returnLabel)
}

func (cg *CodeGen) returnLabel(name string) string {
	label := fmt.Sprintf("%s$ret.%d", name, cg.jumpIndex)
	cg.jumpIndex++
	return label
}

// writeReturn restores the caller frame from fixed offsets below LCL,
// relocates SP to ARG+1, plants the return value at the caller's stack top,
// and jumps through the saved return address. The return address is fetched
// into R14 first: once ARG is restored the frame offsets are gone.
func (cg *CodeGen) writeReturn() {
	cg.emit("@LCL")
	cg.emit("D=M")
	cg.emit("@%s", regFrame)
	cg.emit("M=D")
	cg.emit("@5")
	cg.emit("A=D-A")
	cg.emit("D=M")
	cg.emit("@%s", regRetPtr)
	cg.emit("M=D")
	cg.emit("@SP")
	cg.emit("AM=M-1")
	cg.emit("D=M")
	cg.emit("@ARG")
	cg.emit("A=M")
	cg.emit("M=D")
	cg.emit("@ARG")
	cg.emit("D=M")
	cg.emit("@SP")
	cg.emit("M=D+1")
	for _, reg := range []string{"THAT", "THIS", "ARG", "LCL"} {
		cg.emit("@%s", regFrame)
		cg.emit("AM=M-1")
		cg.emit("D=M")
		cg.emit("@%s", reg)
		cg.emit("M=D")
	}
	cg.emit("@%s", regRetPtr)
	cg.emit("A=M")
	cg.emit("0;JMP")
}
