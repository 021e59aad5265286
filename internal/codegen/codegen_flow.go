package codegen

// Flow labels are qualified by the enclosing function so same-named labels
// in different functions cannot collide. None of these touch the jump index.

func (cg *CodeGen) writeLabel(name string) {
	cg.emit("(%s$%s)", cg.function, name)
}

func (cg *CodeGen) writeGoto(name string) {
	cg.emit("@%s$%s", cg.function, name)
	cg.emit("0;JMP")
}

// writeIfGoto pops the stack top and branches when it is non-zero.
func (cg *CodeGen) writeIfGoto(name string) {
	cg.emit("@SP")
	cg.emit("AM=M-1")
	cg.emit("D=M")
	cg.emit("@%s$%s", cg.function, name)
	cg.emit("D;JNE")
}
