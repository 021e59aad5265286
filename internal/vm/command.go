package vm

import "fmt"

// Kind discriminates the command variants of the VM language.
type Kind int

const (
	KindArithmetic Kind = iota
	KindPush
	KindPop
	KindLabel
	KindGoto
	KindIfGoto
	KindFunction
	KindReturn
	KindCall
)

func (k Kind) String() string {
	return []string{
		"arithmetic",
		"push",
		"pop",
		"label",
		"goto",
		"if-goto",
		"function",
		"return",
		"call",
	}[k]
}

// Segment is one of the eight memory regions push/pop operate over.
type Segment int

const (
	SegConstant Segment = iota
	SegLocal
	SegArgument
	SegThis
	SegThat
	SegPointer
	SegTemp
	SegStatic
)

var segmentNames = map[string]Segment{
	"constant": SegConstant,
	"local":    SegLocal,
	"argument": SegArgument,
	"this":     SegThis,
	"that":     SegThat,
	"pointer":  SegPointer,
	"temp":     SegTemp,
	"static":   SegStatic,
}

// SegmentByName resolves a segment mnemonic.
func SegmentByName(name string) (Segment, bool) {
	s, ok := segmentNames[name]
	return s, ok
}

func (s Segment) String() string {
	return []string{
		"constant",
		"local",
		"argument",
		"this",
		"that",
		"pointer",
		"temp",
		"static",
	}[s]
}

// Register returns the base-register symbol for the indirectly addressed
// segments. Only local/argument/this/that have one.
func (s Segment) Register() (string, bool) {
	switch s {
	case SegLocal:
		return "LCL", true
	case SegArgument:
		return "ARG", true
	case SegThis:
		return "THIS", true
	case SegThat:
		return "THAT", true
	default:
		return "", false
	}
}

// Op is an arithmetic-logical operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpAnd
	OpOr
	OpNeg
	OpNot
	OpEq
	OpGt
	OpLt
)

var opNames = map[string]Op{
	"add": OpAdd,
	"sub": OpSub,
	"and": OpAnd,
	"or":  OpOr,
	"neg": OpNeg,
	"not": OpNot,
	"eq":  OpEq,
	"gt":  OpGt,
	"lt":  OpLt,
}

// OpByName resolves an arithmetic mnemonic.
func OpByName(name string) (Op, bool) {
	op, ok := opNames[name]
	return op, ok
}

func (op Op) String() string {
	return []string{"add", "sub", "and", "or", "neg", "not", "eq", "gt", "lt"}[op]
}

// Unary reports whether the operator mutates the stack top in place.
func (op Op) Unary() bool {
	return op == OpNeg || op == OpNot
}

// Comparison reports whether the operator produces a boolean sentinel via a
// conditional branch.
func (op Op) Comparison() bool {
	return op == OpEq || op == OpGt || op == OpLt
}

// Command is one parsed VM instruction. It is immutable once built and
// carries no generation state. Which fields are meaningful depends on Kind:
// Op for arithmetic; Segment+Index for push/pop; Name for label/goto/if-goto,
// Name+Index (nLocals or nArgs) for function/call.
type Command struct {
	Kind    Kind
	Op      Op
	Segment Segment
	Name    string
	Index   uint16
}

func (c Command) String() string {
	switch c.Kind {
	case KindArithmetic:
		return c.Op.String()
	case KindPush, KindPop:
		return fmt.Sprintf("%s %s %d", c.Kind, c.Segment, c.Index)
	case KindLabel, KindGoto, KindIfGoto:
		return fmt.Sprintf("%s %s", c.Kind, c.Name)
	case KindFunction, KindCall:
		return fmt.Sprintf("%s %s %d", c.Kind, c.Name, c.Index)
	default:
		return "return"
	}
}
