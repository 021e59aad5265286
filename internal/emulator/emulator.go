package emulator

import (
	"fmt"
	"strconv"
	"strings"
)

// RAMSize is the addressable data memory of the Hack machine, in words.
const RAMSize = 32768

// Machine is a minimal Hack CPU: A and D registers, word-addressable RAM,
// and a loaded instruction sequence. It executes the symbolic assembly the
// generator emits directly, resolving labels and variables at load time the
// way the downstream assembler would.
type Machine struct {
	A   int16
	D   int16
	PC  int
	RAM [RAMSize]int16

	program []instruction
}

type instruction struct {
	addressing bool  // @value form
	value      int16 // addressing target

	dest string // subset of AMD
	comp string
	jump string

	text string // original line, for error reports
}

var predefined = map[string]int16{
	"SP": 0, "LCL": 1, "ARG": 2, "THIS": 3, "THAT": 4,
	"SCREEN": 16384, "KBD": 24576,
}

func init() {
	for i := int16(0); i < 16; i++ {
		predefined[fmt.Sprintf("R%d", i)] = i
	}
}

// Load assembles symbolic Hack assembly into an executable Machine. Labels
// take the address of the following instruction; other symbols become RAM
// variables allocated from address 16 up.
func Load(asm string) (*Machine, error) {
	var lines []string
	symbols := make(map[string]int16)
	for name, addr := range predefined {
		symbols[name] = addr
	}

	// First pass: strip blanks, bind labels.
	for _, raw := range strings.Split(asm, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "(") {
			if !strings.HasSuffix(line, ")") {
				return nil, fmt.Errorf("malformed label: %s", line)
			}
			name := line[1 : len(line)-1]
			if _, dup := symbols[name]; dup {
				return nil, fmt.Errorf("duplicate label: %s", name)
			}
			symbols[name] = int16(len(lines))
			continue
		}
		lines = append(lines, line)
	}

	m := &Machine{}
	nextVar := int16(16)
	for _, line := range lines {
		ins, err := decode(line, symbols, &nextVar)
		if err != nil {
			return nil, err
		}
		m.program = append(m.program, ins)
	}
	return m, nil
}

func decode(line string, symbols map[string]int16, nextVar *int16) (instruction, error) {
	if strings.HasPrefix(line, "@") {
		target := line[1:]
		if n, err := strconv.ParseInt(target, 10, 16); err == nil {
			return instruction{addressing: true, value: int16(n), text: line}, nil
		}
		addr, ok := symbols[target]
		if !ok {
			addr = *nextVar
			symbols[target] = addr
			*nextVar++
		}
		return instruction{addressing: true, value: addr, text: line}, nil
	}

	ins := instruction{text: line}
	rest := line
	if i := strings.Index(rest, "="); i >= 0 {
		ins.dest = rest[:i]
		rest = rest[i+1:]
	}
	if i := strings.Index(rest, ";"); i >= 0 {
		ins.jump = rest[i+1:]
		rest = rest[:i]
	}
	ins.comp = rest
	if ins.comp == "" {
		return instruction{}, fmt.Errorf("missing computation: %s", line)
	}
	return ins, nil
}

// Step executes one instruction. It reports false once the PC runs off the
// end of the program.
func (m *Machine) Step() (bool, error) {
	if m.PC < 0 || m.PC >= len(m.program) {
		return false, nil
	}
	ins := m.program[m.PC]
	if ins.addressing {
		m.A = ins.value
		m.PC++
		return true, nil
	}

	out, err := m.compute(ins)
	if err != nil {
		return false, err
	}
	if strings.Contains(ins.dest, "M") {
		if err := m.checkAddr(ins); err != nil {
			return false, err
		}
		m.RAM[m.A] = out
	}
	if strings.Contains(ins.dest, "A") {
		m.A = out
	}
	if strings.Contains(ins.dest, "D") {
		m.D = out
	}

	if ins.jump != "" && taken(ins.jump, out) {
		m.PC = int(m.A)
	} else {
		m.PC++
	}
	return true, nil
}

// Run steps until the program counter falls off the end, failing if that
// takes more than maxSteps instructions.
func (m *Machine) Run(maxSteps int) error {
	for i := 0; i < maxSteps; i++ {
		running, err := m.Step()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
	}
	return fmt.Errorf("no halt within %d steps", maxSteps)
}

// RunSteps executes exactly n instructions or until the program ends.
func (m *Machine) RunSteps(n int) error {
	for i := 0; i < n; i++ {
		running, err := m.Step()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
	}
	return nil
}

func (m *Machine) compute(ins instruction) (int16, error) {
	operand := func() (int16, error) {
		if strings.Contains(ins.comp, "M") {
			if err := m.checkAddr(ins); err != nil {
				return 0, err
			}
			return m.RAM[m.A], nil
		}
		return m.A, nil
	}

	switch ins.comp {
	case "0":
		return 0, nil
	case "1":
		return 1, nil
	case "-1":
		return -1, nil
	case "D":
		return m.D, nil
	case "A", "M":
		return operand()
	case "!D":
		return ^m.D, nil
	case "!A", "!M":
		v, err := operand()
		return ^v, err
	case "-D":
		return -m.D, nil
	case "-A", "-M":
		v, err := operand()
		return -v, err
	case "D+1":
		return m.D + 1, nil
	case "A+1", "M+1":
		v, err := operand()
		return v + 1, err
	case "D-1":
		return m.D - 1, nil
	case "A-1", "M-1":
		v, err := operand()
		return v - 1, err
	case "D+A", "D+M", "A+D", "M+D":
		v, err := operand()
		return m.D + v, err
	case "D-A", "D-M":
		v, err := operand()
		return m.D - v, err
	case "A-D", "M-D":
		v, err := operand()
		return v - m.D, err
	case "D&A", "D&M":
		v, err := operand()
		return m.D & v, err
	case "D|A", "D|M":
		v, err := operand()
		return m.D | v, err
	default:
		return 0, fmt.Errorf("unsupported computation: %s", ins.text)
	}
}

func (m *Machine) checkAddr(ins instruction) error {
	if m.A < 0 || int(m.A) >= RAMSize {
		return fmt.Errorf("memory access at %d out of range: %s", m.A, ins.text)
	}
	return nil
}

func taken(jump string, out int16) bool {
	switch jump {
	case "JGT":
		return out > 0
	case "JEQ":
		return out == 0
	case "JGE":
		return out >= 0
	case "JLT":
		return out < 0
	case "JNE":
		return out != 0
	case "JLE":
		return out <= 0
	case "JMP":
		return true
	default:
		return false
	}
}

// SP returns the stack pointer.
func (m *Machine) SP() int16 {
	return m.RAM[0]
}

// StackTop returns the word just below the stack pointer.
func (m *Machine) StackTop() int16 {
	return m.RAM[m.SP()-1]
}

// Stack returns the live stack contents from the given base up to SP.
func (m *Machine) Stack(base int16) []int16 {
	out := make([]int16, 0, m.SP()-base)
	for addr := base; addr < m.SP(); addr++ {
		out = append(out, m.RAM[addr])
	}
	return out
}

// ProgramLength reports how many instructions were loaded.
func (m *Machine) ProgramLength() int {
	return len(m.program)
}
