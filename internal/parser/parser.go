package parser

import (
	"fmt"
	"strconv"
	"strings"

	"hackvm/internal/vm"
)

// ParseError describes one rejected source line.
type ParseError struct {
	Message string
	Context string // the offending line, comments stripped
	Line    int    // 1-based line number within the unit, 0 if unknown
}

func (e ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s (at `%s`)", e.Line, e.Message, e.Context)
	}
	if e.Context != "" {
		return fmt.Sprintf("%s (at `%s`)", e.Message, e.Context)
	}
	return e.Message
}

// StripComment removes a trailing // comment and surrounding whitespace.
// Lines reach Parse only after this.
func StripComment(line string) string {
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// Parse classifies one cleaned line by its first token. The line must be
// non-empty with comments already stripped.
func Parse(line string) (vm.Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return vm.Command{}, ParseError{Message: "empty command", Context: line}
	}

	switch fields[0] {
	case "push", "pop":
		return parsePushPop(fields, line)
	case "label", "goto", "if-goto":
		return parseFlow(fields, line)
	case "function", "call":
		return parseFunctionCall(fields, line)
	case "return":
		if len(fields) != 1 {
			return vm.Command{}, ParseError{
				Message: "return takes no arguments",
				Context: line,
			}
		}
		return vm.Command{Kind: vm.KindReturn}, nil
	}

	if op, ok := vm.OpByName(fields[0]); ok {
		if len(fields) != 1 {
			return vm.Command{}, ParseError{
				Message: fmt.Sprintf("%s takes no arguments", fields[0]),
				Context: line,
			}
		}
		return vm.Command{Kind: vm.KindArithmetic, Op: op}, nil
	}

	return vm.Command{}, ParseError{
		Message: "unrecognized command: " + fields[0],
		Context: line,
	}
}

func parsePushPop(fields []string, line string) (vm.Command, error) {
	if len(fields) != 3 {
		return vm.Command{}, ParseError{
			Message: fmt.Sprintf("%s expects a segment and an index", fields[0]),
			Context: line,
		}
	}
	seg, ok := vm.SegmentByName(fields[1])
	if !ok {
		return vm.Command{}, ParseError{
			Message: "unrecognized segment: " + fields[1],
			Context: line,
		}
	}
	idx, err := parseIndex(fields[2])
	if err != nil {
		return vm.Command{}, ParseError{Message: err.Error(), Context: line}
	}
	kind := vm.KindPush
	if fields[0] == "pop" {
		kind = vm.KindPop
	}
	return vm.Command{Kind: kind, Segment: seg, Index: idx}, nil
}

func parseFlow(fields []string, line string) (vm.Command, error) {
	if len(fields) != 2 {
		return vm.Command{}, ParseError{
			Message: fmt.Sprintf("%s expects a label name", fields[0]),
			Context: line,
		}
	}
	kind := vm.KindLabel
	switch fields[0] {
	case "goto":
		kind = vm.KindGoto
	case "if-goto":
		kind = vm.KindIfGoto
	}
	return vm.Command{Kind: kind, Name: fields[1]}, nil
}

func parseFunctionCall(fields []string, line string) (vm.Command, error) {
	if len(fields) != 3 {
		return vm.Command{}, ParseError{
			Message: fmt.Sprintf("%s expects a name and a count", fields[0]),
			Context: line,
		}
	}
	n, err := parseIndex(fields[2])
	if err != nil {
		return vm.Command{}, ParseError{Message: err.Error(), Context: line}
	}
	kind := vm.KindFunction
	if fields[0] == "call" {
		kind = vm.KindCall
	}
	return vm.Command{Kind: kind, Name: fields[1], Index: n}, nil
}

func parseIndex(tok string) (uint16, error) {
	n, err := strconv.ParseUint(tok, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("malformed operand: %s", tok)
	}
	return uint16(n), nil
}

// ParseSource parses a whole unit: strips comments, skips blank lines, and
// stops at the first malformed line with its position filled in.
func ParseSource(source string) ([]vm.Command, error) {
	var commands []vm.Command
	for i, raw := range strings.Split(source, "\n") {
		line := StripComment(raw)
		if line == "" {
			continue
		}
		cmd, err := Parse(line)
		if err != nil {
			if pe, ok := err.(ParseError); ok {
				pe.Line = i + 1
				return nil, pe
			}
			return nil, err
		}
		commands = append(commands, cmd)
	}
	return commands, nil
}
