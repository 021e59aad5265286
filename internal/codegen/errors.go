package codegen

import "fmt"

// CodegenError describes a command the generator rejected.
type CodegenError struct {
	Message string
	Context string // the offending command, printed back in source form
}

func (e CodegenError) Error() string {
	if e.Context == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (at `%s`)", e.Message, e.Context)
}
