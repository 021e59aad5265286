package translator

import (
	"fmt"
	"io"
	"os"

	"hackvm/internal/codegen"
	"hackvm/internal/parser"
)

// SourceUnit is one in-memory source unit ready for translation.
type SourceUnit struct {
	StaticName string
	Source     string
}

// UnitError wraps a parse or generation failure with the unit it came from,
// so the CLI can locate the offending line in that unit's source.
type UnitError struct {
	Path   string
	Source string
	Err    error
}

func (e *UnitError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *UnitError) Unwrap() error {
	return e.Err
}

// TranslateSources folds every unit's command stream through one code
// generator. The jump index carries across unit boundaries; the static name
// is rebound and the function scope reset as each unit starts. With
// bootstrap set, the program prologue is emitted first and its Sys.init
// call draws from the same jump index.
//
// The first error is terminal: nothing is returned for a partly translated
// program.
func TranslateSources(units []SourceUnit, bootstrap bool) (string, error) {
	cg := codegen.New("")
	if bootstrap {
		cg.WriteBootstrap()
	}
	for _, unit := range units {
		cg.SetStaticName(unit.StaticName)
		cg.ResetFunctionScope()

		commands, err := parser.ParseSource(unit.Source)
		if err != nil {
			return "", err
		}
		for _, cmd := range commands {
			if err := cg.WriteCommand(cmd); err != nil {
				return "", err
			}
		}
	}
	return cg.Output(), nil
}

// Translate reads every unit of the job from disk and produces the complete
// assembly artifact. A progress line per unit goes to the given writer.
func Translate(job Job, progress io.Writer) (string, error) {
	var units []SourceUnit
	for _, unit := range job.Units {
		data, err := os.ReadFile(unit.Path)
		if err != nil {
			return "", fmt.Errorf("read unit: %w", err)
		}
		if progress != nil {
			fmt.Fprintf(progress, "process %s write to %s\n", unit.Path, job.OutputPath)
		}
		units = append(units, SourceUnit{StaticName: unit.StaticName, Source: string(data)})
	}

	// Translate unit by unit so a failure can name its unit.
	cg := codegen.New("")
	if job.Bootstrap {
		cg.WriteBootstrap()
	}
	for i, unit := range units {
		cg.SetStaticName(unit.StaticName)
		cg.ResetFunctionScope()

		commands, err := parser.ParseSource(unit.Source)
		if err != nil {
			return "", &UnitError{Path: job.Units[i].Path, Source: unit.Source, Err: err}
		}
		for _, cmd := range commands {
			if err := cg.WriteCommand(cmd); err != nil {
				return "", &UnitError{Path: job.Units[i].Path, Source: unit.Source, Err: err}
			}
		}
	}
	return cg.Output(), nil
}

// Run translates the job and writes the artifact to the job's output path.
// On any failure nothing is written.
func Run(job Job, progress io.Writer) error {
	asm, err := Translate(job, progress)
	if err != nil {
		return err
	}
	if err := os.WriteFile(job.OutputPath, []byte(asm), 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}
