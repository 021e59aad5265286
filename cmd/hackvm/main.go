package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"hackvm/internal/codegen"
	"hackvm/internal/diag"
	"hackvm/internal/parser"
	"hackvm/internal/translator"
)

// exitFn is swappable so tests can observe the exit code.
var exitFn = os.Exit

func main() {
	exitFn(runCLI(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func runCLI(args []string, _ io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hackvm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var outPath string
	var toStdout bool
	fs.StringVar(&outPath, "o", "", "output .asm path (default derived from the input)")
	fs.BoolVar(&toStdout, "stdout", false, "print assembly to stdout instead of writing a file")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Usage: hackvm [-o out.asm] [-stdout] <file.vm|directory>")
		return 1
	}

	job, err := translator.ResolveTargets(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Translate error: %v\n", err)
		return 1
	}
	if outPath != "" {
		job.OutputPath = outPath
	}

	if toStdout {
		asm, err := translator.Translate(job, stderr)
		if err != nil {
			printTranslateError(stderr, err)
			return 1
		}
		fmt.Fprint(stdout, asm)
		return 0
	}

	if err := translator.Run(job, stdout); err != nil {
		printTranslateError(stderr, err)
		return 1
	}
	fmt.Fprintf(stdout, "Translated to: %s\n", job.OutputPath)
	return 0
}

// printTranslateError reports the failure and, when the offending line can
// be located in its unit, a file:line pointer.
func printTranslateError(w io.Writer, err error) {
	var unitErr *translator.UnitError
	if !errors.As(err, &unitErr) {
		fmt.Fprintf(w, "Translate error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Translate error: %v\n", unitErr.Err)

	var parseErr parser.ParseError
	if errors.As(unitErr.Err, &parseErr) && parseErr.Line > 0 {
		fmt.Fprintf(w, " --> %s:%d\n", unitErr.Path, parseErr.Line)
		return
	}
	var genErr codegen.CodegenError
	if errors.As(unitErr.Err, &genErr) {
		if line, col, ok := diag.LocateContext(unitErr.Source, genErr.Context); ok {
			fmt.Fprintf(w, " --> %s:%d:%d\n", unitErr.Path, line, col)
			return
		}
	}
	fmt.Fprintf(w, " --> %s\n", unitErr.Path)
}
