package translator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Unit names one translatable source file and the identifier qualifying its
// static variables.
type Unit struct {
	Path       string
	StaticName string
}

// Job is a fully resolved translation: the units in processing order, where
// the artifact goes, and whether the program prologue is wanted. Bootstrap
// is set exactly when the input was a directory.
type Job struct {
	Units      []Unit
	OutputPath string
	Bootstrap  bool
}

// ResolveTargets maps a .vm file or a directory of .vm files to a Job.
// Directory input Foo/ produces Foo/Foo.asm from every *.vm file directly
// inside, sorted by name; file input Bar.vm produces a sibling Bar.asm.
func ResolveTargets(path string) (Job, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Job{}, fmt.Errorf("resolve input: %w", err)
	}

	if !info.IsDir() {
		if filepath.Ext(path) != ".vm" {
			return Job{}, fmt.Errorf("not a .vm file: %s", path)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".vm")
		return Job{
			Units:      []Unit{{Path: path, StaticName: stem}},
			OutputPath: filepath.Join(filepath.Dir(path), stem+".asm"),
			Bootstrap:  false,
		}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return Job{}, fmt.Errorf("resolve input: %w", err)
	}
	var units []Unit
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".vm" {
			continue
		}
		units = append(units, Unit{
			Path:       filepath.Join(path, entry.Name()),
			StaticName: strings.TrimSuffix(entry.Name(), ".vm"),
		})
	}
	if len(units) == 0 {
		return Job{}, fmt.Errorf("no .vm files in %s", path)
	}
	sort.Slice(units, func(i, j int) bool { return units[i].Path < units[j].Path })

	dirName := filepath.Base(abs(path))
	return Job{
		Units:      units,
		OutputPath: filepath.Join(path, dirName+".asm"),
		Bootstrap:  true,
	}, nil
}

func abs(path string) string {
	a, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return a
}
