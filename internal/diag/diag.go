package diag

import "strings"

// LocateContext finds the line of a VM command inside unit source, so the
// CLI can point at `file.vm:3` for errors that only carry the command text.
// Matching ignores trailing comments and collapsed whitespace. Returns ok
// false when the command matches zero or several lines.
func LocateContext(source string, context string) (line int, col int, ok bool) {
	ctx := normalize(context)
	if ctx == "" {
		return 0, 0, false
	}

	matchLine := -1
	for i, raw := range strings.Split(source, "\n") {
		if normalize(raw) != ctx {
			continue
		}
		if matchLine != -1 {
			return 0, 0, false
		}
		matchLine = i
	}
	if matchLine == -1 {
		return 0, 0, false
	}

	raw := strings.Split(source, "\n")[matchLine]
	col = len(raw) - len(strings.TrimLeft(raw, " \t"))
	return matchLine + 1, col + 1, true
}

func normalize(line string) string {
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	return strings.Join(strings.Fields(line), " ")
}
