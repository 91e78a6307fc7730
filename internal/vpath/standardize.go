package vpath

import "strings"

// Separator is the canonical separator used by every standardized and
// normalized path, regardless of the style of the input.
const Separator = '/'

// StandardizePath unifies separators in path. Backslashes become forward
// slashes, runs of separators collapse into one, and a single trailing
// separator is removed unless the result is the bare root "/".
// Nothing else is touched: case and whitespace are preserved.
func StandardizePath(path string) string {
	if path == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(path))

	prevSep := false
	for i := 0; i < len(path); i++ {
		c := path[i]
		if c == '\\' {
			c = Separator
		}
		if c == Separator {
			// Only repeated separators collapse; "aa" stays "aa".
			if prevSep {
				continue
			}
			prevSep = true
		} else {
			prevSep = false
		}
		b.WriteByte(c)
	}

	result := b.String()
	if len(result) > 1 && result[len(result)-1] == Separator {
		result = result[:len(result)-1]
	}
	return result
}
