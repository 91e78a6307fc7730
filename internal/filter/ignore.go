package filter

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"strings"

	"vpath-go/internal/vpath"
)

// ignorePattern is a parsed ignore pattern with its matching strategy.
type ignorePattern struct {
	pattern   string
	matchPath bool // true = match against the normalized path; false = match against each segment
}

// Matcher checks virtual paths against a set of ignore patterns.
// Patterns without '/' match any single segment, so "node_modules" hides
// everything below such a directory. Patterns with '/' match the whole
// normalized path.
type Matcher struct {
	patterns []ignorePattern
}

// NewMatcher creates a Matcher from raw pattern strings.
// Blank lines and lines starting with '#' are skipped.
func NewMatcher(rawPatterns []string) *Matcher {
	var patterns []ignorePattern
	for _, raw := range rawPatterns {
		raw = strings.TrimSpace(raw)
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		patterns = append(patterns, ignorePattern{
			pattern:   raw,
			matchPath: strings.Contains(raw, "/"),
		})
	}
	return &Matcher{patterns: patterns}
}

// Len returns the number of active patterns.
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// Match reports whether p should be ignored.
func (m *Matcher) Match(p vpath.Path) bool {
	if len(m.patterns) == 0 {
		return false
	}

	segments := p.Segments()
	for _, ip := range m.patterns {
		if ip.matchPath {
			if matched, err := path.Match(ip.pattern, p.Normalized()); err == nil && matched {
				return true
			}
			continue
		}
		for _, s := range segments {
			matched, err := path.Match(ip.pattern, s)
			if err != nil {
				// Bad pattern: skip it rather than fail.
				break
			}
			if matched {
				return true
			}
		}
	}
	return false
}

// Filter returns the paths that are not ignored, in their original order.
func (m *Matcher) Filter(paths []vpath.Path) []vpath.Path {
	kept := make([]vpath.Path, 0, len(paths))
	for _, p := range paths {
		if !m.Match(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

// ParseIgnoreFile reads an ignore file and returns the raw pattern strings.
// Returns nil and no error if the file does not exist.
func ParseIgnoreFile(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening ignore file: %w", err)
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		patterns = append(patterns, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ignore file: %w", err)
	}
	return patterns, nil
}
