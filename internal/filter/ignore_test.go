package filter

import (
	"os"
	"path/filepath"
	"testing"

	"vpath-go/internal/vpath"
)

func TestNewMatcher(t *testing.T) {
	t.Run("skips blank lines and comments", func(t *testing.T) {
		t.Parallel()
		m := NewMatcher([]string{"", "  ", "# comment", "*.log"})
		if m.Len() != 1 {
			t.Fatalf("expected 1 pattern, got %d", m.Len())
		}
		if m.patterns[0].pattern != "*.log" {
			t.Errorf("expected *.log, got %s", m.patterns[0].pattern)
		}
	})

	t.Run("classifies path vs segment patterns", func(t *testing.T) {
		t.Parallel()
		m := NewMatcher([]string{"*.log", "build/output"})
		if m.patterns[0].matchPath {
			t.Error("*.log should not be a path pattern")
		}
		if !m.patterns[1].matchPath {
			t.Error("build/output should be a path pattern")
		}
	})
}

func TestMatcher_Match(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{name: "segment glob matches leaf", patterns: []string{"*.log"}, path: "app.log", want: true},
		{name: "segment glob matches nested leaf", patterns: []string{"*.log"}, path: "/var/sub/app.log", want: true},
		{name: "segment glob misses other extension", patterns: []string{"*.log"}, path: "app.txt", want: false},
		{name: "directory name hides contents", patterns: []string{".git"}, path: "/repo/.git/config", want: true},
		{name: "windows input is normalized first", patterns: []string{"node_modules"}, path: "C:\\src\\node_modules\\x.js", want: true},
		{name: "path pattern matches normalized path", patterns: []string{"build/*"}, path: "build\\\\out", want: true},
		{name: "path pattern is anchored", patterns: []string{"build/*"}, path: "src/build/out", want: false},
		{name: "absolute path pattern", patterns: []string{"/tmp/*"}, path: "/tmp/./x/../y", want: true},
		{name: "collapsed parent is not matched", patterns: []string{"skip"}, path: "/a/skip/../b", want: false},
		{name: "no patterns", patterns: nil, path: "/anything", want: false},
		{name: "bad pattern is skipped", patterns: []string{"[", "*.tmp"}, path: "x.tmp", want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := NewMatcher(tt.patterns)
			if got := m.Match(vpath.New(tt.path)); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestMatcher_Filter(t *testing.T) {
	m := NewMatcher([]string{"*.tmp"})
	in := []vpath.Path{vpath.New("a.txt"), vpath.New("b.tmp"), vpath.New("/c/d")}

	got := m.Filter(in)
	if len(got) != 2 {
		t.Fatalf("Filter() returned %d paths, want 2", len(got))
	}
	if got[0].Normalized() != "a.txt" || got[1].Normalized() != "/c/d" {
		t.Errorf("Filter() = [%q %q], want [a.txt /c/d]", got[0], got[1])
	}
}

func TestParseIgnoreFile(t *testing.T) {
	t.Run("missing file returns nil", func(t *testing.T) {
		t.Parallel()
		patterns, err := ParseIgnoreFile(filepath.Join(t.TempDir(), "missing"))
		if err != nil {
			t.Fatalf("ParseIgnoreFile() error = %v", err)
		}
		if patterns != nil {
			t.Errorf("ParseIgnoreFile() = %v, want nil", patterns)
		}
	})

	t.Run("reads every line", func(t *testing.T) {
		t.Parallel()
		name := filepath.Join(t.TempDir(), ".vpathignore")
		if err := os.WriteFile(name, []byte("*.log\n# comment\n\nbuild/out\n"), 0644); err != nil {
			t.Fatal(err)
		}

		patterns, err := ParseIgnoreFile(name)
		if err != nil {
			t.Fatalf("ParseIgnoreFile() error = %v", err)
		}
		if len(patterns) != 4 {
			t.Fatalf("got %d lines, want 4", len(patterns))
		}
		if NewMatcher(patterns).Len() != 2 {
			t.Errorf("expected 2 active patterns, got %d", NewMatcher(patterns).Len())
		}
	})
}
