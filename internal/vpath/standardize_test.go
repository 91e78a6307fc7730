package vpath

import (
	"strings"
	"testing"
)

func TestStandardizePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "root", in: "/", want: "/"},
		{name: "backslash root", in: "\\", want: "/"},
		{name: "only separators", in: "\\//\\", want: "/"},
		{name: "windows path", in: "C:\\Users\\me\\", want: "C:/Users/me"},
		{name: "drive root", in: "C:\\", want: "C:"},
		{name: "duplicate separators", in: "/a//b///c", want: "/a/b/c"},
		{name: "mixed separators", in: "a\\/b", want: "a/b"},
		{name: "trailing separator", in: "a/b/", want: "a/b"},
		{name: "repeated letters untouched", in: "/aa/bbb//cc", want: "/aa/bbb/cc"},
		{name: "dots untouched", in: "./a/../b", want: "./a/../b"},
		{name: "case and spaces preserved", in: " My Docs/\\File ", want: " My Docs/File "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StandardizePath(tt.in); got != tt.want {
				t.Errorf("StandardizePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStandardizePath_Properties(t *testing.T) {
	inputs := []string{
		"", "/", "\\", "//", "a", "a/", "a\\\\b", "C:", "C:\\", "C:\\\\x\\\\",
		"/a/b/../c/", "..\\..\\x", "x//y//z//", "\\\\server\\share\\",
	}

	for _, in := range inputs {
		once := StandardizePath(in)

		if twice := StandardizePath(once); twice != once {
			t.Errorf("StandardizePath not idempotent for %q: %q then %q", in, once, twice)
		}
		if strings.Contains(once, "\\") {
			t.Errorf("StandardizePath(%q) = %q, contains a backslash", in, once)
		}
		if strings.Contains(once, "//") {
			t.Errorf("StandardizePath(%q) = %q, contains a doubled separator", in, once)
		}
		if len(once) > 1 && strings.HasSuffix(once, "/") {
			t.Errorf("StandardizePath(%q) = %q, ends with a separator", in, once)
		}
	}
}

func TestIsAbsolutePath(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "", want: false},
		{in: "/a/b", want: true},
		{in: "/", want: true},
		{in: "\\a", want: true},
		{in: "C:/a", want: true},
		{in: "C:", want: true},
		{in: "c:foo", want: true},
		{in: "a/b", want: false},
		{in: "./a", want: false},
		{in: "../a", want: false},
		{in: "C", want: false},
		{in: ":", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsAbsolutePath(tt.in); got != tt.want {
				t.Errorf("IsAbsolutePath(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got := IsRelativePath(tt.in); got == tt.want {
				t.Errorf("IsRelativePath(%q) = %v, want %v", tt.in, got, !tt.want)
			}
		})
	}
}

func TestIsRootPath(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "/", want: true},
		{in: "C:", want: true},
		{in: "z:", want: true},
		{in: "", want: false},
		{in: "/a", want: false},
		{in: "C:/a", want: false},
		{in: "/C:", want: false},
		{in: "ab", want: false},
	}

	for _, tt := range tests {
		if got := isRootPath(tt.in); got != tt.want {
			t.Errorf("isRootPath(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
