package vpath

import "testing"

func TestPath_Join(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		elem   string
		origin string
		want   string
	}{
		{name: "relative", base: "a", elem: "b", origin: "a/b", want: "a/b"},
		{name: "separators on both sides", base: "/a/", elem: "/b", origin: "/a///b", want: "/a/b"},
		{name: "parent element", base: "/a/b", elem: "../c", origin: "/a/b/../c", want: "/a/c"},
		{name: "windows element", base: "C:\\x", elem: "y\\z", origin: "C:\\x/y\\z", want: "C:/x/y/z"},
		{name: "empty element", base: "/a", elem: "", origin: "/a/", want: "/a"},
		{name: "empty base becomes absolute", base: "", elem: "b", origin: "/b", want: "/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := New(tt.base)
			got := base.Join(tt.elem)

			if got.Origin() != tt.origin {
				t.Errorf("Join() Origin() = %q, want %q", got.Origin(), tt.origin)
			}
			if got.Normalized() != tt.want {
				t.Errorf("Join() Normalized() = %q, want %q", got.Normalized(), tt.want)
			}
			if base.Origin() != tt.base {
				t.Errorf("Join() modified base origin to %q", base.Origin())
			}

			viaPath := base.JoinPath(New(tt.elem))
			if !viaPath.Equal(got) {
				t.Errorf("JoinPath() = %q, want %q", viaPath, got)
			}
		})
	}
}

func TestPath_Append(t *testing.T) {
	p := New("/a")
	p.Append("b")
	p.AppendPath(New("c\\d"))

	if p.Origin() != "/a/b/c\\d" {
		t.Errorf("Origin() = %q, want %q", p.Origin(), "/a/b/c\\d")
	}
	if p.Normalized() != "/a/b/c/d" {
		t.Errorf("Normalized() = %q, want %q", p.Normalized(), "/a/b/c/d")
	}

	p.Append("../../..")
	if p.Normalized() != "/a" {
		t.Errorf("Normalized() after ascending = %q, want %q", p.Normalized(), "/a")
	}
}

func TestJoinAll(t *testing.T) {
	got := JoinAll("/srv", "data", "..\\logs", "today/")
	if got.Normalized() != "/srv/logs/today" {
		t.Errorf("JoinAll() = %q, want %q", got, "/srv/logs/today")
	}

	if got := JoinAll("a"); got.Normalized() != "a" {
		t.Errorf("JoinAll(a) = %q, want %q", got, "a")
	}
}

func TestPath_CommonPath(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want string
	}{
		{name: "diverging leaves", a: "/a/b/c", b: "/a/b/d", want: "/a/b"},
		{name: "nothing in common", a: "/a", b: "/b", want: "/"},
		{name: "prefix", a: "/a/b", b: "/a/b/c/d", want: "/a/b"},
		{name: "identical", a: "/a/b", b: "/a/b", want: "/a/b"},
		{name: "both roots", a: "/", b: "/", want: "/"},
		{name: "relative left", a: "a/b", b: "/a/b", want: ""},
		{name: "relative right", a: "/a/b", b: "a/b", want: ""},
		{name: "same drive", a: "C:/x/y", b: "c:/x", want: ""},
		{name: "same drive letter", a: "C:/x/y", b: "C:/x/z", want: "C:/x"},
		{name: "drive only", a: "C:/x", b: "C:/y", want: "C:"},
		{name: "different drives", a: "C:/x", b: "D:/x", want: ""},
		{name: "drive and slash", a: "C:/x", b: "/x", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := New(tt.a), New(tt.b)
			if got := a.CommonPath(b); got != tt.want {
				t.Errorf("New(%q).CommonPath(%q) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
			if got := b.CommonPath(a); got != tt.want {
				t.Errorf("New(%q).CommonPath(%q) = %q, want %q", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestPath_HasPrefixAndTrimPrefix(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		prefix string
		ok     bool
		rest   string
	}{
		{name: "direct child", path: "/mnt/data/x", prefix: "/mnt/data", ok: true, rest: "x"},
		{name: "same path", path: "/mnt/data", prefix: "/mnt/data", ok: true, rest: ""},
		{name: "root prefix", path: "/a/b", prefix: "/", ok: true, rest: "a/b"},
		{name: "partial segment", path: "/mnt/database", prefix: "/mnt/data", ok: false},
		{name: "longer prefix", path: "/a", prefix: "/a/b", ok: false},
		{name: "relativity mismatch", path: "a/b", prefix: "/a", ok: false},
		{name: "relative", path: "a/b/c", prefix: "a\\b", ok: true, rest: "c"},
		{name: "drive", path: "C:/a/b", prefix: "C:", ok: true, rest: "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, prefix := New(tt.path), New(tt.prefix)
			if got := p.HasPrefix(prefix); got != tt.ok {
				t.Errorf("HasPrefix() = %v, want %v", got, tt.ok)
			}

			rest, ok := p.TrimPrefix(prefix)
			if ok != tt.ok {
				t.Fatalf("TrimPrefix() ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if rest.Normalized() != tt.rest {
				t.Errorf("TrimPrefix() = %q, want %q", rest, tt.rest)
			}
			if !rest.IsRelative() {
				t.Error("TrimPrefix() result should be relative")
			}
		})
	}
}

func TestPath_Parent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "/a/b", want: "/a"},
		{in: "/a", want: "/"},
		{in: "/", want: "/"},
		{in: "C:/a", want: "C:"},
		{in: "C:", want: "C:"},
		{in: "a/b", want: "a"},
		{in: "a", want: ""},
		{in: "", want: ".."},
		{in: "..", want: "../.."},
		{in: "../a", want: ".."},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p := New(tt.in)
			got := p.Parent()
			if got.Normalized() != tt.want {
				t.Errorf("New(%q).Parent() = %q, want %q", tt.in, got, tt.want)
			}
			if got.IsRelative() != p.IsRelative() {
				t.Errorf("New(%q).Parent() changed relativity", tt.in)
			}
		})
	}
}

func TestPath_Base(t *testing.T) {
	if got := New("/a/b.txt").Base(); got != "b.txt" {
		t.Errorf("Base() = %q, want %q", got, "b.txt")
	}
	if got := New("/").Base(); got != "" {
		t.Errorf("Base() of root = %q, want empty", got)
	}
}

func TestPath_EqualAndCompare(t *testing.T) {
	a := New("C:\\a\\b\\")
	b := New("C:/a//b")
	c := New("/a/c")

	if !a.Equal(b) {
		t.Errorf("%q should equal %q", a.Origin(), b.Origin())
	}
	if a.Compare(b) != 0 {
		t.Errorf("Compare() = %d, want 0", a.Compare(b))
	}
	if c.Compare(a) >= 0 {
		t.Errorf("Compare(%q, %q) = %d, want < 0", c, a, c.Compare(a))
	}
	if New("a").Equal(New("/a")) {
		t.Error("relative and absolute paths should differ")
	}
}
