// Package vpath implements a purely lexical, cross-platform path value.
//
// A Path accepts Windows or Unix style input, absolute or relative, and
// keeps a canonical form next to the original string: forward slashes
// only, no duplicate or trailing separators, "." and ".." resolved where
// possible. Nothing here touches the file system.
package vpath

import "slices"

// Path is a parsed virtual path. It is parsed eagerly whenever its origin
// changes, so every accessor reads consistent state.
//
// The zero value is the empty relative path and is equivalent to New("").
// Copies are independent: segment storage is never modified after parsing.
type Path struct {
	origin     string
	normalized string
	segments   []string
	absolute   bool
	drive      bool
	root       bool
}

// New parses raw into a Path.
func New(raw string) Path {
	var p Path
	p.Set(raw)
	return p
}

// Root returns the slash root "/".
func Root() Path {
	return New(string(Separator))
}

// fromSegments builds a Path from segments that are already normalized.
// The origin is the normalized form.
func fromSegments(segments []string, absolute, drive bool) Path {
	normalized := mergeSegments(segments, !absolute, drive)
	return Path{
		origin:     normalized,
		normalized: normalized,
		segments:   segments,
		absolute:   absolute,
		drive:      drive,
		root:       absolute && isRootPath(normalized),
	}
}

// Set replaces the origin of p with raw and reparses it.
func (p *Path) Set(raw string) {
	standardized := StandardizePath(raw)

	// Relativity comes from the standardized origin; collapsing ".."
	// afterwards never turns a relative path into an absolute one.
	absolute := isAbsolute(standardized)
	drive := absolute && isDriveAnchored(standardized)
	segments := splitSegments(standardized, !absolute)
	normalized := mergeSegments(segments, !absolute, drive)

	*p = Path{
		origin:     raw,
		normalized: normalized,
		segments:   segments,
		absolute:   absolute,
		drive:      drive,
		root:       absolute && isRootPath(normalized),
	}
}

// Take returns p and leaves the receiver as the zero Path.
func (p *Path) Take() Path {
	taken := *p
	*p = Path{}
	return taken
}

// Origin returns the string p was last set from, untouched.
func (p Path) Origin() string {
	return p.origin
}

// Normalized returns the canonical form of p.
func (p Path) Normalized() string {
	return p.normalized
}

// String returns the normalized form.
func (p Path) String() string {
	return p.normalized
}

// IsRelative reports whether p is relative.
func (p Path) IsRelative() bool {
	return !p.absolute
}

// IsAbsolute reports whether p is absolute.
func (p Path) IsAbsolute() bool {
	return p.absolute
}

// IsRoot reports whether p is "/" or a bare drive such as "C:".
func (p Path) IsRoot() bool {
	return p.root
}

// Segments returns a copy of the path components, root to leaf.
func (p Path) Segments() []string {
	return slices.Clone(p.segments)
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// MarshalText encodes the origin string.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.origin), nil
}

// UnmarshalText parses text as a new origin.
func (p *Path) UnmarshalText(text []byte) error {
	p.Set(string(text))
	return nil
}
