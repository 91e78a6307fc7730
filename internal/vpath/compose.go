package vpath

import "strings"

// mergeSegments rebuilds the normalized string from a segment list.
// Slash-anchored absolute paths get a leading separator, so an empty list
// yields "/". Drive-anchored paths already start with their drive segment.
func mergeSegments(segments []string, relative, drive bool) string {
	joined := strings.Join(segments, string(Separator))
	if relative || drive {
		return joined
	}
	return string(Separator) + joined
}

// joinOrigin glues two origin strings with exactly one inserted separator.
// Separators already present in either side are left for normalization.
func joinOrigin(left, right string) string {
	return left + string(Separator) + right
}

// JoinAll joins base and every element with a separator and normalizes the
// result once.
func JoinAll(base string, elems ...string) Path {
	origin := base
	for _, e := range elems {
		origin = joinOrigin(origin, e)
	}
	return New(origin)
}

// Join returns a new path whose origin is p's origin, a separator and elem.
// Joining onto the empty path produces an absolute path, since its origin
// then starts with the inserted separator.
func (p Path) Join(elem string) Path {
	return New(joinOrigin(p.origin, elem))
}

// JoinPath is Join with another path's origin as the element.
func (p Path) JoinPath(other Path) Path {
	return p.Join(other.origin)
}

// Append joins elem onto p in place.
func (p *Path) Append(elem string) {
	p.Set(joinOrigin(p.origin, elem))
}

// AppendPath joins other's origin onto p in place.
func (p *Path) AppendPath(other Path) {
	p.Append(other.origin)
}

// SegmentAt returns the segment at the zero-based depth, or "" when depth
// is out of range.
func (p Path) SegmentAt(depth int) string {
	if depth < 0 || depth >= len(p.segments) {
		return ""
	}
	return p.segments[depth]
}

// CommonPath returns the longest common leading path of p and other.
//
// It is only defined for two absolute paths sharing the same anchor; in
// every other case it returns "". Two slash-anchored paths with no common
// segment share "/". When one path is a prefix of the other the shorter
// path is returned in full.
func (p Path) CommonPath(other Path) string {
	if p.IsRelative() || other.IsRelative() {
		return ""
	}
	if p.drive != other.drive {
		return ""
	}

	n := min(len(p.segments), len(other.segments))
	common := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if p.segments[i] != other.segments[i] {
			break
		}
		common = append(common, p.segments[i])
	}

	// Different drives have nothing in common, not even a root.
	if p.drive && len(common) == 0 {
		return ""
	}
	return mergeSegments(common, false, p.drive)
}

// HasPrefix reports whether prefix is a leading run of p's segments. Both
// paths must have the same relativity and anchor.
func (p Path) HasPrefix(prefix Path) bool {
	if p.absolute != prefix.absolute || p.drive != prefix.drive {
		return false
	}
	if len(prefix.segments) > len(p.segments) {
		return false
	}
	for i, s := range prefix.segments {
		if p.segments[i] != s {
			return false
		}
	}
	return true
}

// TrimPrefix removes prefix from p and returns the rest as a relative path.
// The second result is false when prefix is not a prefix of p.
func (p Path) TrimPrefix(prefix Path) (Path, bool) {
	if !p.HasPrefix(prefix) {
		return Path{}, false
	}
	return fromSegments(p.segments[len(prefix.segments):], false, false), true
}

// Parent returns the path one level up. Roots are their own parent, and a
// relative path that cannot ascend further gains a literal "..".
func (p Path) Parent() Path {
	n := len(p.segments)
	if p.absolute {
		floor := 0
		if p.drive {
			floor = 1
		}
		if n <= floor {
			return p
		}
		return fromSegments(p.segments[:n-1], true, p.drive)
	}

	if n == 0 || p.segments[n-1] == parentDir {
		segments := make([]string, n, n+1)
		copy(segments, p.segments)
		return fromSegments(append(segments, parentDir), false, false)
	}
	return fromSegments(p.segments[:n-1], false, false)
}

// Base returns the last segment, or "" when there is none.
func (p Path) Base() string {
	return p.SegmentAt(len(p.segments) - 1)
}

// Equal reports whether both paths have the same normalized form.
func (p Path) Equal(other Path) bool {
	return p.normalized == other.normalized
}

// Compare orders paths by their normalized form. The result follows
// strings.Compare.
func (p Path) Compare(other Path) int {
	return strings.Compare(p.normalized, other.normalized)
}
