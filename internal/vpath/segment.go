package vpath

import "strings"

const (
	currentDir = "."
	parentDir  = ".."
)

// splitSegments breaks a standardized path into its components, resolving
// "." and ".." against the segments already collected.
//
// A ".." that has nothing left to ascend out of is kept literally on
// relative paths and dropped on absolute ones. Literal ".." segments are
// never popped, and the drive of a drive-anchored path ("C:") is kept as
// the first segment and never popped either.
func splitSegments(standardized string, relative bool) []string {
	var segments []string

	// floor is the number of leading segments ".." may not remove.
	floor := 0
	drive := !relative && isDriveAnchored(standardized)

	// The remainder after the last separator goes through the same rules,
	// including when it is empty.
	for _, chunk := range strings.Split(standardized, string(Separator)) {
		if drive && floor == 0 {
			segments = append(segments, chunk)
			floor = 1
			continue
		}

		switch chunk {
		case parentDir:
			n := len(segments)
			switch {
			case n > floor && segments[n-1] != parentDir:
				segments = segments[:n-1]
			case relative:
				segments = append(segments, parentDir)
			}
			// absolute and already at the root: nothing to ascend into
		case currentDir, "":
		default:
			segments = append(segments, chunk)
		}
	}

	return segments
}
