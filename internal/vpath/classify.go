package vpath

// IsAbsolutePath reports whether path is absolute. A path is absolute when
// it starts with a separator or carries a drive prefix ("C:", "C:/x").
// The input is standardized first, so "\\srv" and "/srv" agree.
func IsAbsolutePath(path string) bool {
	return isAbsolute(StandardizePath(path))
}

// IsRelativePath reports whether path is relative. The empty path is relative.
func IsRelativePath(path string) bool {
	return !IsAbsolutePath(path)
}

// isAbsolute classifies an already standardized path.
func isAbsolute(standardized string) bool {
	if standardized == "" {
		return false
	}

	// Windows drive letter
	if len(standardized) > 1 && standardized[1] == ':' {
		return true
	}

	// Unix-like root
	return standardized[0] == Separator
}

// isDriveAnchored reports whether an absolute standardized path is anchored
// by a drive prefix instead of a leading separator.
func isDriveAnchored(standardized string) bool {
	return isAbsolute(standardized) && standardized[0] != Separator
}

// isRootPath must be given the final normalized string: "C:/a/.." only
// becomes the root "C:" after segment collapsing.
func isRootPath(normalized string) bool {
	if normalized == "/" {
		return true
	}
	return len(normalized) == 2 && normalized[1] == ':'
}
