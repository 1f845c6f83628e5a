package fileinput

import "strings"

// FileNameFromPath returns the display name for a control value: everything
// up to and including the last forward or back slash is dropped.
func FileNameFromPath(value string) string {
	if i := strings.LastIndexAny(value, `/\`); i >= 0 {
		return value[i+1:]
	}
	return value
}

// ExtensionFromPath returns the lower-cased text after the last "." of the
// raw value. A value without a dot yields the whole value, lower-cased.
func ExtensionFromPath(value string) string {
	return strings.ToLower(value[strings.LastIndex(value, ".")+1:])
}

// ExtensionAllowed reports whether ext matches an entry of allowed,
// ignoring case.
func ExtensionAllowed(ext string, allowed []string) bool {
	ext = strings.ToLower(ext)
	for _, a := range allowed {
		if strings.ToLower(a) == ext {
			return true
		}
	}
	return false
}
