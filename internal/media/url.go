package media

import "strings"

// IsSyntheticURL reports whether s is a synthetic "type:name" media URL.
// Filesystem paths (leading slash) and http(s) URLs are excluded so
// externally supplied references pass through untouched.
func IsSyntheticURL(s string) bool {
	if strings.HasPrefix(s, "/") {
		return false
	}
	if !strings.Contains(s, ":") {
		return false
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "http:") || strings.HasPrefix(lower, "https:") {
		return false
	}
	return true
}

// SplitURL parses a synthetic media URL into its type and name. The split
// happens at the first colon only; names may contain further colons. When
// s is not a synthetic URL, ok is false and name holds s unchanged so
// callers can pass it through.
func SplitURL(s string) (mediaType Type, name string, ok bool) {
	if !IsSyntheticURL(s) {
		return "", s, false
	}
	prefix, rest, _ := strings.Cut(s, ":")
	return Type(prefix), rest, true
}
