package mediatype

import "strings"

// Match reports whether the media type actual satisfies pattern.  A pattern type or
// subtype of "*" matches anything, and a subtype of the form "*+suffix" matches any
// subtype carrying that suffix.  Neither argument may carry parameters.
//
//	Match("application/*", "application/json")  // true
//	Match("*/*+json", "application/ld+json")     // true
//	Match("text/html", "text/plain")             // false
func Match(pattern, actual string) bool {
	pt, ps, ok := split(pattern)
	if !ok {
		return false
	}
	at, as, ok := split(actual)
	if !ok {
		return false
	}

	if pt != "*" && pt != at {
		return false
	}
	if strings.HasPrefix(ps, "*+") {
		return strings.HasSuffix(as, ps[1:])
	}
	return ps == "*" || ps == as
}

func split(s string) (string, string, bool) {
	t, sub, ok := strings.Cut(strings.ToLower(s), "/")
	if !ok || t == "" || sub == "" || strings.Contains(sub, "/") {
		return "", "", false
	}
	return t, sub, true
}
