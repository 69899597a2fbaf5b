package mimedb

import (
	"strings"

	"github.com/birkland/mimedb/mediatype"
)

// Matches checks a media type or Content-Type header value against a list of patterns.
// Each pattern may be
//
//   - an extension such as "json", resolved with TypeByExtension
//   - a media type such as "application/json"
//   - a wildcard such as "*/*", "application/*" or "application/*+json"
//   - a suffix such as "+json"
//   - "urlencoded" or "multipart"
//
// On a match, a literal pattern is returned as given, while wildcard and suffix patterns
// return the normalized value.  With no patterns, the normalized value is returned as long
// as it parses.
func (db *DB) Matches(value string, patterns ...string) (string, bool) {
	m, err := mediatype.Parse(value)
	if err != nil {
		return "", false
	}
	normalized := m.String()

	if len(patterns) == 0 {
		return normalized, true
	}

	for _, p := range patterns {
		if !mediatype.Match(db.expandPattern(p), normalized) {
			continue
		}
		if strings.HasPrefix(p, "+") || strings.Contains(p, "*") {
			return normalized, true
		}
		return p, true
	}
	return "", false
}

func (db *DB) expandPattern(p string) string {
	switch {
	case p == "urlencoded":
		return "application/x-www-form-urlencoded"
	case p == "multipart":
		return "multipart/*"
	case strings.HasPrefix(p, "+"):
		return "*/*" + p
	case strings.Contains(p, "/"):
		return p
	}

	t, _ := db.TypeByExtension(p)
	return t
}
