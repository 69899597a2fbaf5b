// Package mediatype parses, formats, and matches media type strings such as
// "application/vnd.api+json" or "text/html; charset=UTF-8".
package mediatype

import (
	"mime"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Restricted names, as in RFC 6838 section 4.2.  Subtypes may carry facet dots
// and structured syntax suffixes.
var (
	typeName    = regexp.MustCompile(`^[a-z0-9][a-z0-9!#$&^_-]{0,126}$`)
	subtypeName = regexp.MustCompile(`^[a-z0-9][a-z0-9!#$&^_.+-]{0,126}$`)
)

// MediaType is a media type split into its parts.  For "application/ld+json",
// Type is "application", Subtype is "ld" and Suffix is "json".
type MediaType struct {
	Type    string
	Subtype string
	Suffix  string
}

// Parse splits a media type into its parts.  Input is lower cased, and any
// parameters following a semicolon are ignored.
func Parse(s string) (MediaType, error) {
	base, _, _ := strings.Cut(s, ";")
	base = strings.ToLower(strings.TrimSpace(base))

	typ, sub, ok := strings.Cut(base, "/")
	if !ok || !typeName.MatchString(typ) || !subtypeName.MatchString(sub) {
		return MediaType{}, errors.Errorf("invalid media type %q", s)
	}

	m := MediaType{Type: typ, Subtype: sub}
	if i := strings.LastIndexByte(sub, '+'); i > 0 && i < len(sub)-1 {
		m.Subtype, m.Suffix = sub[:i], sub[i+1:]
	}
	return m, nil
}

func (m MediaType) String() string {
	if m.Suffix != "" {
		return m.Type + "/" + m.Subtype + "+" + m.Suffix
	}
	return m.Type + "/" + m.Subtype
}

// Essence is the type and subtype without any structured syntax suffix
func (m MediaType) Essence() string {
	return m.Type + "/" + m.Subtype
}

// Valid reports whether s is a bare, lower case type/subtype string with no
// parameters or surrounding space.
func Valid(s string) bool {
	m, err := Parse(s)
	return err == nil && m.String() == s
}

// ParseParams parses a media type with parameters, as found in Content-Type and
// Content-Disposition headers.  The media type and parameter names are lower cased;
// parameter values keep their case.
func ParseParams(v string) (string, map[string]string, error) {
	t, params, err := mime.ParseMediaType(v)
	if err != nil {
		return "", nil, errors.Wrapf(err, "could not parse media type %q", v)
	}
	return t, params, nil
}

// Format serializes a media type and parameters per RFC 2045 and RFC 2616, quoting
// or encoding values as needed.  It returns the empty string when t or any parameter
// name is not a valid token.
func Format(t string, params map[string]string) string {
	return mime.FormatMediaType(t, params)
}
