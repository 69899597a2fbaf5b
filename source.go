package mimedb

import (
	"strings"

	"github.com/pkg/errors"
)

// Source names the registry a media type entry was taken from
type Source int

// Registration sources.  SourceNone marks de-facto types with no formal registration.
const (
	SourceNone Source = iota
	SourceNginx
	SourceApache
	SourceIANA
)

var sourceNames = map[Source]string{
	SourceNone:   "none",
	SourceNginx:  "nginx",
	SourceApache: "apache",
	SourceIANA:   "iana",
}

func (s Source) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseSource parses a source name.  The empty string and "none" both
// parse to SourceNone.
func ParseSource(name string) (Source, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return SourceNone, nil
	}
	for s, n := range sourceNames {
		if n == name {
			return s, nil
		}
	}
	return SourceNone, errors.Errorf("unknown media type source %q", name)
}

// rank orders sources by how much they are trusted when more than one
// media type claims the same extension.
func (s Source) rank() int {
	switch s {
	case SourceNginx:
		return 0
	case SourceApache:
		return 1
	case SourceIANA:
		return 3
	default:
		return 2
	}
}

// MarshalText encodes the source as it appears in mime-db.  SourceNone has
// no textual form; fields holding it are expected to be omitted.
func (s Source) MarshalText() ([]byte, error) {
	if s == SourceNone {
		return []byte{}, nil
	}
	if _, ok := sourceNames[s]; !ok {
		return nil, errors.Errorf("cannot encode source %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a source name
func (s *Source) UnmarshalText(text []byte) error {
	parsed, err := ParseSource(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
