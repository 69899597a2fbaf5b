// Package export writes a media type table out in formats other programs can load:
// mime-db JSON, YAML with the same shape, and an indexed SQLite database.
package export

import (
	"io"
	"strings"

	"github.com/birkland/mimedb"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format names an export format
type Format int

// Export formats
const (
	Unknown Format = iota
	JSON
	YAML
	SQLite
)

var formatNames = map[Format]string{
	JSON:   "json",
	YAML:   "yaml",
	SQLite: "sqlite",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat parses a format name.  "yml" and "db" are accepted as aliases.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "yml":
		return YAML, nil
	case "db", "sqlite3":
		return SQLite, nil
	}
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return Unknown, errors.Errorf("unknown export format %q", name)
}

// Streamable reports whether the format can be written to an io.Writer.  SQLite
// can only be written to a file, with WriteSQLite.
func (f Format) Streamable() bool {
	return f == JSON || f == YAML
}

// Write encodes the table to w in the given streamable format
func Write(w io.Writer, db *mimedb.DB, f Format) error {
	switch f {
	case JSON:
		return db.Serialize(w)
	case YAML:
		return writeYAML(w, db)
	default:
		return errors.Errorf("format %s cannot be streamed", f)
	}
}

func writeYAML(w io.Writer, db *mimedb.DB) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(db.Entries()); err != nil {
		return errors.Wrap(err, "could not encode media types as yaml")
	}
	return errors.Wrap(enc.Close(), "could not flush yaml")
}

// ReadYAML decodes a table previously written with Write in YAML format
func ReadYAML(r io.Reader) (*mimedb.DB, error) {
	entries := make(map[string]mimedb.Entry)
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		return nil, errors.Wrap(err, "could not decode yaml media types")
	}
	return mimedb.New(entries)
}
