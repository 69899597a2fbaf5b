package mimedb

import (
	"bytes"
	_ "embed" // for the embedded database
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
)

// SnapshotVersion is the mime-db release the embedded table was taken from
const SnapshotVersion = "1.35.0"

//go:embed db.json
var snapshot []byte

var (
	defaultOnce sync.Once
	defaultDB   *DB
)

// Default is the embedded table, decoded on first use
func Default() *DB {
	defaultOnce.Do(func() {
		db, err := Parse(bytes.NewReader(snapshot))
		if err != nil {
			panic(errors.Wrap(err, "embedded media type database is corrupt"))
		}
		defaultDB = db
	})
	return defaultDB
}

// Lookup finds the entry for a media type in the default table
func Lookup(t string) (Entry, bool) {
	return Default().Lookup(t)
}

// Extensions lists the extensions of a media type in the default table
func Extensions(t string) []string {
	return Default().Extensions(t)
}

// Extension is the canonical extension of a media type in the default table
func Extension(t string) (string, bool) {
	return Default().Extension(t)
}

// TypesByExtension finds every media type listing an extension in the default table
func TypesByExtension(ext string) []string {
	return Default().TypesByExtension(ext)
}

// TypeByExtension picks the preferred media type for an extension in the default table
func TypeByExtension(ext string) (string, bool) {
	return Default().TypeByExtension(ext)
}

// TypeByFilename picks the preferred media type for a file name in the default table
func TypeByFilename(name string) (string, bool) {
	return Default().TypeByFilename(name)
}

// IsCompressible reports the compressibility of a media type in the default table
func IsCompressible(t string) Compressibility {
	return Default().IsCompressible(t)
}

// Charset determines the charset of a media type or header value using the default table
func Charset(v string) (string, bool) {
	return Default().Charset(v)
}

// Encoding resolves the text encoding of a media type using the default table
func Encoding(v string) (encoding.Encoding, error) {
	return Default().Encoding(v)
}

// ContentType builds a Content-Type header value using the default table
func ContentType(extOrType string) (string, bool) {
	return Default().ContentType(extOrType)
}

// Matches checks a media type against patterns using the default table
func Matches(value string, patterns ...string) (string, bool) {
	return Default().Matches(value, patterns...)
}
