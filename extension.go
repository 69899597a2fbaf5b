package mimedb

import (
	"path/filepath"
)

// OctetStream is the generic binary media type.  It never wins an extension
// from a more specific type.
const OctetStream = "application/octet-stream"

// Extensions lists the file extensions of a media type, without leading dots.
// The first is the canonical one.  Nil when the type is unknown or lists none.
func (db *DB) Extensions(t string) []string {
	return db.entries[normalizeType(t)].clone().Extensions
}

// Extension is the canonical file extension of a media type
func (db *DB) Extension(t string) (string, bool) {
	exts := db.entries[normalizeType(t)].Extensions
	if len(exts) == 0 {
		return "", false
	}
	return exts[0], true
}

// TypesByExtension finds every media type listing the extension, in table order.
// Extensions are matched case-insensitively, with or without a leading dot.
// Several types commonly share an extension; see TypeByExtension to pick one.
func (db *DB) TypesByExtension(ext string) []string {
	types := db.byExt[normalizeExt(ext)]
	if len(types) == 0 {
		return nil
	}
	found := make([]string, len(types))
	copy(found, types)
	return found
}

// TypeByExtension picks a single media type for an extension.  Among types sharing
// an extension, IANA registrations are preferred over de-facto types, which are in
// turn preferred over apache and then nginx ones.  Ties go to the first type in table
// order, unless a later non-application type comes along.
func (db *DB) TypeByExtension(ext string) (string, bool) {
	t, ok := db.preferred[normalizeExt(ext)]
	return t, ok
}

// TypeByFilename picks a single media type for a file, based on its extension
func (db *DB) TypeByFilename(name string) (string, bool) {
	ext := filepath.Ext(name)
	if ext == "" {
		return "", false
	}
	return db.TypeByExtension(ext)
}
