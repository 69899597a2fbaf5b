package mimedb

import (
	"io"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DB is an immutable media type table.  It is safe for concurrent use; nothing
// handed out by a DB aliases its internal state.
type DB struct {
	entries   map[string]Entry
	types     []string            // sorted keys of entries
	byExt     map[string][]string // extension -> every type listing it, in table order
	preferred map[string]string   // extension -> single preferred type
}

// New builds a table from the given entries.  Keys are normalized to lower case,
// and keys that collide once normalized are rejected.
func New(entries map[string]Entry) (*DB, error) {
	db := &DB{
		entries:   make(map[string]Entry, len(entries)),
		types:     make([]string, 0, len(entries)),
		byExt:     make(map[string][]string),
		preferred: make(map[string]string),
	}

	for t, e := range entries {
		key := normalizeType(t)
		if _, dup := db.entries[key]; dup {
			return nil, errors.Errorf("duplicate media type %s", key)
		}
		db.entries[key] = e.clone()
		db.types = append(db.types, key)
	}
	sort.Strings(db.types)

	for _, t := range db.types {
		db.index(t, db.entries[t])
	}

	return db, nil
}

// Parse decodes a table in mime-db JSON format: a single object mapping media types
// to entries.  Unlike a plain map decode, repeated keys are an error rather than
// silently overwritten.
func Parse(r io.Reader) (*DB, error) {
	entries := make(map[string]Entry)
	var dupErr error

	iter := jsoniter.Parse(json, r, 4096)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, errors.New("media type database must be a JSON object")
	}

	ok := iter.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
		norm := normalizeType(key)
		if _, dup := entries[norm]; dup {
			dupErr = errors.Errorf("duplicate media type %s", norm)
			return false
		}

		var e Entry
		it.ReadVal(&e)
		if it.Error != nil {
			return false
		}
		entries[norm] = e
		return true
	})

	if dupErr != nil {
		return nil, dupErr
	}
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, errors.Wrap(iter.Error, "could not decode media type database")
	}
	if !ok {
		return nil, errors.New("could not decode media type database")
	}
	if iter.WhatIsNext() != jsoniter.InvalidValue || iter.Error != io.EOF {
		return nil, errors.New("trailing data after media type database")
	}

	return New(entries)
}

// Serialize writes the table in mime-db JSON format, keys sorted
func (db *DB) Serialize(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(db.entries), "could not encode media type database")
}

// Len is the number of media types in the table
func (db *DB) Len() int {
	return len(db.types)
}

// Types lists every media type in the table, sorted
func (db *DB) Types() []string {
	types := make([]string, len(db.types))
	copy(types, db.types)
	return types
}

// Entries returns a copy of the whole table
func (db *DB) Entries() map[string]Entry {
	entries := make(map[string]Entry, len(db.entries))
	for t, e := range db.entries {
		entries[t] = e.clone()
	}
	return entries
}

// Each invokes f for every media type in table order, stopping at the first error
func (db *DB) Each(f func(t string, e Entry) error) error {
	for _, t := range db.types {
		if err := f(t, db.entries[t].clone()); err != nil {
			return err
		}
	}
	return nil
}

// Lookup finds the entry for a media type.  Matching is case-insensitive.
func (db *DB) Lookup(t string) (Entry, bool) {
	e, ok := db.entries[normalizeType(t)]
	if !ok {
		return Entry{}, false
	}
	return e.clone(), true
}

// IsCompressible reports whether content of the given media type is worth compressing.
// Media types missing from the table, or not recording the attribute, are
// CompressibilityUnknown.
func (db *DB) IsCompressible(t string) Compressibility {
	return db.entries[normalizeType(t)].Compressibility()
}

// index adds the extensions of one entry to the reverse indexes.  Types must be
// indexed in table order, since the preferred type depends on it.
func (db *DB) index(t string, e Entry) {
	for _, ext := range e.Extensions {
		ext = normalizeExt(ext)
		if ext == "" {
			continue
		}

		types := db.byExt[ext]
		if len(types) > 0 && types[len(types)-1] == t {
			continue
		}
		db.byExt[ext] = append(types, t)

		if current, ok := db.preferred[ext]; ok && !db.supersedes(t, e.Source, current) {
			continue
		}
		db.preferred[ext] = t
	}
}

// supersedes decides whether candidate should replace current as the preferred type
// of an extension.  The generic octet-stream always yields; otherwise the better
// ranked source wins, and on a tie an application/* holder keeps the extension.
func (db *DB) supersedes(candidate string, source Source, current string) bool {
	if current == OctetStream {
		return true
	}

	from, to := db.entries[current].Source.rank(), source.rank()
	if from > to || (from == to && strings.HasPrefix(current, "application/")) {
		return false
	}
	return true
}

func normalizeType(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
