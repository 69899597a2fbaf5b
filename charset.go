package mimedb

import (
	"strings"

	"github.com/birkland/mimedb/mediatype"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// ErrNoCharset is returned by Encoding when no charset applies to a media type
var ErrNoCharset = errors.New("no charset for media type")

// DefaultTextCharset is assumed for text/* types that do not record a charset
const DefaultTextCharset = "UTF-8"

// Charset determines the charset of a media type or Content-Type header value.
// An explicit charset parameter wins, then the charset recorded in the table, then
// UTF-8 for any text/* type.  Unparseable values have no charset.
func (db *DB) Charset(v string) (string, bool) {
	t, params, err := mediatype.ParseParams(v)
	if err != nil {
		return "", false
	}

	if cs := params["charset"]; cs != "" {
		return cs, true
	}
	if e, ok := db.entries[t]; ok && e.Charset != "" {
		return e.Charset, true
	}
	if strings.HasPrefix(t, "text/") {
		return DefaultTextCharset, true
	}
	return "", false
}

// Encoding resolves the charset of a media type or header value to a text encoding,
// by its IANA name.
func (db *DB) Encoding(v string) (encoding.Encoding, error) {
	cs, ok := db.Charset(v)
	if !ok {
		return nil, ErrNoCharset
	}

	enc, err := ianaindex.IANA.Encoding(cs)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown charset %s", cs)
	}
	if enc == nil {
		return nil, errors.Errorf("charset %s is not supported", cs)
	}
	return enc, nil
}
