package mimedb

import (
	"mime"
	"sort"
	"strings"

	"github.com/birkland/mimedb/mediatype"
	"github.com/pkg/errors"
)

// ContentType builds a Content-Type header value from an extension or a media type.
// Anything containing a solidus is taken as a media type, possibly with parameters,
// and need not be in the table.  Anything else is resolved as an extension.  A
// charset parameter is added when one applies and none was given.
//
//	ContentType("html")             // "text/html; charset=UTF-8"
//	ContentType("application/json") // "application/json; charset=UTF-8"
//	ContentType("png")              // "image/png"
func (db *DB) ContentType(extOrType string) (string, bool) {
	var (
		t      string
		params map[string]string
	)

	if strings.Contains(extOrType, "/") {
		var err error
		t, params, err = mediatype.ParseParams(extOrType)
		if err != nil {
			return "", false
		}
	} else {
		var ok bool
		if t, ok = db.TypeByExtension(extOrType); !ok {
			return "", false
		}
	}

	if params == nil {
		params = make(map[string]string)
	}
	if _, ok := params["charset"]; !ok {
		if cs, ok := db.Charset(t); ok {
			params["charset"] = cs
		}
	}

	ct := mediatype.Format(t, params)
	return ct, ct != ""
}

// Register installs the preferred content type of every extension in the table into
// the standard library mime package, so that mime.TypeByExtension agrees with it.
func (db *DB) Register() error {
	exts := make([]string, 0, len(db.preferred))
	for ext := range db.preferred {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	for _, ext := range exts {
		ct, ok := db.ContentType(db.preferred[ext])
		if !ok {
			continue
		}
		if err := mime.AddExtensionType("."+ext, ct); err != nil {
			return errors.Wrapf(err, "could not register extension %s as %s", ext, ct)
		}
	}
	return nil
}
