package mimedb

import (
	"regexp"
	"strings"

	"github.com/birkland/mimedb/mediatype"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Extensions are lower case tokens of letters, digits and a little punctuation.
// Underscores do occur in upstream data (e.g. fe_launch).
var extensionToken = regexp.MustCompile(`^[a-z0-9][a-z0-9_.+-]*$`)

// Validate checks the table for internal consistency, reporting every violation found
// rather than stopping at the first.  A nil result means:
//
// Every media type is a well-formed type/subtype string, optionally with a +suffix,
// and has no parameters.
//
// Every extension list, when present, is non-empty and holds no duplicates.
//
// Every extension is lower case, has no leading dot, and is a plain token.
//
// Every charset, when present, is a bare name with no surrounding whitespace.
//
// Uniqueness of media types is not checked here, since New and Parse refuse
// duplicates outright.
func (db *DB) Validate() error {
	var result *multierror.Error

	for _, t := range db.types {
		e := db.entries[t]

		if !mediatype.Valid(t) {
			result = multierror.Append(result, errors.Errorf("%s: not a well-formed media type", t))
		}

		if e.Extensions != nil && len(e.Extensions) == 0 {
			result = multierror.Append(result, errors.Errorf("%s: empty extension list", t))
		}

		seen := make(map[string]bool, len(e.Extensions))
		for _, ext := range e.Extensions {
			if err := validateExtension(ext); err != nil {
				result = multierror.Append(result, errors.Wrapf(err, "%s", t))
			}
			if seen[ext] {
				result = multierror.Append(result, errors.Errorf("%s: extension %q listed twice", t, ext))
			}
			seen[ext] = true
		}

		if e.Charset != "" && strings.TrimSpace(e.Charset) != e.Charset {
			result = multierror.Append(result, errors.Errorf("%s: charset %q has surrounding whitespace", t, e.Charset))
		}
	}

	return result.ErrorOrNil()
}

func validateExtension(ext string) error {
	switch {
	case strings.HasPrefix(ext, "."):
		return errors.Errorf("extension %q has a leading dot", ext)
	case strings.ToLower(ext) != ext:
		return errors.Errorf("extension %q is not lower case", ext)
	case !extensionToken.MatchString(ext):
		return errors.Errorf("extension %q is not a valid token", ext)
	}
	return nil
}
