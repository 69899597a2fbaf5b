// Package resolv identifies what a command line argument refers to (a media type,
// a bare extension, or a file name) and resolves it against a media type table.
package resolv

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/birkland/mimedb"
	"github.com/birkland/mimedb/mediatype"
	"github.com/pkg/errors"
)

// Kind names the kind of thing an argument refers to
type Kind int

// Argument kinds
const (
	Unknown Kind = iota
	MediaType
	Extension
	Filename
)

func (k Kind) String() string {
	switch k {
	case MediaType:
		return "type"
	case Extension:
		return "extension"
	case Filename:
		return "file"
	default:
		return "unknown"
	}
}

// Ref is a single resolved argument.  Type is empty when nothing in the table
// matched an extension or file name.  Known reports whether Type is in the table.
type Ref struct {
	Arg   string
	Kind  Kind
	Type  string
	Known bool
}

// Cxt establishes a context for resolving arguments, i.e. the table to resolve against
type Cxt struct {
	db *mimedb.DB
}

// NewCxt establishes a new resolver context
func NewCxt(db *mimedb.DB) Cxt {
	return Cxt{db: db}
}

// ParseRef classifies and resolves an argument.  Existing files are always file names.
// Otherwise, anything with a solidus must be a media type, anything with an inner dot
// is a file name, and the rest are extensions.
func (cxt *Cxt) ParseRef(arg string) (Ref, error) {
	ref := Ref{Arg: arg}

	trimmed := strings.TrimSpace(arg)
	if trimmed == "" {
		return ref, errors.New("empty argument")
	}

	if info, err := os.Stat(trimmed); err == nil && !info.IsDir() {
		return cxt.filename(ref, trimmed), nil
	}

	switch {
	case strings.Contains(trimmed, "/"):
		m, err := mediatype.Parse(trimmed)
		if err != nil {
			return ref, errors.Wrapf(err, "%s is neither a file nor a media type", arg)
		}
		ref.Kind = MediaType
		ref.Type = m.String()
		_, ref.Known = cxt.db.Lookup(ref.Type)
	case strings.Contains(strings.TrimPrefix(trimmed, "."), "."):
		ref = cxt.filename(ref, trimmed)
	default:
		ref.Kind = Extension
		ref.Type, ref.Known = cxt.db.TypeByExtension(trimmed)
	}

	return ref, nil
}

// ParseRefs resolves every argument, stopping at the first that cannot be classified
func (cxt *Cxt) ParseRefs(args []string) ([]Ref, error) {
	refs := make([]Ref, 0, len(args))
	for _, arg := range args {
		ref, err := cxt.ParseRef(arg)
		if err != nil {
			return refs, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (cxt *Cxt) filename(ref Ref, name string) Ref {
	ref.Kind = Filename
	ref.Type, ref.Known = cxt.db.TypeByFilename(filepath.Base(name))
	return ref
}
