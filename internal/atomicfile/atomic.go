// Package atomicfile replaces files by writing a temporary sibling and renaming it
// over the destination, so readers see either the old content or the new, never a
// mix of both.
package atomicfile

import (
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Prefix starts the name of every temporary file, followed by the destination's
// base name and a random suffix
const Prefix = ".mimedb.atomic."

// DefaultMode is given to files that do not already exist
const DefaultMode os.FileMode = 0664

// WriteFile replaces path with everything f writes.  Nothing is visible at path
// until f returns successfully and the content has been synced to disk.  On any
// failure the temporary file is removed and path is left as it was.  An existing
// destination keeps its permissions.
func WriteFile(path string, f func(io.Writer) error) (err error) {
	mode := DefaultMode
	if info, serr := os.Stat(path); serr == nil {
		if !info.Mode().IsRegular() {
			return errors.Errorf("%s is not a regular file", path)
		}
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), Prefix+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "could not create temporary file for %s", path)
	}

	closed, committed := false, false
	defer func() {
		if committed {
			return
		}
		if !closed {
			if cerr := tmp.Close(); cerr != nil {
				err = multierror.Append(err, cerr)
			}
		}
		if rerr := os.Remove(tmp.Name()); rerr != nil {
			err = multierror.Append(err, errors.Wrapf(rerr, "could not remove %s", tmp.Name()))
		}
	}()

	if err = f(tmp); err != nil {
		return err
	}
	if err = tmp.Chmod(mode); err != nil {
		return errors.Wrapf(err, "could not set mode of %s", tmp.Name())
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrapf(err, "could not sync %s", tmp.Name())
	}
	closed = true
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "could not close %s", tmp.Name())
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "could not rename %s to %s", tmp.Name(), path)
	}

	committed = true
	return nil
}
