package scan

import (
	"os"

	"github.com/karrick/godirwalk"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type skip struct {
	action godirwalk.ErrorAction
}

func (skip) Error() string {
	return "node is skipped"
}

// Callback to be invoked for every regular file encountered.  Any error
// terminates the walk entirely.
type fileCallback func(ospath string) error

// walk visits every regular file under dir.  Symlinks are followed only when
// configured to; dangling links and unreadable directories are logged and skipped.
func (s *Scanner) walk(dir string, f fileCallback) error {
	return godirwalk.Walk(dir, &godirwalk.Options{
		Callback: func(ospath string, de *godirwalk.Dirent) error {
			regular := de.IsRegular()

			if de.IsSymlink() && s.cfg.FollowSymlinks {
				info, err := os.Stat(ospath)
				if err != nil {
					s.log.Warn("skipping dangling symlink", zap.String("path", ospath), zap.Error(err))
					return skip{godirwalk.SkipNode}
				}
				regular = info.Mode().IsRegular()
			}

			if !regular {
				return nil
			}

			if err := f(ospath); err != nil {
				return errors.Wrap(err, "terminating walk due to error")
			}
			return nil
		},
		ErrorCallback: func(ospath string, err error) godirwalk.ErrorAction {
			if sk, ok := errors.Cause(err).(skip); ok {
				return sk.action
			}

			if os.IsPermission(errors.Cause(err)) {
				s.log.Warn("skipping unreadable path", zap.String("path", ospath), zap.Error(err))
				return godirwalk.SkipNode
			}

			return godirwalk.Halt
		},
		Unsorted:            true,
		FollowSymbolicLinks: s.cfg.FollowSymlinks,
	})
}
