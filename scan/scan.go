// Package scan classifies the files under a set of paths by media type.  Each
// regular file is looked up by extension and, optionally, identified by the magic
// numbers at the start of its content.
package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/birkland/mimedb"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the number of files classified concurrently when the
// configuration does not say otherwise
const DefaultWorkers = 10

// Config establishes scanner behaviour
type Config struct {
	Workers        int         // Concurrent classifiers; DefaultWorkers if <= 0
	Recursive      bool        // Descend into directories.  Directories are skipped otherwise
	Sniff          bool        // Read content to identify files
	Sniffer        Sniffer     // Identifies content when sniffing; MagicNumbers if nil
	FollowSymlinks bool        // Follow symbolic links to files and directories
	Logger         *zap.Logger // Optional; logs nothing if nil
}

// Result is the classification of a single file
type Result struct {
	Path            string
	Ext             string   // Lower case extension, without a dot.  Empty if the name has none
	Types           []string // Every media type listing Ext, in table order
	Preferred       string   // Preferred type for Ext, empty if there is none
	Sniffed         string   // Media type identified from content, if sniffing
	Compressibility mimedb.Compressibility
	Mismatch        bool // Content was identified as a type not listed for Ext
}

// Type is the best guess at the file's media type: the preferred type for its
// extension, else whatever was sniffed from its content, else application/octet-stream
func (r Result) Type() string {
	switch {
	case r.Preferred != "":
		return r.Preferred
	case r.Sniffed != "":
		return r.Sniffed
	default:
		return mimedb.OctetStream
	}
}

// Scanner classifies files against a media type table
type Scanner struct {
	db  *mimedb.DB
	cfg Config
	log *zap.Logger
}

// New creates a scanner for the given table
func New(db *mimedb.DB, cfg Config) *Scanner {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}

	if cfg.Sniffer == nil {
		cfg.Sniffer = MagicNumbers
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Scanner{
		db:  db,
		cfg: cfg,
		log: log,
	}
}

// Scan classifies every regular file named by paths, or found beneath them.
// f is never invoked concurrently, but files are visited in no particular order.
// The first error, whether from the filesystem or from f, stops the scan and
// is returned.
func (s *Scanner) Scan(ctx context.Context, f func(Result) error, paths ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	q := make(chan string, s.cfg.Workers)

	g.Go(func() error {
		defer close(q)
		return s.produce(ctx, q, paths)
	})

	var (
		mu     sync.Mutex
		failed bool
	)
	for i := 0; i < s.cfg.Workers; i++ {
		g.Go(func() error {
			for path := range q {
				if err := ctx.Err(); err != nil {
					return err
				}

				result, err := s.Classify(path)
				if err != nil {
					return err
				}

				mu.Lock()
				if failed {
					mu.Unlock()
					return nil
				}
				if err = f(result); err != nil {
					failed = true
				}
				mu.Unlock()
				if err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}

func (s *Scanner) produce(ctx context.Context, q chan<- string, paths []string) error {
	send := func(path string) error {
		select {
		case q <- path:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return errors.Wrapf(err, "could not stat %s", path)
		}

		switch {
		case info.Mode().IsRegular():
			if err := send(path); err != nil {
				return err
			}
		case !info.IsDir():
			s.log.Debug("skipping irregular file", zap.String("path", path))
		case !s.cfg.Recursive:
			s.log.Info("skipping directory", zap.String("path", path))
		default:
			if err := s.walk(path, send); err != nil {
				return errors.Wrapf(err, "error performing walk in %s", path)
			}
		}
	}

	return nil
}

// Classify looks up a single file by extension, and sniffs its content when configured to
func (s *Scanner) Classify(path string) (Result, error) {
	r := Result{
		Path: path,
		Ext:  strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")),
	}

	r.Types = s.db.TypesByExtension(r.Ext)
	r.Preferred, _ = s.db.TypeByExtension(r.Ext)

	if s.cfg.Sniff {
		sniffed, err := sniffFile(s.cfg.Sniffer, path)
		switch {
		case err == nil:
			r.Sniffed = sniffed
			r.Mismatch = sniffed != "" && !contains(r.Types, sniffed)
		case os.IsPermission(errors.Cause(err)):
			s.log.Warn("could not sniff unreadable file", zap.String("path", path), zap.Error(err))
		default:
			return r, err
		}
	}

	if r.Preferred != "" || r.Sniffed != "" {
		r.Compressibility = s.db.IsCompressible(r.Type())
	}

	s.log.Debug("classified",
		zap.String("path", path),
		zap.String("type", r.Type()),
		zap.String("sniffed", r.Sniffed),
		zap.Bool("mismatch", r.Mismatch))

	return r, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
