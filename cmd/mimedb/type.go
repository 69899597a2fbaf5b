package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/birkland/mimedb"
	"github.com/birkland/mimedb/internal/resolv"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var typeOpts = struct {
	fallback bool
}{}

var typeCmd cli.Command = cli.Command{
	Name:  "type",
	Usage: "Print Content-Type header values",
	Description: `Given files, extensions or media types, print the Content-Type header
	value an HTTP server should send for each.  Charsets are added where
	the database records one, or for text types.

	Arguments naming existing files are always treated as files.  Otherwise
	anything containing a '/' is a media type, anything with an inner dot
	is a file name, and the rest are extensions.

	  mimedb type index.html json text/markdown`,
	ArgsUsage: "[ file | extension | type ] ...",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:        "fallback, f",
			Usage:       "Print " + mimedb.OctetStream + " for unknown files and extensions, rather than failing",
			Destination: &typeOpts.fallback,
		},
	},

	Action: func(c *cli.Context) error {
		return typeAction(c.App.Writer, c.Args())
	},
}

func typeAction(w io.Writer, args []string) error {
	if len(args) == 0 {
		return errors.New("nothing to type")
	}

	cxt := resolv.NewCxt(env.db)
	refs, err := cxt.ParseRefs(args)
	if err != nil {
		return err
	}

	var unknown []string
	for _, ref := range refs {
		t := ref.Type
		if t == "" {
			if !typeOpts.fallback {
				env.log.Warn("no media type", zap.String("arg", ref.Arg), zap.Stringer("kind", ref.Kind))
				unknown = append(unknown, ref.Arg)
				continue
			}
			t = mimedb.OctetStream
		}

		ct, ok := env.db.ContentType(t)
		if !ok {
			return errors.Errorf("could not form a content type from %s", ref.Arg)
		}

		env.log.Debug("resolved", zap.String("arg", ref.Arg), zap.Stringer("kind", ref.Kind), zap.Bool("known", ref.Known))
		fmt.Fprintf(w, "%s\t%s\n", ref.Arg, ct)
	}

	if len(unknown) > 0 {
		return errors.Errorf("no media type for: %s", strings.Join(unknown, ", "))
	}
	return nil
}
