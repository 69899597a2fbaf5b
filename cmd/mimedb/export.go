package main

import (
	"io"

	"github.com/birkland/mimedb/export"
	"github.com/birkland/mimedb/internal/atomicfile"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var exportOpts = struct {
	format string
	output string
}{}

var exportCmd cli.Command = cli.Command{
	Name:  "export",
	Usage: "Write the media type database to a file",
	Description: `Write the loaded media type database as mime-db JSON, YAML, or an
	SQLite database.

	JSON and YAML are written to standard output unless an output file is
	named.  Output files are written atomically: an existing file is only
	replaced once the new content is complete.  SQLite databases need an
	output file; any tables from an earlier export are replaced.

	  mimedb export -f sqlite -o mime.db`,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "format, f",
			Usage:       "Output format {json, yaml, sqlite}",
			Value:       export.JSON.String(),
			Destination: &exportOpts.format,
		},
		cli.StringFlag{
			Name:        "output, o",
			Usage:       "Output file",
			Destination: &exportOpts.output,
		},
	},

	Action: func(c *cli.Context) error {
		return exportAction(c.App.Writer)
	},
}

func exportAction(stdout io.Writer) error {
	format, err := export.ParseFormat(exportOpts.format)
	if err != nil {
		return err
	}

	path := exportOpts.output
	log := env.log.With(zap.Stringer("format", format), zap.String("output", path))

	switch {
	case !format.Streamable():
		if path == "" {
			return errors.Errorf("%s export needs an output file", format)
		}
		err = export.WriteSQLite(env.ctx, env.db, path)
	case path == "" || path == "-":
		return export.Write(stdout, env.db, format)
	default:
		err = atomicfile.WriteFile(path, func(w io.Writer) error {
			return export.Write(w, env.db, format)
		})
	}

	if err != nil {
		return errors.Wrapf(err, "could not export to %s", path)
	}

	log.Info("exported media types", zap.Int("types", env.db.Len()))
	return nil
}
