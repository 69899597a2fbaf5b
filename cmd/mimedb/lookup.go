package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/birkland/mimedb"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var lookupOpts = struct {
	json bool
}{}

var lookupCmd cli.Command = cli.Command{
	Name:  "lookup",
	Usage: "Show the database entries of media types",
	Description: `Given a list of media types, print what the database records for each.

	Matching is case insensitive.  For example

	  mimedb lookup application/json Text/HTML

	prints the source, charset, compressibility and file extensions of both
	types.  With --json, entries are printed in mime-db format instead.`,
	ArgsUsage: "type...",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:        "json, j",
			Usage:       "Print entries as mime-db JSON",
			Destination: &lookupOpts.json,
		},
	},

	Action: func(c *cli.Context) error {
		return lookupAction(c.App.Writer, c.Args())
	},
}

func lookupAction(w io.Writer, args []string) error {
	if len(args) == 0 {
		return errors.New("no media types given")
	}

	found := make(map[string]mimedb.Entry, len(args))
	var missing []string

	for _, arg := range args {
		t := strings.ToLower(strings.TrimSpace(arg))
		e, ok := env.db.Lookup(t)
		if !ok {
			env.log.Warn("unknown media type", zap.String("type", arg))
			missing = append(missing, arg)
			continue
		}

		if lookupOpts.json {
			found[t] = e
			continue
		}

		fmt.Fprintf(w, "%s\tsource=%s\tcharset=%s\tcompressible=%s\textensions=%s\n",
			t, e.Source, e.Charset, e.Compressibility(), strings.Join(e.Extensions, ","))
	}

	if lookupOpts.json && len(found) > 0 {
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(found); err != nil {
			return errors.Wrap(err, "could not encode entries")
		}
	}

	if len(missing) > 0 {
		return errors.Errorf("unknown media types: %s", strings.Join(missing, ", "))
	}
	return nil
}
