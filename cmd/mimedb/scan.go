package main

import (
	"fmt"
	"io"

	"github.com/birkland/mimedb/scan"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var scanOpts = struct {
	recursive bool
	sniff     bool
	follow    bool
	workers   int
}{}

var scanCmd cli.Command = cli.Command{
	Name:  "scan",
	Usage: "Classify files by media type",
	Description: `Given a list of files and directories, print the media type of each
	file along with whether it is worth compressing.

	With --sniff, the start of every file is read and compared against
	known magic numbers.  Files whose content does not match any of the
	types listed for their extension are flagged as mismatched, e.g. a
	PNG image named notes.txt.

	  mimedb scan -r --sniff ~/Downloads

	Settings in the configuration file's scan section are used unless
	overridden here.`,
	ArgsUsage: "path...",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:        "recursive, r",
			Usage:       "Recursively scan directory content",
			Destination: &scanOpts.recursive,
		},
		cli.BoolFlag{
			Name:        "sniff, s",
			Usage:       "Identify files by content as well as extension",
			Destination: &scanOpts.sniff,
		},
		cli.BoolFlag{
			Name:        "follow, L",
			Usage:       "Follow symbolic links",
			Destination: &scanOpts.follow,
		},
		cli.IntFlag{
			Name:        "workers, w",
			Usage:       "Number of files to classify concurrently",
			Destination: &scanOpts.workers,
		},
	},

	Action: func(c *cli.Context) error {
		return scanAction(c.App.Writer, c.Args())
	},
}

func scanAction(w io.Writer, paths []string) error {
	if len(paths) == 0 {
		return errors.New("no paths given")
	}

	cfg := env.cfg.ScanConfig(env.log)
	cfg.Recursive = cfg.Recursive || scanOpts.recursive
	cfg.Sniff = cfg.Sniff || scanOpts.sniff
	cfg.FollowSymlinks = cfg.FollowSymlinks || scanOpts.follow
	if scanOpts.workers > 0 {
		cfg.Workers = scanOpts.workers
	}

	var files, mismatches int
	err := scan.New(env.db, cfg).Scan(env.ctx, func(r scan.Result) error {
		files++

		flag := ""
		if r.Mismatch {
			mismatches++
			flag = "\tmismatch: content is " + r.Sniffed
		}

		_, err := fmt.Fprintf(w, "%s\t%s\t%s%s\n", r.Path, r.Type(), r.Compressibility, flag)
		return err
	}, paths...)

	env.log.Info("scan finished",
		zap.Int("files", files),
		zap.Int("mismatches", mismatches),
		zap.Bool("complete", err == nil))

	return err
}
