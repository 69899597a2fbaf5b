package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var configOpts = struct {
	output string
}{}

var configCmd cli.Command = cli.Command{
	Name:  "config",
	Usage: "Print or save the effective configuration",
	Description: `Print the configuration in effect as YAML: the configuration file, if
	any, over the built in defaults, with --db applied.

	With an output file, the configuration is saved there instead, ready
	to be given to --config later.  An existing file is only replaced once
	the new content is complete.

	  mimedb --db ./db.json config -o ~/.mimedb.yaml`,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "output, o",
			Usage:       "Save to this file instead of printing",
			Destination: &configOpts.output,
		},
	},

	Action: func(c *cli.Context) error {
		return configAction(c.App.Writer)
	},
}

func configAction(stdout io.Writer) error {
	cfg := *env.cfg
	cfg.DB = firstOf(mainOpts.db, cfg.DB)

	path := configOpts.output
	if path == "" || path == "-" {
		return cfg.Write(stdout)
	}

	if err := cfg.Save(path); err != nil {
		return errors.Wrapf(err, "could not save config to %s", path)
	}

	env.log.Info("saved config", zap.String("path", path))
	return nil
}
