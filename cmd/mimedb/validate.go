package main

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var validateCmd cli.Command = cli.Command{
	Name:  "validate",
	Usage: "Check the media type database for consistency",
	Description: `Check every entry of the loaded database, printing each problem found.
	Most useful with --db, to vet a custom mime-db file before use.`,

	Action: func(c *cli.Context) error {
		return validateAction(c.App.Writer)
	},
}

func validateAction(w io.Writer) error {
	err := env.db.Validate()
	if err == nil {
		fmt.Fprintf(w, "%d media types ok\n", env.db.Len())
		return nil
	}

	problems := 1
	if merr, ok := errors.Cause(err).(*multierror.Error); ok {
		problems = len(merr.Errors)
		for _, e := range merr.Errors {
			fmt.Fprintln(w, e)
		}
	} else {
		fmt.Fprintln(w, err)
	}

	return errors.Errorf("found %d problems in %d media types", problems, env.db.Len())
}
