package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var extCmd cli.Command = cli.Command{
	Name:  "ext",
	Usage: "List the media types of file extensions",
	Description: `Given a list of file extensions, print the preferred media type of each,
	followed by every media type listing that extension.

	Extensions may be given with or without a leading dot, in any case:

	  mimedb ext wav .XML`,
	ArgsUsage: "extension...",

	Action: func(c *cli.Context) error {
		return extAction(c.App.Writer, c.Args())
	},
}

func extAction(w io.Writer, args []string) error {
	if len(args) == 0 {
		return errors.New("no extensions given")
	}

	var missing []string
	for _, ext := range args {
		preferred, ok := env.db.TypeByExtension(ext)
		if !ok {
			env.log.Warn("unknown extension", zap.String("extension", ext))
			missing = append(missing, ext)
			continue
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", ext, preferred, strings.Join(env.db.TypesByExtension(ext), " "))
	}

	if len(missing) > 0 {
		return errors.Errorf("unknown extensions: %s", strings.Join(missing, ", "))
	}
	return nil
}
