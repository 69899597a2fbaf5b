package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/birkland/mimedb"
	"github.com/birkland/mimedb/internal/config"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var mainOpts = struct {
	db      string
	config  string
	verbose bool
}{}

// Established by the app before any command runs
var env = struct {
	ctx context.Context
	log *zap.Logger
	cfg *config.Config
	db  *mimedb.DB
}{
	ctx: context.Background(),
	log: zap.NewNop(),
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newApp(ctx).Run(os.Args)
	if err != nil {
		stop()
		env.log.Fatal("mimedb failed", zap.Error(err))
	}
	_ = env.log.Sync()
}

func newApp(ctx context.Context) *cli.App {
	app := cli.NewApp()
	app.Name = "mimedb"
	app.Usage = "Media type database utilities"
	app.Version = mimedb.SnapshotVersion
	app.EnableBashCompletion = true
	app.Commands = []cli.Command{
		lookupCmd,
		extCmd,
		typeCmd,
		scanCmd,
		exportCmd,
		validateCmd,
		configCmd,
	}
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "db, d",
			Usage:       "mime-db JSON file to use instead of the built in table",
			EnvVar:      "MIMEDB_DB",
			Destination: &mainOpts.db,
		},
		cli.StringFlag{
			Name:        "config, c",
			Usage:       "YAML configuration file",
			EnvVar:      "MIMEDB_CONFIG",
			Destination: &mainOpts.config,
		},
		cli.BoolFlag{
			Name:        "verbose, v",
			Usage:       "Log debug output",
			Destination: &mainOpts.verbose,
		},
	}
	app.Before = func(c *cli.Context) error {
		return setup(ctx)
	}

	return app
}

func setup(ctx context.Context) (err error) {
	env.ctx = ctx

	logConfig := zap.NewProductionConfig()
	if mainOpts.verbose {
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	env.log, err = logConfig.Build()
	if err != nil {
		return errors.Wrap(err, "could not initialize logger")
	}

	env.cfg = config.Default()
	if mainOpts.config != "" {
		env.cfg, err = config.Load(mainOpts.config)
		if err != nil {
			return err
		}
	}

	env.db, err = loadDB(firstOf(mainOpts.db, env.cfg.DB))
	return err
}

// loadDB reads a mime-db JSON file, or returns the built in table if path is empty
func loadDB(path string) (*mimedb.DB, error) {
	if path == "" {
		return mimedb.Default(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open media type database")
	}
	defer file.Close()

	db, err := mimedb.Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load %s", path)
	}

	env.log.Debug("loaded media type database", zap.String("path", path), zap.Int("types", db.Len()))
	return db, nil
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
