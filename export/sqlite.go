package export

import (
	"context"
	"database/sql"

	"github.com/birkland/mimedb"
	"github.com/pkg/errors"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"
)

const schema = `
DROP TABLE IF EXISTS extensions;
DROP TABLE IF EXISTS media_types;
CREATE TABLE media_types (
	type         TEXT PRIMARY KEY,
	source       TEXT,
	charset      TEXT,
	compressible INTEGER,
	position     INTEGER NOT NULL
);
CREATE TABLE extensions (
	extension TEXT NOT NULL,
	type      TEXT NOT NULL REFERENCES media_types(type),
	position  INTEGER NOT NULL,
	PRIMARY KEY (type, extension)
);
CREATE INDEX extensions_by_extension ON extensions(extension);
`

// WriteSQLite writes the table to a SQLite database at path, replacing any tables
// a previous export left there.  Attributes an entry does not record are NULL.
// Media type positions follow table order, extension positions follow each entry's
// own list, so the preferred type for an extension can be recomputed with SQL.
func WriteSQLite(ctx context.Context, db *mimedb.DB, path string) (err error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return errors.Wrapf(err, "could not open %s", path)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "could not close %s", path)
		}
	}()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "could not start transaction")
	}

	if err = writeTables(ctx, tx, db); err != nil {
		_ = tx.Rollback()
		return err
	}

	return errors.Wrap(tx.Commit(), "could not commit media types")
}

func writeTables(ctx context.Context, tx *sql.Tx, db *mimedb.DB) error {
	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "could not create schema")
	}

	typeStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO media_types (type, source, charset, compressible, position) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "could not prepare media type insert")
	}
	defer typeStmt.Close()

	extStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO extensions (extension, type, position) VALUES (?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "could not prepare extension insert")
	}
	defer extStmt.Close()

	position := 0
	return db.Each(func(t string, e mimedb.Entry) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := typeStmt.ExecContext(ctx, t, nullSource(e.Source), nullString(e.Charset), nullBool(e.Compressible), position); err != nil {
			return errors.Wrapf(err, "could not insert %s", t)
		}
		position++

		seen := make(map[string]bool, len(e.Extensions))
		for i, ext := range e.Extensions {
			if seen[ext] {
				continue
			}
			seen[ext] = true
			if _, err := extStmt.ExecContext(ctx, ext, t, i); err != nil {
				return errors.Wrapf(err, "could not insert extension %s of %s", ext, t)
			}
		}
		return nil
	})
}

func nullSource(s mimedb.Source) sql.NullString {
	if s == mimedb.SourceNone {
		return sql.NullString{}
	}
	return sql.NullString{String: s.String(), Valid: true}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}
