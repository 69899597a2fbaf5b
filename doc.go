// Package mimedb provides a read-only table of media types and their known attributes:
// registration source, charset, compressibility, and associated file extensions.
//
// The table is a snapshot of the community mime-db dataset, embedded into the binary and
// decoded once on first use (see Default).  Alternate tables may be loaded from any reader
// in the same JSON format with Parse.
//
// Lookups never fail.  A media type or extension missing from the table is an expected,
// normal outcome, reported through an ok boolean or an empty result.  Compressibility is
// tri-state, since most entries simply do not record it.
package mimedb
