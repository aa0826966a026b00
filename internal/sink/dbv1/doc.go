// Package dbv1 is the WRITE-stage sink for schema version 1: a five-table
// SQLite layout (database_metadata, summits, summit_names, routes, posts)
// written through a dbboundary.Boundary. It is the only package that knows
// the shape of the output file.
package dbv1
