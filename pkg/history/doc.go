// Package history records report generation runs in a SQLite database, one
// row per group per pass. The store backs the `roledep history` command and
// lets operators correlate a report file on disk with the export state it was
// generated from.
package history
