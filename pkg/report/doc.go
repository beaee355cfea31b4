// Package report orchestrates a full generation pass: load the export,
// resolve and pad each enabled group's dependency table, write the CSV files,
// and feed the optional history store and metrics collector. Group failures
// are isolated; one broken report never blocks or corrupts the others.
package report
